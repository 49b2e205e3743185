package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohutek/sweep6d/internal/sweep"
)

func TestMain(m *testing.M) {
	Log.SetLevel(logrus.ErrorLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func writePresets(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep6d.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadPresets(t *testing.T) {
	t.Parallel()

	path := writePresets(t, `
[[preset]]
name = "tutorial"
size = [4, 4]
mines = 3

[[preset]]
name = "twisted"
size = [5, 5, 3, 1, 1, 1]
wrap = [true, true, false, false, false, false]
mines = 11
seed = "00000000deadbeef"
`)

	presets, err := LoadPresets(path)
	require.NoError(t, err)
	require.Len(t, presets, 2)

	assert.Equal(t, Preset{Name: "tutorial", Size: []int{4, 4}, Mines: 3}, presets[0])
	assert.Equal(t, "twisted", presets[1].Name)
	assert.Equal(t, []bool{true, true, false, false, false, false}, presets[1].Wrap)
	assert.Equal(t, "00000000deadbeef", presets[1].Seed)
}

func TestLoadPresetsMissingFile(t *testing.T) {
	t.Parallel()

	presets, err := LoadPresets(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, []Preset{Default()}, presets)
}

func TestLoadPresetsEmptyFile(t *testing.T) {
	t.Parallel()

	presets, err := LoadPresets(writePresets(t, "# nothing here\n"))
	require.NoError(t, err)
	assert.Equal(t, []Preset{Default()}, presets)
}

func TestLoadPresetsBadTOML(t *testing.T) {
	t.Parallel()

	_, err := LoadPresets(writePresets(t, "[[preset]]\nmines = [\n"))
	assert.ErrorContains(t, err, "unable to parse presets")
}

func TestParamsFillsMissingAxes(t *testing.T) {
	t.Parallel()

	params := Preset{Name: "tutorial", Size: []int{4, 4}, Mines: 3}.Params()

	assert.Equal(t, sweep.GameParams{
		Size:  [sweep.NumAxes]int{4, 4, 1, 1, 1, 1},
		Mines: 3,
	}, params)
}

func TestParamsClampsOutOfRange(t *testing.T) {
	t.Parallel()

	params := Preset{
		Name:  "wild",
		Size:  []int{0, 500, 2},
		Wrap:  []bool{true},
		Mines: -4,
	}.Params()

	assert.Equal(t, [sweep.NumAxes]int{1, 100, 2, 1, 1, 1}, params.Size)
	assert.Equal(t, [sweep.NumAxes]bool{true, false, false, false, false, false}, params.Wrap)
	assert.Equal(t, 1, params.Mines)

	params = Preset{Name: "packed", Size: []int{3, 3}, Mines: 1000}.Params()
	assert.Equal(t, 8, params.Mines, "mines leave at least one empty cell")
}

func TestParamsTooSmallFallsBack(t *testing.T) {
	t.Parallel()

	params := Preset{Name: "dot", Size: []int{1}, Mines: 5}.Params()

	assert.Equal(t, Default().Params(), params)
}

func TestFindPreset(t *testing.T) {
	t.Parallel()

	presets := []Preset{
		{Name: "first", Mines: 1},
		{Name: "second", Mines: 2},
	}

	p, ok := FindPreset(presets, "")
	assert.True(t, ok)
	assert.Equal(t, "first", p.Name)

	p, ok = FindPreset(presets, "second")
	assert.True(t, ok)
	assert.Equal(t, 2, p.Mines)

	_, ok = FindPreset(presets, "third")
	assert.False(t, ok)

	_, ok = FindPreset(nil, "")
	assert.False(t, ok)
}
