package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/kohutek/sweep6d/internal/sweep"
)

var Log = logrus.New()

// Preset is one [[preset]] table from the config file. Size and Wrap list
// per-axis values starting at axis 0; missing trailing axes default to a
// single unwrapped cell.
type Preset struct {
	Name  string `toml:"name"`
	Size  []int  `toml:"size"`
	Wrap  []bool `toml:"wrap"`
	Mines int    `toml:"mines"`
	Seed  string `toml:"seed"`
}

func Default() Preset {
	return Preset{
		Name:  "default",
		Size:  []int{4, 4, 4, 4, 1, 1},
		Mines: 20,
	}
}

// Params clamps the preset into valid board parameters: axis sizes to
// 1..100 and the mine count to 1..total-1. Out-of-range values are adjusted
// with a warning instead of rejected. A preset too small to hold a mine and
// an empty cell falls back to the default board.
func (p Preset) Params() sweep.GameParams {
	var params sweep.GameParams
	for a := range params.Size {
		size := 1
		if a < len(p.Size) {
			size = p.Size[a]
		}
		clamped := min(max(size, 1), 100)
		if clamped != size {
			Log.WithFields(logrus.Fields{
				"preset": p.Name, "axis": a, "size": size,
			}).Warn("axis size out of range, clamped")
		}
		params.Size[a] = clamped
		if a < len(p.Wrap) {
			params.Wrap[a] = p.Wrap[a]
		}
	}

	total := params.Total()
	if total < 2 {
		Log.WithField("preset", p.Name).Warn("board too small to play, using default")
		return Default().Params()
	}
	params.Mines = min(max(p.Mines, 1), total-1)
	if params.Mines != p.Mines {
		Log.WithFields(logrus.Fields{
			"preset": p.Name, "mines": p.Mines,
		}).Warn("mine count out of range, clamped")
	}
	return params
}

// LoadPresets reads the [[preset]] tables from a TOML file. A missing file
// is not an error; it yields just the default preset, as does a file that
// declares none.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		Log.WithField("path", path).Debug("no preset file, using defaults")
		return []Preset{Default()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read presets: %w", err)
	}

	var file struct {
		Presets []Preset `toml:"preset"`
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse presets %s: %w", path, err)
	}
	if len(file.Presets) == 0 {
		return []Preset{Default()}, nil
	}
	return file.Presets, nil
}

// FindPreset returns the named preset, or the first one when name is empty.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	if name == "" && len(presets) > 0 {
		return presets[0], true
	}
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
