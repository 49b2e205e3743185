package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohutek/sweep6d/internal/sweep"
)

func TestRenderTilesInnerAxes(t *testing.T) {
	seed := uint64(1)
	b := sweep.New(sweep.GameParams{
		Size:  [sweep.NumAxes]int{2, 2, 2, 2, 1, 1},
		Mines: 3,
	}, nil, &seed)

	// x/y blocks laid out along z (thin gap right) and u (blank line down).
	assert.Equal(t, ""+
		"?? ??\n"+
		"?? ??\n"+
		"\n"+
		"?? ??\n"+
		"?? ??",
		renderBoard(b))
}

func TestRenderTilesOuterAxes(t *testing.T) {
	seed := uint64(1)
	b := sweep.New(sweep.GameParams{
		Size:  [sweep.NumAxes]int{1, 1, 2, 1, 2, 2},
		Mines: 3,
	}, nil, &seed)

	// v blocks get a wide gap to the right, w blocks wide gaps below.
	assert.Equal(t, ""+
		"? ?   ? ?\n"+
		"\n"+
		"\n"+
		"\n"+
		"? ?   ? ?",
		renderBoard(b))
}

// Once the game is over the renderer gives the layout away: hidden mines
// show as stars.
func TestRenderRevealsMinesAfterLoss(t *testing.T) {
	var (
		seed   = uint64(99)
		params = sweep.GameParams{Size: [sweep.NumAxes]int{2, 2, 1, 1, 1, 1}, Mines: 3}
		b      = sweep.New(params, nil, &seed)
	)

	var mine sweep.Coord
	for _, c := range b.Coords() {
		if b.CellAt(c).Kind.IsMine() {
			mine = c
			break
		}
	}
	require.Equal(t, sweep.Loss, b.ProbeAt(mine, false))

	var want [2][2]byte
	for _, c := range b.Coords() {
		glyph := byte('?')
		if b.CellAt(c).Kind.IsMine() {
			glyph = '*'
		}
		want[c[1]][c[0]] = glyph
	}
	assert.Equal(t, fmt.Sprintf("%s\n%s", want[0][:], want[1][:]), renderBoard(b))
}

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		name string
		cell sweep.Cell
		over bool
		want byte
	}{
		{"hidden empty", sweep.Cell{Kind: sweep.UndiscoveredEmpty}, false, '?'},
		{"hidden mine", sweep.Cell{Kind: sweep.UndiscoveredMine}, false, '?'},
		{"hidden mine after game", sweep.Cell{Kind: sweep.UndiscoveredMine}, true, '*'},
		{"highlighted", sweep.Cell{Kind: sweep.UndiscoveredEmpty, Highlight: 4}, false, '~'},
		{"reveal beats highlight", sweep.Cell{Kind: sweep.UndiscoveredMine, Highlight: 4}, true, '*'},
		{"marked mine", sweep.Cell{Kind: sweep.MarkedMine}, false, 'x'},
		{"marked mine after game", sweep.Cell{Kind: sweep.MarkedMine}, true, 'x'},
		{"marked empty", sweep.Cell{Kind: sweep.MarkedEmpty}, false, 'x'},
		{"wrong mark after game", sweep.Cell{Kind: sweep.MarkedEmpty}, true, '!'},
		{"exploded", sweep.Cell{Kind: sweep.ExplodedMine}, false, '*'},
		{"clear", sweep.Cell{Kind: sweep.DiscoveredEmpty, Delta: 0}, false, '.'},
		{"counted", sweep.Cell{Kind: sweep.DiscoveredEmpty, MineCount: 5, Delta: 5}, false, '5'},
		{"over-marked", sweep.Cell{Kind: sweep.DiscoveredEmpty, MineCount: 1, Delta: -2}, false, '-'},
		{"crowded", sweep.Cell{Kind: sweep.DiscoveredEmpty, MineCount: 12, Delta: 12}, false, '+'},
		{"digit ignores highlight", sweep.Cell{Kind: sweep.DiscoveredEmpty, Delta: 3, Highlight: 1}, false, '3'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.want), string(cellGlyph(tt.cell, tt.over)))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{61 * time.Second, "00:01:01"},
		{3*time.Hour + 2*time.Minute + 9*time.Second, "03:02:09"},
		{59400 * time.Millisecond, "00:00:59"},
		{59600 * time.Millisecond, "00:01:00"},
		{25 * time.Hour, "25:00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d))
	}
}
