package main

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/kohutek/sweep6d/internal/sweep"
)

// renderBoard lays the six axes out on a flat page: x, z and v run to the
// right, y, u and w run down. Cells of one x/y block sit flush together,
// blocks one step apart along z or u get a thin gap, and blocks apart along
// v or w get a wide one.
func renderBoard(b *sweep.Board) string {
	var (
		size   = b.Size()
		blockW = size[2]*size[0] + size[2] - 1
		blockH = size[3]*size[1] + size[3] - 1
		width  = size[4]*blockW + (size[4]-1)*3
		height = size[5]*blockH + (size[5]-1)*3
	)
	canvas := make([][]byte, height)
	for i := range canvas {
		canvas[i] = bytes.Repeat([]byte{' '}, width)
	}

	over := b.State().Over()
	for _, c := range b.Coords() {
		col := c[0] + c[2]*(size[0]+1) + c[4]*(blockW+3)
		row := c[1] + c[3]*(size[1]+1) + c[5]*(blockH+3)
		canvas[row][col] = cellGlyph(b.CellAt(c), over)
	}

	var sb strings.Builder
	for i, line := range canvas {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(bytes.TrimRight(line, " "))
	}
	return sb.String()
}

func cellGlyph(cell sweep.Cell, over bool) byte {
	switch cell.Kind {
	case sweep.UndiscoveredEmpty, sweep.UndiscoveredMine:
		if over && cell.Kind == sweep.UndiscoveredMine {
			return '*'
		}
		if cell.Highlight != 0 {
			return '~'
		}
		return '?'
	case sweep.MarkedEmpty, sweep.MarkedMine:
		if over && cell.Kind == sweep.MarkedEmpty {
			return '!'
		}
		return 'x'
	case sweep.ExplodedMine:
		return '*'
	default: // discovered: show the delta, the count net of marks
		switch delta := cell.Delta; {
		case delta < 0:
			return '-'
		case delta == 0:
			return '.'
		case delta > 9:
			return '+'
		default:
			return '0' + byte(delta)
		}
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	s := (d - m*time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
