// Package sweep implements a minesweeper engine on a six-dimensional board.
// Each axis may independently wrap around, so a cell has up to 3^6-1
// neighbors. The engine is deterministic: the same parameters and seed
// always produce the same board and the same responses to the same calls.
package sweep

import (
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/kohutek/sweep6d/internal/axis"
)

// Log collects engine diagnostics such as generation retries. Hosts may
// tune or silence it.
var Log = logrus.New()

// Board is a full game: the dense cell grid plus the counters derived from
// it. Boards are not safe for concurrent use; the owner serializes calls.
type Board struct {
	size [NumAxes]int
	wrap [NumAxes]bool
	seed uint64

	cells  []Cell
	stride [NumAxes]int

	state             GameState
	mines             int
	marked            int
	undiscoveredEmpty int
	total             int
}

// Size is the cell count along each axis.
func (b *Board) Size() [NumAxes]int { return b.size }

// Wrap reports which axes connect their last index back to their first.
func (b *Board) Wrap() [NumAxes]bool { return b.wrap }

// Seed is the value the mine layout was drawn from. When the board was
// built without an explicit seed this is the one it drew for itself, so a
// later game with the same parameters and this seed replays the same layout.
func (b *Board) Seed() uint64 { return b.seed }

// State is the current game outcome.
func (b *Board) State() GameState { return b.state }

// Mines is the number of mines placed at generation. Constant for the life
// of the board.
func (b *Board) Mines() int { return b.mines }

// Marked is the number of currently marked cells, mines and empties alike.
func (b *Board) Marked() int { return b.marked }

// UndiscoveredEmpty is the number of empty cells not yet discovered. The
// game is won when it reaches zero.
func (b *Board) UndiscoveredEmpty() int { return b.undiscoveredEmpty }

// Total is the number of cells on the board.
func (b *Board) Total() int { return b.total }

// CellAt returns a copy of the cell at c. Panics with AssertionError when c
// lies outside the board.
func (b *Board) CellAt(c Coord) Cell {
	b.assertInside(c)
	return b.cells[b.index(c)]
}

// index flattens a coordinate into the cell slice. Axis 0 varies fastest.
func (b *Board) index(c Coord) int {
	i := 0
	for a, v := range c {
		i += v * b.stride[a]
	}
	return i
}

func (b *Board) assertInside(c Coord) {
	for a := range c {
		if c[a] < 0 || c[a] >= b.size[a] {
			panic(AssertionError{fmt.Sprintf("coordinate %v outside board of size %v", c, b.size)})
		}
	}
}

// Coords walks the whole grid in memory order, yielding each cell's flat
// index together with its coordinate.
func (b *Board) Coords() iter.Seq2[int, Coord] {
	return func(yield func(int, Coord) bool) {
		var c Coord
		for i := range b.cells {
			if !yield(i, c) {
				return
			}
			for a := 0; a < NumAxes; a++ {
				c[a]++
				if c[a] < b.size[a] {
					break
				}
				c[a] = 0
			}
		}
	}
}

// Neighbors yields every coordinate adjacent to c: the cross product of the
// six per-axis windows, excluding c itself. On a wrapped axis of size one or
// two the window revisits indices, so the same neighbor can appear more than
// once; mine counting and delta bookkeeping rely on seeing those repeats.
func (b *Board) Neighbors(c Coord) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for w := range b.axisWindow(c, 5) {
			for v := range b.axisWindow(c, 4) {
				for u := range b.axisWindow(c, 3) {
					for z := range b.axisWindow(c, 2) {
						for y := range b.axisWindow(c, 1) {
							for x := range b.axisWindow(c, 0) {
								n := Coord{x, y, z, u, v, w}
								if n == c {
									continue
								}
								if !yield(n) {
									return
								}
							}
						}
					}
				}
			}
		}
	}
}

// axisWindow is the one-step neighbor window around c along a single axis.
func (b *Board) axisWindow(c Coord, a int) iter.Seq[int] {
	return axis.Range(c[a]-1, c[a]+1, 0, b.size[a]-1, b.wrap[a])
}
