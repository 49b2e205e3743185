package sweep

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// GameParams configure a new board.
type GameParams struct {
	Size  [NumAxes]int
	Wrap  [NumAxes]bool
	Mines int
}

// Total is the number of cells a board with these parameters holds.
func (p GameParams) Total() int {
	total := 1
	for _, s := range p.Size {
		total *= s
	}
	return total
}

// New generates a board and places its mines. Both extra arguments are
// optional. When initial is set, that cell is probed once before the board
// is returned, as if the player had clicked it. When seed is nil the board
// draws its own, and if initial then lands on a mine it redraws and
// regenerates until it does not; an explicit seed is honored verbatim, so
// the opening probe may lose the game on the spot.
//
// Panics with AssertionError when an axis size is below one, when the mine
// count leaves no room for both a mine and an empty cell, or when initial
// lies outside the board.
func New(params GameParams, initial *Coord, seed *uint64) *Board {
	total := params.Total()
	for a, s := range params.Size {
		if s < 1 {
			panic(AssertionError{fmt.Sprintf("axis %d has size %d, want at least 1", a, s)})
		}
	}
	if params.Mines < 1 || params.Mines >= total {
		panic(AssertionError{fmt.Sprintf("mine count %d outside 1..%d", params.Mines, total-1)})
	}

	b := &Board{
		size:  params.Size,
		wrap:  params.Wrap,
		state: Running,
		mines: params.Mines,
		total: total,
	}
	b.stride[0] = 1
	for a := 1; a < NumAxes; a++ {
		b.stride[a] = b.stride[a-1] * params.Size[a-1]
	}
	if initial != nil {
		b.assertInside(*initial)
	}

	for attempt := 1; ; attempt++ {
		if seed != nil {
			b.seed = *seed
		} else {
			b.seed = new(maphash.Hash).Sum64()
		}
		b.cells = make([]Cell, total)
		b.placeMines()
		b.countNeighborMines()

		if seed != nil || initial == nil {
			break
		}
		if b.cells[b.index(*initial)].Kind == UndiscoveredEmpty {
			break
		}
		Log.WithFields(logrus.Fields{
			"attempt": attempt,
			"seed":    fmt.Sprintf("%016x", b.seed),
		}).Debug("initial cell drew a mine, regenerating")
	}

	b.undiscoveredEmpty = total - params.Mines
	if initial != nil {
		b.ProbeAt(*initial, false)
	}
	return b
}

// placeMines draws mine coordinates from a ChaCha8 stream keyed on the
// board seed, rejecting repeats until the requested count is placed. Axes
// are drawn in index order, and axes of size one never consume randomness,
// so layouts stay comparable across boards that differ only in degenerate
// axes.
func (b *Board) placeMines() {
	var (
		rng    = rand.New(rand.NewChaCha8(chachaSeed(b.seed)))
		placed = 0
	)
	for placed < b.mines {
		var c Coord
		for a, s := range b.size {
			if s > 1 {
				c[a] = rng.IntN(s)
			}
		}
		cell := &b.cells[b.index(c)]
		if cell.Kind != UndiscoveredMine {
			cell.Kind = UndiscoveredMine
			placed++
		}
	}
}

// chachaSeed widens the 64-bit board seed into a 256-bit ChaCha8 key by
// repeating it across all four lanes.
func chachaSeed(seed uint64) (key [32]byte) {
	for i := range 4 {
		binary.LittleEndian.PutUint64(key[8*i:], seed)
	}
	return key
}

// countNeighborMines fills in MineCount and Delta for every empty cell.
// Counting runs over the neighbor enumeration as-is: a mine revisited by a
// wrapped window is counted once per visit.
func (b *Board) countNeighborMines() {
	for i, c := range b.Coords() {
		if b.cells[i].Kind == UndiscoveredMine {
			continue
		}
		n := 0
		for nb := range b.Neighbors(c) {
			if b.cells[b.index(nb)].Kind == UndiscoveredMine {
				n++
			}
		}
		b.cells[i].MineCount = uint16(n)
		b.cells[i].Delta = int16(n)
	}
}
