package sweep

// ProbeAt reveals the cell at c. Revealing an empty cell with a zero mine
// count floods outward: its neighbors are probed in turn, breadth first,
// until the frontier is exhausted. Revealing a mine explodes it and loses
// the game; discovering the last empty cell wins it. Marked cells shrug a
// plain probe off, but with probeMarked set the probe unmarks them first
// and then reveals them; a marked empty revealed this way never floods,
// whatever its count.
//
// Returns the state the game is in after the probe settles. Once the game
// is over further probes leave the board untouched and just report that
// state. Panics with AssertionError when c lies outside the board.
func (b *Board) ProbeAt(c Coord, probeMarked bool) GameState {
	b.assertInside(c)
	if b.state.Over() {
		return b.state
	}

	queue := []Coord{c}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		i := b.index(cur)
		switch b.cells[i].Kind {
		case UndiscoveredMine:
			b.cells[i].Kind = ExplodedMine
			b.state = Loss
		case MarkedMine:
			if probeMarked {
				b.MarkAt(cur) // restore neighbor deltas before the blast
				b.cells[i].Kind = ExplodedMine
				b.state = Loss
			}
		case UndiscoveredEmpty:
			b.cells[i].Kind = DiscoveredEmpty
			b.undiscoveredEmpty--
			if b.cells[i].MineCount == 0 {
				// Settled cells may be enqueued again; they dequeue as
				// no-ops, so the flood still terminates.
				for nb := range b.Neighbors(cur) {
					queue = append(queue, nb)
				}
			}
		case MarkedEmpty:
			if probeMarked {
				b.MarkAt(cur)
				b.cells[i].Kind = DiscoveredEmpty
				b.undiscoveredEmpty--
			}
		case DiscoveredEmpty, ExplodedMine:
			// already settled
		}
	}

	if b.state != Loss && b.undiscoveredEmpty == 0 {
		b.state = Victory
	}
	return b.state
}

// MarkAt toggles the mark on the cell at c. Marking any cell claims one of
// the mines its neighbors are counting, so each neighboring empty cell's
// Delta drops by one; unmarking gives the mine back. Discovered and
// exploded cells are settled and ignore marking. Two calls on the same
// coordinate restore the board bit for bit.
//
// Panics with AssertionError when c lies outside the board.
func (b *Board) MarkAt(c Coord) {
	b.assertInside(c)
	i := b.index(c)
	switch b.cells[i].Kind {
	case UndiscoveredEmpty:
		b.shiftNeighborDeltas(c, -1)
		b.cells[i].Kind = MarkedEmpty
		b.marked++
	case UndiscoveredMine:
		b.shiftNeighborDeltas(c, -1)
		b.cells[i].Kind = MarkedMine
		b.marked++
	case MarkedEmpty:
		b.shiftNeighborDeltas(c, +1)
		b.cells[i].Kind = UndiscoveredEmpty
		b.marked--
	case MarkedMine:
		b.shiftNeighborDeltas(c, +1)
		b.cells[i].Kind = UndiscoveredMine
		b.marked--
	}
}

// shiftNeighborDeltas moves every neighboring empty cell's Delta by the
// given amount, once per visit in the neighbor enumeration. A neighbor
// revisited by a wrapped window shifts twice, mirroring how counting saw
// it twice.
func (b *Board) shiftNeighborDeltas(c Coord, by int16) {
	for nb := range b.Neighbors(c) {
		cell := &b.cells[b.index(nb)]
		if cell.Kind.IsEmpty() {
			cell.Delta += by
		}
	}
}

// HighlightAt sets or clears the bits of group in the cell's highlight
// mask. Highlighting is cosmetic: it never touches counters or state and
// works on any cell in any game state.
//
// Panics with AssertionError when c lies outside the board.
func (b *Board) HighlightAt(c Coord, group uint8, enable bool) {
	b.assertInside(c)
	i := b.index(c)
	if enable {
		b.cells[i].Highlight |= group
	} else {
		b.cells[i].Highlight &^= group
	}
}
