package sweep

// NumAxes is the number of independent board dimensions. Axes are indexed
// 0..5 and referred to as x, y, z, u, v, w in that order.
const NumAxes = 6

// Coord addresses a single cell, one index per axis. Coords are comparable,
// which is how neighbor enumeration excludes the center cell.
type Coord [NumAxes]int

// CellKind selects the active cell variant. The zero kind is
// UndiscoveredEmpty so a freshly allocated grid already holds the correct
// pre-generation state.
type CellKind uint8

const (
	UndiscoveredEmpty CellKind = iota
	MarkedEmpty
	DiscoveredEmpty
	UndiscoveredMine
	MarkedMine
	ExplodedMine
)

// IsEmpty reports whether the kind is one of the three empty variants, the
// ones that carry MineCount and Delta.
func (k CellKind) IsEmpty() bool { return k <= DiscoveredEmpty }

// IsMine reports whether the kind is one of the three mine variants.
func (k CellKind) IsMine() bool { return k >= UndiscoveredMine }

// IsMarked reports whether the cell currently carries a player mark.
func (k CellKind) IsMarked() bool { return k == MarkedEmpty || k == MarkedMine }

func (k CellKind) String() string {
	switch k {
	case UndiscoveredEmpty:
		return "undiscovered empty"
	case MarkedEmpty:
		return "marked empty"
	case DiscoveredEmpty:
		return "discovered empty"
	case UndiscoveredMine:
		return "undiscovered mine"
	case MarkedMine:
		return "marked mine"
	case ExplodedMine:
		return "exploded mine"
	default:
		return "invalid"
	}
}

// Cell is one grid entry. MineCount is the exact number of mines in the
// cell's neighbor enumeration, fixed at generation; Delta starts equal to it
// and tracks mines believed to remain nearby as neighbors get marked and
// unmarked. Both are meaningful only for empty kinds. Highlight carries the
// eight cosmetic highlight groups and exists on every variant.
type Cell struct {
	Kind      CellKind
	Highlight uint8
	MineCount uint16
	Delta     int16
}

// GameState is the board-level outcome. Victory and Loss are terminal.
type GameState uint8

const (
	Running GameState = iota
	Victory
	Loss
)

// Over reports whether the game reached a terminal state.
func (s GameState) Over() bool { return s != Running }

func (s GameState) String() string {
	switch s {
	case Running:
		return "running"
	case Victory:
		return "victory"
	case Loss:
		return "loss"
	default:
		return "invalid"
	}
}
