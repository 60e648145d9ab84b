// Package hex implements the Havannah board: hexagonal move coordinates,
// incremental win detection via union-find, and the LBDists lower-bound
// heuristic.
package hex

import "fmt"

// Move is an axial coordinate on the hexagonal board, stored in the same
// skewed row/column system the board's dense array uses.
type Move struct {
	X, Y int8
}

// Unknown is the sentinel "no move" value, used where C sentinels like
// M_UNKNOWN are used in the reference engine.
var Unknown = Move{-1, -1}

// neighbours lists the six neighbour offsets in clockwise order, starting
// from the northwest. The order matters: ring detection and the
// neighbour-merge skip rule both depend on it.
var neighbours = [6]Move{
	{-1, -1}, {0, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 0},
}

func (m Move) add(n Move) Move {
	return Move{m.X + n.X, m.Y + n.Y}
}

func (m Move) String() string {
	if m == Unknown {
		return "unknown"
	}
	return fmt.Sprintf("(%d,%d)", m.X, m.Y)
}
