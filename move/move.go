// Package move defines the Move type for the isolation game. A move is
// the board cell the active player will occupy next.
package move

import "fmt"

// Move is a (row, col) cell coordinate pair.
type Move struct {
	Row int
	Col int
}

// NoMove is the sentinel returned when a player has no move available.
var NoMove = Move{-1, -1}

// IsNoMove returns true if this move is the no-move sentinel.
func (m Move) IsNoMove() bool {
	return m == NoMove
}

func (m Move) String() string {
	if m.IsNoMove() {
		return "(no move)"
	}
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}
