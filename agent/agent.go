// Package agent contains the players that can sit at an isolation
// board: the search-driven agent and the baseline opponents used by
// the autoplay harness.
package agent

import (
	"github.com/Edaward/Udacity-AIND/game"
	"github.com/Edaward/Udacity-AIND/move"
	"github.com/Edaward/Udacity-AIND/search"
)

// Agent picks one move per turn. GetMove must return before the probe
// reaches zero, and returns move.NoMove only when legalMoves is empty.
type Agent interface {
	Name() string
	GetMove(pos *game.Position, legalMoves []move.Move, timeLeft search.TimeLeft) move.Move
}
