// Package automatic plays computer vs computer isolation games: single
// games under a per-move clock, and multi-game series with statistics,
// for comparing agents against each other.
package automatic

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Edaward/Udacity-AIND/agent"
	"github.com/Edaward/Udacity-AIND/config"
	"github.com/Edaward/Udacity-AIND/game"
)

// Result is the outcome of a single game.
type Result struct {
	Winner     game.Player
	WinnerName string
	Moves      int
	// Forfeit is set when the loser overran the move clock or
	// returned an illegal move, rather than running out of moves.
	Forfeit bool
}

// GameRunner plays one game between two agents under a per-move clock.
type GameRunner struct {
	agents  [2]agent.Agent
	clock   time.Duration
	logchan chan string
	gameID  int
}

// NewGameRunner instantiates a runner. agents[0] plays as player 1.
// logchan may be nil; when set, one CSV line per move is sent to it.
func NewGameRunner(a1, a2 agent.Agent, cfg *config.Config, logchan chan string) *GameRunner {
	return &GameRunner{
		agents:  [2]agent.Agent{a1, a2},
		clock:   cfg.GameClock,
		logchan: logchan,
	}
}

// Run plays a full game from the given position and returns the result.
func (r *GameRunner) Run(pos *game.Position) Result {
	for {
		mover := pos.ActivePlayer()
		legalMoves := pos.LegalMoves(mover)
		if len(legalMoves) == 0 {
			return r.result(pos, pos.InactivePlayer(), false)
		}

		deadline := time.Now().Add(r.clock)
		timeLeft := func() time.Duration { return time.Until(deadline) }
		mv := r.agents[mover].GetMove(pos, legalMoves, timeLeft)

		if time.Now().After(deadline) {
			log.Debug().Stringer("player", mover).Msg("move-clock-overrun")
			return r.result(pos, mover.Opponent(), true)
		}
		if !pos.IsLegalMove(mv) {
			log.Debug().Stringer("player", mover).Stringer("move", mv).Msg("illegal-move")
			return r.result(pos, mover.Opponent(), true)
		}

		if r.logchan != nil {
			r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v\n",
				r.gameID, pos.MoveCount(), r.agents[mover].Name(), mv.Row, mv.Col)
		}
		pos = pos.ForecastMove(mv)
	}
}

func (r *GameRunner) result(pos *game.Position, winner game.Player, forfeit bool) Result {
	return Result{
		Winner:     winner,
		WinnerName: r.agents[winner].Name(),
		Moves:      pos.MoveCount(),
		Forfeit:    forfeit,
	}
}
