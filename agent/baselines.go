package agent

import (
	"lukechampine.com/frand"

	"github.com/Edaward/Udacity-AIND/game"
	"github.com/Edaward/Udacity-AIND/heuristic"
	"github.com/Edaward/Udacity-AIND/move"
	"github.com/Edaward/Udacity-AIND/search"
)

// RandomAgent plays a uniformly random legal move. The weakest
// baseline for the autoplay harness.
type RandomAgent struct{}

func (RandomAgent) Name() string { return "random" }

func (RandomAgent) GetMove(pos *game.Position, legalMoves []move.Move, timeLeft search.TimeLeft) move.Move {
	if len(legalMoves) == 0 {
		return move.NoMove
	}
	return legalMoves[frand.Intn(len(legalMoves))]
}

// GreedyAgent plays the best static move by a one-ply evaluation,
// with no lookahead beyond its own move.
type GreedyAgent struct {
	scoreFn heuristic.Fn
}

// NewGreedyAgent builds a greedy agent; a nil scoreFn means mobility.
func NewGreedyAgent(scoreFn heuristic.Fn) *GreedyAgent {
	if scoreFn == nil {
		scoreFn = heuristic.MobilityDiff
	}
	return &GreedyAgent{scoreFn: scoreFn}
}

func (a *GreedyAgent) Name() string { return "greedy" }

func (a *GreedyAgent) GetMove(pos *game.Position, legalMoves []move.Move, timeLeft search.TimeLeft) move.Move {
	if len(legalMoves) == 0 {
		return move.NoMove
	}
	mover := pos.ActivePlayer()
	best := legalMoves[0]
	bestScore := a.scoreFn(pos.ForecastMove(legalMoves[0]), mover)
	for _, m := range legalMoves[1:] {
		score := a.scoreFn(pos.ForecastMove(m), mover)
		if score > bestScore {
			bestScore = score
			best = m
		}
	}
	return best
}
