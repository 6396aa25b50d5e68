package search

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Edaward/Udacity-AIND/game"
	"github.com/Edaward/Udacity-AIND/move"
)

// Solve selects a move to play within the remaining time budget. With
// iterative deepening on, it re-searches at increasing depth and always
// returns the best move from the last fully completed depth; otherwise
// it runs a single search at the configured depth. Solve returns
// before the probe's budget drops below the configured margin.
func (s *Solver) Solve(pos *game.Position, legalMoves []move.Move, timeLeft TimeLeft) move.Move {
	if len(legalMoves) == 0 {
		return move.NoMove
	}
	s.timeLeft = timeLeft
	s.ResetCounters()

	tstart := time.Now()
	log.Debug().
		Str("method", s.method).
		Bool("iterative", s.iterative).
		Int("search-depth", s.searchDepth).
		Dur("margin", s.margin).
		Msg("solve-config")

	// A safe default in case no iteration ever completes.
	bestMove := legalMoves[0]

	maxDepth := s.searchDepth
	if s.iterative {
		// Searching deeper than the number of open cells cannot add
		// information beyond a terminal outcome.
		maxDepth = pos.Width()*pos.Height() - pos.MoveCount()
		if maxDepth < 1 {
			maxDepth = 1
		}
	}
	startDepth := maxDepth
	if s.iterative {
		startDepth = 1
	}

	for depth := startDepth; depth <= maxDepth; depth++ {
		score, mv, err := s.searchRoot(pos, depth)
		if err != nil {
			// Deadline hit mid-iteration; the partial result is
			// unreliable. Keep the best move from the last completed
			// depth.
			log.Debug().Int("depth", depth).Msg("deadline-during-iteration")
			break
		}
		if math.IsInf(score, 1) {
			// Forced win proven; deepening further only burns budget.
			bestMove = mv
			log.Debug().Int("depth", depth).Stringer("move", mv).Msg("forced-win-found")
			break
		}
		if !math.IsInf(score, -1) {
			bestMove = mv
		}
		// A -Inf score means every line explored at this depth loses.
		// Keep the previous, shallower best move rather than adopt a
		// doomed choice, but keep deepening; this is a hedge, not a
		// guarantee.
	}

	log.Debug().
		Int("total-nodes", s.totalNodes).
		Int("leaf-evals", s.leafEvals).
		Float64("elapsed-sec", time.Since(tstart).Seconds()).
		Stringer("move", bestMove).
		Msg("solve-returning")
	return bestMove
}

func (s *Solver) searchRoot(pos *game.Position, depth int) (float64, move.Move, error) {
	if s.method == MethodAlphabeta {
		return s.Alphabeta(pos, depth, math.Inf(-1), math.Inf(1), true)
	}
	return s.Minimax(pos, depth, true)
}
