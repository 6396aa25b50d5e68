package search

import (
	"math"

	"github.com/Edaward/Udacity-AIND/game"
	"github.com/Edaward/Udacity-AIND/move"
)

// Minimax runs an exhaustive depth-limited minimax search and returns
// the best score and the move that first achieved it. It returns
// ErrDeadlineExceeded if the time probe drops to the margin anywhere
// in the tree; the partial score is then meaningless and must be
// discarded.
func (s *Solver) Minimax(pos *game.Position, depth int, maximizing bool) (float64, move.Move, error) {
	if err := s.checkDeadline(); err != nil {
		return 0, move.NoMove, err
	}
	s.totalNodes++

	if depth == 0 {
		s.leafEvals++
		return s.scoreFn(pos, s.perspective(pos, maximizing)), move.NoMove, nil
	}

	moves := pos.LegalMoves(pos.ActivePlayer())
	if len(moves) == 0 {
		// The mover is out of moves, so this node is terminal no
		// matter how much depth remains. Evaluate it directly rather
		// than letting the loop seed below leak through.
		s.leafEvals++
		return s.scoreFn(pos, s.perspective(pos, maximizing)), move.NoMove, nil
	}

	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	bestMove := move.NoMove
	for _, m := range moves {
		score, _, err := s.Minimax(pos.ForecastMove(m), depth-1, !maximizing)
		if err != nil {
			return 0, move.NoMove, err
		}
		if maximizing {
			if score > best {
				best = score
				bestMove = m
			}
		} else {
			if score < best {
				best = score
				bestMove = m
			}
		}
	}
	return best, bestMove, nil
}
