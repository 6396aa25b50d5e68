package search

import (
	"math"

	"github.com/Edaward/Udacity-AIND/game"
	"github.com/Edaward/Udacity-AIND/move"
)

// Alphabeta is Minimax with alpha-beta pruning. Traversal order and
// leaf handling are identical to Minimax, so for the same depth it
// returns the same score, and the same move unless several moves tie
// on score (pruning may skip evaluating later ties). The alpha and
// beta bounds are passed by value; sibling subtrees only see the
// tightening their common ancestor performed before recursing.
func (s *Solver) Alphabeta(pos *game.Position, depth int, alpha, beta float64, maximizing bool) (float64, move.Move, error) {
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
		// Terminal: the mover cannot move. Same special case as in
		// Minimax.
		s.leafEvals++
		return s.scoreFn(pos, s.perspective(pos, maximizing)), move.NoMove, nil
	}

	best := math.Inf(-1)
	if !maximizing {
		best = math.Inf(1)
	}
	bestMove := move.NoMove
	for _, m := range moves {
		score, _, err := s.Alphabeta(pos.ForecastMove(m), depth-1, alpha, beta, !maximizing)
		if err != nil {
			return 0, move.NoMove, err
		}
		if maximizing {
			if score > best {
				best = score
				bestMove = m
			}
			alpha = math.Max(alpha, best)
		} else {
			if score < best {
				best = score
				bestMove = m
			}
			beta = math.Min(beta, best)
		}
		if beta <= alpha {
			// The remaining siblings cannot change what an ancestor
			// sees from this node.
			break
		}
	}
	return best, bestMove, nil
}
