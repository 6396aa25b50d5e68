package openingbook

import (
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/Edaward/Udacity-AIND/game"
	"github.com/Edaward/Udacity-AIND/move"
)

// Build records best opening moves for the given position and, line by
// line, for every opponent reply along the recorded line, down to the
// given number of plies. Best moves are picked by random-playout win
// rate, so building is cheap but the book is only as good as the
// playout count.
func Build(pos *game.Position, plies, playouts int) *Book {
	b := New()
	build(b, pos, plies, playouts)
	log.Debug().Int("positions", b.Len()).Msg("book-built")
	return b
}

func build(b *Book, pos *game.Position, plies, playouts int) {
	if plies <= 0 || pos.GameOver() {
		return
	}
	best := bestByPlayouts(pos, playouts)
	if best.IsNoMove() {
		return
	}
	b.Add(pos, best)
	after := pos.ForecastMove(best)
	for _, reply := range after.LegalMoves(after.ActivePlayer()) {
		build(b, after.ForecastMove(reply), plies-2, playouts)
	}
}

// bestByPlayouts picks the legal move with the best win rate over
// random playouts. Ties keep the earliest-seen move.
func bestByPlayouts(pos *game.Position, playouts int) move.Move {
	mover := pos.ActivePlayer()
	best := move.NoMove
	bestWins := -1
	for _, m := range pos.LegalMoves(mover) {
		wins := 0
		for i := 0; i < playouts; i++ {
			if winner(pos.ForecastMove(m)) == mover {
				wins++
			}
		}
		if wins > bestWins {
			bestWins = wins
			best = m
		}
	}
	return best
}

// winner plays the position out with uniformly random moves and
// returns who won.
func winner(pos *game.Position) game.Player {
	for {
		moves := pos.LegalMoves(pos.ActivePlayer())
		if len(moves) == 0 {
			return pos.InactivePlayer()
		}
		pos = pos.ForecastMove(moves[frand.Intn(len(moves))])
	}
}
