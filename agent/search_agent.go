package agent

import (
	"github.com/rs/zerolog/log"

	"github.com/Edaward/Udacity-AIND/game"
	"github.com/Edaward/Udacity-AIND/move"
	"github.com/Edaward/Udacity-AIND/openingbook"
	"github.com/Edaward/Udacity-AIND/search"
)

// SearchAgent picks moves with the time-bounded search engine,
// consulting an opening book first when one is attached.
type SearchAgent struct {
	name   string
	solver search.Solver
	book   *openingbook.Book
}

// NewSearchAgent builds a search agent from a search config.
func NewSearchAgent(name string, cfg search.Config) (*SearchAgent, error) {
	a := &SearchAgent{name: name}
	if err := a.solver.Init(cfg); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *SearchAgent) Name() string { return a.name }

// UseBook attaches an opening book consulted before searching.
func (a *SearchAgent) UseBook(b *openingbook.Book) {
	a.book = b
}

// Solver exposes the underlying solver, mainly so callers can read
// node counts after a turn.
func (a *SearchAgent) Solver() *search.Solver {
	return &a.solver
}

func (a *SearchAgent) GetMove(pos *game.Position, legalMoves []move.Move, timeLeft search.TimeLeft) move.Move {
	if len(legalMoves) == 0 {
		return move.NoMove
	}
	if a.book != nil {
		if m, ok := a.book.Lookup(pos); ok && pos.IsLegalMove(m) {
			log.Debug().Stringer("move", m).Msg("book-move")
			return m
		}
	}
	return a.solver.Solve(pos, legalMoves, timeLeft)
}
