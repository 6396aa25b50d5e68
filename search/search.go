// Package search implements the isolation move search: depth-limited
// minimax, its alpha-beta-pruned variant, and the time-bounded
// iterative-deepening driver that wraps them.
package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/Edaward/Udacity-AIND/game"
	"github.com/Edaward/Udacity-AIND/heuristic"
)

const (
	MethodMinimax   = "minimax"
	MethodAlphabeta = "alphabeta"
)

// ErrDeadlineExceeded is the single failure kind the search knows. It
// is raised by the timer check at the start of every recursive call and
// unwinds the whole search; only the iterative-deepening driver
// consumes it. It is never surfaced to the caller of Solve.
var ErrDeadlineExceeded = errors.New("search deadline exceeded")

// TimeLeft reports the remaining budget for the current turn. The
// driver and both cores abort once it drops to the configured margin.
type TimeLeft func() time.Duration

// Config holds the recognized search options.
type Config struct {
	// SearchDepth is the fixed depth bound used when Iterative is off.
	SearchDepth int
	// ScoreFn evaluates non-terminal leaves. Defaults to
	// heuristic.MobilityDiff.
	ScoreFn heuristic.Fn
	// Iterative selects iterative deepening over a single fixed-depth
	// search.
	Iterative bool
	// Method is MethodMinimax or MethodAlphabeta.
	Method string
	// Timeout is the remaining-time margin below which the search
	// aborts and returns its best move so far.
	Timeout time.Duration
}

// Solver runs minimax or alphabeta searches over isolation positions.
// It is single-threaded; a Solver must not be shared between
// concurrent searches.
type Solver struct {
	scoreFn     heuristic.Fn
	searchDepth int
	iterative   bool
	method      string
	margin      time.Duration

	timeLeft TimeLeft

	// node accounting, reset per Solve
	totalNodes int
	leafEvals  int
}

// Init initializes the solver from a config, filling in defaults.
func (s *Solver) Init(cfg Config) error {
	if cfg.Method != "" && cfg.Method != MethodMinimax && cfg.Method != MethodAlphabeta {
		return fmt.Errorf("unknown search method %q", cfg.Method)
	}
	s.method = cfg.Method
	if s.method == "" {
		s.method = MethodMinimax
	}
	s.scoreFn = cfg.ScoreFn
	if s.scoreFn == nil {
		s.scoreFn = heuristic.MobilityDiff
	}
	s.searchDepth = cfg.SearchDepth
	if s.searchDepth <= 0 {
		s.searchDepth = 3
	}
	s.iterative = cfg.Iterative
	s.margin = cfg.Timeout
	return nil
}

// SetTimeLeft sets the remaining-time probe. A nil probe means no
// deadline; the cores then never abort.
func (s *Solver) SetTimeLeft(tl TimeLeft) {
	s.timeLeft = tl
}

// TotalNodes returns the number of nodes expanded by the last search.
func (s *Solver) TotalNodes() int { return s.totalNodes }

// LeafEvals returns the number of leaf evaluations performed by the
// last search.
func (s *Solver) LeafEvals() int { return s.leafEvals }

// ResetCounters zeroes the node accounting.
func (s *Solver) ResetCounters() {
	s.totalNodes = 0
	s.leafEvals = 0
}

// checkDeadline is called on entry to every recursive search call.
func (s *Solver) checkDeadline() error {
	if s.timeLeft != nil && s.timeLeft() <= s.margin {
		return ErrDeadlineExceeded
	}
	return nil
}

// perspective returns the player the evaluation function should score
// for at this ply. A maximizing ply always represents the player the
// search was started for, so the active player there is the searcher;
// on minimizing plies the searcher is the inactive player.
func (s *Solver) perspective(pos *game.Position, maximizing bool) game.Player {
	if maximizing {
		return pos.ActivePlayer()
	}
	return pos.InactivePlayer()
}
