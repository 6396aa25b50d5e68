package search

import (
	"math"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edaward/Udacity-AIND/game"
	"github.com/Edaward/Udacity-AIND/move"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func newSolver(t *testing.T, cfg Config) *Solver {
	t.Helper()
	s := &Solver{}
	require.NoError(t, s.Init(cfg))
	return s
}

// cornerPosition is a 3x3 board with player 1 at (0,0) to move and
// player 2 at (2,2).
func cornerPosition() *game.Position {
	pos := game.NewPosition(3, 3)
	pos.PlacePlayer(game.Player1, move.Move{Row: 0, Col: 0})
	pos.PlacePlayer(game.Player2, move.Move{Row: 2, Col: 2})
	return pos
}

func TestMinimaxDepthZeroPerspective(t *testing.T) {
	s := newSolver(t, Config{})
	pos := cornerPosition()

	// Maximizing: evaluate for the active player (player 1, 2 moves
	// vs 2 moves).
	score, mv, err := s.Minimax(pos, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
	assert.True(t, mv.IsNoMove())

	// Minimizing: evaluate for the inactive player (player 2).
	score, _, err = s.Minimax(pos, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestMinimaxTerminalAtInternalNode(t *testing.T) {
	// Player 1 is stuck in the 3x3 center with depth to spare; the
	// empty move list must be treated as an immediate terminal
	// evaluation, not an unmodified loop seed.
	pos := game.NewPosition(3, 3)
	pos.PlacePlayer(game.Player1, move.Move{Row: 1, Col: 1})
	pos.PlacePlayer(game.Player2, move.Move{Row: 0, Col: 0})

	s := newSolver(t, Config{})
	score, mv, err := s.Minimax(pos, 5, true)
	require.NoError(t, err)
	assert.True(t, math.IsInf(score, -1))
	assert.True(t, mv.IsNoMove())

	// From the minimizing side the stuck mover means a win for the
	// perspective player.
	score, _, err = s.Minimax(pos, 5, false)
	require.NoError(t, err)
	assert.True(t, math.IsInf(score, 1))
}

func TestMinimaxDepthOne(t *testing.T) {
	s := newSolver(t, Config{})
	pos := cornerPosition()

	// Both of player 1's moves ((1,2) and (2,1)) leave one own reply
	// against two for the opponent, scoring -1. Ties keep the
	// earliest-seen move.
	score, mv, err := s.Minimax(pos, 1, true)
	require.NoError(t, err)
	assert.Equal(t, -1.0, score)
	assert.Equal(t, move.Move{Row: 1, Col: 2}, mv)
}

func TestMinimaxFindsForcedWin(t *testing.T) {
	// Player 2 sits on the dead 3x3 center; any player 1 move wins
	// immediately.
	pos := game.NewPosition(3, 3)
	pos.PlacePlayer(game.Player1, move.Move{Row: 0, Col: 0})
	pos.PlacePlayer(game.Player2, move.Move{Row: 1, Col: 1})

	s := newSolver(t, Config{})
	score, mv, err := s.Minimax(pos, 3, true)
	require.NoError(t, err)
	assert.True(t, math.IsInf(score, 1))
	assert.Equal(t, move.Move{Row: 1, Col: 2}, mv)
}

func TestMinimaxDeadline(t *testing.T) {
	s := newSolver(t, Config{Timeout: 10 * time.Millisecond})
	s.SetTimeLeft(func() time.Duration { return 5 * time.Millisecond })

	_, _, err := s.Minimax(cornerPosition(), 3, true)
	assert.ErrorIs(t, err, ErrDeadlineExceeded)
	assert.Equal(t, 0, s.TotalNodes())
}

func TestMinimaxDeadlineMidSearch(t *testing.T) {
	calls := 0
	s := newSolver(t, Config{Timeout: 10 * time.Millisecond})
	s.SetTimeLeft(func() time.Duration {
		calls++
		if calls > 2 {
			return 0
		}
		return time.Hour
	})

	// The abort unwinds from deep in the tree, not just the root.
	_, _, err := s.Minimax(cornerPosition(), 4, true)
	assert.ErrorIs(t, err, ErrDeadlineExceeded)
}

func TestInitRejectsUnknownMethod(t *testing.T) {
	s := &Solver{}
	assert.Error(t, s.Init(Config{Method: "montecarlo"}))
}
