// Package game contains the isolation board state and move generation.
// Two players alternate knight-style moves on a rectangular grid; every
// cell a player has ever occupied stays blocked, and a player with no
// legal move on their turn loses.
package game

import (
	"github.com/Edaward/Udacity-AIND/move"
)

// Player is one of the two player identities.
type Player uint8

const (
	Player1 Player = iota
	Player2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) String() string {
	if p == Player1 {
		return "player 1"
	}
	return "player 2"
}

type cellState uint8

const (
	cellOpen cellState = iota
	cellBlocked
)

// knightDirections is the fixed move-generation order. Tests and the
// alpha-beta/minimax equivalence guarantee depend on this order being
// deterministic, so don't reorder it.
var knightDirections = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Position is a snapshot of the game. It is only ever advanced via
// ForecastMove, which returns a fresh Position; nothing in the search
// mutates a Position it was handed.
type Position struct {
	width, height int
	cells         []cellState
	locs          [2]move.Move
	moveCount     int
	onTurn        Player
}

// NewPosition creates an empty board with both players unplaced and
// Player1 to move.
func NewPosition(width, height int) *Position {
	return &Position{
		width:  width,
		height: height,
		cells:  make([]cellState, width*height),
		locs:   [2]move.Move{move.NoMove, move.NoMove},
		onTurn: Player1,
	}
}

func (p *Position) Width() int     { return p.width }
func (p *Position) Height() int    { return p.height }
func (p *Position) MoveCount() int { return p.moveCount }

// ActivePlayer returns the player to move.
func (p *Position) ActivePlayer() Player { return p.onTurn }

// InactivePlayer returns the player who just moved.
func (p *Position) InactivePlayer() Player { return p.onTurn.Opponent() }

// Opponent returns the opponent of the given player.
func (p *Position) Opponent(pl Player) Player { return pl.Opponent() }

// Location returns the given player's current cell, or move.NoMove if
// the player has not been placed yet.
func (p *Position) Location(pl Player) move.Move { return p.locs[pl] }

func (p *Position) inBounds(r, c int) bool {
	return r >= 0 && r < p.height && c >= 0 && c < p.width
}

func (p *Position) open(r, c int) bool {
	return p.cells[r*p.width+c] == cellOpen
}

// LegalMoves returns the given player's legal moves in a deterministic
// order. A player who has not moved yet may occupy any open cell; the
// cells are then enumerated in row-major order.
func (p *Position) LegalMoves(pl Player) []move.Move {
	loc := p.locs[pl]
	if loc.IsNoMove() {
		var moves []move.Move
		for r := 0; r < p.height; r++ {
			for c := 0; c < p.width; c++ {
				if p.open(r, c) {
					moves = append(moves, move.Move{Row: r, Col: c})
				}
			}
		}
		return moves
	}
	var moves []move.Move
	for _, d := range knightDirections {
		r, c := loc.Row+d[0], loc.Col+d[1]
		if p.inBounds(r, c) && p.open(r, c) {
			moves = append(moves, move.Move{Row: r, Col: c})
		}
	}
	return moves
}

// IsLegalMove reports whether m is currently legal for the active player.
func (p *Position) IsLegalMove(m move.Move) bool {
	for _, lm := range p.LegalMoves(p.onTurn) {
		if lm == m {
			return true
		}
	}
	return false
}

// ForecastMove returns a new Position reflecting the active player
// occupying the given cell. The receiver is not modified.
func (p *Position) ForecastMove(m move.Move) *Position {
	next := &Position{
		width:     p.width,
		height:    p.height,
		cells:     make([]cellState, len(p.cells)),
		locs:      p.locs,
		moveCount: p.moveCount + 1,
		onTurn:    p.onTurn.Opponent(),
	}
	copy(next.cells, p.cells)
	next.cells[m.Row*p.width+m.Col] = cellBlocked
	next.locs[p.onTurn] = m
	return next
}

// IsLoser returns true if the given player is to move and has no legal
// moves; having nowhere to go on your turn is the loss condition.
func (p *Position) IsLoser(pl Player) bool {
	return pl == p.onTurn && len(p.LegalMoves(pl)) == 0
}

// IsWinner returns true if the opponent of the given player is to move
// and has no legal moves.
func (p *Position) IsWinner(pl Player) bool {
	opp := pl.Opponent()
	return opp == p.onTurn && len(p.LegalMoves(opp)) == 0
}

// GameOver returns true if the player to move has no legal moves.
func (p *Position) GameOver() bool {
	return len(p.LegalMoves(p.onTurn)) == 0
}

// CellOpen reports whether the cell at (r, c) is open.
func (p *Position) CellOpen(r, c int) bool {
	return p.open(r, c)
}

// OpenCellCount returns the number of cells still open.
func (p *Position) OpenCellCount() int {
	n := 0
	for _, c := range p.cells {
		if c == cellOpen {
			n++
		}
	}
	return n
}

// SetBlocked blocks a cell directly. Setup helper for tests and book
// construction; never used during search.
func (p *Position) SetBlocked(r, c int) {
	p.cells[r*p.width+c] = cellBlocked
}

// PlacePlayer puts a player on a cell directly, blocking it. Setup
// helper for tests; never used during search.
func (p *Position) PlacePlayer(pl Player, m move.Move) {
	p.locs[pl] = m
	p.cells[m.Row*p.width+m.Col] = cellBlocked
}

// SetTurn sets the player to move. Setup helper for tests.
func (p *Position) SetTurn(pl Player) {
	p.onTurn = pl
}
