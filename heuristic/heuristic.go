// Package heuristic contains the evaluation functions used to score
// non-terminal isolation positions from one player's perspective.
package heuristic

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/Edaward/Udacity-AIND/game"
)

// Fn scores a position from the perspective of the given player.
// A certain loss for that player is math.Inf(-1), a certain win is
// math.Inf(1); anything else is a finite estimate.
type Fn func(pos *game.Position, player game.Player) float64

// MobilityDiff is the default evaluation: the number of legal moves
// available to the player minus the number available to the opponent.
func MobilityDiff(pos *game.Position, player game.Player) float64 {
	if pos.IsLoser(player) {
		return math.Inf(-1)
	}
	if pos.IsWinner(player) {
		return math.Inf(1)
	}
	own := len(pos.LegalMoves(player))
	opp := len(pos.LegalMoves(player.Opponent()))
	return float64(own - opp)
}

// WeightedMobility returns a mobility evaluation that weighs the
// opponent's moves by the given factor. Factors above 1 play more
// aggressively, chasing positions that restrict the opponent.
func WeightedMobility(factor float64) Fn {
	return func(pos *game.Position, player game.Player) float64 {
		if pos.IsLoser(player) {
			return math.Inf(-1)
		}
		if pos.IsWinner(player) {
			return math.Inf(1)
		}
		own := len(pos.LegalMoves(player))
		opp := len(pos.LegalMoves(player.Opponent()))
		return float64(own) - factor*float64(opp)
	}
}

// CenterDistance is a mobility evaluation tempered by how far the
// player has strayed from the board center. Central cells keep more
// knight moves in range late in the game.
func CenterDistance(pos *game.Position, player game.Player) float64 {
	if pos.IsLoser(player) {
		return math.Inf(-1)
	}
	if pos.IsWinner(player) {
		return math.Inf(1)
	}
	own := len(pos.LegalMoves(player))
	opp := len(pos.LegalMoves(player.Opponent()))
	loc := pos.Location(player)
	if loc.IsNoMove() {
		return float64(own - opp)
	}
	cr := float64(pos.Height()-1) / 2
	cc := float64(pos.Width()-1) / 2
	dist := math.Abs(float64(loc.Row)-cr) + math.Abs(float64(loc.Col)-cc)
	return float64(own-opp) - dist/float64(pos.Width()+pos.Height())
}

var registry = map[string]Fn{
	"mobility":   MobilityDiff,
	"aggressive": WeightedMobility(2),
	"center":     CenterDistance,
}

// ByName looks up a registered evaluation function.
func ByName(name string) (Fn, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q (have %v)", name, Names())
	}
	return fn, nil
}

// Names lists the registered evaluation functions.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}
