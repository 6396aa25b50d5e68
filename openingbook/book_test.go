package openingbook

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edaward/Udacity-AIND/game"
	"github.com/Edaward/Udacity-AIND/move"
)

func TestHashDistinguishesPositions(t *testing.T) {
	a := game.NewPosition(5, 5)
	b := game.NewPosition(5, 5)
	assert.Equal(t, Hash(a), Hash(b))

	b.SetBlocked(2, 2)
	assert.NotEqual(t, Hash(a), Hash(b))

	c := game.NewPosition(5, 5)
	c.SetTurn(game.Player2)
	assert.NotEqual(t, Hash(a), Hash(c))

	d := game.NewPosition(5, 5)
	d.PlacePlayer(game.Player1, move.Move{Row: 2, Col: 2})
	assert.NotEqual(t, Hash(a), Hash(d))
}

func TestAddLookup(t *testing.T) {
	b := New()
	pos := game.NewPosition(7, 7)

	_, ok := b.Lookup(pos)
	assert.False(t, ok)

	b.Add(pos, move.Move{Row: 3, Col: 3})
	m, ok := b.Lookup(pos)
	require.True(t, ok)
	assert.Equal(t, move.Move{Row: 3, Col: 3}, m)

	// A different position does not collide.
	_, ok = b.Lookup(pos.ForecastMove(move.Move{Row: 3, Col: 3}))
	assert.False(t, ok)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	b := New()
	pos := game.NewPosition(7, 7)
	b.Add(pos, move.Move{Row: 3, Col: 3})
	next := pos.ForecastMove(move.Move{Row: 3, Col: 3})
	b.Add(next, move.Move{Row: 0, Col: 0})

	path := filepath.Join(t.TempDir(), "book.yaml")
	require.NoError(t, b.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
	m, ok := loaded.Lookup(pos)
	require.True(t, ok)
	assert.Equal(t, move.Move{Row: 3, Col: 3}, m)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	pos := game.NewPosition(4, 4)
	b := Build(pos, 1, 5)
	require.GreaterOrEqual(t, b.Len(), 1)

	m, ok := b.Lookup(pos)
	require.True(t, ok)
	assert.True(t, pos.IsLegalMove(m))
}
