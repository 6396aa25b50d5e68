// Package openingbook stores precomputed opening moves keyed by a hash
// of the position, so an agent can skip search entirely in the first
// few plies.
package openingbook

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/cespare/xxhash"
	"gopkg.in/yaml.v3"

	"github.com/Edaward/Udacity-AIND/game"
	"github.com/Edaward/Udacity-AIND/move"
)

// Book maps position hashes to recorded best moves.
type Book struct {
	entries map[uint64]move.Move
}

func New() *Book {
	return &Book{entries: make(map[uint64]move.Move)}
}

// Len returns the number of recorded positions.
func (b *Book) Len() int { return len(b.entries) }

// Add records the best known move for a position.
func (b *Book) Add(pos *game.Position, m move.Move) {
	b.entries[Hash(pos)] = m
}

// Lookup returns the recorded move for a position, if any.
func (b *Book) Lookup(pos *game.Position) (move.Move, bool) {
	m, ok := b.entries[Hash(pos)]
	return m, ok
}

// Hash returns a stable digest of a position: dimensions, side to
// move, both player locations and every cell's occupancy feed into it,
// so two positions hash equal iff they are the same game state.
func Hash(pos *game.Position) uint64 {
	h := xxhash.New()
	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}
	writeInt(pos.Width())
	writeInt(pos.Height())
	writeInt(int(pos.ActivePlayer()))
	for _, pl := range []game.Player{game.Player1, game.Player2} {
		loc := pos.Location(pl)
		writeInt(loc.Row)
		writeInt(loc.Col)
	}
	row := make([]byte, pos.Width())
	for r := 0; r < pos.Height(); r++ {
		for c := 0; c < pos.Width(); c++ {
			row[c] = 0
			if !pos.CellOpen(r, c) {
				row[c] = 1
			}
		}
		h.Write(row)
	}
	return h.Sum64()
}

type bookEntry struct {
	Key uint64 `yaml:"key"`
	Row int    `yaml:"row"`
	Col int    `yaml:"col"`
}

type bookFile struct {
	Entries []bookEntry `yaml:"entries"`
}

// Save writes the book to a YAML file.
func (b *Book) Save(path string) error {
	bf := bookFile{}
	for k, m := range b.entries {
		bf.Entries = append(bf.Entries, bookEntry{Key: k, Row: m.Row, Col: m.Col})
	}
	out, err := yaml.Marshal(&bf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

// Load reads a book previously written with Save.
func Load(path string) (*Book, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading opening book: %w", err)
	}
	var bf bookFile
	if err := yaml.Unmarshal(dat, &bf); err != nil {
		return nil, fmt.Errorf("parsing opening book: %w", err)
	}
	b := New()
	for _, e := range bf.Entries {
		b.entries[e.Key] = move.Move{Row: e.Row, Col: e.Col}
	}
	return b, nil
}
