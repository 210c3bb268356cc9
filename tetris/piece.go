package tetris

import (
	"iter"
	"math/rand/v2"
)

// Piece is a tetromino anchored at board cell (X, Y), the top-left corner
// of its shape's bounding box. A piece holds its own copy of the shape and
// never references a Board.
type Piece struct {
	Kind  Kind  `json:"-"`
	Shape Shape `json:"shape"`
	Color Color `json:"color"`
	X     int   `json:"x"`
	Y     int   `json:"y"`
}

// Cells yields the board coordinates (x, y) of every filled cell.
func (p Piece) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for row, cols := range p.Shape {
			for col, cell := range cols {
				if cell == 0 {
					continue
				}
				if !yield(p.X+col, p.Y+row) {
					return
				}
			}
		}
	}
}

// RNG is the randomness a Spawner draws from.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// globalRNG draws from the math/rand/v2 top-level source, which is safe for
// concurrent use.
type globalRNG struct{}

func (globalRNG) IntN(n int) int {
	return rand.IntN(n)
}

// Spawner creates pieces at the spawn anchor, choosing each kind uniformly
// and independently of earlier draws.
type Spawner struct {
	rng RNG
}

// NewSpawner returns a Spawner drawing from rng, or from the process-wide
// source when rng is nil.
func NewSpawner(rng RNG) *Spawner {
	if rng == nil {
		rng = globalRNG{}
	}
	return &Spawner{rng: rng}
}

// Next consumes one draw and returns the selected piece.
func (s *Spawner) Next() Piece {
	return SpawnPiece(Kind(s.rng.IntN(KindCount)))
}

// SpawnPiece returns the piece of kind k at the spawn anchor. It panics if
// k is not a catalogue kind.
func SpawnPiece(k Kind) Piece {
	t, ok := Lookup(k)
	if !ok {
		panic("tetris: unknown piece kind " + k.String())
	}
	return Piece{
		Kind:  t.Kind,
		Shape: t.Shape,
		Color: t.Color,
		X:     SpawnX,
		Y:     SpawnY,
	}
}

var defaultSpawner = NewSpawner(nil)

// RandomPiece returns a uniformly chosen piece from the process-wide source.
func RandomPiece() Piece {
	return defaultSpawner.Next()
}
