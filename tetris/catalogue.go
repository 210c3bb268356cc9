package tetris

import "fmt"

// Kind identifies a tetromino. Its value is the catalogue index.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of entries in the catalogue.
const KindCount = 7

var kindNames = [KindCount]string{"I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Tetromino pairs a shape with its display color.
type Tetromino struct {
	Kind  Kind
	Shape Shape
	Color Color
}

var catalogue = [KindCount]Tetromino{
	{KindI, Shape{{1, 1, 1, 1}}, "#00f0f0"},
	{KindO, Shape{{1, 1}, {1, 1}}, "#f0f000"},
	{KindT, Shape{{0, 1, 0}, {1, 1, 1}}, "#a000f0"},
	{KindS, Shape{{1, 1, 0}, {0, 1, 1}}, "#00f000"},
	{KindZ, Shape{{0, 1, 1}, {1, 1, 0}}, "#f00000"},
	{KindJ, Shape{{1, 0, 0}, {1, 1, 1}}, "#0000f0"},
	{KindL, Shape{{0, 0, 1}, {1, 1, 1}}, "#f0a000"},
}

// Catalogue returns a copy of every tetromino in catalogue order.
func Catalogue() []Tetromino {
	out := make([]Tetromino, len(catalogue))
	for i, t := range catalogue {
		out[i] = t.clone()
	}
	return out
}

// Lookup returns a copy of the catalogue entry for k.
func Lookup(k Kind) (Tetromino, bool) {
	if !k.Valid() {
		return Tetromino{}, false
	}
	return catalogue[k].clone(), true
}

func (t Tetromino) clone() Tetromino {
	t.Shape = t.Shape.Clone()
	return t
}
