package tetris

import (
	"math"

	"github.com/kamstrup/intmap"
)

// Tally counts spawned pieces per kind. It is not safe for concurrent use.
type Tally struct {
	counts *intmap.Map[Kind, int]
	total  int
}

func NewTally() *Tally {
	return &Tally{counts: intmap.New[Kind, int](KindCount)}
}

func (t *Tally) Record(p Piece) {
	n, _ := t.counts.Get(p.Kind)
	t.counts.Put(p.Kind, n+1)
	t.total++
}

func (t *Tally) Count(k Kind) int {
	n, _ := t.counts.Get(k)
	return n
}

func (t *Tally) Total() int {
	return t.total
}

// Frequency returns the share of recorded pieces that were of kind k.
func (t *Tally) Frequency(k Kind) float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.Count(k)) / float64(t.total)
}

// MaxDeviation returns the largest relative deviation of any kind's
// frequency from the uniform 1/KindCount.
func (t *Tally) MaxDeviation() float64 {
	if t.total == 0 {
		return 0
	}
	const expected = 1.0 / KindCount
	worst := 0.0
	for k := range Kind(KindCount) {
		worst = math.Max(worst, math.Abs(t.Frequency(k)-expected)/expected)
	}
	return worst
}
