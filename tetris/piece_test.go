package tetris_test

import (
	"encoding/json"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/plus3/tetromino/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnAnchor(t *testing.T) {
	assert.Equal(t, 4, tetris.SpawnX)
	assert.Equal(t, 0, tetris.SpawnY)

	for range 200 {
		p := tetris.RandomPiece()
		assert.Equal(t, tetris.Width/2-1, p.X)
		assert.Equal(t, 0, p.Y)
	}
}

func TestRandomPieceMatchesCatalogueEntry(t *testing.T) {
	catalogue := tetris.Catalogue()

	for range 500 {
		p := tetris.RandomPiece()

		matches := 0
		for i, tet := range catalogue {
			if assert.ObjectsAreEqual(tet.Shape, p.Shape) {
				matches++
				assert.Equal(t, tet.Color, p.Color, "color must pair with shape %d", i)
				assert.Equal(t, tetris.Kind(i), p.Kind)
			}
		}
		assert.Equal(t, 1, matches, "shape %s", p.Shape)
	}
}

func TestSpawnerForcedT(t *testing.T) {
	spawner := tetris.NewSpawner(&sequenceRNG{values: []int{2}})

	p := spawner.Next()

	assert.Equal(t, tetris.Piece{
		Kind:  tetris.KindT,
		Shape: tetris.Shape{{0, 1, 0}, {1, 1, 1}},
		Color: "#a000f0",
		X:     4,
		Y:     0,
	}, p)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"shape":[[0,1,0],[1,1,1]],"color":"#a000f0","x":4,"y":0}`, string(data))
	assert.Equal(t, `{"shape":[[0,1,0],[1,1,1]],"color":"#a000f0","x":4,"y":0}`, string(data))
}

func TestSpawnerFollowsEveryIndex(t *testing.T) {
	rng := &sequenceRNG{values: []int{0, 1, 2, 3, 4, 5, 6}}
	spawner := tetris.NewSpawner(rng)

	for i := range tetris.KindCount {
		p := spawner.Next()
		tet, _ := tetris.Lookup(tetris.Kind(i))
		assert.Equal(t, tet.Kind, p.Kind)
		assert.Equal(t, tet.Shape, p.Shape)
		assert.Equal(t, tet.Color, p.Color)
	}
	assert.Equal(t, tetris.KindCount, rng.idx, "one draw per piece")
}

func TestSpawnerIsMemoryless(t *testing.T) {
	spawner := tetris.NewSpawner(&sequenceRNG{values: []int{5}})

	for range 20 {
		assert.Equal(t, tetris.KindJ, spawner.Next().Kind)
	}
}

func TestPieceShapeIsNotShared(t *testing.T) {
	p := tetris.SpawnPiece(tetris.KindO)
	p.Shape[0][0] = 0

	q := tetris.SpawnPiece(tetris.KindO)
	assert.Equal(t, 1, q.Shape[0][0])

	tet, _ := tetris.Lookup(tetris.KindO)
	assert.Equal(t, tetris.Shape{{1, 1}, {1, 1}}, tet.Shape)
}

func TestSpawnPieceUnknownKind(t *testing.T) {
	assert.Panics(t, func() { tetris.SpawnPiece(tetris.KindCount) })
}

func TestPieceCells(t *testing.T) {
	p := tetris.SpawnPiece(tetris.KindT)

	type cell struct{ x, y int }
	var cells []cell
	for x, y := range p.Cells() {
		cells = append(cells, cell{x, y})
	}

	assert.Equal(t, []cell{{5, 0}, {4, 1}, {5, 1}, {6, 1}}, cells)
}

func TestPieceCellsStopsEarly(t *testing.T) {
	p := tetris.SpawnPiece(tetris.KindI)

	n := 0
	for range p.Cells() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestSpawnedPiecesFitOnBoard(t *testing.T) {
	board := tetris.NewBoard()
	for _, tet := range tetris.Catalogue() {
		p := tetris.SpawnPiece(tet.Kind)
		for x, y := range p.Cells() {
			assert.True(t, board.InBounds(x, y), "%s cell (%d,%d)", tet.Kind, x, y)
		}
	}
}

func TestRandomPieceDistribution(t *testing.T) {
	const draws = 70000

	tally := tetris.NewTally()
	for range draws {
		tally.Record(tetris.RandomPiece())
	}

	require.Equal(t, draws, tally.Total())
	assert.Less(t, tally.MaxDeviation(), 0.10)
}

func TestSeededSpawnerDistribution(t *testing.T) {
	const draws = 70000

	spawner := tetris.NewSpawner(rand.New(rand.NewPCG(1, 2)))
	tally := tetris.NewTally()
	for range draws {
		tally.Record(spawner.Next())
	}

	for k := range tetris.Kind(tetris.KindCount) {
		assert.InDelta(t, 1.0/tetris.KindCount, tally.Frequency(k), 0.1/tetris.KindCount, "kind %s", k)
	}
}

func TestRandomPieceConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make(chan tetris.Piece, 8*100)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				results <- tetris.RandomPiece()
			}
		}()
	}
	wg.Wait()
	close(results)

	for p := range results {
		assert.True(t, p.Kind.Valid())
		assert.Equal(t, tetris.SpawnX, p.X)
	}
}
