package main

import (
	"flag"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetromino/tetris"
)

const (
	ScreenWidth  = tetris.Width * tetris.CellPixelSize
	ScreenHeight = tetris.Height * tetris.CellPixelSize
)

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	gridColor       = color.RGBA{45, 45, 58, 255}
)

type Game struct {
	Board tetris.Board
	Piece tetris.Piece
}

func main() {
	seed := flag.Uint64("seed", 0, "Seed for the spawned piece. Zero uses the process-wide source.")
	flag.Parse()

	var rng tetris.RNG
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}
	spawner := tetris.NewSpawner(rng)

	game := &Game{
		Board: tetris.NewBoard(),
		Piece: spawner.Next(),
	}
	log.Printf("Spawned %s piece at (%d, %d)\n", game.Piece.Kind, game.Piece.X, game.Piece.Y)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Tetromino Preview")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Preview failed: %v", err)
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for y, row := range g.Board {
		for x, cell := range row {
			if cell != 0 {
				drawCell(screen, x, y, color.RGBA{128, 128, 128, 255})
				continue
			}
			sx, sy := cellOrigin(x, y)
			vector.StrokeRect(screen, sx, sy, tetris.CellPixelSize, tetris.CellPixelSize, 1, gridColor, false)
		}
	}

	pieceColor := g.Piece.Color.RGBA()
	for x, y := range g.Piece.Cells() {
		drawCell(screen, x, y, pieceColor)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func cellOrigin(x, y int) (float32, float32) {
	return float32(x * tetris.CellPixelSize), float32(y * tetris.CellPixelSize)
}

func drawCell(screen *ebiten.Image, x, y int, c color.Color) {
	sx, sy := cellOrigin(x, y)
	vector.DrawFilledRect(screen, sx+1, sy+1, tetris.CellPixelSize-2, tetris.CellPixelSize-2, c, false)
}
