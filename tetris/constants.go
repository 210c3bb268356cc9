package tetris

// Playing field dimensions in cells.
const (
	Width  = 10
	Height = 20
)

// CellPixelSize is the edge length of one cell when drawn, in pixels.
const CellPixelSize = 30

// Spawn anchor for new pieces. The x offset puts the piece's bounding box
// one cell left of center on even widths, regardless of the shape's span.
const (
	SpawnX = Width/2 - 1
	SpawnY = 0
)
