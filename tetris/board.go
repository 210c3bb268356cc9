package tetris

import "strings"

// Board is the playing field, indexed as board[row][col]. A cell value of 0
// means empty; any other value is an occupancy marker owned by the caller.
type Board [][]int

// NewBoard allocates an empty Height x Width board. Every call returns
// independent rows.
func NewBoard() Board {
	board := make(Board, Height)
	for y := range board {
		board[y] = make([]int, Width)
	}
	return board
}

func (b Board) Rows() int {
	return len(b)
}

func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// InBounds reports whether column x, row y addresses a cell on the board.
func (b Board) InBounds(x, y int) bool {
	return y >= 0 && y < len(b) && x >= 0 && x < len(b[y])
}

// String renders one line per row, '.' for empty cells and the marker's
// last decimal digit otherwise.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(len(b) * (b.Cols() + 1))
	for _, row := range b {
		for _, cell := range row {
			if cell == 0 {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(byte('0' + cell%10))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
