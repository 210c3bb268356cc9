package tetris

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Shape is a tetromino occupancy matrix in its default orientation,
// indexed as shape[row][col] with 1 for a filled cell.
type Shape [][]int

func (s Shape) Height() int {
	return len(s)
}

// Width returns the length of the longest row.
func (s Shape) Width() int {
	w := 0
	for _, row := range s {
		w = max(w, len(row))
	}
	return w
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	clone := make(Shape, len(s))
	for i, row := range s {
		clone[i] = append([]int(nil), row...)
	}
	return clone
}

// String formats the shape as a nested list, e.g. [[0,1,0],[1,1,1]].
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, row := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(cell))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}

var ErrInvalidColor = errors.New("invalid color")

// Color is an RGB display color in "#rrggbb" form.
type Color string

// ParseColor validates s as a "#rrggbb" hex color.
func ParseColor(s string) (Color, error) {
	if _, err := decodeHex(s); err != nil {
		return "", err
	}
	return Color(strings.ToLower(s)), nil
}

// RGBA decodes the color for renderers. Malformed colors decode to
// transparent black.
func (c Color) RGBA() color.RGBA {
	v, err := decodeHex(string(c))
	if err != nil {
		return color.RGBA{}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

func decodeHex(s string) (uint32, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return uint32(v), nil
}
