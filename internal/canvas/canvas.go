// Package canvas draws pixel patterns into braille characters, which is how
// the generated glyph sets get their smooth single-cell animations.
package canvas

import "strings"

// blank is the braille pattern with no raised dots.
const blank = '\u2800'

// dotBits maps a pixel inside a 2x4 braille cell to its dot bit.
//
//	col 0  col 1
//	  1      4     row 0
//	  2      5     row 1
//	  3      6     row 2
//	  7      8     row 3
var dotBits = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Point is a pixel coordinate, x to the right and y downwards.
type Point struct {
	X, Y int
}

// Canvas is a monochrome pixel grid rendered as braille text.
// Width is kept a multiple of 2 and height a multiple of 4.
type Canvas struct {
	width, height int
	on            map[Point]bool
}

// New returns a blank canvas at least width x height pixels large.
func New(width, height int) *Canvas {
	if width < 2 {
		width = 2
	}
	if height < 4 {
		height = 4
	}
	width += width % 2
	if r := height % 4; r != 0 {
		height += 4 - r
	}
	return &Canvas{width: width, height: height, on: make(map[Point]bool)}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Cells returns the canvas dimensions in braille characters.
func (c *Canvas) Cells() (cols, rows int) {
	return c.width / 2, c.height / 4
}

// Set raises the dot at p. Points outside the canvas are ignored.
func (c *Canvas) Set(p Point) {
	if p.X < 0 || p.Y < 0 || p.X >= c.width || p.Y >= c.height {
		return
	}
	c.on[p] = true
}

// IsSet reports whether the dot at p is raised.
func (c *Canvas) IsSet(p Point) bool {
	return c.on[p]
}

// Reset lowers every dot.
func (c *Canvas) Reset() {
	clear(c.on)
}

func (c *Canvas) cell(col, row int) rune {
	r := blank
	for dx := range 2 {
		for dy := range 4 {
			if c.on[Point{X: col*2 + dx, Y: row*4 + dy}] {
				r |= dotBits[dx][dy]
			}
		}
	}
	return r
}

// String renders the canvas, one text line per braille row.
func (c *Canvas) String() string {
	cols, rows := c.Cells()
	var sb strings.Builder
	sb.Grow(rows * (cols*3 + 1))
	for row := range rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range cols {
			sb.WriteRune(c.cell(col, row))
		}
	}
	return sb.String()
}

// Trail renders one frame per step along path, each showing the head point
// and the length-1 points behind it. The result cycles seamlessly.
func Trail(width, height int, path []Point, length int) []string {
	if len(path) == 0 {
		return nil
	}
	if length < 1 {
		length = 1
	}
	c := New(width, height)
	frames := make([]string, 0, len(path))
	for head := range path {
		c.Reset()
		for i := range min(length, len(path)) {
			c.Set(path[(head-i+len(path))%len(path)])
		}
		frames = append(frames, c.String())
	}
	return frames
}
