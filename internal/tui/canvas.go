package tui

import "strings"

// layer decides which drawing wins a cell; higher layers draw over lower ones.
type layer uint8

const (
	layerNone layer = iota
	layerLand
	layerRoute
	layerRect
	layerAirport
	layerVisited
	layerSelected
	layerLabel
	layerCount
)

const (
	glyphAirport  = '•'
	glyphPlane    = '✈'
	glyphSelected = '◉'
)

// canvas is a grid of cells, each remembering the layer that drew it so that
// the whole grid can be styled per layer when rendered.
type canvas struct {
	w, h   int
	runes  [][]rune
	layers [][]layer
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, runes: make([][]rune, h), layers: make([][]layer, h)}
	for y := range c.runes {
		c.runes[y] = []rune(strings.Repeat(" ", w))
		c.layers[y] = make([]layer, w)
	}
	return c
}

func (c *canvas) put(x, y int, r rune, l layer) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	if l < c.layers[y][x] {
		return
	}
	c.runes[y][x] = r
	c.layers[y][x] = l
}

func (c *canvas) text(x, y int, s string, l layer) {
	for i, r := range []rune(s) {
		c.put(x+i, y, r, l)
	}
}

// blit copies set braille cells onto the canvas. Dots from a lower braille
// layer in the same cell are kept.
func (c *canvas) blit(b *brailleBuf, l layer) {
	for y := 0; y < b.h && y < c.h; y++ {
		for x := 0; x < b.w && x < c.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				continue
			}
			cur := c.runes[y][x]
			if c.layers[y][x] <= l && cur >= brailleBase && cur <= brailleBase+0xFF {
				mask |= uint8(cur - brailleBase)
			}
			c.put(x, y, rune(brailleBase+int(mask)), l)
		}
	}
}

// render joins the grid into lines, styling runs of equal layer.
func (c *canvas) render(p palette) string {
	var sb strings.Builder
	for y := range c.runes {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row, layers := c.runes[y], c.layers[y]
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && layers[x] == layers[start] {
				continue
			}
			run := string(row[start:x])
			if layers[start] == layerNone {
				sb.WriteString(run)
			} else {
				sb.WriteString(p.styles[layers[start]].Render(run))
			}
			start = x
		}
	}
	return sb.String()
}
