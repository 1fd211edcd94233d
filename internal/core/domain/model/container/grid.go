package container

import (
	"bufio"
	"io"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// occupancyGrid counts, per cell, how many footprints cover it.
// Cells are addressed as cells[x][y].
type occupancyGrid struct {
	cells [][]int
}

func newOccupancyGrid(length, height int) occupancyGrid {
	cells := make([][]int, length)
	for x := range cells {
		cells[x] = make([]int, height)
	}
	return occupancyGrid{cells: cells}
}

func (g occupancyGrid) length() int {
	return len(g.cells)
}

func (g occupancyGrid) height() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// cover increments the cells of f that fall inside the grid; the rest of f is skipped.
func (g occupancyGrid) cover(f Footprint) {
	x0, x1 := clamp(f.X0, 0, g.length()), clamp(f.X1, 0, g.length())
	y0, y1 := clamp(f.Y0, 0, g.height()), clamp(f.Y1, 0, g.height())

	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			g.cells[x][y]++
		}
	}
}

func (g occupancyGrid) snapshot() [][]int {
	out := make([][]int, len(g.cells))
	for x, column := range g.cells {
		out[x] = append([]int(nil), column...)
	}
	return out
}

func (g occupancyGrid) matrix() *mat.Dense {
	m := mat.NewDense(g.length(), g.height(), nil)
	for x, column := range g.cells {
		for y, v := range column {
			m.Set(x, y, float64(v))
		}
	}
	return m
}

// render writes the grid with y growing upwards, framed by an outline.
// Each cell shows its cover count; counts above nine are shown as '#'.
func (g occupancyGrid) render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	outline := "+" + strings.Repeat("-", g.length()) + "+\n"

	_, _ = bw.WriteString(outline)
	for y := g.height() - 1; y >= 0; y-- {
		_ = bw.WriteByte('|')
		for x := range g.length() {
			_ = bw.WriteByte(cellGlyph(g.cells[x][y]))
		}
		_, _ = bw.WriteString("|\n")
	}
	_, _ = bw.WriteString(outline)

	return bw.Flush()
}

func cellGlyph(count int) byte {
	if count > 9 {
		return '#'
	}
	return byte('0' + count)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
