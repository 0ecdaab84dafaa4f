package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/fractalzoom/internal/fractal"
)

// Upper half block: foreground paints the top pixel, background the bottom.
const halfBlock = "▀"

type RGB [3]uint8

func (c RGB) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]) }

// Cell holds the two vertically stacked pixels shown in one terminal cell.
type Cell struct {
	Top, Bottom RGB
}

// Canvas is a terminal-cell view of a raster that is Cols pixels wide and
// Rows*2 pixels tall.
type Canvas struct {
	Cols, Rows int
	Grid       [][]Cell
}

func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{
		Cols: cols,
		Rows: rows,
		Grid: make([][]Cell, rows),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]Cell, cols)
	}
	return c
}

// CanvasDimensions returns the raster size backing a cols x rows canvas.
func CanvasDimensions(cols, rows int) fractal.Dimensions {
	return fractal.Dimensions{Width: uint32(cols), Height: uint32(rows * 2)}
}

// PixelForCell maps a terminal cell to the raster pixel in its top half.
func PixelForCell(col, row int) (int32, int32) {
	return int32(col), int32(row * 2)
}

// CellForPixel maps a raster pixel to the terminal cell that shows it.
func CellForPixel(px, py int32) (int, int) {
	return int(px), int(py / 2)
}

// Fill copies buf into the grid. Pixels outside buf stay black.
func (c *Canvas) Fill(buf fractal.PixelBuffer, dims fractal.Dimensions) {
	if len(buf) < dims.BufferLen() {
		return
	}
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			c.Grid[row][col] = Cell{
				Top:    pixelAt(buf, col, row*2, dims),
				Bottom: pixelAt(buf, col, row*2+1, dims),
			}
		}
	}
}

func pixelAt(buf fractal.PixelBuffer, x, y int, dims fractal.Dimensions) RGB {
	if x >= int(dims.Width) || y >= int(dims.Height) {
		return RGB{}
	}
	r, g, b, _ := buf.At(x, y, dims)
	return RGB{r, g, b}
}

// Render draws the grid. Cells for which mark returns true are drawn with
// markStyle instead of the half block.
func (c *Canvas) Render(mark func(col, row int) bool, markStyle lipgloss.Style) string {
	var sb strings.Builder
	for row := 0; row < c.Rows; row++ {
		for col := 0; col < c.Cols; col++ {
			cell := c.Grid[row][col]
			if mark != nil && mark(col, row) {
				sb.WriteString(markStyle.Background(lipgloss.Color(cell.Bottom.Hex())).Render("•"))
				continue
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(cell.Top.Hex())).
				Background(lipgloss.Color(cell.Bottom.Hex())).
				Render(halfBlock))
		}
		if row < c.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
