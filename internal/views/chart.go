package views

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/dashd/internal/chart"
)

type cell struct {
	r     rune
	color string
}

// rasterGrid maps canvas commands onto a cols x rows character grid. A cell
// belongs to a rect when its horizontal center is inside it; vertical
// coverage picks a full or lower-half block.
func rasterGrid(cmds []chart.Command, cols, rows int) [][]cell {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	sx := float64(chart.CanvasWidth) / float64(cols)
	sy := float64(chart.CanvasHeight) / float64(rows)
	grid := newGrid(cols, rows)

	for _, cmd := range cmds {
		switch cmd.Op {
		case chart.OpClear:
			grid = newGrid(cols, rows)
		case chart.OpFillRect:
			if cmd.Height <= 0 || cmd.Width <= 0 {
				continue
			}
			for c := 0; c < cols; c++ {
				cx := (float64(c) + 0.5) * sx
				if cx < cmd.X || cx >= cmd.X+cmd.Width {
					continue
				}
				for r := 0; r < rows; r++ {
					top := float64(r) * sy
					bottom := top + sy
					overlap := math.Min(bottom, cmd.Y+cmd.Height) - math.Max(top, cmd.Y)
					if overlap <= 0 {
						continue
					}
					switch frac := overlap / sy; {
					case frac >= 0.75:
						grid[r][c] = cell{r: '█', color: cmd.Color}
					case frac >= 0.25:
						grid[r][c] = cell{r: '▄', color: cmd.Color}
					}
				}
			}
		case chart.OpFillText:
			text := []rune(cmd.Text)
			if len(text) == 0 {
				continue
			}
			r := int(math.Floor(cmd.Y / sy))
			if r < 0 {
				r = 0
			}
			if r >= rows {
				r = rows - 1
			}
			start := int(math.Floor(cmd.X / sx))
			if cmd.Align == "center" {
				start -= len(text) / 2
			}
			for i, ch := range text {
				c := start + i
				if c < 0 || c >= cols {
					continue
				}
				grid[r][c] = cell{r: ch, color: cmd.Color}
			}
		}
	}
	return grid
}

func newGrid(cols, rows int) [][]cell {
	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
		for c := range grid[r] {
			grid[r][c] = cell{r: ' '}
		}
	}
	return grid
}

// RasterizeChart draws the commands as colored terminal text.
func RasterizeChart(cmds []chart.Command, cols, rows int) string {
	grid := rasterGrid(cmds, cols, rows)
	lines := make([]string, 0, len(grid))
	for _, row := range grid {
		var b strings.Builder
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range row {
			if c.color != runColor {
				flush()
				runColor = c.color
			}
			run.WriteRune(c.r)
		}
		flush()
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// ChartSize returns the raster dimensions for a density level.
func ChartSize(density int) (cols, rows int) {
	switch density {
	case 2:
		return 75, 20
	case 3:
		return 90, 25
	default:
		return 60, 20
	}
}
