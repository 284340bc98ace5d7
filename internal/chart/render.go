// Package chart turns a labelled series into canvas draw commands.
//
// Render has no side effects; callers hand the commands to a rasterizer.
// Geometry is fixed: a 300x200 canvas, bars 30 wide on a 40 stride starting
// 20 from the left edge, scaled so the series maximum is 150 tall with its
// base at y=170.
package chart

import (
	"strconv"

	"github.com/sandeepkv93/dashd/internal/model"
)

const (
	CanvasWidth  = 300
	CanvasHeight = 200

	DrawHeight = 150.0
	Baseline   = 170.0
	BarWidth   = 30.0
	Stride     = 40.0
	LeftMargin = 20.0
	LabelY     = 190.0
	ValueGap   = 5.0

	BarColor = "#2563eb"
	Font     = "12px Arial"
)

type Op string

const (
	OpClear    Op = "clear"
	OpFillRect Op = "fill_rect"
	OpFillText Op = "fill_text"
)

// Command is one immediate-mode draw call. Only the fields relevant to Op
// are set.
type Command struct {
	Op     Op
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  string
	Text   string
	Font   string
	Align  string
}

// Bar is the computed geometry of one data point.
type Bar struct {
	Label  string
	Value  float64
	X      float64
	Y      float64
	Height float64
}

// Layout computes bar geometry for s. A non-positive maximum yields
// zero-height bars.
func Layout(s model.Series) []Bar {
	max := s.Max()
	bars := make([]Bar, 0, len(s.Values))
	for i, v := range s.Values {
		h := 0.0
		if max > 0 {
			h = v / max * DrawHeight
		}
		if h < 0 {
			h = 0
		}
		label := ""
		if i < len(s.Labels) {
			label = s.Labels[i]
		}
		x := float64(i)*Stride + LeftMargin
		bars = append(bars, Bar{
			Label:  label,
			Value:  v,
			X:      x,
			Y:      Baseline - h,
			Height: h,
		})
	}
	return bars
}

// Render returns the draw commands for s with labels in the ink color.
func Render(s model.Series, ink string) []Command {
	bars := Layout(s)
	cmds := make([]Command, 0, 1+3*len(bars))
	cmds = append(cmds, Command{Op: OpClear, Width: CanvasWidth, Height: CanvasHeight})
	for _, b := range bars {
		cx := b.X + BarWidth/2
		cmds = append(cmds,
			Command{Op: OpFillRect, X: b.X, Y: b.Y, Width: BarWidth, Height: b.Height, Color: BarColor},
			Command{Op: OpFillText, X: cx, Y: LabelY, Color: ink, Text: b.Label, Font: Font, Align: "center"},
			Command{Op: OpFillText, X: cx, Y: b.Y - ValueGap, Color: ink, Text: FormatValue(b.Value), Font: Font, Align: "center"},
		)
	}
	return cmds
}

func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
