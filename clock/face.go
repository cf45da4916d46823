// Package clock renders the time and date shown inside a taskbar overlay.
package clock

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	background = color.RGBA{A: 0xff}
	hoverFill  = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	pressFill  = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	foreground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Face draws a two line clock: time above date.
type Face struct {
	TimeFormat string
	DateFormat string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Lines returns the text lines for t.
func (f *Face) Lines(t time.Time) []string {
	var lines []string
	if f.TimeFormat != "" {
		lines = append(lines, t.Format(f.TimeFormat))
	}
	if f.DateFormat != "" {
		lines = append(lines, t.Format(f.DateFormat))
	}
	return lines
}

// Render implements overlay.Renderer.
func (f *Face) Render(dst *image.RGBA, width, height int, hovered, pressed bool) {
	area := image.Rect(0, 0, width, height).Intersect(dst.Bounds())
	if area.Empty() {
		return
	}

	fill := background
	switch {
	case pressed:
		fill = pressFill
	case hovered:
		fill = hoverFill
	}
	draw.Draw(dst, area, image.NewUniform(fill), image.Point{}, draw.Src)

	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	lines := f.Lines(now())
	if len(lines) == 0 {
		return
	}

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	top := (area.Dy() - lineHeight*len(lines)) / 2

	d := &font.Drawer{Dst: dst, Src: image.NewUniform(foreground), Face: face}
	for i, line := range lines {
		w := d.MeasureString(line).Ceil()
		x := (area.Dx() - w) / 2
		y := top + i*lineHeight + face.Metrics().Ascent.Ceil()
		d.Dot = fixed.P(x, y)
		d.DrawString(line)
	}
}
