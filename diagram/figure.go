package diagram

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrEmptyFigure is returned when a figure has no size or nothing to draw.
var ErrEmptyFigure = errors.New("diagram: empty figure")

// LabelSize is the font size of figure labels, in points.
const LabelSize = 13

// Figure is a fixed drawing with a canonical file name.
type Figure struct {
	// File is the base name the figure is saved under.
	File string

	Width  int
	Height int

	draw func(c *canvas)
}

// Render draws the figure and returns the resulting image.
func (f Figure) Render() (image.Image, error) {
	dc, err := f.paint()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = dc.Close()
	}()
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("diagram: flush %s: %w", f.File, err)
	}
	return dc.Image(), nil
}

// SavePNG draws the figure and writes it to path.
func (f Figure) SavePNG(path string) error {
	dc, err := f.paint()
	if err != nil {
		return err
	}
	defer func() {
		_ = dc.Close()
	}()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("diagram: save %s: %w", path, err)
	}
	gg.Logger().Debug("diagram: saved figure", "file", f.File, "path", path)
	return nil
}

func (f Figure) paint() (*gg.Context, error) {
	if f.draw == nil || f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyFigure, f.File)
	}
	face, err := labelFace()
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(f.Width, f.Height)
	dc.ClearWithColor(gg.White)
	dc.SetFont(face)

	c := &canvas{dc: dc}
	f.draw(c)
	if c.err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("diagram: draw %s: %w", f.File, c.err)
	}
	return dc, nil
}

// labelSource parses the label font once per process.
var labelSource = sync.OnceValues(func() (*text.FontSource, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("diagram: load label font: %w", err)
	}
	return src, nil
})

func labelFace() (text.Face, error) {
	src, err := labelSource()
	if err != nil {
		return nil, err
	}
	return src.Face(LabelSize), nil
}

type point struct {
	x, y float64
}

func pt(x, y float64) point {
	return point{x: x, y: y}
}

// canvas wraps a gg.Context with the few primitives the figures need.
// The first drawing error sticks and turns later calls into no-ops.
type canvas struct {
	dc  *gg.Context
	err error
}

// line strokes a polyline through pts.
func (c *canvas) line(hex string, width float64, pts ...point) {
	if c.err != nil || len(pts) < 2 {
		return
	}
	c.dc.SetHexColor(hex)
	c.dc.SetLineWidth(width)
	c.dc.MoveTo(pts[0].x, pts[0].y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.x, p.y)
	}
	c.err = c.dc.Stroke()
}

// fillEllipse fills the ellipse inscribed in the box with corners a and b.
func (c *canvas) fillEllipse(a, b point, hex string) {
	if c.err != nil {
		return
	}
	c.ellipsePath(a, b)
	c.dc.SetHexColor(hex)
	c.err = c.dc.Fill()
}

// strokeEllipse outlines the ellipse inscribed in the box with corners a and b.
func (c *canvas) strokeEllipse(a, b point, hex string, width float64) {
	if c.err != nil {
		return
	}
	c.ellipsePath(a, b)
	c.dc.SetHexColor(hex)
	c.dc.SetLineWidth(width)
	c.err = c.dc.Stroke()
}

func (c *canvas) ellipsePath(a, b point) {
	cx, cy := (a.x+b.x)/2, (a.y+b.y)/2
	rx, ry := math.Abs(b.x-a.x)/2, math.Abs(b.y-a.y)/2
	c.dc.DrawEllipse(cx, cy, rx, ry)
}

// label draws black text with its top-left corner near p.
func (c *canvas) label(s string, p point) {
	if c.err != nil {
		return
	}
	_, h := c.dc.MeasureString(s)
	c.dc.SetRGB(0, 0, 0)
	c.dc.DrawString(s, p.x, p.y+h*0.8) // baseline
}
