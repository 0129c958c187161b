package diagram

// Ray colors, matplotlib's default palette.
const (
	blue   = "#1f77b4"
	red    = "#d62728"
	orange = "#ff7f0e"
	black  = "#000000"
)

// RayDiagram returns the two-panel figure comparing a pinhole camera with a
// focused lens camera.
func RayDiagram() Figure {
	return Figure{
		File:   "ray_diagram.png",
		Width:  1000,
		Height: 400,
		draw:   drawRayDiagram,
	}
}

func drawRayDiagram(c *canvas) {
	w, h := c.dc.Width(), c.dc.Height()
	panels := []struct {
		x0, y0, x1, y1 int
		title          string
		pinhole        bool
	}{
		{0, 0, w / 2, h, "Pinhole Camera", true},
		{w / 2, 0, w, h, "Lens Camera (Focused)", false},
	}

	for _, p := range panels {
		c.label(p.title, pt(float64(p.x0+10), float64(p.y0+10)))

		// Scene coordinates (0..10, 0..6) to panel pixels, y up.
		at := func(x, y float64) point {
			px := p.x0 + int(x/10*float64(p.x1-p.x0))
			py := p.y1 - int(y/6*float64(p.y1-p.y0))
			return pt(float64(px), float64(py))
		}

		c.line(black, 2, at(1, 1), at(1, 5))
		c.label("Object", at(0.6, 5.2))

		c.line(black, 2, at(8, 0.5), at(8, 5.5))
		c.label("Image plane", at(7.5, 5.7))

		if p.pinhole {
			hole := at(5, 3)
			c.fillEllipse(pt(hole.x-3, hole.y-3), pt(hole.x+3, hole.y+3), black)
			c.label("Pinhole", at(4.5, 2.6))

			// Rays cross at the hole and flip the image.
			c.line(blue, 2, at(1, 5), at(5, 3), at(8, 1))
			c.line(blue, 2, at(1, 1), at(5, 3), at(8, 5))
			continue
		}

		c.strokeEllipse(at(4.8, 4.5), at(5.2, 1.5), black, 2)
		c.label("Lens", at(4.6, 4.7))

		// Rays bend at the lens and meet on the image plane.
		c.line(red, 2, at(1, 5), at(5, 3.5), at(8, 3))
		c.line(red, 2, at(1, 1), at(5, 2.5), at(8, 3))
	}
}
