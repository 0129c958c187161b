package diagram

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
)

// Size of the schematic figures.
const (
	schematicWidth  = 900
	schematicHeight = 450
)

// Schematics returns the figures written by GenerateSchematics, in order.
func Schematics() []Figure {
	return []Figure{PinholeProjection(), ThinLens(), DefocusBlur()}
}

// GenerateSchematics writes every schematic into dir, creating it if needed.
// It returns the written paths in order.
func GenerateSchematics(dir string) ([]string, error) {
	if dir == "" {
		return nil, errors.New("diagram: empty output directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("diagram: create %s: %w", dir, err)
	}

	var written []string
	for _, f := range Schematics() {
		path := filepath.Join(dir, f.File)
		if err := f.SavePNG(path); err != nil {
			return written, err
		}
		gg.Logger().Info("diagram: wrote image", "path", path)
		written = append(written, path)
	}
	return written, nil
}

// PinholeProjection shows rays from an object crossing at a pinhole and
// forming an inverted image.
func PinholeProjection() Figure {
	return Figure{
		File:   "pinhole_projection.png",
		Width:  schematicWidth,
		Height: schematicHeight,
		draw: func(c *canvas) {
			c.label("Pinhole Projection", pt(20, 10))

			c.line(black, 3, pt(120, 100), pt(120, 350))
			c.label("Object", pt(80, 80))

			c.fillEllipse(pt(430, 215), pt(450, 235), black)
			c.label("Pinhole", pt(395, 190))

			c.line(black, 3, pt(760, 80), pt(760, 370))
			c.label("Image plane", pt(720, 50))

			c.line(blue, 2, pt(120, 100), pt(440, 225), pt(760, 350))
			c.line(blue, 2, pt(120, 350), pt(440, 225), pt(760, 100))

			c.label("Inverted", pt(770, 330))
			c.label("3D point (X, Y, Z)", pt(130, 355))
			c.label("Image point (x, y)", pt(770, 100))
		},
	}
}

// ThinLens shows rays from the top and bottom of an object converging to a
// single focus point on the sensor.
func ThinLens() Figure {
	return Figure{
		File:   "thin_lens.png",
		Width:  schematicWidth,
		Height: schematicHeight,
		draw: func(c *canvas) {
			c.label("Thin Lens Focusing", pt(20, 10))

			c.line(black, 3, pt(120, 100), pt(120, 350))
			c.label("Object", pt(80, 80))

			c.strokeEllipse(pt(430, 120), pt(470, 330), black, 3)
			c.label("Lens", pt(420, 90))

			c.line(black, 3, pt(760, 80), pt(760, 370))
			c.label("Sensor", pt(700, 50))

			c.line(red, 2, pt(120, 100), pt(450, 210), pt(760, 240))
			c.line(red, 2, pt(120, 350), pt(450, 240), pt(760, 240))
			c.fillEllipse(pt(752, 232), pt(768, 248), red)
			c.label("Focus point", pt(770, 230))

			c.label("do (object distance)", pt(200, 370))
			c.label("di (image distance)", pt(520, 370))
			c.label("f (focal length)", pt(410, 350))
		},
	}
}

// DefocusBlur contrasts an in-focus point with an out-of-focus point that
// spreads into a circle of confusion on the sensor.
func DefocusBlur() Figure {
	return Figure{
		File:   "defocus_blur.png",
		Width:  schematicWidth,
		Height: schematicHeight,
		draw: func(c *canvas) {
			c.label("Defocus Blur (Circle of Confusion)", pt(20, 10))

			c.strokeEllipse(pt(300, 120), pt(340, 330), black, 3)
			c.label("Lens", pt(290, 90))

			c.line(black, 3, pt(650, 80), pt(650, 370))
			c.label("Sensor", pt(600, 50))

			// In focus: both rays meet on the sensor.
			c.line(blue, 2, pt(80, 140), pt(320, 220), pt(650, 220))
			c.line(blue, 2, pt(80, 300), pt(320, 220), pt(650, 220))
			c.fillEllipse(pt(642, 212), pt(658, 228), blue)
			c.label("Sharp point", pt(670, 210))

			// Out of focus: the rays hit the sensor apart.
			c.line(orange, 2, pt(80, 90), pt(320, 200), pt(650, 170))
			c.line(orange, 2, pt(80, 350), pt(320, 240), pt(650, 270))
			c.strokeEllipse(pt(638, 165), pt(662, 275), orange, 3)
			c.label("Blur circle (c)", pt(670, 240))

			c.label("c = circle of confusion", pt(20, 410))
			c.label("A = aperture diameter", pt(300, 410))
		},
	}
}
