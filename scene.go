package lensdemo

// Default size of the synthetic scene.
const (
	DefaultSceneWidth  = 400
	DefaultSceneHeight = 250
)

// Scene layout. Only the block and its highlight are near enough to stay
// sharp at DefaultSceneFocus.
const (
	skyDepth        = 5.0
	groundDepth     = 6.0
	sunDepth        = 8.0
	blockDepth      = 1.2
	highlightDepth  = 1.0
	stripeDepth     = 7.0
	groundTile      = 40
	sunRadius       = 50
	highlightRadius = 45
	stripeHeight    = 10
)

// DefaultSceneFocus is the focus depth used for the synthetic scene.
const DefaultSceneFocus = 1.0

// MakeScene draws the toy scene and its depth map.
//
// The scene is a sky gradient over a checkerboard ground with a sun disc and
// a dark stripe in the background, and a blue block with a white disc in the
// foreground. Feature positions scale with the canvas; radii and tile size
// are fixed in pixels.
func MakeScene(width, height int) (*Image, *DepthMap) {
	img := NewImage(width, height)
	depth := NewDepthMap(width, height, skyDepth)
	w, h := img.width, img.height

	// Sky
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		img.FillRect(0, y, w, y+1, RGB(float32(0.65-0.35*t), float32(0.85-0.45*t), 1.0))
	}

	// Ground
	groundY := frac(h, 0.55)
	for y := groundY; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/groundTile+y/groundTile)%2 == 0 {
				img.Set(x, y, Gray(0.75))
			} else {
				img.Set(x, y, Gray(0.55))
			}
		}
	}
	depth.FillRect(0, groundY, w, h, groundDepth)

	// Sun. The depth patch is the disc's bounding square.
	cx, cy := frac(w, 0.8), frac(h, 0.2)
	fillDisc(img, nil, cx, cy, sunRadius, RGB(1.0, 0.9, 0.4), 0)
	depth.FillRect(cx-sunRadius, cy-sunRadius, cx+sunRadius, cy+sunRadius, sunDepth)

	// Foreground block
	top, bottom := frac(h, 0.35), frac(h, 0.8)
	left, right := frac(w, 0.15), frac(w, 0.45)
	img.FillRect(left, top, right, bottom, RGB(0.2, 0.4, 0.9))
	depth.FillRect(left, top, right, bottom, blockDepth)

	// Highlight on the block
	fillDisc(img, depth, frac(w, 0.3), frac(h, 0.55), highlightRadius, Gray(0.97), highlightDepth)

	// Stripe
	sy := frac(h, 0.32)
	sx0, sx1 := frac(w, 0.55), frac(w, 0.95)
	img.FillRect(sx0, sy, sx1, sy+stripeHeight, Gray(0.1))
	depth.FillRect(sx0, sy, sx1, sy+stripeHeight, stripeDepth)

	return img, depth
}

// fillDisc paints the disc of radius r around (cx, cy). When depth is not
// nil the covered pixels also get depth d.
func fillDisc(img *Image, depth *DepthMap, cx, cy, r int, c Color, d float32) {
	for y := max(0, cy-r); y < min(img.height, cy+r); y++ {
		for x := max(0, cx-r); x < min(img.width, cx+r); x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > r*r {
				continue
			}
			img.Set(x, y, c)
			if depth != nil {
				depth.Set(x, y, d)
			}
		}
	}
}

// frac returns int(n*f), truncating toward zero.
func frac(n int, f float64) int {
	return int(float64(n) * f)
}
