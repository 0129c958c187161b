package lensdemo

// DepthMap holds one distance per pixel of a paired Image.
// Larger values are farther from the camera.
type DepthMap struct {
	width  int
	height int
	data   []float32
}

// NewDepthMap creates a depth map with every pixel set to fill.
func NewDepthMap(width, height int, fill float32) *DepthMap {
	width, height = max(width, 0), max(height, 0)
	d := &DepthMap{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
	if fill != 0 {
		for i := range d.data {
			d.data[i] = fill
		}
	}
	return d
}

// Width returns the width of the depth map.
func (d *DepthMap) Width() int {
	return d.width
}

// Height returns the height of the depth map.
func (d *DepthMap) Height() int {
	return d.height
}

// Data returns the raw depth values in row-major order.
func (d *DepthMap) Data() []float32 {
	return d.data
}

// At returns the depth at (x, y), or 0 when out of bounds.
func (d *DepthMap) At(x, y int) float32 {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return 0
	}
	return d.data[y*d.width+x]
}

// Set sets the depth at (x, y). Out-of-bounds writes are ignored.
func (d *DepthMap) Set(x, y int, v float32) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.data[y*d.width+x] = v
}

// FillRect sets the half-open rectangle [x0,x1)×[y0,y1), clipped to the map.
func (d *DepthMap) FillRect(x0, y0, x1, y1 int, v float32) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, d.width), min(y1, d.height)
	for y := y0; y < y1; y++ {
		row := d.data[y*d.width : (y+1)*d.width]
		for x := x0; x < x1; x++ {
			row[x] = v
		}
	}
}

// Matches reports whether the depth map has the same dimensions as img.
func (d *DepthMap) Matches(img *Image) bool {
	return d.width == img.width && d.height == img.height
}
