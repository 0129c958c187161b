package lensdemo

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the compositor.
var (
	// ErrShapeMismatch is returned when a depth map does not cover its image
	// pixel for pixel.
	ErrShapeMismatch = errors.New("lensdemo: depth map and image shapes differ")

	// ErrNoBands is returned by a Defocus with an empty band list.
	ErrNoBands = errors.New("lensdemo: defocus needs at least one band")

	// ErrNilInput is returned when the image or depth map is nil.
	ErrNilInput = errors.New("lensdemo: nil image or depth map")
)

// Default band parameters of the reference figures.
const (
	// NearBandOffset is added to the focus depth to get the far edge of
	// the sharp band.
	NearBandOffset = 0.5

	// FarBandStart is the absolute depth beyond which the heavy blur applies.
	FarBandStart = 4.0

	// MidBandSigma is the blur strength between the sharp and far bands.
	MidBandSigma = 3.0

	// FarBandSigma is the blur strength of the far band.
	FarBandSigma = 6.0
)

// Band selects one blur strength for a range of depths.
type Band struct {
	// Label names the band in logs.
	Label string

	// Limit is the inclusive far edge of the band. The last band of a set is
	// unbounded and its Limit is ignored.
	Limit float64

	// Relative makes Limit an offset from the focus depth.
	Relative bool

	// Sigma is the blur strength. Zero or less keeps the original pixels.
	Sigma float64
}

// resolve returns the band's far edge for the given focus depth.
func (b Band) resolve(focus float64) float64 {
	if b.Relative {
		return focus + b.Limit
	}
	return b.Limit
}

// DefaultBands returns the three bands of the reference figures:
// near (sharp), mid (sigma 3) and far (sigma 6).
func DefaultBands() []Band {
	return []Band{
		{Label: "near", Limit: NearBandOffset, Relative: true},
		{Label: "mid", Limit: FarBandStart, Sigma: MidBandSigma},
		{Label: "far", Limit: math.Inf(1), Sigma: FarBandSigma},
	}
}

// Defocus approximates depth of field by copying every pixel from a version
// of the image blurred according to the pixel's focus band.
//
// Bands are ordered near to far. Band i claims a depth d when
//
//	(i == 0 || d > limit[i-1]) && d <= limit[i]
//
// and a farther band wins when two bands claim the same depth, which only
// happens when limits decrease. Depths no band claims (NaN) go to the last
// band, so every pixel lands in exactly one band.
type Defocus struct {
	Bands []Band
}

// NewDefocus creates a compositor. Without arguments it uses [DefaultBands].
func NewDefocus(bands ...Band) *Defocus {
	if len(bands) == 0 {
		bands = DefaultBands()
	}
	return &Defocus{Bands: bands}
}

// RenderLens applies the default three-band defocus to img.
func RenderLens(img *Image, depth *DepthMap, focus float64) (*Image, error) {
	return NewDefocus().Render(img, depth, focus)
}

// RenderPinhole renders img through a pinhole: everything stays sharp.
func RenderPinhole(img *Image) *Image {
	return img.Clone()
}

// Classify returns the band index of every pixel of depth, row-major.
func (d *Defocus) Classify(depth *DepthMap, focus float64) ([]int, error) {
	if depth == nil {
		return nil, ErrNilInput
	}
	if len(d.Bands) == 0 {
		return nil, ErrNoBands
	}

	return classify(depth, d.limits(focus)), nil
}

// Render returns a new image where each pixel is taken unmodified from the
// blurred variant belonging to its focus band. img and depth are not modified.
func (d *Defocus) Render(img *Image, depth *DepthMap, focus float64) (*Image, error) {
	if img == nil || depth == nil {
		return nil, ErrNilInput
	}
	if !depth.Matches(img) {
		return nil, fmt.Errorf("%w: image %dx%d, depth %dx%d",
			ErrShapeMismatch, img.width, img.height, depth.width, depth.height)
	}

	if len(d.Bands) == 0 {
		return nil, ErrNoBands
	}

	limits := d.limits(focus)
	bands := classify(depth, limits)
	sources := d.sources(img)
	counts := make([]int, len(d.Bands))
	out := NewImage(img.width, img.height)
	for p, b := range bands {
		copy(out.data[p*3:p*3+3], sources[b].data[p*3:p*3+3])
		counts[b]++
	}

	log := Logger()
	for i, b := range d.Bands {
		log.Debug("defocus: band filled",
			"band", b.Label,
			"sigma", b.Sigma,
			"limit", limits[i],
			"pixels", counts[i])
	}
	return out, nil
}

// limits resolves every band edge against focus. The last edge is +Inf.
func (d *Defocus) limits(focus float64) []float64 {
	limits := make([]float64, len(d.Bands))
	for i, b := range d.Bands {
		limits[i] = b.resolve(focus)
	}
	limits[len(limits)-1] = math.Inf(1)
	return limits
}

// sources returns one image per band. Bands sharing a sigma share a blur;
// bands without blur share img itself.
func (d *Defocus) sources(img *Image) []*Image {
	blurred := make(map[float64]*Image, len(d.Bands))
	out := make([]*Image, len(d.Bands))
	for i, b := range d.Bands {
		if b.Sigma <= 0 {
			out[i] = img
			continue
		}
		v, ok := blurred[b.Sigma]
		if !ok {
			v = Blur(img, b.Sigma)
			blurred[b.Sigma] = v
		}
		out[i] = v
	}
	return out
}

func classify(depth *DepthMap, limits []float64) []int {
	out := make([]int, len(depth.data))
	for i, v := range depth.data {
		out[i] = bandIndex(float64(v), limits)
	}
	return out
}

// bandIndex picks the farthest band that claims depth v.
func bandIndex(v float64, limits []float64) int {
	last := len(limits) - 1
	for i := last; i >= 0; i-- {
		above := i == 0 || v > limits[i-1]
		below := i == last || v <= limits[i]
		if above && below {
			return i
		}
	}
	return last
}
