package lensdemo

import (
	"fmt"
	"strings"
)

// Interpolation selects the resampling filter used when a photo is resized.
type Interpolation string

// Supported interpolation filters.
const (
	// Bicubic matches the reference figures. Implemented with nfnt/resize.
	Bicubic Interpolation = "bicubic"

	// CatmullRom is a sharper cubic filter from golang.org/x/image/draw.
	CatmullRom Interpolation = "catmullrom"

	// BiLinear is golang.org/x/image/draw's bilinear filter.
	BiLinear Interpolation = "bilinear"

	// NearestNeighbor is the fastest and blockiest filter.
	NearestNeighbor Interpolation = "nearest"
)

// ParseInterpolation parses a filter name, ignoring case and surrounding space.
func ParseInterpolation(s string) (Interpolation, error) {
	switch i := Interpolation(strings.ToLower(strings.TrimSpace(s))); i {
	case Bicubic, CatmullRom, BiLinear, NearestNeighbor:
		return i, nil
	case "":
		return Bicubic, nil
	}
	return "", fmt.Errorf("lensdemo: unknown interpolation %q", s)
}

// DefaultPhotoWidth is the width photos are resized to by default.
const DefaultPhotoWidth = 400

// DefaultPhotoFocus is the focus depth used for photos.
const DefaultPhotoFocus = 1.5

// PhotoOption configures LoadPhoto and DecodePhoto.
//
// Example:
//
//	img, err := lensdemo.LoadPhoto("photo.jpg",
//	    lensdemo.WithTargetWidth(640),
//	    lensdemo.WithInterpolation(lensdemo.CatmullRom))
type PhotoOption func(*photoOptions)

// photoOptions holds optional configuration for photo loading.
type photoOptions struct {
	targetWidth   int
	interpolation Interpolation
}

// defaultPhotoOptions returns the default photo options.
func defaultPhotoOptions() photoOptions {
	return photoOptions{
		targetWidth:   DefaultPhotoWidth,
		interpolation: Bicubic,
	}
}

// WithTargetWidth sets the width the photo is resized to. The height keeps
// the aspect ratio. Zero or less keeps the photo's own size.
func WithTargetWidth(w int) PhotoOption {
	return func(o *photoOptions) {
		o.targetWidth = w
	}
}

// WithInterpolation sets the resampling filter. Empty keeps the default.
func WithInterpolation(i Interpolation) PhotoOption {
	return func(o *photoOptions) {
		if i != "" {
			o.interpolation = i
		}
	}
}
