package lensdemo

import (
	"math"

	"github.com/anthonynsimon/bild/convolution"
)

// Blur returns a Gaussian-blurred copy of img. sigma is the standard
// deviation in pixels; the kernel reaches 3 sigma each way and edges extend
// the border pixels.
//
// The blur runs on an 8-bit copy of the image, so the result is quantized to
// multiples of 1/255. A sigma of zero or less returns an exact clone.
func Blur(img *Image, sigma float64) *Image {
	if sigma <= 0 {
		return img.Clone()
	}
	if img.width == 0 || img.height == 0 {
		return img.Clone()
	}

	Logger().Debug("blur: gaussian pass",
		"sigma", sigma,
		"width", img.width,
		"height", img.height)

	k := gaussianKernel(sigma)
	opts := &convolution.Options{Wrap: false, KeepAlpha: true}
	out := convolution.Convolve(img.ToRGBA(), k, opts)
	out = convolution.Convolve(out, k.Transposed(), opts)
	return fromRGBA(out)
}

// gaussianKernel returns the normalized horizontal 1D kernel for sigma.
func gaussianKernel(sigma float64) convolution.Matrix {
	n := int(math.Ceil(3 * sigma))
	k := convolution.NewKernel(2*n+1, 1)
	for i := range k.Matrix {
		x := float64(i - n)
		k.Matrix[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	return k.Normalized()
}
