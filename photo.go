package lensdemo

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	// Registered decoders for LoadPhoto.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// LoadPhoto reads a photo in any registered format, flattens transparency
// over white and resizes it to the configured width.
func LoadPhoto(path string, opts ...PhotoOption) (*Image, error) {
	f, err := os.Open(path) //nolint:gosec // photo path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("lensdemo: open photo: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := DecodePhoto(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return img, nil
}

// DecodePhoto is LoadPhoto for an already opened stream.
func DecodePhoto(r io.Reader, opts ...PhotoOption) (*Image, error) {
	options := defaultPhotoOptions()
	for _, opt := range opts {
		opt(&options)
	}

	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("lensdemo: decode photo: %w", err)
	}

	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("lensdemo: decode photo: empty %s image", format)
	}

	if p, ok := src.(*image.Paletted); ok {
		src = opaquePalette(p)
	}

	// Flatten transparency over white
	flat := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(flat, flat.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), src, b.Min, draw.Over)

	out, err := scale(flat, options)
	if err != nil {
		return nil, err
	}

	Logger().Debug("photo: decoded",
		"format", format,
		"src_width", b.Dx(),
		"src_height", b.Dy(),
		"width", out.Bounds().Dx(),
		"height", out.Bounds().Dy(),
		"interpolation", string(options.interpolation))

	return FromImage(out), nil
}

// opaquePalette returns p with every palette entry made fully opaque.
// Palette transparency is dropped rather than composited, so a transparent
// index keeps its own color.
func opaquePalette(p *image.Paletted) *image.Paletted {
	pal := make(color.Palette, len(p.Palette))
	for i, c := range p.Palette {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		n.A = 0xff
		pal[i] = n
	}
	out := *p
	out.Palette = pal
	return &out
}

// scale resizes src to the target width, keeping the aspect ratio.
func scale(src *image.RGBA, o photoOptions) (image.Image, error) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if o.targetWidth <= 0 || o.targetWidth == w {
		return src, nil
	}

	tw := o.targetWidth
	th := max(int(float64(h)*(float64(tw)/float64(w))), 1)

	var scaler draw.Scaler
	switch o.interpolation {
	case Bicubic:
		// nfnt/resize is a true bicubic, unlike x/image's CatmullRom
		return resize.Resize(uint(tw), uint(th), src, resize.Bicubic), nil
	case CatmullRom:
		scaler = draw.CatmullRom
	case BiLinear:
		scaler = draw.BiLinear
	case NearestNeighbor:
		scaler = draw.NearestNeighbor
	default:
		return nil, fmt.Errorf("lensdemo: unknown interpolation %q", o.interpolation)
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// FakeDepth guesses a depth map for a photo: the top row is farthest (7) and
// the bottom row nearest (1), changing linearly in between.
func FakeDepth(img *Image) *DepthMap {
	depth := NewDepthMap(img.width, img.height, 0)
	for y := 0; y < img.height; y++ {
		t := 0.0
		if img.height > 1 {
			t = float64(y) / float64(img.height-1)
		}
		depth.FillRect(0, y, img.width, y+1, float32(1+6*(1-t)))
	}
	return depth
}
