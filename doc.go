// Package lensdemo renders illustrations that compare a pinhole camera with
// a thin-lens camera.
//
// # Overview
//
// A pinhole camera keeps everything sharp. A lens camera focuses on one
// distance and blurs what lies behind it. lensdemo fakes the second effect
// with a depth map: pixels are sorted into focus bands by their depth and
// each band is copied from a differently blurred version of the image.
//
// # Quick Start
//
//	import "github.com/gogpu/lensdemo"
//
//	img, depth := lensdemo.MakeScene(lensdemo.DefaultSceneWidth, lensdemo.DefaultSceneHeight)
//
//	lens, err := lensdemo.RenderLens(img, depth, 1.0)
//	if err != nil {
//	    return err
//	}
//	return lens.SavePNG("scene_lens.png")
//
// # Focus Bands
//
// [DefaultBands] reproduces the three fixed bands of the reference figures:
//   - near: depth <= focus + 0.5, left sharp
//   - mid: depth <= 4.0, blurred with sigma 3
//   - far: everything else, blurred with sigma 6
//
// Band edges are hard. Pixels are never blended across bands.
//
// # Architecture
//
// The module is organized into:
//   - Public API: Image, DepthMap, Blur, Defocus, MakeScene, LoadPhoto
//   - diagram: schematic figures drawn with github.com/gogpu/gg
//   - Internal: config (viper), logging (zap bridged into slog)
//   - Commands: cmd/lensdemo, cmd/lensdiagrams
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel, X increases right and Y increases down.
// Depth is measured in arbitrary positive units, larger is farther.
package lensdemo
