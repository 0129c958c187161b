package lensdemo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gogpu/lensdemo/diagram"
)

// Output file names written by GenerateDemo.
const (
	ScenePinholeFile = "scene_pinhole.png"
	SceneLensFile    = "scene_lens.png"
	RayDiagramFile   = "ray_diagram.png"
	PhotoPinholeFile = "photo_pinhole.png"
	PhotoLensFile    = "photo_lens.png"
)

// DemoConfig configures GenerateDemo.
type DemoConfig struct {
	// OutputDir receives every file. It is created if missing.
	OutputDir string

	// PhotoPath is an optional source photo. The photo outputs are skipped
	// when it is empty or the file does not exist.
	PhotoPath string

	SceneWidth  int
	SceneHeight int
	SceneFocus  float64

	PhotoWidth    int
	PhotoFocus    float64
	Interpolation Interpolation

	// Bands overrides DefaultBands when not empty.
	Bands []Band
}

// DefaultDemoConfig returns the configuration of the reference figures.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		OutputDir:     "outputs",
		PhotoPath:     filepath.Join("assets", "photo.jpg"),
		SceneWidth:    DefaultSceneWidth,
		SceneHeight:   DefaultSceneHeight,
		SceneFocus:    DefaultSceneFocus,
		PhotoWidth:    DefaultPhotoWidth,
		PhotoFocus:    DefaultPhotoFocus,
		Interpolation: Bicubic,
	}
}

// GenerateDemo renders the synthetic scene through a pinhole and a lens,
// draws the ray diagram and, when a photo is available, renders the photo
// both ways too. It returns the written paths in order.
//
// A missing photo is not an error. Any other failure stops the run.
func GenerateDemo(cfg DemoConfig) ([]string, error) {
	if err := EnsureDir(cfg.OutputDir); err != nil {
		return nil, err
	}

	defocus := NewDefocus(cfg.Bands...)
	var written []string
	save := func(name string, img *Image) error {
		path := filepath.Join(cfg.OutputDir, name)
		if err := img.SavePNG(path); err != nil {
			return err
		}
		Logger().Info("generate: wrote image", "path", path)
		written = append(written, path)
		return nil
	}

	scene, depth := MakeScene(cfg.SceneWidth, cfg.SceneHeight)
	lens, err := defocus.Render(scene, depth, cfg.SceneFocus)
	if err != nil {
		return written, fmt.Errorf("lensdemo: scene: %w", err)
	}
	if err := save(ScenePinholeFile, RenderPinhole(scene)); err != nil {
		return written, err
	}
	if err := save(SceneLensFile, lens); err != nil {
		return written, err
	}

	rayPath := filepath.Join(cfg.OutputDir, RayDiagramFile)
	if err := diagram.RayDiagram().SavePNG(rayPath); err != nil {
		return written, err
	}
	Logger().Info("generate: wrote image", "path", rayPath)
	written = append(written, rayPath)

	ok, err := photoAvailable(cfg.PhotoPath)
	if err != nil {
		return written, err
	}
	if !ok {
		Logger().Warn("generate: no source photo, skipping photo outputs", "path", cfg.PhotoPath)
		return written, nil
	}

	photo, err := LoadPhoto(cfg.PhotoPath,
		WithTargetWidth(cfg.PhotoWidth),
		WithInterpolation(cfg.Interpolation))
	if err != nil {
		return written, err
	}
	photoLens, err := defocus.Render(photo, FakeDepth(photo), cfg.PhotoFocus)
	if err != nil {
		return written, fmt.Errorf("lensdemo: photo: %w", err)
	}
	if err := save(PhotoPinholeFile, RenderPinhole(photo)); err != nil {
		return written, err
	}
	if err := save(PhotoLensFile, photoLens); err != nil {
		return written, err
	}
	return written, nil
}

// EnsureDir creates dir and its parents if they do not exist yet.
func EnsureDir(dir string) error {
	if dir == "" {
		return errors.New("lensdemo: empty output directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("lensdemo: create %s: %w", dir, err)
	}
	return nil
}

// photoAvailable reports whether path names an existing file.
func photoAvailable(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("lensdemo: stat photo: %w", err)
	case info.IsDir():
		return false, fmt.Errorf("lensdemo: photo %s is a directory", path)
	}
	return true, nil
}
