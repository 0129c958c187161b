// Command lensdiagrams writes the schematic figures: pinhole projection,
// thin lens focusing and defocus blur.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/lensdemo"
	"github.com/gogpu/lensdemo/diagram"
	"github.com/gogpu/lensdemo/internal/config"
	"github.com/gogpu/lensdemo/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lensdiagrams: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	log, sync, err := logging.Setup("lensdiagrams", cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer sync()
	lensdemo.SetLogger(log)

	written, err := diagram.GenerateSchematics(cfg.Output.DiagramsDir)
	if err != nil {
		log.Error("drawing failed", "err", err, "written", len(written))
		return err
	}

	log.Info("saved diagrams", "dir", cfg.Output.DiagramsDir, "files", len(written))
	return nil
}
