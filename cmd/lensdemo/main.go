// Command lensdemo renders the pinhole vs. lens demo images: the synthetic
// scene through both cameras, the ray diagram and, when a source photo is
// present, the photo through both cameras.
//
// Settings come from lensdemo.yaml and LENSDEMO_* environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/lensdemo"
	"github.com/gogpu/lensdemo/internal/config"
	"github.com/gogpu/lensdemo/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lensdemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	log, sync, err := logging.Setup("lensdemo", cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer sync()
	lensdemo.SetLogger(log)

	demo, err := cfg.Demo()
	if err != nil {
		return err
	}

	written, err := lensdemo.GenerateDemo(demo)
	if err != nil {
		log.Error("generation failed", "err", err, "written", len(written))
		return err
	}

	log.Info("saved outputs", "dir", demo.OutputDir, "files", len(written))
	return nil
}
