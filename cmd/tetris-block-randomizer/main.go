package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/HendrawanAdiWijaya/tetris-block-randomizer/internal/config"
	"github.com/HendrawanAdiWijaya/tetris-block-randomizer/internal/gui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		seed        int64
		storePath   string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Int64Var(&seed, "seed", 0, "fixed RNG seed, 0 seeds from the clock")
	flag.StringVar(&storePath, "store", "", "config record file, overrides TBR_STORE_PATH")
	flag.Parse()

	if showVersion {
		fmt.Printf("Tetris Block Randomizer %s (%s) %s\n", version, commit, date)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if storePath != "" {
		cfg.StorePath = storePath
	}

	app := gui.NewApp(gui.AppConfig{
		Version:      version,
		Commit:       commit,
		BuildDate:    date,
		StorePath:    cfg.StorePath,
		AssetsDir:    cfg.AssetsDir,
		SpinDuration: time.Duration(cfg.SpinMillis) * time.Millisecond,
		WindowWidth:  cfg.WindowWidth,
		WindowHeight: cfg.WindowHeight,
		Seed:         seed,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
