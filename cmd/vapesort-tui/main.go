package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/rhpo/vapesort"
	"github.com/rhpo/vapesort/internal/logging"
	"github.com/rhpo/vapesort/tuihost"
)

func main() {
	configPath := flag.String("config", "", "YAML config overlaid on the built-in defaults")
	watch := flag.Bool("watch", false, "reload -config when it changes")
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	debug := flag.Bool("debug", false, "write logs to logs/vapesort.log")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	// The terminal owns stdout, so logs only ever go to a file.
	logFile, err := logging.Setup(*debug, "logs")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(*configPath, *watch, *seed, *mute); err != nil {
		log.Print(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, watch bool, seed int64, mute bool) error {
	cfg, err := vapesort.LoadConfig(configPath)
	if err != nil {
		return err
	}

	var watcher *vapesort.ConfigWatcher
	if watch && configPath != "" {
		watcher, err = vapesort.WatchConfig(configPath)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	props := &tuihost.Props{Seed: seed, Watcher: watcher}
	if !mute {
		tones := tuihost.NewTonePlayer()
		defer tones.Close()
		props.Cues = tones
	}

	host := tuihost.NewHost(screen, cfg, props)
	logging.Attach(host.State())
	host.Run()
	return nil
}
