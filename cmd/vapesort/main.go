package main

import (
	"flag"
	"log"

	"github.com/rhpo/vapesort"
	"github.com/rhpo/vapesort/ebitenhost"
	"github.com/rhpo/vapesort/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "YAML config overlaid on the built-in defaults")
	assetsDir := flag.String("assets", ".", "directory holding images/ and sounds/")
	watch := flag.Bool("watch", false, "reload -config when it changes")
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	debug := flag.Bool("debug", false, "write logs to logs/vapesort.log")
	flag.Parse()

	logFile, err := logging.Setup(*debug, "logs")
	if err != nil {
		log.Fatal(err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := vapesort.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *vapesort.ConfigWatcher
	if *watch && *configPath != "" {
		watcher, err = vapesort.WatchConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		defer watcher.Close()
	}

	game := ebitenhost.NewGame(cfg, &ebitenhost.Props{
		AssetsDir: *assetsDir,
		Seed:      *seed,
		Watcher:   watcher,
	})
	logging.Attach(game.State())

	if err := game.Run(); err != nil {
		log.Fatal(err)
	}
}
