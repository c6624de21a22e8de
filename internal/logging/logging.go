package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rhpo/vapesort"
)

const (
	FileName   = "vapesort.log"
	MaxLogSize = 10 * 1024 * 1024
)

// Setup points the standard logger at dir/vapesort.log when debug is set,
// and discards everything otherwise. A log over MaxLogSize is renamed with a
// timestamp before a fresh one is opened. The caller closes the file.
func Setup(debug bool, dir string) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("logging: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("vapesort-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil, fmt.Errorf("logging: rotate %s: %w", path, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("logging: open %s: %w", path, err)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}

// Attach logs the game's events through the standard logger.
func Attach(g *vapesort.Game) {
	g.On(vapesort.EventPickedUp, func(data interface{}) {
		ev := data.(vapesort.EventPickedUpData)
		log.Printf("picked up %s %s at (%.0f, %.0f)", ev.Item.Category, ev.Item.ID, ev.Item.X, ev.Item.Y)
	})
	g.On(vapesort.EventDecomposed, func(data interface{}) {
		ev := data.(vapesort.EventDecomposedData)
		log.Printf("broke apart %s into %d parts", ev.Parent.ID, len(ev.Children))
	})
	g.On(vapesort.EventDisposal, func(data interface{}) {
		res := data.(vapesort.DisposalResult)
		log.Printf("drop %s %s: %s lane=%d delta=%d score=%d streak=%d x%d",
			res.Item.Category, res.Item.ID, res.Outcome, res.BinIndex, res.Delta,
			res.Progress.Score, res.Progress.Streak, res.Progress.Multiplier)
	})
	g.On(vapesort.EventLevelChanged, func(data interface{}) {
		ev := data.(vapesort.EventLevelChangedData)
		log.Printf("level %d -> %d", ev.From, ev.To)
	})
	g.On(vapesort.EventItemsSpawned, func(data interface{}) {
		ev := data.(vapesort.EventItemsSpawnedData)
		log.Printf("level %d spawned %d items", ev.Level, len(ev.Items))
	})
	g.On(vapesort.EventConfigReload, func(data interface{}) {
		log.Printf("config reloaded")
	})
}
