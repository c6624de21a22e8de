package vapesort

import (
	"math/rand"
	"time"
)

type Category string

const (
	CategoryOrganic    Category = "organic"
	CategoryBattery    Category = "battery"
	CategoryRecyclable Category = "recyclable"
	CategoryLiquid     Category = "liquid"
	CategoryFullVape   Category = "fullVape"
)

// Disposable reports whether items of this category can be dropped into a bin.
// fullVape has to be broken apart first.
func (c Category) Disposable() bool {
	switch c {
	case CategoryOrganic, CategoryBattery, CategoryRecyclable, CategoryLiquid:
		return true
	}
	return false
}

func (c Category) Valid() bool {
	return c.Disposable() || c == CategoryFullVape
}

type Cue string

const (
	CueRight Cue = "right"
	CueWrong Cue = "wrong"
)

const (
	ItemWidth        = 50.0
	ItemHeight       = 50.0
	DefaultFallSpeed = 0.5
	BinHeight        = 130.0

	DefaultNotificationDuration = 2 * time.Second

	DefaultCanvasWidth  = 1024
	DefaultCanvasHeight = 768
)

// Spawn geometry: items appear at x in [SpawnMarginX, W-SpawnMarginX) and
// y in [0, SpawnBandY).
const (
	SpawnMarginX = 50.0
	SpawnBandY   = 50.0
)

// Break-apart jitter: children land within ±JitterX, ±JitterY of the parent.
const (
	JitterX = 50.0
	JitterY = 25.0
)

func ID() string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 7)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
