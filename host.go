package vapesort

import (
	"image/color"
	"math/rand"
	"time"
)

type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

type TextStyle struct {
	Size  float64
	Color color.Color
	Align Align
}

// Renderer is the drawing surface a host hands to Game.Draw. Coordinates are
// canvas pixels; sprite names are keys from the item and bin tables.
type Renderer interface {
	Clear(width, height float64)
	DrawSprite(sprite string, x, y, width, height float64)
	DrawFilledRect(x, y, width, height float64, fill color.Color)
	DrawText(text string, x, y float64, style TextStyle)
	MeasureText(text string, style TextStyle) float64
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Random yields uniform values in [0, 1). *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// NewRandom returns a source seeded with seed, or with the clock when seed is 0.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func newRandom() Random {
	return NewRandom(0)
}

// CuePlayer plays a short sound. Failures are the player's problem; the game
// never waits on it.
type CuePlayer interface {
	Play(cue Cue)
}

type silentCues struct{}

func (silentCues) Play(Cue) {}
