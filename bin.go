package vapesort

import "github.com/ByteArena/box2d"

// Bin is a drop target occupying one lane at the bottom of the canvas.
type Bin struct {
	X, Y     float64
	Width    float64
	Height   float64
	Category Category
	Sprite   string
}

func NewBin(spec BinSpec, lane int, laneWidth float64) *Bin {
	return &Bin{
		X:        float64(lane) * laneWidth,
		Width:    laneWidth,
		Height:   BinHeight,
		Category: spec.Category,
		Sprite:   spec.Sprite,
	}
}

func (b *Bin) PlaceAtBottom(canvasHeight float64) {
	b.Y = canvasHeight - b.Height
}

func (b *Bin) Bounds() box2d.B2AABB {
	return aabb(b.X, b.Y, b.Width, b.Height)
}
