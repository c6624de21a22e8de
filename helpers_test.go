package vapesort

import (
	"fmt"
	"image/color"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// seqRandom replays a fixed sequence of values, wrapping at the end.
type seqRandom struct {
	values []float64
	i      int
}

func (r *seqRandom) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

type recordingCues struct {
	played []Cue
}

func (c *recordingCues) Play(cue Cue) {
	c.played = append(c.played, cue)
}

type recordingRenderer struct {
	ops []string
}

func (r *recordingRenderer) Clear(width, height float64) {
	r.ops = append(r.ops, "clear")
}

func (r *recordingRenderer) DrawSprite(sprite string, x, y, width, height float64) {
	r.ops = append(r.ops, "sprite:"+sprite)
}

func (r *recordingRenderer) DrawFilledRect(x, y, width, height float64, fill color.Color) {
	r.ops = append(r.ops, fmt.Sprintf("rect:%.0f", width))
}

func (r *recordingRenderer) DrawText(text string, x, y float64, style TextStyle) {
	r.ops = append(r.ops, "text:"+text)
}

func (r *recordingRenderer) MeasureText(text string, style TextStyle) float64 {
	return float64(len(text)) * 10
}

type testGame struct {
	*Game
	clock *fakeClock
	cues  *recordingCues
}

// newTestGame builds a 1000x800 game with the default tables. Bins sit at
// y=670 in 250px lanes: organic, battery, recyclable, liquid.
func newTestGame(values ...float64) testGame {
	if len(values) == 0 {
		values = []float64{0.5}
	}
	cfg := DefaultConfig()
	cfg.Canvas = CanvasSpec{Width: 1000, Height: 800}

	clock := newFakeClock()
	cues := &recordingCues{}
	g := NewGame(cfg, Options{
		Clock:  clock,
		Random: &seqRandom{values: values},
		Cues:   cues,
	})
	return testGame{Game: g, clock: clock, cues: cues}
}

// place replaces the game's items with a single item at (x, y).
func (tg testGame) place(category Category, x, y float64) *Item {
	item := NewItem(&ItemProps{X: x, Y: y, Category: category, Sprite: string(category)})
	tg.Items = []*Item{item}
	return item
}

// drop picks the item up at its center and releases it without moving.
func (tg testGame) drop(item *Item) {
	cx, cy := item.X+item.Width/2, item.Y+item.Height/2
	tg.OnPointerDown(cx, cy)
	tg.OnPointerUp(cx, cy)
}
