package vapesort

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ByteArena/box2d"
)

const (
	scoreTextSize = 30.0
	scoreTextY    = 50.0
)

var (
	scoreTextColor = color.RGBA{0, 0, 0, 255}
	dropHighlight  = color.RGBA{255, 255, 255, 60}
)

type Options struct {
	Clock  Clock
	Random Random
	Cues   CuePlayer
}

// Game owns everything on the canvas. It has no loop of its own: the host
// calls the pointer methods as input arrives and Tick/Draw once per frame,
// all from one goroutine.
type Game struct {
	*EventEmitter

	Width  float64
	Height float64

	Items []*Item
	Bins  []*Bin

	Pointer      Vector2
	Progress     Progress
	Level        int
	Notification Notification

	dragged        *Item
	itemsIncreased bool
	frame          int64

	cfg   *Config
	clock Clock
	rnd   Random
	cues  CuePlayer
}

func NewGame(cfg *Config, opts Options) *Game {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Random == nil {
		opts.Random = newRandom()
	}
	if opts.Cues == nil {
		opts.Cues = silentCues{}
	}

	g := &Game{
		EventEmitter: &EventEmitter{},
		Width:        float64(cfg.Canvas.Width),
		Height:       float64(cfg.Canvas.Height),
		Progress:     NewProgress(),
		Level:        1,
		cfg:          cfg,
		clock:        opts.Clock,
		rnd:          opts.Random,
		cues:         opts.Cues,
	}

	laneWidth := g.Width / float64(len(cfg.Bins))
	for lane, spec := range cfg.Bins {
		g.Bins = append(g.Bins, NewBin(spec, lane, laneWidth))
	}
	g.placeBins()

	for _, spec := range cfg.SeedItems {
		g.Items = append(g.Items, g.spawn(spec))
	}

	return g
}

func (g *Game) Config() *Config {
	return g.cfg
}

// ApplyConfig swaps in tables and tuning from a reloaded config. Live items,
// bins and progress are left as they are.
func (g *Game) ApplyConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	g.cfg = cfg
	g.Emit(EventConfigReload, cfg)
}

// Dragged returns the item currently held by the pointer, if any.
func (g *Game) Dragged() *Item {
	return g.dragged
}

func (g *Game) OnResize(width, height float64) {
	g.Width = width
	g.Height = height
	g.placeBins()
}

func (g *Game) placeBins() {
	for _, bin := range g.Bins {
		bin.PlaceAtBottom(g.Height)
	}
}

// OnPointerDown picks the topmost item under the pointer. Later items win.
// A fullVape is broken apart instead of picked up.
func (g *Game) OnPointerDown(x, y float64) {
	g.Pointer = NewVector2(x, y)

	if g.dragged != nil {
		g.dragged.Dragging = false
		g.dragged = nil
	}

	for i := len(g.Items) - 1; i >= 0; i-- {
		item := g.Items[i]
		if !item.IsPointInside(x, y) {
			continue
		}

		if item.Category == CategoryFullVape {
			g.breakApart(i)
			return
		}

		item.Dragging = true
		g.dragged = item
		g.Emit(EventPickedUp, EventPickedUpData{Item: item})
		return
	}
}

func (g *Game) breakApart(index int) {
	parent := g.Items[index]
	children := parent.Decompose(g.rnd, g.cfg.BreakApart)
	for _, child := range children {
		child.FallSpeed = g.cfg.FallSpeed
	}

	g.Items = append(g.Items[:index], g.Items[index+1:]...)
	g.Items = append(g.Items, children...)

	g.Emit(EventDecomposed, EventDecomposedData{Parent: parent, Children: children})
}

func (g *Game) OnPointerMove(x, y float64) {
	g.Pointer = NewVector2(x, y)
	if g.dragged != nil {
		g.dragged.CenterOn(g.Pointer)
	}
}

func (g *Game) OnPointerUp(x, y float64) {
	g.Pointer = NewVector2(x, y)
	if g.dragged == nil {
		return
	}

	item := g.dragged
	item.Dragging = false
	g.checkDisposal(item)
	g.dragged = nil
}

// BinIndex maps an x coordinate to a lane using the current canvas width.
// It returns -1 outside the lanes.
func (g *Game) BinIndex(x float64) int {
	if len(g.Bins) == 0 || g.Width <= 0 {
		return -1
	}
	laneWidth := g.Width / float64(len(g.Bins))
	lane := math.Floor(x / laneWidth)
	if math.IsNaN(lane) || lane < 0 || lane >= float64(len(g.Bins)) {
		return -1
	}
	return int(lane)
}

func (g *Game) checkDisposal(item *Item) DisposalResult {
	now := g.clock.Now()
	result := DisposalResult{Item: item, BinIndex: g.BinIndex(item.X)}

	if result.BinIndex < 0 {
		g.Notification.Show("Item missed the bins. Try again.", g.cfg.Notification, now)
		result.Outcome = OutcomeMissed
		result.Progress = g.Progress
		g.Emit(EventDisposal, result)
		return result
	}

	bin := g.Bins[result.BinIndex]
	result.Bin = bin

	if item.Bottom() < bin.Y {
		result.Outcome = OutcomeTooHigh
		result.Progress = g.Progress
		g.Emit(EventDisposal, result)
		return result
	}

	matched := item.Category == bin.Category
	before := g.Progress.Score
	if matched {
		g.Notification.Show(fmt.Sprintf("Correctly disposed of %s!", item.Category), g.cfg.Notification, now)
		g.cues.Play(CueRight)
		result.Outcome = OutcomeCorrect
	} else {
		g.Notification.Show(fmt.Sprintf("%s should not be disposed in the %s bin.", item.Category, bin.Category), g.cfg.Notification, now)
		g.cues.Play(CueWrong)
		result.Outcome = OutcomeWrong
	}

	g.Progress = ApplyDisposalOutcome(g.Progress, matched, g.cfg.Scoring)
	result.Delta = g.Progress.Score - before
	result.Progress = g.Progress
	g.Emit(EventDisposal, result)
	return result
}

// AdvanceLevel moves to the next configured level. Nothing in the game calls
// it; hosts bind it to an input.
func (g *Game) AdvanceLevel() bool {
	if g.Level >= len(g.cfg.Levels) {
		return false
	}
	from := g.Level
	g.Level++
	g.Emit(EventLevelChanged, EventLevelChangedData{From: from, To: g.Level})
	return true
}

func (g *Game) currentLevel() (Level, bool) {
	i := g.Level - 1
	if i < 0 || i >= len(g.cfg.Levels) {
		return Level{}, false
	}
	return g.cfg.Levels[i], true
}

// Tick advances one frame of state. Items read the notification flag as it
// stood before this frame's expiry check.
func (g *Game) Tick(ld LoopData) {
	g.frame = ld.Frame
	now := ld.Time
	if now.IsZero() {
		now = g.clock.Now()
	}

	paused := g.Notification.Active
	for _, item := range g.Items {
		item.Update(paused)
	}

	g.Notification.Refresh(now)
	g.applyLevelSpeed()
	g.applyLevelSpawn()
}

func (g *Game) applyLevelSpeed() {
	lvl, ok := g.currentLevel()
	if !ok || lvl.FallSpeed <= 0 {
		return
	}
	for _, item := range g.Items {
		item.FallSpeed = lvl.FallSpeed
	}
}

func (g *Game) applyLevelSpawn() {
	lvl, ok := g.currentLevel()
	if !ok || lvl.ExtraItems <= 0 || g.itemsIncreased {
		return
	}

	pool := lvl.pool(g.cfg.SeedItems)
	spawned := make([]*Item, 0, lvl.ExtraItems)
	for i := 0; i < lvl.ExtraItems; i++ {
		spec := pool[g.pick(len(pool))]
		spawned = append(spawned, g.spawn(spec))
	}
	g.Items = append(g.Items, spawned...)
	g.itemsIncreased = true

	g.Emit(EventItemsSpawned, EventItemsSpawnedData{Level: g.Level, Items: spawned})
}

func (g *Game) pick(n int) int {
	i := int(g.rnd.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

func (g *Game) spawn(spec ItemSpec) *Item {
	x := g.rnd.Float64()*(g.Width-SpawnMarginX*2) + SpawnMarginX
	y := g.rnd.Float64() * SpawnBandY
	return NewItem(&ItemProps{
		X:         x,
		Y:         y,
		FallSpeed: g.cfg.FallSpeed,
		Category:  spec.Category,
		Sprite:    spec.Sprite,
	})
}

// HoveredBin is the bin the dragged item would land in if released now: its
// lane bin, provided the two boxes overlap.
func (g *Game) HoveredBin() (*Bin, bool) {
	if g.dragged == nil {
		return nil, false
	}
	idx := g.BinIndex(g.dragged.X)
	if idx < 0 {
		return nil, false
	}
	bin := g.Bins[idx]
	if !box2d.B2TestOverlapBoundingBoxes(g.dragged.Bounds(), bin.Bounds()) {
		return nil, false
	}
	return bin, true
}

func (g *Game) Draw(r Renderer) {
	r.Clear(g.Width, g.Height)

	for _, item := range g.Items {
		r.DrawSprite(item.Sprite, item.X, item.Y, item.Width, item.Height)
	}

	for _, bin := range g.Bins {
		r.DrawSprite(bin.Sprite, bin.X, bin.Y, bin.Width, bin.Height)
	}

	if bin, ok := g.HoveredBin(); ok {
		r.DrawFilledRect(bin.X, bin.Y, bin.Width, bin.Height, dropHighlight)
	}

	g.Notification.Draw(r, g.Width, g.Height, g.clock.Now())

	r.DrawText(g.ScoreLine(), g.Width/2, scoreTextY, TextStyle{
		Size:  scoreTextSize,
		Color: scoreTextColor,
		Align: AlignCenter,
	})
}

// Frame runs Tick then Draw for hosts with a single per-frame callback.
func (g *Game) Frame(r Renderer) {
	g.frame++
	g.Tick(LoopData{Time: g.clock.Now(), Frame: g.frame})
	g.Draw(r)
}

func (g *Game) ScoreLine() string {
	return fmt.Sprintf("Score: %d : Multiplier X%d", g.Progress.Score, g.Progress.Multiplier)
}
