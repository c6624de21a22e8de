package ebitenhost

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rhpo/vapesort"
)

type Props struct {
	Title     string
	AssetsDir string
	Seed      int64
	Watcher   *vapesort.ConfigWatcher
}

// Game adapts a vapesort.Game to ebiten's Update/Draw/Layout cycle.
type Game struct {
	game     *vapesort.Game
	renderer *ScreenRenderer
	audio    *AudioManager
	watcher  *vapesort.ConfigWatcher
	title    string

	frame          int64
	lastUpdate     time.Time
	outsideWidth   int
	outsideHeight  int
	pointer        vapesort.Vector2
	pointerPressed bool
}

func NewGame(cfg *vapesort.Config, props *Props) *Game {
	if props == nil {
		props = &Props{}
	}
	if props.Title == "" {
		props.Title = "Vape Sort"
	}

	am := NewAudioManager(nil)
	am.LoadCues(props.AssetsDir, cfg.Sounds)

	game := vapesort.NewGame(cfg, vapesort.Options{
		Random: vapesort.NewRandom(props.Seed),
		Cues:   am,
	})

	sprites := NewSpriteCache(props.AssetsDir, cfg)
	game.On(vapesort.EventConfigReload, func(data interface{}) {
		sprites.Reload(data.(*vapesort.Config))
	})

	return &Game{
		game:          game,
		renderer:      NewScreenRenderer(sprites),
		audio:         am,
		watcher:       props.Watcher,
		title:         props.Title,
		outsideWidth:  cfg.Canvas.Width,
		outsideHeight: cfg.Canvas.Height,
	}
}

// State exposes the simulation, e.g. for attaching event subscribers.
func (g *Game) State() *vapesort.Game {
	return g.game
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	delta := 1.0 / float64(ebiten.TPS())
	if !g.lastUpdate.IsZero() {
		delta = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now

	g.applyResize()
	g.pollConfig()
	g.updateInput()

	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.game.AdvanceLevel()
	}

	g.frame++
	g.game.Tick(vapesort.LoopData{Time: now, Frame: g.frame, Delta: delta})
	g.audio.Update()
	return nil
}

func (g *Game) applyResize() {
	w, h := float64(g.outsideWidth), float64(g.outsideHeight)
	if w != g.game.Width || h != g.game.Height {
		g.game.OnResize(w, h)
	}
}

func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	cfg, err := g.watcher.Poll()
	if err != nil {
		log.Printf("config reload: %v", err)
		return
	}
	if cfg != nil {
		g.game.ApplyConfig(cfg)
	}
}

func (g *Game) updateInput() {
	x, y := ebiten.CursorPosition()
	pos := vapesort.NewVector2(float64(x), float64(y))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pointerPressed = true
		g.game.OnPointerDown(pos.X, pos.Y)
	}
	if pos != g.pointer {
		g.game.OnPointerMove(pos.X, pos.Y)
	}
	if g.pointerPressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pointerPressed = false
		g.game.OnPointerUp(pos.X, pos.Y)
	}
	g.pointer = pos
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Target(screen)
	g.game.Draw(g.renderer)
}

// Layout follows the window so the canvas always fills it. The new size is
// applied to the simulation on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.outsideWidth = outsideWidth
	g.outsideHeight = outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) Run() error {
	ebiten.SetWindowSize(g.outsideWidth, g.outsideHeight)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	defer g.audio.Cleanup()
	return ebiten.RunGame(g)
}
