package tuihost

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rhpo/vapesort"
)

const frameInterval = 16 * time.Millisecond

type Props struct {
	Seed    int64
	Watcher *vapesort.ConfigWatcher
	Cues    vapesort.CuePlayer
}

// Host runs a vapesort.Game inside a terminal. Input is read on its own
// goroutine but only applied from Run's loop.
type Host struct {
	screen   tcell.Screen
	game     *vapesort.Game
	renderer *CellRenderer
	pointer  PointerTracker
	watcher  *vapesort.ConfigWatcher
}

// NewHost sizes the canvas to the terminal before building the game, so the
// bin lanes line up with the screen.
func NewHost(screen tcell.Screen, cfg *vapesort.Config, props *Props) *Host {
	if props == nil {
		props = &Props{}
	}

	w, h := CanvasSize(screen)
	sized := *cfg
	sized.Canvas = vapesort.CanvasSpec{Width: int(w), Height: int(h)}

	game := vapesort.NewGame(&sized, vapesort.Options{
		Random: vapesort.NewRandom(props.Seed),
		Cues:   props.Cues,
	})
	renderer := NewCellRenderer(screen, cfg)
	game.On(vapesort.EventConfigReload, func(data interface{}) {
		renderer.Reload(data.(*vapesort.Config))
	})

	return &Host{
		screen:   screen,
		game:     game,
		renderer: renderer,
		watcher:  props.Watcher,
	}
}

func (h *Host) State() *vapesort.Game {
	return h.game
}

// HandleEvent applies one terminal event. It returns false when the player
// asked to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'l', 'L':
				h.game.AdvanceLevel()
			}
		}

	case *tcell.EventMouse:
		h.pointer.Handle(ev, h.game)

	case *tcell.EventResize:
		h.screen.Sync()
		w, hh := CanvasSize(h.screen)
		h.game.OnResize(w, hh)
	}
	return true
}

// Step runs one frame and flushes it to the terminal.
func (h *Host) Step() {
	h.pollConfig()
	h.game.Frame(h.renderer)
	h.screen.Show()
}

func (h *Host) pollConfig() {
	if h.watcher == nil {
		return
	}
	cfg, err := h.watcher.Poll()
	if err != nil {
		log.Printf("config reload: %v", err)
		return
	}
	if cfg != nil {
		h.game.ApplyConfig(cfg)
	}
}

func (h *Host) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !h.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.Step()
		}
	}
}
