package tuihost

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/rhpo/vapesort"
)

const sampleRate = beep.SampleRate(44100)

type tone struct {
	frequency float64
	duration  time.Duration
}

var cueTones = map[vapesort.Cue]tone{
	vapesort.CueRight: {frequency: 880, duration: 150 * time.Millisecond},
	vapesort.CueWrong: {frequency: 220, duration: 300 * time.Millisecond},
}

// TonePlayer plays cues as short sine tones. If the speaker cannot be
// opened it stays silent.
type TonePlayer struct {
	ready bool
}

func NewTonePlayer() *TonePlayer {
	p := &TonePlayer{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("audio: speaker init failed, cues disabled: %v", err)
		return p
	}
	p.ready = true
	return p
}

func (p *TonePlayer) Play(cue vapesort.Cue) {
	if !p.ready {
		return
	}
	t, ok := cueTones[cue]
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, t.frequency)
	if err != nil {
		log.Printf("audio: %s: %v", cue, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(t.duration), sine))
}

func (p *TonePlayer) Close() {
	if p.ready {
		speaker.Clear()
	}
}
