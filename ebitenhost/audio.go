package ebitenhost

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/rhpo/vapesort"
)

const (
	SampleRate = 44100
)

// Fallback tones for cues whose sound file is missing.
var cueTones = map[vapesort.Cue]struct {
	frequency float64
	duration  time.Duration
}{
	vapesort.CueRight: {frequency: 880, duration: 150 * time.Millisecond},
	vapesort.CueWrong: {frequency: 220, duration: 300 * time.Millisecond},
}

type AudioManager struct {
	context      *audio.Context
	sounds       map[string]*Sound
	mutex        sync.RWMutex
	masterVolume float64
	soundVolume  float64
}

type Sound struct {
	name    string
	data    []byte
	volume  float64
	players []*audio.Player
	mutex   sync.Mutex
}

type AudioProps struct {
	MasterVolume float64
	SoundVolume  float64
}

func NewAudioManager(props *AudioProps) *AudioManager {
	if props == nil {
		props = &AudioProps{
			MasterVolume: 1.0,
			SoundVolume:  0.8,
		}
	}

	return &AudioManager{
		context:      audio.NewContext(SampleRate),
		sounds:       make(map[string]*Sound),
		masterVolume: clampVolume(props.MasterVolume),
		soundVolume:  clampVolume(props.SoundVolume),
	}
}

// LoadCues loads every configured cue file under root. A cue whose file
// cannot be read gets a generated tone instead.
func (am *AudioManager) LoadCues(root string, sounds map[vapesort.Cue]string) {
	for cue, tone := range cueTones {
		path, ok := sounds[cue]
		if ok {
			err := am.LoadSound(string(cue), filepath.Join(root, filepath.FromSlash(path)))
			if err == nil {
				continue
			}
			log.Printf("audio: %v; using tone for %s", err, cue)
		}
		am.CreateTestTone(string(cue), tone.frequency, tone.duration)
	}
}

func (am *AudioManager) LoadSound(name, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read audio file %s: %w", filePath, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("audio file %s is empty", filePath)
	}

	audioData, err := am.decodeAudio(data, filePath)
	if err != nil {
		return fmt.Errorf("failed to decode audio file %s: %w", filePath, err)
	}
	if len(audioData) == 0 {
		return fmt.Errorf("decoded audio data for %s is empty", filePath)
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()

	am.sounds[name] = &Sound{
		name:    name,
		data:    audioData,
		volume:  1.0,
		players: make([]*audio.Player, 0),
	}
	return nil
}

func (am *AudioManager) decodeAudio(data []byte, filePath string) ([]byte, error) {
	reader := bytes.NewReader(data)

	var stream io.Reader
	var err error

	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(SampleRate, reader)
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(SampleRate, reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(SampleRate, reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	if err != nil {
		return nil, err
	}

	return io.ReadAll(stream)
}

// Play implements vapesort.CuePlayer. Errors are logged, never returned.
func (am *AudioManager) Play(cue vapesort.Cue) {
	if err := am.PlaySound(string(cue)); err != nil {
		log.Printf("audio: %v", err)
	}
}

func (am *AudioManager) PlaySound(name string) error {
	am.mutex.RLock()
	sound, exists := am.sounds[name]
	am.mutex.RUnlock()

	if !exists {
		return fmt.Errorf("sound %s not found", name)
	}

	sound.mutex.Lock()
	defer sound.mutex.Unlock()

	player, err := am.context.NewPlayer(bytes.NewReader(sound.data))
	if err != nil {
		return fmt.Errorf("failed to create audio player for %s: %w", name, err)
	}

	player.SetVolume(am.masterVolume * am.soundVolume * sound.volume)

	am.cleanupSoundPlayers(sound)
	sound.players = append(sound.players, player)

	player.Play()
	return nil
}

func (am *AudioManager) cleanupSoundPlayers(sound *Sound) {
	activePlayers := make([]*audio.Player, 0)

	for _, player := range sound.players {
		if player.IsPlaying() {
			activePlayers = append(activePlayers, player)
		} else {
			player.Close()
		}
	}

	sound.players = activePlayers
}

// CreateTestTone synthesises a stereo 16-bit sine of the given length.
func (am *AudioManager) CreateTestTone(name string, frequency float64, duration time.Duration) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	am.sounds[name] = &Sound{
		name:    name,
		data:    sineTone(frequency, duration),
		volume:  1.0,
		players: make([]*audio.Player, 0),
	}
}

func sineTone(frequency float64, duration time.Duration) []byte {
	samples := int(float64(SampleRate) * duration.Seconds())
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(SampleRate)
		sample := int16(32767 * 0.1 * math.Sin(2*math.Pi*frequency*t))

		data[i*4] = byte(sample)
		data[i*4+1] = byte(sample >> 8)
		data[i*4+2] = byte(sample)
		data[i*4+3] = byte(sample >> 8)
	}
	return data
}

func (am *AudioManager) Update() {
	am.mutex.RLock()
	defer am.mutex.RUnlock()

	for _, sound := range am.sounds {
		sound.mutex.Lock()
		am.cleanupSoundPlayers(sound)
		sound.mutex.Unlock()
	}
}

func (am *AudioManager) Cleanup() {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	for _, sound := range am.sounds {
		sound.mutex.Lock()
		for _, player := range sound.players {
			player.Close()
		}
		sound.players = nil
		sound.mutex.Unlock()
	}

	am.sounds = make(map[string]*Sound)
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
