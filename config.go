package vapesort

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaultConfig []byte

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrNoBins          = errors.New("no bins configured")
	ErrBinLanes        = errors.New("bins must cover each disposable category exactly once")
	ErrLevelOrder      = errors.New("levels must be numbered 1, 2, ... in order")
	ErrNoLevels        = errors.New("no levels configured")
	ErrEmptySeedTable  = errors.New("seed table is empty")
)

type ItemSpec struct {
	Name     string   `yaml:"name"`
	Sprite   string   `yaml:"sprite"`
	Category Category `yaml:"category"`
}

type BinSpec struct {
	Sprite   string   `yaml:"sprite"`
	Category Category `yaml:"category"`
}

type CanvasSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Config struct {
	Canvas       CanvasSpec     `yaml:"canvas"`
	FallSpeed    float64        `yaml:"fall_speed"`
	Notification time.Duration  `yaml:"notification"`
	Scoring      Scoring        `yaml:"scoring"`
	SeedItems    []ItemSpec     `yaml:"seed_items"`
	BreakApart   []ItemSpec     `yaml:"break_apart"`
	Bins         []BinSpec      `yaml:"bins"`
	Levels       []Level        `yaml:"levels"`
	Sounds       map[Cue]string `yaml:"sounds"`
}

// DefaultConfig returns the embedded configuration.
func DefaultConfig() *Config {
	cfg, err := ParseConfig(defaultConfig)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// ParseConfig decodes data on top of zero values and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig overlays the file at path on the embedded defaults. An empty
// path returns the defaults; a missing file is an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := ParseConfig(defaultConfig)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 {
		c.Canvas.Width = DefaultCanvasWidth
	}
	if c.Canvas.Height <= 0 {
		c.Canvas.Height = DefaultCanvasHeight
	}
	if c.FallSpeed <= 0 {
		c.FallSpeed = DefaultFallSpeed
	}
	if c.Notification <= 0 {
		c.Notification = DefaultNotificationDuration
	}
	if c.Scoring == (Scoring{}) {
		c.Scoring = DefaultScoring
	}

	if len(c.SeedItems) == 0 {
		return ErrEmptySeedTable
	}
	if len(c.Bins) == 0 {
		return ErrNoBins
	}
	if len(c.Levels) == 0 {
		return ErrNoLevels
	}

	for _, it := range c.SeedItems {
		if !it.Category.Valid() {
			return fmt.Errorf("seed item %q: %w: %q", it.Name, ErrUnknownCategory, it.Category)
		}
	}
	for _, b := range c.Bins {
		if !b.Category.Disposable() {
			return fmt.Errorf("bin %q: %w: %q", b.Sprite, ErrUnknownCategory, b.Category)
		}
	}
	if err := c.validateBins(); err != nil {
		return err
	}
	for i := range c.Levels {
		lvl := &c.Levels[i]
		if lvl.Number == 0 {
			lvl.Number = i + 1
		}
		if lvl.Number != i+1 {
			return fmt.Errorf("level at position %d numbered %d: %w", i+1, lvl.Number, ErrLevelOrder)
		}
		for _, it := range lvl.SpawnPool {
			if !it.Category.Valid() {
				return fmt.Errorf("level %d spawn item %q: %w: %q", lvl.Number, it.Name, ErrUnknownCategory, it.Category)
			}
		}
	}
	return c.validateBreakApart()
}

// validateBins requires one lane per disposable category. Lane order
// follows the file.
func (c *Config) validateBins() error {
	seen := make(map[Category]bool)
	for _, b := range c.Bins {
		if seen[b.Category] {
			return fmt.Errorf("bin %q: duplicate category %q: %w", b.Sprite, b.Category, ErrBinLanes)
		}
		seen[b.Category] = true
	}
	for _, cat := range []Category{CategoryOrganic, CategoryBattery, CategoryRecyclable, CategoryLiquid} {
		if !seen[cat] {
			return fmt.Errorf("no bin for %q: %w", cat, ErrBinLanes)
		}
	}
	return nil
}

// validateBreakApart pins the parts list to one battery, one recyclable and
// one liquid, in any order.
func (c *Config) validateBreakApart() error {
	want := map[Category]bool{
		CategoryBattery:    false,
		CategoryRecyclable: false,
		CategoryLiquid:     false,
	}
	if len(c.BreakApart) != len(want) {
		return fmt.Errorf("break_apart: want %d parts, got %d", len(want), len(c.BreakApart))
	}
	for _, part := range c.BreakApart {
		seen, ok := want[part.Category]
		if !ok {
			return fmt.Errorf("break_apart part %q: %w: %q", part.Name, ErrUnknownCategory, part.Category)
		}
		if seen {
			return fmt.Errorf("break_apart: duplicate category %q", part.Category)
		}
		want[part.Category] = true
	}
	return nil
}

// SpriteCategories maps every sprite key in the config to the category it
// depicts, for hosts that draw stand-ins when an image is missing.
func (c *Config) SpriteCategories() map[string]Category {
	m := make(map[string]Category)
	add := func(specs []ItemSpec) {
		for _, s := range specs {
			m[s.Sprite] = s.Category
		}
	}
	add(c.SeedItems)
	add(c.BreakApart)
	for _, lvl := range c.Levels {
		add(lvl.SpawnPool)
	}
	for _, b := range c.Bins {
		m[b.Sprite] = b.Category
	}
	return m
}
