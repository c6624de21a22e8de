package ebitenhost

import (
	"errors"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rhpo/vapesort"
)

func LoadImage(path string) (*ebiten.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}

	return ebiten.NewImageFromImage(img), nil
}

// SpriteCache resolves sprite keys to images under a root directory. Keys
// with no file behind them get a flat swatch in their category's colour.
type SpriteCache struct {
	root       string
	images     map[string]*ebiten.Image
	swatches   map[string]bool
	categories map[string]vapesort.Category
}

func NewSpriteCache(root string, cfg *vapesort.Config) *SpriteCache {
	return &SpriteCache{
		root:       root,
		images:     make(map[string]*ebiten.Image),
		swatches:   make(map[string]bool),
		categories: cfg.SpriteCategories(),
	}
}

func (c *SpriteCache) Get(sprite string) *ebiten.Image {
	if img, ok := c.images[sprite]; ok {
		return img
	}

	img, err := LoadImage(filepath.Join(c.root, filepath.FromSlash(sprite)))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("sprite %s: %v", sprite, err)
		}
		img = swatch(CategoryColor(c.categories[sprite]))
		c.swatches[sprite] = true
	}
	c.images[sprite] = img
	return img
}

// Reload picks up sprite keys from a reloaded config. Stand-in swatches are
// dropped so they are retried with the new categories; loaded files stay.
func (c *SpriteCache) Reload(cfg *vapesort.Config) {
	c.categories = cfg.SpriteCategories()
	for sprite := range c.swatches {
		delete(c.images, sprite)
		delete(c.swatches, sprite)
	}
}

func swatch(c color.Color) *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(c)
	return img
}

func CategoryColor(c vapesort.Category) color.RGBA {
	switch c {
	case vapesort.CategoryOrganic:
		return color.RGBA{94, 160, 72, 255}
	case vapesort.CategoryBattery:
		return color.RGBA{222, 170, 44, 255}
	case vapesort.CategoryRecyclable:
		return color.RGBA{58, 120, 196, 255}
	case vapesort.CategoryLiquid:
		return color.RGBA{170, 84, 190, 255}
	case vapesort.CategoryFullVape:
		return color.RGBA{208, 64, 64, 255}
	}
	return color.RGBA{128, 128, 128, 255}
}
