package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/rhpo/vapesort"
)

var background = color.RGBA{236, 240, 232, 255}

// ScreenRenderer draws onto the ebiten screen handed to Draw each frame.
type ScreenRenderer struct {
	screen  *ebiten.Image
	sprites *SpriteCache
	face    font.Face
}

func NewScreenRenderer(sprites *SpriteCache) *ScreenRenderer {
	return &ScreenRenderer{
		sprites: sprites,
		face:    defaultFace,
	}
}

func (r *ScreenRenderer) Target(screen *ebiten.Image) {
	r.screen = screen
}

func (r *ScreenRenderer) Clear(width, height float64) {
	r.screen.Fill(background)
}

func (r *ScreenRenderer) DrawSprite(sprite string, x, y, width, height float64) {
	img := r.sprites.Get(sprite)
	bounds := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width/float64(bounds.Dx()), height/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	r.screen.DrawImage(img, op)
}

func (r *ScreenRenderer) DrawFilledRect(x, y, width, height float64, fill color.Color) {
	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(width), float32(height), fill, false)
}

func (r *ScreenRenderer) DrawText(s string, x, y float64, style vapesort.TextStyle) {
	drawText(r.screen, r.face, s, x, y, style)
}

func (r *ScreenRenderer) MeasureText(s string, style vapesort.TextStyle) float64 {
	return measureText(r.face, s, style.Size)
}
