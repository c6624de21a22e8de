package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/rhpo/vapesort"
)

// basicfont is a fixed 13px face; larger sizes are drawn scaled.
const baseFontSize = 13.0

var defaultFace font.Face = basicfont.Face7x13

func textScale(size float64) float64 {
	if size <= 0 {
		return 1
	}
	return size / baseFontSize
}

func measureText(face font.Face, s string, size float64) float64 {
	advance := font.MeasureString(face, s)
	return float64(advance) / 64 * textScale(size)
}

// alignedX returns the left edge for text of the given width anchored at x.
func alignedX(x, width float64, align vapesort.Align) float64 {
	switch align {
	case vapesort.AlignCenter:
		return x - width/2
	case vapesort.AlignRight:
		return x - width
	}
	return x
}

// drawText draws s with its baseline at y.
func drawText(screen *ebiten.Image, face font.Face, s string, x, y float64, style vapesort.TextStyle) {
	if s == "" {
		return
	}
	var c color.Color = color.White
	if style.Color != nil {
		c = style.Color
	}

	scale := textScale(style.Size)
	width := measureText(face, s, style.Size)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(alignedX(x, width, style.Align), y)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(screen, s, face, op)
}
