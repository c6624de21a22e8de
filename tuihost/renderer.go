package tuihost

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/rhpo/vapesort"
)

// A terminal cell stands in for this many canvas pixels.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

var backgroundColor = tcell.NewRGBColor(236, 240, 232)

// CellRenderer draws the canvas onto a tcell screen, one cell per
// CellWidth x CellHeight block of pixels. Sprites become solid blocks in
// their category colour with the category initial in the middle.
type CellRenderer struct {
	screen     tcell.Screen
	categories map[string]vapesort.Category
}

func NewCellRenderer(screen tcell.Screen, cfg *vapesort.Config) *CellRenderer {
	return &CellRenderer{
		screen:     screen,
		categories: cfg.SpriteCategories(),
	}
}

// Reload picks up sprite keys added by a reloaded config.
func (r *CellRenderer) Reload(cfg *vapesort.Config) {
	r.categories = cfg.SpriteCategories()
}

// CanvasSize is the pixel canvas covered by the current terminal.
func CanvasSize(screen tcell.Screen) (float64, float64) {
	cols, rows := screen.Size()
	return float64(cols) * CellWidth, float64(rows) * CellHeight
}

// CellCenter maps a cell to the canvas point at its middle.
func CellCenter(col, row int) vapesort.Vector2 {
	return vapesort.NewVector2(
		float64(col)*CellWidth+CellWidth/2,
		float64(row)*CellHeight+CellHeight/2,
	)
}

func (r *CellRenderer) Clear(width, height float64) {
	r.screen.Clear()
	r.screen.Fill(' ', tcell.StyleDefault.Background(backgroundColor))
}

func (r *CellRenderer) DrawSprite(sprite string, x, y, width, height float64) {
	category := r.categories[sprite]
	fill := CategoryColor(category)
	style := tcell.StyleDefault.Background(fill).Foreground(tcell.ColorWhite).Bold(true)

	c0, r0, c1, r1 := r.cells(x, y, width, height)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}

	if c1 > c0 && r1 > r0 && category != "" {
		r.screen.SetContent((c0+c1-1)/2, (r0+r1-1)/2, categoryGlyph(category), nil, style)
	}
}

// DrawFilledRect blends translucent fills into whatever is already there.
func (r *CellRenderer) DrawFilledRect(x, y, width, height float64, fill color.Color) {
	c0, r0, c1, r1 := r.cells(x, y, width, height)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			mainc, combc, style, _ := r.screen.GetContent(col, row)
			_, bg, _ := style.Decompose()
			r.screen.SetContent(col, row, mainc, combc, style.Background(blend(bg, fill)))
		}
	}
}

// DrawText puts the text on the row holding the baseline y. Terminal text
// has one size, so style.Size is ignored.
func (r *CellRenderer) DrawText(s string, x, y float64, style vapesort.TextStyle) {
	runes := []rune(s)
	width := float64(len(runes)) * CellWidth

	left := x
	switch style.Align {
	case vapesort.AlignCenter:
		left = x - width/2
	case vapesort.AlignRight:
		left = x - width
	}

	col := int(math.Round(left / CellWidth))
	row := int(math.Floor((y - 1) / CellHeight))
	cols, rows := r.screen.Size()
	if row < 0 || row >= rows {
		return
	}

	fg := tcell.ColorBlack
	if style.Color != nil {
		fg = toTcell(style.Color)
	}

	for i, ch := range runes {
		c := col + i
		if c < 0 || c >= cols {
			continue
		}
		_, _, cur, _ := r.screen.GetContent(c, row)
		_, bg, _ := cur.Decompose()
		r.screen.SetContent(c, row, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
	}
}

func (r *CellRenderer) MeasureText(s string, style vapesort.TextStyle) float64 {
	return float64(len([]rune(s))) * CellWidth
}

// cells returns the clipped, half-open cell range covered by a pixel rect.
func (r *CellRenderer) cells(x, y, width, height float64) (c0, r0, c1, r1 int) {
	cols, rows := r.screen.Size()
	c0 = clamp(int(math.Floor(x/CellWidth)), 0, cols)
	r0 = clamp(int(math.Floor(y/CellHeight)), 0, rows)
	c1 = clamp(int(math.Ceil((x+width)/CellWidth)), 0, cols)
	r1 = clamp(int(math.Ceil((y+height)/CellHeight)), 0, rows)
	return c0, r0, c1, r1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func categoryGlyph(c vapesort.Category) rune {
	switch c {
	case vapesort.CategoryOrganic:
		return 'O'
	case vapesort.CategoryBattery:
		return 'B'
	case vapesort.CategoryRecyclable:
		return 'R'
	case vapesort.CategoryLiquid:
		return 'L'
	case vapesort.CategoryFullVape:
		return 'V'
	}
	return '?'
}

func CategoryColor(c vapesort.Category) tcell.Color {
	switch c {
	case vapesort.CategoryOrganic:
		return tcell.NewRGBColor(94, 160, 72)
	case vapesort.CategoryBattery:
		return tcell.NewRGBColor(222, 170, 44)
	case vapesort.CategoryRecyclable:
		return tcell.NewRGBColor(58, 120, 196)
	case vapesort.CategoryLiquid:
		return tcell.NewRGBColor(170, 84, 190)
	case vapesort.CategoryFullVape:
		return tcell.NewRGBColor(208, 64, 64)
	}
	return tcell.NewRGBColor(128, 128, 128)
}

func toTcell(c color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// blend lays fill over base using fill's alpha.
func blend(base tcell.Color, fill color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(fill).(color.NRGBA)
	if n.A == 255 || !base.Valid() {
		return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
	}

	br, bg, bb := base.RGB()
	a := float64(n.A) / 255
	mix := func(over uint8, under int32) int32 {
		return int32(math.Round(float64(over)*a + float64(under)*(1-a)))
	}
	return tcell.NewRGBColor(mix(n.R, br), mix(n.G, bg), mix(n.B, bb))
}
