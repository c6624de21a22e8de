package vapesort

import "github.com/ByteArena/box2d"

// Item is a draggable sprite falling toward the bins.
type Item struct {
	ID        string
	X, Y      float64
	Width     float64
	Height    float64
	FallSpeed float64
	Category  Category
	Sprite    string
	Dragging  bool
}

type ItemProps struct {
	X, Y      float64
	FallSpeed float64
	Category  Category
	Sprite    string
}

func NewItem(props *ItemProps) *Item {
	if props == nil {
		props = &ItemProps{}
	}
	if props.FallSpeed == 0 {
		props.FallSpeed = DefaultFallSpeed
	}

	return &Item{
		ID:        ID(),
		X:         props.X,
		Y:         props.Y,
		Width:     ItemWidth,
		Height:    ItemHeight,
		FallSpeed: props.FallSpeed,
		Category:  props.Category,
		Sprite:    props.Sprite,
	}
}

func (it *Item) Update(notificationActive bool) {
	if !it.Dragging && !notificationActive {
		it.Y += it.FallSpeed
	}
}

// IsPointInside uses strict bounds, so the outline itself is not a hit.
func (it *Item) IsPointInside(px, py float64) bool {
	return px > it.X && px < it.X+it.Width &&
		py > it.Y && py < it.Y+it.Height
}

// CenterOn moves the item so its middle sits under the pointer.
func (it *Item) CenterOn(p Vector2) {
	corner := p.Sub(NewVector2(it.Width/2, it.Height/2))
	it.X, it.Y = corner.X, corner.Y
}

func (it *Item) Bottom() float64 {
	return it.Y + it.Height
}

func (it *Item) Bounds() box2d.B2AABB {
	return aabb(it.X, it.Y, it.Width, it.Height)
}

// Decompose breaks a fullVape into its parts. The caller removes the parent.
// Any other category yields nil.
func (it *Item) Decompose(rnd Random, parts []ItemSpec) []*Item {
	if it.Category != CategoryFullVape {
		return nil
	}

	children := make([]*Item, 0, len(parts))
	for _, part := range parts {
		children = append(children, NewItem(&ItemProps{
			X:         it.X + rnd.Float64()*JitterX*2 - JitterX,
			Y:         it.Y + rnd.Float64()*JitterY*2 - JitterY,
			FallSpeed: DefaultFallSpeed,
			Category:  part.Category,
			Sprite:    part.Sprite,
		}))
	}
	return children
}

func aabb(x, y, w, h float64) box2d.B2AABB {
	box := box2d.MakeB2AABB()
	box.LowerBound = box2d.MakeB2Vec2(x, y)
	box.UpperBound = box2d.MakeB2Vec2(x+w, y+h)
	return box
}
