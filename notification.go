package vapesort

import (
	"image/color"
	"time"
)

const (
	notificationPadding  = 20.0
	notificationHeight   = 60.0
	notificationTextSize = 20.0
)

var (
	notificationFill = color.RGBA{0, 0, 0, 178}
	notificationText = color.RGBA{255, 255, 255, 255}
)

type Notification struct {
	Message string
	Until   time.Time
	Active  bool
}

// Show replaces whatever is on screen.
func (n *Notification) Show(message string, d time.Duration, now time.Time) {
	if d <= 0 {
		d = DefaultNotificationDuration
	}
	n.Message = message
	n.Until = now.Add(d)
	n.Active = true
}

func (n *Notification) IsExpired(now time.Time) bool {
	return !now.Before(n.Until)
}

// Refresh is called once per frame; the active flag only drops here.
func (n *Notification) Refresh(now time.Time) {
	if n.Active && n.IsExpired(now) {
		n.Active = false
	}
}

func (n *Notification) Draw(r Renderer, canvasWidth, canvasHeight float64, now time.Time) {
	if n.IsExpired(now) {
		return
	}

	style := TextStyle{Size: notificationTextSize, Color: notificationText, Align: AlignCenter}
	boxWidth := r.MeasureText(n.Message, style) + notificationPadding*2

	r.DrawFilledRect(
		canvasWidth/2-boxWidth/2,
		canvasHeight/2-notificationHeight/2,
		boxWidth,
		notificationHeight,
		notificationFill,
	)
	r.DrawText(n.Message, canvasWidth/2, canvasHeight/2+10, style)
}
