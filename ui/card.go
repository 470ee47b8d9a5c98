package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Card draws a rounded, filled background behind a settings row
type Card struct {
	widget.BaseWidget
	content fyne.CanvasObject

	mu   sync.RWMutex
	fill color.Color
}

// NewCard creates a card around content
func NewCard(content fyne.CanvasObject, fill color.Color) *Card {
	c := &Card{content: content, fill: fill}
	c.ExtendBaseWidget(c)
	return c
}

// SetFill changes the background color
func (c *Card) SetFill(fill color.Color) {
	c.mu.Lock()
	c.fill = fill
	c.mu.Unlock()
	c.Refresh()
}

// Fill returns the current background color
func (c *Card) Fill() color.Color {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fill
}

// CreateRenderer implements fyne.Widget
func (c *Card) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(c.Fill())
	bg.CornerRadius = theme.Padding() * 2

	return &cardRenderer{
		card:   c,
		bg:     bg,
		padded: container.NewPadded(c.content),
	}
}

type cardRenderer struct {
	card   *Card
	bg     *canvas.Rectangle
	padded *fyne.Container
}

func (r *cardRenderer) MinSize() fyne.Size {
	return r.padded.MinSize()
}

func (r *cardRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.padded.Resize(size)
}

func (r *cardRenderer) Refresh() {
	r.bg.FillColor = r.card.Fill()
	r.bg.Refresh()
	r.padded.Refresh()
}

func (r *cardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.padded}
}

func (r *cardRenderer) Destroy() {}
