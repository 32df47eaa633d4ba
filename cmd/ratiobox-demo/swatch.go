package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// swatch is a tappable coloured block with a caption. It fills whatever
// bounds its RatioBox gives it, which makes the derived size visible.
type swatch struct {
	widget.BaseWidget
	Fill     color.Color
	Caption  string
	minSize  fyne.Size
	onTapped func()
}

func newSwatch(fill color.Color, caption string, onTapped func()) *swatch {
	s := &swatch{
		Fill:     fill,
		Caption:  caption,
		minSize:  fyne.NewSize(120, 80),
		onTapped: onTapped,
	}
	s.ExtendBaseWidget(s)
	return s
}

func (s *swatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Fill)
	rect.CornerRadius = 4
	text := canvas.NewText(s.Caption, color.White)
	text.Alignment = fyne.TextAlignCenter
	text.TextSize = 11
	return &swatchRenderer{rect: rect, text: text, widget: s}
}

// Tapped is called when the user taps the swatch.
func (s *swatch) Tapped(_ *fyne.PointEvent) {
	if s.onTapped != nil {
		s.onTapped()
	}
}

// SetCaption updates the caption and redraws.
func (s *swatch) SetCaption(caption string) {
	s.Caption = caption
	s.Refresh()
}

type swatchRenderer struct {
	rect   *canvas.Rectangle
	text   *canvas.Text
	widget *swatch
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	r.rect.Resize(size)
	textSize := r.text.MinSize()
	r.text.Move(fyne.NewPos(0, (size.Height-textSize.Height)/2))
	r.text.Resize(fyne.NewSize(size.Width, textSize.Height))
}

func (r *swatchRenderer) MinSize() fyne.Size {
	return r.widget.minSize
}

func (r *swatchRenderer) Refresh() {
	r.rect.FillColor = r.widget.Fill
	r.text.Text = r.widget.Caption
	r.rect.Refresh()
	r.text.Refresh()
}

func (r *swatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.rect, r.text}
}

func (r *swatchRenderer) Destroy() {}
