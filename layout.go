package ratiobox

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// canvasView adapts a Fyne object to the measurement protocol. Its natural
// size is its MinSize rounded up to whole pixels.
type canvasView struct {
	obj    fyne.CanvasObject
	width  int
	height int
}

// CanvasView wraps obj so that a RatioBox can measure and place it.
func CanvasView(obj fyne.CanvasObject) View {
	return &canvasView{obj: obj}
}

func (v *canvasView) Measure(width, height MeasureSpec) {
	natural := v.obj.MinSize()
	v.width = ResolveSize(ceil(natural.Width), width)
	v.height = ResolveSize(ceil(natural.Height), height)
}

func (v *canvasView) MeasuredWidth() int {
	return v.width
}

func (v *canvasView) MeasuredHeight() int {
	return v.height
}

func (v *canvasView) Layout(left, top, right, bottom int) {
	v.obj.Move(fyne.NewPos(float32(left), float32(top)))
	v.obj.Resize(fyne.NewSize(float32(right-left), float32(bottom-top)))
}

func ceil(f float32) int {
	return int(math.Ceil(float64(f)))
}

// ratioLayout lets a RatioBox drive a fyne.Container. The container's
// objects replace the box's children on every call.
type ratioLayout struct {
	box *RatioBox
}

var _ fyne.Layout = (*ratioLayout)(nil)

// FyneLayout returns a fyne.Layout backed by b. A fyne.Layout cannot report
// errors, so a container without exactly one object panics with a
// *StructuralError.
func (b *RatioBox) FyneLayout() fyne.Layout {
	return &ratioLayout{box: b}
}

// NewContainer returns a container that sizes child through b.
func NewContainer(b *RatioBox, child fyne.CanvasObject) *fyne.Container {
	return container.New(b.FyneLayout(), child)
}

func (l *ratioLayout) attach(objects []fyne.CanvasObject) {
	l.box.children = l.box.children[:0]
	for _, o := range objects {
		l.box.AddView(CanvasView(o))
	}
}

// MinSize measures the child without constraints.
func (l *ratioLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	l.attach(objects)
	if err := l.box.Measure(UnspecifiedSpec(), UnspecifiedSpec()); err != nil {
		panic(err)
	}
	return fyne.NewSize(float32(l.box.MeasuredWidth()), float32(l.box.MeasuredHeight()))
}

// Layout measures the child within size and stretches it over the result.
func (l *ratioLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	l.attach(objects)
	width, height := int(size.Width), int(size.Height)
	if err := l.box.Measure(AtMostSpec(width), AtMostSpec(height)); err != nil {
		panic(err)
	}
	if err := l.box.Layout(0, 0, l.box.MeasuredWidth(), l.box.MeasuredHeight()); err != nil {
		panic(err)
	}
}
