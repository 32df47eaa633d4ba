// Package ratiobox provides a single-child container that derives one of its
// dimensions from the other through a fixed ratio, e.g. 16:9.
//
// For WidthFromHeight the box keeps its child's height and sets
// width = height * ratio; for HeightFromWidth it keeps the width and sets
// height = width * ratio. The child is then stretched over the whole box.
package ratiobox

import "math"

// RatioBox sizes itself from its only child using Direction and Ratio.
// It is driven from the UI thread and is not safe for concurrent use.
type RatioBox struct {
	direction Direction
	ratio     float32

	children []View

	measuredWidth  int
	measuredHeight int
}

// New returns a box with direction WidthFromHeight and ratio 1.
func New() *RatioBox {
	return &RatioBox{direction: WidthFromHeight, ratio: 1}
}

// NewFromAttributes builds a box from its direction and ratio attributes.
func NewFromAttributes(attrs Attributes) (*RatioBox, error) {
	direction, err := resolveDirection(attrs)
	if err != nil {
		return nil, err
	}
	ratio, err := ResolveRatio(attrs)
	if err != nil {
		return nil, err
	}
	return &RatioBox{direction: direction, ratio: ratio}, nil
}

func (b *RatioBox) Direction() Direction {
	return b.direction
}

func (b *RatioBox) SetDirection(d Direction) {
	b.direction = d
}

func (b *RatioBox) Ratio() float32 {
	return b.ratio
}

// SetRatio stores ratio as is. Callers are responsible for passing a usable
// value.
func (b *RatioBox) SetRatio(ratio float32) {
	b.ratio = ratio
}

// SetProportion sets the ratio from a "<driver>:<derived>" string such as
// "16:9". The current ratio is kept when s is malformed.
func (b *RatioBox) SetProportion(s string) error {
	f, ok := ParseProportion(s)
	if !ok {
		return &ConfigError{Attr: AttrRatio, Value: s, Err: ErrInvalidRatio}
	}
	b.ratio = f
	return nil
}

// SetPreset sets the ratio of a named preset.
func (b *RatioBox) SetPreset(p Preset) error {
	if _, ok := PresetFromCode(int(p)); !ok {
		return &ConfigError{Attr: AttrRatio, Value: p.String(), Err: ErrInvalidRatio}
	}
	b.ratio = p.Ratio()
	return nil
}

// AddView attaches a child. The box accepts any number of children but
// refuses to measure or lay out unless it holds exactly one.
func (b *RatioBox) AddView(v View) {
	b.children = append(b.children, v)
}

// RemoveView detaches v and reports whether it was attached.
func (b *RatioBox) RemoveView(v View) bool {
	for i, c := range b.children {
		if c == v {
			b.children = append(b.children[:i], b.children[i+1:]...)
			return true
		}
	}
	return false
}

func (b *RatioBox) ChildCount() int {
	return len(b.children)
}

func (b *RatioBox) ChildAt(i int) View {
	if i < 0 || i >= len(b.children) {
		return nil
	}
	return b.children[i]
}

func (b *RatioBox) MeasuredWidth() int {
	return b.measuredWidth
}

func (b *RatioBox) MeasuredHeight() int {
	return b.measuredHeight
}

func (b *RatioBox) onlyChild() (View, error) {
	if len(b.children) != 1 {
		return nil, &StructuralError{Children: len(b.children)}
	}
	return b.children[0], nil
}

// Measure probes the child under the incoming specs, derives the dependent
// dimension from the ratio, pins the child to the result and records the
// box's own size resolved against the incoming specs.
func (b *RatioBox) Measure(width, height MeasureSpec) error {
	child, err := b.onlyChild()
	if err != nil {
		return err
	}

	// First pass learns the child's natural size.
	MeasureChild(child, width, height)

	w, h := b.derive(child.MeasuredWidth(), child.MeasuredHeight())

	// Second pass commits the child to the derived size.
	MeasureChild(child, ExactSpec(w), ExactSpec(h))

	b.setMeasuredDimension(ResolveSize(w, width), ResolveSize(h, height))
	return nil
}

// derive applies the ratio to the driver dimension.
func (b *RatioBox) derive(childWidth, childHeight int) (width, height int) {
	if b.direction == HeightFromWidth {
		return childWidth, scale(childWidth, b.ratio)
	}
	return scale(childHeight, b.ratio), childHeight
}

// scale rounds half away from zero.
func scale(size int, ratio float32) int {
	return int(math.Round(float64(size) * float64(ratio)))
}

func (b *RatioBox) setMeasuredDimension(width, height int) {
	b.measuredWidth = width
	b.measuredHeight = height
}

// Layout stretches the child over the box's bounds. The child is placed in
// box-local coordinates, so only the bounds' extent matters.
func (b *RatioBox) Layout(left, top, right, bottom int) error {
	child, err := b.onlyChild()
	if err != nil {
		return err
	}
	child.Layout(0, 0, right-left, bottom-top)
	return nil
}
