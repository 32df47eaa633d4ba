package ratiobox

import "fmt"

// MeasureMode is how a parent constrains one dimension of a child.
type MeasureMode int

const (
	// Unspecified places no limit on the size.
	Unspecified MeasureMode = iota
	// Exactly requires the size to equal the spec size.
	Exactly
	// AtMost lets the size grow up to the spec size.
	AtMost
)

func (m MeasureMode) String() string {
	switch m {
	case Exactly:
		return "exactly"
	case AtMost:
		return "at most"
	default:
		return "unspecified"
	}
}

// MeasureSpec is a single dimension constraint handed down during measurement.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

func ExactSpec(size int) MeasureSpec {
	return MeasureSpec{Mode: Exactly, Size: size}
}

func AtMostSpec(size int) MeasureSpec {
	return MeasureSpec{Mode: AtMost, Size: size}
}

func UnspecifiedSpec() MeasureSpec {
	return MeasureSpec{Mode: Unspecified}
}

func (s MeasureSpec) String() string {
	if s.Mode == Unspecified {
		return s.Mode.String()
	}
	return fmt.Sprintf("%s %d", s.Mode, s.Size)
}

// ResolveSize reconciles a desired size with a spec: Exactly wins, AtMost
// clamps and Unspecified passes the desired size through.
func ResolveSize(size int, spec MeasureSpec) int {
	switch spec.Mode {
	case Exactly:
		return spec.Size
	case AtMost:
		if size > spec.Size {
			return spec.Size
		}
	}
	return size
}

// View is a node of the host view tree as seen by a container. The tree owns
// its views; a container only measures and positions them.
type View interface {
	// Measure records the view's size for the given constraints.
	Measure(width, height MeasureSpec)
	MeasuredWidth() int
	MeasuredHeight() int
	// Layout places the view relative to its parent.
	Layout(left, top, right, bottom int)
}

// MeasureChild asks child to measure itself under the parent's specs.
func MeasureChild(child View, width, height MeasureSpec) {
	child.Measure(width, height)
}
