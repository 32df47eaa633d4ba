package ratiobox

// Direction selects which dimension drives the ratio and which is derived.
type Direction int

const (
	// WidthFromHeight keeps the child's height and derives width = height * ratio.
	WidthFromHeight Direction = iota
	// HeightFromWidth keeps the child's width and derives height = width * ratio.
	HeightFromWidth
)

var directionNames = map[Direction]string{
	WidthFromHeight: "width:height",
	HeightFromWidth: "height:width",
}

var directionsByName = map[string]Direction{
	"width:height": WidthFromHeight,
	"height:width": HeightFromWidth,
}

// String returns the configuration literal of the direction.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// ParseDirection maps a configuration literal to its Direction.
func ParseDirection(value string) (Direction, error) {
	d, ok := directionsByName[value]
	if !ok {
		return WidthFromHeight, &ConfigError{Attr: AttrDirection, Value: value, Err: ErrInvalidDirection}
	}
	return d, nil
}

// resolveDirection reads the direction attribute, falling back to
// WidthFromHeight when it is absent.
func resolveDirection(attrs Attributes) (Direction, error) {
	value, ok := attrs.String(AttrDirection)
	if !ok {
		return WidthFromHeight, nil
	}
	return ParseDirection(value)
}
