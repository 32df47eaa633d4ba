package ratiobox

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Attribute keys read by NewFromAttributes.
const (
	AttrDirection = "direction"
	AttrRatio     = "ratio"
)

// Attributes is a typed view over a set of style attributes. Each getter
// reports false when the key is missing or cannot be read as that type.
type Attributes interface {
	String(key string) (string, bool)
	Float(key string) (float32, bool)
	// Fraction reads values such as "50%" (relative to base) or "50%p"
	// (relative to pbase).
	Fraction(key string, base, pbase float32) (float32, bool)
}

// MapAttributes is an Attributes backed by decoded values.
type MapAttributes map[string]any

var _ Attributes = MapAttributes{}

func (m MapAttributes) String(key string) (string, bool) {
	switch v := m[key].(type) {
	case string:
		return v, true
	case nil:
		return "", false
	default:
		if f, ok := toFloat(v); ok {
			return strconv.FormatFloat(f, 'g', -1, 64), true
		}
		return fmt.Sprint(v), true
	}
}

func (m MapAttributes) Float(key string) (float32, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	if s, isString := v.(string); isString {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
		if err != nil {
			return 0, false
		}
		return float32(f), true
	}
	f, ok := toFloat(v)
	return float32(f), ok
}

func (m MapAttributes) Fraction(key string, base, pbase float32) (float32, bool) {
	s, ok := m[key].(string)
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)
	mult := base
	switch {
	case strings.HasSuffix(s, "%p"):
		s, mult = strings.TrimSuffix(s, "%p"), pbase
	case strings.HasSuffix(s, "%"):
		s = strings.TrimSuffix(s, "%")
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, false
	}
	return float32(f) / 100 * mult, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// AttributeSets maps a box name to its attributes.
type AttributeSets map[string]MapAttributes

// DecodeTOML reads attribute sets written as TOML tables:
//
//	[hero]
//	direction = "height:width"
//	ratio = "16:9"
func DecodeTOML(r io.Reader) (AttributeSets, error) {
	var sets AttributeSets
	if _, err := toml.NewDecoder(r).Decode(&sets); err != nil {
		return nil, fmt.Errorf("ratiobox: decode toml: %w", err)
	}
	return sets, nil
}

// DecodeYAML reads attribute sets written as a YAML mapping of mappings.
func DecodeYAML(r io.Reader) (AttributeSets, error) {
	var sets AttributeSets
	if err := yaml.NewDecoder(r).Decode(&sets); err != nil {
		if err == io.EOF {
			return AttributeSets{}, nil
		}
		return nil, fmt.Errorf("ratiobox: decode yaml: %w", err)
	}
	return sets, nil
}
