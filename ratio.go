package ratiobox

import (
	"math"
	"strconv"
	"strings"
)

// Preset is a named aspect ratio. In configuration a preset is written as its
// negative code, e.g. ratio = -2 for 16:9.
type Preset int

const (
	Preset4x3       Preset = -1
	Preset16x9      Preset = -2
	PresetCinema185 Preset = -3
	PresetCinema239 Preset = -4
	PresetAcademy   Preset = -5
	PresetIMAX      Preset = -6
	Preset2x1       Preset = -7
	PresetGolden    Preset = -8
	PresetSilver    Preset = -9
	PresetISOPaper  Preset = -10
	PresetUSLetter  Preset = -11
)

var presetRatios = map[Preset]float32{
	Preset4x3:       3.0 / 4.0,
	Preset16x9:      9.0 / 16.0,
	PresetCinema185: 1 / 1.85,
	PresetCinema239: 1 / 2.39,
	PresetAcademy:   1 / 1.375,
	PresetIMAX:      1 / 1.43,
	Preset2x1:       1 / 2.0,
	PresetGolden:    float32(1 / ((1 + math.Sqrt(5)) / 2)),
	PresetSilver:    float32(1 / (1 + math.Sqrt(2))),
	PresetISOPaper:  float32(math.Sqrt(2)),
	PresetUSLetter:  11 / 8.5,
}

var presetNames = map[Preset]string{
	Preset4x3:       "4:3",
	Preset16x9:      "16:9",
	PresetCinema185: "cinema 1.85:1",
	PresetCinema239: "cinema 2.39:1",
	PresetAcademy:   "academy 1.375:1",
	PresetIMAX:      "IMAX 1.43:1",
	Preset2x1:       "2:1",
	PresetGolden:    "golden ratio",
	PresetSilver:    "silver ratio",
	PresetISOPaper:  "ISO paper",
	PresetUSLetter:  "US letter",
}

// Presets lists every preset in code order.
func Presets() []Preset {
	presets := make([]Preset, 0, len(presetRatios))
	for code := Preset4x3; code >= PresetUSLetter; code-- {
		presets = append(presets, code)
	}
	return presets
}

// PresetFromCode returns the preset for a negative configuration code.
func PresetFromCode(code int) (Preset, bool) {
	p := Preset(code)
	_, ok := presetRatios[p]
	return p, ok
}

// Ratio returns derived/driver for the preset, or 0 for an unknown preset.
func (p Preset) Ratio() float32 {
	return presetRatios[p]
}

func (p Preset) String() string {
	if name, ok := presetNames[p]; ok {
		return name
	}
	return "preset(" + strconv.Itoa(int(p)) + ")"
}

// ParseProportion parses "<driver>:<derived>" and returns derived/driver.
// It reports false for anything other than exactly two numeric parts, or when
// the quotient is not a finite non-negative number.
func ParseProportion(s string) (float32, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	driver, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return 0, false
	}
	derived, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return 0, false
	}
	f := float32(derived) / float32(driver)
	return f, validRatio(f)
}

func validRatio(f float32) bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// ratioAttempt is one way of reading the ratio attribute. Attempts run in
// order and the first valid result wins.
type ratioAttempt func(attrs Attributes) (float32, bool)

var ratioAttempts = []ratioAttempt{
	floatRatio,
	presetRatio,
	fractionRatio,
	proportionRatio,
}

func floatRatio(attrs Attributes) (float32, bool) {
	f, ok := attrs.Float(AttrRatio)
	return f, ok && f >= 0
}

func presetRatio(attrs Attributes) (float32, bool) {
	f, ok := attrs.Float(AttrRatio)
	if !ok || !(f < 0) || math.IsInf(float64(f), -1) {
		return 0, false
	}
	p, ok := PresetFromCode(int(f))
	if !ok {
		return 0, false
	}
	return p.Ratio(), true
}

func fractionRatio(attrs Attributes) (float32, bool) {
	return attrs.Fraction(AttrRatio, 1, 1)
}

func proportionRatio(attrs Attributes) (float32, bool) {
	s, ok := attrs.String(AttrRatio)
	if !ok {
		return 0, false
	}
	return ParseProportion(s)
}

// ResolveRatio reads the ratio attribute as a float, a negative preset code,
// a fraction or a "<driver>:<derived>" string, in that order.
func ResolveRatio(attrs Attributes) (float32, error) {
	for _, attempt := range ratioAttempts {
		if f, ok := attempt(attrs); ok && validRatio(f) {
			return f, nil
		}
	}
	value, _ := attrs.String(AttrRatio)
	return 0, &ConfigError{Attr: AttrRatio, Value: value, Err: ErrInvalidRatio}
}
