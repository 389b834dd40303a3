package tailwind

import (
	"math"
	"strings"
)

// spacingSteps is the default Tailwind spacing scale. A step of n equals
// n*4 pixels.
var spacingSteps = map[float64]bool{
	0: true, 0.5: true, 1: true, 1.5: true, 2: true, 2.5: true, 3: true, 3.5: true,
	4: true, 5: true, 6: true, 7: true, 8: true, 9: true, 10: true, 11: true, 12: true,
	14: true, 16: true, 20: true, 24: true, 28: true, 32: true, 36: true, 40: true,
	44: true, 48: true, 52: true, 56: true, 60: true, 64: true, 72: true, 80: true, 96: true,
}

// spacingScaleKeys lists the scale for suggestions, in scale order.
var spacingScaleKeys = []string{"0", "0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4", "5"}

type fraction struct {
	Percent float64
	Name    string
}

// fractions maps percentages to Tailwind fraction suffixes, simplest first.
var fractions = []fraction{
	{50, "1/2"},
	{100.0 / 3, "1/3"},
	{200.0 / 3, "2/3"},
	{25, "1/4"},
	{75, "3/4"},
	{100.0 / 6, "1/6"},
	{500.0 / 6, "5/6"},
	{100.0 / 12, "1/12"},
	{500.0 / 12, "5/12"},
	{700.0 / 12, "7/12"},
	{1100.0 / 12, "11/12"},
	{100, "full"},
}

// fractionFor returns the fraction suffix for a percentage value.
func fractionFor(pct float64) (string, bool) {
	for _, f := range fractions {
		if math.Abs(f.Percent-pct) < 0.01 {
			return f.Name, true
		}
	}
	return "", false
}

// pxToStep converts a pixel amount to a spacing scale suffix.
func pxToStep(px float64) (string, bool) {
	if px == 1 {
		return "px", true
	}
	step := px / 4
	if spacingSteps[step] {
		return formatNumber(step), true
	}
	return "", false
}

// remToStep converts a rem amount to a spacing scale suffix (1rem = 4).
func remToStep(rem float64) (string, bool) {
	step := rem * 4
	if spacingSteps[step] {
		return formatNumber(step), true
	}
	return "", false
}

// spacingSuffix converts a single non-negative spacing value to the suffix
// used after a utility prefix: "4", "px", "1/2", "auto" or "[13px]".
func spacingSuffix(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "auto" {
		return "auto"
	}
	l, ok := parseLength(v)
	if !ok {
		return "[" + underscored(value) + "]"
	}
	switch l.Unit {
	case "", "px":
		if s, ok := pxToStep(l.Num); ok {
			return s
		}
		if l.Unit == "" {
			return "[" + formatNumber(l.Num) + "px]"
		}
	case "rem":
		if s, ok := remToStep(l.Num); ok {
			return s
		}
	case "%":
		if s, ok := fractionFor(l.Num); ok {
			return s
		}
	}
	return "[" + v + "]"
}
