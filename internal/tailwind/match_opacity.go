package tailwind

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	opacityDecimal = regexp.MustCompile(`^(?:0|1)?(?:\.\d+)?$|^[01]$`)
	opacityPercent = regexp.MustCompile(`^\d+(?:\.\d+)?%$`)
	zIndexScale    = map[string]bool{"0": true, "10": true, "20": true, "30": true, "40": true, "50": true, "auto": true}
)

func newOpacityMatcher() Matcher {
	return &matcher{
		name: "opacity",
		match: func(prop, _ string) bool {
			return prop == "opacity"
		},
		convert: func(_, value string, _ Settings) []string {
			if c, ok := opacityStep(value); ok {
				return []string{"opacity-" + c}
			}
			return []string{arbitrary("opacity", value)}
		},
	}
}

// opacityStep converts 0.5, .73 or 40% to a step of 5 between 0 and 100.
func opacityStep(value string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(value))

	var pct float64
	switch {
	case v != "" && opacityDecimal.MatchString(v):
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f > 1 {
			return "", false
		}
		pct = f * 100
	case opacityPercent.MatchString(v):
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil || f > 100 {
			return "", false
		}
		pct = f
	default:
		return "", false
	}

	step := math.Round(math.Round(pct)/5) * 5
	return strconv.Itoa(int(step)), true
}

func newZIndexMatcher() Matcher {
	return &matcher{
		name: "z-index",
		match: func(prop, _ string) bool {
			return prop == "z-index"
		},
		convert: func(_, value string, _ Settings) []string {
			v := strings.ToLower(strings.TrimSpace(value))
			if zIndexScale[v] {
				return []string{"z-" + v}
			}
			if integerPat.MatchString(v) {
				return []string{"z-[" + v + "]"}
			}
			if isCSSFunction(v) {
				return []string{arbitrary("z", value)}
			}
			return nil
		},
	}
}
