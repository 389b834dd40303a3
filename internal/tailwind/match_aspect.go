package tailwind

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

type aspectRatio struct {
	W, H  float64
	Class string
}

// knownAspectRatios are the ratios with a dedicated class, either named or
// written as a reduced fraction.
var knownAspectRatios = []aspectRatio{
	{1, 1, "aspect-square"},
	{16, 9, "aspect-video"},
	{4, 3, "aspect-[4/3]"},
	{3, 2, "aspect-[3/2]"},
	{2, 3, "aspect-[2/3]"},
	{3, 4, "aspect-[3/4]"},
	{9, 16, "aspect-[9/16]"},
	{21, 9, "aspect-[21/9]"},
}

var (
	aspectFraction = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*[/:]\s*(\d+(?:\.\d+)?)$`)
	aspectDecimal  = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

func newAspectRatioMatcher() Matcher {
	return &matcher{
		name: "aspect-ratio",
		match: func(prop, _ string) bool {
			return prop == "aspect-ratio"
		},
		convert: func(_, value string, _ Settings) []string {
			return []string{aspectRatioClass(value)}
		},
	}
}

// aspectRatioClass converts an aspect-ratio value. Literal fractions and
// decimals of the known ratios map to their class; other ratios are reduced.
func aspectRatioClass(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "auto" {
		return "aspect-auto"
	}

	var w, h float64
	switch {
	case aspectFraction.MatchString(v):
		m := aspectFraction.FindStringSubmatch(v)
		w, _ = strconv.ParseFloat(m[1], 64)
		h, _ = strconv.ParseFloat(m[2], 64)
	case aspectDecimal.MatchString(v):
		w, _ = strconv.ParseFloat(v, 64)
		h = 1
	default:
		return "aspect-[" + stripSpaces(value) + "]"
	}
	if w <= 0 || h <= 0 {
		return "aspect-[" + stripSpaces(value) + "]"
	}

	ratio := w / h
	for _, known := range knownAspectRatios {
		if w*known.H == h*known.W {
			return known.Class
		}
	}
	for _, known := range knownAspectRatios {
		if round2(ratio) == round2(known.W/known.H) {
			return known.Class
		}
	}

	if h == 1 {
		return "aspect-[" + formatNumber(w) + "]"
	}
	return "aspect-[" + reduceRatio(w, h) + "]"
}

// reduceRatio simplifies w/h to an integer fraction.
func reduceRatio(w, h float64) string {
	const scale = 1000
	a := int64(math.Round(w * scale))
	b := int64(math.Round(h * scale))
	d := gcd(a, b)
	return strconv.FormatInt(a/d, 10) + "/" + strconv.FormatInt(b/d, 10)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
