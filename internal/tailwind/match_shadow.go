package tailwind

import (
	"regexp"
	"strings"
)

type shadowDef struct {
	Class      string
	Definition string
}

var builtinShadows = []shadowDef{
	{"shadow-sm", "0 1px 2px 0 rgb(0 0 0 / 0.05)"},
	{"shadow", "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)"},
	{"shadow-md", "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)"},
	{"shadow-lg", "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)"},
	{"shadow-xl", "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)"},
	{"shadow-2xl", "0 25px 50px -12px rgb(0 0 0 / 0.25)"},
	{"shadow-inner", "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)"},
}

var (
	spaceRGBPat = regexp.MustCompile(`rgb\(\s*(\d+)\s+(\d+)\s+(\d+)\s*/\s*([\d.]+)\s*\)`)
	commaPat    = regexp.MustCompile(`\s*,\s*`)
	shadowLen   = regexp.MustCompile(`^-?\d*\.?\d+(px|em|rem|%|vh|vw|cm|mm|in|pt|pc|ex|ch|vmin|vmax)?$`)
)

// shadow is one comma separated layer of a box-shadow value.
type shadow struct {
	Inset   bool
	Lengths []string
	Color   string
}

func newShadowMatcher() Matcher {
	return &matcher{
		name: "shadow",
		match: func(prop, _ string) bool {
			return prop == "box-shadow" || prop == "text-shadow"
		},
		convert: func(prop, value string, _ Settings) []string {
			if prop == "text-shadow" {
				return []string{arbitraryProperty("text-shadow", shadowArbitrary(value))}
			}
			return []string{boxShadowClass(value)}
		},
	}
}

// boxShadowClass tries the built-in definitions, then the nearest built-in
// bucket for a single layer, then an arbitrary value.
func boxShadowClass(value string) string {
	v := strings.TrimSpace(value)
	if strings.EqualFold(v, "none") {
		return "shadow-none"
	}

	norm := normalizeShadow(v)
	for _, def := range builtinShadows {
		if norm == normalizeShadow(def.Definition) {
			return def.Class
		}
	}

	layers := parseShadows(v)
	if len(layers) == 1 {
		if c, ok := closestShadow(layers[0]); ok {
			return c
		}
	}
	return "shadow-[" + shadowArbitrary(v) + "]"
}

func normalizeShadow(value string) string {
	v := collapseSpaces(value)
	v = spaceRGBPat.ReplaceAllString(v, "rgba($1, $2, $3, $4)")
	v = commaPat.ReplaceAllString(v, ", ")
	return strings.ToLower(strings.TrimSpace(v))
}

// shadowArbitrary keeps commas readable inside brackets: "a b, c" -> "a_b,_c".
func shadowArbitrary(value string) string {
	v := underscored(value)
	v = strings.ReplaceAll(v, ",_", ",")
	return strings.ReplaceAll(v, ",", ",_")
}

func parseShadows(value string) []shadow {
	var layers []shadow
	for _, item := range splitCommas(value) {
		tokens := splitSpaces(item)
		if len(tokens) < 2 {
			continue
		}
		var sh shadow
		i := 0
		if strings.EqualFold(tokens[0], "inset") {
			sh.Inset = true
			i++
		}
		for ; i < len(tokens) && shadowLen.MatchString(strings.ToLower(tokens[i])); i++ {
			sh.Lengths = append(sh.Lengths, tokens[i])
		}
		sh.Color = strings.Join(tokens[i:], " ")
		layers = append(layers, sh)
	}
	return layers
}

// closestShadow buckets a layer by its Y offset and blur radius.
func closestShadow(sh shadow) (string, bool) {
	if sh.Inset {
		return "shadow-inner", true
	}
	if len(sh.Lengths) < 2 {
		return "", false
	}

	px := func(tok string) (float64, bool) {
		l, ok := parseLength(tok)
		if !ok || (l.Unit != "px" && l.Unit != "") {
			return 0, false
		}
		return l.Num, true
	}
	y, ok := px(sh.Lengths[1])
	if !ok {
		return "", false
	}
	var blur float64
	if len(sh.Lengths) > 2 {
		if blur, ok = px(sh.Lengths[2]); !ok {
			return "", false
		}
	}

	switch {
	case y <= 1 && blur <= 3:
		return "shadow-sm", true
	case y <= 2 && blur <= 4:
		return "shadow", true
	case y <= 6 && blur <= 8:
		return "shadow-md", true
	case y <= 12 && blur <= 20:
		return "shadow-lg", true
	case y <= 25 && blur <= 35:
		return "shadow-xl", true
	}
	return "shadow-2xl", true
}
