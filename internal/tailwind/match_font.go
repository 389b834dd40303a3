package tailwind

import (
	"strings"
)

var fontFamilies = map[string]string{
	"sans-serif":         "font-sans",
	"system-ui":          "font-sans",
	"ui-sans-serif":      "font-sans",
	"-apple-system":      "font-sans",
	"blinkmacsystemfont": "font-sans",
	"segoe ui":           "font-sans",
	"roboto":             "font-sans",
	"arial":              "font-sans",
	"helvetica":          "font-sans",
	"helvetica neue":     "font-sans",
	"verdana":            "font-sans",
	"tahoma":             "font-sans",
	"trebuchet ms":       "font-sans",
	"comic sans ms":      "font-sans",
	"impact":             "font-sans",
	"avant garde":        "font-sans",
	"serif":              "font-serif",
	"ui-serif":           "font-serif",
	"times":              "font-serif",
	"times new roman":    "font-serif",
	"georgia":            "font-serif",
	"cambria":            "font-serif",
	"palatino":           "font-serif",
	"garamond":           "font-serif",
	"bookman":            "font-serif",
	"monospace":          "font-mono",
	"ui-monospace":       "font-mono",
	"sfmono-regular":     "font-mono",
	"menlo":              "font-mono",
	"monaco":             "font-mono",
	"consolas":           "font-mono",
	"courier":            "font-mono",
	"courier new":        "font-mono",
	"lucida console":     "font-mono",
}

var fontSizes = map[string]string{
	"xx-small":  "text-xs",
	"x-small":   "text-xs",
	"small":     "text-sm",
	"medium":    "text-base",
	"large":     "text-lg",
	"x-large":   "text-xl",
	"xx-large":  "text-2xl",
	"xxx-large": "text-3xl",
	"10px":      "text-xs",
	"12px":      "text-xs",
	"14px":      "text-sm",
	"16px":      "text-base",
	"18px":      "text-lg",
	"20px":      "text-xl",
	"24px":      "text-2xl",
	"30px":      "text-3xl",
	"36px":      "text-4xl",
	"48px":      "text-5xl",
	"60px":      "text-6xl",
	"72px":      "text-7xl",
	"96px":      "text-8xl",
	"128px":     "text-9xl",
	"0.75rem":   "text-xs",
	"0.875rem":  "text-sm",
	"1rem":      "text-base",
	"1.125rem":  "text-lg",
	"1.25rem":   "text-xl",
	"1.5rem":    "text-2xl",
	"1.875rem":  "text-3xl",
	"2.25rem":   "text-4xl",
	"3rem":      "text-5xl",
	"3.75rem":   "text-6xl",
	"4.5rem":    "text-7xl",
	"6rem":      "text-8xl",
	"8rem":      "text-9xl",
}

var fontWeights = map[string]string{
	"normal":  "font-normal",
	"bold":    "font-bold",
	"bolder":  "font-bold",
	"lighter": "font-light",
	"100":     "font-thin",
	"200":     "font-extralight",
	"300":     "font-light",
	"400":     "font-normal",
	"500":     "font-medium",
	"600":     "font-semibold",
	"700":     "font-bold",
	"800":     "font-extrabold",
	"900":     "font-black",
}

var fontStyles = map[string]string{
	"normal":  "not-italic",
	"italic":  "italic",
	"oblique": "italic",
}

var fontVariantKeywords = map[string]bool{
	"small-caps":      true,
	"all-small-caps":  true,
	"petite-caps":     true,
	"all-petite-caps": true,
	"unicase":         true,
	"titling-caps":    true,
}

var fontNumericVariants = map[string]string{
	"normal":             "normal-nums",
	"ordinal":            "ordinal",
	"slashed-zero":       "slashed-zero",
	"lining-nums":        "lining-nums",
	"oldstyle-nums":      "oldstyle-nums",
	"proportional-nums":  "proportional-nums",
	"tabular-nums":       "tabular-nums",
	"diagonal-fractions": "diagonal-fractions",
	"stacked-fractions":  "stacked-fractions",
}

var lineHeights = map[string]string{
	"normal":  "leading-normal",
	"1":       "leading-none",
	"1.25":    "leading-tight",
	"1.375":   "leading-snug",
	"1.5":     "leading-normal",
	"1.625":   "leading-relaxed",
	"2":       "leading-loose",
	"12px":    "leading-3",
	"16px":    "leading-4",
	"20px":    "leading-5",
	"24px":    "leading-6",
	"28px":    "leading-7",
	"32px":    "leading-8",
	"36px":    "leading-9",
	"40px":    "leading-10",
	"0.75rem": "leading-3",
	"1rem":    "leading-4",
	"1.25rem": "leading-5",
	"1.5rem":  "leading-6",
	"1.75rem": "leading-7",
	"2rem":    "leading-8",
	"2.25rem": "leading-9",
	"2.5rem":  "leading-10",
}

var letterSpacings = map[string]string{
	"normal":   "tracking-normal",
	"0":        "tracking-normal",
	"0px":      "tracking-normal",
	"-0.05em":  "tracking-tighter",
	"-0.025em": "tracking-tight",
	"0.025em":  "tracking-wide",
	"0.05em":   "tracking-wider",
	"0.1em":    "tracking-widest",
	"-0.8px":   "tracking-tighter",
	"-0.4px":   "tracking-tight",
	"0.4px":    "tracking-wide",
	"0.8px":    "tracking-wider",
	"1.6px":    "tracking-widest",
}

func newFontMatcher() Matcher {
	return &matcher{
		name: "font",
		match: func(prop, _ string) bool {
			return prop == "font" || strings.HasPrefix(prop, "font-") ||
				prop == "line-height" || prop == "letter-spacing" || prop == "word-spacing"
		},
		convert: func(prop, value string, _ Settings) []string {
			return fontClasses(prop, value)
		},
	}
}

func fontClasses(prop, value string) []string {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	switch prop {
	case "font":
		return fontShorthand(v)
	case "font-family":
		return []string{fontFamilyClass(v)}
	case "font-size":
		return []string{fontSizeClass(v)}
	case "font-weight":
		if c, ok := fontWeights[lower]; ok {
			return []string{c}
		}
		if integerPat.MatchString(lower) || isCSSFunction(lower) {
			return []string{arbitrary("font", lower)}
		}
		return nil
	case "font-style":
		if c, ok := fontStyles[lower]; ok {
			return []string{c}
		}
		return nil
	case "font-variant-numeric":
		var classes []string
		for _, tok := range strings.Fields(lower) {
			c, ok := fontNumericVariants[tok]
			if !ok {
				return nil
			}
			classes = append(classes, c)
		}
		return classes
	case "line-height":
		return []string{lineHeightClass(v)}
	case "letter-spacing":
		if c, ok := letterSpacings[lower]; ok {
			return []string{c}
		}
		return []string{arbitrary("tracking", v)}
	}

	// font-variant, font-stretch, font-feature-settings, word-spacing, ...
	return []string{arbitraryProperty(prop, v)}
}

// fontFamilyClass maps the first family of the list; unknown lists become
// an arbitrary value carrying the whole list.
func fontFamilyClass(value string) string {
	families := splitCommas(value)
	for i, f := range families {
		families[i] = strings.Trim(f, `"'`)
	}
	if len(families) > 0 {
		if c, ok := fontFamilies[strings.ToLower(families[0])]; ok {
			return c
		}
	}
	return "font-[" + underscored(strings.Join(families, ",")) + "]"
}

func fontSizeClass(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	if c, ok := fontSizes[lower]; ok {
		return c
	}
	if strings.HasPrefix(lower, "var(") {
		return "text-[length:" + stripSpaces(value) + "]"
	}
	return arbitrary("text", lower)
}

func lineHeightClass(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	if c, ok := lineHeights[lower]; ok {
		return c
	}
	return arbitrary("leading", lower)
}

func isFontSizeToken(tok string) bool {
	lower := strings.ToLower(tok)
	if _, ok := fontSizes[lower]; ok {
		return true
	}
	switch lower {
	case "smaller", "larger":
		return true
	}
	l, ok := parseLength(lower)
	return ok && l.Unit != ""
}

// fontShorthand converts `font: [style] [variant] [weight] size[/line-height] family`.
// The size token is required; everything before it is style, variant or
// weight, everything after it is the family list.
func fontShorthand(value string) []string {
	tokens := splitSpaces(value)

	sizeIdx := -1
	for i, tok := range tokens {
		if strings.ContainsAny(tok, `"'`) {
			continue
		}
		size, _, _ := strings.Cut(tok, "/")
		if strings.Contains(tok, "/") || isFontSizeToken(size) {
			sizeIdx = i
			break
		}
	}
	if sizeIdx < 0 {
		return nil
	}

	// 1. size and optional line height
	size, lineHeight, _ := strings.Cut(tokens[sizeIdx], "/")
	rest := tokens[sizeIdx+1:]
	if lineHeight == "" && len(rest) > 1 && rest[0] == "/" {
		lineHeight, rest = rest[1], rest[2:]
	} else if lineHeight == "" && len(rest) > 0 && strings.HasPrefix(rest[0], "/") {
		lineHeight, rest = strings.TrimPrefix(rest[0], "/"), rest[1:]
	}
	if size == "" {
		return nil
	}

	// 2. style, variant and weight before the size
	var weight, style, variant string
	for _, tok := range tokens[:sizeIdx] {
		lower := strings.ToLower(tok)
		switch {
		case lower == "normal":
		case fontStyles[lower] != "":
			style = fontStyles[lower]
		case fontVariantKeywords[lower]:
			variant = arbitraryProperty("font-variant", lower)
		case fontWeights[lower] != "":
			weight = fontWeights[lower]
		case integerPat.MatchString(lower):
			weight = arbitrary("font", lower)
		}
	}

	var classes []string
	if len(rest) > 0 {
		classes = append(classes, fontFamilyClass(strings.Join(rest, " ")))
	}
	classes = append(classes, fontSizeClass(size))
	for _, c := range []string{weight, style, variant} {
		if c != "" {
			classes = append(classes, c)
		}
	}
	if lineHeight != "" {
		classes = append(classes, lineHeightClass(lineHeight))
	}
	return classes
}
