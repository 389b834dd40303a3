package tailwind

import (
	"strings"
)

// borderWidthSteps maps widths to the suffix after border-*; "" is the
// bare 1px utility.
var borderWidthSteps = map[string]string{
	"0":      "0",
	"0px":    "0",
	"thin":   "",
	"1px":    "",
	"medium": "2",
	"2px":    "2",
	"thick":  "4",
	"4px":    "4",
	"8px":    "8",
}

var borderStyles = map[string]string{
	"none":   "border-none",
	"hidden": "border-hidden",
	"solid":  "border-solid",
	"dashed": "border-dashed",
	"dotted": "border-dotted",
	"double": "border-double",
}

var borderStyleKeywords = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

// borderSides maps the side part of a border property to its utility
// infix. Block start and end assume a horizontal writing mode.
var borderSides = map[string]string{
	"top":          "t",
	"right":        "r",
	"bottom":       "b",
	"left":         "l",
	"inline":       "x",
	"block":        "y",
	"inline-start": "s",
	"inline-end":   "e",
	"block-start":  "t",
	"block-end":    "b",
}

var outlineWidths = map[string]string{
	"0":      "outline-0",
	"0px":    "outline-0",
	"thin":   "outline-1",
	"1px":    "outline-1",
	"medium": "outline-2",
	"2px":    "outline-2",
	"thick":  "outline-4",
	"4px":    "outline-4",
	"8px":    "outline-8",
}

var outlineStyles = map[string]string{
	"none":   "outline-none",
	"solid":  "outline",
	"dashed": "outline-dashed",
	"dotted": "outline-dotted",
	"double": "outline-double",
}

var outlineOffsets = map[string]string{
	"0":   "0",
	"0px": "0",
	"1px": "1",
	"2px": "2",
	"4px": "4",
	"8px": "8",
}

// borderParts is a tokenized border or outline shorthand.
type borderParts struct {
	Width, Style, Color string
}

// parseBorderShorthand classifies each top-level token as a width, a style
// or a color. Unknown tokens make the value unconvertible.
func parseBorderShorthand(value string) (borderParts, bool) {
	var parts borderParts
	for _, tok := range splitSpaces(value) {
		lower := strings.ToLower(tok)
		switch {
		case isBorderWidth(lower):
			parts.Width = lower
		case borderStyleKeywords[lower] || lower == "auto":
			parts.Style = lower
		case isColor(tok):
			parts.Color = tok
		default:
			return borderParts{}, false
		}
	}
	return parts, true
}

func isBorderWidth(tok string) bool {
	if _, ok := borderWidthSteps[tok]; ok {
		return true
	}
	if strings.HasPrefix(tok, "calc(") {
		return true
	}
	l, ok := parseLength(tok)
	return ok && l.Unit != "%"
}

func newBorderMatcher() Matcher {
	return &matcher{
		name: "border",
		match: func(prop, _ string) bool {
			if !strings.HasPrefix(prop, "border") && !strings.HasPrefix(prop, "outline") {
				return false
			}
			if strings.Contains(prop, "radius") || strings.HasSuffix(prop, "-color") {
				return false
			}
			return prop != "border-spacing" && prop != "border-collapse"
		},
		convert: func(prop, value string, s Settings) []string {
			if strings.HasPrefix(prop, "outline") {
				return outlineClasses(prop, value)
			}
			return borderClasses(prop, value, s)
		},
	}
}

func borderClasses(prop, value string, s Settings) []string {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	if prop == "border" || prop == "border-image" {
		if prop == "border-image" {
			return []string{arbitraryProperty(prop, v)}
		}
		return borderShorthandClasses("border", "", v)
	}

	rest := strings.TrimPrefix(prop, "border-")
	sub := ""
	for _, suffix := range []string{"width", "style"} {
		if rest == suffix {
			rest, sub = "", suffix
			break
		}
		if side, ok := strings.CutSuffix(rest, "-"+suffix); ok {
			rest, sub = side, suffix
			break
		}
	}

	prefix := "border"
	if rest != "" {
		infix, ok := borderSides[rest]
		if !ok {
			return nil
		}
		prefix = "border-" + infix
	}

	switch sub {
	case "width":
		if rest == "" {
			if tokens := strings.Fields(lower); len(tokens) > 1 {
				return borderWidthShorthand(tokens, s)
			}
		}
		return []string{borderWidthClass(prefix, lower)}
	case "style":
		if rest == "" {
			if c, ok := borderStyles[lower]; ok {
				return []string{c}
			}
		}
		return []string{arbitraryProperty(prop, lower)}
	}
	return borderShorthandClasses(prefix, rest, v)
}

// borderShorthandClasses converts `border[-side]: width style color`.
func borderShorthandClasses(prefix, side, value string) []string {
	if strings.EqualFold(value, "none") || isZero(value) {
		if side == "" {
			return []string{borderWidthClass(prefix, "0")}
		}
	}
	parts, ok := parseBorderShorthand(value)
	if !ok {
		return nil
	}

	var classes []string
	if parts.Width != "" {
		classes = append(classes, borderWidthClass(prefix, parts.Width))
	}
	if parts.Style != "" {
		if side == "" {
			if c, ok := borderStyles[parts.Style]; ok {
				classes = append(classes, c)
			} else {
				classes = append(classes, arbitraryProperty("border-style", parts.Style))
			}
		} else {
			classes = append(classes, arbitraryProperty("border-"+side+"-style", parts.Style))
		}
	}
	if parts.Color != "" {
		suffix, ok := colorSuffix(parts.Color)
		if !ok {
			return nil
		}
		classes = append(classes, prefix+"-"+suffix)
	}
	return classes
}

func borderWidthClass(prefix, width string) string {
	if step, ok := borderWidthSteps[width]; ok {
		if step == "" {
			return prefix
		}
		return prefix + "-" + step
	}
	if l, ok := parseLength(width); ok && l.Unit == "" {
		return prefix + "-[" + formatNumber(l.Num) + "px]"
	}
	return arbitrary(prefix, width)
}

// borderWidthShorthand expands a 2 to 4 value border-width into sides,
// collapsing symmetric values onto the x and y axes.
func borderWidthShorthand(tokens []string, s Settings) []string {
	var t, r, b, l string
	switch len(tokens) {
	case 2:
		t, r, b, l = tokens[0], tokens[1], tokens[0], tokens[1]
	case 3:
		t, r, b, l = tokens[0], tokens[1], tokens[2], tokens[1]
	case 4:
		t, r, b, l = tokens[0], tokens[1], tokens[2], tokens[3]
	default:
		return nil
	}

	if t == b && r == l {
		if t == r {
			return []string{borderWidthClass("border", t)}
		}
		if s.PreferShortClassNames {
			return []string{borderWidthClass("border-y", t), borderWidthClass("border-x", r)}
		}
	}
	return []string{
		borderWidthClass("border-t", t),
		borderWidthClass("border-r", r),
		borderWidthClass("border-b", b),
		borderWidthClass("border-l", l),
	}
}

func outlineClasses(prop, value string) []string {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	switch prop {
	case "outline":
		if lower == "none" || isZero(lower) {
			return []string{"outline-none"}
		}
		parts, ok := parseBorderShorthand(v)
		if !ok {
			return nil
		}
		var classes []string
		if parts.Width != "" {
			classes = append(classes, outlineWidthClass(parts.Width))
		}
		if parts.Style != "" {
			classes = append(classes, outlineStyleClass(parts.Style))
		}
		if parts.Color != "" {
			suffix, ok := colorSuffix(parts.Color)
			if !ok {
				return nil
			}
			classes = append(classes, "outline-"+suffix)
		}
		return classes
	case "outline-width":
		return []string{outlineWidthClass(lower)}
	case "outline-style":
		return []string{outlineStyleClass(lower)}
	case "outline-offset":
		return []string{outlineOffsetClass(lower)}
	}
	return nil
}

func outlineWidthClass(width string) string {
	if c, ok := outlineWidths[width]; ok {
		return c
	}
	return arbitrary("outline", width)
}

func outlineStyleClass(style string) string {
	if c, ok := outlineStyles[style]; ok {
		return c
	}
	return arbitraryProperty("outline-style", style)
}

func outlineOffsetClass(offset string) string {
	if step, ok := outlineOffsets[offset]; ok {
		return "outline-offset-" + step
	}
	if rest, neg := strings.CutPrefix(offset, "-"); neg {
		if step, ok := outlineOffsets[rest]; ok {
			return "-outline-offset-" + step
		}
	}
	return arbitrary("outline-offset", offset)
}
