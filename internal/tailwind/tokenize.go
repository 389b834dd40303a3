package tailwind

import (
	"math"
	"strconv"
	"strings"
)

type tokenizerState int

const (
	stateNormal tokenizerState = iota
	stateQuote
	stateParens
)

// splitTopLevel splits value on any rune accepted by isSep when the rune is
// outside quotes and parentheses. Empty pieces are dropped and pieces are
// trimmed.
func splitTopLevel(value string, isSep func(rune) bool) []string {
	var (
		parts []string
		buf   strings.Builder
		state = stateNormal
		depth int
		quote rune
	)

	flush := func() {
		if s := strings.TrimSpace(buf.String()); s != "" {
			parts = append(parts, s)
		}
		buf.Reset()
	}

	for _, r := range value {
		switch state {
		case stateQuote:
			buf.WriteRune(r)
			if r == quote {
				if depth > 0 {
					state = stateParens
				} else {
					state = stateNormal
				}
			}
		case stateParens:
			buf.WriteRune(r)
			switch r {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					state = stateNormal
				}
			case '"', '\'':
				quote = r
				state = stateQuote
			}
		default:
			switch {
			case r == '"' || r == '\'':
				quote = r
				state = stateQuote
				buf.WriteRune(r)
			case r == '(':
				depth = 1
				state = stateParens
				buf.WriteRune(r)
			case isSep(r):
				flush()
			default:
				buf.WriteRune(r)
			}
		}
	}
	flush()

	return parts
}

// splitSpaces splits a CSS value into whitespace separated tokens, keeping
// functions such as rgb(0 0 0 / 0.5) and quoted strings intact.
func splitSpaces(value string) []string {
	return splitTopLevel(value, isSpace)
}

// splitCommas splits a CSS value on top-level commas.
func splitCommas(value string) []string {
	return splitTopLevel(value, func(r rune) bool { return r == ',' })
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
}

// collapseSpaces normalizes runs of whitespace to a single space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// underscored replaces whitespace runs with "_" for bracket syntax.
func underscored(s string) string {
	return strings.Join(strings.Fields(s), "_")
}

// stripSpaces removes all whitespace.
func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// arbitrary builds prefix-[value] with whitespace replaced by "_".
func arbitrary(prefix, value string) string {
	return prefix + "-[" + underscored(strings.TrimSpace(value)) + "]"
}

// arbitraryProperty builds the [property:value] escape.
func arbitraryProperty(property, value string) string {
	return "[" + property + ":" + underscored(strings.TrimSpace(value)) + "]"
}

// length is a parsed CSS numeric value.
type length struct {
	Num  float64
	Unit string // "", "px", "rem", "%", ...
}

// parseLength parses values like "12px", "-1.5rem", ".5", "50%".
func parseLength(s string) (length, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return length{}, false
	}

	i := 0
	if s[0] == '-' || s[0] == '+' {
		i++
	}
	digits := false
	for ; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			digits = true
			continue
		}
		if c == '.' {
			continue
		}
		break
	}
	if !digits {
		return length{}, false
	}

	n, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return length{}, false
	}
	unit := s[i:]
	for _, c := range unit {
		if (c < 'a' || c > 'z') && c != '%' {
			return length{}, false
		}
	}
	return length{Num: n, Unit: unit}, true
}

// formatNumber renders a float without trailing zeros: 2.5, 4, 0.25.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// isZero reports whether v is a zero length such as "0", "0px" or "0%".
func isZero(v string) bool {
	l, ok := parseLength(v)
	return ok && l.Num == 0
}

// isCSSFunction reports whether v is a function call such as calc(...)
func isCSSFunction(v string) bool {
	open := strings.IndexByte(v, '(')
	return open > 0 && strings.HasSuffix(v, ")")
}

// round2 rounds to two decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// dedupe removes repeated strings keeping first-seen order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// splitClasses splits space separated class output into individual classes.
func splitClasses(classes ...string) []string {
	var out []string
	for _, c := range classes {
		out = append(out, strings.Fields(c)...)
	}
	return out
}
