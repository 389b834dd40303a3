package tailwind

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// pseudoClassVariants maps CSS pseudo-classes to Tailwind variants.
var pseudoClassVariants = map[string]string{
	// interaction
	"hover":         "hover",
	"focus":         "focus",
	"focus-within":  "focus-within",
	"focus-visible": "focus-visible",
	"active":        "active",
	"visited":       "visited",
	"target":        "target",

	// forms
	"disabled":          "disabled",
	"enabled":           "enabled",
	"checked":           "checked",
	"indeterminate":     "indeterminate",
	"default":           "default",
	"required":          "required",
	"valid":             "valid",
	"invalid":           "invalid",
	"in-range":          "in-range",
	"out-of-range":      "out-of-range",
	"placeholder-shown": "placeholder-shown",
	"autofill":          "autofill",
	"read-only":         "read-only",

	// structure
	"first-child":   "first",
	"last-child":    "last",
	"only-child":    "only",
	"first-of-type": "first-of-type",
	"last-of-type":  "last-of-type",
	"only-of-type":  "only-of-type",
	"empty":         "empty",
	"open":          "open",

	// media-like
	"portrait":      "portrait",
	"landscape":     "landscape",
	"motion-safe":   "motion-safe",
	"motion-reduce": "motion-reduce",
	"dark":          "dark",
	"light":         "light",
	"contrast-more": "contrast-more",
	"contrast-less": "contrast-less",
	"forced-colors": "forced-colors",
	"print":         "print",
	"rtl":           "rtl",
	"ltr":           "ltr",
}

// pseudoElementVariants maps CSS pseudo-elements to Tailwind variants.
var pseudoElementVariants = map[string]string{
	"before":               "before",
	"after":                "after",
	"first-line":           "first-line",
	"first-letter":         "first-letter",
	"selection":            "selection",
	"file-selector-button": "file",
	"placeholder":          "placeholder",
	"marker":               "marker",
	"backdrop":             "backdrop",
}

// pseudoSpan is one :name(args) or ::name(args) occurrence in a selector.
type pseudoSpan struct {
	Start, End int // byte range in the selector, End exclusive
	Element    bool
	Name       string
	Args       string
	HasArgs    bool
}

// selectorToken is one lexed selector token as a byte range.
type selectorToken struct {
	tt         css.TokenType
	start, end int
}

func lexSelector(selector string) []selectorToken {
	var toks []selectorToken
	lexer := css.NewLexer(parse.NewInputString(selector))
	offset := 0
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			return toks
		}
		toks = append(toks, selectorToken{tt: tt, start: offset, end: offset + len(text)})
		offset += len(text)
	}
}

// scanPseudos finds every pseudo occurrence in selector. Colons inside
// attribute selectors, strings and the arguments of a pseudo are skipped.
func scanPseudos(selector string) []pseudoSpan {
	toks := lexSelector(selector)
	var spans []pseudoSpan

	for i := 0; i < len(toks); i++ {
		switch toks[i].tt {
		case css.LeftBracketToken:
			for i < len(toks) && toks[i].tt != css.RightBracketToken {
				i++
			}
		case css.ColonToken:
			span, next, ok := readPseudo(selector, toks, i)
			if ok {
				spans = append(spans, span)
				i = next - 1
			}
		}
	}

	return spans
}

// readPseudo reads the pseudo starting at the colon token toks[i] and
// returns it with the index of the first token after it.
func readPseudo(s string, toks []selectorToken, i int) (pseudoSpan, int, bool) {
	span := pseudoSpan{Start: toks[i].start}
	j := i + 1
	if j < len(toks) && toks[j].tt == css.ColonToken {
		span.Element = true
		j++
	}
	if j >= len(toks) {
		return pseudoSpan{}, 0, false
	}

	tok := toks[j]
	switch tok.tt {
	case css.IdentToken:
		span.Name = strings.ToLower(s[tok.start:tok.end])
		span.End = tok.end
		return span, j + 1, true
	case css.FunctionToken:
		closing := matchParen(toks, j)
		if closing < 0 {
			return pseudoSpan{}, 0, false
		}
		span.Name = strings.ToLower(strings.TrimSuffix(s[tok.start:tok.end], "("))
		span.Args = strings.TrimSpace(s[tok.end:toks[closing].start])
		span.HasArgs = true
		span.End = toks[closing].end
		return span, closing + 1, true
	}
	return pseudoSpan{}, 0, false
}

// matchParen returns the index of the token closing the function or
// parenthesis token at open, or -1.
func matchParen(toks []selectorToken, open int) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// ParseSelector extracts the pseudo variants of a selector and returns them
// together with the selector stripped of every pseudo occurrence.
func ParseSelector(selector string) (PseudoInfo, string) {
	spans := scanPseudos(selector)
	var info PseudoInfo

	for _, sp := range spans {
		if sp.Element {
			info.Elements = append(info.Elements, elementVariant(sp))
			continue
		}
		if v, ok := classVariant(sp); ok {
			info.Classes = append(info.Classes, v)
		}
	}

	return info, stripSpans(selector, spans)
}

// BaseSelector returns selector without any pseudo-class or pseudo-element.
func BaseSelector(selector string) string {
	return stripSpans(selector, scanPseudos(selector))
}

func stripSpans(selector string, spans []pseudoSpan) string {
	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(selector[last:sp.Start])
		last = sp.End
	}
	b.WriteString(selector[last:])
	return strings.TrimSpace(b.String())
}

func elementVariant(sp pseudoSpan) string {
	if v, ok := pseudoElementVariants[sp.Name]; ok {
		return v
	}
	if sp.HasArgs {
		return "[&::" + sp.Name + "(" + underscored(sp.Args) + ")]"
	}
	return "[&::" + sp.Name + "]"
}

func classVariant(sp pseudoSpan) (string, bool) {
	switch sp.Name {
	case "nth-child", "nth-of-type", "nth-last-child", "nth-last-of-type":
		if !sp.HasArgs {
			return "", false
		}
		return nthVariant(sp.Name, sp.Args), true
	case "has":
		if !sp.HasArgs {
			return "", false
		}
		return "has-[" + underscored(sp.Args) + "]", true
	case "not":
		if !sp.HasArgs {
			return "", false
		}
		return notVariant(sp.Args), true
	}

	if v, ok := pseudoClassVariants[sp.Name]; ok && !sp.HasArgs {
		return v, true
	}
	if sp.HasArgs {
		return "[&:" + sp.Name + "(" + underscored(sp.Args) + ")]", true
	}
	return "[&:" + sp.Name + "]", true
}

func nthVariant(name, expr string) string {
	e := strings.ToLower(strings.TrimSpace(expr))
	if name == "nth-child" || name == "nth-of-type" {
		switch e {
		case "odd":
			return "odd"
		case "even":
			return "even"
		}
	}
	return "[&:" + name + "(" + underscored(e) + ")]"
}

// notVariant resolves :not(inner). Known pseudo-classes inside are joined
// with ":"; anything else is kept verbatim.
func notVariant(inner string) string {
	info, _ := ParseSelector(inner)
	if len(info.Classes) > 0 {
		return "not-[" + strings.Join(info.Classes, ":") + "]"
	}
	return "not-[" + underscored(inner) + "]"
}
