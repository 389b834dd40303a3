package tailwind

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for per-declaration debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMatchers replaces the default matcher chain.
func WithMatchers(matchers ...Matcher) Option {
	return func(c *Converter) {
		c.matchers = matchers
	}
}

// Converter turns parsed rules into Tailwind classes. It holds an immutable
// settings snapshot and is safe for concurrent use.
type Converter struct {
	settings Settings
	matchers []Matcher
	logger   *zap.Logger
}

// NewConverter validates settings and builds a converter with the default
// matcher chain.
func NewConverter(settings Settings, opts ...Option) (*Converter, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	c := &Converter{
		settings: settings,
		matchers: DefaultMatchers(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Convert is a shorthand for NewConverter(settings).Convert(rules).
func Convert(rules []Rule, settings Settings) ([]Result, error) {
	c, err := NewConverter(settings)
	if err != nil {
		return nil, err
	}
	return c.Convert(rules), nil
}

// Settings returns the settings snapshot of the converter.
func (c *Converter) Settings() Settings {
	return c.settings
}

// Convert converts rules in source order, one Result per Rule.
func (c *Converter) Convert(rules []Rule) []Result {
	results := make([]Result, 0, len(rules))
	for _, rule := range rules {
		results = append(results, c.ConvertRule(rule))
	}
	return results
}

// ConvertRule converts the declarations of one rule. Width and height are
// converted together first, the remaining declarations follow in source
// order. The variant prefix of the selector is applied to the whole list.
func (c *Converter) ConvertRule(rule Rule) Result {
	if rule.BaseSelector == "" && rule.Selector != "" && rule.Pseudo.Empty() {
		rule.Pseudo, rule.BaseSelector = ParseSelector(rule.Selector)
	}

	res := Result{
		Selector:     rule.Selector,
		BaseSelector: rule.BaseSelector,
		Pseudo:       rule.Pseudo,
		Offset:       rule.Offset,
	}

	var classes []string
	record := func(d Declaration, out []string, source string) {
		if len(out) == 0 {
			c.unconvertible(&res, d, unconvertibleReason(d.Property, d.Value, c.ownsProperty(d)))
			return
		}
		final := c.finalize(d.Property, out)
		if len(final) == 0 {
			c.unconvertible(&res, d, arbitraryDisabledReason(d.Value))
			return
		}
		c.logger.Debug("converted declaration",
			zap.String("selector", rule.Selector),
			zap.String("property", d.Property),
			zap.String("value", d.Value),
			zap.String("source", source),
			zap.Strings("classes", final),
		)
		classes = append(classes, final...)
		res.Mappings = append(res.Mappings, Mapping{
			Property: d.Property,
			Value:    d.Value,
			Classes:  final,
			Offset:   d.Offset,
		})
	}

	// 1. Width and height, jointly
	var sizeDecls, rest []Declaration
	for _, d := range rule.Declarations {
		if isSizeProperty(strings.ToLower(strings.TrimSpace(d.Property))) {
			sizeDecls = append(sizeDecls, d)
		} else {
			rest = append(rest, d)
		}
	}
	if len(sizeDecls) > 0 {
		sized := convertSizes(stripImportant(sizeDecls), c.settings)
		for i, d := range sizeDecls {
			_, important := cutImportant(d.Value)
			record(d, markImportant(sized[i], important), "size")
		}
	}

	// 2. Everything else
	for _, d := range rest {
		out, source := c.convertDeclaration(d)
		record(d, out, source)
	}

	// 3. Variants and dedupe
	prefixed, warnings := ApplyPseudo(classes, rule.Pseudo)
	res.Classes = dedupe(prefixed)
	res.Warnings = warnings
	if res.Classes == nil {
		res.Classes = []string{}
	}
	return res
}

// convertDeclaration runs the static table, the matcher chain and the
// arbitrary fallback. It returns the classes and the name of the stage that
// produced them.
func (c *Converter) convertDeclaration(d Declaration) ([]string, string) {
	prop := strings.ToLower(strings.TrimSpace(d.Property))
	value, important := cutImportant(d.Value)
	if prop == "" || value == "" {
		return nil, ""
	}

	if class, ok := staticClass(prop, value); ok {
		return markImportant([]string{class}, important), "static"
	}

	for _, m := range c.matchers {
		if !m.Match(prop, value) {
			continue
		}
		if out := m.Convert(prop, value, c.settings); len(out) > 0 {
			return markImportant(splitClasses(out...), important), m.Name()
		}
		break
	}

	if class, ok := fallbackClass(prop, value); ok {
		return markImportant([]string{class}, important), "fallback"
	}
	return nil, ""
}

// ownsProperty reports whether the property of d belongs to a converter
// even though its value produced nothing.
func (c *Converter) ownsProperty(d Declaration) bool {
	prop := strings.ToLower(strings.TrimSpace(d.Property))
	value, _ := cutImportant(d.Value)
	if isSizeProperty(prop) {
		return true
	}
	if _, ok := colorPrefixes[prop]; ok {
		return true
	}
	for _, m := range c.matchers {
		if m.Match(prop, value) {
			return true
		}
	}
	return false
}

// finalize applies the custom variable shorthand and the arbitrary value
// setting to the classes of one declaration.
func (c *Converter) finalize(property string, classes []string) []string {
	prop := strings.ToLower(strings.TrimSpace(property))
	out := make([]string, 0, len(classes))
	for _, class := range classes {
		class = OptimizeCustomVariable(prop, class)
		if !c.settings.ArbitraryValues && isArbitraryClass(class) {
			continue
		}
		out = append(out, class)
	}
	return out
}

func (c *Converter) unconvertible(res *Result, d Declaration, reason string) {
	c.logger.Debug("unconvertible declaration",
		zap.String("selector", res.Selector),
		zap.String("property", d.Property),
		zap.String("value", d.Value),
		zap.String("reason", reason),
	)
	res.Unconvertible = append(res.Unconvertible, Unconvertible{
		Property: d.Property,
		Value:    d.Value,
		Reason:   reason,
		Offset:   d.Offset,
	})
}

// isArbitraryClass reports whether class uses bracket or custom property
// syntax.
func isArbitraryClass(class string) bool {
	return strings.ContainsAny(class, "[(")
}

var fallbackPrefixes = map[string]string{
	"top":                   "top",
	"right":                 "right",
	"bottom":                "bottom",
	"left":                  "left",
	"grid-template-columns": "grid-cols",
	"grid-template-rows":    "grid-rows",
	"grid-column":           "col",
	"grid-row":              "row",
	"content":               "content",
}

// fallbackClass wraps values of well-known properties in an arbitrary
// class when no matcher produced one.
func fallbackClass(prop, value string) (string, bool) {
	if prop == "order" && integerPat.MatchString(value) {
		return "order-[" + value + "]", true
	}
	prefix, ok := fallbackPrefixes[prop]
	if !ok {
		return "", false
	}
	return arbitrary(prefix, value), true
}

var importantPat = regexp.MustCompile(`(?i)\s*!\s*important\s*$`)

// cutImportant strips a trailing !important.
func cutImportant(value string) (string, bool) {
	v := strings.TrimSpace(value)
	loc := importantPat.FindStringIndex(v)
	if loc == nil {
		return v, false
	}
	return strings.TrimSpace(v[:loc[0]]), true
}

func stripImportant(decls []Declaration) []Declaration {
	out := make([]Declaration, len(decls))
	for i, d := range decls {
		d.Value, _ = cutImportant(d.Value)
		out[i] = d
	}
	return out
}

// markImportant prefixes classes with Tailwind's ! modifier.
func markImportant(classes []string, important bool) []string {
	if !important {
		return classes
	}
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = "!" + c
	}
	return out
}
