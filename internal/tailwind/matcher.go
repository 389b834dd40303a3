package tailwind

// Matcher converts one family of CSS properties.
//
// Match reports whether the matcher owns the property/value pair. Convert
// returns the classes for the pair, or nil when the value cannot be
// expressed. The property passed to both is lower-cased and trimmed; the
// value is trimmed with case preserved.
type Matcher interface {
	Name() string
	Match(property, value string) bool
	Convert(property, value string, s Settings) []string
}

// matcher is the func-backed Matcher used by every property family
type matcher struct {
	name    string
	match   func(property, value string) bool
	convert func(property, value string, s Settings) []string
}

func (m *matcher) Name() string { return m.name }

func (m *matcher) Match(property, value string) bool { return m.match(property, value) }

func (m *matcher) Convert(property, value string, s Settings) []string {
	return m.convert(property, value, s)
}

// DefaultMatchers returns the matcher chain in evaluation order: shorthand
// matchers, property families, colors, border radius, aspect ratio, generic
// spacing and finally grid.
func DefaultMatchers() []Matcher {
	return []Matcher{
		// 1. Shorthands
		newPaddingShorthandMatcher(),
		newMarginAutoMatcher(),
		newMarginShorthandMatcher(),
		newBorderRadiusShorthandMatcher(),

		// 2. Property families
		newBackgroundMatcher(),
		newTransitionMatcher(),
		newTextMatcher(),
		newFontMatcher(),
		newShadowMatcher(),
		newBorderMatcher(),
		newOpacityMatcher(),
		newZIndexMatcher(),
		newTransformMatcher(),
		newFilterMatcher(),
		newMinMaxSizeMatcher(),

		// 3. Colors
		newColorMatcher(),

		// 4. Radius
		newBorderRadiusMatcher(),

		// 5. Aspect ratio
		newAspectRatioMatcher(),

		// 6. Spacing
		newSpacingMatcher(),

		// 7. Grid
		newGridMatcher(),
	}
}
