package tailwind

import (
	"regexp"
	"strings"
)

var bracketVar = regexp.MustCompile(`\[var\((--[\w-]+)\)\]`)

// customVarProperties lists the CSS properties whose utilities accept the
// (--name) custom property shorthand.
var customVarProperties = map[string]bool{
	"accent-color":                true,
	"animation":                   true,
	"aspect-ratio":                true,
	"backdrop-filter":             true,
	"background-color":            true,
	"background-image":            true,
	"background-position":         true,
	"background-size":             true,
	"--tw-gradient-from":          true,
	"--tw-gradient-via":           true,
	"--tw-gradient-to":            true,
	"border-color":                true,
	"border-inline-color":         true,
	"border-block-color":          true,
	"border-inline-start-color":   true,
	"border-inline-end-color":     true,
	"border-top-color":            true,
	"border-right-color":          true,
	"border-bottom-color":         true,
	"border-left-color":           true,
	"border-width":                true,
	"border-radius":               true,
	"border-start-start-radius":   true,
	"border-start-end-radius":     true,
	"border-end-end-radius":       true,
	"border-end-start-radius":     true,
	"border-top-left-radius":      true,
	"border-top-right-radius":     true,
	"border-bottom-right-radius":  true,
	"border-bottom-left-radius":   true,
	"border-spacing":              true,
	"box-shadow":                  true,
	"--tw-ring-shadow":            true,
	"--tw-inset-ring-shadow":      true,
	"caret-color":                 true,
	"color":                       true,
	"columns":                     true,
	"content":                     true,
	"cursor":                      true,
	"fill":                        true,
	"filter":                      true,
	"flex":                        true,
	"flex-basis":                  true,
	"flex-grow":                   true,
	"flex-shrink":                 true,
	"font-stretch":                true,
	"font-weight":                 true,
	"gap":                         true,
	"column-gap":                  true,
	"row-gap":                     true,
	"grid-auto-columns":           true,
	"grid-auto-rows":              true,
	"grid-column":                 true,
	"grid-column-start":           true,
	"grid-column-end":             true,
	"grid-row":                    true,
	"grid-row-start":              true,
	"grid-row-end":                true,
	"grid-template-columns":       true,
	"grid-template-rows":          true,
	"height":                      true,
	"width":                       true,
	"max-height":                  true,
	"max-width":                   true,
	"min-height":                  true,
	"min-width":                   true,
	"letter-spacing":              true,
	"line-height":                 true,
	"list-style-image":            true,
	"list-style-type":             true,
	"margin":                      true,
	"margin-inline":               true,
	"margin-block":                true,
	"margin-inline-start":         true,
	"margin-inline-end":           true,
	"margin-top":                  true,
	"margin-right":                true,
	"margin-bottom":               true,
	"margin-left":                 true,
	"mask-image":                  true,
	"mask-position":               true,
	"mask-size":                   true,
	"object-position":             true,
	"opacity":                     true,
	"order":                       true,
	"outline-color":               true,
	"outline-offset":              true,
	"outline-width":               true,
	"padding":                     true,
	"padding-inline":              true,
	"padding-block":               true,
	"padding-inline-start":        true,
	"padding-inline-end":          true,
	"padding-top":                 true,
	"padding-right":               true,
	"padding-bottom":              true,
	"padding-left":                true,
	"perspective":                 true,
	"perspective-origin":          true,
	"rotate":                      true,
	"scale":                       true,
	"scroll-margin":               true,
	"scroll-margin-inline":        true,
	"scroll-margin-block":         true,
	"scroll-margin-inline-start":  true,
	"scroll-margin-inline-end":    true,
	"scroll-margin-top":           true,
	"scroll-margin-right":         true,
	"scroll-margin-bottom":        true,
	"scroll-margin-left":          true,
	"scroll-padding":              true,
	"scroll-padding-inline":       true,
	"scroll-padding-block":        true,
	"scroll-padding-inline-start": true,
	"scroll-padding-inline-end":   true,
	"scroll-padding-top":          true,
	"scroll-padding-right":        true,
	"scroll-padding-bottom":       true,
	"scroll-padding-left":         true,
	"stroke":                      true,
	"stroke-width":                true,
	"text-decoration-color":       true,
	"text-decoration-thickness":   true,
	"text-indent":                 true,
	"text-shadow":                 true,
	"text-underline-offset":       true,
	"inset":                       true,
	"inset-inline":                true,
	"inset-block":                 true,
	"inset-inline-start":          true,
	"inset-inline-end":            true,
	"top":                         true,
	"right":                       true,
	"bottom":                      true,
	"left":                        true,
	"transform":                   true,
	"transform-origin":            true,
	"transition-delay":            true,
	"transition-duration":         true,
	"transition-property":         true,
	"transition-timing-function":  true,
	"translate":                   true,
	"vertical-align":              true,
}

// SupportsCustomVariable reports whether utilities for property accept the
// (--name) shorthand.
func SupportsCustomVariable(property string) bool {
	return customVarProperties[strings.ToLower(strings.TrimSpace(property))]
}

// OptimizeCustomVariable rewrites p-[var(--gap)] to p-(--gap) for properties
// that support the shorthand. Other classes are returned unchanged.
func OptimizeCustomVariable(property, class string) string {
	if !SupportsCustomVariable(property) || !bracketVar.MatchString(class) {
		return class
	}
	return bracketVar.ReplaceAllString(class, "($1)")
}
