package report

import "strings"

// Category groups related CSS properties for coverage reporting
type Category string

// Property categories, in report order
const (
	CategoryLayout     Category = "Layout"
	CategorySpacing    Category = "Spacing"
	CategorySizing     Category = "Sizing"
	CategoryTypography Category = "Typography"
	CategoryVisual     Category = "Visual"
	CategoryEffects    Category = "Effects"
	CategoryVendor     Category = "Vendor"
	CategoryOther      Category = "Other"
)

var categoryOrder = []Category{
	CategoryLayout,
	CategorySpacing,
	CategorySizing,
	CategoryTypography,
	CategoryVisual,
	CategoryEffects,
	CategoryVendor,
	CategoryOther,
}

// propertyCategories maps CSS property names to categories
var propertyCategories = map[string]Category{
	// Layout
	"display":               CategoryLayout,
	"position":              CategoryLayout,
	"visibility":            CategoryLayout,
	"float":                 CategoryLayout,
	"clear":                 CategoryLayout,
	"isolation":             CategoryLayout,
	"box-sizing":            CategoryLayout,
	"overflow":              CategoryLayout,
	"overflow-x":            CategoryLayout,
	"overflow-y":            CategoryLayout,
	"z-index":               CategoryLayout,
	"inset":                 CategoryLayout,
	"top":                   CategoryLayout,
	"right":                 CategoryLayout,
	"bottom":                CategoryLayout,
	"left":                  CategoryLayout,
	"order":                 CategoryLayout,
	"flex":                  CategoryLayout,
	"justify-content":       CategoryLayout,
	"justify-items":         CategoryLayout,
	"justify-self":          CategoryLayout,
	"align-items":           CategoryLayout,
	"align-content":         CategoryLayout,
	"align-self":            CategoryLayout,
	"place-content":         CategoryLayout,
	"place-items":           CategoryLayout,
	"place-self":            CategoryLayout,
	"object-fit":            CategoryLayout,
	"object-position":       CategoryLayout,
	"table-layout":          CategoryLayout,
	"border-collapse":       CategoryLayout,
	"aspect-ratio":          CategoryLayout,
	"grid-template-columns": CategoryLayout,
	"grid-template-rows":    CategoryLayout,

	// Spacing
	"padding":    CategorySpacing,
	"margin":     CategorySpacing,
	"gap":        CategorySpacing,
	"row-gap":    CategorySpacing,
	"column-gap": CategorySpacing,

	// Sizing
	"width":      CategorySizing,
	"height":     CategorySizing,
	"min-width":  CategorySizing,
	"min-height": CategorySizing,
	"max-width":  CategorySizing,
	"max-height": CategorySizing,

	// Typography
	"color":           CategoryTypography,
	"line-height":     CategoryTypography,
	"letter-spacing":  CategoryTypography,
	"word-spacing":    CategoryTypography,
	"white-space":     CategoryTypography,
	"word-break":      CategoryTypography,
	"overflow-wrap":   CategoryTypography,
	"hyphens":         CategoryTypography,
	"vertical-align":  CategoryTypography,
	"list-style":      CategoryTypography,
	"list-style-type": CategoryTypography,
	"content":         CategoryTypography,

	// Visual
	"background":     CategoryVisual,
	"opacity":        CategoryVisual,
	"outline":        CategoryVisual,
	"box-shadow":     CategoryVisual,
	"fill":           CategoryVisual,
	"stroke":         CategoryVisual,
	"accent-color":   CategoryVisual,
	"caret-color":    CategoryVisual,
	"cursor":         CategoryVisual,
	"appearance":     CategoryVisual,
	"resize":         CategoryVisual,
	"user-select":    CategoryVisual,
	"pointer-events": CategoryVisual,

	// Effects
	"transition":          CategoryEffects,
	"transform":           CategoryEffects,
	"transform-origin":    CategoryEffects,
	"transform-style":     CategoryEffects,
	"translate":           CategoryEffects,
	"rotate":              CategoryEffects,
	"scale":               CategoryEffects,
	"perspective":         CategoryEffects,
	"backface-visibility": CategoryEffects,
	"animation":           CategoryEffects,
	"filter":              CategoryEffects,
	"backdrop-filter":     CategoryEffects,
	"mix-blend-mode":      CategoryEffects,
	"will-change":         CategoryEffects,
	"scroll-behavior":     CategoryEffects,
}

// categoryPrefixes catch property families by prefix, checked in order.
var categoryPrefixes = []struct {
	prefix   string
	category Category
}{
	{"-webkit-", CategoryVendor},
	{"-moz-", CategoryVendor},
	{"-ms-", CategoryVendor},
	{"-o-", CategoryVendor},
	{"padding-", CategorySpacing},
	{"margin-", CategorySpacing},
	{"scroll-margin", CategorySpacing},
	{"scroll-padding", CategorySpacing},
	{"inset-", CategoryLayout},
	{"flex-", CategoryLayout},
	{"grid-", CategoryLayout},
	{"font-", CategoryTypography},
	{"text-", CategoryTypography},
	{"border-", CategoryVisual},
	{"outline-", CategoryVisual},
	{"background-", CategoryVisual},
	{"transition-", CategoryEffects},
	{"animation-", CategoryEffects},
	{"mask", CategoryEffects},
}

// CategorizeProperty determines the category of a CSS property
func CategorizeProperty(name string) Category {
	name = strings.ToLower(strings.TrimSpace(name))
	if cat, ok := propertyCategories[name]; ok {
		return cat
	}
	if name == "border" {
		return CategoryVisual
	}
	for _, p := range categoryPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.category
		}
	}
	return CategoryOther
}

// CategoryStats is the conversion coverage of one category
type CategoryStats struct {
	Category      Category `json:"category"`
	Declarations  int      `json:"declarations"`
	Converted     int      `json:"converted"`
	Unconvertible int      `json:"unconvertible"`
	Rate          float64  `json:"rate"`
}

// categoryCoverage accumulates per-category counts and returns the
// non-empty categories in report order.
type categoryCoverage map[Category]*CategoryStats

func (c categoryCoverage) add(property string, converted bool) {
	cat := CategorizeProperty(property)
	s, ok := c[cat]
	if !ok {
		s = &CategoryStats{Category: cat}
		c[cat] = s
	}
	s.Declarations++
	if converted {
		s.Converted++
	} else {
		s.Unconvertible++
	}
}

func (c categoryCoverage) list() []CategoryStats {
	out := make([]CategoryStats, 0, len(c))
	for _, cat := range categoryOrder {
		s, ok := c[cat]
		if !ok {
			continue
		}
		s.Rate = percent(s.Converted, s.Declarations)
		out = append(out, *s)
	}
	return out
}
