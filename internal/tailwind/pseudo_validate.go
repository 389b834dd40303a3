package tailwind

import (
	"sort"
	"strings"
)

var statefulElements = map[string]bool{
	"before":      true,
	"after":       true,
	"placeholder": true,
	"file":        true,
}

var statelessElements = map[string]bool{
	"first-line":   true,
	"first-letter": true,
	"selection":    true,
	"marker":       true,
	"backdrop":     true,
}

var elementStates = map[string]bool{
	"hover":       true,
	"focus":       true,
	"active":      true,
	"disabled":    true,
	"group-hover": true,
	"group-focus": true,
}

// variantOrder is the stacking order of variants, lowest first.
var variantOrder = map[string]int{
	"sm": 1, "md": 2, "lg": 3, "xl": 4, "2xl": 5,
	"dark": 10, "light": 11,
	"motion-safe": 15, "motion-reduce": 16,
	"first": 20, "last": 21, "odd": 22, "even": 23,
	"hover": 30, "focus": 31, "active": 32, "visited": 33,
	"disabled": 40, "enabled": 41, "checked": 42,
	"before": 100, "after": 101, "placeholder": 102,
	"file": 103, "marker": 104, "selection": 105,
}

const (
	defaultVariantOrder = 50
	elementVariantOrder = 110
)

// Validation is the outcome of checking a pseudo combination
type Validation struct {
	Valid      bool
	Reason     string
	Suggestion string
}

// ValidatePseudo checks whether Tailwind can express the combination of
// pseudo-classes and pseudo-elements. The first failing rule wins.
func ValidatePseudo(classes, elements []string) Validation {
	// 1. Pseudo-elements combined with states
	if len(elements) > 0 && len(classes) > 0 {
		for _, el := range elements {
			if statelessElements[el] {
				return Validation{
					Reason:     "Pseudo-element ::" + el + " cannot have state variants applied",
					Suggestion: "Move state variants to the base element or remove ::" + el,
				}
			}
			if !statefulElements[el] && !strings.HasPrefix(el, "[&::") {
				return Validation{
					Reason:     "Pseudo-element ::" + el + " cannot be combined with state variants",
					Suggestion: "Use only ::before, ::after, ::placeholder, or ::file with state variants",
				}
			}
		}

		// 2. Only a few states apply to pseudo-elements
		for _, c := range classes {
			if strings.HasPrefix(c, "[&:") {
				continue
			}
			if !elementStates[c] {
				return Validation{
					Reason:     "State variant :" + c + " cannot be applied to pseudo-elements",
					Suggestion: "Use only hover, focus, active, or disabled states with pseudo-elements",
				}
			}
		}
	}

	// 3. One pseudo-element per selector
	if len(elements) > 1 {
		return Validation{
			Reason:     "Multiple pseudo-elements cannot be combined",
			Suggestion: "Use only one pseudo-element per selector",
		}
	}

	// 4. Deeply nested :not()
	hasNot := false
	complexCount := 0
	for _, c := range classes {
		if strings.HasPrefix(c, "not-[") {
			hasNot = true
		}
		if isComplexVariant(c) {
			complexCount++
		}
	}
	if hasNot && complexCount > 1 && len(classes) > 2 {
		return Validation{
			Reason:     "Complex :not() combinations with multiple pseudo-classes may not work as expected",
			Suggestion: "Simplify the selector or use separate rules",
		}
	}

	return Validation{Valid: true}
}

func isComplexVariant(v string) bool {
	return strings.HasPrefix(v, "not-[") || strings.HasPrefix(v, "has-[") || strings.HasPrefix(v, "[&:")
}

// VariantOrder returns the stacking priority of a variant; unknown
// variants sit in the middle.
func VariantOrder(variant string) int {
	if o, ok := variantOrder[variant]; ok {
		return o
	}
	return defaultVariantOrder
}

// SortPseudo returns the variants of info in stacking order. Pseudo-elements
// always come last.
func SortPseudo(info PseudoInfo) []string {
	type ranked struct {
		variant string
		order   int
	}

	all := make([]ranked, 0, len(info.Elements)+len(info.Classes))
	for _, el := range info.Elements {
		o, ok := variantOrder[el]
		if !ok {
			o = elementVariantOrder
		}
		all = append(all, ranked{el, o})
	}
	for _, c := range info.Classes {
		all = append(all, ranked{c, VariantOrder(c)})
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].order < all[j].order })

	out := make([]string, len(all))
	for i, r := range all {
		out[i] = r.variant
	}
	return out
}

// ApplyPseudo prefixes every class with the variant chain of info. An
// invalid combination leaves the classes unprefixed and returns warnings.
func ApplyPseudo(classes []string, info PseudoInfo) ([]string, []string) {
	if info.Empty() {
		return classes, nil
	}

	v := ValidatePseudo(info.Classes, info.Elements)
	if !v.Valid {
		warnings := []string{"Invalid pseudo combination: " + v.Reason}
		if v.Suggestion != "" {
			warnings = append(warnings, "Suggestion: "+v.Suggestion)
		}
		return classes, warnings
	}

	prefix := strings.Join(SortPseudo(info), ":") + ":"
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = prefix + c
	}
	return out, nil
}
