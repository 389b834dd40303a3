package tailwind

import (
	"fmt"
	"strings"
)

const maxSuggestions = 3

// findSimilar returns up to three items that contain target, are contained
// in it, or share at least one character with it. It is a loose hint, not a
// ranking.
func findSimilar(target string, items []string) []string {
	target = strings.ToLower(target)
	var out []string
	for _, item := range items {
		lower := strings.ToLower(item)
		if strings.Contains(lower, target) || strings.Contains(target, lower) || strings.ContainsAny(target, lower) {
			out = append(out, item)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// unconvertibleReason explains why a declaration produced no class and
// suggests nearby values or properties. supported reports that a converter
// owns the property, so only the value can be at fault.
func unconvertibleReason(property, value string, supported bool) string {
	prop := strings.ToLower(strings.TrimSpace(property))

	if values := AvailableValues(prop); len(values) > 0 {
		if similar := findSimilar(strings.TrimSpace(value), values); len(similar) > 0 {
			return fmt.Sprintf("Value \"%s\" not supported. Try: %s", value, strings.Join(similar, ", "))
		}
		examples := values
		more := ""
		if len(values) > maxSuggestions {
			examples, more = values[:maxSuggestions], "..."
		}
		return fmt.Sprintf("Value \"%s\" not supported. Available values: %s%s", value, strings.Join(examples, ", "), more)
	}

	if supported {
		return fmt.Sprintf("Value \"%s\" not supported for property \"%s\"", value, property)
	}

	if similar := findSimilar(prop, AvailableProperties()); len(similar) > 0 {
		return fmt.Sprintf("Property \"%s\" not supported. Try: %s", property, strings.Join(similar, ", "))
	}
	return fmt.Sprintf("Property \"%s\" not supported by this converter", property)
}

// arbitraryDisabledReason is the reason for a declaration that only converts
// to arbitrary values while they are disabled.
func arbitraryDisabledReason(value string) string {
	return fmt.Sprintf("Value \"%s\" requires an arbitrary value and arbitrary values are disabled", value)
}
