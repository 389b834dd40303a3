package tailwind

import (
	"fmt"
	"strings"
)

// RepeatPattern is a run of grid tracks that can be written as repeat()
type RepeatPattern struct {
	Value string // one period of the run, e.g. "200px" or "1fr 2fr"
	Count int
}

// CSS renders the pattern as a CSS repeat() function.
func (p RepeatPattern) CSS() string {
	return fmt.Sprintf("repeat(%d, %s)", p.Count, p.Value)
}

// AnalyzeRepeats detects a track list made of one token repeated, or of a
// shortest sub-sequence repeated, at least threshold times.
func AnalyzeRepeats(value string, threshold int) (RepeatPattern, bool) {
	parts := splitSpaces(value)
	if len(parts) < 2 || len(parts) < threshold {
		return RepeatPattern{}, false
	}

	// 1. All tracks identical
	if allEqual(parts) {
		return RepeatPattern{Value: parts[0], Count: len(parts)}, true
	}

	// 2. Shortest repeating period
	for period := 2; period <= len(parts)/2; period++ {
		if len(parts)%period != 0 {
			continue
		}
		if !isPeriodic(parts, period) {
			continue
		}
		count := len(parts) / period
		if count < threshold {
			// longer periods only give fewer repeats
			return RepeatPattern{}, false
		}
		return RepeatPattern{Value: strings.Join(parts[:period], " "), Count: count}, true
	}

	return RepeatPattern{}, false
}

func allEqual(parts []string) bool {
	for _, p := range parts[1:] {
		if p != parts[0] {
			return false
		}
	}
	return true
}

func isPeriodic(parts []string, period int) bool {
	for i := period; i < len(parts); i++ {
		if parts[i] != parts[i-period] {
			return false
		}
	}
	return true
}

// OptimizeRepeatValue rewrites a grid track list using repeat() when it
// contains a run of at least threshold repeats. Other values are returned
// unchanged.
func OptimizeRepeatValue(property, value string, threshold int) string {
	if _, ok := gridTemplatePrefixes[strings.ToLower(strings.TrimSpace(property))]; !ok {
		return value
	}
	if p, ok := AnalyzeRepeats(value, threshold); ok {
		return p.CSS()
	}
	return value
}

// RepeatClass converts a detected pattern to a utility class. A run of 1fr
// within the named range becomes grid-cols-N or grid-rows-N.
func RepeatClass(property string, p RepeatPattern) string {
	prop := strings.ToLower(strings.TrimSpace(property))
	prefix, ok := gridTemplatePrefixes[prop]
	if !ok {
		return ""
	}
	if p.Value == "1fr" && p.Count <= gridTemplateLimits[prop] {
		return fmt.Sprintf("%s-%d", prefix, p.Count)
	}
	return fmt.Sprintf("%s-[repeat(%d,%s)]", prefix, p.Count, underscored(p.Value))
}

// RepeatSuggestions lists grid declarations that could be shortened with
// repeat(), as "property: value → class" lines.
func RepeatSuggestions(decls []Declaration, s Settings) []string {
	if !s.RepeaterOptimization {
		return nil
	}

	var suggestions []string
	for _, d := range decls {
		prop := strings.ToLower(strings.TrimSpace(d.Property))
		if _, ok := gridTemplatePrefixes[prop]; !ok {
			continue
		}
		p, ok := AnalyzeRepeats(d.Value, s.RepeaterThreshold)
		if !ok {
			continue
		}
		suggestions = append(suggestions, fmt.Sprintf("%s: %s → %s", prop, collapseSpaces(d.Value), RepeatClass(prop, p)))
	}
	return suggestions
}
