package tailwind

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticClass(t *testing.T) {
	tests := []struct {
		name     string
		property string
		value    string
		expected string
		ok       bool
	}{
		{"exact", "display", "flex", "flex", true},
		{"case and spaces", "display", "  FLEX ", "flex", true},
		{"negative key", "order", "-9999", "order-first", true},
		{"unit stripped", "letter-spacing", "0px", "tracking-normal", true},
		{"collapsed spaces", "grid-auto-flow", "row  dense", "grid-flow-row-dense", true},
		{"keyword not unit stripped", "display", "inline-block", "inline-block", true},
		{"unknown value", "display", "bogus", "", false},
		{"unknown property", "gap", "4px", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := staticClass(tt.property, tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		value    string
		expected []string
	}{
		{"1 1 0%", []string{"1 1 0%", "1 1 0", "1,1,0%", "1-1-0%"}},
		{"#FFF", []string{"#fff", "fff"}},
		{"inline-block", []string{"inline-block"}},
		{"16px", []string{"16px", "16"}},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeValue(tt.value))
		})
	}
}

func TestAvailableProperties(t *testing.T) {
	props := AvailableProperties()
	assert.True(t, slices.IsSorted(props))
	assert.Equal(t, props, slices.Compact(slices.Clone(props)))
	assert.Contains(t, props, "display")
	assert.Contains(t, props, "padding")
	assert.Contains(t, props, "grid-template-columns")
	assert.Contains(t, props, "aspect-ratio")
}

func TestAvailableValues(t *testing.T) {
	assert.Equal(t, []string{"block", "contents", "flex", "flow-root", "grid"}, AvailableValues("display"))
	assert.Equal(t, []string{"0", "0.5", "1", "1.5", "2"}, AvailableValues("padding"))
	assert.Empty(t, AvailableValues("qqq"))
}

func TestFindSimilar(t *testing.T) {
	assert.Equal(t, []string{"block", "inline-flex"}, findSimilar("flex", []string{"block", "inline-flex", "grid"}))
	assert.Len(t, findSimilar("a", []string{"a", "ab", "abc", "abcd"}), maxSuggestions)
	assert.Empty(t, findSimilar("xyz", []string{"block", "grid"}))
}

func TestUnconvertibleReason(t *testing.T) {
	tests := []struct {
		name      string
		property  string
		value     string
		supported bool
		expected  string
	}{
		{
			name:     "similar value",
			property: "display", value: "bogus",
			expected: `Value "bogus" not supported. Try: block, contents, flow-root`,
		},
		{
			name:     "available values",
			property: "display", value: "qqq",
			expected: `Value "qqq" not supported. Available values: block, contents, flex...`,
		},
		{
			name:     "similar property",
			property: "unknown-prop", value: "1",
			expected: `Property "unknown-prop" not supported. Try: -webkit-font-smoothing, align-content, align-items`,
		},
		{
			name:     "unknown property",
			property: "qqq", value: "1",
			expected: `Property "qqq" not supported by this converter`,
		},
		{
			name:     "supported property with unsupported value",
			property: "border-color", value: "red blue", supported: true,
			expected: `Value "red blue" not supported for property "border-color"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, unconvertibleReason(tt.property, tt.value, tt.supported))
		})
	}
}
