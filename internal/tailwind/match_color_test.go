package tailwind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor(t *testing.T) {
	runDeclarationCases(t, []declarationCase{
		{"named palette", "color", "red", []string{"text-red-500"}},
		{"named dark", "color", "navy", []string{"text-blue-900"}},
		{"static hex", "color", "#fff", []string{"text-white"}},
		{"static hex upper", "color", "#FFF", []string{"text-white"}},
		{"hex", "color", "#ff8800", []string{"text-[#ff8800]"}},
		{"hex black long", "fill", "#000000", []string{"fill-black"}},
		{"rgb", "color", "rgb(255, 0, 0)", []string{"text-[rgb(255,0,0)]"}},
		{"hsl", "background-color", "hsl(210 40% 98%)", []string{"bg-[hsl(210_40%_98%)]"}},
		{"css keyword", "color", "rebeccapurple", []string{"text-[#663399]"}},
		{"current", "border-color", "currentColor", []string{"border-current"}},
		{"transparent", "background-color", "transparent", []string{"bg-transparent"}},
		{"background hex", "background-color", "#123456", []string{"bg-[#123456]"}},
		{"side border", "border-top-color", "blue", []string{"border-t-blue-500"}},
		{"outline", "outline-color", "red", []string{"outline-red-500"}},
		{"decoration", "text-decoration-color", "#abc", []string{"decoration-[#abc]"}},
		{"caret", "caret-color", "white", []string{"caret-white"}},
		{"accent", "accent-color", "var(--accent)", []string{"accent-(--accent)"}},
		{"stroke", "stroke", "black", []string{"stroke-black"}},
		{"invalid hex", "color", "#ggg", []string{}},
	})
}

func TestColorSuffix(t *testing.T) {
	tests := []struct {
		value    string
		expected string
		ok       bool
	}{
		{"red", "red-500", true},
		{"Grey", "gray-500", true},
		{"#fff", "white", true},
		{"#ffffff80", "[#ffffff80]", true},
		{"rgba(0, 0, 0, 0.5)", "[rgba(0,0,0,0.5)]", true},
		{"var(--c)", "[var(--c)]", true},
		{"slategray", "[#708090]", true},
		{"notacolor", "", false},
		{"#12", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, ok := colorSuffix(tt.value)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestUnknownColorSuggestion(t *testing.T) {
	assert.Equal(t, `Value "notacolor" not supported. Try: black`, unconvertibleReason("color", "notacolor", true))
}
