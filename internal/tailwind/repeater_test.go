package tailwind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRepeats(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		threshold int
		expected  RepeatPattern
		ok        bool
	}{
		{"identical tracks", "100px 100px 100px", 3, RepeatPattern{Value: "100px", Count: 3}, true},
		{"below threshold", "100px 100px", 3, RepeatPattern{}, false},
		{"period", "1fr 2fr 1fr 2fr", 2, RepeatPattern{Value: "1fr 2fr", Count: 2}, true},
		{"period below threshold", "1fr 2fr 1fr 2fr", 3, RepeatPattern{}, false},
		{"period of three", "a b c a b c a b c", 3, RepeatPattern{Value: "a b c", Count: 3}, true},
		{"no period", "a b c", 2, RepeatPattern{}, false},
		{"single track", "100px", 2, RepeatPattern{}, false},
		{"functions are tokens", "minmax(0, 1fr) minmax(0, 1fr)", 2, RepeatPattern{Value: "minmax(0, 1fr)", Count: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := AnalyzeRepeats(tt.value, tt.threshold)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestRepeatHelpers(t *testing.T) {
	assert.Equal(t, "repeat(3, 1fr)", OptimizeRepeatValue("grid-template-columns", "1fr 1fr 1fr", 3))
	assert.Equal(t, "1fr 1fr", OptimizeRepeatValue("grid-template-columns", "1fr 1fr", 3))
	assert.Equal(t, "1px 1px 1px", OptimizeRepeatValue("margin", "1px 1px 1px", 3))

	assert.Equal(t, "grid-rows-4", RepeatClass("grid-template-rows", RepeatPattern{Value: "1fr", Count: 4}))
	assert.Equal(t, "grid-cols-[repeat(3,1fr_auto)]", RepeatClass("grid-template-columns", RepeatPattern{Value: "1fr auto", Count: 3}))
	assert.Empty(t, RepeatClass("width", RepeatPattern{Value: "1fr", Count: 3}))

	assert.Equal(t, "repeat(2, 10px 20px)", RepeatPattern{Value: "10px 20px", Count: 2}.CSS())
}

func TestRepeatSuggestions(t *testing.T) {
	decls := []Declaration{
		{Property: "grid-template-columns", Value: "100px  100px 100px"},
		{Property: "color", Value: "red"},
		{Property: "grid-template-rows", Value: "auto 1fr"},
	}

	assert.Equal(t,
		[]string{"grid-template-columns: 100px 100px 100px → grid-cols-[repeat(3,100px)]"},
		RepeatSuggestions(decls, DefaultSettings()),
	)

	s := DefaultSettings()
	s.RepeaterOptimization = false
	assert.Nil(t, RepeatSuggestions(decls, s))
}
