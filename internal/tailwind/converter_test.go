package tailwind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// convertCSS parses css and converts it with settings.
func convertCSS(t *testing.T, css string, settings Settings) []Result {
	t.Helper()
	c, err := NewConverter(settings)
	require.NoError(t, err)
	return c.Convert(Parse(css))
}

// classesFor converts a single declaration with the default settings.
func classesFor(t *testing.T, property, value string) []string {
	t.Helper()
	return classesWith(t, property, value, DefaultSettings())
}

func classesWith(t *testing.T, property, value string, settings Settings) []string {
	t.Helper()
	c, err := NewConverter(settings)
	require.NoError(t, err)
	res := c.ConvertRule(Rule{
		Selector:     ".x",
		BaseSelector: ".x",
		Declarations: []Declaration{{Property: property, Value: value}},
	})
	return res.Classes
}

func TestConvertScenarios(t *testing.T) {
	tests := []struct {
		name          string
		css           string
		settings      func(*Settings)
		classes       []string
		unconvertible []string
		check         func(*testing.T, Result)
	}{
		{
			name:    "display flex",
			css:     ".a { display: flex; }",
			classes: []string{"flex"},
		},
		{
			name:    "joint size",
			css:     ".a { width: 100%; height: 100%; }",
			classes: []string{"size-full"},
		},
		{
			name:    "margin auto",
			css:     ".a { margin: 0 auto; }",
			classes: []string{"mx-auto", "my-0"},
		},
		{
			name:    "hover color",
			css:     ".a:hover { color: red; }",
			classes: []string{"hover:text-red-500"},
			check: func(t *testing.T, r Result) {
				assert.Equal(t, ".a", r.BaseSelector)
				assert.Equal(t, []string{"hover"}, r.Pseudo.Classes)
			},
		},
		{
			name:    "repeated grid tracks",
			css:     ".a { grid-template-columns: 200px 200px 200px; }",
			classes: []string{"grid-cols-[repeat(3,200px)]"},
		},
		{
			name:    "opacity half",
			css:     ".a { opacity: 0.5; }",
			classes: []string{"opacity-50"},
		},
		{
			name:    "opacity rounds to nearest five",
			css:     ".a { opacity: .73; }",
			classes: []string{"opacity-75"},
		},
		{
			name:          "unknown property",
			css:           ".a { unknown-prop: weird-value; }",
			classes:       []string{},
			unconvertible: []string{"unknown-prop"},
		},
		{
			name:    "padding shorthand",
			css:     ".btn { padding: 8px 16px; }",
			classes: []string{"py-2", "px-4"},
		},
		{
			name:     "padding shorthand without short names",
			css:      ".btn { padding: 8px 16px; }",
			settings: func(s *Settings) { s.PreferShortClassNames = false },
			classes:  []string{"pt-2", "pr-4", "pb-2", "pl-4"},
		},
		{
			name:     "size optimization disabled",
			css:      ".icon { width: 16px; height: 16px; }",
			settings: func(s *Settings) { s.SizeOptimization = false },
			classes:  []string{"w-4", "h-4"},
		},
		{
			name:    "sizes come first",
			css:     ".a { color: red; width: 10px; }",
			classes: []string{"w-2.5", "text-red-500"},
		},
		{
			name:    "duplicates removed",
			css:     ".a { padding: 16px; padding: 1rem; }",
			classes: []string{"p-4"},
			check: func(t *testing.T, r Result) {
				assert.Len(t, r.Mappings, 2)
			},
		},
		{
			name:    "important",
			css:     ".a { display: flex !important; padding: 8px 16px !important; }",
			classes: []string{"!flex", "!py-2", "!px-4"},
		},
		{
			name:    "important size",
			css:     ".a { width: 100% !important; height: 100% !important; }",
			classes: []string{"!size-full"},
		},
		{
			name:    "custom variable shorthand",
			css:     ".a { padding: var(--gap); color: var(--brand); }",
			classes: []string{"p-(--gap)", "text-(--brand)"},
		},
		{
			name:    "custom variable size",
			css:     ".a { width: var(--icon); height: var(--icon); }",
			classes: []string{"size-(--icon)"},
		},
		{
			name:          "arbitrary values disabled",
			css:           ".a { width: 13px; display: block; }",
			settings:      func(s *Settings) { s.ArbitraryValues = false },
			classes:       []string{"block"},
			unconvertible: []string{"width"},
			check: func(t *testing.T, r Result) {
				assert.Equal(t, `Value "13px" requires an arbitrary value and arbitrary values are disabled`, r.Unconvertible[0].Reason)
			},
		},
		{
			name:    "pseudo element",
			css:     `.a::before { content: ""; display: block; }`,
			classes: []string{`before:content-[""]`, "before:block"},
		},
		{
			name:    "invalid pseudo keeps classes",
			css:     "p::first-line:hover { color: red; }",
			classes: []string{"text-red-500"},
			check: func(t *testing.T, r Result) {
				require.Len(t, r.Warnings, 2)
				assert.Contains(t, r.Warnings[0], "::first-line")
			},
		},
		{
			name:    "fallback order",
			css:     ".a { order: 13; }",
			classes: []string{"order-[13]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			if tt.settings != nil {
				tt.settings(&settings)
			}
			results := convertCSS(t, tt.css, settings)
			require.Len(t, results, 1)

			r := results[0]
			assert.Equal(t, tt.classes, r.Classes)

			var props []string
			for _, u := range r.Unconvertible {
				props = append(props, u.Property)
				assert.NotEmpty(t, u.Reason)
			}
			assert.Equal(t, tt.unconvertible, props)

			if tt.check != nil {
				tt.check(t, r)
			}
		})
	}
}

func TestConvertUnknownPropertyReason(t *testing.T) {
	results := convertCSS(t, ".a { unknown-prop: weird-value; }", DefaultSettings())
	require.Len(t, results, 1)
	require.Len(t, results[0].Unconvertible, 1)

	u := results[0].Unconvertible[0]
	assert.Equal(t, "weird-value", u.Value)
	assert.Contains(t, u.Reason, `Property "unknown-prop" not supported`)
}

func TestConvertUnsupportedValueReason(t *testing.T) {
	tests := []struct {
		name     string
		css      string
		expected string
	}{
		{
			name:     "border color with two values",
			css:      ".a { border-color: red blue; }",
			expected: `Value "red blue" not supported for property "border-color"`,
		},
		{
			name:     "font shorthand keyword",
			css:      ".a { font: inherit; }",
			expected: `Value "inherit" not supported for property "font"`,
		},
		{
			name:     "important is kept in the reported value",
			css:      ".a { border-color: red blue !important; }",
			expected: `Value "red blue !important" not supported for property "border-color"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := convertCSS(t, tt.css, DefaultSettings())
			require.Len(t, results, 1)
			require.Len(t, results[0].Unconvertible, 1)
			assert.Equal(t, tt.expected, results[0].Unconvertible[0].Reason)
		})
	}
}

func TestConvertCompleteness(t *testing.T) {
	css := `.a {
		display: flex;
		unknown: x;
		padding: 4px;
		width: 10px;
		height: 20px;
		font: inherit;
	}`
	results := convertCSS(t, css, DefaultSettings())
	require.Len(t, results, 1)
	r := results[0]

	// every declaration is either mapped or unconvertible, never both
	seen := make(map[string]int)
	for _, m := range r.Mappings {
		seen[m.Property]++
	}
	for _, u := range r.Unconvertible {
		seen[u.Property]++
	}
	for _, d := range Parse(css)[0].Declarations {
		assert.Equal(t, 1, seen[d.Property], d.Property)
	}
	assert.Len(t, r.Mappings, 4)
	assert.Len(t, r.Unconvertible, 2)
}

func TestConvertKeepsMalformedDeclarations(t *testing.T) {
	results := convertCSS(t, ".a { color red; padding: ; margin: 4px }", DefaultSettings())
	require.Len(t, results, 1)
	r := results[0]

	assert.Equal(t, []string{"m-1"}, r.Classes)
	require.Len(t, r.Unconvertible, 2)
	assert.Equal(t, "color red", r.Unconvertible[0].Property)
	assert.Equal(t, "", r.Unconvertible[0].Value)
	assert.Equal(t, "padding", r.Unconvertible[1].Property)
	assert.Equal(t, "", r.Unconvertible[1].Value)
	for _, u := range r.Unconvertible {
		assert.NotEmpty(t, u.Reason)
	}
}

func TestConvertPurity(t *testing.T) {
	css := `.a:hover { margin: 0 auto; color: #fff; grid-template-columns: 1fr 2fr 1fr 2fr 1fr 2fr; }
	.b::after { content: "x"; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }`
	c, err := NewConverter(DefaultSettings())
	require.NoError(t, err)

	rules := Parse(css)
	first := c.Convert(rules)
	second := c.Convert(rules)
	assert.Equal(t, first, second)
	require.Len(t, first, 2)
}

func TestConvertResultsFollowRules(t *testing.T) {
	results := convertCSS(t, ".b { color: red; } .a { color: blue; } .c:focus { color: black; }", DefaultSettings())
	require.Len(t, results, 3)
	assert.Equal(t, ".b", results[0].Selector)
	assert.Equal(t, ".a", results[1].Selector)
	assert.Equal(t, ".c:focus", results[2].Selector)
	assert.Equal(t, "focus:text-black", results[2].ClassString())
}

func TestConvertMappingsArePrePrefix(t *testing.T) {
	results := convertCSS(t, ".a:hover { color: red; padding: 8px 16px; }", DefaultSettings())
	require.Len(t, results, 1)
	r := results[0]

	require.Len(t, r.Mappings, 2)
	assert.Equal(t, []string{"text-red-500"}, r.Mappings[0].Classes)
	assert.Equal(t, []string{"py-2", "px-4"}, r.Mappings[1].Classes)
	assert.Equal(t, []string{"hover:text-red-500", "hover:py-2", "hover:px-4"}, r.Classes)
}

func TestConvertRuleWithoutParsedSelector(t *testing.T) {
	c, err := NewConverter(DefaultSettings())
	require.NoError(t, err)

	r := c.ConvertRule(Rule{
		Selector:     ".a:focus",
		Declarations: []Declaration{{Property: "display", Value: "none"}},
	})
	assert.Equal(t, ".a", r.BaseSelector)
	assert.Equal(t, []string{"focus:hidden"}, r.Classes)
}

func TestNewConverterValidation(t *testing.T) {
	s := DefaultSettings()
	s.RepeaterThreshold = 1

	_, err := NewConverter(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidThreshold)

	_, err = Convert(nil, s)
	assert.ErrorIs(t, err, ErrInvalidThreshold)

	results, err := Convert(nil, DefaultSettings())
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestWithMatchers(t *testing.T) {
	c, err := NewConverter(DefaultSettings(), WithMatchers())
	require.NoError(t, err)

	r := c.ConvertRule(Rule{
		Selector: ".a",
		Declarations: []Declaration{
			{Property: "display", Value: "grid"},
			{Property: "top", Value: "5px"},
			{Property: "padding", Value: "4px"},
		},
	})
	// static table and fallback still apply without matchers
	assert.Equal(t, []string{"grid", "top-[5px]"}, r.Classes)
	require.Len(t, r.Unconvertible, 1)
	assert.Equal(t, "padding", r.Unconvertible[0].Property)
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c, err := NewConverter(DefaultSettings(), WithLogger(zap.New(core)))
	require.NoError(t, err)

	c.Convert(Parse(".a { display: flex; bogus: 1; }"))

	converted := logs.FilterMessage("converted declaration").All()
	require.Len(t, converted, 1)
	assert.Equal(t, "static", converted[0].ContextMap()["source"])
	assert.Equal(t, 1, logs.FilterMessage("unconvertible declaration").Len())
}

func TestCutImportant(t *testing.T) {
	tests := []struct {
		value     string
		want      string
		important bool
	}{
		{"red", "red", false},
		{"red !important", "red", true},
		{"red!IMPORTANT", "red", true},
		{"1px solid red ! important", "1px solid red", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, important := cutImportant(tt.value)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.important, important)
		})
	}
}
