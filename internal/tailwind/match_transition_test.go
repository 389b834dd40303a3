package tailwind

import (
	"testing"
)

func TestTransition(t *testing.T) {
	runDeclarationCases(t, []declarationCase{
		{"shorthand", "transition", "all 0.3s ease", []string{"transition-all", "duration-300", "ease-in-out"}},
		{"shorthand delay", "transition", "opacity 200ms ease-in 100ms", []string{"transition-opacity", "duration-200", "ease-in", "delay-100"}},
		{"shorthand list", "transition", "color .15s, background-color .15s", []string{"transition-colors", "duration-150"}},
		{"shorthand time only", "transition", "0.2s", []string{"transition-all", "duration-200"}},
		{"none", "transition", "none", []string{"transition-none"}},
		{"duration", "transition-duration", "0.5s", []string{"duration-500"}},
		{"duration arbitrary", "transition-duration", "250ms", []string{"duration-[250ms]"}},
		{"delay", "transition-delay", "1s", []string{"delay-1000"}},
		{"timing", "transition-timing-function", "linear", []string{"ease-linear"}},
		{
			"timing bezier",
			"transition-timing-function", "cubic-bezier(0.4, 0, 0.2, 1)",
			[]string{"ease-[cubic-bezier(0.4,_0,_0.2,_1)]"},
		},
		{"property", "transition-property", "transform, width", []string{"transition-transform", "transition-[width]"}},
		{"behavior", "transition-behavior", "allow-discrete", []string{"transition-discrete"}},
	})
}
