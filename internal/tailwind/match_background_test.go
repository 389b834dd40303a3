package tailwind

import (
	"testing"
)

func TestBackground(t *testing.T) {
	runDeclarationCases(t, []declarationCase{
		{"shorthand color", "background", "#fff", []string{"bg-white"}},
		{"shorthand named", "background", "red", []string{"bg-red-500"}},
		{"shorthand none", "background", "none", []string{"bg-none"}},
		{
			"shorthand image position size repeat",
			"background", "url(img.png) no-repeat center / cover",
			[]string{"bg-[url(img.png)]", "bg-center", "bg-cover", "bg-no-repeat"},
		},
		{
			"shorthand color and image",
			"background", "#000 url(x.png) fixed",
			[]string{"bg-black", "bg-[url(x.png)]", "bg-fixed"},
		},
		{
			"shorthand slash without spaces",
			"background", "url(a.png) left top/contain repeat-x",
			[]string{"bg-[url(a.png)]", "bg-left-top", "bg-contain", "bg-repeat-x"},
		},
		{
			"shorthand gradient",
			"background", "linear-gradient(to right, #fff, #000)",
			[]string{"bg-gradient-to-r", "from-white", "to-black"},
		},
		{"shorthand layers", "background", "url(a.png), url(b.png)", []string{"bg-[url(a.png),_url(b.png)]"}},
		{"shorthand unknown token", "background", "sparkly", []string{}},
		{
			"gradient angle",
			"background-image", "linear-gradient(45deg, red, blue)",
			[]string{"bg-gradient-to-tr", "from-red-500", "to-blue-500"},
		},
		{
			"gradient default direction with via",
			"background-image", "linear-gradient(red, yellow, blue)",
			[]string{"bg-gradient-to-b", "from-red-500", "via-yellow-500", "to-blue-500"},
		},
		{
			"gradient with stops",
			"background-image", "linear-gradient(to right, red 0%, blue 100%)",
			[]string{"bg-[linear-gradient(to_right,_red_0%,_blue_100%)]"},
		},
		{"radial gradient", "background-image", "radial-gradient(red, blue)", []string{"bg-[radial-gradient(red,_blue)]"}},
		{"image url", "background-image", `url("a.png")`, []string{`bg-[url("a.png")]`}},
		{"image none", "background-image", "none", []string{"bg-none"}},
		{"size keyword", "background-size", "cover", []string{"bg-cover"}},
		{"size arbitrary", "background-size", "50% auto", []string{"bg-[length:50%_auto]"}},
		{"position keyword pair", "background-position", "top right", []string{"bg-right-top"}},
		{"position arbitrary", "background-position", "10px 20px", []string{"bg-[position:10px_20px]"}},
		{"repeat", "background-repeat", "no-repeat", []string{"bg-no-repeat"}},
		{"repeat space", "background-repeat", "space", []string{"bg-repeat-space"}},
		{"attachment", "background-attachment", "fixed", []string{"bg-fixed"}},
		{"clip text", "background-clip", "text", []string{"bg-clip-text"}},
		{"webkit clip", "-webkit-background-clip", "text", []string{"bg-clip-text"}},
		{"origin", "background-origin", "padding-box", []string{"bg-origin-padding"}},
		{"blend", "background-blend-mode", "multiply", []string{"bg-blend-multiply"}},
		{"unknown repeat", "background-repeat", "sideways", []string{}},
	})
}
