package tailwind

import (
	"testing"
)

func TestBorderRadius(t *testing.T) {
	runDeclarationCases(t, []declarationCase{
		{"default", "border-radius", "4px", []string{"rounded"}},
		{"large", "border-radius", "8px", []string{"rounded-lg"}},
		{"rem", "border-radius", "0.375rem", []string{"rounded-md"}},
		{"none", "border-radius", "0", []string{"rounded-none"}},
		{"full percent", "border-radius", "50%", []string{"rounded-full"}},
		{"full pill", "border-radius", "9999px", []string{"rounded-full"}},
		{"over half", "border-radius", "60%", []string{"rounded-full"}},
		{"arbitrary", "border-radius", "10px", []string{"rounded-[10px]"}},
		{"unitless", "border-radius", "5", []string{"rounded-[5px]"}},
		{"variable", "border-radius", "var(--radius)", []string{"rounded-(--radius)"}},
		{"top corners", "border-radius", "8px 8px 0 0", []string{"rounded-t-lg", "rounded-b-none"}},
		{"left corners", "border-radius", "8px 0 0 8px", []string{"rounded-l-lg", "rounded-r-none"}},
		{"all equal", "border-radius", "4px 4px", []string{"rounded"}},
		{"diagonal", "border-radius", "4px 8px", []string{"rounded-tl", "rounded-tr-lg", "rounded-br", "rounded-bl-lg"}},
		{"three values", "border-radius", "2px 4px 6px", []string{"rounded-tl-sm", "rounded-tr", "rounded-br-md", "rounded-bl"}},
		{"elliptical", "border-radius", "10px / 20px", []string{"rounded-[10px_/_20px]"}},
		{"corner", "border-top-left-radius", "6px", []string{"rounded-tl-md"}},
		{"logical corner", "border-start-start-radius", "1rem", []string{"rounded-ss-2xl"}},
		{"corner elliptical", "border-bottom-right-radius", "4px 8px", []string{"rounded-br-[4px_8px]"}},
	})
}
