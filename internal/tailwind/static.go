package tailwind

import (
	"regexp"
	"slices"
	"strings"
)

// staticClasses maps property and exact value to a class. It is consulted
// before the matcher chain with every normalized form of the value.
var staticClasses = map[string]map[string]string{
	"display": {
		"block":              "block",
		"contents":           "contents",
		"inline-block":       "inline-block",
		"inline":             "inline",
		"inline-flex":        "inline-flex",
		"inline-grid":        "inline-grid",
		"inline-table":       "inline-table",
		"flex":               "flex",
		"flow-root":          "flow-root",
		"grid":               "grid",
		"table":              "table",
		"table-caption":      "table-caption",
		"table-column":       "table-column",
		"table-column-group": "table-column-group",
		"table-footer-group": "table-footer-group",
		"table-header-group": "table-header-group",
		"table-row-group":    "table-row-group",
		"table-cell":         "table-cell",
		"table-row":          "table-row",
		"list-item":          "list-item",
		"none":               "hidden",
	},
	"position": {
		"static":   "static",
		"fixed":    "fixed",
		"absolute": "absolute",
		"relative": "relative",
		"sticky":   "sticky",
	},
	"visibility": {
		"visible":  "visible",
		"hidden":   "invisible",
		"collapse": "collapse",
	},
	"overflow": {
		"auto":    "overflow-auto",
		"hidden":  "overflow-hidden",
		"clip":    "overflow-clip",
		"visible": "overflow-visible",
		"scroll":  "overflow-scroll",
	},
	"overflow-x": {
		"auto":    "overflow-x-auto",
		"hidden":  "overflow-x-hidden",
		"clip":    "overflow-x-clip",
		"visible": "overflow-x-visible",
		"scroll":  "overflow-x-scroll",
	},
	"overflow-y": {
		"auto":    "overflow-y-auto",
		"hidden":  "overflow-y-hidden",
		"clip":    "overflow-y-clip",
		"visible": "overflow-y-visible",
		"scroll":  "overflow-y-scroll",
	},
	"overscroll-behavior": {
		"auto":    "overscroll-auto",
		"contain": "overscroll-contain",
		"none":    "overscroll-none",
	},
	"float": {
		"left":         "float-left",
		"right":        "float-right",
		"none":         "float-none",
		"inline-start": "float-start",
		"inline-end":   "float-end",
	},
	"clear": {
		"left":  "clear-left",
		"right": "clear-right",
		"both":  "clear-both",
		"none":  "clear-none",
	},
	"box-sizing": {
		"border-box":  "box-border",
		"content-box": "box-content",
	},
	"isolation": {
		"isolate": "isolate",
		"auto":    "isolation-auto",
	},
	"object-fit": {
		"contain":    "object-contain",
		"cover":      "object-cover",
		"fill":       "object-fill",
		"none":       "object-none",
		"scale-down": "object-scale-down",
	},
	"object-position": {
		"bottom":       "object-bottom",
		"center":       "object-center",
		"left":         "object-left",
		"left bottom":  "object-left-bottom",
		"left top":     "object-left-top",
		"right":        "object-right",
		"right bottom": "object-right-bottom",
		"right top":    "object-right-top",
		"top":          "object-top",
	},
	"flex-direction": {
		"row":            "flex-row",
		"row-reverse":    "flex-row-reverse",
		"column":         "flex-col",
		"column-reverse": "flex-col-reverse",
	},
	"flex-wrap": {
		"nowrap":       "flex-nowrap",
		"wrap":         "flex-wrap",
		"wrap-reverse": "flex-wrap-reverse",
	},
	"flex": {
		"1":        "flex-1",
		"1 1 0%":   "flex-1",
		"auto":     "flex-auto",
		"1 1 auto": "flex-auto",
		"initial":  "flex-initial",
		"0 1 auto": "flex-initial",
		"none":     "flex-none",
		"0 0 auto": "flex-none",
	},
	"flex-grow": {
		"0": "grow-0",
		"1": "grow",
	},
	"flex-shrink": {
		"0": "shrink-0",
		"1": "shrink",
	},
	"order": {
		"-9999": "order-first",
		"9999":  "order-last",
		"0":     "order-none",
		"1":     "order-1",
		"2":     "order-2",
		"3":     "order-3",
		"4":     "order-4",
		"5":     "order-5",
		"6":     "order-6",
		"7":     "order-7",
		"8":     "order-8",
		"9":     "order-9",
		"10":    "order-10",
		"11":    "order-11",
		"12":    "order-12",
	},
	"justify-content": {
		"normal":        "justify-normal",
		"flex-start":    "justify-start",
		"start":         "justify-start",
		"flex-end":      "justify-end",
		"end":           "justify-end",
		"center":        "justify-center",
		"space-between": "justify-between",
		"space-around":  "justify-around",
		"space-evenly":  "justify-evenly",
		"stretch":       "justify-stretch",
	},
	"justify-items": {
		"start":   "justify-items-start",
		"end":     "justify-items-end",
		"center":  "justify-items-center",
		"stretch": "justify-items-stretch",
	},
	"justify-self": {
		"auto":    "justify-self-auto",
		"start":   "justify-self-start",
		"end":     "justify-self-end",
		"center":  "justify-self-center",
		"stretch": "justify-self-stretch",
	},
	"align-items": {
		"flex-start": "items-start",
		"start":      "items-start",
		"flex-end":   "items-end",
		"end":        "items-end",
		"center":     "items-center",
		"baseline":   "items-baseline",
		"stretch":    "items-stretch",
	},
	"align-content": {
		"normal":        "content-normal",
		"flex-start":    "content-start",
		"start":         "content-start",
		"flex-end":      "content-end",
		"end":           "content-end",
		"center":        "content-center",
		"space-between": "content-between",
		"space-around":  "content-around",
		"space-evenly":  "content-evenly",
		"baseline":      "content-baseline",
		"stretch":       "content-stretch",
	},
	"align-self": {
		"auto":       "self-auto",
		"flex-start": "self-start",
		"start":      "self-start",
		"flex-end":   "self-end",
		"end":        "self-end",
		"center":     "self-center",
		"stretch":    "self-stretch",
		"baseline":   "self-baseline",
	},
	"place-content": {
		"center":        "place-content-center",
		"start":         "place-content-start",
		"end":           "place-content-end",
		"space-between": "place-content-between",
		"space-around":  "place-content-around",
		"space-evenly":  "place-content-evenly",
		"baseline":      "place-content-baseline",
		"stretch":       "place-content-stretch",
	},
	"place-items": {
		"start":    "place-items-start",
		"end":      "place-items-end",
		"center":   "place-items-center",
		"baseline": "place-items-baseline",
		"stretch":  "place-items-stretch",
	},
	"place-self": {
		"auto":    "place-self-auto",
		"start":   "place-self-start",
		"end":     "place-self-end",
		"center":  "place-self-center",
		"stretch": "place-self-stretch",
	},
	"grid-auto-flow": {
		"row":          "grid-flow-row",
		"column":       "grid-flow-col",
		"dense":        "grid-flow-dense",
		"row dense":    "grid-flow-row-dense",
		"column dense": "grid-flow-col-dense",
	},
	"text-align": {
		"left":    "text-left",
		"center":  "text-center",
		"right":   "text-right",
		"justify": "text-justify",
		"start":   "text-start",
		"end":     "text-end",
	},
	"font-size": {
		"12px": "text-xs",
		"14px": "text-sm",
		"16px": "text-base",
		"18px": "text-lg",
		"20px": "text-xl",
		"24px": "text-2xl",
		"30px": "text-3xl",
		"36px": "text-4xl",
		"48px": "text-5xl",
		"60px": "text-6xl",
	},
	"font-weight": {
		"100":    "font-thin",
		"200":    "font-extralight",
		"300":    "font-light",
		"400":    "font-normal",
		"normal": "font-normal",
		"500":    "font-medium",
		"600":    "font-semibold",
		"700":    "font-bold",
		"bold":   "font-bold",
		"800":    "font-extrabold",
		"900":    "font-black",
	},
	"font-style": {
		"italic": "italic",
		"normal": "not-italic",
	},
	"letter-spacing": {
		"-0.05em":  "tracking-tighter",
		"-0.025em": "tracking-tight",
		"0":        "tracking-normal",
		"0.025em":  "tracking-wide",
		"0.05em":   "tracking-wider",
		"0.1em":    "tracking-widest",
	},
	"text-decoration": {
		"underline":    "underline",
		"overline":     "overline",
		"line-through": "line-through",
		"none":         "no-underline",
	},
	"word-break": {
		"normal":    "break-normal",
		"break-all": "break-all",
		"keep-all":  "break-keep",
	},
	"color": {
		"#000":         "text-black",
		"#000000":      "text-black",
		"black":        "text-black",
		"#fff":         "text-white",
		"#ffffff":      "text-white",
		"white":        "text-white",
		"transparent":  "text-transparent",
		"currentcolor": "text-current",
	},
	"background-color": {
		"#000":         "bg-black",
		"#000000":      "bg-black",
		"black":        "bg-black",
		"#fff":         "bg-white",
		"#ffffff":      "bg-white",
		"white":        "bg-white",
		"transparent":  "bg-transparent",
		"currentcolor": "bg-current",
	},
	"cursor": {
		"auto":        "cursor-auto",
		"default":     "cursor-default",
		"pointer":     "cursor-pointer",
		"wait":        "cursor-wait",
		"text":        "cursor-text",
		"move":        "cursor-move",
		"help":        "cursor-help",
		"not-allowed": "cursor-not-allowed",
		"none":        "cursor-none",
		"progress":    "cursor-progress",
		"crosshair":   "cursor-crosshair",
		"grab":        "cursor-grab",
		"grabbing":    "cursor-grabbing",
		"zoom-in":     "cursor-zoom-in",
		"zoom-out":    "cursor-zoom-out",
		"col-resize":  "cursor-col-resize",
		"row-resize":  "cursor-row-resize",
	},
	"pointer-events": {
		"none": "pointer-events-none",
		"auto": "pointer-events-auto",
	},
	"user-select": {
		"none": "select-none",
		"text": "select-text",
		"all":  "select-all",
		"auto": "select-auto",
	},
	"resize": {
		"none":       "resize-none",
		"both":       "resize",
		"vertical":   "resize-y",
		"horizontal": "resize-x",
	},
	"list-style-position": {
		"inside":  "list-inside",
		"outside": "list-outside",
	},
	"list-style-type": {
		"none":    "list-none",
		"disc":    "list-disc",
		"decimal": "list-decimal",
	},
	"list-style": {
		"none":    "list-none",
		"disc":    "list-disc",
		"decimal": "list-decimal",
	},
	"table-layout": {
		"auto":  "table-auto",
		"fixed": "table-fixed",
	},
	"border-collapse": {
		"collapse": "border-collapse",
		"separate": "border-separate",
	},
	"appearance": {
		"none": "appearance-none",
		"auto": "appearance-auto",
	},
	"mix-blend-mode": {
		"normal":      "mix-blend-normal",
		"multiply":    "mix-blend-multiply",
		"screen":      "mix-blend-screen",
		"overlay":     "mix-blend-overlay",
		"darken":      "mix-blend-darken",
		"lighten":     "mix-blend-lighten",
		"color-dodge": "mix-blend-color-dodge",
		"color-burn":  "mix-blend-color-burn",
		"difference":  "mix-blend-difference",
		"exclusion":   "mix-blend-exclusion",
	},
	"content": {
		"none": "content-none",
	},
	"-webkit-font-smoothing": {
		"antialiased": "antialiased",
		"auto":        "subpixel-antialiased",
	},
	"will-change": {
		"auto":      "will-change-auto",
		"scroll":    "will-change-scroll",
		"contents":  "will-change-contents",
		"transform": "will-change-transform",
	},
	"scroll-behavior": {
		"auto":   "scroll-auto",
		"smooth": "scroll-smooth",
	},
}

var unitPat = regexp.MustCompile(`(?i)(\d)(vmin|vmax|rem|px|em|%|vh|vw|pt|pc|in|cm|mm|ex|ch)`)

// normalizeValue returns the value forms tried against the static table:
// lower-cased, unit-stripped, space-joined with commas or dashes, and a hex
// color without its #.
func normalizeValue(value string) []string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	variants := []string{normalized}

	if stripped := unitPat.ReplaceAllString(normalized, "${1}"); stripped != normalized && stripped != "" {
		variants = append(variants, stripped)
	}
	if strings.ContainsAny(normalized, " \t\n") {
		fields := strings.Fields(normalized)
		variants = append(variants, strings.Join(fields, " "), strings.Join(fields, ","), strings.Join(fields, "-"))
	}
	if hex, ok := strings.CutPrefix(normalized, "#"); ok {
		variants = append(variants, hex)
	}
	return dedupe(variants)
}

// staticClass looks up every normalized form of value for property.
func staticClass(property, value string) (string, bool) {
	table, ok := staticClasses[property]
	if !ok {
		return "", false
	}
	for _, v := range normalizeValue(value) {
		if c, ok := table[v]; ok {
			return c, true
		}
	}
	return "", false
}

// Property lists offered as suggestions for unconvertible declarations.
var (
	suggestSpacingProperties = []string{
		"top", "right", "bottom", "left",
		"margin", "margin-top", "margin-right", "margin-bottom", "margin-left",
		"padding", "padding-top", "padding-right", "padding-bottom", "padding-left",
		"width", "height", "min-width", "min-height", "max-width", "max-height",
		"gap", "row-gap", "column-gap", "grid-gap", "grid-row-gap", "grid-column-gap",
	}
	suggestGridProperties = []string{
		"grid-template-columns", "grid-template-rows", "grid-template-areas",
		"grid-column", "grid-row", "grid-column-start", "grid-column-end",
		"grid-row-start", "grid-row-end", "grid-auto-columns", "grid-auto-rows",
		"grid-auto-flow", "justify-items", "align-items", "place-items",
		"justify-content", "align-content", "place-content",
	}
)

// AvailableProperties lists the properties the converter knows, sorted.
func AvailableProperties() []string {
	props := make([]string, 0, len(staticClasses)+len(suggestSpacingProperties)+len(suggestGridProperties)+1)
	for p := range staticClasses {
		props = append(props, p)
	}
	props = append(props, suggestSpacingProperties...)
	props = append(props, suggestGridProperties...)
	props = append(props, "aspect-ratio")
	slices.Sort(props)
	return slices.Compact(props)
}

// AvailableValues lists up to five static values for property, followed by
// spacing scale steps for spacing properties.
func AvailableValues(property string) []string {
	var values []string
	if table, ok := staticClasses[property]; ok {
		for v := range table {
			values = append(values, v)
		}
		slices.Sort(values)
		if len(values) > 5 {
			values = values[:5]
		}
	}
	if slices.Contains(suggestSpacingProperties, property) {
		values = append(values, spacingScaleKeys[:5]...)
	}
	return dedupe(values)
}
