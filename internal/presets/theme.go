// Package presets supplies the default theme and the static/dynamic
// utility and variant registrations layered onto a fresh design.System.
package presets

import (
	"fmt"

	"wispcss/internal/css"
	"wispcss/internal/design"
	"wispcss/internal/theme"
)

// spacingSteps lists the Tailwind spacing steps, each expressed as a
// multiplier of the base --spacing unit (0.25rem) rather than fixed rem
// literals, so a consumer's `--spacing` override fans out everywhere.
var spacingSteps = []string{
	"0", "px", "0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4", "5", "6", "7",
	"8", "9", "10", "11", "12", "14", "16", "20", "24", "28", "32", "36",
	"40", "44", "48", "52", "56", "60", "64", "72", "80", "96",
}

func spacingValue(step string) string {
	if step == "px" {
		return "1px"
	}
	if step == "0" {
		return "0px"
	}
	return fmt.Sprintf("calc(var(--spacing) * %s)", step)
}

// baseColorNames is a representative slice of the Tailwind palette;
// semanticColors below adds the daisyUI semantic roles. Every color entry resolves through a CSS variable so
// a config's theme override only needs to touch the variable, not every
// utility that references it.
var baseColorNames = []string{
	"slate", "gray", "zinc", "neutral", "stone", "red", "orange", "amber",
	"yellow", "lime", "green", "emerald", "teal", "cyan", "sky", "blue",
	"indigo", "violet", "purple", "fuchsia", "pink", "rose",
}
var shades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

var semanticColors = []string{
	"primary", "primary-content", "secondary", "secondary-content",
	"accent", "accent-content", "neutral-content", "base-100", "base-200",
	"base-300", "base-content", "info", "info-content", "success",
	"success-content", "warning", "warning-content", "error", "error-content",
}

// DefaultTheme is the Preset installing the baseline design tokens:
// spacing scale, color palette, breakpoints, font sizes/families, and a
// keyframes map (spin, ping, pulse, bounce) that no default utility reads.
func DefaultTheme(s *design.System) {
	spacing := s.Theme.Map("spacing")
	for _, step := range spacingSteps {
		spacing.Set(step, theme.Plain(spacingValue(step)))
	}

	colors := s.Theme.Map("colors")
	colors.Set("transparent", theme.Plain("transparent"))
	colors.Set("current", theme.Plain("currentcolor"))
	colors.Set("black", theme.Plain("var(--color-black)"))
	colors.Set("white", theme.Plain("var(--color-white)"))
	for _, name := range baseColorNames {
		for _, shade := range shades {
			key := name + "-" + shade
			colors.Set(key, theme.Plain(fmt.Sprintf("var(--color-%s)", key)))
		}
	}
	for _, name := range semanticColors {
		colors.Set(name, theme.Plain(fmt.Sprintf("var(--color-%s)", name)))
	}

	breakpoints := s.Theme.Map("breakpoints")
	breakpoints.Set("sm", theme.Plain("40rem"))
	breakpoints.Set("md", theme.Plain("48rem"))
	breakpoints.Set("lg", theme.Plain("64rem"))
	breakpoints.Set("xl", theme.Plain("80rem"))
	breakpoints.Set("2xl", theme.Plain("96rem"))

	fontSize := s.Theme.Map("fontSize")
	fontSize.Set("xs", theme.Value{Kind: theme.KindFontSize, FontSize: theme.FontSize{Size: "0.75rem", LineHeight: "1rem"}})
	fontSize.Set("sm", theme.Value{Kind: theme.KindFontSize, FontSize: theme.FontSize{Size: "0.875rem", LineHeight: "1.25rem"}})
	fontSize.Set("base", theme.Value{Kind: theme.KindFontSize, FontSize: theme.FontSize{Size: "1rem", LineHeight: "1.5rem"}})
	fontSize.Set("lg", theme.Value{Kind: theme.KindFontSize, FontSize: theme.FontSize{Size: "1.125rem", LineHeight: "1.75rem"}})
	fontSize.Set("xl", theme.Value{Kind: theme.KindFontSize, FontSize: theme.FontSize{Size: "1.25rem", LineHeight: "1.75rem"}})
	fontSize.Set("2xl", theme.Value{Kind: theme.KindFontSize, FontSize: theme.FontSize{Size: "1.5rem", LineHeight: "2rem"}})
	fontSize.Set("3xl", theme.Value{Kind: theme.KindFontSize, FontSize: theme.FontSize{Size: "1.875rem", LineHeight: "2.25rem"}})
	fontSize.Set("4xl", theme.Value{Kind: theme.KindFontSize, FontSize: theme.FontSize{Size: "2.25rem", LineHeight: "2.5rem"}})

	fontFamily := s.Theme.Map("fontFamily")
	fontFamily.Set("sans", theme.Value{Kind: theme.KindFontFamily, FontFamily: theme.FontFamily{
		Primary: "ui-sans-serif", Fallbacks: []string{"system-ui", "sans-serif"},
	}})
	fontFamily.Set("serif", theme.Value{Kind: theme.KindFontFamily, FontFamily: theme.FontFamily{
		Primary: "ui-serif", Fallbacks: []string{"Georgia", "serif"},
	}})
	fontFamily.Set("mono", theme.Value{Kind: theme.KindFontFamily, FontFamily: theme.FontFamily{
		Primary: "ui-monospace", Fallbacks: []string{"SFMono-Regular", "monospace"},
	}})

	radius := s.Theme.Map("radius")
	radius.Set("none", theme.Plain("0px"))
	radius.Set("sm", theme.Plain("0.25rem"))
	radius.Set("DEFAULT", theme.Plain("0.25rem"))
	radius.Set("md", theme.Plain("0.375rem"))
	radius.Set("lg", theme.Plain("0.5rem"))
	radius.Set("xl", theme.Plain("0.75rem"))
	radius.Set("2xl", theme.Plain("1rem"))
	radius.Set("3xl", theme.Plain("1.5rem"))
	radius.Set("full", theme.Plain("9999px"))

	opacity := s.Theme.Map("opacity")
	for _, step := range []string{"0", "5", "10", "20", "25", "30", "40", "50", "60", "70", "75", "80", "90", "95", "100"} {
		opacity.Set(step, theme.Plain(step))
	}

	rotate := s.Theme.Map("rotate")
	for _, step := range []string{"0", "1", "2", "3", "6", "12", "45", "90", "180"} {
		rotate.Set(step, theme.Plain(step+"deg"))
	}

	scale := s.Theme.Map("scale")
	for _, step := range []string{"0", "50", "75", "90", "95", "100", "105", "110", "125", "150"} {
		scale.Set(step, theme.Plain(step))
	}

	keyframes := s.Theme.Map("keyframes")
	keyframes.Set("spin", css.RuleList{
		{Selector: "from", Decls: []css.Decl{{Name: "transform", Value: "rotate(0deg)"}}},
		{Selector: "to", Decls: []css.Decl{{Name: "transform", Value: "rotate(360deg)"}}},
	})
	keyframes.Set("ping", css.RuleList{
		{Selector: "75%, 100%", Decls: []css.Decl{{Name: "transform", Value: "scale(2)"}, {Name: "opacity", Value: "0"}}},
	})
	keyframes.Set("pulse", css.RuleList{
		{Selector: "50%", Decls: []css.Decl{{Name: "opacity", Value: "0.5"}}},
	})
	keyframes.Set("bounce", css.RuleList{
		{Selector: "0%, 100%", Decls: []css.Decl{{Name: "transform", Value: "translateY(-25%)"}, {Name: "animation-timing-function", Value: "cubic-bezier(0.8,0,1,1)"}}},
		{Selector: "50%", Decls: []css.Decl{{Name: "transform", Value: "translateY(0)"}, {Name: "animation-timing-function", Value: "cubic-bezier(0,0,0.2,1)"}}},
	})
}
