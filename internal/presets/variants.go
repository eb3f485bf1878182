package presets

import (
	"strings"

	"wispcss/internal/candidate"
	"wispcss/internal/css"
	"wispcss/internal/design"
	"wispcss/internal/order"
)

// statePseudoPrefixes maps a variant key to the pseudo-class/attribute
// selector it appends, mirroring Tailwind's state-variant catalogue.
var statePseudoPrefixes = map[string]string{
	"hover":             ":hover",
	"focus":             ":focus",
	"active":            ":active",
	"visited":           ":visited",
	"checked":           ":checked",
	"disabled":          ":disabled",
	"enabled":           ":enabled",
	"read-only":         ":read-only",
	"read-write":        ":read-write",
	"focus-within":      ":focus-within",
	"focus-visible":     ":focus-visible",
	"autofill":          ":autofill",
	"placeholder-shown": ":placeholder-shown",
	"default":           ":default",
	"first":             ":first-child",
	"last":              ":last-child",
	"only":              ":only-child",
	"odd":               ":nth-child(odd)",
	"even":              ":nth-child(even)",
	"first-of-type":     ":first-of-type",
	"last-of-type":      ":last-of-type",
	"only-of-type":      ":only-of-type",
	"empty":             ":empty",
	"target":            ":target",
	"indeterminate":     ":indeterminate",
	"valid":             ":valid",
	"invalid":           ":invalid",
	"required":          ":required",
	"optional":          ":optional",
	"in-range":          ":in-range",
	"out-of-range":      ":out-of-range",
}

// statePseudoElements maps a variant key to the pseudo-element it
// produces; these differ from the table above because the generated
// selector must not be further combined with group/peer composables the
// same way (a ::before cannot be a :has() argument).
var statePseudoElements = map[string]string{
	"before":      "::before",
	"after":       "::after",
	"placeholder": "::placeholder",
	"first-letter": "::first-letter",
	"first-line":  "::first-line",
	"selection":   "::selection",
	"marker":      "::marker",
	"file":        "::file-selector-button",
}

// breakpointPx gives the pixel width (1rem == 16px) used for each
// responsive variant's Length ordering, so md/lg/... sort by increasing
// viewport width regardless of registration order.
var breakpointPx = map[string]float64{
	"sm":  640,
	"md":  768,
	"lg":  1024,
	"xl":  1280,
	"2xl": 1536,
}

// containerQueries maps a "@name" variant key to its @container prelude.
var containerQueries = map[string]string{
	"@xs":  "@container (min-width: 20rem)",
	"@sm":  "@container (min-width: 24rem)",
	"@md":  "@container (min-width: 28rem)",
	"@lg":  "@container (min-width: 32rem)",
	"@xl":  "@container (min-width: 36rem)",
	"@2xl": "@container (min-width: 42rem)",
	"@3xl": "@container (min-width: 48rem)",
}

// DefaultVariants installs the state, responsive, container, dark-mode,
// and composable (group/peer/has/not) variants.
func DefaultVariants(s *design.System) {
	for key, pseudo := range statePseudoPrefixes {
		s.AddVariant(&design.Variant{
			Key:      key,
			Kind:     design.KindStatic,
			Ordering: order.Insertion(s.NextInsertion()),
			Static:   design.StaticHandler{Kind: design.StaticSelector, Selectors: []string{"&" + pseudo}},
		})
	}
	for key, pseudo := range statePseudoElements {
		s.AddVariant(&design.Variant{
			Key:      key,
			Kind:     design.KindStatic,
			Ordering: order.Insertion(s.NextInsertion()),
			Static:   design.StaticHandler{Kind: design.StaticPseudoElement, Selectors: []string{"&" + pseudo}},
		})
	}

	s.AddVariant(&design.Variant{
		Key:      "print",
		Kind:     design.KindStatic,
		Ordering: order.Insertion(s.NextInsertion()),
		Static:   design.StaticHandler{Kind: design.StaticNested, Selectors: []string{"@media print"}},
	})

	for bp, px := range breakpointPx {
		prelude := "@media (min-width: " + bp + ")"
		if v, ok := s.Theme.Lookup("breakpoints", bp); ok {
			prelude = "@media (min-width: " + v.Plain + ")"
		}
		s.AddVariant(&design.Variant{
			Key:      bp,
			Kind:     design.KindStatic,
			Ordering: order.Length(px),
			Static:   design.StaticHandler{Kind: design.StaticNested, Selectors: []string{prelude}},
		})
	}

	for key, prelude := range containerQueries {
		s.AddVariant(&design.Variant{
			Key:      key,
			Kind:     design.KindStatic,
			Ordering: order.Insertion(s.NextInsertion()),
			Static:   design.StaticHandler{Kind: design.StaticNested, Selectors: []string{prelude}},
		})
	}

	s.AddVariant(&design.Variant{
		Key:      "dark",
		Kind:     design.KindDynamic,
		Ordering: order.Insertion(s.NextInsertion()),
		Dynamic: func(rules css.RuleList, _ *candidate.VariantCandidate) css.RuleList {
			if s.DarkMode == "selector" {
				return rewriteEach(rules, func(sel string) string {
					return strings.Replace(sel, "&", "&:where(.dark, .dark *)", 1)
				})
			}
			return css.RuleList{{Selector: "@media (prefers-color-scheme: dark)", Rules: []css.Rule(rules)}}
		},
	})

	registerComposable(s, "group", func(suffix string) string { return ".group" + suffix + " &" })
	registerComposable(s, "peer", func(suffix string) string { return ".peer" + suffix + " ~ &" })
	registerComposable(s, "has", func(suffix string) string { return "&:has(" + suffix + ")" })
	registerComposable(s, "not", func(suffix string) string { return "&:not(" + suffix + ")" })
}

// registerComposable wires a layer key whose job is to rewrite the
// ":suffix" a base state variant already appended to "&" into a
// different selector shape (ancestor combinator, :has(), :not()). suffix
// is everything applied after the leading '&' by whatever variant this
// one composes with.
func registerComposable(s *design.System, key string, rewrite func(suffix string) string) {
	s.AddVariant(&design.Variant{
		Key:  key,
		Kind: design.KindComposable,
		Composable: func(rules css.RuleList, _ *candidate.VariantCandidate) css.RuleList {
			return rewriteEach(rules, func(sel string) string {
				suffix := strings.TrimPrefix(sel, "&")
				return rewrite(suffix)
			})
		},
	})
}

func rewriteEach(rules css.RuleList, f func(string) string) css.RuleList {
	out := make(css.RuleList, len(rules))
	for i, r := range rules {
		out[i] = r.Clone()
		out[i].Selector = f(r.Selector)
	}
	return out
}
