// Package design is the design system registry: it maps
// utility keys to Utility definitions, variant keys to Variant
// definitions, and owns the merged theme.
package design

import (
	"fmt"

	"wispcss/internal/css"
	"wispcss/internal/order"
	"wispcss/internal/theme"
	"wispcss/internal/value"
)

// Group tags a utility whose full effect needs an auxiliary rule shared
// across every candidate using the group in one batch.
type Group int

const (
	GroupNone Group = iota
	GroupTransform
	GroupFilter
	GroupBackdropFilter
)

// SharedDecls returns the declarations synthesized onto the comma-joined
// selector of every member of the group.
func (g Group) SharedDecls() []css.Decl {
	switch g {
	case GroupTransform:
		return []css.Decl{{Name: "transform", Value: "var(--tw-rotate-x) var(--tw-rotate-y) var(--tw-rotate-z) var(--tw-scale-x) var(--tw-scale-y) var(--tw-skew-x) var(--tw-skew-y)"}}
	case GroupFilter:
		return []css.Decl{{Name: "filter", Value: "var(--tw-blur) var(--tw-brightness) var(--tw-contrast) var(--tw-grayscale) var(--tw-hue-rotate) var(--tw-invert) var(--tw-saturate) var(--tw-sepia)"}}
	case GroupBackdropFilter:
		return []css.Decl{{Name: "backdrop-filter", Value: "var(--tw-backdrop-blur) var(--tw-backdrop-brightness) var(--tw-backdrop-contrast) var(--tw-backdrop-grayscale) var(--tw-backdrop-hue-rotate) var(--tw-backdrop-invert) var(--tw-backdrop-opacity) var(--tw-backdrop-saturate) var(--tw-backdrop-sepia)"}}
	default:
		return nil
	}
}

// MetaData is passed to a Utility's Handler; it
// carries the preprocessed value, the already-stringified modifier, and
// whether the candidate asked for the negative form.
type MetaData struct {
	Value    theme.Value
	Modifier string
	Negative bool
}

// ColorMix builds the color-mix(...) expression utility handlers use to
// apply a numeric opacity modifier to a color value.
func ColorMix(base, modifierPercent string) string {
	return fmt.Sprintf("color-mix(in srgb, %s %s%%, transparent)", base, modifierPercent)
}

// Handler computes a CSS rule from preprocessed metadata and value. ok is
// false if the handler itself rejects the combination (e.g. an
// out-of-range value its validator could not express).
type Handler func(meta MetaData, val theme.Value) (css.Rule, bool)

// ExtraCSSFunc evaluates a utility's "extra CSS" hook — e.g. materializing
// a @keyframes block from the raw theme value.
type ExtraCSSFunc func(raw theme.Value) css.RuleList

// Utility is one entry registered under a utility key. A bare "static"
// utility (no value parsing, e.g. "flex") is represented by leaving
// ValueDef.AllowedValues and ValueDef.Validator both nil and a Handler
// that ignores its value argument.
type Utility struct {
	Key              string
	Handler          Handler
	ValueDef         value.Def
	ModifierDef      *value.Def
	SupportsNegative bool
	SupportsFraction bool
	Selector         string
	ExtraCSS         ExtraCSSFunc
	Ordering         order.Key
	Group            Group
}

// Static builds a trivial Utility: no value parsing, decls fixed at
// registration time.
func Static(key string, decls []css.Decl) *Utility {
	return &Utility{
		Key: key,
		Handler: func(MetaData, theme.Value) (css.Rule, bool) {
			return css.Rule{Selector: "&", Decls: append([]css.Decl(nil), decls...)}, true
		},
	}
}

// IsStatic reports whether u takes no value at all (neither named nor
// arbitrary), used by the utility engine to reject a value attached to a
// static utility instead of silently ignoring it.
func (u *Utility) IsStatic() bool {
	return u.ValueDef.AllowedValues == nil && u.ValueDef.Validator == nil
}
