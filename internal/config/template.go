package config

import "wispcss/internal/design"

// templatePlaceholder classifies one UtilityBuilder.CSS value. The spec's
// `css` template is kept as this first-class tag instead of a closure per
// entry, so Build can evaluate every declaration the same way regardless
// of which preset or user config produced it.
type templatePlaceholder int

const (
	placeholderLiteral    templatePlaceholder = iota
	placeholderValue                          // $0: the preprocessed candidate value
	placeholderModifier                       // $1: the stringified modifier
	placeholderValueColor                     // $0:color: color-mix(value, modifier%), or the bare value with no modifier
)

func classifyTemplate(raw string) templatePlaceholder {
	switch raw {
	case "$0":
		return placeholderValue
	case "$1":
		return placeholderModifier
	case "$0:color":
		return placeholderValueColor
	default:
		return placeholderLiteral
	}
}

// evalTemplate resolves one declaration's template string against a
// resolved candidate value and modifier string.
func evalTemplate(raw, val, modifier string) string {
	switch classifyTemplate(raw) {
	case placeholderValue:
		return val
	case placeholderModifier:
		return modifier
	case placeholderValueColor:
		if modifier == "" {
			return val
		}
		return design.ColorMix(val, modifier)
	default:
		return raw
	}
}
