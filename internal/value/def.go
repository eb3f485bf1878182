// Package value implements the value model: it
// preprocesses a candidate.Value (absent / named / arbitrary) against a
// ValueDef — a theme lookup and/or a CSS validator — producing a
// theme.Value or a silent failure.
package value

import (
	"wispcss/internal/candidate"
	"wispcss/internal/theme"
)

// Def binds the allowed named values and/or validator for one utility's
// value (or modifier).
type Def struct {
	AllowedValues *theme.Map
	Validator     Validator
}

// Preprocess decodes-then-validates an arbitrary value, looks up a named
// value in the theme, or falls back to a "DEFAULT" lookup for an absent
// value. ok is false for any validation/lookup failure.
func Preprocess(def Def, v candidate.Value) (theme.Value, bool) {
	switch v.Kind {
	case candidate.ValueArbitrary:
		decoded := candidate.DecodeArbitrary(v.Raw)
		if def.Validator != nil && !def.Validator.Validate(decoded) {
			return theme.Value{}, false
		}
		return theme.Plain(decoded), true
	case candidate.ValueNamed:
		if def.AllowedValues == nil {
			return theme.Value{}, false
		}
		return def.AllowedValues.Get(v.Raw)
	default: // candidate.ValueAbsent
		if def.AllowedValues == nil {
			return theme.Value{}, false
		}
		return def.AllowedValues.Default()
	}
}
