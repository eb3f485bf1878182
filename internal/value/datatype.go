package value

import (
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DataType enumerates the CSS primitive types a DataTypeValidator can
// check.
type DataType int

const (
	TypeColor DataType = iota
	TypeLength
	TypeLengthPercentage
	TypePercentage
	TypeNumber
	TypeIdent
	TypeImage
	TypeTime
	TypeAngle
	TypeAny
)

// DataTypeValidator validates a decoded arbitrary value against one of the
// CSS primitive data types.
type DataTypeValidator struct {
	Type DataType
}

var (
	reLength     = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)(px|rem|em|vh|vw|vmin|vmax|ch|ex|cm|mm|in|pt|pc|q|svh|lvh|dvh|svw|lvw|dvw)$|^0$`)
	rePercentage = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)%$`)
	reNumber     = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)
	reTime       = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)(s|ms)$`)
	reAngle      = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)(deg|grad|rad|turn)$`)
	reIdent      = regexp.MustCompile(`^-?[a-zA-Z_][a-zA-Z0-9_-]*$`)

	cssWideKeywords = map[string]bool{
		"inherit": true, "initial": true, "unset": true, "revert": true, "revert-layer": true,
	}
	namedColors = map[string]bool{
		"transparent": true, "currentcolor": true, "black": true, "white": true, "red": true,
		"green": true, "blue": true, "gray": true, "grey": true, "orange": true, "yellow": true,
		"purple": true, "pink": true, "brown": true,
	}
)

func (v DataTypeValidator) Validate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if cssWideKeywords[strings.ToLower(s)] {
		return true
	}

	switch v.Type {
	case TypeColor:
		return validateColor(s)
	case TypeLength:
		return s == "0" || reLength.MatchString(s)
	case TypeLengthPercentage:
		return s == "0" || reLength.MatchString(s) || rePercentage.MatchString(s) || isCalcOrVar(s)
	case TypePercentage:
		return rePercentage.MatchString(s)
	case TypeNumber:
		return reNumber.MatchString(s)
	case TypeIdent:
		return reIdent.MatchString(s)
	case TypeImage:
		return isImageFunction(s) || isCalcOrVar(s)
	case TypeTime:
		return reTime.MatchString(s)
	case TypeAngle:
		return reAngle.MatchString(s)
	default: // TypeAny
		return tokenizeOK(s)
	}
}

// validateColor accepts hex colors (via go-colorful, which also rejects
// malformed digit counts), the small named-color/keyword table, and the
// common functional color notations, whose internal argument grammar is
// left to the browser — we only need to reject obviously-wrong strings.
func validateColor(s string) bool {
	lower := strings.ToLower(s)
	if namedColors[lower] {
		return true
	}
	if strings.HasPrefix(s, "#") {
		_, err := colorful.Hex(s)
		return err == nil
	}
	for _, fn := range []string{"rgb(", "rgba(", "hsl(", "hsla(", "hwb(", "lab(", "lch(", "oklab(", "oklch(", "color-mix(", "color("} {
		if strings.HasPrefix(lower, fn) && strings.HasSuffix(s, ")") {
			return tokenizeOK(s)
		}
	}
	return isCalcOrVar(s)
}

func isCalcOrVar(s string) bool {
	lower := strings.ToLower(s)
	return (strings.HasPrefix(lower, "var(") || strings.HasPrefix(lower, "calc(") ||
		strings.HasPrefix(lower, "clamp(") || strings.HasPrefix(lower, "min(") || strings.HasPrefix(lower, "max(")) &&
		strings.HasSuffix(s, ")") && tokenizeOK(s)
}

func isImageFunction(s string) bool {
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "url(") && strings.HasSuffix(s, ")") {
		return true
	}
	for _, fn := range []string{"linear-gradient(", "radial-gradient(", "conic-gradient(", "repeating-linear-gradient(", "repeating-radial-gradient(", "image-set("} {
		if strings.HasPrefix(lower, fn) && strings.HasSuffix(s, ")") {
			return tokenizeOK(s)
		}
	}
	return false
}
