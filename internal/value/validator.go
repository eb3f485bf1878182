package value

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
)

// Validator accepts or rejects a decoded arbitrary value string.
type Validator interface {
	Validate(s string) bool
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc func(string) bool

func (f ValidatorFunc) Validate(s string) bool { return f(s) }

// PropertyValidator round-trips a value through douceur's CSS declaration
// parser for a concrete property name. A value that douceur cannot parse
// as "<property>: <value>;" is rejected.
type PropertyValidator struct {
	Property string
}

func (p PropertyValidator) Validate(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	src := fmt.Sprintf("%s: %s;", p.Property, s)
	decls, err := parser.NewParser(src).ParseDeclarations()
	if err != nil || len(decls) != 1 {
		return false
	}
	return strings.TrimSpace(decls[0].Value) != ""
}

// tokenizeOK reports whether the gorilla/css scanner can consume the
// entire string without emitting an error token — the generic
// well-formedness check behind TypeAny and the function-notation
// (color, image, calc/var) checks in datatype.go.
func tokenizeOK(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	sc := scanner.New(s)
	for {
		tok := sc.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return true
		case scanner.TokenError:
			return false
		}
	}
}
