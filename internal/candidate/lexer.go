package candidate

import "strings"

// isIdentByte reports whether b belongs to an ident run: [a-z0-9%.].
func isIdentByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '%' || b == '.'
}

// Lex tokenizes a raw candidate string. A trailing '-' inside an ident run
// is consumed as a separator only and never appears in a Token's Text.
// Unbalanced brackets or a byte outside the recognized alphabet fails the
// candidate (ok == false).
func Lex(s string) (tokens []Token, ok bool) {
	i, n := 0, len(s)
	for i < n {
		c := s[i]
		switch {
		case isIdentByte(c):
			start := i
			for i < n && isIdentByte(s[i]) {
				i++
			}
			tokens = append(tokens, Token{Kind: TokenIdent, Text: s[start:i]})
			// A run-terminating '-' is a separator: skip exactly one.
			if i < n && s[i] == '-' {
				i++
			}
		case c == '-':
			tokens = append(tokens, Token{Kind: TokenMinus, Text: "-"})
			i++
		case c == '[':
			depth := 1
			start := i + 1
			j := i + 1
			for j < n && depth > 0 {
				switch s[j] {
				case '[':
					depth++
				case ']':
					depth--
				}
				j++
			}
			if depth != 0 {
				return nil, false
			}
			inner := s[start : j-1]
			tokens = append(tokens, Token{Kind: TokenArbitrary, Text: inner})
			i = j
		case c == ']':
			// An unmatched closing bracket never reached via the '[' branch.
			return nil, false
		case c == '/':
			tokens = append(tokens, Token{Kind: TokenSlash, Text: "/"})
			i++
		case c == '!':
			tokens = append(tokens, Token{Kind: TokenBang, Text: "!"})
			i++
		case c == '@':
			tokens = append(tokens, Token{Kind: TokenAt, Text: "@"})
			i++
		default:
			return nil, false
		}
	}
	return tokens, true
}

// decodeArbitrary implements §4.C's arbitrary-value escaping: '_' becomes a
// space, and '\_' is a literal underscore.
func decodeArbitrary(v string) string {
	if !strings.ContainsAny(v, "_\\") {
		return v
	}
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		if v[i] == '\\' && i+1 < len(v) && v[i+1] == '_' {
			b.WriteByte('_')
			i++
			continue
		}
		if v[i] == '_' {
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(v[i])
	}
	return b.String()
}

// DecodeArbitrary is the exported form used by the value model (§4.C).
func DecodeArbitrary(v string) string { return decodeArbitrary(v) }
