package candidate

// Parsed is the fully parsed shape of one candidate string: zero or more
// variants (source order, outermost/leftmost first) plus the terminal
// utility. This is what the rest of the pipeline (value preprocessing,
// utility/variant engines) consumes.
type Parsed struct {
	Raw      string
	Variants []VariantCandidate
	Utility  UtilityCandidate
}

// Parse splits raw on top-level ':' (colons inside "[...]" are not variant
// separators), then parses every leading segment as a variant and the
// final segment as the utility.
func Parse(raw string, reg Registry) (Parsed, bool) {
	segments := splitTopLevel(raw, ':')
	if len(segments) == 0 {
		return Parsed{}, false
	}

	utilSeg := segments[len(segments)-1]
	utilTokens, ok := Lex(utilSeg)
	if !ok {
		return Parsed{}, false
	}
	util, ok := ParseUtility(utilSeg, utilTokens, reg)
	if !ok {
		return Parsed{}, false
	}

	variants := make([]VariantCandidate, 0, len(segments)-1)
	for _, seg := range segments[:len(segments)-1] {
		toks, ok := Lex(seg)
		if !ok {
			return Parsed{}, false
		}
		vc, ok := ParseVariant(seg, toks, reg)
		if !ok {
			return Parsed{}, false
		}
		variants = append(variants, vc)
	}

	return Parsed{Raw: raw, Variants: variants, Utility: util}, true
}

// splitTopLevel splits s on sep, ignoring any sep byte that occurs inside a
// balanced "[...]" span.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		default:
			if s[i] == sep && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
