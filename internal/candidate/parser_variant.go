package candidate

import "strings"

// ParseVariant runs the variant-entry state machine. It tries an exact
// match first, then peels composable prefixes left to right, then falls
// back to the fully-arbitrary "[...]" form.
func ParseVariant(raw string, tokens []Token, reg Registry) (VariantCandidate, bool) {
	if len(tokens) == 0 {
		return VariantCandidate{}, false
	}

	atPrefix := ""
	i := 0
	if tokens[0].Kind == TokenAt {
		atPrefix = "@"
		i = 1
	}

	var idents []string
	var arbitraryBlock *string
	modifier := Absent

	// Collect the ident run (and at most one arbitrary block) that forms
	// the key portion, stopping at the first Slash (modifier) or the end.
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Kind {
		case TokenIdent:
			idents = append(idents, tok.Text)
			i++
		case TokenArbitrary:
			v := tok.Text
			arbitraryBlock = &v
			i++
		case TokenSlash:
			i++
			goto modifierPhase
		default:
			return VariantCandidate{}, false
		}
	}
modifierPhase:
	if i < len(tokens) {
		tok := tokens[i]
		switch tok.Kind {
		case TokenIdent:
			// One or more idents joined by '-' form a named modifier; the
			// lexer already collapses "-"-joined idents into separate
			// Ident tokens, so gather the rest of the stream here.
			parts := []string{tok.Text}
			i++
			for i < len(tokens) && tokens[i].Kind == TokenIdent {
				parts = append(parts, tokens[i].Text)
				i++
			}
			modifier = Named(strings.Join(parts, "-"))
		case TokenArbitrary:
			modifier = Arbitrary(tok.Text)
			i++
		default:
			return VariantCandidate{}, false
		}
	}
	if i != len(tokens) {
		return VariantCandidate{}, false
	}

	// Fully-arbitrary ad-hoc static variant: no idents, no '@', an
	// arbitrary block for the key position.
	if atPrefix == "" && len(idents) == 0 && arbitraryBlock != nil {
		return VariantCandidate{
			Raw:               raw,
			Arbitrary:         true,
			ArbitrarySelector: *arbitraryBlock,
			Modifier:          modifier,
		}, true
	}
	if len(idents) == 0 {
		return VariantCandidate{}, false
	}

	// Exact match first (covers static variants and "@md"-style container
	// queries, where atPrefix + the joined idents form the whole key).
	full := atPrefix + strings.Join(idents, "-")
	if reg.HasVariant(full) {
		return VariantCandidate{Raw: raw, Processor: full, Modifier: modifier}, true
	}

	// Peel composable prefixes left to right, then resolve the remainder
	// as a single non-composable variant key.
	var layers []string
	rest := idents
	for len(rest) > 0 && reg.HasComposableVariant(rest[0]) {
		layers = append(layers, rest[0])
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return VariantCandidate{}, false
	}
	key := atPrefix + strings.Join(rest, "-")
	if !reg.HasVariant(key) {
		return VariantCandidate{}, false
	}
	return VariantCandidate{Raw: raw, Processor: key, Layers: layers, Modifier: modifier}, true
}
