// Package generator ties candidate parsing, the value model, and the
// utility/variant engines together into single-candidate generation and
// a batch Processor that applies the cache and ordering model across a
// whole content scan.
package generator

import (
	"wispcss/internal/candidate"
	"wispcss/internal/css"
	"wispcss/internal/design"
	"wispcss/internal/engine"
	"wispcss/internal/order"
)

// GeneratedUtility is one candidate's fully resolved, variant-wrapped,
// class-materialized rule tree plus the sort key it is ordered by.
type GeneratedUtility struct {
	Raw      string
	Rules    css.RuleList
	Extra    css.RuleList
	Tuple    order.Tuple
	Ordering order.Key
	Group    design.Group
}

// Generate resolves a single raw candidate string against sys. ok is
// false for any candidate that fails to lex, parse, or resolve against a
// registered utility/variant — the caller treats this as "not a class
// this system recognizes" rather than an error.
func Generate(sys *design.System, raw string) (GeneratedUtility, bool) {
	parsed, ok := candidate.Parse(raw, sys)
	if !ok {
		return GeneratedUtility{}, false
	}

	var result engine.UtilityResult
	if parsed.Utility.Arbitrary {
		result, ok = engine.ApplyArbitraryProperty(parsed.Utility)
	} else {
		ok = false
		for _, u := range sys.Utilities(parsed.Utility.Key) {
			if result, ok = engine.ApplyUtility(parsed.Utility, u); ok {
				break
			}
		}
	}
	if !ok {
		return GeneratedUtility{}, false
	}

	rules := css.RuleList{result.Rule}
	for i := len(parsed.Variants) - 1; i >= 0; i-- {
		rules, ok = engine.ApplyVariantChain(rules, sys, &parsed.Variants[i])
		if !ok {
			return GeneratedUtility{}, false
		}
	}

	tuple := make(order.Tuple, 0, len(parsed.Variants))
	for _, vc := range parsed.Variants {
		switch {
		case vc.Arbitrary:
			tuple = append(tuple, order.ArbitraryOrdering())
		default:
			if v, ok := sys.Variant(vc.Processor); ok {
				tuple = append(tuple, v.Ordering)
			} else {
				tuple = append(tuple, order.UnsetOrdering())
			}
		}
	}

	rules = engine.MaterializeClass(rules, raw)

	return GeneratedUtility{
		Raw:      raw,
		Rules:    rules,
		Extra:    result.Extra,
		Tuple:    tuple,
		Ordering: result.Ordering,
		Group:    result.Group,
	}, true
}
