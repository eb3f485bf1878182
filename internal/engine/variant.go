package engine

import (
	"strings"

	"wispcss/internal/candidate"
	"wispcss/internal/css"
	"wispcss/internal/design"
)

// ApplyVariantChain resolves the base variant (or the fully-arbitrary
// selector form) plus every composable layer on vc, folding composables in
// reverse so the outermost-written layer wraps last.
func ApplyVariantChain(rules css.RuleList, sys *design.System, vc *candidate.VariantCandidate) (css.RuleList, bool) {
	if vc.Arbitrary {
		rules = applyArbitrarySelector(rules, vc.ArbitrarySelector)
	} else if vc.Processor != "" {
		v, ok := sys.Variant(vc.Processor)
		if !ok {
			return nil, false
		}
		rules = applyVariant(rules, v, vc)
	}
	for i := len(vc.Layers) - 1; i >= 0; i-- {
		c, ok := sys.Composable(vc.Layers[i])
		if !ok {
			return nil, false
		}
		rules = applyVariant(rules, c, vc)
	}
	return rules, true
}

func applyVariant(rules css.RuleList, v *design.Variant, vc *candidate.VariantCandidate) css.RuleList {
	switch v.Kind {
	case design.KindDynamic:
		if v.Dynamic != nil {
			return v.Dynamic(rules, vc)
		}
		return rules
	case design.KindComposable:
		if v.Composable != nil {
			return v.Composable(rules, vc)
		}
		return rules
	default:
		return applyStatic(rules, v.Static)
	}
}

func applyStatic(rules css.RuleList, h design.StaticHandler) css.RuleList {
	switch h.Kind {
	case design.StaticSelector, design.StaticPseudoElement:
		if len(h.Selectors) == 0 {
			return rules
		}
		out := make(css.RuleList, len(rules))
		for i, r := range rules {
			out[i] = rewriteSelector(r, h.Selectors[0])
		}
		return out
	case design.StaticNested:
		if len(h.Selectors) == 0 {
			return rules
		}
		return css.RuleList{{Selector: h.Selectors[0], Rules: []css.Rule(rules)}}
	case design.StaticDuplicate:
		out := make(css.RuleList, 0, len(rules)*len(h.Selectors))
		for _, tmpl := range h.Selectors {
			for _, r := range rules {
				out = append(out, rewriteSelector(r, tmpl))
			}
		}
		return out
	default:
		return rules
	}
}

func rewriteSelector(r css.Rule, tmpl string) css.Rule {
	out := r.Clone()
	out.Selector = strings.ReplaceAll(tmpl, "&", r.Selector)
	return out
}

func applyArbitrarySelector(rules css.RuleList, sel string) css.RuleList {
	out := make(css.RuleList, len(rules))
	for i, r := range rules {
		out[i] = rewriteSelector(r, sel)
	}
	return out
}

// MaterializeClass replaces every remaining '&' placeholder in a rule tree
// with the escaped class selector for the candidate's raw text, producing
// the final emittable selector.
func MaterializeClass(rules css.RuleList, raw string) css.RuleList {
	cls := "." + css.EscapeClassName(raw)
	out := make(css.RuleList, len(rules))
	for i, r := range rules {
		out[i] = materializeRule(r, cls)
	}
	return out
}

func materializeRule(r css.Rule, cls string) css.Rule {
	out := r.Clone()
	out.Selector = strings.ReplaceAll(out.Selector, "&", cls)
	for i, nested := range out.Rules {
		out.Rules[i] = materializeRule(nested, cls)
	}
	return out
}
