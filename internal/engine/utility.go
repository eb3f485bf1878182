// Package engine turns a matched design.Utility or design.Variant plus a
// parsed candidate into CSS AST fragments.
package engine

import (
	"fmt"

	"wispcss/internal/candidate"
	"wispcss/internal/css"
	"wispcss/internal/design"
	"wispcss/internal/order"
	"wispcss/internal/theme"
	"wispcss/internal/value"
)

// UtilityResult is the outcome of applying one matched utility to a
// candidate.
type UtilityResult struct {
	Rule     css.Rule
	Ordering order.Key
	Group    design.Group
	Extra    css.RuleList
}

// ApplyUtility runs the §4.D algorithm. ok is false for any step that
// silently rejects the candidate (unsupported negative, failed value
// preprocessing, handler refusal).
func ApplyUtility(cand candidate.UtilityCandidate, u *design.Utility) (UtilityResult, bool) {
	if cand.Negative && !u.SupportsNegative {
		return UtilityResult{}, false
	}
	if u.IsStatic() && cand.Value.Kind != candidate.ValueAbsent {
		return UtilityResult{}, false
	}

	// A static utility has no value definition to preprocess against; its
	// handler ignores the value argument.
	var val theme.Value
	if !u.IsStatic() {
		var ok bool
		val, ok = value.Preprocess(u.ValueDef, cand.Value)
		if !ok {
			return UtilityResult{}, false
		}
	}

	if cand.Value.Kind == candidate.ValueNamed && cand.Modifier.Kind == candidate.ValueNamed && u.SupportsFraction {
		val = theme.Plain(fmt.Sprintf("calc(%s/%s * 100%%)", cand.Value.Raw, cand.Modifier.Raw))
	}
	if cand.Negative {
		val = theme.Plain(fmt.Sprintf("calc(%s * -1)", themeValueString(val)))
	}

	meta := design.MetaData{Value: val, Negative: cand.Negative}
	if u.ModifierDef != nil {
		if !cand.Modifier.IsAbsent() {
			modVal, ok := value.Preprocess(*u.ModifierDef, cand.Modifier)
			if !ok {
				return UtilityResult{}, false
			}
			meta.Modifier = themeValueString(modVal)
		}
	} else if !cand.Modifier.IsAbsent() {
		meta.Modifier = cand.Modifier.Raw
	}

	rule, ok := u.Handler(meta, val)
	if !ok {
		return UtilityResult{}, false
	}
	if u.Selector != "" {
		rule.Selector = u.Selector
	}
	if cand.Important {
		rule = markImportant(rule)
	}

	var extra css.RuleList
	if u.ExtraCSS != nil {
		extra = u.ExtraCSS(val)
	}

	return UtilityResult{Rule: rule, Ordering: u.Ordering, Group: u.Group, Extra: extra}, true
}

// ApplyArbitraryProperty handles the §4.B "full-arbitrary shortcut":
// `[prop:value]` produces a one-declaration rule directly, bypassing
// utility lookup entirely.
func ApplyArbitraryProperty(cand candidate.UtilityCandidate) (UtilityResult, bool) {
	if !cand.Arbitrary || cand.Value.Kind != candidate.ValueArbitrary {
		return UtilityResult{}, false
	}
	decoded := candidate.DecodeArbitrary(cand.Value.Raw)
	if decoded == "" {
		return UtilityResult{}, false
	}
	rule := css.Rule{Selector: "&", Decls: []css.Decl{{Name: cand.Key, Value: decoded}}}
	if cand.Important {
		rule = markImportant(rule)
	}
	return UtilityResult{Rule: rule, Ordering: order.Disorder}, true
}

func themeValueString(v theme.Value) string {
	switch v.Kind {
	case theme.KindPlain:
		return v.Plain
	case theme.KindFontSize:
		return v.FontSize.Size
	default:
		return v.Plain
	}
}

func markImportant(r css.Rule) css.Rule {
	out := r
	out.Decls = append([]css.Decl(nil), r.Decls...)
	for i, d := range out.Decls {
		out.Decls[i] = css.Decl{Name: d.Name, Value: d.Value + " !important"}
	}
	return out
}
