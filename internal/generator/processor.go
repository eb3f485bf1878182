package generator

import (
	"sort"

	"wispcss/internal/cache"
	"wispcss/internal/css"
	"wispcss/internal/design"
)

// Processor runs the batch generation algorithm: partition the batch
// into already-seen and new candidates, generate and sort only the new
// ones, graft grouped utilities onto their shared rule, and hand back
// the serialized stylesheet for this run.
type Processor struct {
	System *design.System
	Cache  *cache.GeneratorCache
	Writer css.WriterConfig

	sorted []GeneratedUtility // Cached-mode running sorted set
}

// NewProcessor builds a Processor against sys using cc for memoization
// (pass cache.NewOneShot() for a single build with no reuse).
func NewProcessor(sys *design.System, cc *cache.GeneratorCache) *Processor {
	return &Processor{System: sys, Cache: cc, Writer: css.DefaultWriterConfig}
}

// Run resolves every candidate in raws, skipping ones this cache has
// already resolved in a prior call, and returns the CSS text for the
// utilities newly discovered plus (in Cached mode) the full running
// stylesheet. Unrecognized candidates are silently dropped, matching the
// "partial match" rule for scanned content that contains non-utility
// class names.
func (p *Processor) Run(raws []string) string {
	var fresh []GeneratedUtility

	for _, raw := range raws {
		if _, seen := p.Cache.Seen(raw); seen {
			// Already resolved (or already known-invalid) by a prior Run;
			// a valid one already lives in p.sorted.
			continue
		}
		gu, ok := Generate(p.System, raw)
		if !ok {
			p.Cache.Remember(raw, "", "", false)
			continue
		}
		fresh = append(fresh, gu)
	}

	fresh = mergeGroups(fresh)

	sort.SliceStable(fresh, func(i, j int) bool {
		return lessGenerated(fresh[i], fresh[j])
	})

	switch p.Cache.State() {
	case cache.OneShot:
		return p.render(fresh)
	case cache.Cached:
		p.sorted = mergeSorted(p.sorted, fresh)
		for _, gu := range fresh {
			p.Cache.Remember(gu.Raw, css.WriteOne(combinedRule(gu), p.Writer), renderExtra(gu, p.Writer), true)
		}
		return p.render(p.sorted)
	default: // FirstRun
		for _, gu := range fresh {
			p.Cache.Remember(gu.Raw, css.WriteOne(combinedRule(gu), p.Writer), renderExtra(gu, p.Writer), true)
		}
		p.sorted = fresh
		p.Cache.Advance()
		return p.render(fresh)
	}
}

// Stylesheet renders the full running set of generated utilities this
// Processor has accumulated across every Run call so far (Cached/FirstRun
// modes only; OneShot keeps no running state).
func (p *Processor) Stylesheet() string {
	return p.render(p.sorted)
}

func (p *Processor) render(batch []GeneratedUtility) string {
	var rules css.RuleList
	var extras css.RuleList
	for _, gu := range batch {
		rules = append(rules, gu.Rules...)
		extras = append(extras, gu.Extra...)
	}
	out := css.Write(rules, p.Writer)
	out += css.Write(extras, p.Writer)
	return out
}

func combinedRule(gu GeneratedUtility) css.Rule {
	if len(gu.Rules) == 1 {
		return gu.Rules[0]
	}
	return css.Rule{Rules: []css.Rule(gu.Rules)}
}

func renderExtra(gu GeneratedUtility, cfg css.WriterConfig) string {
	if len(gu.Extra) == 0 {
		return ""
	}
	return css.Write(gu.Extra, cfg)
}

func lessGenerated(a, b GeneratedUtility) bool {
	if !a.Tuple.Equal(b.Tuple) {
		return a.Tuple.Less(b.Tuple)
	}
	if a.Ordering != b.Ordering {
		return a.Ordering < b.Ordering
	}
	return a.Raw < b.Raw
}

// mergeSorted inserts newly-sorted items into an already-sorted running
// set without re-sorting the whole thing, used in Cached mode.
func mergeSorted(base, fresh []GeneratedUtility) []GeneratedUtility {
	if len(fresh) == 0 {
		return base
	}
	out := make([]GeneratedUtility, 0, len(base)+len(fresh))
	i, j := 0, 0
	for i < len(base) && j < len(fresh) {
		if lessGenerated(base[i], fresh[j]) {
			out = append(out, base[i])
			i++
		} else {
			out = append(out, fresh[j])
			j++
		}
	}
	out = append(out, base[i:]...)
	out = append(out, fresh[j:]...)
	return out
}

// mergeGroups synthesizes one shared rule per design.Group present in
// batch (Transform/Filter/BackdropFilter), prepended so the batch's
// individual custom-property declarations cascade after it, then
// attaches the shared selector across every member.
func mergeGroups(batch []GeneratedUtility) []GeneratedUtility {
	members := make(map[design.Group][]int)
	for i, gu := range batch {
		if gu.Group != design.GroupNone {
			members[gu.Group] = append(members[gu.Group], i)
		}
	}
	for group, idxs := range members {
		if len(idxs) == 0 {
			continue
		}
		var selectors []string
		for _, i := range idxs {
			for _, r := range batch[i].Rules {
				selectors = append(selectors, r.Selector)
			}
		}
		shared := css.Rule{Decls: group.SharedDecls()}
		shared.Selector = joinSelectors(selectors)
		batch[idxs[0]].Rules = append(css.RuleList{shared}, batch[idxs[0]].Rules...)
	}
	return batch
}

func joinSelectors(sels []string) string {
	out := ""
	for i, s := range sels {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
