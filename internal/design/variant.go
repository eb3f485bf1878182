package design

import (
	"wispcss/internal/candidate"
	"wispcss/internal/css"
	"wispcss/internal/order"
)

// VariantKind discriminates the three handler shapes a variant can take.
type VariantKind int

const (
	KindStatic VariantKind = iota
	KindDynamic
	KindComposable
)

// StaticKind discriminates the four StaticHandler shapes.
type StaticKind int

const (
	StaticSelector StaticKind = iota
	StaticPseudoElement
	StaticNested
	StaticDuplicate
)

// StaticHandler is a selector/at-rule template. Selectors holds one entry
// for Selector/PseudoElement/Nested, and k entries for Duplicate.
type StaticHandler struct {
	Kind      StaticKind
	Selectors []string
}

// DynamicFunc and ComposableFunc are the callable variant shapes; both
// receive the current rule list and the matched VariantCandidate.
type DynamicFunc func(rules css.RuleList, vc *candidate.VariantCandidate) css.RuleList
type ComposableFunc func(rules css.RuleList, vc *candidate.VariantCandidate) css.RuleList

// Variant is one entry registered under a variant key.
type Variant struct {
	Key        string
	Kind       VariantKind
	Nested     bool
	Ordering   order.VariantOrdering
	Static     StaticHandler
	Dynamic    DynamicFunc
	Composable ComposableFunc
}
