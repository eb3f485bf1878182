package design

import "wispcss/internal/theme"

// System is the Design System Registry: utility-key →
// []Utility (first whose value preprocessing succeeds wins), variant-key
// → Variant, and the merged Theme. It implements candidate.Registry
// structurally so the parser can query it without a reverse import.
type System struct {
	utilities   map[string][]*Utility
	variants    map[string]*Variant
	composables map[string]*Variant

	Theme    *theme.Theme
	DarkMode string // "media" | "selector"

	insertionCounter int
}

func NewSystem() *System {
	return &System{
		utilities:   make(map[string][]*Utility),
		variants:    make(map[string]*Variant),
		composables: make(map[string]*Variant),
		Theme:       theme.NewTheme(),
		DarkMode:    "media",
	}
}

// AddStatic registers a trivial static utility under key, overriding
// whatever key u was built with.
func (s *System) AddStatic(key string, u *Utility) {
	u.Key = key
	s.AddUtility(u)
}

// AddUtility registers a dynamic utility definition. Multiple utilities
// may share a key; lookup tries them in registration order.
func (s *System) AddUtility(u *Utility) {
	s.utilities[u.Key] = append(s.utilities[u.Key], u)
}

// NextInsertion returns a monotone counter for Insertion(n) variant
// orderings, assigned at registration time.
func (s *System) NextInsertion() int {
	s.insertionCounter++
	return s.insertionCounter
}

// AddVariant registers a variant under its key, filing composables into a
// separate bucket so parsing can distinguish them without inspecting Kind
// on every lookup.
func (s *System) AddVariant(v *Variant) {
	if v.Kind == KindComposable {
		s.composables[v.Key] = v
	} else {
		s.variants[v.Key] = v
	}
}

// --- candidate.Registry ---

func (s *System) HasUtilityPrefix(key string) bool {
	_, ok := s.utilities[key]
	return ok
}

func (s *System) HasVariant(key string) bool {
	_, ok := s.variants[key]
	return ok
}

func (s *System) HasComposableVariant(key string) bool {
	_, ok := s.composables[key]
	return ok
}

// --- lookups used by the engine ---

func (s *System) Utilities(key string) []*Utility { return s.utilities[key] }

func (s *System) Variant(key string) (*Variant, bool) {
	v, ok := s.variants[key]
	return v, ok
}

func (s *System) Composable(key string) (*Variant, bool) {
	v, ok := s.composables[key]
	return v, ok
}
