package candidate

import "testing"

type fakeRegistry struct {
	utilities   map[string]bool
	variants    map[string]bool
	composables map[string]bool
}

func (f fakeRegistry) HasUtilityPrefix(key string) bool     { return f.utilities[key] }
func (f fakeRegistry) HasVariant(key string) bool           { return f.variants[key] }
func (f fakeRegistry) HasComposableVariant(key string) bool { return f.composables[key] }

func newFakeRegistry() fakeRegistry {
	return fakeRegistry{
		utilities:   map[string]bool{"bg": true, "text": true, "flex": true, "m": true},
		variants:    map[string]bool{"hover": true, "md": true},
		composables: map[string]bool{"group": true},
	}
}

func TestParseSplitsVariantsFromUtility(t *testing.T) {
	reg := newFakeRegistry()
	p, ok := Parse("md:hover:bg-blue-500", reg)
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if len(p.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(p.Variants))
	}
	if p.Variants[0].Raw != "md" || p.Variants[1].Raw != "hover" {
		t.Fatalf("expected variants in source order [md hover], got %+v", p.Variants)
	}
	if p.Utility.Key != "bg" {
		t.Fatalf("expected utility key bg, got %q", p.Utility.Key)
	}
}

func TestParseIgnoresColonsInsideArbitraryBlock(t *testing.T) {
	reg := newFakeRegistry()
	p, ok := Parse("bg-[url(https://x/a:b)]", reg)
	if !ok {
		t.Fatalf("expected parse to succeed despite a colon inside brackets")
	}
	if len(p.Variants) != 0 {
		t.Fatalf("expected no variants to be split out, got %+v", p.Variants)
	}
}

func TestParseRejectsUnknownUtilityKey(t *testing.T) {
	reg := newFakeRegistry()
	if _, ok := Parse("not-a-real-key-zzz", reg); ok {
		t.Fatalf("expected an unresolvable utility key to fail")
	}
}

func TestParseResolvesArbitraryPropertyShortcut(t *testing.T) {
	reg := newFakeRegistry()
	p, ok := Parse("[mask-type:alpha]", reg)
	if !ok {
		t.Fatalf("expected the arbitrary property shortcut to parse")
	}
	if !p.Utility.Arbitrary || p.Utility.Key != "mask-type" {
		t.Fatalf("expected an arbitrary property with key mask-type, got %+v", p.Utility)
	}
}
