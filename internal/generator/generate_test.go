package generator

import (
	"strings"
	"testing"

	"wispcss/internal/design"
	"wispcss/internal/presets"
)

func newTestSystem(t *testing.T) *design.System {
	t.Helper()
	sys := design.NewSystem()
	presets.Default(sys)
	return sys
}

func TestGenerateStaticUtility(t *testing.T) {
	sys := newTestSystem(t)
	gu, ok := Generate(sys, "flex")
	if !ok {
		t.Fatalf("expected flex to resolve")
	}
	if len(gu.Rules) != 1 || !strings.Contains(gu.Rules[0].Decls[0].Value, "flex") {
		t.Fatalf("expected a display:flex rule, got %+v", gu.Rules)
	}
}

func TestGenerateThemeColorUtility(t *testing.T) {
	sys := newTestSystem(t)
	gu, ok := Generate(sys, "text-blue-500")
	if !ok {
		t.Fatalf("expected text-blue-500 to resolve")
	}
	found := false
	for _, d := range gu.Rules[0].Decls {
		if d.Name == "color" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a color declaration, got %+v", gu.Rules[0].Decls)
	}
}

func TestGenerateNegativeSpacing(t *testing.T) {
	sys := newTestSystem(t)
	gu, ok := Generate(sys, "-m-4")
	if !ok {
		t.Fatalf("expected -m-4 to resolve")
	}
	val := gu.Rules[0].Decls[0].Value
	if !strings.Contains(val, "-1") {
		t.Fatalf("expected a negated calc() expression, got %q", val)
	}
}

func TestGenerateVariantWithOpacityModifier(t *testing.T) {
	sys := newTestSystem(t)
	gu, ok := Generate(sys, "hover:bg-blue-500/50")
	if !ok {
		t.Fatalf("expected hover:bg-blue-500/50 to resolve")
	}
	sel := gu.Rules[0].Selector
	if !strings.HasPrefix(sel, ".") || !strings.HasSuffix(sel, ":hover") {
		t.Fatalf("expected a materialized class selector ending in :hover, got %q", sel)
	}
}

func TestGenerateBreakpointWithArbitraryValue(t *testing.T) {
	sys := newTestSystem(t)
	gu, ok := Generate(sys, "md:text-[10px]")
	if !ok {
		t.Fatalf("expected md:text-[10px] to resolve")
	}
	if len(gu.Rules) != 1 || gu.Rules[0].Rules == nil {
		t.Fatalf("expected the breakpoint to wrap the utility in a nested at-rule, got %+v", gu.Rules)
	}
}

func TestGenerateArbitraryProperty(t *testing.T) {
	sys := newTestSystem(t)
	gu, ok := Generate(sys, "[mask-type:alpha]")
	if !ok {
		t.Fatalf("expected the arbitrary property shortcut to resolve")
	}
	if gu.Rules[0].Decls[0].Name != "mask-type" {
		t.Fatalf("expected a mask-type declaration, got %+v", gu.Rules[0].Decls)
	}
}

func TestGenerateGroupedTransformUtilitiesShareAGroup(t *testing.T) {
	sys := newTestSystem(t)
	rotate, ok := Generate(sys, "rotate-45")
	if !ok {
		t.Fatalf("expected rotate-45 to resolve")
	}
	scale, ok := Generate(sys, "scale-110")
	if !ok {
		t.Fatalf("expected scale-110 to resolve")
	}
	if rotate.Group != scale.Group {
		t.Fatalf("expected rotate and scale to share a transform group")
	}
}

func TestGenerateRejectsUnknownCandidate(t *testing.T) {
	sys := newTestSystem(t)
	if _, ok := Generate(sys, "not-a-real-utility-xyz"); ok {
		t.Fatalf("expected an unrecognized candidate to fail")
	}
}

func TestGenerateImportantMarksEveryDeclaration(t *testing.T) {
	sys := newTestSystem(t)
	gu, ok := Generate(sys, "!flex")
	if !ok {
		t.Fatalf("expected !flex to resolve")
	}
	for _, d := range gu.Rules[0].Decls {
		if !strings.HasSuffix(d.Value, "!important") {
			t.Fatalf("expected every declaration to be marked important, got %q", d.Value)
		}
	}
}
