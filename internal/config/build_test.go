package config

import (
	"strings"
	"testing"

	"wispcss/internal/generator"
)

func TestBuildRegistersConfigUtilities(t *testing.T) {
	path := writeConfig(t, `
content = ["**/*.html"]

[[utilities]]
key = "tab"
theme = "spacing"
css = { "tab-size" = "$0" }

[[static_utilities]]
key = "sr-only"
decls = { position = "absolute" }
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sys := Build(cfg)

	gu, ok := generator.Generate(sys, "tab-4")
	if !ok {
		t.Fatalf("expected tab-4 to resolve against the config's own utility")
	}
	if gu.Rules[0].Decls[0].Name != "tab-size" {
		t.Fatalf("expected a tab-size declaration, got %+v", gu.Rules[0].Decls)
	}

	gu, ok = generator.Generate(sys, "sr-only")
	if !ok {
		t.Fatalf("expected sr-only to resolve as a static utility")
	}
	if gu.Rules[0].Decls[0].Value != "absolute" {
		t.Fatalf("expected sr-only's position decl, got %+v", gu.Rules[0].Decls)
	}
}

func TestBuildUtilityEvaluatesColorTemplate(t *testing.T) {
	path := writeConfig(t, `
content = ["**/*.html"]

[[utilities]]
key = "ring"
theme = "colors"
modifier = "number"
css = { "--tw-ring-color" = "$0:color" }
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sys := Build(cfg)

	gu, ok := generator.Generate(sys, "ring-blue-500/50")
	if !ok {
		t.Fatalf("expected ring-blue-500/50 to resolve")
	}
	val := gu.Rules[0].Decls[0].Value
	if !strings.Contains(val, "color-mix(") {
		t.Fatalf("expected a color-mix() expansion, got %q", val)
	}
}
