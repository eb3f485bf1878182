package css

import (
	"strings"
	"testing"
)

func TestWriteOnePrettyPrints(t *testing.T) {
	r := Rule{
		Selector: ".flex",
		Decls:    []Decl{{Name: "display", Value: "flex"}},
	}
	got := WriteOne(r, DefaultWriterConfig)
	want := ".flex {\n  display: flex;\n}"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteMinifies(t *testing.T) {
	r := Rule{
		Selector: ".flex",
		Decls:    []Decl{{Name: "display", Value: "flex"}},
	}
	cfg := WriterConfig{Minify: true}
	got := WriteOne(r, cfg)
	if got != ".flex{display:flex;}" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteNestsRules(t *testing.T) {
	r := Rule{
		Selector: "@media (min-width: 768px)",
		Rules: []Rule{
			{Selector: ".md\\:flex", Decls: []Decl{{Name: "display", Value: "flex"}}},
		},
	}
	got := WriteOne(r, DefaultWriterConfig)
	if !strings.Contains(got, "@media (min-width: 768px) {") {
		t.Fatalf("expected nested at-rule wrapper, got %q", got)
	}
	if !strings.Contains(got, "  .md\\:flex {") {
		t.Fatalf("expected nested rule to be indented one level, got %q", got)
	}
}

func TestEscapeClassNameEscapesSpecialCharacters(t *testing.T) {
	got := EscapeClassName("hover:bg-blue-500/50")
	for _, want := range []string{`\:`, `\/`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q to contain %q", got, want)
		}
	}
}

func TestEscapeClassNameEscapesLeadingDigit(t *testing.T) {
	got := EscapeClassName("2xl:flex")
	if !strings.HasPrefix(got, `\32 `) {
		t.Fatalf("expected leading digit to be escaped, got %q", got)
	}
}
