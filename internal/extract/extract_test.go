package extract

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestFromHTMLCollectsClassAttributeTokens(t *testing.T) {
	html := `<div class="flex  items-center"><button className="hover:bg-blue-500 p-2">Go</button></div>`
	got, err := FromHTML(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"flex", "items-center", "hover:bg-blue-500", "p-2"}
	sort.Strings(got)
	sort.Strings(want)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFromTextScansQuotedTokens(t *testing.T) {
	src := `const cls = "flex md:text-[10px]"`
	got, err := FromText(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := map[string]bool{}
	for _, c := range got {
		found[c] = true
	}
	if !found["flex"] || !found["md:text-[10px]"] {
		t.Fatalf("expected flex and md:text-[10px] among %v", got)
	}
}

func TestFromGlobDispatchesByExtension(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(`<div class="flex"></div>`), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	jsxPath := filepath.Join(dir, "app.tsx")
	if err := os.WriteFile(jsxPath, []byte(`className="p-4"`), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := FromGlob(dir, []string{"**/*.html", "**/*.tsx"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := map[string]bool{}
	for _, c := range got {
		found[c] = true
	}
	if !found["flex"] || !found["p-4"] {
		t.Fatalf("expected flex and p-4 among %v", got)
	}
}
