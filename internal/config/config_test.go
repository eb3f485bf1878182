package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "wispcss.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	return path
}

func TestLoadAppliesDarkModeDefault(t *testing.T) {
	path := writeConfig(t, `content = ["**/*.html"]`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DarkMode != "media" {
		t.Fatalf("expected dark_mode to default to media, got %q", cfg.DarkMode)
	}
}

func TestLoadRejectsInvalidDarkMode(t *testing.T) {
	path := writeConfig(t, `
content = ["**/*.html"]
dark_mode = "bogus"
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation to reject an unrecognized dark_mode")
	}
}

func TestLoadRequiresContent(t *testing.T) {
	path := writeConfig(t, `dark_mode = "media"`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation to reject a config with no content globs")
	}
}

func TestLoadParsesThemeExtendAndReplace(t *testing.T) {
	path := writeConfig(t, `
content = ["**/*.html"]

[theme.extend]
[theme.extend.colors]
brand = "#ff0000"

[theme.spacing]
sm = "0.5rem"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme.Extend["colors"]["brand"] != "#ff0000" {
		t.Fatalf("expected theme.extend.colors.brand to be parsed, got %+v", cfg.Theme.Extend)
	}
	if cfg.Theme.Maps["spacing"]["sm"] != "0.5rem" {
		t.Fatalf("expected theme.spacing to be parsed as a replacement map, got %+v", cfg.Theme.Maps)
	}
}

func TestLoadParsesUtilitiesAndStaticUtilities(t *testing.T) {
	path := writeConfig(t, `
content = ["**/*.html"]

[[utilities]]
key = "tab"
theme = "spacing"
css = { "tab-size" = "$0" }

[[static_utilities]]
key = "sr-only"
decls = { position = "absolute", width = "1px" }
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Utilities) != 1 || cfg.Utilities[0].Key != "tab" {
		t.Fatalf("expected one utility builder keyed tab, got %+v", cfg.Utilities)
	}
	if cfg.Utilities[0].CSS["tab-size"] != "$0" {
		t.Fatalf("expected the css template map to be parsed, got %+v", cfg.Utilities[0].CSS)
	}
	if len(cfg.StaticUtilities) != 1 || cfg.StaticUtilities[0].Decls["position"] != "absolute" {
		t.Fatalf("expected one static builder keyed sr-only, got %+v", cfg.StaticUtilities)
	}
}

func TestErrorFormatsWithAndWithoutLine(t *testing.T) {
	e := &Error{Path: "wispcss.toml", Err: errTest{}}
	if e.Error() == "" {
		t.Fatalf("expected a non-empty error message")
	}
	e.Line = 4
	if got := e.Error(); got != "wispcss.toml:4: boom" {
		t.Fatalf("got %q", got)
	}
}

type errTest struct{}

func (errTest) Error() string { return "boom" }
