// Package config loads and validates a project's wispcss.toml and turns
// it, together with the default preset, into a ready design.System.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml"

	"wispcss/internal/css"
)

// Config is the user-facing project configuration, loaded from TOML.
type Config struct {
	Content         []string         `toml:"content" validate:"required,min=1"`
	DarkMode        string           `toml:"dark_mode" validate:"omitempty,oneof=media selector"`
	Theme           ThemeOverride    `toml:"theme"`
	Output          OutputConfig     `toml:"output"`
	Utilities       []UtilityBuilder `toml:"utilities" validate:"dive"`
	StaticUtilities []StaticBuilder  `toml:"static_utilities" validate:"dive"`
}

// UtilityBuilder is one `[[utilities]]` entry: a user-defined dynamic
// utility built without closures. CSS is a template-map (decl name →
// "literal" / "$0" / "$1" / "$0:color") evaluated at emit time by
// evalTemplate — $0 substitutes the preprocessed value, $1 the modifier,
// and the ":color" suffix applies the color-mix opacity expansion.
type UtilityBuilder struct {
	Key      string            `toml:"key" validate:"required"`
	CSS      map[string]string `toml:"css" validate:"required,min=1"`
	Theme    string            `toml:"theme"`
	Type     string            `toml:"type" validate:"omitempty,oneof=color length length-percentage percentage number ident image time angle any"`
	Modifier string            `toml:"modifier" validate:"omitempty,oneof=color length length-percentage percentage number ident image time angle any"`
	Selector string            `toml:"selector"`
	Negative bool              `toml:"negative"`
	Fraction bool              `toml:"fraction"`
	Order    string            `toml:"order"`
	ExtraCSS map[string]string `toml:"extra_css"`
	Group    string            `toml:"group" validate:"omitempty,oneof=transform filter backdrop-filter"`
}

// StaticBuilder is one `[[static_utilities]]` entry: a fixed-declaration
// utility with no value parsing at all — the `declMap | [selector,
// declMap]` sum type unified into a single table, Selector defaulting to
// "&" when omitted.
type StaticBuilder struct {
	Key      string            `toml:"key" validate:"required"`
	Selector string            `toml:"selector"`
	Decls    map[string]string `toml:"decls" validate:"required,min=1"`
}

// ThemeOverride carries the `[theme]` / `[theme.extend]` TOML blocks: a
// sibling key under `theme` replaces a preset map wholesale, a key under
// `theme.extend` deep-merges onto it.
type ThemeOverride struct {
	Extend map[string]map[string]string `toml:"extend"`
	Maps   map[string]map[string]string `toml:"-"`
}

// OutputConfig controls the writer's serialization mode.
type OutputConfig struct {
	Minify bool `toml:"minify"`
}

// Error is a config-loading failure tagged with the config path. Load
// leaves Line at zero; it does not look up source positions.
type Error struct {
	Path string
	Line int
	Err  error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var validate = validator.New()

// Load reads and validates the TOML config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	var cfg Config
	if err := tree.Unmarshal(&cfg); err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	if cfg.DarkMode == "" {
		cfg.DarkMode = "media"
	}
	cfg.Theme.Maps = replaceMaps(tree)

	if err := validate.Struct(&cfg); err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	return &cfg, nil
}

// replaceMaps reads every `[theme.<name>]` table other than "extend" as a
// whole-map replacement, since go-toml's struct tags can't express
// "every other key" directly.
func replaceMaps(tree *toml.Tree) map[string]map[string]string {
	out := make(map[string]map[string]string)
	sub, ok := tree.Get("theme").(*toml.Tree)
	if !ok {
		return out
	}
	for _, name := range sub.Keys() {
		if name == "extend" {
			continue
		}
		entryTree, ok := sub.Get(name).(*toml.Tree)
		if !ok {
			continue
		}
		entries := make(map[string]string)
		for _, k := range entryTree.Keys() {
			if v, ok := entryTree.Get(k).(string); ok {
				entries[k] = v
			}
		}
		out[name] = entries
	}
	return out
}

// WriterConfig derives the css.WriterConfig this project wants.
func (c *Config) WriterConfig() css.WriterConfig {
	cfg := css.DefaultWriterConfig
	cfg.Minify = c.Output.Minify
	return cfg
}
