package css

import "strings"

// LineFeed selects the writer's newline style.
type LineFeed int

const (
	LF LineFeed = iota
	CRLF
)

// IndentUnit selects whether pretty-printed blocks are indented with
// spaces or tabs.
type IndentUnit int

const (
	IndentSpace IndentUnit = iota
	IndentTab
)

// WriterConfig controls serialization.
type WriterConfig struct {
	Minify      bool
	LineFeed    LineFeed
	IndentWidth int
	IndentUnit  IndentUnit
}

// DefaultWriterConfig is pretty, two-space, LF output.
var DefaultWriterConfig = WriterConfig{IndentWidth: 2}

func (c WriterConfig) newline() string {
	if c.LineFeed == CRLF {
		return "\r\n"
	}
	return "\n"
}

func (c WriterConfig) indent(depth int) string {
	if c.Minify {
		return ""
	}
	unit := " "
	if c.IndentUnit == IndentTab {
		unit = "\t"
	}
	width := c.IndentWidth
	if width <= 0 {
		width = 2
	}
	return strings.Repeat(unit, width*depth)
}

// Write serializes a RuleList with cfg. In pretty mode every top-level
// rule is terminated with a newline so batches can be concatenated
// verbatim; minified output contains no newlines.
func Write(rules RuleList, cfg WriterConfig) string {
	var b strings.Builder
	for _, r := range rules {
		writeRule(&b, r, cfg, 0)
		if !cfg.Minify {
			b.WriteString(cfg.newline())
		}
	}
	return b.String()
}

// WriteOne serializes a single rule without a trailing newline.
func WriteOne(r Rule, cfg WriterConfig) string {
	var b strings.Builder
	writeRule(&b, r, cfg, 0)
	return b.String()
}

func writeRule(b *strings.Builder, r Rule, cfg WriterConfig, depth int) {
	nl := cfg.newline()
	b.WriteString(cfg.indent(depth))
	b.WriteString(r.Selector)
	if cfg.Minify {
		b.WriteString("{")
	} else {
		b.WriteString(" {")
		b.WriteString(nl)
	}

	for i, d := range r.Decls {
		if cfg.Minify {
			b.WriteString(d.Name)
			b.WriteString(":")
			b.WriteString(d.Value)
			b.WriteString(";")
		} else {
			b.WriteString(cfg.indent(depth + 1))
			b.WriteString(d.Name)
			b.WriteString(": ")
			b.WriteString(d.Value)
			b.WriteString(";")
			b.WriteString(nl)
		}
		_ = i
	}

	for _, nested := range r.Rules {
		writeRule(b, nested, cfg, depth+1)
		if !cfg.Minify {
			b.WriteString(nl)
		}
	}

	if cfg.Minify {
		b.WriteString("}")
	} else {
		b.WriteString(cfg.indent(depth))
		b.WriteString("}")
	}
}

// EscapeClassName escapes a candidate's raw string per CSS identifier
// escaping rules, producing the literal text used in a ".<escaped>"
// selector.
func EscapeClassName(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_':
			if i == 0 && c >= '0' && c <= '9' {
				// A leading digit must be a hex code-point escape ("\32 "
				// for '2'); a bare "\2" would read as U+0002.
				b.WriteString("\\3")
				b.WriteByte(c)
				b.WriteByte(' ')
				continue
			}
			b.WriteByte(c)
		default:
			b.WriteByte('\\')
			b.WriteByte(c)
		}
	}
	return b.String()
}
