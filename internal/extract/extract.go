// Package extract discovers candidate class-name strings out of scanned
// content: HTML-ish markup (class/className attributes) and, generically,
// any text file by a whitespace/quote-delimited token scan, dispatched
// across a glob of content paths.
package extract

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/net/html"
)

// classAttrs lists every attribute name that carries class-like tokens
// across the templating dialects this scanner expects to see (plain
// HTML, JSX's className, Astro's class:list). The HTML tokenizer
// lower-cases attribute names, so className is matched as "classname".
var classAttrs = map[string]bool{
	"class": true, "classname": true, "class:list": true,
}

// FromGlob expands each pattern against root (doublestar match syntax,
// including "**") and extracts candidates from every matched file by
// its extension.
func FromGlob(root string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	fsys := os.DirFS(root)
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			full := root + "/" + m
			classes, err := FromFile(full)
			if err != nil {
				continue
			}
			for _, c := range classes {
				if !seen[c] {
					seen[c] = true
					out = append(out, c)
				}
			}
		}
	}
	return out, nil
}

// FromFile dispatches by extension: .html/.htm get a DOM-aware
// attribute walk, everything else gets the generic token scan.
func FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".html") || strings.HasSuffix(path, ".htm") {
		return FromHTML(f)
	}
	return FromText(f)
}

// FromHTML walks an HTML document's element attributes, pulling every
// whitespace-separated token out of any class-like attribute.
func FromHTML(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if classAttrs[attr.Key] {
					out = append(out, strings.Fields(attr.Val)...)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out, nil
}

// FromText scans non-HTML source (JSX/TSX/Go templates/etc.) line by
// line, treating every run of candidate characters (split at quotes,
// whitespace and any other character) as a candidate, quoted or not — the real design system rejects anything that isn't
// one of its registered keys, so over-extracting here is harmless.
func FromText(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var out []string
	for scanner.Scan() {
		line := scanner.Text()
		var cur strings.Builder
		flush := func() {
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		}
		for _, r := range line {
			switch {
			case r == '"' || r == '\'' || r == '`' || r == ' ' || r == '\t':
				flush()
			case isCandidateByte(r):
				cur.WriteRune(r)
			default:
				flush()
			}
		}
		flush()
	}
	return out, scanner.Err()
}

func isCandidateByte(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == ':' || r == '/' || r == '.' || r == '[' || r == ']' || r == '!' || r == '_' || r == '(' || r == ')' || r == '%' || r == '#':
		return true
	}
	return false
}
