package theme

// Theme is the full collection of named theme maps ("colors", "spacing",
// "fontSize", "fontFamily", "keyframes", "breakpoints", …).
type Theme struct {
	maps map[string]*Map
}

func NewTheme() *Theme {
	return &Theme{maps: make(map[string]*Map)}
}

// Map returns the named map, creating an empty one on first access so
// preset registration code can always write through it.
func (t *Theme) Map(name string) *Map {
	m, ok := t.maps[name]
	if !ok {
		m = NewMap()
		t.maps[name] = m
	}
	return m
}

// Lookup is a convenience for Map(name).Get(key).
func (t *Theme) Lookup(name, key string) (Value, bool) {
	m, ok := t.maps[name]
	if !ok {
		return Value{}, false
	}
	return m.Get(key)
}

// Override carries a user config's `theme` block: Extend deep-merges onto
// the preset, Replace overwrites a named map wholesale.
type Override struct {
	Extend  map[string]*Map
	Replace map[string]*Map
}

// Merge applies a user Override onto t in place.
func (t *Theme) Merge(o Override) {
	for name, m := range o.Replace {
		// Replace the entries in place: value definitions registered by
		// presets hold this *Map and must see the replacement.
		dst := t.Map(name)
		dst.entries = make(map[string]Value)
		dst.order = nil
		dst.Merge(m)
	}
	for name, m := range o.Extend {
		t.Map(name).Merge(m)
	}
}

// Clone deep-copies the whole theme; the copy shares no map with t.
func (t *Theme) Clone() *Theme {
	out := NewTheme()
	for name, m := range t.maps {
		out.maps[name] = m.Clone()
	}
	return out
}
