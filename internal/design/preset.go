package design

// Preset is a function that mutates a registry; presets compose by
// invocation order.
type Preset func(*System)

// Apply runs every preset against s in order.
func Apply(s *System, presets ...Preset) {
	for _, p := range presets {
		p(s)
	}
}
