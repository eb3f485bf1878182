package presets

import "wispcss/internal/design"

// Default is the baseline preset: theme tokens, then variants, then
// utilities, in that order so utility value lookups can already see the
// populated theme maps.
func Default(s *design.System) {
	design.Apply(s, DefaultTheme, DefaultVariants, DefaultUtilities)
}
