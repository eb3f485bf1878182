package candidate

// UtilityCandidate is the parsed shape of a utility-class token, e.g.
// "md:-m-[2px]" parses (after its variant prefix is peeled off) into
// UtilityCandidate{Key: "m", Value: Arbitrary("2px"), Negative: true}.
//
// Invariants: if Arbitrary is true, Key is a CSS property
// identifier and Value is present and of kind ValueArbitrary. Negative is
// only meaningful when the matched utility declares SupportsNegative.
type UtilityCandidate struct {
	Raw       string
	Key       string
	Value     Value
	Modifier  Value
	Arbitrary bool
	Important bool
	Negative  bool
}
