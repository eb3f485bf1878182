package candidate

// VariantCandidate is the parsed shape of one segment of the ':'-separated
// variant chain that prefixes a utility, e.g. "has-not-group-hover/side".
// Processor names the matched base (non-composable) variant; Layers lists
// the composable variants accumulated left to right, applied outer-in by
// the variant engine.
//
// ArbitrarySelector holds the literal selector/at-rule text for the
// fully-arbitrary "[...]" variant form, tagged with ordering "Arbitrary".
type VariantCandidate struct {
	Raw               string
	Processor         string
	Layers            []string
	Value             Value
	Modifier          Value
	Arbitrary         bool
	ArbitrarySelector string
}
