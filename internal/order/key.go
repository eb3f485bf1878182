// Package order implements the ordering model: a closed
// OrderingKey enum for utility families, a VariantOrdering value for
// variant chains, and the total order lexicographic comparator used to
// sort a batch's generated utilities.
package order

// Key is the closed enum of utility-family ordering buckets. Families are
// declared in ascending cascade order; Disorder is the
// default for a utility with no declared ordering, and Grouped/Property are
// sentinels that sort after every family. No code in this module assigns
// Grouped or Property: the generator attaches a synthesized grouped rule
// to its first member's rule list, which keeps that member's key.
type Key int

const (
	Disorder Key = iota

	Display
	Position

	Inset
	InsetAxis
	InsetSide
	PositionSide

	FlexBox
	Sizing

	Margin
	MarginAxis
	MarginSide

	Padding
	PaddingAxis
	PaddingSide

	BorderWidth
	BorderWidthAxis
	BorderWidthSide
	BorderRadius

	BackgroundColor
	GradientStops
	TextColor
	FontSize
	Opacity

	Transform
	Filter
	BackdropFilter

	Grouped
	Property
)
