package order

import "testing"

func TestLessByTupleFirst(t *testing.T) {
	shorter := Tuple{Insertion(0)}
	longer := Tuple{Insertion(0), Insertion(1)}

	if !Less(shorter, Display, "flex", longer, Disorder, "md:flex") {
		t.Fatalf("a tuple with fewer variants should sort before one with more, regardless of key")
	}
	if Less(longer, Disorder, "md:flex", shorter, Display, "flex") {
		t.Fatalf("Less should not be symmetric here")
	}
}

func TestLessFallsBackToKeyThenRaw(t *testing.T) {
	same := Tuple{Insertion(0)}

	if !Less(same, Margin, "m-4", same, Padding, "p-4") {
		t.Fatalf("Margin should sort before Padding when tuples match")
	}
	if !Less(same, Margin, "m-4", same, Margin, "mx-4") {
		t.Fatalf("equal tuple and key should fall back to raw string order")
	}
}

func TestInsertionOrderingOrdersByIndex(t *testing.T) {
	a := Tuple{Insertion(1)}
	b := Tuple{Insertion(2)}
	if !a.Less(b) {
		t.Fatalf("Insertion(1) should sort before Insertion(2)")
	}
}

func TestLengthOrderingOrdersByPixelWidth(t *testing.T) {
	sm := Tuple{Length(640)}
	lg := Tuple{Length(1024)}
	if !sm.Less(lg) {
		t.Fatalf("a narrower breakpoint should sort before a wider one")
	}
}

func TestArbitraryOrderingAlwaysSortsLast(t *testing.T) {
	named := Tuple{Insertion(99)}
	arbitrary := Tuple{ArbitraryOrdering()}
	if !named.Less(arbitrary) {
		t.Fatalf("an arbitrary variant ordering must sort after every named ordering")
	}
}

func TestTupleEqual(t *testing.T) {
	a := Tuple{Insertion(3), Length(768)}
	b := Tuple{Insertion(3), Length(768)}
	if !a.Equal(b) {
		t.Fatalf("identical tuples should compare equal")
	}
}
