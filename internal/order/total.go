package order

// Less implements the total order over generated utilities:
// (variant-order-tuple, ordering-key, raw-string), compared
// lexicographically.
func Less(aTuple Tuple, aKey Key, aRaw string, bTuple Tuple, bKey Key, bRaw string) bool {
	if !aTuple.Equal(bTuple) {
		return aTuple.Less(bTuple)
	}
	if aKey != bKey {
		return aKey < bKey
	}
	return aRaw < bRaw
}
