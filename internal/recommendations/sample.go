package recommendations

// sample picks n distinct elements of items uniformly at random with a partial
// Fisher-Yates shuffle. items is reordered in place; callers pass a copy.
// intN must return a value in [0, n).
func sample[T any](items []T, n int, intN func(int) int) []T {
	if n <= 0 {
		return []T{}
	}
	if n > len(items) {
		n = len(items)
	}

	for i := 0; i < n; i++ {
		j := i + intN(len(items)-i)
		items[i], items[j] = items[j], items[i]
	}
	return items[:n:n]
}
