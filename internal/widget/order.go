package widget

import "golang.org/x/exp/slices"

// SortByPreferredOrder sorts items in place so their keys follow order.
// Items whose key does not appear in order go last. The sort is stable:
// unmatched items, and items sharing a key, keep their relative order.
// If a key appears more than once in order, its first position wins.
func SortByPreferredOrder[T any, K comparable](items []T, key func(T) K, order []K) {
	rank := make(map[K]int, len(order))
	for i, k := range order {
		if _, seen := rank[k]; !seen {
			rank[k] = i
		}
	}
	unmatched := len(order)

	pos := func(item T) int {
		if r, ok := rank[key(item)]; ok {
			return r
		}
		return unmatched
	}

	slices.SortStableFunc(items, func(a, b T) int {
		return pos(a) - pos(b)
	})
}

// SortElements orders elements by id following order.
func SortElements(elements Elements, order []string) {
	SortByPreferredOrder(elements, func(e Element) string { return e.ID }, order)
}
