package flow

// Measurer reports the natural size of the element at index when offered
// proposedWidth. The returned size is final: it may be wider or narrower
// than the proposal.
//
// Pack calls Measure exactly once per element, in ascending index order,
// and never concurrently. Implementations must not block on work that may
// itself be waiting for the layout pass.
type Measurer interface {
	Measure(index int, proposedWidth float64) Size
}

// MeasureFunc adapts an ordinary function to the Measurer interface.
type MeasureFunc func(index int, proposedWidth float64) Size

// Measure calls f(index, proposedWidth).
func (f MeasureFunc) Measure(index int, proposedWidth float64) Size {
	return f(index, proposedWidth)
}

// FixedSizes is a Measurer that ignores the proposal and returns the
// size at the same index. It is mostly useful for tests and previews.
type FixedSizes []Size

// Measure returns s[index].
func (s FixedSizes) Measure(index int, _ float64) Size {
	return s[index]
}
