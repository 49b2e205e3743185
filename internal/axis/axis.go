// Package axis generates neighbor index windows along a single board axis.
package axis

import "iter"

// Range yields the indices of the inclusive window from..to clipped to the
// inclusive axis bounds lowest..highest, in ascending order. With wrap
// enabled the window continues past an edge and reappears at the opposite
// one: lowest is emitted first when to overshoots highest, and highest is
// emitted last when from undershoots lowest. Indices may repeat on wrapped
// axes shorter than the window; neighbor counting relies on that multiplicity
// and must not deduplicate.
func Range(from, to, lowest, highest int, wrap bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		if wrap && to > highest {
			if !yield(lowest) {
				return
			}
		}
		var (
			start = max(from, lowest)
			stop  = min(to, highest)
		)
		for i := start; i <= stop; i++ {
			if !yield(i) {
				return
			}
		}
		if wrap && from < lowest {
			yield(highest)
		}
	}
}
