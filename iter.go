package layouts

import "iter"

// Positions iterates over every valid coordinate of the descriptor, in flat
// row-major order (so the i-th yielded position is the decomposition of flat
// index i). Positions follow the Offset convention: least-significant axis
// first.
//
// To avoid allocating per step, the yielded slice is owned by the iterator:
// don't modify it or hold on to it across iterations.
func (t *TensorDesc) Positions() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		rank := len(t.dims)
		if rank == 0 {
			return
		}
		for _, dim := range t.dims {
			if dim <= 0 {
				return
			}
		}

		pos := make([]int, rank)
		for {
			if !yield(pos) {
				return
			}

			// Increment as an N-dimensional counter: pos[0] is the
			// fastest-varying (last logical) axis, pos[axis] counts up to
			// dims[rank-1-axis].
			axis := 0
			for ; axis < rank; axis++ {
				pos[axis]++
				if pos[axis] < t.dims[rank-1-axis] {
					break
				}
				// Overflow: reset and carry into the next slower axis.
				pos[axis] = 0
			}
			if axis == rank {
				return
			}
		}
	}
}
