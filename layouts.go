// Package layouts describes how the logical elements of an N-dimensional tensor
// are arranged in linear memory, and computes the element offset of any logical
// coordinate under that arrangement.
//
// It is pure metadata bookkeeping: nothing here moves or computes on tensor
// data. A compute layer is expected to consume the offsets to address a flat
// backing buffer.
//
// The two building blocks, bottom-up:
//
//   - BlockingDesc is the general physical-layout representation: per physical
//     axis a block extent, the logical axis it blocks (the "order"), a stride
//     and a leading pad, plus a scalar base offset. One logical axis may be
//     split across several physical axes (tiling), which the order expresses
//     with repeated entries.
//   - TensorDesc is the logical facade: the unpermuted dimensions, the element
//     type (dtypes.DType) and a NamedLayout tag, backed by an owned
//     BlockingDesc kept consistent with both. It translates named layouts to
//     and from blocked form and answers Offset queries.
//
// ## Glossary
//
//   - Named layout: a symbolic tag standing for a fixed, well-known axis
//     permutation and rank, e.g. NCHW (plain row-major) vs. NHWC
//     (channels-last).
//   - Block/tile: a sub-division of a logical axis into an inner
//     (fast-varying) and outer (slow-varying) physical extent, used for
//     cache- and vector-friendly storage.
//   - Leading pad: reserved unused elements preceding valid data along a
//     physical axis, used for alignment or padded access.
//
// Contract violations panic with an error wrapping one of the sentinel values
// in this package (ErrSizeMismatch, ErrShapeMismatch, ...); recover them with
// the exceptions package and classify with errors.Is.
package layouts

// NamedLayout is a symbolic tag for a fixed, well-known axis permutation and
// rank. Any is the zero value and means "not set yet"; Blocked is the
// catch-all for every arrangement that doesn't match a named pattern.
type NamedLayout int

//go:generate go tool enumer -type=NamedLayout -output=gen_namedlayout_enumer.go layouts.go

const (
	// Any means the layout was not yet set. Descriptors under Any cannot
	// answer Offset queries.
	Any NamedLayout = iota

	// C is the 1D contiguous layout.
	C

	// NC is the plain 2D layout.
	NC

	// CN is the transposed 2D layout.
	CN

	// HW is a 2D layout for spatial planes; it blocks identically to NC.
	HW

	// CHW is the plain 3D layout.
	CHW

	// NCHW is the plain 4D layout: batch, channel, height, width, the axis
	// order being the identity permutation.
	NCHW

	// NHWC is the channels-last 4D layout, axis order [0 2 3 1].
	NHWC

	// OIHW is the 4D layout of convolution weights; it blocks identically
	// to NCHW.
	OIHW

	// Blocked marks a layout that matches no named pattern, including any
	// layout that tiles a logical axis across several physical axes.
	Blocked
)

// Rank returns the logical rank a named layout requires. Any and Blocked
// accept any rank and return -1.
func (l NamedLayout) Rank() int {
	switch l {
	case C:
		return 1
	case NC, CN, HW:
		return 2
	case CHW:
		return 3
	case NCHW, NHWC, OIHW:
		return 4
	default:
		return -1
	}
}

// LayoutForDims returns the default (plain) layout for the given logical
// dimensions: C, NC, CHW or NCHW by rank, and Blocked for any other rank.
func LayoutForDims(dims []int) NamedLayout {
	switch len(dims) {
	case 1:
		return C
	case 2:
		return NC
	case 3:
		return CHW
	case 4:
		return NCHW
	default:
		return Blocked
	}
}

// identityOrder returns the order [0, 1, ..., n-1].
func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
