package layouts

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
)

// BlockingDesc is the general physical-layout representation of a tensor: for
// each physical storage axis its block extent, the logical axis it blocks, its
// element stride and its leading pad, plus a scalar base offset for the whole
// tensor.
//
// The order maps physical axes to logical axes and may repeat entries: a
// logical axis split into an outer and an inner block level appears once per
// level, outer first. For example dims=[16] tiled by 4 is
// blockDims=[4 4], order=[0 0].
//
// BlockingDesc is a value type and is immutable after construction: build one
// with the NewBlocking* constructors or BlockingFromLayout, never by mutating
// an existing one. An empty descriptor (no block dims, no order) is the valid
// "no layout yet" state.
type BlockingDesc struct {
	blockDims []int
	order     []int
	strides   []int
	pads      []int
	offset    int
}

// NewBlocking creates a BlockingDesc from per-physical-axis block extents and
// the order mapping each physical axis to the logical axis it blocks.
//
// Strides are derived innermost-first: the last physical axis has stride 1 and
// each axis before it strides by the product of the block extents after it.
// Leading pads are zero and the base offset is 0.
//
// If either argument is empty the result is the unset state and nothing is
// derived. Otherwise both must have the same length, else it panics with
// ErrSizeMismatch.
func NewBlocking(blockDims, order []int) BlockingDesc {
	var b BlockingDesc
	b.order = slices.Clone(order)
	if len(blockDims) == 0 || len(order) == 0 {
		return b
	}
	b.fill(blockDims, order)
	return b
}

// NewBlockingWithOffset is NewBlocking with the base offset (in elements) set
// to baseOffset instead of 0.
func NewBlockingWithOffset(blockDims, order []int, baseOffset int) BlockingDesc {
	b := NewBlocking(blockDims, order)
	b.offset = baseOffset
	return b
}

// NewBlockingWithPads is NewBlockingWithOffset with the per-axis leading pads
// taken from leadingPads instead of being zero. leadingPads must have one
// entry per block dim, else it panics with ErrSizeMismatch.
func NewBlockingWithPads(blockDims, order []int, baseOffset int, leadingPads []int) BlockingDesc {
	b := NewBlocking(blockDims, order)
	b.offset = baseOffset
	if len(blockDims) != len(leadingPads) {
		panic(errors.Wrapf(ErrSizeMismatch,
			"layouts.NewBlockingWithPads: %d leading pads for %d block dims", len(leadingPads), len(blockDims)))
	}
	b.pads = slices.Clone(leadingPads)
	return b
}

// NewBlockingRaw creates a BlockingDesc with every attribute supplied by the
// caller, bypassing the stride and pad derivation entirely.
//
// This is the escape hatch for layouts whose stride relationship is not the
// simple cumulative product, e.g. externally supplied memory layouts. Only the
// lengths are checked (ErrSizeMismatch); all other invariants are the
// caller's responsibility, and inconsistencies surface later as
// ErrConfiguration when an offset is computed. Prefer the derived
// constructors.
func NewBlockingRaw(blockDims, order []int, baseOffset int, leadingPads, strides []int) BlockingDesc {
	b := NewBlocking(blockDims, order)
	b.offset = baseOffset
	if len(blockDims) != len(strides) {
		panic(errors.Wrapf(ErrSizeMismatch,
			"layouts.NewBlockingRaw: %d strides for %d block dims", len(strides), len(blockDims)))
	}
	b.strides = slices.Clone(strides)
	if len(blockDims) != len(leadingPads) {
		panic(errors.Wrapf(ErrSizeMismatch,
			"layouts.NewBlockingRaw: %d leading pads for %d block dims", len(leadingPads), len(blockDims)))
	}
	b.pads = slices.Clone(leadingPads)
	return b
}

// BlockingFromLayout derives the blocked form equivalent to a named layout
// over the given logical dimensions.
//
// For permuted layouts (CN, NHWC) the block dims are the logical dims
// reordered into physical storage order. Layout Any, or empty dims, yields
// the unset state. It panics with ErrShapeMismatch if the layout requires a
// rank different from len(dims).
func BlockingFromLayout(dims []int, layout NamedLayout) BlockingDesc {
	var b BlockingDesc
	if len(dims) == 0 {
		return b
	}
	checkRank := func(required int) {
		if len(dims) != required {
			panic(errors.Wrapf(ErrShapeMismatch,
				"layouts.BlockingFromLayout: layout %s requires %d dimensions, got %d", layout, required, len(dims)))
		}
	}
	var blockDims, order []int
	switch layout {
	case Any:
		return b
	case C:
		checkRank(1)
		order = []int{0}
		blockDims = dims
	case NC, HW:
		checkRank(2)
		order = []int{0, 1}
		blockDims = dims
	case CN:
		checkRank(2)
		order = []int{1, 0}
		blockDims = []int{dims[1], dims[0]}
	case CHW:
		checkRank(3)
		order = []int{0, 1, 2}
		blockDims = dims
	case NCHW, OIHW:
		checkRank(4)
		order = []int{0, 1, 2, 3}
		blockDims = dims
	case NHWC:
		checkRank(4)
		order = []int{0, 2, 3, 1}
		blockDims = []int{dims[0], dims[2], dims[3], dims[1]}
	case Blocked:
		order = identityOrder(len(dims))
		blockDims = dims
	}
	b.fill(blockDims, order)
	return b
}

// fill derives strides and zero pads from blockDims and order. Both must be
// non-empty.
func (b *BlockingDesc) fill(blockDims, order []int) {
	if len(order) != len(blockDims) {
		panic(errors.Wrapf(ErrSizeMismatch,
			"layouts: %d block dims and %d order entries", len(blockDims), len(order)))
	}
	n := len(order)
	b.order = slices.Clone(order)
	b.blockDims = slices.Clone(blockDims)
	b.offset = 0
	b.pads = make([]int, n)
	b.strides = make([]int, n)
	b.strides[n-1] = 1
	for i := n - 2; i >= 0; i-- {
		b.strides[i] = b.strides[i+1] * b.blockDims[i+1]
	}
}

// BlockDims returns the per-physical-axis block extents. The returned slice is
// owned by the descriptor, don't modify it.
func (b BlockingDesc) BlockDims() []int { return b.blockDims }

// Order returns, per physical axis, the logical axis it blocks. The returned
// slice is owned by the descriptor, don't modify it.
func (b BlockingDesc) Order() []int { return b.order }

// Strides returns the per-physical-axis element strides. The returned slice is
// owned by the descriptor, don't modify it.
func (b BlockingDesc) Strides() []int { return b.strides }

// LeadingPads returns the per-physical-axis leading pads (elements reserved
// before the valid data on that axis). The returned slice is owned by the
// descriptor, don't modify it.
func (b BlockingDesc) LeadingPads() []int { return b.pads }

// BaseOffset returns the scalar base offset, in elements.
func (b BlockingDesc) BaseOffset() int { return b.offset }

// Empty returns whether this is the unset "no layout yet" state.
func (b BlockingDesc) Empty() bool {
	return len(b.blockDims) == 0 && len(b.order) == 0
}

// PhysicalRank returns the number of physical axes.
func (b BlockingDesc) PhysicalRank() int { return len(b.blockDims) }

// Clone returns a deep copy: the clone shares no slices with the original.
func (b BlockingDesc) Clone() (b2 BlockingDesc) {
	b2.blockDims = slices.Clone(b.blockDims)
	b2.order = slices.Clone(b.order)
	b2.strides = slices.Clone(b.strides)
	b2.pads = slices.Clone(b.pads)
	b2.offset = b.offset
	return
}

// Equal reports structural equality over all five attributes.
func (b BlockingDesc) Equal(other BlockingDesc) bool {
	return slices.Equal(b.blockDims, other.blockDims) &&
		slices.Equal(b.strides, other.strides) &&
		slices.Equal(b.pads, other.pads) &&
		slices.Equal(b.order, other.order) &&
		b.offset == other.offset
}

// String pretty-prints the descriptor.
func (b BlockingDesc) String() string {
	if b.Empty() {
		return "blocking{unset}"
	}
	s := fmt.Sprintf("blocking{dims=%v, order=%v, strides=%v", b.blockDims, b.order, b.strides)
	for _, pad := range b.pads {
		if pad != 0 {
			s += fmt.Sprintf(", pads=%v", b.pads)
			break
		}
	}
	if b.offset != 0 {
		s += fmt.Sprintf(", offset=%d", b.offset)
	}
	return s + "}"
}
