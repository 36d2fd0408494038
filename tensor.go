package layouts

import (
	"fmt"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// TensorDesc describes the logical shape, the element type and the memory
// layout of a tensor: the unpermuted dims, a dtypes.DType, a NamedLayout tag
// and an owned BlockingDesc kept consistent with both.
//
// The blocked form is authoritative: whenever a TensorDesc is built from an
// explicit BlockingDesc the layout tag is re-derived from it by
// classification, never set independently. The tag in turn drives the blocked
// form when constructing from a named layout. No operation can leave the two
// disagreeing.
//
// A TensorDesc is mutated only by SetDims, Reshape and ReshapeBlocking;
// everything else, Offset included, is read-only and safe to share across
// goroutines once construction completed. The zero value is a dims-less
// descriptor under layout Any.
type TensorDesc struct {
	dtype    dtypes.DType
	dims     []int
	layout   NamedLayout
	blocking BlockingDesc
}

// New creates a TensorDesc for the given logical dims under a named layout.
// It panics with ErrShapeMismatch if the layout's required rank disagrees
// with len(dims).
func New(dtype dtypes.DType, dims []int, layout NamedLayout) *TensorDesc {
	return &TensorDesc{
		dtype:    dtype,
		dims:     slices.Clone(dims),
		layout:   layout,
		blocking: BlockingFromLayout(dims, layout),
	}
}

// NewWithoutDims creates a TensorDesc with the layout tag set but no
// dimensions yet; fill them in later with SetDims.
func NewWithoutDims(dtype dtypes.DType, layout NamedLayout) *TensorDesc {
	return &TensorDesc{dtype: dtype, layout: layout}
}

// NewFromBlocking creates a TensorDesc from an explicit BlockingDesc, which
// is deep-copied: the descriptor exclusively owns its blocking.
//
// The blocking's order must reference exactly len(dims) logical axes
// (max entry + 1), else it panics with ErrShapeMismatch. The layout tag is
// re-derived from the blocking: a named pattern is recognized only when the
// block dims equal dims exactly; any sub-blocking yields Blocked.
func NewFromBlocking(dtype dtypes.DType, dims []int, blocking BlockingDesc) *TensorDesc {
	maxAxis := -1
	for _, axis := range blocking.order {
		if axis > maxAxis {
			maxAxis = axis
		}
	}
	if len(dims) != maxAxis+1 {
		panic(errors.Wrapf(ErrShapeMismatch,
			"layouts.NewFromBlocking: blocking order references %d logical axes, but %d dims given",
			maxAxis+1, len(dims)))
	}
	t := &TensorDesc{
		dtype:    dtype,
		dims:     slices.Clone(dims),
		blocking: blocking.Clone(),
	}
	t.layout = classify(t.dims, t.blocking)
	return t
}

// classify re-derives the layout tag from a blocking descriptor. Named
// patterns are only recognized when the block dims equal the logical dims
// exactly; any sub-blocking is Blocked no matter the order.
func classify(dims []int, blocking BlockingDesc) NamedLayout {
	if !slices.Equal(dims, blocking.blockDims) {
		return Blocked
	}
	order := blocking.order
	switch len(dims) {
	case 1:
		return C
	case 2:
		if order[0] == 0 && order[1] == 1 {
			return NC
		}
		return CN
	case 3:
		if order[0] == 0 && order[1] == 1 && order[2] == 2 {
			return CHW
		}
	case 4:
		if order[0] == 0 && order[1] == 1 && order[2] == 2 && order[3] == 3 {
			return NCHW
		}
		if order[0] == 0 && order[1] == 2 && order[2] == 3 && order[3] == 1 {
			return NHWC
		}
	}
	return Blocked
}

// DType returns the element type tag.
func (t *TensorDesc) DType() dtypes.DType { return t.dtype }

// Dims returns the logical, unpermuted dimensions. The returned slice is
// owned by the descriptor, don't modify it.
func (t *TensorDesc) Dims() []int { return t.dims }

// Layout returns the named layout tag.
func (t *TensorDesc) Layout() NamedLayout { return t.layout }

// Blocking returns a copy of the underlying blocking descriptor.
func (t *TensorDesc) Blocking() BlockingDesc { return t.blocking.Clone() }

// Rank returns the logical rank, the number of dims.
func (t *TensorDesc) Rank() int { return len(t.dims) }

// Size returns the number of elements, the product of the dims.
func (t *TensorDesc) Size() int {
	size := 1
	for _, dim := range t.dims {
		size *= dim
	}
	return size
}

// Memory returns the bytes needed to store the described elements,
// padding excluded.
func (t *TensorDesc) Memory() uintptr {
	return t.dtype.Memory() * uintptr(t.Size())
}

// MemoryString returns Memory in human-readable form, e.g. "42 MB".
func (t *TensorDesc) MemoryString() string {
	return humanize.Bytes(uint64(t.Memory()))
}

// SetDims replaces the logical dimensions and rebuilds the blocking
// descriptor. Under a named layout it is rebuilt from the layout and the new
// dims; under Blocked the existing block dims and order are preserved when
// present, defaulting to the new dims and the identity order otherwise.
func (t *TensorDesc) SetDims(dims []int) {
	t.dims = slices.Clone(dims)
	if t.layout == Blocked {
		blockDims := t.blocking.blockDims
		order := t.blocking.order
		if len(blockDims) == 0 {
			blockDims = t.dims
		}
		if len(order) == 0 {
			order = identityOrder(len(blockDims))
		}
		t.blocking = NewBlocking(blockDims, order)
	} else {
		t.blocking = BlockingFromLayout(t.dims, t.layout)
	}
	if klog.V(2).Enabled() {
		klog.Infof("layouts: SetDims(%v) -> %s", dims, t)
	}
}

// Offset returns the element offset of a logical coordinate within the
// backing buffer.
//
// pos is given least-significant axis first, the reverse of Dims order: for a
// 4D NCHW tensor that is (w, h, c, n). When a logical axis is split across
// several physical axes, its coordinate is decomposed from the innermost
// physical axis outward: the remainder modulo the block extent stays local,
// the quotient is carried to the next physical axis blocking the same logical
// axis. The result is the base offset plus, over every physical axis,
// (local + leadingPad) * stride.
//
// It panics with ErrLayoutUnset while the layout is Any, and with
// ErrConfiguration if the blocking attributes disagree in length (possible
// only through raw construction).
func (t *TensorDesc) Offset(pos []int) int {
	if t.layout == Any {
		panic(errors.Wrapf(ErrLayoutUnset, "layouts.TensorDesc.Offset: cannot compute offsets for layout Any"))
	}
	blockDims := t.blocking.blockDims
	strides := t.blocking.strides
	order := t.blocking.order
	n := len(order)
	if len(blockDims) != n || len(strides) != n || len(t.blocking.pads) != n {
		panic(errors.Wrapf(ErrConfiguration,
			"layouts.TensorDesc.Offset: %d block dims, %d strides and %d pads for %d physical axes",
			len(blockDims), len(strides), len(t.blocking.pads), n))
	}

	// Logical coordinates, most-significant axis first.
	logical := make([]int, len(pos))
	for i, p := range pos {
		logical[len(pos)-1-i] = p
	}

	// Split each coordinate into per-block remainders, innermost axis first.
	local := make([]int, n)
	for i := n - 1; i >= 0; i-- {
		axis := order[i]
		local[i] = logical[axis] % blockDims[i]
		logical[axis] /= blockDims[i]
	}
	offset := t.blocking.offset
	for i := 0; i < n; i++ {
		offset += (local[i] + t.blocking.pads[i]) * strides[i]
	}
	return offset
}

// OffsetFlat returns the element offset for a flat row-major logical index:
// the index is decomposed over Dims, last axis fastest, and handed to Offset.
func (t *TensorDesc) OffsetFlat(index int) int {
	pos := make([]int, len(t.dims))
	for i := len(t.dims) - 1; i >= 0; i-- {
		dim := t.dims[i]
		pos[len(t.dims)-1-i] = index % dim
		index /= dim
	}
	return t.Offset(pos)
}

// Reshape rebuilds the descriptor for a new shape. Layout Any is a sentinel
// meaning "keep the current layout family, recomputed for the new dims"; any
// other value replaces the layout.
//
// A descriptor with non-zero leading pads describes a sub-range of a larger
// buffer and cannot be reinterpreted: it panics with ErrNotReshapable.
func (t *TensorDesc) Reshape(dims []int, layout NamedLayout) {
	for _, pad := range t.blocking.pads {
		if pad != 0 {
			panic(errors.Wrapf(ErrNotReshapable,
				"layouts.TensorDesc.Reshape: descriptor has leading pads %v", t.blocking.pads))
		}
	}
	if layout != Any {
		t.blocking = BlockingFromLayout(dims, layout)
		t.layout = layout
	} else {
		t.blocking = BlockingFromLayout(dims, t.layout)
	}
	t.dims = slices.Clone(dims)
	if klog.V(2).Enabled() {
		klog.Infof("layouts: Reshape(%v, %s) -> %s", dims, layout, t)
	}
}

// ReshapeBlocking replaces both dims and blocking directly, labeling the
// result Blocked. No validation against the named patterns is attempted: the
// caller is assumed to know what they are doing.
func (t *TensorDesc) ReshapeBlocking(dims []int, blocking BlockingDesc) {
	t.blocking = blocking.Clone()
	t.dims = slices.Clone(dims)
	t.layout = Blocked
}

// Equal reports whether both descriptors describe the same tensor layout:
// blocking, dtype, layout tag and dims must all match.
func (t *TensorDesc) Equal(other *TensorDesc) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	return t.blocking.Equal(other.blocking) &&
		t.dtype == other.dtype &&
		t.layout == other.layout &&
		slices.Equal(t.dims, other.dims)
}

// String pretty-prints the descriptor, e.g. "(Float32)[2 3 4 5] NCHW".
func (t *TensorDesc) String() string {
	if len(t.dims) == 0 {
		return fmt.Sprintf("(%s) %s", t.dtype, t.layout)
	}
	return fmt.Sprintf("(%s)%v %s", t.dtype, t.dims, t.layout)
}
