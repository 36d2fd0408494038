package layouts

import (
	"slices"

	"github.com/gomlx/exceptions"
)

// Logical axis positions of a batched image tensor.
const (
	axisN = 0
	axisC = 1
	axisH = 2
	axisW = 3
)

// dimPositions lists, per supported layout, the logical axes from
// fastest-varying to slowest in physical memory.
var dimPositions = map[NamedLayout][]int{
	NCHW: {axisW, axisH, axisC, axisN},
	NHWC: {axisC, axisW, axisH, axisN},
}

// OffsetCounter precomputes per-axis multipliers for repeated offset queries
// against a fixed named layout. It is a cheaper alternative to a full
// TensorDesc when no blocking, padding or base offset is involved.
//
// Only NCHW and NHWC are supported; NewOffsetCounter panics for anything else.
type OffsetCounter struct {
	layout NamedLayout
	dims   []int
	muls   []int
}

// NewOffsetCounter creates a counter for the given layout and logical dims
// (given in NCHW order, as in TensorDesc).
func NewOffsetCounter(layout NamedLayout, dims []int) *OffsetCounter {
	positions, ok := dimPositions[layout]
	if !ok {
		exceptions.Panicf("layouts.NewOffsetCounter: layout %s is not supported, only NCHW and NHWC", layout)
	}
	if len(dims) != len(positions) {
		exceptions.Panicf("layouts.NewOffsetCounter: layout %s requires %d dims, got %v", layout, len(positions), dims)
	}
	c := &OffsetCounter{
		layout: layout,
		dims:   slices.Clone(dims),
		muls:   make([]int, len(dims)),
	}
	mul := 1
	for _, axis := range positions {
		c.muls[axis] = mul
		mul *= dims[axis]
	}
	return c
}

// Offset returns the element offset of a coordinate, pos given
// least-significant axis first (w, h, c, n), the same convention as
// TensorDesc.Offset.
func (c *OffsetCounter) Offset(pos []int) int {
	res := 0
	n := len(c.dims)
	for i := 0; i < n; i++ {
		res += pos[n-1-i] * c.muls[i]
	}
	return res
}
