package layouts

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/require"
)

// panicError runs fn, requires that it panicked with an error, and returns it
// for classification with require.ErrorIs.
func panicError(t *testing.T, fn func()) error {
	err := exceptions.TryCatch[error](fn)
	require.Error(t, err, "expected a panic with an error")
	return err
}

func TestNewBlocking(t *testing.T) {
	b := NewBlocking([]int{2, 3, 4}, []int{0, 1, 2})
	require.False(t, b.Empty())
	require.Equal(t, 3, b.PhysicalRank())
	require.Equal(t, []int{2, 3, 4}, b.BlockDims())
	require.Equal(t, []int{0, 1, 2}, b.Order())
	require.Equal(t, []int{12, 4, 1}, b.Strides())
	require.Equal(t, []int{0, 0, 0}, b.LeadingPads())
	require.Equal(t, 0, b.BaseOffset())

	// Single axis: stride 1.
	b1 := NewBlocking([]int{7}, []int{0})
	require.Equal(t, []int{1}, b1.Strides())

	// Empty inputs produce the unset state, nothing derived.
	require.True(t, NewBlocking(nil, nil).Empty())
	require.True(t, NewBlocking([]int{2}, nil).Empty())
	require.Empty(t, NewBlocking(nil, nil).Strides())
}

func TestNewBlockingSizeMismatch(t *testing.T) {
	err := panicError(t, func() { NewBlocking([]int{2, 3}, []int{0}) })
	require.ErrorIs(t, err, ErrSizeMismatch)

	err = panicError(t, func() { NewBlockingWithPads([]int{2, 3}, []int{0, 1}, 0, []int{0}) })
	require.ErrorIs(t, err, ErrSizeMismatch)

	err = panicError(t, func() { NewBlockingRaw([]int{2, 3}, []int{0, 1}, 0, []int{0, 0}, []int{1}) })
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestNewBlockingOverrides(t *testing.T) {
	b := NewBlockingWithOffset([]int{2, 3}, []int{0, 1}, 10)
	require.Equal(t, 10, b.BaseOffset())
	require.Equal(t, []int{3, 1}, b.Strides())

	b = NewBlockingWithPads([]int{2, 3}, []int{0, 1}, 10, []int{1, 2})
	require.Equal(t, []int{1, 2}, b.LeadingPads())
	require.Equal(t, []int{3, 1}, b.Strides())

	// Raw construction takes strides and pads verbatim.
	b = NewBlockingRaw([]int{2, 3}, []int{0, 1}, 5, []int{0, 1}, []int{100, 1})
	require.Equal(t, []int{100, 1}, b.Strides())
	require.Equal(t, []int{0, 1}, b.LeadingPads())
	require.Equal(t, 5, b.BaseOffset())
}

func TestBlockingFromLayout(t *testing.T) {
	b := BlockingFromLayout([]int{2, 3, 4, 5}, NCHW)
	require.Equal(t, []int{0, 1, 2, 3}, b.Order())
	require.Equal(t, []int{2, 3, 4, 5}, b.BlockDims())
	require.Equal(t, []int{60, 20, 5, 1}, b.Strides())

	// NHWC permutes the block dims into physical (storage) order.
	b = BlockingFromLayout([]int{2, 3, 4, 5}, NHWC)
	require.Equal(t, []int{0, 2, 3, 1}, b.Order())
	require.Equal(t, []int{2, 4, 5, 3}, b.BlockDims())
	require.Equal(t, []int{60, 15, 3, 1}, b.Strides())

	b = BlockingFromLayout([]int{2, 3}, CN)
	require.Equal(t, []int{1, 0}, b.Order())
	require.Equal(t, []int{3, 2}, b.BlockDims())

	// HW and OIHW block like their plain cousins.
	require.True(t, BlockingFromLayout([]int{2, 3}, HW).Equal(BlockingFromLayout([]int{2, 3}, NC)))
	require.True(t, BlockingFromLayout([]int{2, 3, 4, 5}, OIHW).Equal(BlockingFromLayout([]int{2, 3, 4, 5}, NCHW)))

	// Blocked defaults to the identity order.
	b = BlockingFromLayout([]int{4, 4}, Blocked)
	require.Equal(t, []int{0, 1}, b.Order())

	// Any, or no dims at all, leave the state unset.
	require.True(t, BlockingFromLayout([]int{2, 3}, Any).Empty())
	require.True(t, BlockingFromLayout(nil, NCHW).Empty())
}

func TestBlockingFromLayoutShapeMismatch(t *testing.T) {
	err := panicError(t, func() { BlockingFromLayout([]int{2, 3}, NCHW) })
	require.ErrorIs(t, err, ErrShapeMismatch)

	err = panicError(t, func() { BlockingFromLayout([]int{2, 3, 4}, C) })
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestBlockingEqual(t *testing.T) {
	base := NewBlocking([]int{2, 2}, []int{0, 1})
	require.True(t, base.Equal(base))
	require.True(t, base.Equal(NewBlocking([]int{2, 2}, []int{0, 1})))
	require.True(t, base.Equal(base.Clone()))

	// Sensitive to every attribute.
	require.False(t, base.Equal(NewBlocking([]int{2, 4}, []int{0, 1})))                                  // block dims
	require.False(t, base.Equal(NewBlocking([]int{2, 2}, []int{1, 0})))                                  // order
	require.False(t, base.Equal(NewBlockingWithOffset([]int{2, 2}, []int{0, 1}, 8)))                     // base offset
	require.False(t, base.Equal(NewBlockingWithPads([]int{2, 2}, []int{0, 1}, 0, []int{1, 0})))          // pads
	require.False(t, base.Equal(NewBlockingRaw([]int{2, 2}, []int{0, 1}, 0, []int{0, 0}, []int{4, 1}))) // strides
}

func TestBlockingClone(t *testing.T) {
	b := NewBlockingWithPads([]int{2, 3}, []int{0, 1}, 4, []int{1, 0})
	b2 := b.Clone()
	require.True(t, b.Equal(b2))

	// The clone owns its slices.
	b2.blockDims[0] = 99
	require.Equal(t, 2, b.blockDims[0])
}
