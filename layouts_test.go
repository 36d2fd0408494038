package layouts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamedLayoutRank(t *testing.T) {
	require.Equal(t, 1, C.Rank())
	require.Equal(t, 2, NC.Rank())
	require.Equal(t, 2, CN.Rank())
	require.Equal(t, 2, HW.Rank())
	require.Equal(t, 3, CHW.Rank())
	require.Equal(t, 4, NCHW.Rank())
	require.Equal(t, 4, NHWC.Rank())
	require.Equal(t, 4, OIHW.Rank())
	require.Equal(t, -1, Any.Rank())
	require.Equal(t, -1, Blocked.Rank())
}

func TestLayoutForDims(t *testing.T) {
	require.Equal(t, C, LayoutForDims([]int{3}))
	require.Equal(t, NC, LayoutForDims([]int{3, 4}))
	require.Equal(t, CHW, LayoutForDims([]int{3, 4, 5}))
	require.Equal(t, NCHW, LayoutForDims([]int{2, 3, 4, 5}))
	require.Equal(t, Blocked, LayoutForDims([]int{2, 3, 4, 5, 6}))
	require.Equal(t, Blocked, LayoutForDims(nil))
}

func TestNamedLayoutStrings(t *testing.T) {
	require.Equal(t, "NCHW", NCHW.String())
	require.Equal(t, "Any", Any.String())
	require.Equal(t, "Blocked", Blocked.String())

	layout, err := NamedLayoutString("nhwc")
	require.NoError(t, err)
	require.Equal(t, NHWC, layout)
	_, err = NamedLayoutString("bogus")
	require.Error(t, err)

	for _, layout := range NamedLayoutValues() {
		require.True(t, layout.IsANamedLayout())
	}
	require.False(t, NamedLayout(42).IsANamedLayout())
}
