package layouts

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
)

func TestOffsetCounter(t *testing.T) {
	dims := []int{2, 3, 4, 5}
	for _, layout := range []NamedLayout{NCHW, NHWC} {
		counter := NewOffsetCounter(layout, dims)
		desc := New(dtypes.Float32, dims, layout)
		for pos := range desc.Positions() {
			require.Equalf(t, desc.Offset(pos), counter.Offset(pos), "layout=%s pos=%v", layout, pos)
		}
	}
}

func TestOffsetCounterUnsupported(t *testing.T) {
	require.Panics(t, func() { NewOffsetCounter(CHW, []int{2, 3, 4}) })
	require.Panics(t, func() { NewOffsetCounter(NCHW, []int{2, 3}) })
}
