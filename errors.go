package layouts

import "github.com/pkg/errors"

// Sentinel errors panicked by this package on contract violations. They are
// always thrown wrapped (errors.Wrapf attaches a stack and the offending
// values), so match them with errors.Is. They signal programming errors, not
// transient conditions: there is nothing to retry.
var (
	// ErrSizeMismatch indicates blocking attributes of different lengths:
	// block dims, order, strides and leading pads must all line up.
	ErrSizeMismatch = errors.New("blocking attributes have mismatching lengths")

	// ErrShapeMismatch indicates logical dimensions inconsistent with the
	// requested layout: wrong rank for a named layout, or a blocking order
	// referencing a different number of logical axes than dims has.
	ErrShapeMismatch = errors.New("dimensions are inconsistent with the layout")

	// ErrLayoutUnset indicates an offset was requested from a descriptor
	// whose layout is still Any.
	ErrLayoutUnset = errors.New("layout is not set")

	// ErrConfiguration indicates a blocking descriptor whose internal
	// bookkeeping is inconsistent, detected lazily at offset time. Only
	// reachable through the raw construction paths.
	ErrConfiguration = errors.New("blocking descriptor is internally inconsistent")

	// ErrNotReshapable indicates a reshape of a descriptor with non-zero
	// leading padding: a padded or sub-ranged tensor cannot be reinterpreted
	// under a new shape safely.
	ErrNotReshapable = errors.New("descriptor with leading padding cannot be reshaped")
)
