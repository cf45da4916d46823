package window

import "errors"

// ErrUnsupported is returned by callers of this package on platforms other
// than Windows.
var ErrUnsupported = errors.New("taskbar embedding requires Windows")
