package pwl

import "errors"

// ErrIoUnavailable is returned by Open when the backing file cannot be
// created or opened. Every other operation on a PWL treats a file that
// later becomes unavailable as a silent skip of the file-touching step
// rather than a hard error: malformed-line conditions are logged
// warnings (see file.go), not error values, and missing or empty word
// arguments are handled by Go's ordinary zero-value semantics rather
// than a distinct error type.
var ErrIoUnavailable = errors.New("pwl: backing file unavailable")
