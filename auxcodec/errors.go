package auxcodec

import "errors"

// ErrDecode wraps any failure reading an aux stream: missing zlib header,
// truncated record, or an underlying I/O error (spec.md §7 AuxIOError).
var ErrDecode = errors.New("auxcodec: cannot decode aux stream")
