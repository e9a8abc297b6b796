package basis

import "errors"

// ErrInvalidFilter is returned by ParseLengthFilter for a malformed filter
// expression.
var ErrInvalidFilter = errors.New("basis: invalid filter")
