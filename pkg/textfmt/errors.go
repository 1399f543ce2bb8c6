package textfmt

import "errors"

// ErrInvalidPadChar is the panic value used when a pad character is not
// exactly one character long.
var ErrInvalidPadChar = errors.New("textfmt: padding must be a single character")
