package hexcolor

import "errors"

// ErrInvalidHex is returned when a color does not parse as a hexadecimal number.
var ErrInvalidHex = errors.New("invalid hex color")
