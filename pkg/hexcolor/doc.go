// Package hexcolor normalizes and converts CSS-style hex color strings.
//
// Ensure strips a leading '#', expands three-character shorthand ("9f0"
// becomes "99ff00") and optionally adds the hash back. It does not validate
// the digits: bad input only surfaces as ErrInvalidHex from ToInt or ToRGB.
//
//	hexcolor.Ensure("9f0", false)     // "#99ff00"
//	hexcolor.Ensure("#22222ff", true) // "22222ff"
//
//	rgb, err := hexcolor.ToRGB("#bc4bf0") // [188 75 240]
package hexcolor
