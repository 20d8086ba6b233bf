package utils

import (
	"unicode/utf8"
)

// IsBinary reports whether the provided byte slice cannot be decoded as UTF-8 text.
// NUL and other control characters are valid text.
func IsBinary(data []byte) bool {
	return !utf8.Valid(data)
}
