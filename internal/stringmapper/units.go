package stringmapper

import (
	"unicode/utf16"
	"unsafe"
)

// Units converts s to UTF-16 code units. Invalid UTF-8 becomes U+FFFD and
// characters outside the BMP become surrogate pairs.
func Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// ASCII converts an ASCII-only literal to code units.
func ASCII(s string) []uint16 {
	u := make([]uint16, len(s))
	for i := 0; i < len(s); i++ {
		u[i] = uint16(s[i])
	}
	return u
}

// String converts code units back to a Go string. Unpaired surrogates become
// U+FFFD.
func String(u []uint16) string {
	return string(utf16.Decode(u))
}

// Same reports whether a and b are the same slice (same backing array start
// and length), which is how the engines signal "nothing was mapped".
func Same(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// SameString reports whether a and b share their backing data. Any two empty
// strings are considered the same.
func SameString(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || unsafe.StringData(a) == unsafe.StringData(b)
}

// MapString runs a unit-level mapping over s. When the mapping leaves the
// units untouched, s itself is returned.
func MapString(s string, fn func([]uint16) []uint16) string {
	in := Units(s)
	out := fn(in)
	if Same(in, out) {
		return s
	}
	return String(out)
}

// MapStringErr is MapString for mappings that can fail.
func MapStringErr(s string, fn func([]uint16) ([]uint16, error)) (string, error) {
	in := Units(s)
	out, err := fn(in)
	if err != nil {
		return "", err
	}
	if Same(in, out) {
		return s, nil
	}
	return String(out), nil
}
