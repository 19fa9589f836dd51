package codec

import (
	"github.com/isseis/go-string-mapper/internal/stringmapper"
)

const (
	utf8IllegalMessage    = "Illegal UTF-8 sequence"
	utf8IncompleteMessage = "Incomplete UTF-8 sequence"
)

// EncodeUTF8 transcodes each 16-bit code unit of s to UTF-8, one output unit
// per byte. Surrogate pairs are encoded unit by unit, not as a code point.
func EncodeUTF8(s string) string {
	return stringmapper.MapString(s, EncodeUTF8Units)
}

// DecodeUTF8 reverses EncodeUTF8.
func DecodeUTF8(s string) (string, error) {
	return stringmapper.MapStringErr(s, DecodeUTF8Units)
}

// EncodeUTF8Units is EncodeUTF8 on code units.
func EncodeUTF8Units(in []uint16) []uint16 {
	return stringmapper.MapCharacters(in, utf8EncodeChar)
}

// DecodeUTF8Units is DecodeUTF8 on code units.
func DecodeUTF8Units(in []uint16) ([]uint16, error) {
	return stringmapper.MapSubstrings(in, utf8DecodeAt)
}

func utf8EncodeChar(c uint16) ([]uint16, bool) {
	switch {
	case c <= 0x7F:
		return nil, false
	case c <= 0x7FF:
		return []uint16{
			0xC0 | c>>6,
			0x80 | c&0x3F,
		}, true
	default:
		return []uint16{
			0xE0 | c>>12,
			0x80 | (c>>6)&0x3F,
			0x80 | c&0x3F,
		}, true
	}
}

func utf8DecodeAt(in []uint16, i int) (stringmapper.Result, error) {
	first := in[i]
	switch {
	case first <= 0x7F:
		return stringmapper.Result{}, nil
	case first <= 0xDF:
		return stringmapper.BuildResult(in, i, 2, utf8IncompleteMessage, func() (uint16, error) {
			second := in[i+1]
			if !isContinuation(second) {
				return 0, stringmapper.NewSequenceError(utf8IllegalMessage, i)
			}
			return (first&0x1F)<<6 | second&0x3F, nil
		})
	default:
		return stringmapper.BuildResult(in, i, 3, utf8IncompleteMessage, func() (uint16, error) {
			second, third := in[i+1], in[i+2]
			if !isContinuation(second) || !isContinuation(third) {
				return 0, stringmapper.NewSequenceError(utf8IllegalMessage, i)
			}
			return (first&0x0F)<<12 | (second&0x3F)<<6 | third&0x3F, nil
		})
	}
}

// isContinuation reports whether c has the 10xxxxxx continuation form.
func isContinuation(c uint16) bool {
	return c&0xC0 == 0x80
}
