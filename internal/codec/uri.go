package codec

import (
	"github.com/isseis/go-string-mapper/internal/stringmapper"
)

const (
	uriIllegalMessage    = "Illegal URI escape sequence"
	uriIncompleteMessage = "Incomplete URI escape sequence"
)

var uriSpace = stringmapper.CharResult(1, ' ')

// EncodeURI percent-encodes every unit of s outside the unreserved set.
//
// Each unit is encoded as a single byte; units above 0xFF lose their high
// byte. Use EncodeURIComponent for arbitrary text.
func EncodeURI(s string) string {
	return stringmapper.MapString(s, EncodeURIUnits)
}

// DecodeURI reverses percent-encoding. A literal '+' decodes to a space,
// although EncodeURI never produces one.
func DecodeURI(s string) (string, error) {
	return stringmapper.MapStringErr(s, DecodeURIUnits)
}

// EncodeURIUnits is EncodeURI on code units.
func EncodeURIUnits(in []uint16) []uint16 {
	return stringmapper.MapCharacters(in, uriEncodeChar)
}

// DecodeURIUnits is DecodeURI on code units.
func DecodeURIUnits(in []uint16) ([]uint16, error) {
	return stringmapper.MapSubstrings(in, uriDecodeAt)
}

// EncodeURIComponent transcodes s to UTF-8 and percent-encodes the bytes, so
// any text survives the round trip.
func EncodeURIComponent(s string) string {
	return stringmapper.MapString(s, func(in []uint16) []uint16 {
		return EncodeURIUnits(EncodeUTF8Units(in))
	})
}

// DecodeURIComponent reverses EncodeURIComponent.
func DecodeURIComponent(s string) (string, error) {
	return stringmapper.MapStringErr(s, func(in []uint16) ([]uint16, error) {
		raw, err := DecodeURIUnits(in)
		if err != nil {
			return nil, err
		}
		return DecodeUTF8Units(raw)
	})
}

// IsUnreservedForURI reports whether c is in the RFC 3986 unreserved set.
func IsUnreservedForURI(c uint16) bool {
	return c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c >= '0' && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

func uriEncodeChar(c uint16) ([]uint16, bool) {
	if IsUnreservedForURI(c) {
		return nil, false
	}
	return stringmapper.AppendHex2([]uint16{'%'}, c), true
}

func uriDecodeAt(in []uint16, i int) (stringmapper.Result, error) {
	switch in[i] {
	case '%':
		return stringmapper.BuildResult(in, i, 3, uriIncompleteMessage, func() (uint16, error) {
			v, err := hexValue(in[i+1 : i+3])
			if err != nil {
				return 0, stringmapper.NewSequenceError(uriIllegalMessage, i)
			}
			return v, nil
		})
	case '+':
		return uriSpace, nil
	default:
		return stringmapper.Result{}, nil
	}
}
