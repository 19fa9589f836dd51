package codec

import (
	"github.com/isseis/go-string-mapper/internal/stringmapper"
)

const (
	jsonIllegalMessage    = "Illegal JSON escape sequence"
	jsonIncompleteMessage = "Incomplete JSON escape sequence"
)

// Two-unit escape results shared by every decode call.
var (
	jsonBackSlash      = stringmapper.CharResult(2, '\\')
	jsonDoubleQuote    = stringmapper.CharResult(2, '"')
	jsonSlash          = stringmapper.CharResult(2, '/')
	jsonBackSpace      = stringmapper.CharResult(2, '\b')
	jsonFormFeed       = stringmapper.CharResult(2, '\f')
	jsonNewLine        = stringmapper.CharResult(2, '\n')
	jsonCarriageReturn = stringmapper.CharResult(2, '\r')
	jsonTab            = stringmapper.CharResult(2, '\t')
)

// EncodeJSON escapes s for use inside a JSON string literal.
// If nothing needs escaping, s itself is returned.
func EncodeJSON(s string) string {
	return stringmapper.MapString(s, EncodeJSONUnits)
}

// DecodeJSON reverses JSON string escaping.
// If s contains no escapes, s itself is returned.
func DecodeJSON(s string) (string, error) {
	return stringmapper.MapStringErr(s, DecodeJSONUnits)
}

// EncodeJSONUnits is EncodeJSON on code units.
func EncodeJSONUnits(in []uint16) []uint16 {
	return stringmapper.MapCharacters(in, jsonEncodeChar)
}

// DecodeJSONUnits is DecodeJSON on code units.
func DecodeJSONUnits(in []uint16) ([]uint16, error) {
	return stringmapper.MapSubstrings(in, jsonDecodeAt)
}

func jsonEncodeChar(c uint16) ([]uint16, bool) {
	switch c {
	case '\\':
		return []uint16{'\\', '\\'}, true
	case '"':
		return []uint16{'\\', '"'}, true
	case '\b':
		return []uint16{'\\', 'b'}, true
	case '\f':
		// Kept as \f rather than \u000c for compatibility with existing output.
		return []uint16{'\\', 'f'}, true
	case '\n':
		return []uint16{'\\', 'n'}, true
	case '\r':
		return []uint16{'\\', 'r'}, true
	case '\t':
		return []uint16{'\\', 't'}, true
	}
	if c >= ' ' && c <= '~' {
		return nil, false
	}
	return stringmapper.AppendHex4LC([]uint16{'\\', 'u'}, c), true
}

func jsonDecodeAt(in []uint16, i int) (stringmapper.Result, error) {
	if in[i] != '\\' {
		return stringmapper.Result{}, nil
	}
	if err := stringmapper.CheckLength(in, i, 2, jsonIncompleteMessage); err != nil {
		return stringmapper.Result{}, err
	}
	switch in[i+1] {
	case '\\':
		return jsonBackSlash, nil
	case '"':
		return jsonDoubleQuote, nil
	case '/':
		return jsonSlash, nil
	case 'b':
		return jsonBackSpace, nil
	case 'f':
		return jsonFormFeed, nil
	case 'n':
		return jsonNewLine, nil
	case 'r':
		return jsonCarriageReturn, nil
	case 't':
		return jsonTab, nil
	case 'u':
		return stringmapper.BuildResult(in, i, 6, jsonIncompleteMessage, func() (uint16, error) {
			v, err := hexValue(in[i+2 : i+6])
			if err != nil {
				return 0, stringmapper.NewSequenceError(jsonIllegalMessage, i)
			}
			return v, nil
		})
	default:
		return stringmapper.Result{}, stringmapper.NewSequenceError(jsonIllegalMessage, i)
	}
}

// hexValue combines hex digits, most significant first.
func hexValue(digits []uint16) (uint16, error) {
	var v uint16
	for _, d := range digits {
		n, err := stringmapper.FromHexDigit(d)
		if err != nil {
			return 0, err
		}
		v = v<<4 | uint16(n)
	}
	return v, nil
}
