package stringmapper

const (
	upperHex = "0123456789ABCDEF"
	lowerHex = "0123456789abcdef"
)

// FromHexDigit converts a hexadecimal digit (either case) to its value.
func FromHexDigit(c uint16) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, nil
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, nil
	default:
		return 0, &HexDigitError{Unit: c}
	}
}

// AppendHex2 appends the low byte of v as two upper-case hex digits.
func AppendHex2(dst []uint16, v uint16) []uint16 {
	return append(dst, uint16(upperHex[(v>>4)&0xF]), uint16(upperHex[v&0xF]))
}

// AppendHex4LC appends v as four lower-case hex digits.
func AppendHex4LC(dst []uint16, v uint16) []uint16 {
	return append(dst,
		uint16(lowerHex[v>>12]),
		uint16(lowerHex[(v>>8)&0xF]),
		uint16(lowerHex[(v>>4)&0xF]),
		uint16(lowerHex[v&0xF]))
}
