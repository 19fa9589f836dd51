package codec

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/isseis/go-string-mapper/internal/stringmapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeURI(t *testing.T) {
	unchanged := "unchanged"
	assert.True(t, stringmapper.SameString(unchanged, EncodeURI(unchanged)))

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "slash", input: "a/b", expected: "a%2Fb"},
		{name: "reserved punctuation", input: "(?)", expected: "%28%3F%29"},
		{name: "space", input: "a b", expected: "a%20b"},
		{name: "dollar is escaped", input: "$5", expected: "%245"},
		{name: "plus is escaped", input: "1+1", expected: "1%2B1"},
		{name: "percent is escaped", input: "100%", expected: "100%25"},
		{name: "unreserved marks", input: "a-b.c_d~e", expected: "a-b.c_d~e"},
		{name: "latin-1 unit", input: "caf\u00E9", expected: "caf%E9"},
		{name: "unit above one byte keeps low byte", input: "\u2014", expected: "%14"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EncodeURI(tc.input))
		})
	}
}

func TestDecodeURI(t *testing.T) {
	unchanged := "unchanged"
	result, err := DecodeURI(unchanged)
	require.NoError(t, err)
	assert.True(t, stringmapper.SameString(unchanged, result))

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "slash", input: "a%2Fb", expected: "a/b"},
		{name: "reserved punctuation", input: "%28%3F%29", expected: "(?)"},
		{name: "lower case hex", input: "a%2fb", expected: "a/b"},
		{name: "plus for space", input: "a+b", expected: "a b"},
		{name: "plus and percent", input: "a+b+c%2Cd", expected: "a b c,d"},
		{name: "encoded plus stays plus", input: "1%2B1", expected: "1+1"},
		{name: "byte value", input: "caf%E9", expected: "caf\u00E9"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := DecodeURI(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestDecodeURI_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
		index   int
	}{
		{name: "lone percent", input: "%", wantErr: uriIncompleteMessage, index: 0},
		{name: "one digit", input: "%2", wantErr: uriIncompleteMessage, index: 0},
		{name: "one digit at end", input: "ab%4", wantErr: uriIncompleteMessage, index: 2},
		{name: "illegal first digit", input: "%G1", wantErr: uriIllegalMessage, index: 0},
		{name: "illegal second digit", input: "a%1G", wantErr: uriIllegalMessage, index: 1},
		{name: "illegal after plus", input: "+%%%", wantErr: uriIllegalMessage, index: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := DecodeURI(tc.input)
			require.Error(t, err)
			assert.Empty(t, result)
			assert.EqualError(t, err, tc.wantErr)
			assert.ErrorIs(t, err, stringmapper.ErrInvalidArgument)

			var seqErr *stringmapper.SequenceError
			require.True(t, errors.As(err, &seqErr))
			assert.Equal(t, tc.index, seqErr.Index)
		})
	}
}

func TestURI_Scenario(t *testing.T) {
	encoded := EncodeURI("a/b")
	assert.Equal(t, "a%2Fb", encoded)
	decoded, err := DecodeURI(encoded)
	require.NoError(t, err)
	assert.Equal(t, "a/b", decoded)
}

func TestURI_RoundTripUnits(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for n := 0; n < 500; n++ {
		original := randomUnits(rng, 0xFF)

		encoded := EncodeURIUnits(original)
		for _, c := range encoded {
			require.True(t, IsUnreservedForURI(c) || c == '%', "unexpected unit %#x in output", c)
		}

		decoded, err := DecodeURIUnits(encoded)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	}
}

func TestURIComponent(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		encoded string
	}{
		{name: "ascii", input: "a b/c", encoded: "a%20b%2Fc"},
		{name: "two byte", input: "caf\u00E9", encoded: "caf%C3%A9"},
		{name: "three byte", input: "\u2014", encoded: "%E2%80%94"},
		{name: "plus", input: "1+1", encoded: "1%2B1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := EncodeURIComponent(tc.input)
			assert.Equal(t, tc.encoded, encoded)

			decoded, err := DecodeURIComponent(encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.input, decoded)
		})
	}

	unchanged := "unchanged"
	assert.True(t, stringmapper.SameString(unchanged, EncodeURIComponent(unchanged)))

	_, err := DecodeURIComponent("%C3")
	assert.EqualError(t, err, utf8IncompleteMessage)

	_, err = DecodeURIComponent("%C3%")
	assert.EqualError(t, err, uriIncompleteMessage)
}

func TestIsUnreservedForURI(t *testing.T) {
	for _, c := range "ABYZabyz0189-._~" {
		assert.True(t, IsUnreservedForURI(uint16(c)), "%q should be unreserved", c)
	}
	for _, c := range "!\"#$%&'()*+,/:;<=>?@[\\]^`{|} \u00E9" {
		assert.False(t, IsUnreservedForURI(uint16(c)), "%q should be reserved", c)
	}
}
