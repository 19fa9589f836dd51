package stringmapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errClassifier = errors.New("classifier failure")

// tildeEscape is the JSON Pointer style mapping: ~ -> ~0, / -> ~1.
func tildeEscape(c uint16) ([]uint16, bool) {
	switch c {
	case '~':
		return ASCII("~0"), true
	case '/':
		return ASCII("~1"), true
	default:
		return nil, false
	}
}

func TestMapCharacters(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		fn       CharFunc
		expected string
	}{
		{
			name:     "nothing mapped",
			input:    "unchanged",
			fn:       func(uint16) ([]uint16, bool) { return nil, false },
			expected: "unchanged",
		},
		{
			name:     "single replacement",
			input:    "a/b",
			fn:       tildeEscape,
			expected: "a~1b",
		},
		{
			name:     "replacement after first mapped unit",
			input:    "a/~b",
			fn:       tildeEscape,
			expected: "a~1~0b",
		},
		{
			name:     "first unit mapped",
			input:    "/ab",
			fn:       tildeEscape,
			expected: "~1ab",
		},
		{
			name:     "last unit mapped",
			input:    "ab~",
			fn:       tildeEscape,
			expected: "ab~0",
		},
		{
			name:  "empty replacement elides",
			input: "a-b-c",
			fn: func(c uint16) ([]uint16, bool) {
				if c == '-' {
					return nil, true
				}
				return nil, false
			},
			expected: "abc",
		},
		{
			name:     "empty input",
			input:    "",
			fn:       tildeEscape,
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := MapCharacters(ASCII(tc.input), tc.fn)
			assert.Equal(t, tc.expected, String(result))
		})
	}
}

func TestMapCharacters_ReturnsInputWhenUnchanged(t *testing.T) {
	in := ASCII("unchanged")
	out := MapCharacters(in, tildeEscape)
	assert.True(t, Same(in, out), "expected the input slice itself")

	changed := MapCharacters(ASCII("a/b"), tildeEscape)
	assert.False(t, Same(in, changed))
}

func TestMapCharacters_DoesNotModifyInput(t *testing.T) {
	in := ASCII("a/b/c")
	_ = MapCharacters(in, tildeEscape)
	assert.Equal(t, "a/b/c", String(in))
}

func TestMapCharacters_ClassifierPanicPropagates(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		MapCharacters(ASCII("abc"), func(c uint16) ([]uint16, bool) {
			if c == 'b' {
				panic("boom")
			}
			return nil, false
		})
	})
}

func TestMapSubstrings(t *testing.T) {
	unchanged := ASCII("unchanged")

	testCases := []struct {
		name     string
		input    []uint16
		fn       SubstringFunc
		expected string
	}{
		{
			name:  "nothing mapped",
			input: unchanged,
			fn: func([]uint16, int) (Result, error) {
				return Result{}, nil
			},
			expected: "unchanged",
		},
		{
			name:  "elision of single units",
			input: unchanged,
			fn: func(in []uint16, i int) (Result, error) {
				switch in[i] {
				case 'h', 'n', 'u':
					return ElisionResult(1), nil
				}
				return Result{}, nil
			},
			expected: "caged",
		},
		{
			name:  "text replacement of a run",
			input: unchanged,
			fn: func(in []uint16, i int) (Result, error) {
				if i+3 <= len(in) && String(in[i:i+3]) == "ang" {
					return TextResult(3, ASCII("eck")), nil
				}
				return Result{}, nil
			},
			expected: "unchecked",
		},
		{
			name:  "char replacement consuming two units",
			input: ASCII(`a\nb\tc`),
			fn: func(in []uint16, i int) (Result, error) {
				if in[i] != '\\' {
					return Result{}, nil
				}
				switch in[i+1] {
				case 'n':
					return CharResult(2, '\n'), nil
				case 't':
					return CharResult(2, '\t'), nil
				}
				return Result{}, nil
			},
			expected: "a\nb\tc",
		},
		{
			name:  "result consuming the whole input",
			input: ASCII("xyz"),
			fn: func(_ []uint16, i int) (Result, error) {
				if i == 0 {
					return CharResult(3, '!'), nil
				}
				return Result{}, nil
			},
			expected: "!",
		},
		{
			name:  "empty input",
			input: []uint16{},
			fn: func([]uint16, int) (Result, error) {
				return ElisionResult(1), nil
			},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := MapSubstrings(tc.input, tc.fn)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, String(result))
		})
	}
}

func TestMapSubstrings_ReturnsInputWhenUnchanged(t *testing.T) {
	in := ASCII("unchanged")
	out, err := MapSubstrings(in, func([]uint16, int) (Result, error) {
		return Result{}, nil
	})
	require.NoError(t, err)
	assert.True(t, Same(in, out), "expected the input slice itself")
}

func TestMapSubstrings_ErrorStopsScan(t *testing.T) {
	testCases := []struct {
		name    string
		failAt  int
		visited int
	}{
		{name: "before any mapping", failAt: 1, visited: 2},
		{name: "after first mapping", failAt: 3, visited: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			out, err := MapSubstrings(ASCII("a-bcd"), func(in []uint16, i int) (Result, error) {
				calls++
				if i == tc.failAt {
					return Result{}, errClassifier
				}
				if in[i] == '-' {
					return ElisionResult(1), nil
				}
				return Result{}, nil
			})
			assert.ErrorIs(t, err, errClassifier)
			assert.Nil(t, out)
			assert.Equal(t, tc.visited, calls)
		})
	}
}

func TestMapSubstrings_OverrunPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = MapSubstrings(ASCII("ab"), func(_ []uint16, i int) (Result, error) {
			if i == 1 {
				return CharResult(2, 'x'), nil
			}
			return Result{}, nil
		})
	})
}

func TestMapSubstrings_ResumesAfterConsumedRun(t *testing.T) {
	var visited []int
	out, err := MapSubstrings(ASCII("%41%42c"), func(in []uint16, i int) (Result, error) {
		visited = append(visited, i)
		if in[i] == '%' {
			return CharResult(3, in[i+2]), nil
		}
		return Result{}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "12c", String(out))
	assert.Equal(t, []int{0, 3, 6}, visited)
}
