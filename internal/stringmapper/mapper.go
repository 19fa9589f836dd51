// Package stringmapper provides the scan-and-rewrite engines used by the
// escape codecs.
//
// Text is handled as a sequence of 16-bit code units ([]uint16, the same
// representation as unicode/utf16). Two engines are provided:
//
//   - MapCharacters rewrites one unit at a time using a CharFunc. Encoders
//     use it: each unit either passes through or expands to a replacement.
//   - MapSubstrings rewrites variable-length runs using a SubstringFunc that
//     may look ahead. Decoders use it to collapse escape sequences.
//
// Both engines return the input slice itself when nothing was mapped, so a
// caller can detect "unchanged" with Same instead of comparing contents.
// Output buffers are only allocated from the first mapped position on.
//
// Example Usage:
//
//	out, err := stringmapper.MapSubstrings(in, func(in []uint16, i int) (stringmapper.Result, error) {
//	    if in[i] != '%' {
//	        return stringmapper.Result{}, nil
//	    }
//	    return stringmapper.BuildResult(in, i, 3, "Incomplete escape", decodeHex)
//	})
package stringmapper

import "fmt"

// CharFunc classifies a single code unit. ok == false copies c unchanged;
// otherwise c is replaced by replacement, which may be empty.
type CharFunc func(c uint16) (replacement []uint16, ok bool)

// SubstringFunc classifies the position i of in. A zero Result copies in[i]
// unchanged. A non-zero Result must consume at least one unit and must not
// run past the end of in.
type SubstringFunc func(in []uint16, i int) (Result, error)

// MapCharacters maps each unit of in through fn.
//
// If fn maps nothing, in is returned unchanged (not a copy).
func MapCharacters(in []uint16, fn CharFunc) []uint16 {
	for i, c := range in {
		replacement, ok := fn(c)
		if !ok {
			continue
		}

		out := make([]uint16, 0, growHint(len(in), len(replacement)))
		out = append(out, in[:i]...)
		out = append(out, replacement...)
		for _, c := range in[i+1:] {
			if replacement, ok := fn(c); ok {
				out = append(out, replacement...)
			} else {
				out = append(out, c)
			}
		}
		return out
	}
	return in
}

// MapSubstrings maps runs of in through fn.
//
// If fn maps nothing, in is returned unchanged (not a copy). If fn returns an
// error the scan stops and the error is returned as is, with a nil slice.
func MapSubstrings(in []uint16, fn SubstringFunc) ([]uint16, error) {
	for i := 0; i < len(in); i++ {
		r, err := fn(in, i)
		if err != nil {
			return nil, err
		}
		if r.IsZero() {
			continue
		}

		out := make([]uint16, 0, len(in))
		out = append(out, in[:i]...)
		out = r.AppendTo(out)
		j := advance(in, i, r)
		for j < len(in) {
			r, err := fn(in, j)
			if err != nil {
				return nil, err
			}
			if r.IsZero() {
				out = append(out, in[j])
				j++
				continue
			}
			out = r.AppendTo(out)
			j = advance(in, j, r)
		}
		return out, nil
	}
	return in, nil
}

// advance returns the index following r, panicking if r runs past the input.
func advance(in []uint16, i int, r Result) int {
	next := i + r.Len()
	if next > len(in) {
		panic(fmt.Sprintf("stringmapper: %s result of length %d at index %d overruns input of length %d",
			r.Kind(), r.Len(), i, len(in)))
	}
	return next
}

// growHint estimates the output capacity once the first replacement is seen.
func growHint(n, replacementLen int) int {
	if replacementLen <= 1 {
		return n
	}
	return n + n/2 + replacementLen
}
