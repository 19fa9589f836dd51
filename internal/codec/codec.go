// Package codec provides the escape codecs built on the stringmapper engines:
// JSON string escaping, URI percent-encoding and a UTF-8 transcoding that
// works on 16-bit code units.
//
// Every codec is a pair of pure functions. Encoding never fails; decoding
// fails with an error wrapping stringmapper.ErrInvalidArgument whose message
// is either "Illegal <codec> ..." (malformed escape) or "Incomplete <codec> ..."
// (escape truncated by the end of input). When no unit needs mapping the
// input string itself is returned.
//
// Example Usage:
//
//	c, err := codec.Lookup("json")
//	if err != nil {
//	    // Handle unknown codec
//	}
//	out, err := c.Apply(codec.Decode, `a\tb`)
package codec

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Static errors for registry lookups
var (
	// ErrUnknownCodec indicates that no codec is registered under a name
	ErrUnknownCodec = errors.New("unknown codec")
	// ErrUnknownDirection indicates a direction other than encode or decode
	ErrUnknownDirection = errors.New("unknown direction")
)

// Direction selects encoding or decoding.
type Direction string

const (
	// Encode escapes text.
	Encode Direction = "encode"
	// Decode reverses escaping.
	Decode Direction = "decode"
)

// ParseDirection converts a name to a Direction.
func ParseDirection(name string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(name))); d {
	case Encode, Decode:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDirection, name)
	}
}

// Codec is a named encode/decode pair.
type Codec struct {
	name   string
	encode func(string) string
	decode func(string) (string, error)
}

// Name returns the registry name of c.
func (c Codec) Name() string {
	return c.name
}

// Encode escapes s.
func (c Codec) Encode(s string) string {
	return c.encode(s)
}

// Decode reverses Encode.
func (c Codec) Decode(s string) (string, error) {
	return c.decode(s)
}

// Apply runs c in direction d.
func (c Codec) Apply(d Direction, s string) (string, error) {
	switch d {
	case Encode:
		return c.encode(s), nil
	case Decode:
		return c.decode(s)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDirection, string(d))
	}
}

var registry = map[string]Codec{
	"json":          {name: "json", encode: EncodeJSON, decode: DecodeJSON},
	"uri":           {name: "uri", encode: EncodeURI, decode: DecodeURI},
	"uri-component": {name: "uri-component", encode: EncodeURIComponent, decode: DecodeURIComponent},
	"utf8":          {name: "utf8", encode: EncodeUTF8, decode: DecodeUTF8},
}

// Lookup returns the codec registered under name (case-insensitive).
func Lookup(name string) (Codec, error) {
	c, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Codec{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownCodec, name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Names lists the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
