package stringmapper

import "fmt"

// Kind identifies the variant held by a Result.
type Kind uint8

const (
	// KindNone is the zero Kind: the classifier did not map the position.
	KindNone Kind = iota
	// KindChar replaces the consumed units with a single unit.
	KindChar
	// KindText replaces the consumed units with a run of units.
	KindText
	// KindElision drops the consumed units.
	KindElision
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindChar:
		return "char"
	case KindText:
		return "text"
	case KindElision:
		return "elision"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Result describes a replacement produced by a SubstringFunc and the number of
// input units it consumes.
//
// The zero Result means "not mapped": the engine copies one unit and moves on.
// Results are immutable once constructed, so package-level results may be
// shared freely.
type Result struct {
	kind   Kind
	length int
	char   uint16
	text   []uint16
}

// CharResult consumes length units and emits the single unit c.
func CharResult(length int, c uint16) Result {
	mustBePositive(length)
	return Result{kind: KindChar, length: length, char: c}
}

// TextResult consumes length units and emits text, which may be empty.
// text must not be modified afterwards.
func TextResult(length int, text []uint16) Result {
	mustBePositive(length)
	return Result{kind: KindText, length: length, text: text}
}

// ElisionResult consumes length units and emits nothing.
func ElisionResult(length int) Result {
	mustBePositive(length)
	return Result{kind: KindElision, length: length}
}

func mustBePositive(length int) {
	if length < 1 {
		panic(fmt.Sprintf("stringmapper: result length must be at least 1, got %d", length))
	}
}

// Kind reports the variant of r.
func (r Result) Kind() Kind {
	return r.kind
}

// Len is the number of input units consumed by r.
func (r Result) Len() int {
	return r.length
}

// IsZero reports whether r is the "not mapped" result.
func (r Result) IsZero() bool {
	return r.kind == KindNone
}

// AppendTo renders r onto dst.
func (r Result) AppendTo(dst []uint16) []uint16 {
	switch r.kind {
	case KindChar:
		return append(dst, r.char)
	case KindText:
		return append(dst, r.text...)
	default:
		return dst
	}
}
