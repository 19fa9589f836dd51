package stringmapper

// CheckLength verifies that in holds at least required units starting at
// index. It must be called before reading lookahead units, so a truncated
// escape sequence becomes a SequenceError rather than an index panic.
//
// An empty message selects DefaultIncompleteMessage.
func CheckLength(in []uint16, index, required int, message string) error {
	if index+required <= len(in) {
		return nil
	}
	if message == "" {
		message = DefaultIncompleteMessage
	}
	return NewSequenceError(message, index)
}

// BuildResult checks that length units are available at index and returns a
// single-unit Result consuming them, with the unit computed by fn.
// fn is only called once the length check has passed.
func BuildResult(in []uint16, index, length int, message string, fn func() (uint16, error)) (Result, error) {
	if err := CheckLength(in, index, length, message); err != nil {
		return Result{}, err
	}
	c, err := fn()
	if err != nil {
		return Result{}, err
	}
	return CharResult(length, c), nil
}
