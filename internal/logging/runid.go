package logging

import (
	"github.com/oklog/ulid/v2"
)

// GenerateRunID returns a new ULID identifying one run. IDs sort by creation time.
func GenerateRunID() string {
	return ulid.Make().String()
}
