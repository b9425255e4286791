package assert

import "fmt"

// Panics with `message` if `condition` is false.
//
// Used for preconditions that are the caller's responsibility. Violations
// are bugs, not recoverable errors.
func True(condition bool, message string) {
	if !condition {
		panic(fmt.Sprintf("assertion failed: %s", message))
	}
}
