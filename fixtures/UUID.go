package fixtures

import uuid "github.com/satori/go.uuid"

// UUID returns a fresh universally unique identifier in its text form.
// Tests use it for entity identifiers and unique temp file paths.
func UUID() string {
	return uuid.NewV4().String()
}
