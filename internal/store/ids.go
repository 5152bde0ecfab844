package store

import "github.com/google/uuid"

// newRecordID returns a fresh record identifier.
func newRecordID() string {
	return uuid.NewString()
}
