// Package uuid generates and validates the UUIDv7 identifiers used as
// primary keys.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// canonicalLen is the length of the hyphenated 8-4-4-4-12 form.
const canonicalLen = 36

// New returns a UUIDv7. Within one process the values are strictly
// increasing, so ordering by ID follows creation order.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Only fails when the random source does.
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid reports whether s is a UUID in canonical hyphenated form. The
// braced and urn:uuid: forms accepted by the parser are rejected so that
// path IDs match the stored keys byte for byte.
func IsValid(s string) bool {
	if len(s) != canonicalLen {
		return false
	}
	_, err := googleuuid.Parse(s)
	return err == nil
}
