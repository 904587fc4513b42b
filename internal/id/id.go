// Package id provides utilities for generating unique identifiers.
// sift attaches one to every run's log records so a supervisor's retries
// can be told apart in the shared log file.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generate returns a random 6-character hex ID.
func Generate() string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
