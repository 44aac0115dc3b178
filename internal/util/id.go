// Package util contains small internal helpers shared across packages.
package util

import "github.com/google/uuid"

// NewID generates a new unique identifier.
//
// This function creates a UUID-based unique identifier used for subscription
// tracking and correlation throughout the runtime.
func NewID() string { return uuid.NewString() }
