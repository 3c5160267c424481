package lifetrack

import "github.com/google/uuid"

// NewID returns a fresh opaque entity key.
func NewID() string { return uuid.NewString() }
