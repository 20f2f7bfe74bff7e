package core

import (
	"strings"

	"github.com/google/uuid"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// NewID returns a fresh record identifier.
func NewID() string {
	return uuid.NewString()
}

// BoundedPrepend inserts item at the head of items and evicts the oldest entries
// past capacity. Collections kept newest-first (notifications, audit log) share it.
func BoundedPrepend[T any](items []T, item T, capacity int) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	out = append(out, items...)
	if len(out) > capacity {
		out = out[:capacity]
	}
	return out
}
