// internal/ident/ident.go
package ident

import "github.com/google/uuid"

// New returns a globally-unique opaque identifier. Every entity in the
// schedule forest (season, week, day, training item) gets one of these.
func New() string {
	return uuid.NewString()
}
