package domain

import "time"

// IdempotencyRecord stores the outcome of a billed click under its
// client-supplied key. Outcome is nil while the owning transaction is open.
type IdempotencyRecord struct {
	Key         string
	RequestHash string
	Outcome     []byte
	CreatedAt   time.Time
}
