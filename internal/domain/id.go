package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record id prefixes, one per collection.
const (
	IDPrefixReservation = "RES"
	IDPrefixRental      = "RENT"
	IDPrefixReturn      = "RET"
	IDPrefixInspection  = "INS"
)

// NewID generates an identifier like "RES-1704067200000-3f9a2c1b".
// Uniqueness is probabilistic (millisecond timestamp plus a random
// suffix), which is acceptable because a single controller issues ids
// sequentially in-process.
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}
