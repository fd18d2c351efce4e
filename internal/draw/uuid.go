package draw

import (
	"github.com/google/uuid"
)

// UUIDs is a source of random UUIDv4 strings. It has no seeded mode;
// uuid draws from the operating system's entropy, which this program
// treats as always available.
type UUIDs struct{}

func (UUIDs) Draw() string {
	return uuid.NewString()
}

var _ Source[string] = UUIDs{}
