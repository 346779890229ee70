package records

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator mints fresh record ids. Collisions are assumed impossible.
type IDGenerator func() ID

// NewUUID returns a time-based (version 1) UUID, falling back to a random one
// when the node id or clock sequence cannot be obtained.
func NewUUID() ID {
	u, err := uuid.NewUUID()
	if err != nil {
		return ID(uuid.NewString())
	}
	return ID(u.String())
}

// Sequence returns a generator producing prefix-1, prefix-2, ...
// Handy for deterministic output in tests and demos.
func Sequence(prefix string) IDGenerator {
	var n atomic.Uint64
	return func() ID {
		return ID(fmt.Sprintf("%s-%d", prefix, n.Add(1)))
	}
}
