package notify

import (
	"strconv"
	"sync/atomic"
)

// ID identifies a notification. IDs are never reused by the generator that
// produced them.
type ID uint64

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// IDGenerator hands out monotonically increasing ids starting at 1. Two calls
// never return the same id, even within the same clock tick.
type IDGenerator struct {
	last atomic.Uint64
}

// NewIDGenerator returns a generator whose first id is 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next id.
func (g *IDGenerator) Next() ID {
	return ID(g.last.Add(1))
}
