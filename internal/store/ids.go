package store

import "sync/atomic"

// IDGenerator hands out record identifiers. Values are never reused, even
// after the record that carried them is deleted. Safe for concurrent use.
type IDGenerator struct {
	next atomic.Uint64
}

// NewIDGenerator returns a generator whose first identifier is 0.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns a fresh identifier.
func (g *IDGenerator) Next() uint64 {
	return g.next.Add(1) - 1
}
