package id

import (
	"fmt"
	"sync/atomic"
)

// Sequence is a monotonically increasing counter.
// The zero value is ready to use and starts at 1.
type Sequence struct {
	n atomic.Uint64
}

// NewSequence creates a sequence whose first Next returns start+1.
func NewSequence(start uint64) *Sequence {
	s := &Sequence{}
	s.n.Store(start)
	return s
}

// Next increments the sequence and returns the new value.
func (s *Sequence) Next() uint64 {
	return s.n.Add(1)
}

// Current returns the last value handed out, or the start value if Next
// was never called.
func (s *Sequence) Current() uint64 {
	return s.n.Load()
}

// Format takes the next value and renders it as PREFIX-0001.
// An empty prefix renders only the zero-padded number.
func (s *Sequence) Format(prefix string) string {
	n := s.Next()
	if prefix == "" {
		return fmt.Sprintf("%04d", n)
	}
	return fmt.Sprintf("%s-%04d", prefix, n)
}

// Reset sets the sequence back to zero.
func (s *Sequence) Reset() {
	s.n.Store(0)
}

// Process-wide sequences.
var (
	OrderIDs      = NewSequence(0)
	ConnectionIDs = NewSequence(0)
	EmployeeIDs   = NewSequence(0)
)
