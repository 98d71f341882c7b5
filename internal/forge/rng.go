package forge

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// RandomSource produces uniform samples in [0, 1)
type RandomSource interface {
	Float64() float64
}

// cryptoSource draws every sample from crypto/rand, so no two calls share seed
// state and outcomes cannot be replayed.
type cryptoSource struct{}

func (cryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64() //nolint:gosec // fallback only when the OS source fails
	}
	// 53 random bits -> [0, 1)
	u := binary.BigEndian.Uint64(buf[:]) >> 11
	return float64(u) / (1 << 53)
}

// DefaultSource returns the production random source
func DefaultSource() RandomSource { return cryptoSource{} }

// FixedSource always returns the same value. Useful to force success (0) or
// failure (anything >= the chance being tested) in tests.
type FixedSource float64

func (f FixedSource) Float64() float64 { return float64(f) }

// SequenceSource replays values in order and then repeats the last one
type SequenceSource struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewSequenceSource creates a source that replays values
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	if s.next < len(s.values)-1 {
		s.next++
	}
	return v
}
