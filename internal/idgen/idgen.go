package idgen

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Generator produces the next identifier for a fixture store. Implementations
// must be safe for concurrent use.
type Generator interface {
	NextID() string
}

// Sequence hands out increasing integer ids, starting one past the highest
// id seen in the seed data.
type Sequence struct {
	mu   sync.Mutex
	next int
}

func NewSequence(seed []int) *Sequence {
	max := 0
	for _, id := range seed {
		if id > max {
			max = id
		}
	}
	return &Sequence{next: max + 1}
}

func (s *Sequence) NextInt() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	return id
}

func (s *Sequence) NextID() string {
	return strconv.Itoa(s.NextInt())
}

// Prefixed yields zero-padded ids like "ORD-001", counting up from start.
type Prefixed struct {
	mu     sync.Mutex
	prefix string
	width  int
	next   int
}

func NewPrefixed(prefix string, width, start int) *Prefixed {
	return &Prefixed{prefix: prefix, width: width, next: start}
}

func (p *Prefixed) NextID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.next
	p.next++
	return fmt.Sprintf("%s%0*d", p.prefix, p.width, id)
}

// UUID yields random opaque ids.
type UUID struct{}

func (UUID) NextID() string {
	return uuid.NewString()
}
