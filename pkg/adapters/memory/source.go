package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/aretw0/placeholder/pkg/domain"
)

// Call records one FetchCollection invocation.
type Call struct {
	Kind   domain.ResourceKind
	Filter domain.Filter
}

// Source implements ports.DataSource in memory.
// Safe for concurrent use.
type Source struct {
	data     map[domain.ResourceKind][]domain.Record
	failures map[domain.ResourceKind]error
	calls    []Call
	mu       sync.RWMutex
}

// NewSource creates an empty in-memory source.
func NewSource() *Source {
	return &Source{
		data:     make(map[domain.ResourceKind][]domain.Record),
		failures: make(map[domain.ResourceKind]error),
	}
}

// NewSourceFrom creates a source seeded with the given collections.
func NewSourceFrom(data map[domain.ResourceKind][]domain.Record) *Source {
	s := NewSource()
	for kind, records := range data {
		s.Add(kind, records...)
	}
	return s
}

// Add appends records to a collection.
func (s *Source) Add(kind domain.ResourceKind, records ...domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		copied := make(domain.Record, len(r))
		for k, v := range r {
			copied[k] = v
		}
		s.data[kind] = append(s.data[kind], copied)
	}
}

// FailOn makes every fetch of kind return err. A nil err clears the failure.
func (s *Source) FailOn(kind domain.ResourceKind, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, kind)
		return
	}
	s.failures[kind] = err
}

// Calls returns the fetches issued so far, in order.
func (s *Source) Calls() []Call {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Call(nil), s.calls...)
}

// FetchCollection returns a copy of the matching records.
func (s *Source) FetchCollection(ctx context.Context, kind domain.ResourceKind, filter domain.Filter) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.calls = append(s.calls, Call{Kind: kind, Filter: filter})
	s.mu.Unlock()

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownResource, kind)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.failures[kind]; err != nil {
		return nil, err
	}

	out := make([]domain.Record, 0)
	for _, r := range s.data[kind] {
		if !matches(r, filter) {
			continue
		}
		copied := make(domain.Record, len(r))
		for k, v := range r {
			copied[k] = v
		}
		out = append(out, copied)
	}
	return out, nil
}

func matches(r domain.Record, f domain.Filter) bool {
	if f.UserID != 0 && intField(r, "userId") != f.UserID {
		return false
	}
	if f.PostID != 0 && intField(r, "postId") != f.PostID {
		return false
	}
	return true
}

// intField reads a numeric field regardless of how it was decoded (YAML int, JSON float, json.Number).
func intField(r domain.Record, key string) int {
	switch v := r[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}
