package pbx

import (
	"slices"
	"sync"
)

// graphState is shared between a Graph and its weak handles.
type graphState struct {
	mu     sync.RWMutex
	objs   map[string]Object
	order  []string
	closed bool
}

// Graph owns the project's objects, keyed by identifier. It follows a
// single-writer/many-reader discipline: mutators take the write lock,
// weak handles read under the read lock.
type Graph struct {
	state *graphState
}

func NewGraph() *Graph {
	return &Graph{state: &graphState{objs: map[string]Object{}}}
}

// Insert adds an object under id. Inserting an existing id silently
// overwrites, keeping the id's original position in iteration order.
func (g *Graph) Insert(id string, o Object) {
	s := g.state
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objs[id]; !ok {
		s.order = append(s.order, id)
	}
	s.objs[id] = o
}

// Get returns the object under id. An absent id is "not found", never
// a failure.
func (g *Graph) Get(id string) (Object, bool) {
	s := g.state
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objs[id]
	return o, ok
}

// GetMut returns the object under id for in-place mutation. Objects
// are pointers, so the returned value aliases the graph entry; GetMut
// takes the write lock so the lookup itself serializes with other
// mutators.
func (g *Graph) GetMut(id string) (Object, bool) {
	s := g.state
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.objs[id]
	return o, ok
}

func (g *Graph) Remove(id string) (Object, bool) {
	s := g.state
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.objs[id]
	if !ok {
		return nil, false
	}
	delete(s.objs, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return o, true
}

func (g *Graph) Len() int {
	s := g.state
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objs)
}

// Each visits (id, object) pairs in insertion order. Return false to
// stop.
func (g *Graph) Each(f func(id string, o Object) bool) {
	g.Weak().Each(f)
}

// Weak returns a non-owning handle for read queries.
func (g *Graph) Weak() Handle {
	return Handle{state: g.state}
}

// Close releases the graph's objects. Outstanding handles degrade to
// "no result" rather than touching freed state.
func (g *Graph) Close() {
	s := g.state
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.objs = nil
	s.order = nil
}

// Handle is a cloneable, non-owning read view of a Graph. The zero
// Handle is valid and resolves nothing.
type Handle struct {
	state *graphState
}

func (h Handle) Get(id string) (Object, bool) {
	if h.state == nil {
		return nil, false
	}
	h.state.mu.RLock()
	defer h.state.mu.RUnlock()
	if h.state.closed {
		return nil, false
	}
	o, ok := h.state.objs[id]
	return o, ok
}

func (h Handle) Each(f func(id string, o Object) bool) {
	if h.state == nil {
		return
	}
	h.state.mu.RLock()
	defer h.state.mu.RUnlock()
	if h.state.closed {
		return
	}
	for _, id := range h.state.order {
		if !f(id, h.state.objs[id]) {
			return
		}
	}
}
