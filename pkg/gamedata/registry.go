package gamedata

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRegistration is returned when a name is registered twice.
	ErrDuplicateRegistration = errors.New("duplicate registration")
	// ErrNotFound is returned when looking up a name that was never registered.
	ErrNotFound = errors.New("not found")
	// ErrInvalidFace is returned for a face value outside top/side/bottom.
	ErrInvalidFace = errors.New("invalid face")
)

// Entry is anything that can be stored in a Registry.
type Entry interface {
	Key() string
}

// Registry holds immutable entries keyed by unique name, preserving
// registration order. It is not safe for concurrent registration; lookups
// after startup are read-only.
type Registry[T Entry] struct {
	kind    string
	index   map[string]int
	entries []T
}

// NewRegistry creates an empty registry. kind names the entry type in errors.
func NewRegistry[T Entry](kind string) *Registry[T] {
	return &Registry[T]{
		kind:  kind,
		index: make(map[string]int),
	}
}

// Register adds v. A name that already exists is rejected.
func (r *Registry[T]) Register(v T) error {
	name := v.Key()
	if name == "" {
		return fmt.Errorf("register %s: empty name", r.kind)
	}
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("register %s %q: %w", r.kind, name, ErrDuplicateRegistration)
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, v)
	return nil
}

// Get returns the entry registered under name.
func (r *Registry[T]) Get(name string) (T, error) {
	i, ok := r.index[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", r.kind, name, ErrNotFound)
	}
	return r.entries[i], nil
}

// Exists reports whether name is registered.
func (r *Registry[T]) Exists(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Order returns the registration position of name, or -1.
func (r *Registry[T]) Order(name string) int {
	i, ok := r.index[name]
	if !ok {
		return -1
	}
	return i
}

// All returns every entry once, in registration order.
func (r *Registry[T]) All() []T {
	out := make([]T, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}
