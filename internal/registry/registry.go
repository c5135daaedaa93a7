// Package registry maps string keys to factories. Question types, validators
// and themes are all looked up by name through a Registry; registering the
// same name twice is an error rather than a silent overwrite.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/muurk/formulary/internal/logging"
)

// AlreadyRegisteredError is returned when a name is registered twice.
type AlreadyRegisteredError struct {
	Kind string
	Name string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("%s %q is already registered", e.Kind, e.Name)
}

// NotFoundError is returned by Lookup for an unknown name.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}

// Registry is a concurrency-safe name to value table.
type Registry[T any] struct {
	kind    string
	mu      sync.RWMutex
	entries map[string]T
}

// New creates an empty registry. kind is used in error messages
// ("validator", "question type", ...).
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, entries: make(map[string]T)}
}

// Kind returns the entry kind this registry was created with.
func (r *Registry[T]) Kind() string {
	return r.kind
}

// Register adds value under name.
func (r *Registry[T]) Register(name string, value T) error {
	if name == "" {
		return fmt.Errorf("%s name cannot be empty", r.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return &AlreadyRegisteredError{Kind: r.kind, Name: name}
	}
	r.entries[name] = value
	logging.LogRegistration(r.kind, name)
	return nil
}

// MustRegister is Register for built-in tables populated at construction.
func (r *Registry[T]) MustRegister(name string, value T) {
	if err := r.Register(name, value); err != nil {
		panic(err)
	}
}

// Lookup returns the value registered under name.
func (r *Registry[T]) Lookup(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.entries[name]
	if !ok {
		var zero T
		return zero, &NotFoundError{Kind: r.kind, Name: name}
	}
	return value, nil
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
