package di

import (
	"errors"
	"fmt"
	"sort"
)

// Registry resolves named components at wiring time.
//
// Implementations must be read-only and free of side effects; cfg is passed
// through so a registry can specialise on configuration.
type Registry interface {
	Resolve(cfg any, key string) (val any, ok bool, err error)
}

// ErrRegistryPanic is returned if a registry panics inside Resolve.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// MapRegistry is an in-memory Registry. It ignores cfg.
type MapRegistry struct {
	items map[string]any
}

// NewMapRegistry returns an empty MapRegistry.
func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[string]any{}}
}

// Provide stores val under key and returns the registry for chaining.
func (r *MapRegistry) Provide(key string, val any) *MapRegistry {
	r.items[key] = val
	return r
}

// Resolve implements Registry and converts panics into ErrRegistryPanic.
func (r *MapRegistry) Resolve(_ any, key string) (val any, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	v, ok := r.items[key]
	return v, ok, nil
}

// Get returns the value under key, if any.
func (r *MapRegistry) Get(key string) (any, bool) {
	v, ok := r.items[key]
	return v, ok
}

// Keys returns the registered keys in sorted order.
func (r *MapRegistry) Keys() []string {
	out := make([]string, 0, len(r.items))
	for k := range r.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ResolveAs resolves key from reg and asserts the result to V.
//
// It returns MissingDependencyError when the key is absent and
// WrongTypeDependencyError when the stored value is not a V.
func ResolveAs[V any](reg Registry, cfg any, key string) (V, error) {
	var zero V
	if reg == nil {
		return zero, MissingDependencyError{Key: Key(key)}
	}
	raw, ok, err := reg.Resolve(cfg, key)
	if err != nil {
		return zero, err
	}
	if !ok || raw == nil {
		return zero, MissingDependencyError{Key: Key(key)}
	}
	v, ok := raw.(V)
	if !ok {
		return zero, WrongTypeDependencyError{Key: Key(key), GotType: fmt.Sprintf("%T", raw)}
	}
	return v, nil
}
