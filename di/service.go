package di

import (
	"errors"
	"reflect"
	"strconv"
)

var (
	// ErrNilTarget is returned when an injector is applied to a nil service
	// or a service whose Val is nil.
	ErrNilTarget = errors.New("di: nil target service")

	// ErrNilDep is the generic form of NilDependencyServiceError.
	ErrNilDep = errors.New("di: nil dependency service")

	// ErrNilBind is the generic form of NilBindError.
	ErrNilBind = errors.New("di: nil bind function")
)

// DependencyKey names a dependency slot in a Service's Deps.
//
//	const (
//	  KeyInput  di.DependencyKey = "input"
//	  KeyOutput di.DependencyKey = "output"
//	)
type DependencyKey string

// Key converts a string into a DependencyKey.
func Key(name string) DependencyKey { return DependencyKey(name) }

// DuplicateKeyError is returned when a key is bound twice into the same Service.
type DuplicateKeyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e DuplicateKeyError) Error() string {
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned by TryGetAs when a key was never bound.
type MissingDependencyError struct{ Key DependencyKey }

// Error implements the error interface.
func (e MissingDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned by TryGetAs when the key is bound to a
// value of another type.
type WrongTypeDependencyError struct {
	Key DependencyKey

	// GotType is the dynamic type of the stored value.
	GotType string
}

// Error implements the error interface.
func (e WrongTypeDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.GotType + ")"
}

// NilDependencyServiceError reports a nil dependency for a specific key.
type NilDependencyServiceError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilDependencyServiceError) Error() string {
	return "di: nil dependency service for key " + strconv.Quote(string(e.Key))
}

// Is lets errors.Is(err, ErrNilDep) match regardless of key.
func (e NilDependencyServiceError) Is(target error) bool { return target == ErrNilDep }

// NilBindError reports a nil bind function for a specific key.
type NilBindError struct{ Key DependencyKey }

// Error implements the error interface.
func (e NilBindError) Error() string {
	return "di: nil bind function for key " + strconv.Quote(string(e.Key))
}

// Is lets errors.Is(err, ErrNilBind) match regardless of key.
func (e NilBindError) Is(target error) bool { return target == ErrNilBind }

// Service is a constructed value plus the dependencies bound into it.
//
// Deps stores each bound dependency as the *D pointer it was injected with,
// so GetAs and TryGetAs can hand back the same pointer the bind function saw.
type Service[T any] struct {
	// Val is the value being wired. Injectors refuse to run when it is nil.
	Val *T

	// Deps records what was bound, keyed by DependencyKey.
	Deps map[DependencyKey]any
}

// Init constructs a Service by calling ctor.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{Val: ctor(), Deps: make(map[DependencyKey]any)}
}

// Value returns the constructed value.
func (s *Service[T]) Value() *T { return s.Val }

// Injector binds one dependency into a Service.
type Injector[T any] func(*Service[T]) error

// With applies a single injector. A nil injector is a no-op.
func (s *Service[T]) With(inj Injector[T]) (*Service[T], error) {
	if inj == nil {
		return s, nil
	}
	if err := inj(s); err != nil {
		return s, err
	}
	return s, nil
}

// WithAll applies injectors in order and stops at the first error.
func (s *Service[T]) WithAll(injs ...Injector[T]) (*Service[T], error) {
	for _, inj := range injs {
		if _, err := s.With(inj); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Injecting returns an Injector that records dep under key and then calls
// bind to attach it to the target value.
//
// The injector fails with ErrNilTarget, NilDependencyServiceError,
// NilBindError or DuplicateKeyError; on failure the target is left untouched.
func Injecting[T any, D any](
	key DependencyKey,
	dep *Service[D],
	bind func(target *T, dependency *D),
) Injector[T] {
	return func(s *Service[T]) error {
		if s == nil || s.Val == nil {
			return ErrNilTarget
		}
		if dep == nil || dep.Val == nil {
			return NilDependencyServiceError{Key: key}
		}
		if bind == nil {
			return NilBindError{Key: key}
		}
		if s.Deps == nil {
			s.Deps = make(map[DependencyKey]any)
		}
		if _, exists := s.Deps[key]; exists {
			return DuplicateKeyError{Key: key}
		}

		s.Deps[key] = dep.Val
		bind(s.Val, dep.Val)
		return nil
	}
}

// Has reports whether anything is bound under key.
func (s *Service[T]) Has(key DependencyKey) bool {
	if s == nil || s.Deps == nil {
		return false
	}
	_, ok := s.Deps[key]
	return ok
}

// GetAs returns the dependency under key as *D.
func GetAs[T any, D any](s *Service[T], key DependencyKey) (*D, bool) {
	if s == nil || s.Deps == nil {
		return nil, false
	}
	raw, ok := s.Deps[key]
	if !ok || raw == nil {
		return nil, false
	}
	d, ok := raw.(*D)
	return d, ok
}

// TryGetAs is GetAs with a typed error explaining the miss.
func TryGetAs[T any, D any](s *Service[T], key DependencyKey) (*D, error) {
	if s == nil || s.Deps == nil {
		return nil, MissingDependencyError{Key: key}
	}
	raw, ok := s.Deps[key]
	if !ok || raw == nil {
		return nil, MissingDependencyError{Key: key}
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, WrongTypeDependencyError{Key: key, GotType: reflect.TypeOf(raw).String()}
	}
	return d, nil
}

// Interface wraps an interface value in a Service so it can be injected like
// any other dependency. A nil value yields a Service with a nil Val.
func Interface[I any](v I) *Service[I] {
	if any(v) == nil {
		return &Service[I]{Deps: make(map[DependencyKey]any)}
	}
	return Init(func() *I { return &v })
}
