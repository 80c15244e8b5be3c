// Package before models flight as something every Bird can do, so an Ostrich
// can only refuse at run time. Substituting an Ostrich for a Bird breaks
// callers that rely on Fly.
package before

import (
	"errors"
	"fmt"
)

// ErrCannotFly is returned by birds that cannot fly.
var ErrCannotFly = errors.New("ostrich cannot fly")

// Bird assumes every bird can fly.
type Bird interface {
	Fly() (string, error)
}

// Sparrow is a Bird that really flies.
type Sparrow struct{}

func (Sparrow) Fly() (string, error) { return "Sparrow flies", nil }

// Ostrich satisfies Bird but fails at runtime in Fly.
type Ostrich struct{}

func (Ostrich) Fly() (string, error) { return "", ErrCannotFly }

// MakeBirdsFly flies every bird in order and stops at the first refusal.
func MakeBirdsFly(birds []Bird) ([]string, error) {
	out := make([]string, 0, len(birds))
	for i, b := range birds {
		msg, err := b.Fly()
		if err != nil {
			return out, fmt.Errorf("bird %d: %w", i, err)
		}
		out = append(out, msg)
	}
	return out, nil
}
