// Package before forces every Worker to implement Eat, so a Robot has to
// carry a method it can only refuse.
package before

import (
	"errors"
	"fmt"
)

// ErrCannotEat is returned by workers that do not eat.
var ErrCannotEat = errors.New("robot does not eat")

// Worker forces every implementation to support both Work and Eat.
type Worker interface {
	Work() string
	Eat() (string, error)
}

// Human can do both, so the fat interface fits it.
type Human struct{}

func (Human) Work() string { return "Human works" }

func (Human) Eat() (string, error) { return "Human eats", nil }

// Robot has to implement Eat even though it cannot eat.
type Robot struct{}

func (Robot) Work() string { return "Robot works" }

func (Robot) Eat() (string, error) { return "", ErrCannotEat }

// LunchBreak feeds every worker and stops at the first refusal.
func LunchBreak(workers []Worker) ([]string, error) {
	out := make([]string, 0, len(workers))
	for i, w := range workers {
		msg, err := w.Eat()
		if err != nil {
			return out, fmt.Errorf("worker %d: %w", i, err)
		}
		out = append(out, msg)
	}
	return out, nil
}
