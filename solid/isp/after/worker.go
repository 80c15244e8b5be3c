// Package after splits the fat worker interface in two. A Robot is a Worker
// and nothing more, so there is no Eat to call on it.
package after

// Worker is the capability every worker has.
type Worker interface {
	Work() string
}

// Eater is implemented only by workers that take lunch.
type Eater interface {
	Eat() string
}

// Human is both a Worker and an Eater.
type Human struct{}

func (Human) Work() string { return "Human works" }

func (Human) Eat() string { return "Human eats" }

// Robot is a Worker only; it cannot appear in a []Eater.
type Robot struct{}

func (Robot) Work() string { return "Robot works" }

// Shift has every worker do its job.
func Shift(workers []Worker) []string {
	out := make([]string, 0, len(workers))
	for _, w := range workers {
		out = append(out, w.Work())
	}
	return out
}

// LunchBreak feeds everyone who eats. Only Eaters are accepted.
func LunchBreak(eaters []Eater) []string {
	out := make([]string, 0, len(eaters))
	for _, e := range eaters {
		out = append(out, e.Eat())
	}
	return out
}

var (
	_ Worker = Human{}
	_ Eater  = Human{}
	_ Worker = Robot{}
)
