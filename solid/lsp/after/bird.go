// Package after separates moving from flying. Every Bird moves; only a
// FlyingBird flies, so asking an Ostrich to fly does not compile.
package after

// Bird is what every bird can do.
type Bird interface {
	Move() string
}

// FlyingBird is a Bird that can also fly.
type FlyingBird interface {
	Bird
	Fly() string
}

// Duck moves and flies.
type Duck struct{}

func (Duck) Move() string { return "Duck swims and flies" }

func (Duck) Fly() string { return "Duck flies" }

// Ostrich moves but is not a FlyingBird.
type Ostrich struct{}

func (Ostrich) Move() string { return "Ostrich runs" }

// MakeBirdMove works for any Bird.
func MakeBirdMove(b Bird) string { return b.Move() }

// MakeBirdFly accepts only birds that can fly.
func MakeBirdFly(b FlyingBird) string { return b.Fly() }

// Flyers keeps the birds that can fly, in order.
func Flyers(birds []Bird) []FlyingBird {
	var out []FlyingBird
	for _, b := range birds {
		if fb, ok := b.(FlyingBird); ok {
			out = append(out, fb)
		}
	}
	return out
}

var (
	_ FlyingBird = Duck{}
	_ Bird       = Ostrich{}
)
