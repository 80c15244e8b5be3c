package after_test

import (
	"testing"

	"github.com/sghaida/oopsolid/solid/isp/after"
	"github.com/stretchr/testify/assert"
)

func TestShift(t *testing.T) {
	t.Parallel()

	got := after.Shift([]after.Worker{after.Human{}, after.Robot{}})
	assert.Equal(t, []string{"Human works", "Robot works"}, got)
	assert.Empty(t, after.Shift(nil))
}

func TestLunchBreak(t *testing.T) {
	t.Parallel()

	// []after.Eater{after.Robot{}} does not compile: Robot has no Eat.
	got := after.LunchBreak([]after.Eater{after.Human{}, after.Human{}})
	assert.Equal(t, []string{"Human eats", "Human eats"}, got)
}

func TestRobotIsNotAnEater(t *testing.T) {
	t.Parallel()

	var w after.Worker = after.Robot{}
	_, eats := w.(after.Eater)
	assert.False(t, eats)

	w = after.Human{}
	_, eats = w.(after.Eater)
	assert.True(t, eats)
}
