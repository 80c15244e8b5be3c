package before_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sghaida/oopsolid/solid/srp/before"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderProcessor_DoesEverything(t *testing.T) {
	t.Parallel()

	p := before.NewOrderProcessor(before.Item{Price: 10, Quantity: 2}, before.Item{Price: 5, Quantity: 3})
	assert.Equal(t, 35.0, p.Total())

	path := filepath.Join(t.TempDir(), "order.txt")
	require.NoError(t, p.Save(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Items:[{10 2} {5 3}], Total:35", string(b))

	var out bytes.Buffer
	require.NoError(t, p.SendConfirmation(&out, "test@email.com"))
	assert.Equal(t, "Sending confirmation to test@email.com\n", out.String())
}

func TestOrderProcessor_SaveIntoMissingDir(t *testing.T) {
	t.Parallel()

	p := before.NewOrderProcessor()
	err := p.Save(filepath.Join(t.TempDir(), "nope", "order.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save order")
}
