package after_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sghaida/oopsolid/solid/srp/after"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func sampleOrder() after.Order {
	return after.NewOrder(after.Item{Price: 10, Quantity: 2}, after.Item{Price: 5, Quantity: 3})
}

func TestOrder_Total(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		order after.Order
		want  float64
	}{
		{name: "two lines", order: sampleOrder(), want: 35},
		{name: "empty", order: after.NewOrder(), want: 0},
		{name: "zero quantity", order: after.NewOrder(after.Item{Price: 99, Quantity: 0}), want: 0},
		{name: "fractional price", order: after.NewOrder(after.Item{Price: 0.5, Quantity: 3}), want: 1.5},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tc.want, tc.order.Total(), 1e-9)
		})
	}
}

func TestOrderSaver_Text(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "order.txt")
	require.NoError(t, after.OrderSaver{}.Save(sampleOrder(), path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Items:[{10 2} {5 3}], Total:35", string(b))

	// saving again replaces the content
	require.NoError(t, after.NewOrderSaver(after.TextEncoder{}).Save(after.NewOrder(), path))
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Items:[], Total:0", string(b))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestOrderSaver_Msgpack(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "order.msgpack")
	require.NoError(t, after.NewOrderSaver(after.MsgpackEncoder{}).Save(sampleOrder(), path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var snap after.Snapshot
	require.NoError(t, msgpack.Unmarshal(b, &snap))
	assert.Equal(t, sampleOrder().Items, snap.Items)
	assert.Equal(t, 35.0, snap.Total)
}

type brokenEncoder struct{ err error }

func (b brokenEncoder) Encode(after.Order) ([]byte, error) { return nil, b.err }

func TestOrderSaver_Errors(t *testing.T) {
	t.Parallel()

	err := after.OrderSaver{}.Save(sampleOrder(), "")
	assert.ErrorIs(t, err, after.ErrNoFilename)

	boom := errors.New("boom")
	err = after.NewOrderSaver(brokenEncoder{err: boom}).Save(sampleOrder(), filepath.Join(t.TempDir(), "x"))
	assert.ErrorIs(t, err, boom)

	err = after.OrderSaver{}.Save(sampleOrder(), filepath.Join(t.TempDir(), "missing", "order.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write ")
}

func TestEmailSender(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	s := after.NewEmailSender(&out)

	require.NoError(t, s.Send("test@email.com", "Your order has been placed"))
	assert.Equal(t, "Sending message to test@email.com: Your order has been placed\n", out.String())

	assert.ErrorIs(t, s.Send("  ", "hi"), after.ErrNoRecipient)
	assert.ErrorIs(t, after.EmailSender{}.Send("a@b.c", "dropped"), after.ErrNoOutput)
}
