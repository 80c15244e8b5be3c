// Package before puts every order concern on one type: totals, file output
// and customer notification all change for different reasons yet live on
// OrderProcessor.
package before

import (
	"fmt"
	"io"
	"os"
)

// Item is one order line.
type Item struct {
	Price    float64
	Quantity int
}

// OrderProcessor computes, saves and announces an order.
type OrderProcessor struct {
	Items []Item
}

// NewOrderProcessor returns a processor for items.
func NewOrderProcessor(items ...Item) *OrderProcessor {
	return &OrderProcessor{Items: items}
}

// Total sums price times quantity over all items.
func (p *OrderProcessor) Total() float64 {
	var total float64
	for _, it := range p.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Save writes "Items:<items>, Total:<total>" to filename.
func (p *OrderProcessor) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "Items:%v, Total:%v", p.Items, p.Total()); err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	return f.Close()
}

// SendConfirmation prints the confirmation notice for email to w.
func (p *OrderProcessor) SendConfirmation(w io.Writer, email string) error {
	_, err := fmt.Fprintf(w, "Sending confirmation to %s\n", email)
	return err
}
