package repo

import (
	"sync"
	"time"
)

// InvoiceSequence issues invoice numbers of the form INV-YYYYMMDDHHMMSS.
// The original second-granularity stamp collides when two sales are created
// within the same second, so the sequence never hands out the same stamp
// twice: a second call inside one second advances to the next logical
// second. The UNIQUE constraint on sales.invoice_number backstops races
// between separate processes.
type InvoiceSequence struct {
	mu   sync.Mutex
	last time.Time
}

func NewInvoiceSequence() *InvoiceSequence {
	return &InvoiceSequence{}
}

// Next returns a fresh invoice number.
func (s *InvoiceSequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Second)
	if !now.After(s.last) {
		now = s.last.Add(time.Second)
	}
	s.last = now

	return "INV-" + now.Format("20060102150405")
}
