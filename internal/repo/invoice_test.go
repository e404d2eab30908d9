package repo

import (
	"regexp"
	"testing"
)

var invoicePattern = regexp.MustCompile(`^INV-\d{14}$`)

func TestInvoiceSequenceFormat(t *testing.T) {
	seq := NewInvoiceSequence()

	inv := seq.Next()
	if !invoicePattern.MatchString(inv) {
		t.Fatalf("expected INV-<14 digits>, got %q", inv)
	}
}

func TestInvoiceSequenceUniqueWithinSameSecond(t *testing.T) {
	seq := NewInvoiceSequence()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		inv := seq.Next()
		if seen[inv] {
			t.Fatalf("duplicate invoice number %q", inv)
		}
		if !invoicePattern.MatchString(inv) {
			t.Fatalf("malformed invoice number %q", inv)
		}
		seen[inv] = true
	}
}

func TestInvoiceSequenceMonotonic(t *testing.T) {
	seq := NewInvoiceSequence()

	prev := seq.Next()
	for i := 0; i < 10; i++ {
		next := seq.Next()
		if next <= prev {
			t.Fatalf("expected %q > %q", next, prev)
		}
		prev = next
	}
}
