package receipt

import (
	"github.com/shopspring/decimal"

	"github.com/zombor/receipt-tax/internal/tax"
)

// Status describes how a single input file was handled
type Status string

const (
	StatusProcessed Status = "processed"
	StatusSkipped   Status = "skipped" // wrong extension
	StatusMissing   Status = "missing" // input file not found
	StatusFailed    Status = "failed"  // read or write error
)

// Totals accumulates prices and taxes over the recognized lines of one receipt
type Totals struct {
	Price decimal.Decimal
	Tax   decimal.Decimal
}

// Add folds one item's pricing into the totals
func (t *Totals) Add(p tax.Pricing) {
	t.Price = t.Price.Add(p.UpdatedPrice)
	t.Tax = t.Tax.Add(p.TaxCharged)
}

// Counts tracks how many lines were recognized or rejected
type Counts struct {
	Items        int
	Unrecognized int
}

// FileReport is the outcome of processing one input file
type FileReport struct {
	Input  string
	Output string
	Status Status
	Counts
	Totals Totals
	Err    error
}
