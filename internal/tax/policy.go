package tax

import "github.com/shopspring/decimal"

// Policy holds the tax schedule applied to receipt items
type Policy struct {
	ImportDutyRate decimal.Decimal
	SalesTaxRate   decimal.Decimal
	RoundingStep   decimal.Decimal // each tax component is rounded up to a multiple of this
	ImportedWord   string
	ExemptWords    []string
}

// DefaultPolicy returns the schedule: 5% import duty, 10% basic sales tax, round up to 0.05,
// with books, chocolate and pills exempt from sales tax
func DefaultPolicy() Policy {
	return Policy{
		ImportDutyRate: decimal.RequireFromString("0.05"),
		SalesTaxRate:   decimal.RequireFromString("0.10"),
		RoundingStep:   decimal.RequireFromString("0.05"),
		ImportedWord:   "imported",
		ExemptWords:    []string{"book", "chocolate", "chocolates", "pills"},
	}
}
