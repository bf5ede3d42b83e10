package tax

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Pricing is the taxed price of a single item
type Pricing struct {
	UpdatedPrice decimal.Decimal
	TaxCharged   decimal.Decimal
	ImportDuty   decimal.Decimal
	SalesTax     decimal.Decimal
}

// Calculator applies a Policy to item names and prices
type Calculator struct {
	policy Policy
	exempt map[string]struct{}
}

// NewCalculator creates a Calculator for the given policy
func NewCalculator(policy Policy) *Calculator {
	exempt := make(map[string]struct{}, len(policy.ExemptWords))
	for _, w := range policy.ExemptWords {
		exempt[w] = struct{}{}
	}
	// The schedule is fixed once the calculator exists
	policy.ExemptWords = append([]string(nil), policy.ExemptWords...)

	return &Calculator{
		policy: policy,
		exempt: exempt,
	}
}

// Policy returns a copy of the schedule in use
func (c *Calculator) Policy() Policy {
	p := c.policy
	p.ExemptWords = append([]string(nil), c.policy.ExemptWords...)
	return p
}

// Compute returns the updated price and tax charged for one unit of the named item.
// Import duty and sales tax are rounded separately before they are summed.
func (c *Calculator) Compute(name string, price decimal.Decimal) Pricing {
	duty := decimal.Zero
	sales := decimal.Zero

	if c.IsImported(name) {
		duty = RoundUp(price.Mul(c.policy.ImportDutyRate), c.policy.RoundingStep)
	}
	if !c.IsExempt(name) {
		sales = RoundUp(price.Mul(c.policy.SalesTaxRate), c.policy.RoundingStep)
	}

	charged := duty.Add(sales)
	return Pricing{
		UpdatedPrice: price.Add(charged),
		TaxCharged:   charged,
		ImportDuty:   duty,
		SalesTax:     sales,
	}
}

// IsImported reports whether the name contains the imported word as a whole word
func (c *Calculator) IsImported(name string) bool {
	for _, word := range strings.Fields(name) {
		if word == c.policy.ImportedWord {
			return true
		}
	}
	return false
}

// IsExempt reports whether any whole word of the name is in the exemption set
func (c *Calculator) IsExempt(name string) bool {
	for _, word := range strings.Fields(name) {
		if _, ok := c.exempt[word]; ok {
			return true
		}
	}
	return false
}

// RoundUp rounds value up to the nearest multiple of step.
// A non-positive step leaves the value unchanged.
func RoundUp(value, step decimal.Decimal) decimal.Decimal {
	if !step.IsPositive() {
		return value
	}
	return value.Div(step).Ceil().Mul(step)
}
