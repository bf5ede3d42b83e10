package scanning

import "github.com/shopspring/decimal"

// Item is a receipt line that matched the item grammar
type Item struct {
	Quantity string // always "1"; carried but not used for pricing
	Name     string
	Price    decimal.Decimal
}

// Result is the outcome of parsing one line: either an Item or the reason it was not recognized
type Result struct {
	Item   *Item
	Reason string
}

// Matched reports whether the line was recognized as an item
func (r Result) Matched() bool {
	return r.Item != nil
}

// LineParser defines the interface for turning receipt lines into items
type LineParser interface {
	// ParseLine matches a single line against the item grammar
	ParseLine(line string) Result
}

func matched(item Item) Result {
	return Result{Item: &item}
}

func unmatched(reason string) Result {
	return Result{Reason: reason}
}
