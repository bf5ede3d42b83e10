package receipt

import (
	"fmt"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// UnrecognizedLine is written in place of any line that is not an item
const UnrecognizedLine = "Unrecognized item; skipping!"

// DefaultOutputPrefix names output files after their input, e.g. output-input1.txt
const DefaultOutputPrefix = "output-"

// OutputPath returns the sibling output file for an input path
func OutputPath(input, prefix string) string {
	dir, base := filepath.Split(input)
	return filepath.Join(dir, prefix+base)
}

// FormatItem formats a priced item line
func FormatItem(name string, price decimal.Decimal) string {
	return fmt.Sprintf("1 %s: %s\n", name, price.StringFixed(2))
}

// FormatSummary formats the two closing lines of a receipt
func FormatSummary(t Totals) string {
	return fmt.Sprintf("Sales Taxes: %s\nTotal: %s\n", t.Tax.StringFixed(2), t.Price.StringFixed(2))
}
