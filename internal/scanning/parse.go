package scanning

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Unmatched reasons
const (
	ReasonNoMatch        = "line does not match item grammar"
	ReasonMalformedPrice = "malformed price"
)

// itemPattern is "1<blanks><name>at<blanks><price>", searched from the start of the line.
//  1. ^[ \t]*1     optional leading blanks, then the quantity
//  2. [a-zA-Z_ ]+  the item name; greedy, so the last "at" before the price closes it
//  3. at[ \t]+     the literal "at"
//  4. [0-9][0-9.]* the price token, validated separately
var itemPattern = regexp.MustCompile(`^[ \t]*(1)[ \t]+([a-zA-Z_ ]+)at[ \t]+([0-9][0-9.]*)`)

var pricePattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// Grammar parses receipt lines of the form "1 imported box of chocolates at 10.00"
type Grammar struct{}

// NewGrammar creates a new Grammar
func NewGrammar() *Grammar {
	return &Grammar{}
}

// ParseLine matches a line against the item grammar
func (g *Grammar) ParseLine(line string) Result {
	groups := itemPattern.FindStringSubmatch(line)
	if groups == nil {
		return unmatched(ReasonNoMatch)
	}

	// Several dots or a trailing dot still fit the token, but are not a number
	token := groups[3]
	if !pricePattern.MatchString(token) {
		return unmatched(ReasonMalformedPrice)
	}
	price, err := decimal.NewFromString(token)
	if err != nil {
		return unmatched(ReasonMalformedPrice)
	}

	return matched(Item{
		Quantity: groups[1],
		Name:     strings.TrimSpace(groups[2]),
		Price:    price,
	})
}

// ParseLine parses a line with the default grammar
func ParseLine(line string) Result {
	return (&Grammar{}).ParseLine(line)
}
