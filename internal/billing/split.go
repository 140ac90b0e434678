// Package billing turns an order's raw item string and amount into the
// per-item lines shown on a printed bill.
package billing

import (
	"math"
	"strings"
)

// Line is one priced entry on a bill.
type Line struct {
	ItemName string  `json:"item_name"`
	Amount   float64 `json:"amount"`
}

// Split divides amount evenly across the comma-separated item names in
// items. Every line gets the same price, rounded to two decimals with
// half-away-from-zero rounding, so the sum of the lines may drift from
// amount by a few paise on uneven divisions. The drift is intentional;
// the table total is always computed from the order amounts, not from
// the bill lines.
//
// An empty or whitespace-only items string yields no lines regardless
// of amount.
func Split(items string, amount float64) []Line {
	names := SplitItems(items)
	if len(names) == 0 {
		return nil
	}

	perItem := round2(amount / float64(len(names)))
	lines := make([]Line, 0, len(names))
	for _, name := range names {
		lines = append(lines, Line{ItemName: name, Amount: perItem})
	}
	return lines
}

// SplitItems splits a raw comma-separated item string into trimmed,
// non-empty item names, preserving order.
func SplitItems(items string) []string {
	var names []string
	for _, token := range strings.Split(items, ",") {
		if name := strings.TrimSpace(token); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
