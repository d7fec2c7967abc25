package order

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortDate       SortKey = "date"
	SortAmountHigh SortKey = "amountHigh"
	SortAmountLow  SortKey = "amountLow"
)

// FilterOptions are the criteria the admin order pages select.
type FilterOptions struct {
	// Query matches Customer and ID, case-insensitive substring, untrimmed.
	Query string
	// Status "" or "all" (any case) passes everything; otherwise
	// case-insensitive equality.
	Status string
	Sort   SortKey
}

// Filter produces the ordered subset of orders to render. Pure and stable,
// same contract as the product engine.
func Filter(items []Order, opts FilterOptions) []Order {
	out := make([]Order, 0, len(items))
	for _, o := range items {
		if matches(o, opts) {
			out = append(out, o)
		}
	}

	switch opts.Sort {
	case SortDate:
		sort.SliceStable(out, func(i, j int) bool {
			// ISO dates compare correctly as strings, newest first
			return out[i].Date > out[j].Date
		})
	case SortAmountHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount > out[j].Amount
		})
	case SortAmountLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Amount < out[j].Amount
		})
	}
	return out
}

func matches(o Order, opts FilterOptions) bool {
	if opts.Query != "" {
		q := strings.ToLower(opts.Query)
		if !strings.Contains(strings.ToLower(o.Customer), q) &&
			!strings.Contains(strings.ToLower(o.ID), q) {
			return false
		}
	}
	if opts.Status != "" && !strings.EqualFold(opts.Status, "all") {
		if !strings.EqualFold(string(o.Status), opts.Status) {
			return false
		}
	}
	return true
}
