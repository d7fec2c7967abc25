package product

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "priceLow"
	SortPriceHigh SortKey = "priceHigh"
	SortName      SortKey = "name"
)

// FilterOptions are the criteria the list pages select.
type FilterOptions struct {
	// Query matches Name and Merchant, case-insensitive substring. It is
	// deliberately not trimmed: a whitespace-only query is a real substring.
	Query string
	// Category "" or "All"/"all" passes everything; otherwise exact,
	// case-sensitive equality.
	Category string
	Sort     SortKey
}

// Filter produces the ordered subset of items to render. It is pure: the
// input slice is never reordered or mutated, sorting is stable, and the
// same inputs always yield the same output.
func Filter(items []Product, opts FilterOptions) []Product {
	out := make([]Product, 0, len(items))
	for _, p := range items {
		if matches(p, opts) {
			out = append(out, p)
		}
	}

	switch opts.Sort {
	case SortFeatured:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Featured && !out[j].Featured
		})
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortName:
		c := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	}
	return out
}

func matches(p Product, opts FilterOptions) bool {
	if opts.Query != "" {
		q := strings.ToLower(opts.Query)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Merchant), q) {
			return false
		}
	}
	if opts.Category != "" && !strings.EqualFold(opts.Category, "all") {
		if p.Category != opts.Category {
			return false
		}
	}
	return true
}
