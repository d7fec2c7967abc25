package product

import (
	"reflect"
	"testing"
)

func names(items []Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	items := []Product{
		{Name: "Silk Scarf", Category: "Fashion", Price: 79},
		{Name: "Olive Oil", Category: "Food & Beverage", Price: 29},
	}
	out := Filter(items, FilterOptions{Category: "Food & Beverage"})
	if len(out) != 1 || out[0].Name != "Olive Oil" {
		t.Fatalf("unexpected result %v", names(out))
	}
}

func TestFilterCategoryIsCaseSensitive(t *testing.T) {
	items := []Product{{Name: "Silk Scarf", Category: "Fashion"}}
	if out := Filter(items, FilterOptions{Category: "fashion"}); len(out) != 0 {
		t.Fatalf("lowercase category should not match, got %v", names(out))
	}
}

func TestFilterAllPassesEverything(t *testing.T) {
	items := []Product{
		{Name: "A", Category: "Fashion"},
		{Name: "B", Category: "Electronics"},
		{Name: "C", Category: "Beauty"},
	}
	for _, key := range []string{"All", "all", ""} {
		out := Filter(items, FilterOptions{Category: key, Sort: SortFeatured})
		if !reflect.DeepEqual(names(out), []string{"A", "B", "C"}) {
			t.Fatalf("category %q: expected original order, got %v", key, names(out))
		}
	}
}

func TestFilterSearchMatchesNameAndMerchant(t *testing.T) {
	items := []Product{
		{Name: "Silk Scarf", Merchant: "Rajasthan Textile House"},
		{Name: "Olive Oil", Merchant: "Tuscan Groves Co."},
	}
	if out := Filter(items, FilterOptions{Query: "SCARF"}); len(out) != 1 || out[0].Name != "Silk Scarf" {
		t.Fatalf("name search failed: %v", names(out))
	}
	if out := Filter(items, FilterOptions{Query: "tuscan"}); len(out) != 1 || out[0].Name != "Olive Oil" {
		t.Fatalf("merchant search failed: %v", names(out))
	}
	if out := Filter(items, FilterOptions{Query: "zzz"}); len(out) != 0 {
		t.Fatalf("expected no matches, got %v", names(out))
	}
}

func TestFilterWhitespaceQueryIsNotTrimmed(t *testing.T) {
	items := []Product{
		{Name: "SilkScarf"},
		{Name: "Olive Oil"},
	}
	out := Filter(items, FilterOptions{Query: " "})
	if len(out) != 1 || out[0].Name != "Olive Oil" {
		t.Fatalf("whitespace query should match only names containing a space, got %v", names(out))
	}
}

func TestSortPrice(t *testing.T) {
	items := []Product{{Price: 599.99}, {Price: 49.99}, {Price: 299.99}}

	low := Filter(items, FilterOptions{Sort: SortPriceLow})
	if low[0].Price != 49.99 || low[1].Price != 299.99 || low[2].Price != 599.99 {
		t.Fatalf("priceLow order wrong: %v", low)
	}

	high := Filter(items, FilterOptions{Sort: SortPriceHigh})
	if high[0].Price != 599.99 || high[1].Price != 299.99 || high[2].Price != 49.99 {
		t.Fatalf("priceHigh order wrong: %v", high)
	}
}

func TestSortFeaturedIsStable(t *testing.T) {
	items := []Product{
		{Name: "A", Featured: false},
		{Name: "B", Featured: true},
		{Name: "C", Featured: false},
		{Name: "D", Featured: true},
	}
	out := Filter(items, FilterOptions{Sort: SortFeatured})
	if !reflect.DeepEqual(names(out), []string{"B", "D", "A", "C"}) {
		t.Fatalf("unexpected featured order %v", names(out))
	}
}

func TestSortName(t *testing.T) {
	items := []Product{{Name: "banana"}, {Name: "Apple"}, {Name: "cherry"}}
	out := Filter(items, FilterOptions{Sort: SortName})
	if !reflect.DeepEqual(names(out), []string{"Apple", "banana", "cherry"}) {
		t.Fatalf("unexpected name order %v", names(out))
	}
}

func TestFilterIsIdempotentAndPure(t *testing.T) {
	items := []Product{
		{Name: "Silk Scarf", Category: "Fashion", Price: 79},
		{Name: "Olive Oil", Category: "Food & Beverage", Price: 29},
		{Name: "Berber Rug", Category: "Home & Living", Price: 599.99},
	}
	original := make([]Product, len(items))
	copy(original, items)

	opts := FilterOptions{Query: "o", Sort: SortPriceHigh}
	first := Filter(items, opts)
	second := Filter(items, opts)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("filter is not idempotent: %v vs %v", names(first), names(second))
	}
	if !reflect.DeepEqual(items, original) {
		t.Fatalf("filter mutated its input: %v", names(items))
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if out := Filter(nil, FilterOptions{Query: "x", Sort: SortName}); len(out) != 0 {
		t.Fatalf("expected empty result, got %v", names(out))
	}
}
