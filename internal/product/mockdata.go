package product

// fixtures is the hand-authored demo catalog served when no remote backend
// is configured. The slice is treated as a read-only snapshot; stores copy
// before handing rows out.
var fixtures = []Product{
	{
		ID:       1,
		Name:     "Handwoven Silk Scarf",
		Merchant: "Rajasthan Textile House",
		Price:    79.99,
		Category: "Fashion",
		Images: []string{
			"/images/products/silk-scarf-1.jpg",
			"/images/products/silk-scarf-2.jpg",
		},
		Featured:    true,
		InStock:     true,
		Stock:       24,
		Description: "Hand-loomed mulberry silk scarf dyed with natural indigo.",
		Features:    []string{"100% mulberry silk", "Natural dyes", "Hand-rolled edges"},
		Specifications: map[string]string{
			"Material":   "Mulberry silk",
			"Dimensions": "180 x 55 cm",
			"Care":       "Dry clean only",
		},
		Rating:           4.8,
		ReviewCount:      132,
		Origin:           "India",
		ShippingEstimate: "7-10 business days",
	},
	{
		ID:       2,
		Name:     "Extra Virgin Olive Oil",
		Merchant: "Tuscan Groves Co.",
		Price:    29.50,
		Category: "Food & Beverage",
		Images:   []string{"/images/products/olive-oil-1.jpg"},
		Featured: true,
		InStock:  true,
		Stock:    140,
		Description: "Cold-pressed single-estate olive oil from the 2025 harvest, " +
			"bottled in dark glass within hours of pressing.",
		Features: []string{"Cold pressed", "Single estate", "Harvest dated"},
		Specifications: map[string]string{
			"Volume":  "500 ml",
			"Acidity": "0.2%",
			"Harvest": "2025",
		},
		Rating:           4.9,
		ReviewCount:      287,
		Origin:           "Italy",
		ShippingEstimate: "5-7 business days",
	},
	{
		ID:          3,
		Name:        "Kyoto Matcha Ceremony Set",
		Merchant:    "Uji Tea Estate",
		Price:       119.00,
		Category:    "Food & Beverage",
		Images:      []string{"/images/products/matcha-set-1.jpg", "/images/products/matcha-set-2.jpg"},
		Featured:    false,
		InStock:     true,
		Stock:       18,
		Description: "Ceremonial-grade matcha with bamboo whisk, scoop and stoneware bowl.",
		Features:    []string{"Ceremonial grade", "Hand-carved whisk", "Gift boxed"},
		Specifications: map[string]string{
			"Contents": "Matcha 40g, chasen, chashaku, chawan",
			"Grade":    "Ceremonial",
		},
		Rating:           4.7,
		ReviewCount:      96,
		Origin:           "Japan",
		ShippingEstimate: "10-14 business days",
	},
	{
		ID:          4,
		Name:        "Noise-Cancelling Earbuds X2",
		Merchant:    "Shenzhen AudioWorks",
		Price:       149.99,
		Category:    "Electronics",
		Images:      []string{"/images/products/earbuds-1.jpg"},
		Featured:    true,
		InStock:     true,
		Stock:       63,
		Description: "Hybrid ANC earbuds with 36-hour battery and wireless charging case.",
		Features:    []string{"Hybrid ANC", "36h battery", "IPX5", "Wireless charging"},
		Specifications: map[string]string{
			"Bluetooth": "5.4",
			"Driver":    "11 mm dynamic",
			"Weight":    "4.7 g per bud",
		},
		Rating:           4.4,
		ReviewCount:      451,
		Origin:           "China",
		ShippingEstimate: "7-12 business days",
	},
	{
		ID:          5,
		Name:        "Moroccan Berber Rug",
		Merchant:    "Atlas Artisan Collective",
		Price:       599.99,
		Category:    "Home & Living",
		Images:      []string{"/images/products/berber-rug-1.jpg", "/images/products/berber-rug-2.jpg"},
		Featured:    false,
		InStock:     true,
		Stock:       4,
		Description: "Hand-knotted wool rug in traditional Beni Ourain diamond pattern.",
		Features:    []string{"Hand knotted", "Undyed wool", "One of a kind"},
		Specifications: map[string]string{
			"Material":   "100% wool",
			"Dimensions": "240 x 160 cm",
		},
		Rating:           4.9,
		ReviewCount:      38,
		Origin:           "Morocco",
		ShippingEstimate: "14-21 business days",
	},
	{
		ID:          6,
		Name:        "Argan Oil Skincare Trio",
		Merchant:    "Essaouira Naturals",
		Price:       49.99,
		Category:    "Beauty",
		Images:      []string{"/images/products/argan-trio-1.jpg"},
		Featured:    false,
		InStock:     false,
		Stock:       0,
		Description: "Cold-pressed argan oil, rose water toner and black soap.",
		Features:    []string{"Cold pressed", "No parabens", "Cruelty free"},
		Specifications: map[string]string{
			"Contents": "Argan oil 50ml, toner 100ml, soap 100g",
		},
		Rating:           4.6,
		ReviewCount:      210,
		Origin:           "Morocco",
		ShippingEstimate: "10-14 business days",
	},
	{
		ID:          7,
		Name:        "Hand-Painted Ceramic Dinner Set",
		Merchant:    "Jaipur Blue Pottery",
		Price:       189.00,
		Category:    "Home & Living",
		Images:      []string{"/images/products/ceramic-set-1.jpg"},
		Featured:    false,
		InStock:     true,
		Stock:       11,
		Description: "Twelve-piece stoneware set painted in cobalt floral motifs.",
		Features:    []string{"Lead-free glaze", "Dishwasher safe", "Hand painted"},
		Specifications: map[string]string{
			"Pieces":   "12",
			"Material": "Stoneware",
		},
		Rating:           4.5,
		ReviewCount:      74,
		Origin:           "India",
		ShippingEstimate: "14-21 business days",
	},
	{
		ID:          8,
		Name:        "Colombian Single-Origin Coffee",
		Merchant:    "Huila Highlands Roasters",
		Price:       24.99,
		Category:    "Food & Beverage",
		Images:      []string{"/images/products/coffee-1.jpg"},
		Featured:    false,
		InStock:     true,
		Stock:       88,
		Description: "Washed-process arabica, medium roast, notes of caramel and citrus.",
		Features:    []string{"Single origin", "Roasted to order", "Whole bean"},
		Specifications: map[string]string{
			"Weight":  "340 g",
			"Roast":   "Medium",
			"Process": "Washed",
		},
		Rating:           4.7,
		ReviewCount:      319,
		Origin:           "Colombia",
		ShippingEstimate: "5-7 business days",
	},
}

// Fixtures returns a copy of the demo catalog.
func Fixtures() []Product {
	out := make([]Product, len(fixtures))
	copy(out, fixtures)
	return out
}

// FixtureByID is a linear scan over the demo catalog.
func FixtureByID(id int) (Product, bool) {
	for _, p := range fixtures {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FixturesByCategory returns demo products whose category matches exactly.
func FixturesByCategory(category string) []Product {
	out := make([]Product, 0)
	for _, p := range fixtures {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// FeaturedFixtures returns the demo products flagged for the home page.
func FeaturedFixtures() []Product {
	out := make([]Product, 0)
	for _, p := range fixtures {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
