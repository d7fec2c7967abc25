package merchant

var fixtures = []Merchant{
	{
		ID:                1,
		Name:              "Silk Route Artisans",
		Slug:              "silk-route-artisans",
		Country:           "Vietnam",
		Rating:            4.8,
		Verified:          true,
		Specialties:       []string{"Hand-woven textiles", "Natural dyes"},
		ProductCategories: []string{"Fashion", "Home & Living"},
	},
	{
		ID:                2,
		Name:              "Mediterraneo Fine Foods",
		Slug:              "mediterraneo-fine-foods",
		Country:           "Greece",
		Rating:            4.9,
		Verified:          true,
		Specialties:       []string{"Cold-pressed oils", "Single-estate produce"},
		ProductCategories: []string{"Food & Beverage"},
	},
	{
		ID:                3,
		Name:              "Atlas Craft Collective",
		Slug:              "atlas-craft-collective",
		Country:           "Morocco",
		Rating:            4.6,
		Verified:          true,
		Specialties:       []string{"Berber rugs", "Argan cosmetics", "Ceramics"},
		ProductCategories: []string{"Home & Living", "Beauty"},
	},
	{
		ID:                4,
		Name:              "Shibuya Tech Trading",
		Slug:              "shibuya-tech-trading",
		Country:           "Japan",
		Rating:            4.4,
		Verified:          false,
		Specialties:       []string{"Consumer electronics", "Tea ceremony ware"},
		ProductCategories: []string{"Electronics", "Food & Beverage"},
	},
}

// Fixtures returns a copy of the partner catalog.
func Fixtures() []Merchant {
	out := make([]Merchant, len(fixtures))
	copy(out, fixtures)
	return out
}

// FixtureBySlug is a linear scan over the partner catalog.
func FixtureBySlug(slug string) (Merchant, bool) {
	for _, m := range fixtures {
		if m.Slug == slug {
			return m, true
		}
	}
	return Merchant{}, false
}

// FixtureByID is a linear scan over the partner catalog.
func FixtureByID(id int) (Merchant, bool) {
	for _, m := range fixtures {
		if m.ID == id {
			return m, true
		}
	}
	return Merchant{}, false
}
