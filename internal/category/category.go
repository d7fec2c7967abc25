package category

// Category is storefront navigation reference data.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

var fixtures = []Category{
	{ID: 1, Name: "Fashion", Slug: "fashion", Description: "Apparel and accessories from artisan workshops", Image: "/images/categories/fashion.jpg"},
	{ID: 2, Name: "Food & Beverage", Slug: "food-beverage", Description: "Single-origin and small-batch imports", Image: "/images/categories/food-beverage.jpg"},
	{ID: 3, Name: "Electronics", Slug: "electronics", Description: "Selected consumer electronics", Image: "/images/categories/electronics.jpg"},
	{ID: 4, Name: "Home & Living", Slug: "home-living", Description: "Rugs, ceramics and handcrafted homeware", Image: "/images/categories/home-living.jpg"},
	{ID: 5, Name: "Beauty", Slug: "beauty", Description: "Natural skincare from source regions", Image: "/images/categories/beauty.jpg"},
}

// Fixtures returns a copy of the category list.
func Fixtures() []Category {
	out := make([]Category, len(fixtures))
	copy(out, fixtures)
	return out
}
