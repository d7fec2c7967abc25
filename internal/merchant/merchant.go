package merchant

// Merchant is reference data about a sourcing partner. No lifecycle: the
// catalog of partners only changes with a deploy.
type Merchant struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Country           string   `json:"country"`
	Rating            float64  `json:"rating"`
	Verified          bool     `json:"verified"`
	Specialties       []string `json:"specialties"`
	ProductCategories []string `json:"productCategories"`
}
