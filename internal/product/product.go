package product

// Product represents an imported good in the catalog. JSON tags follow the
// camelCase convention used across the API.
//
// InStock and Stock are independently settable flags: the source catalog
// carries both and does not guarantee InStock == (Stock > 0).
type Product struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	Merchant         string            `json:"merchant"`
	Price            float64           `json:"price"`
	Category         string            `json:"category"`
	Images           []string          `json:"images"`
	Featured         bool              `json:"featured"`
	InStock          bool              `json:"inStock"`
	Stock            int               `json:"stock"`
	Description      string            `json:"description"`
	Features         []string          `json:"features"`
	Specifications   map[string]string `json:"specifications"`
	Rating           float64           `json:"rating"`
	ReviewCount      int               `json:"reviewCount"`
	Origin           string            `json:"origin"`
	ShippingEstimate string            `json:"shippingEstimate"`
}

// PrimaryImage returns the first image URL, the one list pages render.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Patch carries a partial update. Nil fields leave the record untouched.
type Patch struct {
	Name             *string            `json:"name,omitempty"`
	Merchant         *string            `json:"merchant,omitempty"`
	Price            *float64           `json:"price,omitempty"`
	Category         *string            `json:"category,omitempty"`
	Images           *[]string          `json:"images,omitempty"`
	Featured         *bool              `json:"featured,omitempty"`
	InStock          *bool              `json:"inStock,omitempty"`
	Stock            *int               `json:"stock,omitempty"`
	Description      *string            `json:"description,omitempty"`
	Features         *[]string          `json:"features,omitempty"`
	Specifications   *map[string]string `json:"specifications,omitempty"`
	Rating           *float64           `json:"rating,omitempty"`
	ReviewCount      *int               `json:"reviewCount,omitempty"`
	Origin           *string            `json:"origin,omitempty"`
	ShippingEstimate *string            `json:"shippingEstimate,omitempty"`
}

// ApplyTo shallow-merges the patch over dst.
func (p Patch) ApplyTo(dst *Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Merchant != nil {
		dst.Merchant = *p.Merchant
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.Images != nil {
		dst.Images = *p.Images
	}
	if p.Featured != nil {
		dst.Featured = *p.Featured
	}
	if p.InStock != nil {
		dst.InStock = *p.InStock
	}
	if p.Stock != nil {
		dst.Stock = *p.Stock
	}
	if p.Description != nil {
		dst.Description = *p.Description
	}
	if p.Features != nil {
		dst.Features = *p.Features
	}
	if p.Specifications != nil {
		dst.Specifications = *p.Specifications
	}
	if p.Rating != nil {
		dst.Rating = *p.Rating
	}
	if p.ReviewCount != nil {
		dst.ReviewCount = *p.ReviewCount
	}
	if p.Origin != nil {
		dst.Origin = *p.Origin
	}
	if p.ShippingEstimate != nil {
		dst.ShippingEstimate = *p.ShippingEstimate
	}
}
