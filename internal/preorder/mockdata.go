package preorder

func strPtr(s string) *string { return &s }

// fixtures is the demo pre-order book. Customer ids match the demo users.
var fixtures = []PreOrder{
	{
		ID:                "PRE-001",
		Customer:          "Amina Rahman",
		CustomerID:        2,
		Date:              "2026-08-05",
		Amount:            1299.00,
		EstimatedShipping: "2026-10-15",
		Status:            StatusApproved,
		Items: []Item{
			NewItem(0, "Japanese Cast Iron Teapot (Limited Edition)", 1, 1299.00),
		},
		ShippingAddress:     "14 Gulshan Ave, Dhaka 1212, Bangladesh",
		SpecialRequirements: strPtr("Gift wrapping with a handwritten card"),
	},
	{
		ID:                "PRE-002",
		Customer:          "Daniel Okafor",
		CustomerID:        3,
		Date:              "2026-08-18",
		Amount:            459.98,
		EstimatedShipping: EstimatedShippingTBD,
		Status:            StatusPending,
		Items: []Item{
			NewItem(0, "Turkish Hand-Knotted Kilim (custom size)", 2, 229.99),
		},
		ShippingAddress: "7 Victoria Island Rd, Lagos, Nigeria",
	},
	{
		ID:                "PRE-003",
		Customer:          "Amina Rahman",
		CustomerID:        2,
		Date:              "2026-07-28",
		Amount:            89.50,
		EstimatedShipping: EstimatedShippingTBD,
		Status:            StatusRejected,
		Items: []Item{
			NewItem(0, "Vintage French Perfume (discontinued)", 1, 89.50),
		},
		ShippingAddress:     "14 Gulshan Ave, Dhaka 1212, Bangladesh",
		SpecialRequirements: strPtr("Original 1990s packaging only"),
	},
}

// Fixtures returns a copy of the demo pre-order book.
func Fixtures() []PreOrder {
	out := make([]PreOrder, len(fixtures))
	copy(out, fixtures)
	return out
}

// FixtureByID is a linear scan over the demo pre-orders.
func FixtureByID(id string) (PreOrder, bool) {
	for _, p := range fixtures {
		if p.ID == id {
			return p, true
		}
	}
	return PreOrder{}, false
}

// FixturesByStatus returns demo pre-orders matching the status.
func FixturesByStatus(status Status) []PreOrder {
	out := make([]PreOrder, 0)
	for _, p := range fixtures {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}
