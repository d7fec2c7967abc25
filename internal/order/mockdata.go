package order

func strPtr(s string) *string { return &s }

// fixtures is the demo order history. Every status appears at least once so
// the admin filters have something to chew on. Customer ids 2 and 3 match
// the demo users.
var fixtures = []Order{
	{
		ID:         "ORD-001",
		Customer:   "Amina Rahman",
		CustomerID: 2,
		Date:       "2026-07-03",
		Amount:     245.99,
		Status:     StatusCompleted,
		Items: []Item{
			NewItem(1, "Handwoven Silk Scarf", 2, 79.99),
			NewItem(8, "Colombian Single-Origin Coffee", 1, 24.99),
		},
		ShippingAddress: "14 Gulshan Ave, Dhaka 1212, Bangladesh",
		PaymentMethod:   "Credit Card",
		TrackingNumber:  strPtr("TRK-88412034"),
	},
	{
		ID:         "ORD-002",
		Customer:   "Amina Rahman",
		CustomerID: 2,
		Date:       "2026-07-21",
		Amount:     149.99,
		Status:     StatusShipped,
		Items: []Item{
			NewItem(4, "Noise-Cancelling Earbuds X2", 1, 149.99),
		},
		ShippingAddress: "14 Gulshan Ave, Dhaka 1212, Bangladesh",
		PaymentMethod:   "Mobile Banking",
		TrackingNumber:  strPtr("TRK-88412187"),
	},
	{
		ID:         "ORD-003",
		Customer:   "Daniel Okafor",
		CustomerID: 3,
		Date:       "2026-08-02",
		Amount:     658.49,
		Status:     StatusProcessing,
		Items: []Item{
			NewItem(5, "Moroccan Berber Rug", 1, 599.99),
			NewItem(2, "Extra Virgin Olive Oil", 1, 29.50),
			NewItem(8, "Colombian Single-Origin Coffee", 1, 24.99),
		},
		ShippingAddress: "7 Victoria Island Rd, Lagos, Nigeria",
		PaymentMethod:   "Credit Card",
	},
	{
		ID:         "ORD-004",
		Customer:   "Daniel Okafor",
		CustomerID: 3,
		Date:       "2026-08-15",
		Amount:     119.00,
		Status:     StatusPending,
		Items: []Item{
			NewItem(3, "Kyoto Matcha Ceremony Set", 1, 119.00),
		},
		ShippingAddress: "7 Victoria Island Rd, Lagos, Nigeria",
		PaymentMethod:   "Bank Transfer",
	},
	{
		ID:         "ORD-005",
		Customer:   "Amina Rahman",
		CustomerID: 2,
		Date:       "2026-06-11",
		Amount:     49.99,
		Status:     StatusCancelled,
		Items: []Item{
			NewItem(6, "Argan Oil Skincare Trio", 1, 49.99),
		},
		ShippingAddress: "14 Gulshan Ave, Dhaka 1212, Bangladesh",
		PaymentMethod:   "Credit Card",
	},
}

// Fixtures returns a copy of the demo order history.
func Fixtures() []Order {
	out := make([]Order, len(fixtures))
	copy(out, fixtures)
	return out
}

// FixtureByID is a linear scan over the demo orders.
func FixtureByID(id string) (Order, bool) {
	for _, o := range fixtures {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// FixturesByStatus returns demo orders matching the status.
func FixturesByStatus(status Status) []Order {
	out := make([]Order, 0)
	for _, o := range fixtures {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}
