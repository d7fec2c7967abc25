package user

// DemoAccounts are the seed accounts for demo mode. Passwords are plain
// here and hashed by the service when the accounts are loaded at startup.
// Ids 2 and 3 own the fixture orders and pre-orders.
func DemoAccounts() []User {
	return []User{
		{
			ID:       1,
			Email:    "admin@importgoods.example",
			Password: "admin123!",
			Name:     "Store Admin",
			Role:     RoleAdmin,
			Wishlist: []int{},
			Preferences: Preferences{
				Currency: "USD",
			},
		},
		{
			ID:       2,
			Email:    "amina@example.com",
			Password: "amina-demo",
			Name:     "Amina Rahman",
			Role:     RoleCustomer,
			Address: &Address{
				Line1:   "14 Gulshan Ave",
				City:    "Dhaka",
				Country: "Bangladesh",
				Postal:  "1212",
			},
			PaymentMethods: []PaymentMethod{
				{Type: "card", Label: "Visa •••• 4242"},
				{Type: "mobile", Label: "bKash +880 •••• 8812"},
			},
			Wishlist: []int{3, 5},
			Preferences: Preferences{
				Currency:   "USD",
				Newsletter: true,
			},
		},
		{
			ID:       3,
			Email:    "daniel@example.com",
			Password: "daniel-demo",
			Name:     "Daniel Okafor",
			Role:     RoleCustomer,
			Address: &Address{
				Line1:   "7 Victoria Island Rd",
				City:    "Lagos",
				Country: "Nigeria",
			},
			PaymentMethods: []PaymentMethod{
				{Type: "card", Label: "Mastercard •••• 7031"},
			},
			Wishlist: []int{4},
			Preferences: Preferences{
				Currency: "USD",
			},
		},
	}
}
