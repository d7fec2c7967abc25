package user

// Role controls what a session token is allowed to reach.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
	RoleMerchant = "merchant"
)

// Address is a shipping destination embedded in the user record.
type Address struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	Country string `json:"country"`
	Postal  string `json:"postal,omitempty"`
}

// PaymentMethod is a stored payment option. Only a masked label is kept;
// this system never sees raw card data.
type PaymentMethod struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

// Preferences are per-user storefront settings.
type Preferences struct {
	Currency   string `json:"currency"`
	Newsletter bool   `json:"newsletter"`
}

type User struct {
	ID             int             `json:"id"`
	Email          string          `json:"email"`
	Password       string          `json:"password,omitempty"`
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	Address        *Address        `json:"address,omitempty"`
	PaymentMethods []PaymentMethod `json:"paymentMethods,omitempty"`
	Wishlist       []int           `json:"wishlist"`
	Preferences    Preferences     `json:"preferences"`
	CreatedAt      string          `json:"createdAt,omitempty"`
	UpdatedAt      string          `json:"updatedAt,omitempty"`
}

// Patch carries a partial profile update; nil fields leave the record
// untouched. Role and wishlist change through dedicated operations only.
type Patch struct {
	Name           *string          `json:"name,omitempty"`
	Address        *Address         `json:"address,omitempty"`
	PaymentMethods *[]PaymentMethod `json:"paymentMethods,omitempty"`
	Preferences    *Preferences     `json:"preferences,omitempty"`
}

func (p Patch) ApplyTo(dst *User) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Address != nil {
		dst.Address = p.Address
	}
	if p.PaymentMethods != nil {
		dst.PaymentMethods = *p.PaymentMethods
	}
	if p.Preferences != nil {
		dst.Preferences = *p.Preferences
	}
}

// Sanitize blanks the password hash for responses.
func Sanitize(u User) User {
	u.Password = ""
	return u
}
