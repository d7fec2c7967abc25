package preorder

import "fmt"

// Status is the pre-order lifecycle state. Distinct from the order
// lifecycle: a pre-order is a sourcing request, not a purchase.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusApproved   Status = "Approved"
	StatusRejected   Status = "Rejected"
	StatusProcessing Status = "Processing"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusProcessing:
		return true
	}
	return false
}

// EstimatedShippingTBD marks a request whose shipping window is not yet
// known.
const EstimatedShippingTBD = "TBD"

// Item is a requested line. TotalPrice is computed once at creation.
type Item struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	TotalPrice  float64 `json:"totalPrice"`
}

func NewItem(productID int, productName string, quantity int, price float64) Item {
	return Item{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       price,
		TotalPrice:  price * float64(quantity),
	}
}

// PreOrder is a customer request to source a product not currently in
// catalog. Amount is canonical numeric, formatted only for display.
type PreOrder struct {
	ID                  string  `json:"id"`
	Customer            string  `json:"customer"`
	CustomerID          int     `json:"customerId"`
	Date                string  `json:"date"`
	Amount              float64 `json:"amount"`
	EstimatedShipping   string  `json:"estimatedShipping"`
	Status              Status  `json:"status"`
	Items               []Item  `json:"items"`
	ShippingAddress     string  `json:"shippingAddress"`
	SpecialRequirements *string `json:"specialRequirements,omitempty"`
}

// FormatAmount renders a numeric amount for display.
func FormatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Patch carries a partial update; nil fields leave the record untouched.
type Patch struct {
	Status              *Status `json:"status,omitempty"`
	EstimatedShipping   *string `json:"estimatedShipping,omitempty"`
	ShippingAddress     *string `json:"shippingAddress,omitempty"`
	SpecialRequirements *string `json:"specialRequirements,omitempty"`
}

func (p Patch) ApplyTo(dst *PreOrder) {
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.EstimatedShipping != nil {
		dst.EstimatedShipping = *p.EstimatedShipping
	}
	if p.ShippingAddress != nil {
		dst.ShippingAddress = *p.ShippingAddress
	}
	if p.SpecialRequirements != nil {
		dst.SpecialRequirements = p.SpecialRequirements
	}
}
