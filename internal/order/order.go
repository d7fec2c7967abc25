package order

import "fmt"

// Status is the order lifecycle state.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Item is a line on an order. TotalPrice is computed once at creation and
// never re-derived.
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

// Order is a purchase record. Amount is canonical numeric; the currency
// string ("$245.99") exists only at the presentation boundary, see
// FormatAmount.
type Order struct {
	ID              string  `json:"id"`
	Customer        string  `json:"customer"`
	CustomerID      int     `json:"customerId"`
	Date            string  `json:"date"`
	Amount          float64 `json:"amount"`
	Status          Status  `json:"status"`
	Items           []Item  `json:"items"`
	ShippingAddress string  `json:"shippingAddress"`
	PaymentMethod   string  `json:"paymentMethod"`
	TrackingNumber  *string `json:"trackingNumber,omitempty"`
}

// FormatAmount renders a numeric amount for display.
func FormatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Patch carries a partial update; nil fields leave the record untouched.
type Patch struct {
	Status          *Status `json:"status,omitempty"`
	TrackingNumber  *string `json:"trackingNumber,omitempty"`
	ShippingAddress *string `json:"shippingAddress,omitempty"`
	PaymentMethod   *string `json:"paymentMethod,omitempty"`
}

func (p Patch) ApplyTo(dst *Order) {
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.TrackingNumber != nil {
		dst.TrackingNumber = p.TrackingNumber
	}
	if p.ShippingAddress != nil {
		dst.ShippingAddress = *p.ShippingAddress
	}
	if p.PaymentMethod != nil {
		dst.PaymentMethod = *p.PaymentMethod
	}
}
