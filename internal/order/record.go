package order

// ShippingMethod is the closed set of ways an order leaves the shop.
type ShippingMethod string

const (
	ShippingMethodPickup   ShippingMethod = "Pickup"
	ShippingMethodDelivery ShippingMethod = "Delivery"
)

// IsValid checks if the shipping method is a member of the closed set.
func (m ShippingMethod) IsValid() bool {
	return m == ShippingMethodPickup || m == ShippingMethodDelivery
}

// OrderRecord is the final immutable result of one extraction pass. All
// monetary fields are decimal strings with exactly two fractional digits,
// and TotalAmount always equals UnitPrice + ShippingCost while TaxAmount
// equals TotalAmount / 11, both to two decimal places.
type OrderRecord struct {
	OrderNumber    string         `json:"order_number"`
	Date           string         `json:"date"`
	CustomerName   string         `json:"customer_name,omitempty"`
	Email          string         `json:"email"`
	Description    string         `json:"description"`
	Quantity       int            `json:"quantity"`
	UnitPrice      string         `json:"unit_price"`
	ShippingCost   string         `json:"shipping_cost"`
	TotalAmount    string         `json:"total_amount"`
	TaxAmount      string         `json:"tax_amount"`
	ShippingMethod ShippingMethod `json:"shipping_method"`
	ShippingLabel  string         `json:"shipping_label"`
	IsPickup       bool           `json:"is_pickup"`
}

// Defaults carries the documented fallback values applied when a field is
// still absent at assembly time.
type Defaults struct {
	Date          string
	Description   string
	Email         string
	PickupLabel   string
	DeliveryLabel string
}
