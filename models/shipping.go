package models

// ShippingAddress is owned by the store API; json tags mirror its envelope.
type ShippingAddress struct {
	ID             int    `json:"ID"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Zipcode        string `json:"zipcode"`
	Country        string `json:"country"`
	ShippingMethod int    `json:"shipping_method"`
	IsDefault      bool   `json:"is_default"`
}

// AddressInput carries the address form to the store API.
type AddressInput struct {
	Address        string `json:"address"`
	City           string `json:"city"`
	Zipcode        string `json:"zipcode"`
	Country        string `json:"country"`
	ShippingMethod int    `json:"shipping_method"`
}

// ShippingMethod is read-only reference data, fetched once per checkout.
type ShippingMethod struct {
	ID          int     `json:"ID"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
