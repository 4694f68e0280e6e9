package models

// Size is one purchasable variant of a product.
type Size struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Weight string  `json:"weight"`
	Price  float64 `json:"price"`
}

// Product is the store API's product record.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ImageSrc    string  `json:"imageSrc,omitempty"`
	Stock       int     `json:"stock"`
	Sizes       []Size  `json:"sizes"`
	Price       float64 `json:"price,omitempty"`
}

// OrderSelection is the client-persisted draft of a not-yet-submitted order.
// TotalPrice is always recomputed from its inputs, never stored independently.
type OrderSelection struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Size        Size    `json:"size"`
	SizeIndex   int     `json:"sizeIndex"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"totalPrice"`
}

// Recalculate restores the selection invariant after any mutation.
func (s *OrderSelection) Recalculate() {
	s.TotalPrice = s.Size.Price * float64(s.Quantity)
}

// OrderInput is what the store API needs to create an order.
type OrderInput struct {
	ProductID       string `json:"productID"`
	Quantity        int    `json:"quantity"`
	SizeIndex       int    `json:"size_index"`
	ShippingAddress int    `json:"shipping_address"`
	ShippingMethod  int    `json:"shipping_method"`
}

// Order is a placed order as returned by the store API.
type Order struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Size        Size    `json:"size"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}
