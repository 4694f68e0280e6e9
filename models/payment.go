package models

// Payment is one entry of the customer's payment history.
type Payment struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"orderId"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

// PaymentStatus is the state of a single payment.
type PaymentStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
