package models

// CartItem is one line of the cart, unique by (ID, Size).
type CartItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Size          string  `json:"size"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Quantity      int     `json:"quantity"`
	ImageSrc      string  `json:"imageSrc,omitempty"`
}
