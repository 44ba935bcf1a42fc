package models

// CartLine is a single entry in a visitor's cart.
// Name and price are snapshots taken when the item was first added.
type CartLine struct {
	ItemID int64   `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Qty    int     `json:"qty"`
}
