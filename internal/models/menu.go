package models

// MenuItem represents a dish or drink listed in the café catalog
type MenuItem struct {
	ID          int64   `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Stock       int     `json:"stock" yaml:"stock"`
	ImageRef    string  `json:"imageRef" yaml:"image"`
}

// Category is a named, ordered group of menu items
type Category struct {
	Name  string     `json:"name" yaml:"name"`
	Items []MenuItem `json:"items" yaml:"items"`
}
