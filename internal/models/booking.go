package models

import "time"

// ReservationEntry is a table booking. It is swept once it is older than the
// reservation TTL.
type ReservationEntry struct {
	ID      string    `json:"id,omitempty"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Date    string    `json:"date"`
	Time    string    `json:"time"`
	Message string    `json:"message"`
	Created time.Time `json:"created"`
}

// PreorderEntry is a pick-up pre-order. Item holds the menu item name.
type PreorderEntry struct {
	ID      string    `json:"id,omitempty"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Date    string    `json:"date"`
	Time    string    `json:"time"`
	Item    string    `json:"item"`
	Created time.Time `json:"created"`
}

// ReservationRequest represents a submitted reservation form
type ReservationRequest struct {
	Name    string `json:"fullname"`
	Email   string `json:"email"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Message string `json:"message"`
}

// PreorderRequest represents a submitted pre-order (pick-up) form
type PreorderRequest struct {
	Name  string `json:"fullname"`
	Email string `json:"email"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Item  string `json:"item"`
}
