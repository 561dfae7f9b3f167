package models

// MedicalStore represents a partner pharmacy
type MedicalStore struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Contact string  `json:"contact"`
	Rating  float64 `json:"rating"`
	IsOpen  bool    `json:"isOpen"`
}

// StoreInput carries the admin-supplied fields of a new medical store
type StoreInput struct {
	Name    string   `json:"name" binding:"required"`
	Address string   `json:"address"`
	Contact string   `json:"contact"`
	Rating  *float64 `json:"rating"`
	IsOpen  *bool    `json:"isOpen"`
}
