package models

import "time"

// Farmer is a public directory entry for a registered farm.
type Farmer struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	FarmName     string    `json:"farmName"`
	Location     string    `json:"location"`
	Bio          string    `json:"bio,omitempty"`
	Phone        string    `json:"phone"`
	Specialties  []string  `json:"specialties,omitempty"`
	ProductCount int       `json:"productCount"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterFarmerRequest is the become-a-farmer application body.
type RegisterFarmerRequest struct {
	FarmName    string   `json:"farmName"`
	Location    string   `json:"location"`
	Phone       string   `json:"phone"`
	Bio         string   `json:"bio,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
}
