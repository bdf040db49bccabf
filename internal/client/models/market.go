package models

import "time"

// Product is a catalog listing published by a farmer.
type Product struct {
	ID          string    `json:"id"`
	FarmerID    string    `json:"farmerId"`
	FarmerName  string    `json:"farmerName"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Review is a buyer review attached to a product.
type Review struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateProductRequest is the body for creating or updating a listing.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// CreateReviewRequest is the body for posting a product review.
type CreateReviewRequest struct {
	Rating int    `json:"rating"`
	Body   string `json:"body"`
}

// ProductFilter narrows a product list query.
type ProductFilter struct {
	Category string
	FarmerID string
	Search   string
}
