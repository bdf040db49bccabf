package models

import "time"

// UserProfile is the identity record cached alongside the session.
type UserProfile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar,omitempty"`
	IsFarmer  bool      `json:"isFarmer"`
	CreatedAt time.Time `json:"createdAt"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}
