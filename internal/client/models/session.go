// Package models defines the client-side data types exchanged with the
// MycoMarket API: the session/profile pair owned by the client, and the
// server-owned records the typed endpoints decode into.
package models

import "time"

// Session is the access/refresh token pair used to authorize requests.
// It is mutated only by login, refresh, and logout.
type Session struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// Valid reports whether the session carries a usable token pair.
func (s *Session) Valid() bool {
	return s != nil && s.AccessToken != "" && s.RefreshToken != ""
}

// Expired reports whether the access token's known expiry has passed.
// A zero ExpiresAt means the expiry is unknown and the session is treated
// as live until the server rejects it.
func (s *Session) Expired(now time.Time) bool {
	if s == nil {
		return true
	}
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
