// Package session owns the persisted client session: the access/refresh
// token pair and the cached user profile. It exposes an injectable Manager
// so the transport's refresh logic can be tested without a real storage
// backend.
package session

import "github.com/mycomarket/mycomarket-go/internal/client/models"

// Store persists the session/profile pair across runs.
//
// Contract:
//   - Load returns (nil, nil, nil) when nothing usable is persisted;
//     corrupt entries are discarded, never surfaced as errors.
//   - Save overwrites any prior pair.
//   - Clear removes both and is idempotent.
//
// The pair is stored and reported together: a session without a profile
// (or vice versa) counts as absent.
type Store interface {
	Load() (*models.Session, *models.UserProfile, error)
	Save(s *models.Session, p *models.UserProfile) error
	Clear() error
}
