package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

const (
	sessionFileName = "session.json"
	profileFileName = "profile.json"
)

// FileStore keeps the session and profile as two JSON documents in a
// per-user directory. Last writer wins; there is no cross-process locking.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir. The directory must exist.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Load reads the persisted pair. A missing or unparsable entry makes the
// whole pair absent; unparsable files are removed so the next Load is clean.
func (f *FileStore) Load() (*models.Session, *models.UserProfile, error) {
	var s models.Session
	ok, err := f.readJSON(sessionFileName, &s)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, nil
	}

	var p models.UserProfile
	ok, err = f.readJSON(profileFileName, &p)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		// Half a pair is as good as none; an access token must never be
		// handed out without its profile.
		return nil, nil, nil
	}

	return &s, &p, nil
}

// Save persists the pair, profile first so a crash between the two writes
// leaves at worst a profile without a session (reported as absent by Load).
func (f *FileStore) Save(s *models.Session, p *models.UserProfile) error {
	if s == nil || p == nil {
		return fmt.Errorf("session and profile must both be set")
	}
	if err := f.writeJSON(profileFileName, p); err != nil {
		return err
	}
	return f.writeJSON(sessionFileName, s)
}

// Clear removes both entries. Removing an already-absent entry is not an
// error.
func (f *FileStore) Clear() error {
	for _, name := range []string{sessionFileName, profileFileName} {
		if err := os.Remove(filepath.Join(f.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}

// readJSON reports (false, nil) for a missing file. A file that exists but
// does not parse is deleted and reported as missing.
func (f *FileStore) readJSON(name string, v any) (bool, error) {
	path := filepath.Join(f.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		_ = os.Remove(path)
		return false, nil
	}
	return true, nil
}

func (f *FileStore) writeJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(f.dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
