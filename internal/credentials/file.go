package credentials

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/xCAELESTISOx/pacificapp--frontend/internal"
)

type fileData struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Theme        string `json:"theme"`
}

// FileStore keeps the credential state in a small JSON file, written through
// on every mutation so a restarted process picks up the session.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	data   fileData
	logger internal.Logger
}

func NewFileStore(path string, logger internal.Logger) (*FileStore, error) {
	s := &FileStore{path: path, data: fileData{Theme: "light"}, logger: logger}
	if err := s.load(); err != nil {
		logger.Errorf("credentials: failed to load %s: %v", path, err)
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	var data fileData
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if data.Theme == "" {
		data.Theme = "light"
	}
	s.data = data
	return nil
}

// save must be called with the write lock held.
func (s *FileStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	buf, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, buf, 0o600)
}

func (s *FileStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token
}

func (s *FileStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.RefreshToken
}

func (s *FileStore) SetTokens(access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = access
	if refresh != "" {
		s.data.RefreshToken = refresh
	}
	return s.save()
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = ""
	s.data.RefreshToken = ""
	return s.save()
}

func (s *FileStore) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Theme
}

func (s *FileStore) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Theme = theme
	return s.save()
}

var _ Store = (*FileStore)(nil)
var _ Store = (*MemStore)(nil)
