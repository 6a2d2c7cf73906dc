package service

import "github.com/revenland/revenland/internal/config"

// SessionService manages the stored backend session
type SessionService struct {
	cacheDir string
}

// NewSessionService creates a new SessionService for the given cache directory
func NewSessionService(cacheDir string) *SessionService {
	return &SessionService{cacheDir: cacheDir}
}

// Reset clears the backend addressing and cached data
func (s *SessionService) Reset() error {
	if err := config.ClearBackendConfig(); err != nil {
		return err
	}
	return s.ClearCache()
}

// ClearCache removes cached programs only
func (s *SessionService) ClearCache() error {
	return config.ClearCache(s.cacheDir)
}
