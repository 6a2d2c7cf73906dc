// Package platform adapts the host system's share and open capabilities.
package platform

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/revenland/revenland/internal/domain"
)

// ClipboardSharer shares a message by copying it to the system clipboard
type ClipboardSharer struct {
	write  func(string) error
	logger *slog.Logger
}

var _ domain.Sharer = (*ClipboardSharer)(nil)

// NewClipboardSharer fails with domain.ErrShareUnavailable when the system
// has no clipboard utility
func NewClipboardSharer(logger *slog.Logger) (*ClipboardSharer, error) {
	if clipboard.Unsupported {
		return nil, domain.ErrShareUnavailable
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ClipboardSharer{write: clipboard.WriteAll, logger: logger}, nil
}

// Share copies message to the clipboard
func (s *ClipboardSharer) Share(message string) error {
	if err := s.write(message); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	s.logger.Debug("copied share message to clipboard", "bytes", len(message))
	return nil
}
