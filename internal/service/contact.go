package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/revenland/revenland/internal/domain"
)

// ContactService delivers contact form messages
type ContactService struct {
	repo   domain.ContactRepository
	logger *slog.Logger
}

// NewContactService creates a new contact service
func NewContactService(repo domain.ContactRepository, logger *slog.Logger) *ContactService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContactService{repo: repo, logger: logger}
}

// ValidateMessage checks the contact form fields
func ValidateMessage(msg domain.ContactMessage) error {
	if err := ValidateSubscriber(msg.Name, msg.Email); err != nil {
		return err
	}
	if strings.TrimSpace(msg.Message) == "" {
		return domain.ErrEmptyMessage
	}
	return nil
}

// Send validates and stores a contact message
func (s *ContactService) Send(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error) {
	if err := ValidateMessage(msg); err != nil {
		return domain.ContactMessage{}, err
	}

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	saved, err := s.repo.CreateMessage(ctx, msg)
	if err != nil {
		s.logger.Error("failed to send contact message", "error", err)
		return domain.ContactMessage{}, err
	}
	return saved, nil
}
