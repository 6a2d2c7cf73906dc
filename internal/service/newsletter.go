package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/revenland/revenland/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether email is local@domain.tld-shaped
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateSubscriber checks the newsletter form before anything is sent
func ValidateSubscriber(name, email string) error {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" {
		return domain.ErrMissingFields
	}
	if !ValidateEmail(email) {
		return domain.ErrInvalidEmail
	}
	return nil
}

// NewsletterService submits newsletter signups
type NewsletterService struct {
	repo   domain.SubscriberRepository
	logger *slog.Logger
}

// NewNewsletterService creates a new newsletter service
func NewNewsletterService(repo domain.SubscriberRepository, logger *slog.Logger) *NewsletterService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NewsletterService{repo: repo, logger: logger}
}

// Subscribe validates the form and creates one subscriber document.
// Nothing is sent when validation fails.
func (s *NewsletterService) Subscribe(ctx context.Context, name, email string) (domain.Subscriber, error) {
	if err := ValidateSubscriber(name, email); err != nil {
		return domain.Subscriber{}, err
	}

	sub, err := s.repo.CreateSubscriber(ctx, strings.TrimSpace(name), strings.TrimSpace(email))
	if err != nil {
		s.logger.Error("failed to subscribe", "error", err)
		return domain.Subscriber{}, err
	}
	s.logger.Info("subscribed", "id", sub.ID)
	return sub, nil
}
