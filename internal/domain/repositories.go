package domain

import (
	"context"
)

// ProgramRepository provides access to the programs collection
type ProgramRepository interface {
	// ListPrograms returns every program in store order
	ListPrograms(ctx context.Context) ([]Program, error)

	// SetLiked updates only the liked field of a program
	SetLiked(ctx context.Context, programID string, liked int) (Program, error)
}

// SubscriberRepository stores newsletter signups
type SubscriberRepository interface {
	// CreateSubscriber creates one subscriber document with an auto-generated ID
	CreateSubscriber(ctx context.Context, name, email string) (Subscriber, error)
}

// ContactRepository stores messages sent from the contact screen
type ContactRepository interface {
	CreateMessage(ctx context.Context, msg ContactMessage) (ContactMessage, error)
}

// Sharer hands a free-text message to the platform share capability
type Sharer interface {
	Share(message string) error
}

// Opener hands URLs to external applications
type Opener interface {
	// Open opens a link with the platform's default handler
	Open(url string) error
	// Play opens a video in a media player when one is installed
	Play(url string) error
}
