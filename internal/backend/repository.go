// Package backend maps the application's collections in the document store
// onto the domain repositories.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/revenland/revenland/internal/docstore"
	"github.com/revenland/revenland/internal/domain"
)

// DocumentStore is the subset of the store client the repositories use
type DocumentStore interface {
	List(ctx context.Context, databaseID, collectionID string) ([]docstore.Document, error)
	Create(ctx context.Context, databaseID, collectionID, documentID string, fields map[string]any) (docstore.Document, error)
	Update(ctx context.Context, databaseID, collectionID, documentID string, fields map[string]any) (docstore.Document, error)
}

// Collections addresses the application's collections within one database
type Collections struct {
	Database    string
	Programs    string
	Subscribers string
	Messages    string // empty disables contact messages
}

// Repository implements the program, subscriber and contact repositories
type Repository struct {
	store  DocumentStore
	ids    Collections
	logger *slog.Logger
}

var (
	_ domain.ProgramRepository    = (*Repository)(nil)
	_ domain.SubscriberRepository = (*Repository)(nil)
	_ domain.ContactRepository    = (*Repository)(nil)
)

// NewRepository creates a repository over a shared store client
func NewRepository(store DocumentStore, ids Collections, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{store: store, ids: ids, logger: logger}
}

// ListPrograms returns every program in store order
func (r *Repository) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	docs, err := r.store.List(ctx, r.ids.Database, r.ids.Programs)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return MapPrograms(docs), nil
}

// SetLiked updates only the liked attribute of a program
func (r *Repository) SetLiked(ctx context.Context, programID string, liked int) (domain.Program, error) {
	liked = domain.NormalizeLiked(liked)
	doc, err := r.store.Update(ctx, r.ids.Database, r.ids.Programs, programID, map[string]any{
		attrLiked: liked,
	})
	if err != nil {
		return domain.Program{}, fmt.Errorf("update program %s: %w", programID, err)
	}
	return MapProgram(doc), nil
}

// CreateSubscriber creates one subscriber document with an auto-generated ID
func (r *Repository) CreateSubscriber(ctx context.Context, name, email string) (domain.Subscriber, error) {
	doc, err := r.store.Create(ctx, r.ids.Database, r.ids.Subscribers, docstore.AutoID, map[string]any{
		attrName:  name,
		attrEmail: email,
	})
	if err != nil {
		return domain.Subscriber{}, fmt.Errorf("create subscriber: %w", err)
	}
	r.logger.Info("subscriber created", "id", doc.ID())
	return mapSubscriber(doc), nil
}

// CreateMessage stores a contact message
func (r *Repository) CreateMessage(ctx context.Context, msg domain.ContactMessage) (domain.ContactMessage, error) {
	if r.ids.Messages == "" {
		return domain.ContactMessage{}, domain.ErrContactDisabled
	}
	doc, err := r.store.Create(ctx, r.ids.Database, r.ids.Messages, docstore.AutoID, map[string]any{
		attrName:    msg.Name,
		attrEmail:   msg.Email,
		attrMessage: msg.Message,
	})
	if err != nil {
		return domain.ContactMessage{}, fmt.Errorf("create message: %w", err)
	}
	r.logger.Info("contact message created", "id", doc.ID())
	return mapMessage(doc), nil
}
