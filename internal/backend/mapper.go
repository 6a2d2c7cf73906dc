package backend

import (
	"github.com/revenland/revenland/internal/docstore"
	"github.com/revenland/revenland/internal/domain"
)

// Attribute names in the programs collection
const (
	attrName     = "name"
	attrDate     = "date"
	attrDay      = "day"
	attrImageURL = "imageUrl"
	attrDetails  = "details"
	attrLiked    = "liked"
	attrEmail    = "email"
	attrMessage  = "message"
)

// MapProgram converts a programs document to a domain.Program.
// A missing or null liked attribute maps to 0.
func MapProgram(doc docstore.Document) domain.Program {
	return domain.Program{
		ID:       doc.ID(),
		Name:     doc.String(attrName),
		Date:     doc.String(attrDate),
		Day:      doc.String(attrDay),
		ImageURL: doc.String(attrImageURL),
		Details:  doc.String(attrDetails),
		Liked:    domain.NormalizeLiked(doc.Int(attrLiked)),
	}
}

// MapPrograms converts documents in order
func MapPrograms(docs []docstore.Document) []domain.Program {
	programs := make([]domain.Program, 0, len(docs))
	for _, doc := range docs {
		programs = append(programs, MapProgram(doc))
	}
	return programs
}

func mapSubscriber(doc docstore.Document) domain.Subscriber {
	return domain.Subscriber{
		ID:    doc.ID(),
		Name:  doc.String(attrName),
		Email: doc.String(attrEmail),
	}
}

func mapMessage(doc docstore.Document) domain.ContactMessage {
	return domain.ContactMessage{
		ID:      doc.ID(),
		Name:    doc.String(attrName),
		Email:   doc.String(attrEmail),
		Message: doc.String(attrMessage),
	}
}
