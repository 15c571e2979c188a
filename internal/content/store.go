package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/bilgisen/nexus/internal/models"
)

var (
	// ErrNotFound is returned when no post has the requested identifier.
	ErrNotFound = errors.New("content not found")
	// ErrUnavailable is returned when the backing store cannot be read.
	ErrUnavailable = errors.New("content store unavailable")
)

// Store is the read capability over posts and testimonials. Listings
// preserve catalog order.
type Store interface {
	ListPosts(ctx context.Context) ([]models.BlogPost, error)
	GetPost(ctx context.Context, id string) (models.BlogPost, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
}

// MemoryStore serves an immutable catalog from memory.
type MemoryStore struct {
	catalog Catalog
	index   map[string]int
}

// NewMemoryStore validates catalog and returns a store over it.
func NewMemoryStore(catalog Catalog) (*MemoryStore, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return newMemoryStore(catalog), nil
}

func newMemoryStore(catalog Catalog) *MemoryStore {
	index := make(map[string]int, len(catalog.Posts))
	for i, p := range catalog.Posts {
		index[p.ID] = i
	}
	return &MemoryStore{catalog: catalog, index: index}
}

func (s *MemoryStore) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.BlogPost, len(s.catalog.Posts))
	copy(out, s.catalog.Posts)
	return out, nil
}

func (s *MemoryStore) GetPost(ctx context.Context, id string) (models.BlogPost, error) {
	if err := ctx.Err(); err != nil {
		return models.BlogPost{}, err
	}
	i, ok := s.index[id]
	if !ok {
		return models.BlogPost{}, fmt.Errorf("%w: post %q", ErrNotFound, id)
	}
	return s.catalog.Posts[i], nil
}

func (s *MemoryStore) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.Testimonial, len(s.catalog.Testimonials))
	copy(out, s.catalog.Testimonials)
	return out, nil
}
