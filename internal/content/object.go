package content

import (
	"context"
	"fmt"

	"github.com/bilgisen/nexus/internal/models"
)

// ObjectGetter reads one object by key; storage.Storage satisfies it.
type ObjectGetter interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// ObjectStore reads the catalog document from object storage on every call,
// so edits to the object are visible without a restart.
type ObjectStore struct {
	objects ObjectGetter
	key     string
}

func NewObjectStore(objects ObjectGetter, key string) *ObjectStore {
	return &ObjectStore{objects: objects, key: key}
}

func (s *ObjectStore) load(ctx context.Context) (*MemoryStore, error) {
	data, err := s.objects.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	store, err := NewMemoryStore(catalog)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return store, nil
}

func (s *ObjectStore) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	store, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return store.ListPosts(ctx)
}

func (s *ObjectStore) GetPost(ctx context.Context, id string) (models.BlogPost, error) {
	store, err := s.load(ctx)
	if err != nil {
		return models.BlogPost{}, err
	}
	return store.GetPost(ctx, id)
}

func (s *ObjectStore) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	store, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return store.ListTestimonials(ctx)
}
