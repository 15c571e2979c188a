package content

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bilgisen/nexus/internal/models"
)

// Service is the read-only Content API over a Store.
type Service struct {
	store Store
	log   zerolog.Logger
}

func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log}
}

// ListPosts returns all posts in store order.
func (s *Service) ListPosts(ctx context.Context) ([]models.BlogPost, error) {
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Error listing posts")
		return nil, err
	}
	return posts, nil
}

// GetPost returns the post with the given identifier or ErrNotFound.
func (s *Service) GetPost(ctx context.Context, id string) (models.BlogPost, error) {
	post, err := s.store.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Debug().Str("post_id", id).Msg("Post not found")
		} else {
			s.log.Error().Err(err).Str("post_id", id).Msg("Error getting post")
		}
		return models.BlogPost{}, err
	}
	return post, nil
}

// GetPostMarkdown returns the post rendered as Markdown.
func (s *Service) GetPostMarkdown(ctx context.Context, id string) (string, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return "", err
	}
	return Markdown(post)
}

// ListTestimonials returns all testimonials in store order.
func (s *Service) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.store.ListTestimonials(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Error listing testimonials")
		return nil, err
	}
	return testimonials, nil
}
