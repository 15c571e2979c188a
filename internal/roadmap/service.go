package roadmap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/bilgisen/nexus/internal/models"
)

var (
	ErrEmptyNiche           = errors.New("niche is required")
	ErrNicheTooLong         = errors.New("niche is too long")
	ErrConfigurationMissing = errors.New("generative provider credential is not configured")
	ErrUpstreamUnavailable  = errors.New("generative provider unavailable")
	ErrUpstreamFormat       = errors.New("generative provider returned malformed roadmap")
)

// Provider sends one prompt to a generative-content backend, constrained to
// StrategySchema, and returns the raw text of the answer.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Service is the Roadmap Generation API. A nil provider means the
// credential is absent; every call then fails with ErrConfigurationMissing.
type Service struct {
	provider Provider
	timeout  time.Duration
	log      zerolog.Logger
}

func NewService(provider Provider, timeout time.Duration, log zerolog.Logger) *Service {
	return &Service{provider: provider, timeout: timeout, log: log}
}

// Generate returns exactly three strategies for niche.
func (s *Service) Generate(ctx context.Context, niche string) ([]models.RoadmapStrategy, error) {
	niche = strings.TrimSpace(niche)
	if niche == "" {
		return nil, ErrEmptyNiche
	}
	if utf8.RuneCountInString(niche) > MaxNicheLength {
		return nil, fmt.Errorf("%w: limit is %d characters", ErrNicheTooLong, MaxNicheLength)
	}
	if s.provider == nil {
		s.log.Error().Msg("Roadmap requested but API_KEY is missing from environment")
		return nil, ErrConfigurationMissing
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.provider.Generate(ctx, BuildPrompt(niche))
	if err != nil {
		if !errors.Is(err, ErrUpstreamUnavailable) {
			err = fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
		}
		s.log.Error().
			Err(err).
			Str("niche", niche).
			Str("provider", s.provider.Name()).
			Dur("duration", time.Since(start)).
			Msg("Roadmap generation failed")
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		s.log.Error().Str("niche", niche).Str("provider", s.provider.Name()).Msg("Provider returned no content")
		return nil, fmt.Errorf("%w: empty response", ErrUpstreamUnavailable)
	}

	strategies, err := ParseStrategies(text)
	if err != nil {
		s.log.Error().
			Err(err).
			Str("niche", niche).
			Int("response_length", len(text)).
			Msg("Provider response rejected")
		return nil, err
	}

	s.log.Info().
		Str("niche", niche).
		Str("provider", s.provider.Name()).
		Dur("duration", time.Since(start)).
		Msg("Roadmap generated")
	return strategies, nil
}

// Message returns the user-presentable text for a Generate error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrEmptyNiche):
		return "Please enter your industry or niche."
	case errors.Is(err, ErrNicheTooLong):
		return fmt.Sprintf("Please describe your niche in %d characters or fewer.", MaxNicheLength)
	case errors.Is(err, ErrConfigurationMissing):
		return "AI Engine Offline. Please check your deployment settings for the API_KEY."
	case errors.Is(err, context.DeadlineExceeded):
		return "Connection timed out. Please try again."
	case errors.Is(err, ErrUpstreamUnavailable):
		return "The AI engine is unreachable right now. Please try again."
	case errors.Is(err, ErrUpstreamFormat):
		return "The AI returned an unexpected response. Please try again."
	default:
		return "Something went wrong generating your roadmap. Please try again."
	}
}
