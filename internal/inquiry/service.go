package inquiry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bilgisen/nexus/internal/models"
	"github.com/bilgisen/nexus/internal/utils"
)

// ErrSinkFailed is returned when a valid submission could not be handed off.
var ErrSinkFailed = errors.New("inquiry delivery failed")

// AckMessage is the acknowledgment text shown after a successful submission.
const AckMessage = "Inquiry received. Our growth team will contact you shortly."

// Service is the Inquiry Intake API.
type Service struct {
	validator *Validator
	sink      Sink
	log       zerolog.Logger
	now       func() time.Time
	newID     func() string
}

func NewService(sink Sink, log zerolog.Logger) *Service {
	return &Service{
		validator: NewValidator(),
		sink:      sink,
		log:       log,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// Submit validates inq and hands it to the sink once. Invalid input never
// reaches the sink.
func (s *Service) Submit(ctx context.Context, inq models.ContactInquiry) (models.Acknowledgment, error) {
	inq = normalize(inq)
	if err := s.validator.Validate(inq); err != nil {
		s.log.Info().Err(err).Msg("Rejected contact form submission")
		return models.Acknowledgment{}, err
	}

	sub := models.Submission{
		ID:         s.newID(),
		ReceivedAt: s.now().UTC(),
		Inquiry:    inq,
	}

	start := time.Now()
	if err := s.sink.Deliver(ctx, sub); err != nil {
		s.log.Error().
			Err(err).
			Str("inquiry_id", sub.ID).
			Str("sink", s.sink.Name()).
			Msg("Error delivering inquiry")
		return models.Acknowledgment{}, fmt.Errorf("%w: %w", ErrSinkFailed, err)
	}

	s.log.Info().
		Str("inquiry_id", sub.ID).
		Str("sink", s.sink.Name()).
		Str("email_hash", utils.Fingerprint(inq.Email)).
		Dur("duration", time.Since(start)).
		Msg("Inquiry accepted")

	return models.Acknowledgment{
		Success: true,
		Message: AckMessage,
		ID:      sub.ID,
	}, nil
}

// Options lists the accepted service and budget values.
func Options() map[string][]string {
	return map[string][]string{
		"services": models.Services,
		"budgets":  models.Budgets,
	}
}
