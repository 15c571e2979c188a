package inquiry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/bilgisen/nexus/internal/models"
	"github.com/bilgisen/nexus/internal/queue"
	"github.com/bilgisen/nexus/internal/utils"
)

// Sink receives each accepted submission exactly once. Delivery beyond the
// sink (mail, CRM, ticketing) is the sink owner's responsibility.
type Sink interface {
	Deliver(ctx context.Context, sub models.Submission) error
	Name() string
}

// LogSink records submissions in the application log only.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Deliver(_ context.Context, sub models.Submission) error {
	s.log.Info().
		Str("inquiry_id", sub.ID).
		Str("name", sub.Inquiry.Name).
		Str("email_hash", utils.Fingerprint(sub.Inquiry.Email)).
		Str("service", sub.Inquiry.Service).
		Str("budget", sub.Inquiry.Budget).
		Int("message_length", len(sub.Inquiry.Message)).
		Msg("New contact form submission")
	return nil
}

// WebhookSink posts each submission as JSON to an external endpoint.
type WebhookSink struct {
	client *resty.Client
	url    string
}

func NewWebhookSink(url string, timeout time.Duration) *WebhookSink {
	return &WebhookSink{
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
		url: url,
	}
}

func (s *WebhookSink) Name() string { return "webhook" }

func (s *WebhookSink) Deliver(ctx context.Context, sub models.Submission) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", sub.ID).
		SetBody(sub).
		Post(s.url)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode())
	}
	return nil
}

// QueueSink pushes each submission onto a redis list for a downstream worker.
type QueueSink struct {
	redis queue.RedisInterface
	queue string
}

func NewQueueSink(redis queue.RedisInterface, queueName string) *QueueSink {
	return &QueueSink{redis: redis, queue: queueName}
}

func (s *QueueSink) Name() string { return "redis" }

func (s *QueueSink) Deliver(ctx context.Context, sub models.Submission) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}
	return s.redis.Push(ctx, s.queue, payload)
}

// JSONPutter writes a JSON document under a key; storage.Storage satisfies it.
type JSONPutter interface {
	PutJSON(ctx context.Context, key string, v interface{}) error
}

// ArchiveSink writes each submission as a JSON object, one per key,
// partitioned by day.
type ArchiveSink struct {
	objects JSONPutter
	prefix  string
}

func NewArchiveSink(objects JSONPutter, prefix string) *ArchiveSink {
	return &ArchiveSink{objects: objects, prefix: prefix}
}

func (s *ArchiveSink) Name() string { return "r2" }

func (s *ArchiveSink) Deliver(ctx context.Context, sub models.Submission) error {
	if sub.ID == "" {
		return errors.New("submission has no id")
	}
	return s.objects.PutJSON(ctx, s.Key(sub), sub)
}

// Key returns the object key a submission is archived under.
func (s *ArchiveSink) Key(sub models.Submission) string {
	return fmt.Sprintf("%s%s/%s.json", s.prefix, sub.ReceivedAt.UTC().Format("2006/01/02"), sub.ID)
}
