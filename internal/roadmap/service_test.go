package roadmap

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgisen/nexus/internal/config"
	"github.com/bilgisen/nexus/internal/models"
)

type fakeProvider struct {
	calls  atomic.Int32
	prompt string
	text   string
	err    error
	block  bool
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls.Add(1)
	f.prompt = prompt
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.text, f.err
}

func newService(p Provider) *Service {
	return NewService(p, time.Second, zerolog.Nop())
}

func TestGenerateShape(t *testing.T) {
	p := &fakeProvider{text: validPayload}

	got, err := newService(p).Generate(context.Background(), "Fintech")
	require.NoError(t, err)

	require.Len(t, got, StrategyCount)
	for _, s := range got {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Points)
		assert.Contains(t, []string{models.PriorityHigh, models.PriorityMedium, models.PriorityLow}, s.Priority)
	}
	assert.Contains(t, p.prompt, `"Fintech"`)
}

func TestGenerateRejectsBeforeUpstream(t *testing.T) {
	p := &fakeProvider{text: validPayload}
	svc := newService(p)

	_, err := svc.Generate(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyNiche)

	_, err = svc.Generate(context.Background(), " \t\n")
	assert.ErrorIs(t, err, ErrEmptyNiche)

	_, err = svc.Generate(context.Background(), strings.Repeat("a", MaxNicheLength+1))
	assert.ErrorIs(t, err, ErrNicheTooLong)

	assert.Zero(t, p.calls.Load())
}

func TestGenerateConfigurationMissing(t *testing.T) {
	_, err := newService(nil).Generate(context.Background(), "Fintech")
	assert.ErrorIs(t, err, ErrConfigurationMissing)

	_, err = newService(nil).Generate(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyNiche)
}

func TestGenerateUpstreamFailures(t *testing.T) {
	tests := []struct {
		name string
		p    *fakeProvider
		want error
	}{
		{"transport error", &fakeProvider{err: errors.New("dial tcp: no route to host")}, ErrUpstreamUnavailable},
		{"empty response", &fakeProvider{text: ""}, ErrUpstreamUnavailable},
		{"non-array payload", &fakeProvider{text: `{"strategies": []}`}, ErrUpstreamFormat},
		{"truncated json", &fakeProvider{text: `[{"title": "a"`}, ErrUpstreamFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(tt.p).Generate(context.Background(), "E-commerce")
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, int32(1), tt.p.calls.Load())
		})
	}
}

func TestGenerateTimeout(t *testing.T) {
	p := &fakeProvider{block: true}
	svc := NewService(p, 20*time.Millisecond, zerolog.Nop())

	start := time.Now()
	_, err := svc.Generate(context.Background(), "Fintech")

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, "Connection timed out. Please try again.", Message(err))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "AI Engine Offline. Please check your deployment settings for the API_KEY.", Message(ErrConfigurationMissing))
	assert.Contains(t, Message(ErrUpstreamFormat), "unexpected response")
	assert.Contains(t, Message(ErrEmptyNiche), "niche")
	assert.NotEmpty(t, Message(errors.New("other")))
}

func TestNewProvider(t *testing.T) {
	_, err := NewProvider(context.Background(), &config.Config{AIProvider: config.ProviderREST})
	assert.ErrorIs(t, err, ErrConfigurationMissing)

	p, err := NewProvider(context.Background(), &config.Config{
		AIApiKey:   "k",
		AIProvider: config.ProviderREST,
		AIModel:    "gemini-3-flash-preview",
	})
	require.NoError(t, err)
	assert.IsType(t, &GeminiClient{}, p)

	_, err = NewProvider(context.Background(), &config.Config{AIApiKey: "k", AIProvider: "oracle"})
	assert.Error(t, err)
}
