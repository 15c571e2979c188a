package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilgisen/nexus/internal/config"
	"github.com/bilgisen/nexus/internal/content"
	"github.com/bilgisen/nexus/internal/inquiry"
	"github.com/bilgisen/nexus/internal/middleware"
	"github.com/bilgisen/nexus/internal/models"
	"github.com/bilgisen/nexus/internal/roadmap"
)

type countingSink struct {
	calls atomic.Int32
	err   error
}

func (s *countingSink) Name() string { return "counting" }

func (s *countingSink) Deliver(context.Context, models.Submission) error {
	if s.err != nil {
		return s.err
	}
	s.calls.Add(1)
	return nil
}

type staticProvider struct {
	text string
}

func (p staticProvider) Name() string { return "static" }

func (p staticProvider) Generate(context.Context, string) (string, error) {
	return p.text, nil
}

type downStore struct{}

func (downStore) ListPosts(context.Context) ([]models.BlogPost, error) {
	return nil, content.ErrUnavailable
}

func (downStore) GetPost(context.Context, string) (models.BlogPost, error) {
	return models.BlogPost{}, content.ErrUnavailable
}

func (downStore) ListTestimonials(context.Context) ([]models.Testimonial, error) {
	return nil, content.ErrUnavailable
}

type testDeps struct {
	store     content.Store
	sink      *countingSink
	provider  roadmap.Provider
	staticDir string
}

const strategiesJSON = `[
 {"title":"Local SEO","points":["Claim profile"],"timeline":"0-2 months","priority":"High"},
 {"title":"Paid Search","points":["Exact match"],"timeline":"1-3 months","priority":"Medium"},
 {"title":"Retention","points":["Email flows"],"timeline":"3-6 months","priority":"Low"}
]`

func newTestApp(t *testing.T, deps testDeps) *fiber.App {
	t.Helper()

	if deps.store == nil {
		store, err := content.LoadDefault()
		require.NoError(t, err)
		deps.store = store
	}
	if deps.sink == nil {
		deps.sink = &countingSink{}
	}

	cfg := &config.Config{
		CORSOrigins:       "*",
		ContactRateLimit:  100,
		ContactRateWindow: time.Minute,
		StaticDir:         deps.staticDir,
	}

	h := NewHandlers(
		content.NewService(deps.store, zerolog.Nop()),
		inquiry.NewService(deps.sink, zerolog.Nop()),
		roadmap.NewService(deps.provider, time.Second, zerolog.Nop()),
	)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	SetupRoutes(app, h, cfg)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestListPosts(t *testing.T) {
	app := newTestApp(t, testDeps{})

	resp, body := do(t, app, "GET", "/api/posts", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []models.BlogPost
	require.NoError(t, json.Unmarshal(body, &posts))
	require.Len(t, posts, 3)
	assert.Equal(t, "seo-strategy-2024", posts[0].ID)
	assert.Equal(t, "profitable-ads", posts[2].ID)
}

func TestGetPost(t *testing.T) {
	app := newTestApp(t, testDeps{})

	resp, body := do(t, app, "GET", "/api/posts/seo-strategy-2024", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var post models.BlogPost
	require.NoError(t, json.Unmarshal(body, &post))
	assert.Equal(t, "SEO Strategy", post.Category)

	resp, body = do(t, app, "GET", "/api/posts/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Post not found"}`, string(body))
}

func TestGetPostMarkdown(t *testing.T) {
	app := newTestApp(t, testDeps{})

	resp, body := do(t, app, "GET", "/api/posts/site-speed-sales?format=markdown", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/markdown")
	assert.True(t, strings.HasPrefix(string(body), "# The 3-Second Rule"))

	resp, _ = do(t, app, "GET", "/api/posts/nope?format=markdown", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListTestimonials(t *testing.T) {
	app := newTestApp(t, testDeps{})

	resp, body := do(t, app, "GET", "/api/testimonials", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var testimonials []models.Testimonial
	require.NoError(t, json.Unmarshal(body, &testimonials))
	require.Len(t, testimonials, 3)
	for _, tm := range testimonials {
		assert.GreaterOrEqual(t, tm.Rating, 1)
		assert.LessOrEqual(t, tm.Rating, 5)
	}
}

func TestContentUnavailable(t *testing.T) {
	app := newTestApp(t, testDeps{store: downStore{}})

	for _, path := range []string{"/api/posts", "/api/posts/seo-strategy-2024", "/api/testimonials"} {
		resp, _ := do(t, app, "GET", path, "")
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, path)
	}
}

func TestSubmitContact(t *testing.T) {
	sink := &countingSink{}
	app := newTestApp(t, testDeps{sink: sink})

	resp, body := do(t, app, "POST", "/api/contact",
		`{"name":"Jane","email":"jane@x.com","service":"Google Ranking (SEO)","budget":"5k-15k","message":"Need help"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ack models.Acknowledgment
	require.NoError(t, json.Unmarshal(body, &ack))
	assert.True(t, ack.Success)
	assert.Equal(t, inquiry.AckMessage, ack.Message)
	assert.NotEmpty(t, ack.ID)
	assert.Equal(t, int32(1), sink.calls.Load())
}

func TestSubmitContactMissingEmail(t *testing.T) {
	sink := &countingSink{}
	app := newTestApp(t, testDeps{sink: sink})

	resp, body := do(t, app, "POST", "/api/contact",
		`{"name":"Jane","service":"Google Ranking (SEO)","budget":"5k-15k","message":"Need help"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, map[string]string{"email": "required"}, out.Fields)
	assert.Zero(t, sink.calls.Load())
}

func TestSubmitContactMalformedBody(t *testing.T) {
	sink := &countingSink{}
	app := newTestApp(t, testDeps{sink: sink})

	resp, _ := do(t, app, "POST", "/api/contact", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, sink.calls.Load())
}

func TestSubmitContactSinkDown(t *testing.T) {
	app := newTestApp(t, testDeps{sink: &countingSink{err: errors.New("queue offline")}})

	resp, body := do(t, app, "POST", "/api/contact",
		`{"name":"Jane","email":"jane@x.com","service":"Google Ads (PPC)","budget":"<5k","message":"Hi"}`)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(body), `"success":false`)
}

func TestContactOptions(t *testing.T) {
	app := newTestApp(t, testDeps{})

	resp, body := do(t, app, "GET", "/api/contact/options", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var opts map[string][]string
	require.NoError(t, json.Unmarshal(body, &opts))
	assert.Equal(t, models.Services, opts["services"])
	assert.Equal(t, models.Budgets, opts["budgets"])
}

func TestGenerateRoadmap(t *testing.T) {
	app := newTestApp(t, testDeps{provider: staticProvider{text: strategiesJSON}})

	resp, body := do(t, app, "POST", "/api/roadmap", `{"niche":"Dental clinics"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var strategies []models.RoadmapStrategy
	require.NoError(t, json.Unmarshal(body, &strategies))
	require.Len(t, strategies, 3)
	for _, s := range strategies {
		assert.NotEmpty(t, s.Title)
		assert.Contains(t, []string{"High", "Medium", "Low"}, s.Priority)
	}
}

func TestGenerateRoadmapErrors(t *testing.T) {
	tests := []struct {
		name     string
		provider roadmap.Provider
		body     string
		status   int
		message  string
	}{
		{"empty niche", staticProvider{text: strategiesJSON}, `{"niche":""}`, http.StatusBadRequest, "niche"},
		{"missing credential", nil, `{"niche":"Fintech"}`, http.StatusServiceUnavailable, "AI Engine Offline"},
		{"non-array payload", staticProvider{text: `{"oops":true}`}, `{"niche":"Fintech"}`, http.StatusBadGateway, "unexpected response"},
		{"no content", staticProvider{text: ""}, `{"niche":"Fintech"}`, http.StatusServiceUnavailable, "unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, testDeps{provider: tt.provider})

			resp, body := do(t, app, "POST", "/api/roadmap", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)

			var out map[string]string
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Contains(t, out["error"], tt.message)
		})
	}
}

func TestHealthAndUnknownRoutes(t *testing.T) {
	app := newTestApp(t, testDeps{})

	resp, body := do(t, app, "GET", "/api/health", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)

	resp, _ = do(t, app, "GET", "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStaticFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<div id=root></div>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0644))

	app := newTestApp(t, testDeps{staticDir: dir})

	resp, body := do(t, app, "GET", "/app.js", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "console.log(1)", string(body))

	resp, body = do(t, app, "GET", "/privacy-policy", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "id=root")

	resp, _ = do(t, app, "GET", "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
