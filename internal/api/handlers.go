package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bilgisen/nexus/internal/content"
	"github.com/bilgisen/nexus/internal/inquiry"
	"github.com/bilgisen/nexus/internal/logger"
	"github.com/bilgisen/nexus/internal/models"
	"github.com/bilgisen/nexus/internal/roadmap"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

type Handlers struct {
	content   *content.Service
	inquiries *inquiry.Service
	roadmap   *roadmap.Service
}

func NewHandlers(contentSvc *content.Service, inquirySvc *inquiry.Service, roadmapSvc *roadmap.Service) *Handlers {
	return &Handlers{
		content:   contentSvc,
		inquiries: inquirySvc,
		roadmap:   roadmapSvc,
	}
}

// HealthCheck handles GET /api/health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
		"time":    time.Now().Format(time.RFC3339),
	})
}

// ListPosts handles GET /api/posts
func (h *Handlers) ListPosts(c *fiber.Ctx) error {
	posts, err := h.content.ListPosts(c.UserContext())
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id, with ?format=markdown for a Markdown body
func (h *Handlers) GetPost(c *fiber.Ctx) error {
	id := c.Params("id")

	if c.Query("format") == "markdown" {
		md, err := h.content.GetPostMarkdown(c.UserContext(), id)
		if err != nil {
			return contentError(c, err)
		}
		c.Set(fiber.HeaderContentType, "text/markdown; charset=utf-8")
		return c.SendString(md)
	}

	post, err := h.content.GetPost(c.UserContext(), id)
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(post)
}

// ListTestimonials handles GET /api/testimonials
func (h *Handlers) ListTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.content.ListTestimonials(c.UserContext())
	if err != nil {
		return contentError(c, err)
	}
	return c.JSON(testimonials)
}

func contentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, content.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	case errors.Is(err, content.ErrUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Content is temporarily unavailable. Please try again.",
		})
	default:
		return err
	}
}

// SubmitContact handles POST /api/contact
func (h *Handlers) SubmitContact(c *fiber.Ctx) error {
	var req models.ContactInquiry
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn().Err(err).Str("ip", c.IP()).Msg("Invalid contact request body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ack, err := h.inquiries.Submit(c.UserContext(), req)
	if err != nil {
		var verr *inquiry.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": verr.Fields,
			})
		case errors.Is(err, inquiry.ErrSinkFailed):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"error":   "We could not deliver your inquiry. Please try again shortly.",
			})
		default:
			return err
		}
	}

	return c.JSON(ack)
}

// ContactOptions handles GET /api/contact/options
func (h *Handlers) ContactOptions(c *fiber.Ctx) error {
	return c.JSON(inquiry.Options())
}

type roadmapRequest struct {
	Niche string `json:"niche"`
}

// GenerateRoadmap handles POST /api/roadmap
func (h *Handlers) GenerateRoadmap(c *fiber.Ctx) error {
	var req roadmapRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	strategies, err := h.roadmap.Generate(c.UserContext(), req.Niche)
	if err != nil {
		return c.Status(roadmapStatus(err)).JSON(fiber.Map{
			"error": roadmap.Message(err),
		})
	}
	return c.JSON(strategies)
}

func roadmapStatus(err error) int {
	switch {
	case errors.Is(err, roadmap.ErrEmptyNiche), errors.Is(err, roadmap.ErrNicheTooLong):
		return fiber.StatusBadRequest
	case errors.Is(err, roadmap.ErrUpstreamFormat):
		return fiber.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, roadmap.ErrConfigurationMissing), errors.Is(err, roadmap.ErrUpstreamUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
