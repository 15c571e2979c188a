package content

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/bilgisen/nexus/internal/models"
)

// ErrInvalidCatalog is returned when a catalog breaks a store invariant.
var ErrInvalidCatalog = errors.New("invalid content catalog")

//go:embed seed.yaml
var seed []byte

// forbiddenTags may not appear in post bodies; the site renders them as raw HTML.
const forbiddenTags = "script, iframe, object, embed, link, meta"

var validate = validator.New()

// Catalog is the full set of records behind a Store, in display order.
type Catalog struct {
	Posts        []models.BlogPost    `yaml:"posts"`
	Testimonials []models.Testimonial `yaml:"testimonials"`
}

// ParseCatalog decodes a YAML (or JSON) catalog document.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return c, nil
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() (Catalog, error) {
	return ParseCatalog(seed)
}

// Validate checks identifier uniqueness, required fields, rating bounds and
// post markup.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Posts))
	for i, p := range c.Posts {
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("%w: post %d (%q): %v", ErrInvalidCatalog, i, p.ID, err)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate post id %q", ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = struct{}{}

		if err := checkMarkup(p.Content); err != nil {
			return fmt.Errorf("%w: post %q: %v", ErrInvalidCatalog, p.ID, err)
		}
	}

	for i, t := range c.Testimonials {
		if err := validate.Struct(t); err != nil {
			return fmt.Errorf("%w: testimonial %d (%q): %v", ErrInvalidCatalog, i, t.Name, err)
		}
	}
	return nil
}

func checkMarkup(html string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return fmt.Errorf("unparseable content: %w", err)
	}
	if doc.Find("body *").Length() == 0 {
		return errors.New("content has no markup elements")
	}
	if bad := doc.Find(forbiddenTags); bad.Length() > 0 {
		return fmt.Errorf("content contains forbidden <%s> element", goquery.NodeName(bad.First()))
	}
	return nil
}
