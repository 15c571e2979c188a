package content

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/bilgisen/nexus/internal/models"
)

// Markdown renders a post as a Markdown document: title, byline, then body.
func Markdown(post models.BlogPost) (string, error) {
	body, err := htmltomarkdown.ConvertString(post.Content)
	if err != nil {
		return "", fmt.Errorf("failed to convert post %q to markdown: %w", post.ID, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", post.Title)
	if post.Author != "" || post.Date != "" {
		fmt.Fprintf(&b, "*%s*\n\n", strings.Trim(post.Author+" · "+post.Date, " ·"))
	}
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")
	return b.String(), nil
}
