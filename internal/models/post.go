package models

// BlogPost is a published article in the content catalog
type BlogPost struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	Category string `json:"category" yaml:"category" validate:"required"`
	Title    string `json:"title" yaml:"title" validate:"required"`
	Author   string `json:"author" yaml:"author"`
	Date     string `json:"date" yaml:"date"`
	Image    string `json:"image" yaml:"image"`
	Excerpt  string `json:"excerpt" yaml:"excerpt"`
	Content  string `json:"content" yaml:"content" validate:"required"`
	Target   string `json:"target" yaml:"target"`
}

// Testimonial is a client quote shown on the landing page
type Testimonial struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Role    string `json:"role" yaml:"role"`
	Image   string `json:"image" yaml:"image"`
	Content string `json:"content" yaml:"content" validate:"required"`
	Rating  int    `json:"rating" yaml:"rating" validate:"min=1,max=5"`
}
