package models

import "time"

// Services offered on the contact form, in display order.
var Services = []string{
	"Custom Website Building",
	"Google Ranking (SEO)",
	"Google Ads (PPC)",
	"Facebook & Social Ads",
	"Full Brand Marketing",
	"Sales & Lead Generation",
	"Other / General Inquiry",
}

// Budgets are the project budget bands accepted on the contact form.
var Budgets = []string{
	"<5k",
	"5k-15k",
	"15k-50k",
	"50k+",
}

// ContactInquiry is a contact form submission
type ContactInquiry struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Service string `json:"service" validate:"required,service"`
	Budget  string `json:"budget" validate:"required,budget"`
	Message string `json:"message" validate:"required"`
}

// Submission is an accepted inquiry as handed to the delivery sink
type Submission struct {
	ID         string         `json:"id"`
	ReceivedAt time.Time      `json:"received_at"`
	Inquiry    ContactInquiry `json:"inquiry"`
}

// Acknowledgment is returned to the caller once per accepted submission
type Acknowledgment struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
