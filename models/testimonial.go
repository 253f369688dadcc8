package models

// TestimonialSource tells admin-authored reviews apart from imported ones
type TestimonialSource string

const (
	SourceLocal  TestimonialSource = "local"
	SourceGoogle TestimonialSource = "google"
)

// Testimonial is a customer review shown on the home page. Hidden ones stay
// in storage but are never displayed publicly.
type Testimonial struct {
	ID        string            `json:"id" validate:"required"`
	Name      string            `json:"name" validate:"required"`
	Comment   string            `json:"comment" validate:"required"`
	Rating    int               `json:"rating" validate:"min=1,max=5"`
	Date      string            `json:"date,omitempty"`
	Source    TestimonialSource `json:"source" validate:"oneof=local google"`
	IsVisible bool              `json:"isVisible"`
}
