// Package testimonial filters, imports and lays out customer reviews.
package testimonial

import (
	"context"
	"errors"
	"strings"
	"time"

	"restaurant-site/carousel"
	"restaurant-site/models"

	"github.com/google/uuid"
)

const (
	// PerView is how many testimonials a slider page shows.
	PerView = 3
	// SlideInterval is how long a slider page stays up.
	SlideInterval = 6 * time.Second
	// DefaultGridCols is used when the stored column count is out of range.
	DefaultGridCols = 3
)

var (
	ErrEmptyLink = errors.New("a Google Maps link is required")
	ErrNoReviews = errors.New("no reviews found for this link")
)

// Candidate is a review returned by an external fetcher before it becomes a
// Testimonial.
type Candidate struct {
	Name    string  `json:"name"`
	Comment string  `json:"comment"`
	Rating  float64 `json:"rating"`
	Date    string  `json:"date,omitempty"`
}

// Fetcher looks up reviews for a place link.
type Fetcher interface {
	FetchReviews(ctx context.Context, mapsLink string) ([]Candidate, error)
}

// Fixed is a Fetcher that returns reviews fetched earlier.
type Fixed []Candidate

func (f Fixed) FetchReviews(context.Context, string) ([]Candidate, error) { return f, nil }

// Visible keeps the entries flagged visible.
func Visible(list []models.Testimonial) []models.Testimonial {
	out := make([]models.Testimonial, 0, len(list))
	for _, t := range list {
		if t.IsVisible {
			out = append(out, t)
		}
	}
	return out
}

// Import fetches reviews for mapsLink and appends them to existing as
// visible google testimonials. Existing entries are never deduplicated or
// replaced. Candidates without a name or comment are skipped.
func Import(ctx context.Context, f Fetcher, mapsLink string, existing []models.Testimonial) ([]models.Testimonial, int, error) {
	if strings.TrimSpace(mapsLink) == "" {
		return existing, 0, ErrEmptyLink
	}
	candidates, err := f.FetchReviews(ctx, mapsLink)
	if err != nil {
		return existing, 0, err
	}

	out := make([]models.Testimonial, len(existing), len(existing)+len(candidates))
	copy(out, existing)
	for _, c := range candidates {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Comment) == "" {
			continue
		}
		out = append(out, models.Testimonial{
			ID:        uuid.NewString(),
			Name:      c.Name,
			Comment:   c.Comment,
			Rating:    ClampRating(c.Rating),
			Date:      c.Date,
			Source:    models.SourceGoogle,
			IsVisible: true,
		})
	}
	added := len(out) - len(existing)
	if added == 0 {
		return existing, 0, ErrNoReviews
	}
	return out, added, nil
}

// ClampRating rounds an external rating into 1..5.
func ClampRating(r float64) int {
	n := int(r + 0.5)
	return min(5, max(1, n))
}

// Display is what the home page renders for the testimonial section.
type Display struct {
	Layout     models.TestimonialLayout `json:"layout"`
	Items      []models.Testimonial     `json:"items"`
	Groups     [][]models.Testimonial   `json:"groups,omitempty"`
	IntervalMS int64                    `json:"intervalMs,omitempty"`
	Columns    int                      `json:"columns,omitempty"`
}

// BuildDisplay returns the section model, or false when the section is
// disabled or has nothing visible to show.
func BuildDisplay(s models.SiteSettings) (Display, bool) {
	visible := Visible(s.Testimonials)
	if !s.TestimonialsEnabled || len(visible) == 0 {
		return Display{}, false
	}
	d := Display{Layout: s.TestimonialLayout, Items: visible}
	switch s.TestimonialLayout {
	case models.TestimonialGrid:
		d.Columns = GridCols(s.TestimonialGridCols)
	default:
		d.Layout = models.TestimonialSlider
		d.Groups = carousel.Chunk(visible, PerView)
		d.IntervalMS = SlideInterval.Milliseconds()
	}
	return d, true
}

// GridCols falls back to DefaultGridCols outside 1..4.
func GridCols(n int) int {
	if n < 1 || n > 4 {
		return DefaultGridCols
	}
	return n
}
