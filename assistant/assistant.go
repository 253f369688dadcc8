// Package assistant wraps a generative model for the menu chat widget and
// the review import.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"restaurant-site/models"
	"restaurant-site/testimonial"

	"github.com/goccy/go-json"
)

// Visitor-facing replies. The site content is Turkish, so these are too.
const (
	NotConfiguredMessage = "Yapay zeka asistanı şu an yapılandırılmamış. Lütfen yönetici panelinden API anahtarını kontrol edin."
	FallbackMessage      = "Şu an küçük bir teknik aksaklık yaşıyorum, garson arkadaşlarımız size hemen yardımcı olacaktır."
)

var ErrNotConfigured = errors.New("AI assistant is not configured")

// Format selects the response shape a Provider should produce.
type Format int

const (
	FormatText Format = iota
	// FormatReviews asks for a JSON array of {name, comment, rating, date}.
	FormatReviews
)

// Request is a single prompt to a Provider.
type Request struct {
	Prompt string
	Format Format
	// WebSearch lets the model ground its answer with a web search.
	WebSearch bool
}

// Provider is a generative text backend.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Assistant builds prompts and interprets replies. A nil provider means
// no key was configured.
type Assistant struct {
	provider Provider
}

func New(p Provider) *Assistant {
	return &Assistant{provider: p}
}

func (a *Assistant) Configured() bool { return a != nil && a.provider != nil }

// Recommend answers a visitor question using the menu as context. It never
// fails: problems are logged and a static message is returned instead.
func (a *Assistant) Recommend(ctx context.Context, question string, menu []models.MenuItem, restaurantName string) string {
	if !a.Configured() {
		return NotConfiguredMessage
	}
	reply, err := a.provider.Generate(ctx, Request{Prompt: RecommendPrompt(question, menu, restaurantName)})
	if err != nil {
		log.Printf("⚠️ assistant: %v", err)
		return FallbackMessage
	}
	if strings.TrimSpace(reply) == "" {
		return FallbackMessage
	}
	return reply
}

// RecommendPrompt renders the waiter prompt with one menu line per item.
func RecommendPrompt(question string, menu []models.MenuItem, restaurantName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sen %q restoranının sanal garsonusun. Müşteri sana şunu sordu: %q.\n", restaurantName, question)
	b.WriteString("Lütfen aşağıdaki menümüzden müşteriye en uygun önerileri yap. Samimi, iştah açıcı ve kısa bir dil kullan.\n")
	b.WriteString("Menü:\n")
	for i, item := range menu {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s (%s TL)", item.Name, item.Description, formatPrice(item.Price))
	}
	return b.String()
}

func formatPrice(p float64) string {
	if p == float64(int64(p)) {
		return fmt.Sprintf("%d", int64(p))
	}
	return fmt.Sprintf("%.2f", p)
}

// FetchReviews asks the model for up to five recent reviews of the place
// behind mapsLink.
func (a *Assistant) FetchReviews(ctx context.Context, mapsLink string) ([]testimonial.Candidate, error) {
	if !a.Configured() {
		return nil, ErrNotConfigured
	}
	reply, err := a.provider.Generate(ctx, Request{
		Prompt:    "Lütfen şu Google Maps linkindeki mekanın en güncel ve gerçekçi 5 müşteri yorumunu bul: " + mapsLink + ".",
		Format:    FormatReviews,
		WebSearch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}
	return parseReviews(reply)
}

func parseReviews(reply string) ([]testimonial.Candidate, error) {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, nil
	}
	var out []testimonial.Candidate
	if err := json.Unmarshal([]byte(reply), &out); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out, nil
}
