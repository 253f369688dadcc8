package models

import (
	"strings"

	"github.com/goccy/go-json"
)

// SettingsSchemaVersion is bumped whenever SiteSettings gains fields that
// need an explicit upgrade step in DecodeSettings.
//
//	1: first layout, no testimonial layout controls
//	2: testimonialLayout + testimonialGridCols
const SettingsSchemaVersion = 2

// WidgetPosition is the screen corner a floating widget is pinned to
type WidgetPosition string

const (
	BottomRight WidgetPosition = "bottom-right"
	BottomLeft  WidgetPosition = "bottom-left"
	TopRight    WidgetPosition = "top-right"
	TopLeft     WidgetPosition = "top-left"
)

type GalleryLayout string

const (
	GalleryGrid    GalleryLayout = "grid"
	GallerySlider  GalleryLayout = "slider"
	GalleryMasonry GalleryLayout = "masonry"
)

type TestimonialLayout string

const (
	TestimonialSlider TestimonialLayout = "slider"
	TestimonialGrid   TestimonialLayout = "grid"
)

// SiteSettings is the singleton holding every site-wide configurable text,
// toggle and layout choice. It is owned by the content service and handed to
// consumers by value.
type SiteSettings struct {
	SchemaVersion int `json:"schemaVersion"`

	// SEO
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
	SEOKeywords    string `json:"seoKeywords"`
	CuisineType    string `json:"cuisineType"`
	PriceRange     string `json:"priceRange" validate:"omitempty,oneof=$ $$ $$$ $$$$"`

	// Widgets
	AIAssistantEnabled  bool           `json:"aiAssistantEnabled"`
	AIAssistantPosition WidgetPosition `json:"aiAssistantPosition" validate:"oneof=bottom-right bottom-left top-right top-left"`
	WhatsAppEnabled     bool           `json:"whatsappEnabled"`
	WhatsAppPosition    WidgetPosition `json:"whatsappPosition" validate:"oneof=bottom-right bottom-left top-right top-left"`
	WhatsAppNumber      string         `json:"whatsappNumber"`

	// Brand
	RestaurantName string `json:"restaurantName" validate:"required"`
	BrandColor     string `json:"brandColor" validate:"omitempty,hexcolor"`
	BrandFont      string `json:"brandFont"`

	// Hero
	HeroTitle   string `json:"heroTitle"`
	HeroSubtext string `json:"heroSubtext"`
	HeroImage   string `json:"heroImage"`

	// About
	AboutTitle     string   `json:"aboutTitle"`
	AboutSubtext   string   `json:"aboutSubtext"`
	AboutStory     string   `json:"aboutStory"`
	AboutQualities []string `json:"aboutQualities"`

	// Social
	FacebookURL  string `json:"facebookUrl"`
	InstagramURL string `json:"instagramUrl"`
	TwitterURL   string `json:"twitterUrl"`
	YoutubeURL   string `json:"youtubeUrl"`

	// Contact
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	GoogleMapsURL string `json:"googleMapsUrl"`
	WorkingHours  string `json:"workingHours"`

	// Gallery
	GalleryEnabled bool          `json:"galleryEnabled"`
	GalleryLayout  GalleryLayout `json:"galleryLayout" validate:"oneof=grid slider masonry"`
	GalleryImages  []string      `json:"galleryImages"`

	// Testimonials
	TestimonialsEnabled bool              `json:"testimonialsEnabled"`
	Testimonials        []Testimonial     `json:"testimonials" validate:"dive"`
	TestimonialLayout   TestimonialLayout `json:"testimonialLayout" validate:"oneof=slider grid"`
	TestimonialGridCols int               `json:"testimonialGridCols" validate:"min=1,max=4"`
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		SchemaVersion:       SettingsSchemaVersion,
		SEOTitle:            "Meşhur Mekanlar | Geleneksel Kebap & Türk Mutfağı",
		SEODescription:      "İstanbul'un kalbinde en taze malzemelerle hazırlanan geleneksel kebaplar, pideler ve mezeler.",
		SEOKeywords:         "kebap, lahmacun, pide, restoran",
		CuisineType:         "Turkish, Grill, Kebab",
		PriceRange:          "$$",
		AIAssistantEnabled:  true,
		AIAssistantPosition: BottomRight,
		WhatsAppEnabled:     true,
		WhatsAppPosition:    BottomLeft,
		WhatsAppNumber:      "905555555555",
		RestaurantName:      "MEŞHUR MEKANLAR",
		BrandColor:          "#e11d48",
		BrandFont:           "'Playfair Display', serif",
		HeroTitle:           "Geleneksel Tatlar, Unutulmaz Anlar",
		HeroSubtext:         "Usta ellerden çıkan gerçek kebap lezzeti, Meşhur Mekanlar'da sizi bekliyor.",
		HeroImage:           "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?auto=format&fit=crop&q=80&w=1920",
		AboutTitle:          "Hakkımızda",
		AboutSubtext:        "1998'den bu yana sönmeyen lezzet ateşi.",
		AboutStory:          "Hikayemiz, 1998 yılında kurucumuzun vizyonuyla başladı.",
		AboutQualities:      []string{"Günlük Taze Kesim", "Meşe Odunu", "Doğal Baharatlar"},
		FacebookURL:         "#",
		InstagramURL:        "#",
		TwitterURL:          "#",
		YoutubeURL:          "#",
		Phone:               "0(212) 555 44 33",
		Address:             "Cumhuriyet Caddesi, No:42 Beşiktaş, İstanbul",
		GoogleMapsURL:       "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3009.6105307374734!2d28.98144!3d41.04285",
		WorkingHours:        "11:00 - 23:30",
		GalleryEnabled:      true,
		GalleryLayout:       GalleryGrid,
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1555939594-58d7cb561ad1?auto=format&fit=crop&q=80&w=800",
			"https://images.unsplash.com/photo-1541518763669-279998844e83?auto=format&fit=crop&q=80&w=800",
		},
		TestimonialsEnabled: true,
		Testimonials:        []Testimonial{},
		TestimonialLayout:   TestimonialSlider,
		TestimonialGridCols: 3,
	}
}

// DecodeSettings loads a stored settings document on top of the defaults, so
// fields missing from older documents keep their default value and unknown
// fields are ignored. Documents older than SettingsSchemaVersion are upgraded.
func DecodeSettings(data []byte) (SiteSettings, error) {
	s := DefaultSettings()
	s.SchemaVersion = 0
	if err := json.Unmarshal(data, &s); err != nil {
		return SiteSettings{}, err
	}
	return upgradeSettings(s), nil
}

func upgradeSettings(s SiteSettings) SiteSettings {
	if s.SchemaVersion < 2 {
		if s.TestimonialLayout == "" {
			s.TestimonialLayout = TestimonialSlider
		}
		if s.TestimonialGridCols < 1 || s.TestimonialGridCols > 4 {
			s.TestimonialGridCols = 3
		}
	}
	if s.Testimonials == nil {
		s.Testimonials = []Testimonial{}
	}
	if s.GalleryImages == nil {
		s.GalleryImages = []string{}
	}
	s.SchemaVersion = SettingsSchemaVersion
	return s
}

// WhatsAppLink is the click-to-chat URL for the configured number.
func (s SiteSettings) WhatsAppLink() string {
	number := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s.WhatsAppNumber)
	if number == "" {
		return ""
	}
	return "https://wa.me/" + number
}
