package models

// MenuItem is a sellable catalog entry. Category is a soft reference to
// Category.Name; a dangling name is tolerated and renders without an icon.
type MenuItem struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	IsPopular   bool    `json:"isPopular"`
}

// Category groups menu items. Name doubles as the key MenuItem.Category points at.
type Category struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon"`
}
