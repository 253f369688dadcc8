// Package catalog answers menu queries: category and search filtering,
// the popular picks and the category strip.
package catalog

import (
	"strings"

	"restaurant-site/models"
)

// AllCategories is the pseudo-category that matches every item.
const AllCategories = "All"

// Filter keeps items whose category matches (or category is AllCategories)
// and whose name or description contains search, case-insensitively.
// Input order is kept and the result is never nil.
func Filter(items []models.MenuItem, category, search string) []models.MenuItem {
	needle := strings.ToLower(search)
	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if category != "" && category != AllCategories && item.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.Description), needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Popular returns the first limit items flagged popular.
func Popular(items []models.MenuItem, limit int) []models.MenuItem {
	out := make([]models.MenuItem, 0, limit)
	for _, item := range items {
		if len(out) >= limit {
			break
		}
		if item.IsPopular {
			out = append(out, item)
		}
	}
	return out
}

// CategoryNames is the filter strip: AllCategories first, then each category.
func CategoryNames(categories []models.Category) []string {
	names := make([]string, 0, len(categories)+1)
	names = append(names, AllCategories)
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}

// IconFor returns the icon of the named category, or "" when no category
// carries that name anymore.
func IconFor(categories []models.Category, name string) string {
	for _, c := range categories {
		if c.Name == name {
			return c.Icon
		}
	}
	return ""
}
