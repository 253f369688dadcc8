package content

import (
	"strconv"

	"restaurant-site/models"
)

// categoryIcons is the fixed category→icon mapping the seed categories are
// derived from, in display order.
var categoryIcons = []struct{ name, icon string }{
	{"Çorbalar", "https://cdn-icons-png.flaticon.com/128/3480/3480438.png"},
	{"Mezeler", "https://cdn-icons-png.flaticon.com/128/2276/2276931.png"},
	{"Kebaplar", "https://cdn-icons-png.flaticon.com/128/14603/14603248.png"},
	{"Dürümler", "https://cdn-icons-png.flaticon.com/128/575/575454.png"},
	{"Special Kebaplar", "https://cdn-icons-png.flaticon.com/128/3141/3141021.png"},
	{"Dönerler", "https://cdn-icons-png.flaticon.com/128/5000/5000030.png"},
	{"Lahmacunlar", "https://cdn-icons-png.flaticon.com/128/1404/1404945.png"},
	{"Karadeniz Pideleri", "https://cdn-icons-png.flaticon.com/128/10410/10410408.png"},
	{"Salatalar", "https://cdn-icons-png.flaticon.com/128/2403/2403197.png"},
	{"Tatlılar", "https://cdn-icons-png.flaticon.com/128/992/992717.png"},
	{"İçecekler", "https://cdn-icons-png.flaticon.com/128/2738/2738730.png"},
}

// SeedCategories returns the built-in categories with ids "0".."10".
func SeedCategories() []models.Category {
	out := make([]models.Category, len(categoryIcons))
	for i, c := range categoryIcons {
		out[i] = models.Category{ID: strconv.Itoa(i), Name: c.name, Icon: c.icon}
	}
	return out
}

// SeedMenuItems returns the built-in catalog.
func SeedMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          "1",
			Name:        "Adana Kebap",
			Description: "Zırh kıymasıyla hazırlanan, közlenmiş biber ve domates eşliğinde servis edilen klasik acılı kebap.",
			Price:       340,
			Category:    "Kebaplar",
			Image:       "https://images.unsplash.com/photo-1662116765994-1e22240902c5?auto=format&fit=crop&q=80&w=600",
			IsPopular:   true,
		},
		{
			ID:          "2",
			Name:        "Mercimek Çorbası",
			Description: "Tereyağlı sos eşliğinde servis edilen süzme mercimek çorbası.",
			Price:       95,
			Category:    "Çorbalar",
			Image:       "https://images.unsplash.com/photo-1547592166-23ac45744acd?auto=format&fit=crop&q=80&w=600",
		},
		{
			ID:          "3",
			Name:        "Kuşbaşılı Pide",
			Description: "Özel hamur üzerine ince kıyılmış dana eti ve taze sebzeler.",
			Price:       290,
			Category:    "Karadeniz Pideleri",
			Image:       "https://images.unsplash.com/photo-1610192244261-3f33de3f55e4?auto=format&fit=crop&q=80&w=600",
		},
		{
			ID:          "4",
			Name:        "Kıymalı Lahmacun",
			Description: "Çıtır çıtır, bol malzemeli geleneksel lahmacun.",
			Price:       85,
			Category:    "Lahmacunlar",
			Image:       "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&q=80&w=600",
		},
		{
			ID:          "5",
			Name:        "Künefe",
			Description: "Hatay peyniri ile hazırlanan, şerbetli ve bol fıstıklı sıcak tatlı.",
			Price:       180,
			Category:    "Tatlılar",
			Image:       "https://images.unsplash.com/photo-1633945274405-b6c8069047b0?auto=format&fit=crop&q=80&w=600",
			IsPopular:   true,
		},
		{
			ID:          "6",
			Name:        "Şakşuka",
			Description: "Kızartılmış sebzelerin domates sosuyla eşsiz buluşması.",
			Price:       110,
			Category:    "Mezeler",
			Image:       "https://images.unsplash.com/photo-1541518763669-279998844e83?auto=format&fit=crop&q=80&w=600",
		},
		{
			ID:          "7",
			Name:        "Adana Dürüm",
			Description: "Lavaş içerisine sarılmış, soğanlı ve sumaklı Adana kebap.",
			Price:       220,
			Category:    "Dürümler",
			Image:       "https://images.unsplash.com/photo-1626074353765-517a681e40be?auto=format&fit=crop&q=80&w=600",
		},
		{
			ID:          "8",
			Name:        "Gavurdağı Salatası",
			Description: "Nar ekşili, bol cevizli ve ince kıyılmış taze bahçe sebzeleri.",
			Price:       140,
			Category:    "Salatalar",
			Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&q=80&w=600",
		},
	}
}
