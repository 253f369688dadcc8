package content

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"restaurant-site/auth"
	"restaurant-site/models"
	"restaurant-site/store"
	"restaurant-site/validation"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, *store.Local) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "content.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	local, err := store.NewLocal(db)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}
	return New(local, Options{SeedUsername: "admin", SeedPassword: "admin"}), local
}

func TestDefaultsWhenEmpty(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	snap, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.MenuItems) != 8 {
		t.Fatalf("expected 8 seed items, got %d", len(snap.MenuItems))
	}
	if len(snap.Categories) != 11 || snap.Categories[0].ID != "0" || snap.Categories[10].ID != "10" {
		t.Fatalf("unexpected seed categories: %+v", snap.Categories)
	}
	if snap.Settings.RestaurantName != "MEŞHUR MEKANLAR" {
		t.Fatalf("unexpected default settings: %q", snap.Settings.RestaurantName)
	}
	if len(snap.Admins) != 1 || snap.Admins[0].Username != "admin" || snap.Admins[0].Role != models.RoleSuper {
		t.Fatalf("unexpected seed admins: %+v", snap.Admins)
	}
	if !auth.CheckPassword(snap.Admins[0].PasswordHash, "admin") {
		t.Fatal("seed admin password does not verify")
	}
}

func TestStoredEmptyMenuStaysEmpty(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	if err := svc.SaveMenuItems(ctx, nil); err != nil {
		t.Fatalf("SaveMenuItems: %v", err)
	}
	items, err := svc.MenuItems(ctx)
	if err != nil {
		t.Fatalf("MenuItems: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestUpsertMenuItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.UpsertMenuItem(ctx, models.MenuItem{Name: "Ayran", Price: 30, Category: "İçecekler"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	created.Price = 35
	if _, err := svc.UpsertMenuItem(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}

	items, _ := svc.MenuItems(ctx)
	if len(items) != 9 {
		t.Fatalf("expected 9 items, got %d", len(items))
	}
	last := items[len(items)-1]
	if last.ID != created.ID || last.Price != 35 {
		t.Fatalf("update not applied in place: %+v", last)
	}
}

func TestUpsertMenuItemRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	svc, local := newTestService(t)

	_, err := svc.UpsertMenuItem(ctx, models.MenuItem{Name: "", Price: -1})
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := local.Read(ctx, store.KeyMenu); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("invalid item must not be written, read err = %v", err)
	}
}

func TestDeleteMenuItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	if err := svc.DeleteMenuItem(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteMenuItem(ctx, "1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: err = %v, want ErrNotFound", err)
	}
	items, _ := svc.MenuItems(ctx)
	if len(items) != 7 || items[0].ID != "2" {
		t.Fatalf("unexpected items after delete: %+v", items)
	}
}

func TestCategoryRenameDoesNotCascade(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	cats, _ := svc.Categories(ctx)
	kebab := cats[2]
	kebab.Name = "Izgaralar"
	if _, err := svc.UpsertCategory(ctx, kebab); err != nil {
		t.Fatalf("rename: %v", err)
	}

	items, _ := svc.MenuItems(ctx)
	if items[0].Category != "Kebaplar" {
		t.Fatalf("menu item category changed to %q", items[0].Category)
	}

	dup := models.Category{Name: "Izgaralar"}
	if _, err := svc.UpsertCategory(ctx, dup); err == nil {
		t.Fatal("expected duplicate category name to be rejected")
	}
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	got, err := svc.UpdateSettings(ctx, func(s *models.SiteSettings) error {
		s.RestaurantName = "Yeni Mekan"
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}
	if got.RestaurantName != "Yeni Mekan" {
		t.Fatalf("got %q", got.RestaurantName)
	}

	reloaded, _ := svc.Settings(ctx)
	if reloaded.RestaurantName != "Yeni Mekan" || reloaded.SchemaVersion != models.SettingsSchemaVersion {
		t.Fatalf("not persisted: %+v", reloaded)
	}

	stop := errors.New("stop")
	if _, err := svc.UpdateSettings(ctx, func(s *models.SiteSettings) error {
		s.RestaurantName = "Ignored"
		return stop
	}); !errors.Is(err, stop) {
		t.Fatalf("err = %v", err)
	}
	reloaded, _ = svc.Settings(ctx)
	if reloaded.RestaurantName != "Yeni Mekan" {
		t.Fatalf("failed update was written: %q", reloaded.RestaurantName)
	}

	if _, err := svc.UpdateSettings(ctx, func(s *models.SiteSettings) error {
		s.TestimonialGridCols = 9
		return nil
	}); err == nil {
		t.Fatal("expected grid cols out of range to be rejected")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	want := models.DefaultSettings()
	want.RestaurantName = "Köşe Kebap"
	want.PriceRange = "$$$"
	want.BrandColor = "#123abc"
	want.AIAssistantEnabled = false
	want.AIAssistantPosition = models.TopLeft
	want.WhatsAppPosition = models.TopRight
	want.WhatsAppNumber = "+90 532 000 00 00"
	want.AboutQualities = []string{"Odun ateşi", "El açması"}
	want.GalleryLayout = models.GalleryMasonry
	want.GalleryImages = []string{"https://img/1.jpg", "data:image/png;base64,AAAA"}
	want.TestimonialLayout = models.TestimonialGrid
	want.TestimonialGridCols = 2
	want.Testimonials = []models.Testimonial{
		{ID: "t1", Name: "Ayşe", Comment: "Harika", Rating: 5, Date: "01.02.2026", Source: models.SourceLocal, IsVisible: true},
		{ID: "t2", Name: "Mehmet", Comment: "İdare eder", Rating: 3, Source: models.SourceGoogle},
	}

	if err := svc.SaveSettings(ctx, want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := svc.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestSettingsUpgradeOnRead(t *testing.T) {
	ctx := context.Background()
	svc, local := newTestService(t)

	if err := local.Write(ctx, store.KeySettings, []byte(`{"restaurantName":"Eski","legacyField":true}`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s, err := svc.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if s.RestaurantName != "Eski" || s.TestimonialLayout != models.TestimonialSlider || s.TestimonialGridCols != 3 {
		t.Fatalf("unexpected upgraded settings: %+v", s)
	}
}

func TestAdminLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	added, err := svc.AddAdmin(ctx, "garson", "garson@example.com", "pw", "")
	if err != nil {
		t.Fatalf("AddAdmin: %v", err)
	}
	if added.Role != models.RoleAdmin || added.PasswordHash == "" {
		t.Fatalf("unexpected account: %+v", added)
	}

	if _, err := svc.AddAdmin(ctx, "garson", "", "pw", models.RoleAdmin); err == nil {
		t.Fatal("expected duplicate username to be rejected")
	}
	if _, err := svc.AddAdmin(ctx, "boss", "", "", models.RoleAdmin); err == nil {
		t.Fatal("expected empty password to be rejected")
	}

	admins, _ := svc.Admins(ctx)
	if len(admins) != 2 {
		t.Fatalf("expected seed + new admin, got %d", len(admins))
	}

	if err := svc.DeleteAdmin(ctx, admins[0].ID); !errors.Is(err, ErrProtectedAdmin) {
		t.Fatalf("deleting bootstrap admin: err = %v", err)
	}
	if err := svc.DeleteAdmin(ctx, added.ID); err != nil {
		t.Fatalf("DeleteAdmin: %v", err)
	}
	if err := svc.DeleteAdmin(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLegacyPasswordsAreUpgraded(t *testing.T) {
	ctx := context.Background()
	svc, local := newTestService(t)

	legacy := `[{"id":"1","username":"admin","password":"admin","role":"super"}]`
	if err := local.Write(ctx, store.KeyAdmins, []byte(legacy)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	admins, err := svc.Admins(ctx)
	if err != nil {
		t.Fatalf("Admins: %v", err)
	}
	if admins[0].LegacyPassword != "" || !auth.CheckPassword(admins[0].PasswordHash, "admin") {
		t.Fatalf("legacy password not upgraded: %+v", admins[0])
	}

	raw, _ := local.Read(ctx, store.KeyAdmins)
	if string(raw) == legacy {
		t.Fatal("upgraded record was not written back")
	}
}
