// Package content owns the four site collections: menu items, categories,
// the settings singleton and admin accounts. It reads them through a
// store.Store, falls back to built-in defaults when nothing is stored, and
// validates every record before it is written.
package content

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"restaurant-site/auth"
	"restaurant-site/models"
	"restaurant-site/store"
	"restaurant-site/validation"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrProtectedAdmin = errors.New("the bootstrap admin account cannot be deleted")
)

// Options configures the bootstrap admin account used when no accounts are stored.
type Options struct {
	SeedUsername string
	SeedPassword string
}

// Service is the single owner of site content. Mutations are serialised by
// a mutex; concurrent edits from separate sessions are still last-write-wins.
type Service struct {
	store store.Store
	opts  Options

	mu       sync.Mutex
	seedOnce sync.Once
	seed     models.AdminUser
	seedErr  error
}

func New(st store.Store, opts Options) *Service {
	if opts.SeedUsername == "" {
		opts.SeedUsername = "admin"
	}
	if opts.SeedPassword == "" {
		opts.SeedPassword = "admin"
	}
	return &Service{store: st, opts: opts}
}

// Snapshot is every collection as loaded at one point in time.
type Snapshot struct {
	MenuItems  []models.MenuItem
	Categories []models.Category
	Settings   models.SiteSettings
	Admins     []models.AdminUser
}

// Load reads all four collections.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	var err error
	if snap.MenuItems, err = s.MenuItems(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Categories, err = s.Categories(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Settings, err = s.Settings(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Admins, err = s.Admins(ctx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// readCollection decodes an array collection, returning fallback() when the
// store holds nothing under key. A stored empty array stays empty.
func readCollection[T any](ctx context.Context, st store.Store, key store.Key, fallback func() []T) ([]T, error) {
	payload, err := st.Read(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return fallback(), nil
	}
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func writeCollection(ctx context.Context, st store.Store, key store.Key, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return st.Write(ctx, key, payload)
}

// ── Menu items ───────────────────────────────────────────────────────────────

func (s *Service) MenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return readCollection(ctx, s.store, store.KeyMenu, SeedMenuItems)
}

func (s *Service) SaveMenuItems(ctx context.Context, items []models.MenuItem) error {
	if items == nil {
		items = []models.MenuItem{}
	}
	if err := validation.MenuItems(items); err != nil {
		return err
	}
	return writeCollection(ctx, s.store, store.KeyMenu, items)
}

// UpsertMenuItem replaces the item with the same id in place, or appends it
// when the id is empty or unknown. Empty ids get a fresh uuid.
func (s *Service) UpsertMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.MenuItems(ctx)
	if err != nil {
		return models.MenuItem{}, err
	}
	items, item = upsert(items, item, func(m models.MenuItem) string { return m.ID }, func(m *models.MenuItem, id string) { m.ID = id })
	if err := s.SaveMenuItems(ctx, items); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

func (s *Service) DeleteMenuItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.MenuItems(ctx)
	if err != nil {
		return err
	}
	i := indexOf(items, func(m models.MenuItem) bool { return m.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	return s.SaveMenuItems(ctx, append(items[:i], items[i+1:]...))
}

// ── Categories ───────────────────────────────────────────────────────────────

func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return readCollection(ctx, s.store, store.KeyCategories, SeedCategories)
}

func (s *Service) SaveCategories(ctx context.Context, categories []models.Category) error {
	if categories == nil {
		categories = []models.Category{}
	}
	if err := validation.Categories(categories); err != nil {
		return err
	}
	return writeCollection(ctx, s.store, store.KeyCategories, categories)
}

// UpsertCategory renames or re-icons a category, or appends a new one. Menu
// items pointing at an old name are left untouched.
func (s *Service) UpsertCategory(ctx context.Context, c models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := s.Categories(ctx)
	if err != nil {
		return models.Category{}, err
	}
	categories, c = upsert(categories, c, func(x models.Category) string { return x.ID }, func(x *models.Category, id string) { x.ID = id })
	if err := s.SaveCategories(ctx, categories); err != nil {
		return models.Category{}, err
	}
	return c, nil
}

// DeleteCategory does not cascade to menu items.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := s.Categories(ctx)
	if err != nil {
		return err
	}
	i := indexOf(categories, func(x models.Category) bool { return x.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	return s.SaveCategories(ctx, append(categories[:i], categories[i+1:]...))
}

// ── Settings ─────────────────────────────────────────────────────────────────

func (s *Service) Settings(ctx context.Context) (models.SiteSettings, error) {
	payload, err := s.store.Read(ctx, store.KeySettings)
	if errors.Is(err, store.ErrNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.SiteSettings{}, err
	}
	settings, err := models.DecodeSettings(payload)
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("decode %s: %w", store.KeySettings, err)
	}
	return settings, nil
}

func (s *Service) SaveSettings(ctx context.Context, settings models.SiteSettings) error {
	settings.SchemaVersion = models.SettingsSchemaVersion
	if settings.Testimonials == nil {
		settings.Testimonials = []models.Testimonial{}
	}
	if settings.GalleryImages == nil {
		settings.GalleryImages = []string{}
	}
	if settings.AboutQualities == nil {
		settings.AboutQualities = []string{}
	}
	if err := validation.Settings(settings); err != nil {
		return err
	}
	return writeCollection(ctx, s.store, store.KeySettings, settings)
}

// UpdateSettings applies fn to the current settings and saves the result.
// Nothing is written when fn returns an error.
func (s *Service) UpdateSettings(ctx context.Context, fn func(*models.SiteSettings) error) (models.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.Settings(ctx)
	if err != nil {
		return models.SiteSettings{}, err
	}
	if err := fn(&settings); err != nil {
		return models.SiteSettings{}, err
	}
	if err := s.SaveSettings(ctx, settings); err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}

// ── Admins ───────────────────────────────────────────────────────────────────

// Admins returns the stored accounts, or the bootstrap account when none are
// stored. Records still carrying a plaintext password are hashed and written
// back.
func (s *Service) Admins(ctx context.Context) ([]models.AdminUser, error) {
	admins, err := readCollection(ctx, s.store, store.KeyAdmins, func() []models.AdminUser { return nil })
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		seed, err := s.seedAdmin()
		if err != nil {
			return nil, err
		}
		return []models.AdminUser{seed}, nil
	}

	upgraded := false
	for i := range admins {
		if admins[i].LegacyPassword == "" {
			continue
		}
		if admins[i].PasswordHash == "" {
			hash, err := auth.HashPassword(admins[i].LegacyPassword)
			if err != nil {
				return nil, err
			}
			admins[i].PasswordHash = hash
		}
		admins[i].LegacyPassword = ""
		upgraded = true
	}
	if upgraded {
		if err := s.SaveAdmins(ctx, admins); err != nil {
			log.Printf("⚠️ could not persist upgraded admin credentials: %v", err)
		}
	}
	return admins, nil
}

func (s *Service) SaveAdmins(ctx context.Context, admins []models.AdminUser) error {
	if admins == nil {
		admins = []models.AdminUser{}
	}
	if err := validation.Admins(admins); err != nil {
		return err
	}
	return writeCollection(ctx, s.store, store.KeyAdmins, admins)
}

// AddAdmin hashes the password and appends a new account.
func (s *Service) AddAdmin(ctx context.Context, username, email, password string, role models.AdminRole) (models.AdminUser, error) {
	if password == "" {
		return models.AdminUser{}, &validation.Error{Fields: []validation.FieldError{{Field: "password", Message: "is required"}}}
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.AdminUser{}, err
	}
	if role == "" {
		role = models.RoleAdmin
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	admins, err := s.Admins(ctx)
	if err != nil {
		return models.AdminUser{}, err
	}
	user := models.AdminUser{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.SaveAdmins(ctx, append(admins, user)); err != nil {
		return models.AdminUser{}, err
	}
	return user, nil
}

// DeleteAdmin removes an account. The bootstrap username is protected.
func (s *Service) DeleteAdmin(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	admins, err := s.Admins(ctx)
	if err != nil {
		return err
	}
	i := indexOf(admins, func(a models.AdminUser) bool { return a.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	if admins[i].Username == s.opts.SeedUsername {
		return ErrProtectedAdmin
	}
	return s.SaveAdmins(ctx, append(admins[:i], admins[i+1:]...))
}

func (s *Service) seedAdmin() (models.AdminUser, error) {
	s.seedOnce.Do(func() {
		hash, err := auth.HashPassword(s.opts.SeedPassword)
		if err != nil {
			s.seedErr = err
			return
		}
		s.seed = models.AdminUser{
			ID:           "1",
			Username:     s.opts.SeedUsername,
			Email:        "admin@admin.com",
			PasswordHash: hash,
			Role:         models.RoleSuper,
		}
	})
	return s.seed, s.seedErr
}

func upsert[T any](list []T, v T, idOf func(T) string, setID func(*T, string)) ([]T, T) {
	id := idOf(v)
	if id == "" {
		setID(&v, uuid.NewString())
		return append(list, v), v
	}
	if i := indexOf(list, func(x T) bool { return idOf(x) == id }); i >= 0 {
		list[i] = v
		return list, v
	}
	return append(list, v), v
}

func indexOf[T any](list []T, match func(T) bool) int {
	for i, v := range list {
		if match(v) {
			return i
		}
	}
	return -1
}
