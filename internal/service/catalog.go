package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tayaudrey222/yumstation/internal/authz"
	"github.com/tayaudrey222/yumstation/internal/models"
	"github.com/tayaudrey222/yumstation/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// slugPattern matches URL-safe category ids: lower-case, hyphenated.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CatalogService owns menu items and categories; read-mostly with a Redis
// cache in front of the menu, seeded with the default catalog when empty.
type CatalogService struct {
	catalog CatalogStore
	cache   MenuCache
	logger  *zap.Logger
}

func NewCatalogService(catalog CatalogStore, cache MenuCache) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		cache:   cache,
		logger:  util.GetLogger(),
	}
}

// SeedIfEmpty loads the default catalog into an empty deployment
func (s *CatalogService) SeedIfEmpty(ctx context.Context) error {
	seeded, err := s.catalog.SeedCatalog(ctx, models.SeedMenuItems, models.SeedCategories)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	if seeded {
		s.logger.Info("Catalog was empty, seeded defaults",
			zap.Int("items", len(models.SeedMenuItems)),
			zap.Int("categories", len(models.SeedCategories)))
	}
	return nil
}

// Menu returns the full menu, served from cache when warm
func (s *CatalogService) Menu(ctx context.Context) ([]models.MenuItem, error) {
	if s.cache != nil {
		if items, err := s.cache.GetMenu(ctx); err == nil {
			util.MenuCacheHits.WithLabelValues("hit").Inc()
			return items, nil
		}
		util.MenuCacheHits.WithLabelValues("miss").Inc()
	}

	items, err := s.catalog.GetMenuItems(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, items); err != nil {
			s.logger.Warn("Failed to warm menu cache", zap.Error(err))
		}
	}
	return items, nil
}

// MenuItem retrieves one item
func (s *CatalogService) MenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.catalog.GetMenuItemByID(ctx, id)
}

// SaveMenuItem upserts an item, assigning an id when absent
func (s *CatalogService) SaveMenuItem(ctx context.Context, actor models.Identity, item *models.MenuItem) error {
	if err := authz.Require(actor.Role, authz.ActionMenuEdit); err != nil {
		return err
	}
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("menu item name is required: %w", models.ErrValidation)
	}
	if item.Category == "" {
		return fmt.Errorf("menu item category is required: %w", models.ErrValidation)
	}
	if !item.Price.OnRequest && item.Price.Amount < 0 {
		return fmt.Errorf("price must not be negative: %w", models.ErrValidation)
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	if err := s.catalog.SaveMenuItem(ctx, item); err != nil {
		return fmt.Errorf("failed to save menu item: %w", err)
	}
	s.invalidateMenu(ctx)
	return nil
}

// ToggleAvailability flips an item's availability flag
func (s *CatalogService) ToggleAvailability(ctx context.Context, actor models.Identity, id string) (*models.MenuItem, error) {
	if err := authz.Require(actor.Role, authz.ActionMenuToggle); err != nil {
		return nil, err
	}

	item, err := s.catalog.GetMenuItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.IsAvailable = !item.IsAvailable

	if err := s.catalog.SaveMenuItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save menu item: %w", err)
	}
	s.invalidateMenu(ctx)
	return item, nil
}

// DeleteMenuItem removes an item
func (s *CatalogService) DeleteMenuItem(ctx context.Context, actor models.Identity, id string) error {
	if err := authz.Require(actor.Role, authz.ActionMenuDelete); err != nil {
		return err
	}
	if err := s.catalog.DeleteMenuItem(ctx, id); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

// Categories returns all categories in display order
func (s *CatalogService) Categories(ctx context.Context) ([]models.CategoryDefinition, error) {
	return s.catalog.GetCategories(ctx)
}

// SaveCategory upserts a category definition
func (s *CatalogService) SaveCategory(ctx context.Context, actor models.Identity, cat *models.CategoryDefinition) error {
	if err := authz.Require(actor.Role, authz.ActionCategoryEdit); err != nil {
		return err
	}
	if !slugPattern.MatchString(cat.ID) {
		return fmt.Errorf("category id %q is not a url-safe slug: %w", cat.ID, models.ErrValidation)
	}
	if strings.TrimSpace(cat.Title) == "" {
		return fmt.Errorf("category title is required: %w", models.ErrValidation)
	}
	if !validColorTheme(cat.ColorTheme) {
		return fmt.Errorf("unknown color theme %q: %w", cat.ColorTheme, models.ErrValidation)
	}

	if err := s.catalog.SaveCategory(ctx, cat); err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}

// DeleteCategory removes a category; its items keep their tag and simply
// stop rendering under a section
func (s *CatalogService) DeleteCategory(ctx context.Context, actor models.Identity, id string) error {
	if err := authz.Require(actor.Role, authz.ActionCategoryDelete); err != nil {
		return err
	}
	return s.catalog.DeleteCategory(ctx, id)
}

func (s *CatalogService) invalidateMenu(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateMenu(ctx); err != nil {
		s.logger.Warn("Failed to invalidate menu cache", zap.Error(err))
	}
}

func validColorTheme(theme string) bool {
	for _, t := range models.ColorThemes {
		if t == theme {
			return true
		}
	}
	return false
}
