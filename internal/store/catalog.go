package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tayaudrey222/yumstation/internal/models"
)

// menuItemRow maps the menu_items table; the tagged Price variant is split
// across two columns.
type menuItemRow struct {
	ID             string `db:"id"`
	Category       string `db:"category"`
	Name           string `db:"name"`
	PriceAmount    int64  `db:"price_amount"`
	PriceOnRequest bool   `db:"price_on_request"`
	Description    string `db:"description"`
	IsAvailable    bool   `db:"is_available"`
	IsComingSoon   bool   `db:"is_coming_soon"`
}

func (r menuItemRow) toModel() models.MenuItem {
	return models.MenuItem{
		ID:           r.ID,
		Category:     r.Category,
		Name:         r.Name,
		Price:        models.Price{Amount: r.PriceAmount, OnRequest: r.PriceOnRequest},
		Description:  r.Description,
		IsAvailable:  r.IsAvailable,
		IsComingSoon: r.IsComingSoon,
	}
}

// GetMenuItems retrieves the full menu
func (s *Store) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var rows []menuItemRow
	if err := s.db.SelectContext(ctx, &rows, "SELECT * FROM menu_items ORDER BY id"); err != nil {
		return nil, err
	}

	items := make([]models.MenuItem, len(rows))
	for i, r := range rows {
		items[i] = r.toModel()
	}
	return items, nil
}

// GetMenuItemByID retrieves a single menu item
func (s *Store) GetMenuItemByID(ctx context.Context, id string) (*models.MenuItem, error) {
	var row menuItemRow
	err := s.db.GetContext(ctx, &row, "SELECT * FROM menu_items WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("menu item %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	item := row.toModel()
	return &item, nil
}

// SaveMenuItem upserts a menu item
func (s *Store) SaveMenuItem(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, category, name, price_amount, price_on_request, description, is_available, is_coming_soon)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			category = EXCLUDED.category,
			name = EXCLUDED.name,
			price_amount = EXCLUDED.price_amount,
			price_on_request = EXCLUDED.price_on_request,
			description = EXCLUDED.description,
			is_available = EXCLUDED.is_available,
			is_coming_soon = EXCLUDED.is_coming_soon`

	_, err := s.db.ExecContext(ctx, query,
		item.ID, item.Category, item.Name, item.Price.Amount, item.Price.OnRequest,
		item.Description, item.IsAvailable, item.IsComingSoon)
	return err
}

// DeleteMenuItem removes a menu item
func (s *Store) DeleteMenuItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("menu item %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// GetCategories retrieves all categories in display order
func (s *Store) GetCategories(ctx context.Context) ([]models.CategoryDefinition, error) {
	var cats []models.CategoryDefinition
	err := s.db.SelectContext(ctx, &cats, "SELECT * FROM categories ORDER BY sort_order, id")
	return cats, err
}

// SaveCategory upserts a category definition
func (s *Store) SaveCategory(ctx context.Context, cat *models.CategoryDefinition) error {
	query := `
		INSERT INTO categories (id, title, icon, color_theme, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			icon = EXCLUDED.icon,
			color_theme = EXCLUDED.color_theme,
			sort_order = EXCLUDED.sort_order`

	_, err := s.db.ExecContext(ctx, query, cat.ID, cat.Title, cat.Icon, cat.ColorTheme, cat.SortOrder)
	return err
}

// DeleteCategory removes a category; items keep their category tag
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("category %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// SeedCatalog inserts the default menu and categories in one transaction.
// Returns true when seeding ran, false when the catalog already had rows.
func (s *Store) SeedCatalog(ctx context.Context, items []models.MenuItem, cats []models.CategoryDefinition) (bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM menu_items"); err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, cat := range cats {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO categories (id, title, icon, color_theme, sort_order) VALUES ($1, $2, $3, $4, $5)",
			cat.ID, cat.Title, cat.Icon, cat.ColorTheme, cat.SortOrder)
		if err != nil {
			return false, fmt.Errorf("failed to seed category %s: %w", cat.ID, err)
		}
	}

	for _, item := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO menu_items (id, category, name, price_amount, price_on_request, description, is_available, is_coming_soon)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.ID, item.Category, item.Name, item.Price.Amount, item.Price.OnRequest,
			item.Description, item.IsAvailable, item.IsComingSoon)
		if err != nil {
			return false, fmt.Errorf("failed to seed menu item %s: %w", item.ID, err)
		}
	}

	return true, tx.Commit()
}
