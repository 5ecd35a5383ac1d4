package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tayaudrey222/yumstation/internal/models"
)

// GetInventoryByID retrieves a stock record
func (s *Store) GetInventoryByID(ctx context.Context, id string) (*models.InventoryRecord, error) {
	var rec models.InventoryRecord
	err := s.db.GetContext(ctx, &rec, "SELECT * FROM inventory WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("inventory %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetInventoryByMenuItem retrieves the record linked to a menu item, or nil
// when the item is not inventory-tracked
func (s *Store) GetInventoryByMenuItem(ctx context.Context, menuItemID string) (*models.InventoryRecord, error) {
	var rec models.InventoryRecord
	err := s.db.GetContext(ctx, &rec, "SELECT * FROM inventory WHERE menu_item_id = $1", menuItemID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListInventory retrieves all stock records
func (s *Store) ListInventory(ctx context.Context) ([]models.InventoryRecord, error) {
	var recs []models.InventoryRecord
	err := s.db.SelectContext(ctx, &recs, "SELECT * FROM inventory ORDER BY name")
	return recs, err
}

// SaveInventory upserts a stock record
func (s *Store) SaveInventory(ctx context.Context, rec *models.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, name, menu_item_id, quantity, unit, reorder_threshold, last_restocked)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			menu_item_id = EXCLUDED.menu_item_id,
			quantity = EXCLUDED.quantity,
			unit = EXCLUDED.unit,
			reorder_threshold = EXCLUDED.reorder_threshold`

	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.Name, rec.MenuItemID, rec.Quantity, rec.Unit,
		rec.ReorderThreshold, rec.LastRestocked)
	return err
}

// DeleteInventory removes a stock record
func (s *Store) DeleteInventory(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM inventory WHERE id = $1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("inventory %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// DeductStock atomically subtracts qty from the matching record, clamping at
// zero. Lookup tries the menu-item linkage first, then the record id. A miss
// on both is a no-op (nil record, no error): not every dish is tracked.
func (s *Store) DeductStock(ctx context.Context, menuItemOrInventoryID string, qty int) (*models.InventoryRecord, error) {
	var rec models.InventoryRecord
	err := s.db.GetContext(ctx, &rec,
		`UPDATE inventory SET quantity = GREATEST(0, quantity - $1)
		 WHERE menu_item_id = $2 AND menu_item_id <> ''
		 RETURNING *`,
		qty, menuItemOrInventoryID)
	if err == nil {
		return &rec, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to deduct stock: %w", err)
	}

	err = s.db.GetContext(ctx, &rec,
		`UPDATE inventory SET quantity = GREATEST(0, quantity - $1)
		 WHERE id = $2
		 RETURNING *`,
		qty, menuItemOrInventoryID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to deduct stock: %w", err)
	}
	return &rec, nil
}

// RestockStock atomically adds qty and stamps last_restocked
func (s *Store) RestockStock(ctx context.Context, id string, qty int) (*models.InventoryRecord, error) {
	var rec models.InventoryRecord
	err := s.db.GetContext(ctx, &rec,
		`UPDATE inventory SET quantity = quantity + $1, last_restocked = NOW()
		 WHERE id = $2
		 RETURNING *`,
		qty, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("inventory %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to restock: %w", err)
	}
	return &rec, nil
}

// LowStock retrieves every record at or below its reorder threshold
func (s *Store) LowStock(ctx context.Context) ([]models.InventoryRecord, error) {
	var recs []models.InventoryRecord
	err := s.db.SelectContext(ctx, &recs,
		"SELECT * FROM inventory WHERE quantity <= reorder_threshold ORDER BY name")
	return recs, err
}
