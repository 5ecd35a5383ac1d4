package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tayaudrey222/yumstation/internal/authz"
	"github.com/tayaudrey222/yumstation/internal/models"
	"github.com/tayaudrey222/yumstation/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryService owns stock quantities: CRUD for the ledger, the deduct
// and restock read-modify-writes, and the low-stock view. It keeps the Redis
// mirror in step, best-effort.
type InventoryService struct {
	inventory InventoryStore
	mirror    StockMirror
	events    EventPublisher
	logger    *zap.Logger
}

func NewInventoryService(inventory InventoryStore, mirror StockMirror, events EventPublisher) *InventoryService {
	return &InventoryService{
		inventory: inventory,
		mirror:    mirror,
		events:    events,
		logger:    util.GetLogger(),
	}
}

// Get retrieves one record
func (s *InventoryService) Get(ctx context.Context, id string) (*models.InventoryRecord, error) {
	return s.inventory.GetInventoryByID(ctx, id)
}

// List retrieves all records
func (s *InventoryService) List(ctx context.Context) ([]models.InventoryRecord, error) {
	return s.inventory.ListInventory(ctx)
}

// ByMenuItem retrieves the record linked to a menu item, nil when untracked
func (s *InventoryService) ByMenuItem(ctx context.Context, menuItemID string) (*models.InventoryRecord, error) {
	return s.inventory.GetInventoryByMenuItem(ctx, menuItemID)
}

// Save upserts a record, assigning an id when absent
func (s *InventoryService) Save(ctx context.Context, actor models.Identity, rec *models.InventoryRecord) error {
	if err := authz.Require(actor.Role, authz.ActionInventoryEdit); err != nil {
		return err
	}
	if rec.Name == "" {
		return fmt.Errorf("inventory name is required: %w", models.ErrValidation)
	}
	if rec.Quantity < 0 {
		return fmt.Errorf("quantity must not be negative: %w", models.ErrValidation)
	}
	if rec.ReorderThreshold < 1 {
		return fmt.Errorf("reorder threshold must be at least 1: %w", models.ErrValidation)
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	if err := s.inventory.SaveInventory(ctx, rec); err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}
	s.mirrorInit(ctx, *rec)
	return nil
}

// Delete removes a record
func (s *InventoryService) Delete(ctx context.Context, actor models.Identity, id string) error {
	if err := authz.Require(actor.Role, authz.ActionInventoryDelete); err != nil {
		return err
	}
	if err := s.inventory.DeleteInventory(ctx, id); err != nil {
		return err
	}
	if s.mirror != nil {
		if err := s.mirror.DropStock(ctx, id); err != nil {
			s.logger.Warn("Failed to drop stock mirror", zap.String("inventory_id", id), zap.Error(err))
		}
	}
	return nil
}

// Deduct subtracts qty from the record matching a menu item link or a direct
// inventory id, clamping at zero. A record that is not tracked is a no-op.
// Crossing the reorder threshold publishes a low-stock event.
func (s *InventoryService) Deduct(ctx context.Context, menuItemOrInventoryID string, qty int) error {
	ctx, span := util.StartSpan(ctx, "InventoryService.Deduct")
	defer span.End()

	rec, err := s.inventory.DeductStock(ctx, menuItemOrInventoryID, qty)
	if err != nil {
		return err
	}
	if rec == nil {
		return nil
	}

	util.StockDeductionsTotal.Inc()

	if s.mirror != nil {
		if _, err := s.mirror.DeductStock(ctx, rec.ID, qty); err != nil {
			s.logger.Warn("Failed to mirror deduction",
				zap.String("inventory_id", rec.ID), zap.Error(err))
		}
	}

	if rec.LowStock() {
		util.StockLowTotal.Inc()
		s.publishStockLow(ctx, *rec)
	}
	return nil
}

// Restock adds qty and stamps the restock time
func (s *InventoryService) Restock(ctx context.Context, actor models.Identity, id string, qty int) (*models.InventoryRecord, error) {
	if err := authz.Require(actor.Role, authz.ActionInventoryRestock); err != nil {
		return nil, err
	}
	if qty <= 0 {
		return nil, fmt.Errorf("restock quantity must be positive: %w", models.ErrValidation)
	}

	rec, err := s.inventory.RestockStock(ctx, id, qty)
	if err != nil {
		return nil, err
	}

	if s.mirror != nil {
		if err := s.mirror.RestockStock(ctx, rec.ID, qty); err != nil {
			s.logger.Warn("Failed to mirror restock",
				zap.String("inventory_id", rec.ID), zap.Error(err))
		}
	}

	s.logger.Info("Inventory restocked",
		zap.String("inventory_id", id),
		zap.String("actor", actor.UID),
		zap.Int("added", qty),
		zap.Int("quantity", rec.Quantity))
	return rec, nil
}

// LowStock returns every record at or below its reorder threshold
func (s *InventoryService) LowStock(ctx context.Context) ([]models.InventoryRecord, error) {
	return s.inventory.LowStock(ctx)
}

// SyncToMirror rebuilds the Redis quantities from the store, run at startup
func (s *InventoryService) SyncToMirror(ctx context.Context) error {
	if s.mirror == nil {
		return nil
	}

	recs, err := s.inventory.ListInventory(ctx)
	if err != nil {
		return fmt.Errorf("failed to list inventory: %w", err)
	}
	for _, rec := range recs {
		if err := s.mirror.InitStock(ctx, rec); err != nil {
			s.logger.Error("Failed to init stock mirror",
				zap.String("inventory_id", rec.ID), zap.Error(err))
		}
	}
	s.logger.Info("Stock mirror synced", zap.Int("count", len(recs)))
	return nil
}

func (s *InventoryService) mirrorInit(ctx context.Context, rec models.InventoryRecord) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.InitStock(ctx, rec); err != nil {
		s.logger.Warn("Failed to mirror inventory record",
			zap.String("inventory_id", rec.ID), zap.Error(err))
	}
}

func (s *InventoryService) publishStockLow(ctx context.Context, rec models.InventoryRecord) {
	if s.events == nil {
		return
	}
	event := &models.StockLowEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeStockLow,
			Timestamp: time.Now(),
		},
		InventoryID:      rec.ID,
		Name:             rec.Name,
		Quantity:         rec.Quantity,
		ReorderThreshold: rec.ReorderThreshold,
	}
	if err := s.events.PublishStockLow(ctx, event); err != nil {
		s.logger.Error("Failed to publish StockLow event", zap.Error(err))
	}
}
