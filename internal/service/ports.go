package service

import (
	"context"

	"github.com/tayaudrey222/yumstation/internal/models"
)

// Store-side ports. *store.Store satisfies all of them; tests substitute
// in-memory fakes.

type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	CompleteOrder(ctx context.Context, id string, confirmedTotal int64) (bool, error)
	CancelOrder(ctx context.Context, id string) (bool, error)
	CreateDeductionPlan(ctx context.Context, orderID string, steps []models.DeductionStep) ([]models.DeductionStep, error)
	GetDeductionPlan(ctx context.Context, orderID string) ([]models.DeductionStep, error)
	MarkStepApplied(ctx context.Context, stepID int64) error
}

type InventoryStore interface {
	GetInventoryByID(ctx context.Context, id string) (*models.InventoryRecord, error)
	GetInventoryByMenuItem(ctx context.Context, menuItemID string) (*models.InventoryRecord, error)
	ListInventory(ctx context.Context) ([]models.InventoryRecord, error)
	SaveInventory(ctx context.Context, rec *models.InventoryRecord) error
	DeleteInventory(ctx context.Context, id string) error
	DeductStock(ctx context.Context, menuItemOrInventoryID string, qty int) (*models.InventoryRecord, error)
	RestockStock(ctx context.Context, id string, qty int) (*models.InventoryRecord, error)
	LowStock(ctx context.Context) ([]models.InventoryRecord, error)
}

type CatalogStore interface {
	GetMenuItems(ctx context.Context) ([]models.MenuItem, error)
	GetMenuItemByID(ctx context.Context, id string) (*models.MenuItem, error)
	SaveMenuItem(ctx context.Context, item *models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id string) error
	GetCategories(ctx context.Context) ([]models.CategoryDefinition, error)
	SaveCategory(ctx context.Context, cat *models.CategoryDefinition) error
	DeleteCategory(ctx context.Context, id string) error
	SeedCatalog(ctx context.Context, items []models.MenuItem, cats []models.CategoryDefinition) (bool, error)
}

type AdminStore interface {
	GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetAdminByUID(ctx context.Context, uid string) (*models.AdminUser, error)
	ListAdmins(ctx context.Context) ([]models.AdminUser, error)
	CreateAdmin(ctx context.Context, admin *models.AdminUser) error
	UpdateAdminRole(ctx context.Context, uid, role string) error
}

type AuditStore interface {
	AppendAudit(ctx context.Context, entry *models.AuditEntry) error
	RecentAudit(ctx context.Context, limit int) ([]models.AuditEntry, error)
}

type StatsStore interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

// StockMirror is the Redis read-side mirror of inventory quantities.
// Services treat it as best-effort: mirror failures are logged, never
// propagated, since Postgres is authoritative.
type StockMirror interface {
	InitStock(ctx context.Context, rec models.InventoryRecord) error
	DeductStock(ctx context.Context, inventoryID string, qty int) (int, error)
	RestockStock(ctx context.Context, inventoryID string, qty int) error
	DropStock(ctx context.Context, inventoryID string) error
}

// MenuCache caches the storefront menu.
type MenuCache interface {
	GetMenu(ctx context.Context) ([]models.MenuItem, error)
	SetMenu(ctx context.Context, items []models.MenuItem) error
	InvalidateMenu(ctx context.Context) error
}

// EventPublisher publishes domain events; broker.EventPublisher satisfies it.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event *models.OrderCreatedEvent) error
	PublishOrderConfirmed(ctx context.Context, event *models.OrderConfirmedEvent) error
	PublishOrderCancelled(ctx context.Context, event *models.OrderCancelledEvent) error
	PublishStockLow(ctx context.Context, event *models.StockLowEvent) error
}
