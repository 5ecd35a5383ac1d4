package models

import "time"

// MenuItem represents a dish on the storefront menu
type MenuItem struct {
	ID           string `db:"id" json:"id"`
	Category     string `db:"category" json:"category"`
	Name         string `db:"name" json:"name"`
	Price        Price  `db:"-" json:"price"`
	Description  string `db:"description" json:"description,omitempty"`
	IsAvailable  bool   `db:"is_available" json:"isAvailable"`
	IsComingSoon bool   `db:"is_coming_soon" json:"isComingSoon,omitempty"`
}

// Purchasable reports whether the item can be added to a cart.
// On-request prices and unavailable items are display-only.
func (m MenuItem) Purchasable() bool {
	return m.IsAvailable && !m.Price.OnRequest
}

// CategoryDefinition represents a menu section
type CategoryDefinition struct {
	ID         string `db:"id" json:"id"`
	Title      string `db:"title" json:"title"`
	Icon       string `db:"icon" json:"icon"`
	ColorTheme string `db:"color_theme" json:"colorTheme"`
	SortOrder  int    `db:"sort_order" json:"order"`
}

// Category colour themes
var ColorThemes = []string{"orange", "yellow", "red", "green", "blue", "purple", "stone", "brown"}

// CartLine is a menu item snapshot plus a quantity
type CartLine struct {
	Item MenuItem `json:"item"`
	Qty  int      `json:"qty"`
}

// Subtotal returns price x qty, treating on-request prices as zero.
func (l CartLine) Subtotal() int64 {
	if l.Item.Price.OnRequest {
		return 0
	}
	return l.Item.Price.Amount * int64(l.Qty)
}

// Order types
const (
	OrderTypeDelivery = "delivery"
	OrderTypePickup   = "pickup"
)

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order represents a customer order snapshot. Items and total are fixed at
// creation; later catalog price changes never alter historical orders.
type Order struct {
	ID             string     `db:"id" json:"id"`
	CustomerName   string     `db:"customer_name" json:"customerName"`
	Phone          string     `db:"phone" json:"phone"`
	Address        string     `db:"address" json:"address,omitempty"`
	OrderType      string     `db:"order_type" json:"orderType"`
	Items          []OrderItem `db:"-" json:"items"`
	TotalAmount    int64      `db:"total_amount" json:"totalAmount"`
	Status         string     `db:"status" json:"status"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	ConfirmedAt    *time.Time `db:"confirmed_at" json:"confirmedAt,omitempty"`
	ConfirmedTotal *int64     `db:"confirmed_total" json:"confirmedTotal,omitempty"`
}

// OrderItem is a persisted order line: the cart snapshot at checkout time
type OrderItem struct {
	ID         int64  `db:"id" json:"id"`
	OrderID    string `db:"order_id" json:"order_id"`
	MenuItemID string `db:"menu_item_id" json:"menu_item_id"`
	Name       string `db:"name" json:"name"`
	Quantity   int    `db:"quantity" json:"quantity"`
	UnitPrice  int64  `db:"unit_price" json:"unit_price"`
}

// InventoryRecord is a per-item stock row. MenuItemID links it to a catalog
// item; free-standing kitchen ingredients leave it empty.
type InventoryRecord struct {
	ID               string     `db:"id" json:"id"`
	Name             string     `db:"name" json:"name"`
	MenuItemID       string     `db:"menu_item_id" json:"menuItemId,omitempty"`
	Quantity         int        `db:"quantity" json:"quantity"`
	Unit             string     `db:"unit" json:"unit"`
	ReorderThreshold int        `db:"reorder_threshold" json:"reorderThreshold"`
	LastRestocked    *time.Time `db:"last_restocked" json:"lastRestocked,omitempty"`
}

// LowStock reports whether the record is at or below its reorder threshold.
func (r InventoryRecord) LowStock() bool {
	return r.Quantity <= r.ReorderThreshold
}

// DeductionStep is one persisted step of an order's stock deduction plan.
// The plan is written before any stock mutation so a partially applied
// confirmation is resumable instead of indistinguishable from plain pending.
type DeductionStep struct {
	ID         int64  `db:"id" json:"id"`
	OrderID    string `db:"order_id" json:"order_id"`
	MenuItemID string `db:"menu_item_id" json:"menu_item_id"`
	Quantity   int    `db:"quantity" json:"quantity"`
	Applied    bool   `db:"applied" json:"applied"`
}

// Admin roles
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// AdminUser maps an authenticated identity to a role
type AdminUser struct {
	UID          string    `db:"uid" json:"id"`
	Email        string    `db:"email" json:"email"`
	Role         string    `db:"role" json:"role"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// Identity is the authenticated principal the core consumes. Credentials
// never cross this boundary.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Audit entry types
const (
	AuditAdminCreated   = "admin_created"
	AuditRoleChanged    = "role_changed"
	AuditOrderConfirmed = "order_confirmed"
	AuditOther          = "other"
)

// AuditEntry is an append-only record of a privileged action
type AuditEntry struct {
	ID          string    `db:"id" json:"id"`
	Type        string    `db:"type" json:"type"`
	ActorID     string    `db:"actor_id" json:"actorId,omitempty"`
	ActorEmail  string    `db:"actor_email" json:"actorEmail,omitempty"`
	TargetID    string    `db:"target_id" json:"targetId,omitempty"`
	TargetEmail string    `db:"target_email" json:"targetEmail,omitempty"`
	Details     string    `db:"details" json:"details,omitempty"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
}

// DashboardStats summarizes the admin dashboard counters. Revenue sums only
// completed orders so cancelled claims never inflate it.
type DashboardStats struct {
	TotalItems      int   `json:"totalItems"`
	TotalCategories int   `json:"totalCategories"`
	TotalOrders     int   `json:"totalOrders"`
	Revenue         int64 `json:"revenue"`
	LowStockCount   int   `json:"lowStockCount"`
}
