package models

import "time"

// Event types
const (
	EventTypeOrderCreated   = "ORDER_CREATED"
	EventTypeOrderConfirmed = "ORDER_CONFIRMED"
	EventTypeOrderCancelled = "ORDER_CANCELLED"
	EventTypeStockLow       = "STOCK_LOW"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderItemData represents item data in events
type OrderItemData struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
}

// OrderCreatedEvent published when a checkout lands an order
type OrderCreatedEvent struct {
	BaseEvent
	OrderID      string          `json:"order_id"`
	Reference    string          `json:"reference"`
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address,omitempty"`
	OrderType    string          `json:"order_type"`
	TotalAmount  int64           `json:"total_amount"`
	Items        []OrderItemData `json:"items"`
}

// OrderConfirmedEvent published when an admin confirms an order
type OrderConfirmedEvent struct {
	BaseEvent
	OrderID        string `json:"order_id"`
	ActorID        string `json:"actor_id"`
	ConfirmedTotal int64  `json:"confirmed_total"`
}

// OrderCancelledEvent published when a super admin cancels an order
type OrderCancelledEvent struct {
	BaseEvent
	OrderID string `json:"order_id"`
	ActorID string `json:"actor_id"`
}

// StockLowEvent published when a deduction leaves a record at or below its
// reorder threshold
type StockLowEvent struct {
	BaseEvent
	InventoryID      string `json:"inventory_id"`
	Name             string `json:"name"`
	Quantity         int    `json:"quantity"`
	ReorderThreshold int    `json:"reorder_threshold"`
}
