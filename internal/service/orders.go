package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tayaudrey222/yumstation/internal/cart"
	"github.com/tayaudrey222/yumstation/internal/messaging"
	"github.com/tayaudrey222/yumstation/internal/models"
	"github.com/tayaudrey222/yumstation/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService handles checkout and order history
type OrderService struct {
	orders   OrderStore
	events   EventPublisher
	whatsapp *messaging.WhatsApp
	logger   *zap.Logger
}

func NewOrderService(orders OrderStore, events EventPublisher, whatsapp *messaging.WhatsApp) *OrderService {
	return &OrderService{
		orders:   orders,
		events:   events,
		whatsapp: whatsapp,
		logger:   util.GetLogger(),
	}
}

// CheckoutRequest is a customer's cart plus contact details
type CheckoutRequest struct {
	CustomerName string            `json:"customerName"`
	Phone        string            `json:"phone"`
	Address      string            `json:"address"`
	OrderType    string            `json:"orderType"`
	Lines        []models.CartLine `json:"lines"`
}

// CheckoutResult carries the persisted order, the display-only reference and
// the prepared WhatsApp hand-off link
type CheckoutResult struct {
	Order        *models.Order `json:"order"`
	Reference    string        `json:"reference"`
	WhatsAppLink string        `json:"whatsappLink"`
}

// Checkout validates the draft, persists the order as pending with the cart
// snapshot, and prepares the messaging hand-off. The total is fixed here and
// never recomputed from catalog state.
func (s *OrderService) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.Checkout")
	defer span.End()

	if err := validateCheckout(req); err != nil {
		util.OrdersRejectedTotal.WithLabelValues("validation").Inc()
		return nil, err
	}

	address := strings.TrimSpace(req.Address)
	if req.OrderType == models.OrderTypePickup {
		address = ""
	}

	order := &models.Order{
		ID:           uuid.New().String(),
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        strings.TrimSpace(req.Phone),
		Address:      address,
		OrderType:    req.OrderType,
		TotalAmount:  cart.Total(req.Lines),
		Status:       models.OrderStatusPending,
	}
	for _, line := range req.Lines {
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: line.Item.ID,
			Name:       line.Item.Name,
			Quantity:   line.Qty,
			UnitPrice:  line.Item.Price.Amount,
		})
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	util.OrdersCreatedTotal.Inc()
	reference := Reference(order.ID)
	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("reference", reference),
		zap.Int64("total_amount", order.TotalAmount))

	s.publishCreated(ctx, order, reference)

	return &CheckoutResult{
		Order:        order,
		Reference:    reference,
		WhatsAppLink: s.whatsapp.Link(*order, reference),
	}, nil
}

// List returns all orders, newest first
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.ListOrders(ctx)
}

// Get returns a single order with its lines
func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	return s.orders.GetOrderByID(ctx, id)
}

// Reference derives the display-only order reference shown to the customer.
// It is never used as a lookup key.
func Reference(orderID string) string {
	compact := strings.ReplaceAll(orderID, "-", "")
	if len(compact) > 6 {
		compact = compact[:6]
	}
	return "#" + strings.ToUpper(compact)
}

func validateCheckout(req CheckoutRequest) error {
	if len(req.Lines) == 0 {
		return fmt.Errorf("cart is empty: %w", models.ErrValidation)
	}
	for _, line := range req.Lines {
		if line.Qty < 1 {
			return fmt.Errorf("line quantity below 1: %w", models.ErrValidation)
		}
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("customer name is required: %w", models.ErrValidation)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("phone is required: %w", models.ErrValidation)
	}
	switch req.OrderType {
	case models.OrderTypeDelivery:
		if strings.TrimSpace(req.Address) == "" {
			return fmt.Errorf("delivery address is required: %w", models.ErrValidation)
		}
	case models.OrderTypePickup:
	default:
		return fmt.Errorf("unknown order type %q: %w", req.OrderType, models.ErrValidation)
	}
	return nil
}

func (s *OrderService) publishCreated(ctx context.Context, order *models.Order, reference string) {
	if s.events == nil {
		return
	}

	event := &models.OrderCreatedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderCreated,
			Timestamp: time.Now(),
		},
		OrderID:      order.ID,
		Reference:    reference,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Address:      order.Address,
		OrderType:    order.OrderType,
		TotalAmount:  order.TotalAmount,
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, models.OrderItemData{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	if err := s.events.PublishOrderCreated(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderCreated event", zap.Error(err))
	}
}
