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

// LifecycleService runs the order state machine: pending -> completed |
// cancelled, both terminal. It orchestrates the inventory ledger and the
// audit log on confirmation but owns neither store.
type LifecycleService struct {
	orders    OrderStore
	inventory *InventoryService
	auditor   *Auditor
	events    EventPublisher
	logger    *zap.Logger
}

func NewLifecycleService(orders OrderStore, inventory *InventoryService, auditor *Auditor, events EventPublisher) *LifecycleService {
	return &LifecycleService{
		orders:    orders,
		inventory: inventory,
		auditor:   auditor,
		events:    events,
		logger:    util.GetLogger(),
	}
}

// Confirm turns a pending customer claim into a committed, stock-affecting
// fact. The deduction plan is persisted before any stock moves, so a confirm
// that fails partway leaves a resumable marker: retrying the same order
// resumes unapplied steps without deducting twice.
func (s *LifecycleService) Confirm(ctx context.Context, actor models.Identity, orderID string) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "LifecycleService.Confirm")
	defer span.End()

	start := time.Now()
	defer func() {
		util.ConfirmLatency.Observe(time.Since(start).Seconds())
	}()

	if err := authz.Require(actor.Role, authz.ActionOrderConfirm); err != nil {
		return nil, err
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("order %s is %s: %w", orderID, order.Status, models.ErrInvalidTransition)
	}

	plan, err := s.loadOrCreatePlan(ctx, order)
	if err != nil {
		return nil, err
	}

	for _, step := range plan {
		if step.Applied {
			continue
		}
		if err := s.applyStep(ctx, step); err != nil {
			// Order stays pending; applied flags mark how far stock moved.
			// At-least-once on retry is accepted: corrections are a manual
			// restock, visible through the low-stock view.
			s.logger.Error("Confirmation halted on partial deduction",
				zap.String("order_id", orderID),
				zap.String("menu_item_id", step.MenuItemID),
				zap.Error(err))
			return nil, fmt.Errorf("deduction failed for %s: %w", step.MenuItemID, err)
		}
	}

	// The confirmed total is captured explicitly so a later change to
	// total computation can never alter historical confirmed figures.
	completed, err := s.orders.CompleteOrder(ctx, orderID, order.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to complete order: %w", err)
	}
	if !completed {
		return nil, fmt.Errorf("order %s already finalized: %w", orderID, models.ErrInvalidTransition)
	}

	util.OrdersConfirmedTotal.Inc()

	s.auditor.Record(ctx, models.AuditEntry{
		Type:       models.AuditOrderConfirmed,
		ActorID:    actor.UID,
		ActorEmail: actor.Email,
		TargetID:   orderID,
		Details:    fmt.Sprintf("confirmed total %d", order.TotalAmount),
	})

	s.publishConfirmed(ctx, actor, orderID, order.TotalAmount)
	s.logger.Info("Order confirmed",
		zap.String("order_id", orderID),
		zap.String("actor", actor.UID),
		zap.Int64("confirmed_total", order.TotalAmount))

	return s.orders.GetOrderByID(ctx, orderID)
}

// Cancel discards a pending order. Higher privilege than confirm since it
// throws away revenue already signalled to the customer. No stock moves:
// nothing was deducted for a still-pending order.
func (s *LifecycleService) Cancel(ctx context.Context, actor models.Identity, orderID string) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "LifecycleService.Cancel")
	defer span.End()

	if err := authz.Require(actor.Role, authz.ActionOrderCancel); err != nil {
		return nil, err
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, fmt.Errorf("order %s is %s: %w", orderID, order.Status, models.ErrInvalidTransition)
	}

	cancelled, err := s.orders.CancelOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel order: %w", err)
	}
	if !cancelled {
		return nil, fmt.Errorf("order %s already finalized: %w", orderID, models.ErrInvalidTransition)
	}

	util.OrdersCancelledTotal.Inc()

	s.auditor.Record(ctx, models.AuditEntry{
		Type:       models.AuditOther,
		ActorID:    actor.UID,
		ActorEmail: actor.Email,
		TargetID:   orderID,
		Details:    "order cancelled",
	})

	if s.events != nil {
		event := &models.OrderCancelledEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeOrderCancelled,
				Timestamp: time.Now(),
			},
			OrderID: orderID,
			ActorID: actor.UID,
		}
		if err := s.events.PublishOrderCancelled(ctx, event); err != nil {
			s.logger.Error("Failed to publish OrderCancelled event", zap.Error(err))
		}
	}

	s.logger.Info("Order cancelled",
		zap.String("order_id", orderID),
		zap.String("actor", actor.UID))

	return s.orders.GetOrderByID(ctx, orderID)
}

func (s *LifecycleService) loadOrCreatePlan(ctx context.Context, order *models.Order) ([]models.DeductionStep, error) {
	existing, err := s.orders.GetDeductionPlan(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load deduction plan: %w", err)
	}
	if len(existing) > 0 {
		util.ConfirmRetriesTotal.Inc()
		s.logger.Info("Resuming persisted deduction plan",
			zap.String("order_id", order.ID),
			zap.Int("steps", len(existing)))
		return existing, nil
	}

	steps := make([]models.DeductionStep, 0, len(order.Items))
	for _, item := range order.Items {
		steps = append(steps, models.DeductionStep{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	plan, err := s.orders.CreateDeductionPlan(ctx, order.ID, steps)
	if err != nil {
		return nil, fmt.Errorf("failed to persist deduction plan: %w", err)
	}
	return plan, nil
}

func (s *LifecycleService) applyStep(ctx context.Context, step models.DeductionStep) error {
	if err := s.inventory.Deduct(ctx, step.MenuItemID, step.Quantity); err != nil {
		util.StockDeductionsFailed.WithLabelValues("store_error").Inc()
		return err
	}
	if err := s.orders.MarkStepApplied(ctx, step.ID); err != nil {
		return fmt.Errorf("failed to mark step applied: %w", err)
	}
	return nil
}

func (s *LifecycleService) publishConfirmed(ctx context.Context, actor models.Identity, orderID string, total int64) {
	if s.events == nil {
		return
	}
	event := &models.OrderConfirmedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderConfirmed,
			Timestamp: time.Now(),
		},
		OrderID:        orderID,
		ActorID:        actor.UID,
		ConfirmedTotal: total,
	}
	if err := s.events.PublishOrderConfirmed(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderConfirmed event", zap.Error(err))
	}
}
