package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tayaudrey222/yumstation/internal/models"

	"github.com/jmoiron/sqlx"
)

// CreateOrder persists an order and its line snapshot in one transaction
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (id, customer_name, phone, address, order_type, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err = tx.GetContext(ctx, &order.CreatedAt, query,
		order.ID, order.CustomerName, order.Phone, order.Address,
		order.OrderType, order.TotalAmount, order.Status)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err := tx.GetContext(ctx, &item.ID,
			`INSERT INTO order_items (order_id, menu_item_id, name, quantity, unit_price)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			item.OrderID, item.MenuItemID, item.Name, item.Quantity, item.UnitPrice)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	return tx.Commit()
}

// GetOrderByID retrieves an order with its line items
func (s *Store) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	err = s.db.SelectContext(ctx, &order.Items,
		"SELECT * FROM order_items WHERE order_id = $1 ORDER BY id", id)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders retrieves all orders, newest first, with line items attached
func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders, "SELECT * FROM orders ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args, err := sqlx.In("SELECT * FROM order_items WHERE order_id IN (?) ORDER BY id", ids)
	if err != nil {
		return nil, err
	}
	query = s.db.Rebind(query)

	var items []models.OrderItem
	if err := s.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}

	byOrder := make(map[string][]models.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return orders, nil
}

// CompleteOrder moves a pending order to completed, stamping confirmation
// time and the confirmed total. The WHERE clause makes the transition
// one-shot: a non-pending order is left untouched.
func (s *Store) CompleteOrder(ctx context.Context, id string, confirmedTotal int64) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, confirmed_at = NOW(), confirmed_total = $2
		 WHERE id = $3 AND status = $4`,
		models.OrderStatusCompleted, confirmedTotal, id, models.OrderStatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// CancelOrder moves a pending order to cancelled
func (s *Store) CancelOrder(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE id = $2 AND status = $3",
		models.OrderStatusCancelled, id, models.OrderStatusPending)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// CreateDeductionPlan persists the stock deduction steps for an order before
// any stock is touched. Idempotent: an existing plan is kept as-is so a
// confirm retry resumes it.
func (s *Store) CreateDeductionPlan(ctx context.Context, orderID string, steps []models.DeductionStep) ([]models.DeductionStep, error) {
	existing, err := s.GetDeductionPlan(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	for i := range steps {
		steps[i].OrderID = orderID
		err := tx.GetContext(ctx, &steps[i].ID,
			`INSERT INTO deduction_plans (order_id, menu_item_id, quantity, applied)
			 VALUES ($1, $2, $3, FALSE)
			 RETURNING id`,
			orderID, steps[i].MenuItemID, steps[i].Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to persist deduction step: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return steps, nil
}

// GetDeductionPlan retrieves the persisted plan for an order
func (s *Store) GetDeductionPlan(ctx context.Context, orderID string) ([]models.DeductionStep, error) {
	var steps []models.DeductionStep
	err := s.db.SelectContext(ctx, &steps,
		"SELECT * FROM deduction_plans WHERE order_id = $1 ORDER BY id", orderID)
	return steps, err
}

// MarkStepApplied records that a plan step's deduction hit the ledger
func (s *Store) MarkStepApplied(ctx context.Context, stepID int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE deduction_plans SET applied = TRUE WHERE id = $1", stepID)
	return err
}
