// Package worker runs the background notifier: it turns order and stock
// events into outbound notifications without sitting on the checkout path.
package worker

import (
	"context"

	"github.com/tayaudrey222/yumstation/internal/broker"
	"github.com/tayaudrey222/yumstation/internal/messaging"
	"github.com/tayaudrey222/yumstation/internal/models"
	"github.com/tayaudrey222/yumstation/internal/util"

	"go.uber.org/zap"
)

// NotifierWorker consumes order events and prepares the WhatsApp hand-off,
// and surfaces low-stock alerts for the kitchen.
type NotifierWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	whatsapp     *messaging.WhatsApp
	logger       *zap.Logger
}

// NewNotifierWorker creates a new notifier worker
func NewNotifierWorker(consumer *broker.Consumer, whatsapp *messaging.WhatsApp) *NotifierWorker {
	w := &NotifierWorker{
		consumer: consumer,
		whatsapp: whatsapp,
		logger:   util.GetLogger(),
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnOrderCreated(w.handleOrderCreated)
	eventHandler.OnStockLow(w.handleStockLow)
	w.eventHandler = eventHandler

	return w
}

// Start starts the worker
func (w *NotifierWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting notifier worker")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *NotifierWorker) Stop() error {
	w.logger.Info("Stopping notifier worker")
	return w.consumer.Close()
}

func (w *NotifierWorker) handleOrderCreated(ctx context.Context, event *models.OrderCreatedEvent) error {
	order := models.Order{
		ID:           event.OrderID,
		CustomerName: event.CustomerName,
		Phone:        event.Phone,
		Address:      event.Address,
		OrderType:    event.OrderType,
		TotalAmount:  event.TotalAmount,
	}
	for _, item := range event.Items {
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}

	w.logger.Info("Order hand-off prepared",
		zap.String("order_id", event.OrderID),
		zap.String("reference", event.Reference),
		zap.String("whatsapp_link", w.whatsapp.Link(order, event.Reference)))
	return nil
}

func (w *NotifierWorker) handleStockLow(ctx context.Context, event *models.StockLowEvent) error {
	w.logger.Warn("Low stock alert",
		zap.String("inventory_id", event.InventoryID),
		zap.String("name", event.Name),
		zap.Int("quantity", event.Quantity),
		zap.Int("reorder_threshold", event.ReorderThreshold))
	return nil
}
