package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders placed through checkout",
	})

	OrdersConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_confirmed_total",
		Help: "Total number of orders confirmed by an admin",
	})

	OrdersCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_cancelled_total",
		Help: "Total number of orders cancelled",
	})

	OrdersRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_rejected_total",
		Help: "Total number of rejected order submissions",
	}, []string{"reason"})

	ConfirmRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_confirm_retries_total",
		Help: "Confirmations that resumed a previously persisted deduction plan",
	})

	StockDeductionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_deductions_total",
		Help: "Total number of inventory deductions applied",
	})

	StockDeductionsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_deductions_failed_total",
		Help: "Total number of failed inventory deductions",
	}, []string{"reason"})

	StockLowTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_low_total",
		Help: "Deductions that left a record at or below its reorder threshold",
	})

	ConfirmLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_confirm_latency_seconds",
		Help:    "Latency of the full order confirmation flow",
		Buckets: prometheus.DefBuckets,
	})

	AuditWritesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "audit_writes_failed_total",
		Help: "Audit entries dropped because the store write failed",
	})

	MenuCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "menu_cache_requests_total",
		Help: "Menu reads served from the Redis cache vs the store",
	}, []string{"result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
