// Package redisclient maintains the read-side mirrors: a stock hash per
// inventory record for the dashboard fast path, and a short-TTL cache of the
// storefront menu. Postgres stays authoritative for both.
package redisclient

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tayaudrey222/yumstation/internal/models"

	"github.com/go-redis/redis/v8"
)

//go:embed scripts/deduct_stock.lua
var deductStockScript string

//go:embed scripts/restock_stock.lua
var restockStockScript string

const menuCacheKey = "catalog:menu"

type Client struct {
	rdb           *redis.Client
	deductScript  *redis.Script
	restockScript *redis.Script
	menuTTL       time.Duration
}

// NewClient creates a new Redis client with Lua scripts loaded
func NewClient(addr, password string, db int, menuTTL time.Duration) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{
		rdb:           rdb,
		deductScript:  redis.NewScript(deductStockScript),
		restockScript: redis.NewScript(restockStockScript),
		menuTTL:       menuTTL,
	}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}

func stockKey(inventoryID string) string {
	return fmt.Sprintf("inventory:%s", inventoryID)
}

// InitStock seeds the mirror hash for one record
func (c *Client) InitStock(ctx context.Context, rec models.InventoryRecord) error {
	pipe := c.rdb.Pipeline()
	pipe.HSet(ctx, stockKey(rec.ID), "quantity", rec.Quantity)
	pipe.HSet(ctx, stockKey(rec.ID), "threshold", rec.ReorderThreshold)
	_, err := pipe.Exec(ctx)
	return err
}

// DeductStock mirrors a clamped deduction. Returns the new quantity, or -1
// when the record is not mirrored yet.
func (c *Client) DeductStock(ctx context.Context, inventoryID string, qty int) (int, error) {
	result, err := c.deductScript.Run(ctx, c.rdb, []string{stockKey(inventoryID)}, qty).Result()
	if err != nil {
		return 0, fmt.Errorf("deduct stock script failed: %w", err)
	}
	n, ok := result.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected script result type")
	}
	return int(n), nil
}

// RestockStock mirrors a restock increment
func (c *Client) RestockStock(ctx context.Context, inventoryID string, qty int) error {
	_, err := c.restockScript.Run(ctx, c.rdb, []string{stockKey(inventoryID)}, qty).Result()
	if err != nil {
		return fmt.Errorf("restock stock script failed: %w", err)
	}
	return nil
}

// DropStock removes the mirror hash for a deleted record
func (c *Client) DropStock(ctx context.Context, inventoryID string) error {
	return c.rdb.Del(ctx, stockKey(inventoryID)).Err()
}

// GetStock reads the mirrored quantity
func (c *Client) GetStock(ctx context.Context, inventoryID string) (int, error) {
	val, err := c.rdb.HGet(ctx, stockKey(inventoryID), "quantity").Int()
	if err == redis.Nil {
		return 0, fmt.Errorf("stock not mirrored for %s", inventoryID)
	}
	return val, err
}

// GetMenu reads the cached storefront menu. A cache miss returns redis.Nil
// wrapped, callers fall back to the store.
func (c *Client) GetMenu(ctx context.Context) ([]models.MenuItem, error) {
	data, err := c.rdb.Get(ctx, menuCacheKey).Bytes()
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("corrupt menu cache: %w", err)
	}
	return items, nil
}

// SetMenu caches the storefront menu with the configured TTL
func (c *Client) SetMenu(ctx context.Context, items []models.MenuItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, menuCacheKey, data, c.menuTTL).Err()
}

// InvalidateMenu drops the menu cache after a catalog mutation
func (c *Client) InvalidateMenu(ctx context.Context) error {
	return c.rdb.Del(ctx, menuCacheKey).Err()
}
