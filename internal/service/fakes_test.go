package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tayaudrey222/yumstation/internal/models"
)

// In-memory store fakes mirroring the Postgres semantics.

type fakeOrderStore struct {
	mu     sync.Mutex
	orders map[string]*models.Order
	plans  map[string][]models.DeductionStep
	nextID int64
	seq    int
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders: make(map[string]*models.Order),
		plans:  make(map[string][]models.DeductionStep),
	}
}

func (f *fakeOrderStore) CreateOrder(ctx context.Context, order *models.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	order.CreatedAt = time.Now().Add(time.Duration(f.seq) * time.Millisecond)
	cp := *order
	cp.Items = append([]models.OrderItem(nil), order.Items...)
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderStore) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, models.ErrNotFound)
	}
	cp := *order
	cp.Items = append([]models.OrderItem(nil), order.Items...)
	return &cp, nil
}

func (f *fakeOrderStore) ListOrders(ctx context.Context) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeOrderStore) CompleteOrder(ctx context.Context, id string, confirmedTotal int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok || order.Status != models.OrderStatusPending {
		return false, nil
	}
	now := time.Now()
	order.Status = models.OrderStatusCompleted
	order.ConfirmedAt = &now
	order.ConfirmedTotal = &confirmedTotal
	return true, nil
}

func (f *fakeOrderStore) CancelOrder(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok || order.Status != models.OrderStatusPending {
		return false, nil
	}
	order.Status = models.OrderStatusCancelled
	return true, nil
}

func (f *fakeOrderStore) CreateDeductionPlan(ctx context.Context, orderID string, steps []models.DeductionStep) ([]models.DeductionStep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.plans[orderID]; ok && len(existing) > 0 {
		return append([]models.DeductionStep(nil), existing...), nil
	}
	stored := make([]models.DeductionStep, len(steps))
	for i, s := range steps {
		f.nextID++
		s.ID = f.nextID
		s.OrderID = orderID
		stored[i] = s
	}
	f.plans[orderID] = stored
	return append([]models.DeductionStep(nil), stored...), nil
}

func (f *fakeOrderStore) GetDeductionPlan(ctx context.Context, orderID string) ([]models.DeductionStep, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.DeductionStep(nil), f.plans[orderID]...), nil
}

func (f *fakeOrderStore) MarkStepApplied(ctx context.Context, stepID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for orderID := range f.plans {
		for i := range f.plans[orderID] {
			if f.plans[orderID][i].ID == stepID {
				f.plans[orderID][i].Applied = true
				return nil
			}
		}
	}
	return fmt.Errorf("step %d: %w", stepID, models.ErrNotFound)
}

type fakeInventoryStore struct {
	mu   sync.Mutex
	recs map[string]*models.InventoryRecord

	// failDeductFor forces store errors to exercise partial-failure paths
	failDeductFor map[string]bool
}

func newFakeInventoryStore() *fakeInventoryStore {
	return &fakeInventoryStore{
		recs:          make(map[string]*models.InventoryRecord),
		failDeductFor: make(map[string]bool),
	}
}

func (f *fakeInventoryStore) GetInventoryByID(ctx context.Context, id string) (*models.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recs[id]
	if !ok {
		return nil, fmt.Errorf("inventory %s: %w", id, models.ErrNotFound)
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeInventoryStore) GetInventoryByMenuItem(ctx context.Context, menuItemID string) (*models.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.recs {
		if rec.MenuItemID != "" && rec.MenuItemID == menuItemID {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryStore) ListInventory(ctx context.Context) ([]models.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.InventoryRecord, 0, len(f.recs))
	for _, rec := range f.recs {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeInventoryStore) SaveInventory(ctx context.Context, rec *models.InventoryRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rec
	f.recs[rec.ID] = &cp
	return nil
}

func (f *fakeInventoryStore) DeleteInventory(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.recs[id]; !ok {
		return fmt.Errorf("inventory %s: %w", id, models.ErrNotFound)
	}
	delete(f.recs, id)
	return nil
}

func (f *fakeInventoryStore) DeductStock(ctx context.Context, menuItemOrInventoryID string, qty int) (*models.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDeductFor[menuItemOrInventoryID] {
		return nil, fmt.Errorf("injected failure: %w", models.ErrStore)
	}

	var match *models.InventoryRecord
	for _, rec := range f.recs {
		if rec.MenuItemID != "" && rec.MenuItemID == menuItemOrInventoryID {
			match = rec
			break
		}
	}
	if match == nil {
		match = f.recs[menuItemOrInventoryID]
	}
	if match == nil {
		return nil, nil
	}

	match.Quantity -= qty
	if match.Quantity < 0 {
		match.Quantity = 0
	}
	cp := *match
	return &cp, nil
}

func (f *fakeInventoryStore) RestockStock(ctx context.Context, id string, qty int) (*models.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recs[id]
	if !ok {
		return nil, fmt.Errorf("inventory %s: %w", id, models.ErrNotFound)
	}
	rec.Quantity += qty
	now := time.Now()
	rec.LastRestocked = &now
	cp := *rec
	return &cp, nil
}

func (f *fakeInventoryStore) LowStock(ctx context.Context) ([]models.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.InventoryRecord
	for _, rec := range f.recs {
		if rec.LowStock() {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeCatalogStore struct {
	mu    sync.Mutex
	items map[string]*models.MenuItem
	cats  map[string]*models.CategoryDefinition
}

func newFakeCatalogStore() *fakeCatalogStore {
	return &fakeCatalogStore{
		items: make(map[string]*models.MenuItem),
		cats:  make(map[string]*models.CategoryDefinition),
	}
}

func (f *fakeCatalogStore) GetMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.MenuItem, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCatalogStore) GetMenuItemByID(ctx context.Context, id string) (*models.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	if !ok {
		return nil, fmt.Errorf("menu item %s: %w", id, models.ErrNotFound)
	}
	cp := *it
	return &cp, nil
}

func (f *fakeCatalogStore) SaveMenuItem(ctx context.Context, item *models.MenuItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeCatalogStore) DeleteMenuItem(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return fmt.Errorf("menu item %s: %w", id, models.ErrNotFound)
	}
	delete(f.items, id)
	return nil
}

func (f *fakeCatalogStore) GetCategories(ctx context.Context) ([]models.CategoryDefinition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.CategoryDefinition, 0, len(f.cats))
	for _, c := range f.cats {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (f *fakeCatalogStore) SaveCategory(ctx context.Context, cat *models.CategoryDefinition) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *cat
	f.cats[cat.ID] = &cp
	return nil
}

func (f *fakeCatalogStore) DeleteCategory(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cats[id]; !ok {
		return fmt.Errorf("category %s: %w", id, models.ErrNotFound)
	}
	delete(f.cats, id)
	return nil
}

func (f *fakeCatalogStore) SeedCatalog(ctx context.Context, items []models.MenuItem, cats []models.CategoryDefinition) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.items) > 0 || len(f.cats) > 0 {
		return false, nil
	}
	for i := range items {
		cp := items[i]
		f.items[cp.ID] = &cp
	}
	for i := range cats {
		cp := cats[i]
		f.cats[cp.ID] = &cp
	}
	return true, nil
}

type fakeMenuCache struct {
	mu     sync.Mutex
	cached []models.MenuItem
	warm   bool
	hits   int
	misses int
}

func (f *fakeMenuCache) GetMenu(ctx context.Context) ([]models.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.warm {
		f.misses++
		return nil, fmt.Errorf("menu cache cold: %w", models.ErrNotFound)
	}
	f.hits++
	return append([]models.MenuItem(nil), f.cached...), nil
}

func (f *fakeMenuCache) SetMenu(ctx context.Context, items []models.MenuItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cached = append([]models.MenuItem(nil), items...)
	f.warm = true
	return nil
}

func (f *fakeMenuCache) InvalidateMenu(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cached = nil
	f.warm = false
	return nil
}

type fakeAdminStore struct {
	mu     sync.Mutex
	admins map[string]*models.AdminUser
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[string]*models.AdminUser)}
}

func (f *fakeAdminStore) GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminStore) GetAdminByUID(ctx context.Context, uid string) (*models.AdminUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[uid]
	if !ok {
		return nil, fmt.Errorf("admin %s: %w", uid, models.ErrNotFound)
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminStore) ListAdmins(ctx context.Context) ([]models.AdminUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.AdminUser, 0, len(f.admins))
	for _, a := range f.admins {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeAdminStore) CreateAdmin(ctx context.Context, admin *models.AdminUser) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.admins) == 0 {
		admin.Role = models.RoleSuperAdmin
	} else {
		admin.Role = models.RoleAdmin
	}
	admin.CreatedAt = time.Now()
	cp := *admin
	f.admins[admin.UID] = &cp
	return nil
}

func (f *fakeAdminStore) UpdateAdminRole(ctx context.Context, uid, role string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.admins[uid]
	if !ok {
		return fmt.Errorf("admin %s: %w", uid, models.ErrNotFound)
	}
	a.Role = role
	return nil
}

type fakeAuditStore struct {
	mu      sync.Mutex
	entries []models.AuditEntry
}

func (f *fakeAuditStore) AppendAudit(ctx context.Context, entry *models.AuditEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry.Timestamp = time.Now()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditStore) RecentAudit(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]models.AuditEntry(nil), f.entries...)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeAuditStore) byType(t string) []models.AuditEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AuditEntry
	for _, e := range f.entries {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type fakePublisher struct {
	mu        sync.Mutex
	created   []*models.OrderCreatedEvent
	confirmed []*models.OrderConfirmedEvent
	cancelled []*models.OrderCancelledEvent
	stockLow  []*models.StockLowEvent
}

func (f *fakePublisher) PublishOrderCreated(ctx context.Context, e *models.OrderCreatedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, e)
	return nil
}

func (f *fakePublisher) PublishOrderConfirmed(ctx context.Context, e *models.OrderConfirmedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmed = append(f.confirmed, e)
	return nil
}

func (f *fakePublisher) PublishOrderCancelled(ctx context.Context, e *models.OrderCancelledEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled = append(f.cancelled, e)
	return nil
}

func (f *fakePublisher) PublishStockLow(ctx context.Context, e *models.StockLowEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stockLow = append(f.stockLow, e)
	return nil
}
