// Package authz gates privileged commands. Every mutating operation on the
// catalog, inventory, order lifecycle and admin directory is a named Action
// with a declared minimum role; Require is the single evaluation point, so
// no permission logic lives in handlers or views.
package authz

import (
	"fmt"

	"github.com/tayaudrey222/yumstation/internal/models"
)

type Action string

const (
	ActionMenuEdit           Action = "menu.edit"
	ActionMenuDelete         Action = "menu.delete"
	ActionMenuToggle         Action = "menu.toggle_availability"
	ActionCategoryEdit       Action = "category.edit"
	ActionCategoryDelete     Action = "category.delete"
	ActionInventoryEdit      Action = "inventory.edit"
	ActionInventoryDelete    Action = "inventory.delete"
	ActionInventoryRestock   Action = "inventory.restock"
	ActionOrderConfirm       Action = "order.confirm"
	ActionOrderCancel        Action = "order.cancel"
	ActionRoleChange         Action = "admin.role_change"
	ActionAuditRead          Action = "audit.read"
	ActionDashboardRead      Action = "dashboard.read"
)

// minimumRole declares the weakest role allowed to run each action.
var minimumRole = map[Action]string{
	ActionMenuEdit:         models.RoleSuperAdmin,
	ActionMenuDelete:       models.RoleSuperAdmin,
	ActionMenuToggle:       models.RoleAdmin,
	ActionCategoryEdit:     models.RoleSuperAdmin,
	ActionCategoryDelete:   models.RoleSuperAdmin,
	ActionInventoryEdit:    models.RoleSuperAdmin,
	ActionInventoryDelete:  models.RoleSuperAdmin,
	ActionInventoryRestock: models.RoleSuperAdmin,
	ActionOrderConfirm:     models.RoleAdmin,
	ActionOrderCancel:      models.RoleSuperAdmin,
	ActionRoleChange:       models.RoleSuperAdmin,
	ActionAuditRead:        models.RoleAdmin,
	ActionDashboardRead:    models.RoleAdmin,
}

var roleRank = map[string]int{
	models.RoleAdmin:      1,
	models.RoleSuperAdmin: 2,
}

// Require short-circuits with ErrForbidden before the operation runs when
// the caller's role is insufficient. Unknown actions are always refused.
func Require(role string, action Action) error {
	min, ok := minimumRole[action]
	if !ok {
		return fmt.Errorf("unknown action %s: %w", action, models.ErrForbidden)
	}
	if roleRank[role] < roleRank[min] {
		return fmt.Errorf("action %s needs %s: %w", action, min, models.ErrForbidden)
	}
	return nil
}

// Allowed reports whether role may run action, for UI capability listing.
func Allowed(role string, action Action) bool {
	return Require(role, action) == nil
}
