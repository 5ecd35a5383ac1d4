package service

import (
	"context"
	"testing"
	"time"

	"github.com/tayaudrey222/yumstation/internal/auth"
	"github.com/tayaudrey222/yumstation/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminFixture() (*AdminService, *fakeAdminStore, *fakeAuditStore) {
	admins := newFakeAdminStore()
	audit := &fakeAuditStore{}
	tokens := auth.NewService("test-secret", time.Hour)
	return NewAdminService(admins, NewAuditor(audit), tokens), admins, audit
}

func TestFirstRegistrantIsSuperAdmin(t *testing.T) {
	svc, _, audit := newAdminFixture()
	ctx := context.Background()

	first, err := svc.Register(ctx, "owner@yum.ng", "longenough")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, first.Role)

	second, err := svc.Register(ctx, "staff@yum.ng", "longenough")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, second.Role)

	entries := audit.byType(models.AuditAdminCreated)
	assert.Len(t, entries, 2)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := newAdminFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "  ", "longenough")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Register(ctx, "owner@yum.ng", "short")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Register(ctx, "owner@yum.ng", "longenough")
	require.NoError(t, err)

	// Email comparison is case-insensitive.
	_, err = svc.Register(ctx, "OWNER@yum.ng", "longenough")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _, _ := newAdminFixture()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "owner@yum.ng", "longenough")
	require.NoError(t, err)

	token, admin, err := svc.Login(ctx, "Owner@Yum.NG", "longenough")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.UID, admin.UID)
	assert.Equal(t, models.RoleSuperAdmin, admin.Role)

	_, _, err = svc.Login(ctx, "owner@yum.ng", "wrongpass")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@yum.ng", "longenough")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestSetRole(t *testing.T) {
	svc, admins, audit := newAdminFixture()
	ctx := context.Background()

	root, err := svc.Register(ctx, "owner@yum.ng", "longenough")
	require.NoError(t, err)
	staff, err := svc.Register(ctx, "staff@yum.ng", "longenough")
	require.NoError(t, err)

	actor := models.Identity{UID: root.UID, Email: root.Email, Role: root.Role}

	require.NoError(t, svc.SetRole(ctx, actor, staff.UID, models.RoleSuperAdmin))

	updated, err := admins.GetAdminByUID(ctx, staff.UID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, updated.Role)

	entries := audit.byType(models.AuditRoleChanged)
	require.Len(t, entries, 1)
	assert.Equal(t, root.UID, entries[0].ActorID)
	assert.Equal(t, staff.UID, entries[0].TargetID)
	assert.Equal(t, "role admin -> super_admin", entries[0].Details)
}

func TestSetRoleGuards(t *testing.T) {
	svc, _, _ := newAdminFixture()
	ctx := context.Background()

	root, err := svc.Register(ctx, "owner@yum.ng", "longenough")
	require.NoError(t, err)
	staff, err := svc.Register(ctx, "staff@yum.ng", "longenough")
	require.NoError(t, err)

	// Plain admins cannot change roles.
	err = svc.SetRole(ctx, models.Identity{UID: staff.UID, Role: models.RoleAdmin}, root.UID, models.RoleAdmin)
	assert.ErrorIs(t, err, models.ErrForbidden)

	// Self-demotion is rejected, so the last super_admin cannot lock everyone out.
	rootActor := models.Identity{UID: root.UID, Role: models.RoleSuperAdmin}
	err = svc.SetRole(ctx, rootActor, root.UID, models.RoleAdmin)
	assert.ErrorIs(t, err, models.ErrForbidden)

	err = svc.SetRole(ctx, rootActor, staff.UID, "owner")
	assert.ErrorIs(t, err, models.ErrValidation)

	err = svc.SetRole(ctx, rootActor, "missing-uid", models.RoleAdmin)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRoleChangeTakesEffectAtNextLogin(t *testing.T) {
	svc, _, _ := newAdminFixture()
	ctx := context.Background()
	tokens := auth.NewService("test-secret", time.Hour)

	root, err := svc.Register(ctx, "owner@yum.ng", "longenough")
	require.NoError(t, err)
	staff, err := svc.Register(ctx, "staff@yum.ng", "longenough")
	require.NoError(t, err)

	oldToken, _, err := svc.Login(ctx, "staff@yum.ng", "longenough")
	require.NoError(t, err)

	rootActor := models.Identity{UID: root.UID, Role: models.RoleSuperAdmin}
	require.NoError(t, svc.SetRole(ctx, rootActor, staff.UID, models.RoleSuperAdmin))

	// The token issued before the change still carries the old role.
	identity, err := tokens.VerifyToken(oldToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, identity.Role)

	_, refreshed, err := svc.Login(ctx, "staff@yum.ng", "longenough")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, refreshed.Role)
}
