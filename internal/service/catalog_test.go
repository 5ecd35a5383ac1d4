package service

import (
	"context"
	"testing"

	"github.com/tayaudrey222/yumstation/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture() (*CatalogService, *fakeCatalogStore, *fakeMenuCache) {
	catalog := newFakeCatalogStore()
	cache := &fakeMenuCache{}
	return NewCatalogService(catalog, cache), catalog, cache
}

func TestSeedIfEmpty(t *testing.T) {
	svc, catalog, _ := newCatalogFixture()
	ctx := context.Background()

	require.NoError(t, svc.SeedIfEmpty(ctx))

	items, err := catalog.GetMenuItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(models.SeedMenuItems))

	cats, err := catalog.GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(models.SeedCategories))

	// Seeding again must not duplicate or reset anything.
	root := models.Identity{UID: "u1", Role: models.RoleSuperAdmin}
	require.NoError(t, svc.SaveMenuItem(ctx, root, &models.MenuItem{
		Name: "Ofada Special", Category: "rice-dishes", Price: models.Priced(4000), IsAvailable: true,
	}))
	require.NoError(t, svc.SeedIfEmpty(ctx))
	items, err = catalog.GetMenuItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, len(models.SeedMenuItems)+1)
}

func TestMenuUsesCache(t *testing.T) {
	svc, _, cache := newCatalogFixture()
	ctx := context.Background()
	root := models.Identity{UID: "u1", Role: models.RoleSuperAdmin}

	require.NoError(t, svc.SaveMenuItem(ctx, root, &models.MenuItem{
		Name: "Jollof Rice", Category: "rice-dishes", Price: models.Priced(1500), IsAvailable: true,
	}))

	// First read misses and warms the cache, second read hits it.
	first, err := svc.Menu(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, cache.misses)
	assert.True(t, cache.warm)

	_, err = svc.Menu(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)

	// Writes invalidate.
	require.NoError(t, svc.SaveMenuItem(ctx, root, &models.MenuItem{
		Name: "Fried Rice", Category: "rice-dishes", Price: models.Priced(1500), IsAvailable: true,
	}))
	assert.False(t, cache.warm)

	refreshed, err := svc.Menu(ctx)
	require.NoError(t, err)
	assert.Len(t, refreshed, 2)
}

func TestSaveMenuItemValidation(t *testing.T) {
	svc, _, _ := newCatalogFixture()
	ctx := context.Background()
	root := models.Identity{UID: "u1", Role: models.RoleSuperAdmin}

	err := svc.SaveMenuItem(ctx, root, &models.MenuItem{Category: "rice-dishes", Price: models.Priced(100)})
	assert.ErrorIs(t, err, models.ErrValidation)

	err = svc.SaveMenuItem(ctx, root, &models.MenuItem{Name: "Jollof", Price: models.Priced(100)})
	assert.ErrorIs(t, err, models.ErrValidation)

	err = svc.SaveMenuItem(ctx, root, &models.MenuItem{Name: "Jollof", Category: "rice-dishes", Price: models.Priced(-5)})
	assert.ErrorIs(t, err, models.ErrValidation)

	// On-request items carry no amount and are fine.
	onRequest := &models.MenuItem{Name: "Catering Tray", Category: "rice-dishes", Price: models.AskForPrice()}
	require.NoError(t, svc.SaveMenuItem(ctx, root, onRequest))
	assert.NotEmpty(t, onRequest.ID)
	assert.False(t, onRequest.Purchasable())
}

func TestToggleAvailability(t *testing.T) {
	svc, _, _ := newCatalogFixture()
	ctx := context.Background()
	root := models.Identity{UID: "u1", Role: models.RoleSuperAdmin}
	staff := models.Identity{UID: "u2", Role: models.RoleAdmin}

	item := &models.MenuItem{Name: "Jollof", Category: "rice-dishes", Price: models.Priced(1500), IsAvailable: true}
	require.NoError(t, svc.SaveMenuItem(ctx, root, item))

	// Toggling is admin-level even though editing is not.
	toggled, err := svc.ToggleAvailability(ctx, staff, item.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsAvailable)

	toggled, err = svc.ToggleAvailability(ctx, staff, item.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsAvailable)

	err = svc.SaveMenuItem(ctx, staff, item)
	assert.ErrorIs(t, err, models.ErrForbidden)

	err = svc.DeleteMenuItem(ctx, staff, item.ID)
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestSaveCategoryValidation(t *testing.T) {
	svc, _, _ := newCatalogFixture()
	ctx := context.Background()
	root := models.Identity{UID: "u1", Role: models.RoleSuperAdmin}

	valid := &models.CategoryDefinition{ID: "rice-dishes", Title: "Rice Dishes", Icon: "🍚", ColorTheme: "orange", SortOrder: 1}
	require.NoError(t, svc.SaveCategory(ctx, root, valid))

	badSlug := &models.CategoryDefinition{ID: "Rice Dishes!", Title: "Rice", ColorTheme: "orange"}
	assert.ErrorIs(t, svc.SaveCategory(ctx, root, badSlug), models.ErrValidation)

	noTitle := &models.CategoryDefinition{ID: "rice-dishes", Title: "  ", ColorTheme: "orange"}
	assert.ErrorIs(t, svc.SaveCategory(ctx, root, noTitle), models.ErrValidation)

	badTheme := &models.CategoryDefinition{ID: "rice-dishes", Title: "Rice", ColorTheme: "magenta"}
	assert.ErrorIs(t, svc.SaveCategory(ctx, root, badTheme), models.ErrValidation)
}

func TestDeleteCategoryKeepsItems(t *testing.T) {
	svc, catalog, _ := newCatalogFixture()
	ctx := context.Background()
	root := models.Identity{UID: "u1", Role: models.RoleSuperAdmin}

	require.NoError(t, svc.SaveCategory(ctx, root, &models.CategoryDefinition{
		ID: "rice-dishes", Title: "Rice Dishes", ColorTheme: "orange",
	}))
	item := &models.MenuItem{Name: "Jollof", Category: "rice-dishes", Price: models.Priced(1500), IsAvailable: true}
	require.NoError(t, svc.SaveMenuItem(ctx, root, item))

	require.NoError(t, svc.DeleteCategory(ctx, root, "rice-dishes"))

	// The item keeps its category tag.
	kept, err := catalog.GetMenuItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "rice-dishes", kept.Category)
}
