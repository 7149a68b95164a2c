package catalog

import (
	"testing"

	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureTopCategoriesSeedsAllSwitchesOn(t *testing.T) {
	db := testDB(t)
	require.NoError(t, EnsureTopCategories(db))

	active, err := ActiveMaterials(db)
	require.NoError(t, err)
	for _, m := range models.Materials() {
		assert.True(t, active[m], "material %s should start active", m)
	}

	var n int64
	require.NoError(t, db.Model(&models.TopCategory{}).Count(&n).Error)
	assert.EqualValues(t, 3, n)

	// Idempotent on restart.
	require.NoError(t, EnsureTopCategories(db))
	require.NoError(t, db.Model(&models.TopCategory{}).Count(&n).Error)
	assert.EqualValues(t, 3, n)
}

func TestSetMaterialActiveCascadesDown(t *testing.T) {
	db := testDB(t)
	require.NoError(t, EnsureTopCategories(db))
	seedSilver(t, db, "Rope Chain", 2000)
	seedSilver(t, db, "Figaro Chain", 2500)

	require.NoError(t, SetMaterialActive(db, models.MaterialSilver, false))

	var cats []models.SilverCategory
	require.NoError(t, db.Find(&cats).Error)
	for _, c := range cats {
		assert.False(t, c.IsActive)
	}
	var subs []models.SilverSubCategory
	require.NoError(t, db.Find(&subs).Error)
	for _, s := range subs {
		assert.False(t, s.IsActive)
	}
	var prods []models.SilverProduct
	require.NoError(t, db.Find(&prods).Error)
	for _, p := range prods {
		assert.False(t, p.IsActive)
	}

	active, err := ActiveMaterials(db)
	require.NoError(t, err)
	assert.False(t, active[models.MaterialSilver])
	assert.True(t, active[models.MaterialGold])
	assert.True(t, active[models.MaterialImitation])
}

func TestSetMaterialActiveLeavesOtherMaterialsAlone(t *testing.T) {
	db := testDB(t)
	require.NoError(t, EnsureTopCategories(db))
	goldID := seedGold(t, db, "Plain Band", 30000)
	seedImitation(t, db, "Kundan Set", 4000)

	require.NoError(t, SetMaterialActive(db, models.MaterialImitation, false))

	var gold models.GoldProduct
	require.NoError(t, db.First(&gold, goldID).Error)
	assert.True(t, gold.IsActive)
}

func TestReactivatingMaterialRestoresTheWholeHierarchy(t *testing.T) {
	db := testDB(t)
	require.NoError(t, EnsureTopCategories(db))
	id := seedImitation(t, db, "Temple Necklace", 6000)

	require.NoError(t, SetMaterialActive(db, models.MaterialImitation, false))
	require.NoError(t, SetMaterialActive(db, models.MaterialImitation, true))

	var p models.ImitationProduct
	require.NoError(t, db.First(&p, id).Error)
	assert.True(t, p.IsActive)

	products, err := AvailableProducts(db, models.MaterialImitation)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestSetCategoryActiveDoesNotTouchSiblings(t *testing.T) {
	db := testDB(t)
	require.NoError(t, EnsureTopCategories(db))
	seedGold(t, db, "Gold Stud", 12000)
	otherID := seedGold(t, db, "Gold Hoop", 15000)

	var first models.GoldProduct
	require.NoError(t, db.Where("name = ?", "Gold Stud").First(&first).Error)
	require.NoError(t, SetCategoryActive(db, models.MaterialGold, first.CategoryID, false))

	products, err := AvailableProducts(db, models.MaterialGold)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, otherID, products[0].Ref().ProductID)
}

func TestSetActiveUnknownRows(t *testing.T) {
	db := testDB(t)
	assert.ErrorIs(t, SetProductActive(db, models.MaterialGold, 999, false), ErrNotFound)
	assert.ErrorIs(t, SetCategoryActive(db, models.MaterialSilver, 999, false), ErrNotFound)
	assert.ErrorIs(t, SetSubCategoryActive(db, models.MaterialImitation, 999, false), ErrNotFound)
}
