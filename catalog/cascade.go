package catalog

import (
	"github.com/Henilshingala/JiyashCreation/models"
	"gorm.io/gorm"
)

// hierarchy lists the three tables owned by one material type, in the order
// the cascade touches them.
type hierarchy struct {
	category    any
	subcategory any
	product     any
}

var hierarchies = map[models.MaterialType]hierarchy{
	models.MaterialGold: {
		category:    &models.GoldCategory{},
		subcategory: &models.GoldSubCategory{},
		product:     &models.GoldProduct{},
	},
	models.MaterialSilver: {
		category:    &models.SilverCategory{},
		subcategory: &models.SilverSubCategory{},
		product:     &models.SilverProduct{},
	},
	models.MaterialImitation: {
		category:    &models.ImitationCategory{},
		subcategory: &models.ImitationSubCategory{},
		product:     &models.ImitationProduct{},
	},
}

// EnsureTopCategories seeds the three master-switch rows. A newly created
// switch cascades its initial state so the hierarchy starts consistent.
func EnsureTopCategories(db *gorm.DB) error {
	for _, m := range models.Materials() {
		var top models.TopCategory
		err := db.Where("material = ?", m).First(&top).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := SetMaterialActive(db, m, true); err != nil {
			return err
		}
	}
	return nil
}

// SetMaterialActive flips the master switch for one material and propagates
// the flag to every category, subcategory and product of that material.
// The whole update runs in one transaction; on failure nothing changes.
func SetMaterialActive(db *gorm.DB, material models.MaterialType, active bool) error {
	h, ok := hierarchies[material]
	if !ok {
		return ErrUnknownMaterial
	}
	return db.Transaction(func(tx *gorm.DB) error {
		bulk := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, table := range []any{h.category, h.subcategory, h.product} {
			if err := bulk.Model(table).Update("is_active", active).Error; err != nil {
				return err
			}
		}
		res := tx.Model(&models.TopCategory{}).
			Where("material = ?", material).
			Update("is_active", active)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return tx.Create(&models.TopCategory{Material: material, IsActive: active}).Error
		}
		return nil
	})
}

// SetCategoryActive flips one category row. It affects only that subtree at
// query time; it never reaches the material's master switch.
func SetCategoryActive(db *gorm.DB, material models.MaterialType, id uint, active bool) error {
	h, ok := hierarchies[material]
	if !ok {
		return ErrUnknownMaterial
	}
	return updateActive(db, h.category, id, active)
}

func SetSubCategoryActive(db *gorm.DB, material models.MaterialType, id uint, active bool) error {
	h, ok := hierarchies[material]
	if !ok {
		return ErrUnknownMaterial
	}
	return updateActive(db, h.subcategory, id, active)
}

func SetProductActive(db *gorm.DB, material models.MaterialType, id uint, active bool) error {
	h, ok := hierarchies[material]
	if !ok {
		return ErrUnknownMaterial
	}
	return updateActive(db, h.product, id, active)
}

func updateActive(db *gorm.DB, table any, id uint, active bool) error {
	res := db.Model(table).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ActiveMaterials returns the set of materials whose master switch is on.
// When the switch table is empty (fresh install) every material counts as
// active, matching EnsureTopCategories' seed state.
func ActiveMaterials(db *gorm.DB) (map[models.MaterialType]bool, error) {
	var tops []models.TopCategory
	if err := db.Find(&tops).Error; err != nil {
		return nil, err
	}
	active := make(map[models.MaterialType]bool, len(tops))
	if len(tops) == 0 {
		for _, m := range models.Materials() {
			active[m] = true
		}
		return active, nil
	}
	for _, t := range tops {
		if t.IsActive {
			active[t.Material] = true
		}
	}
	return active, nil
}
