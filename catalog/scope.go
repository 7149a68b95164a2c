package catalog

import (
	"github.com/Henilshingala/JiyashCreation/models"
	"gorm.io/gorm"
)

// The active scope is the one predicate deciding customer visibility:
// product.is_active AND category.is_active AND subcategory.is_active,
// expressed as inner joins so dangling category links fail closed.

func goldScope(db *gorm.DB) *gorm.DB {
	return db.Model(&models.GoldProduct{}).
		Joins("JOIN gold_categories ON gold_categories.id = gold_products.category_id").
		Joins("JOIN gold_sub_categories ON gold_sub_categories.id = gold_products.sub_category_id").
		Where("gold_products.is_active = ? AND gold_categories.is_active = ? AND gold_sub_categories.is_active = ?",
			true, true, true)
}

func silverScope(db *gorm.DB) *gorm.DB {
	return db.Model(&models.SilverProduct{}).
		Joins("JOIN silver_categories ON silver_categories.id = silver_products.category_id").
		Joins("JOIN silver_sub_categories ON silver_sub_categories.id = silver_products.sub_category_id").
		Where("silver_products.is_active = ? AND silver_categories.is_active = ? AND silver_sub_categories.is_active = ?",
			true, true, true)
}

func imitationScope(db *gorm.DB) *gorm.DB {
	return db.Model(&models.ImitationProduct{}).
		Joins("JOIN imitation_categories ON imitation_categories.id = imitation_products.category_id").
		Joins("JOIN imitation_sub_categories ON imitation_sub_categories.id = imitation_products.sub_category_id").
		Where("imitation_products.is_active = ? AND imitation_categories.is_active = ? AND imitation_sub_categories.is_active = ?",
			true, true, true)
}

func collectGold(q *gorm.DB) ([]models.CatalogProduct, error) {
	var rows []models.GoldProduct
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.CatalogProduct, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func collectSilver(q *gorm.DB) ([]models.CatalogProduct, error) {
	var rows []models.SilverProduct
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.CatalogProduct, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func collectImitation(q *gorm.DB) ([]models.CatalogProduct, error) {
	var rows []models.ImitationProduct
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.CatalogProduct, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func scoped(db *gorm.DB, material models.MaterialType) (*gorm.DB, func(*gorm.DB) ([]models.CatalogProduct, error), error) {
	switch material {
	case models.MaterialGold:
		return goldScope(db), collectGold, nil
	case models.MaterialSilver:
		return silverScope(db), collectSilver, nil
	case models.MaterialImitation:
		return imitationScope(db), collectImitation, nil
	}
	return nil, nil, ErrUnknownMaterial
}

// AvailableProducts lists every customer-visible product of one material,
// newest first. An inactive master switch hides the whole material.
func AvailableProducts(db *gorm.DB, material models.MaterialType) ([]models.CatalogProduct, error) {
	active, err := ActiveMaterials(db)
	if err != nil {
		return nil, err
	}
	if !active[material] {
		return nil, nil
	}
	q, collect, err := scoped(db, material)
	if err != nil {
		return nil, err
	}
	return collect(q.Order("created_at DESC"))
}

// AvailableByCategory lists visible products under one category.
func AvailableByCategory(db *gorm.DB, material models.MaterialType, categoryID uint) ([]models.CatalogProduct, error) {
	active, err := ActiveMaterials(db)
	if err != nil {
		return nil, err
	}
	if !active[material] {
		return nil, nil
	}
	q, collect, err := scoped(db, material)
	if err != nil {
		return nil, err
	}
	return collect(q.Where(tableName(material)+".category_id = ?", categoryID).Order("created_at DESC"))
}

// AvailableBySubCategory lists visible products under one subcategory.
func AvailableBySubCategory(db *gorm.DB, material models.MaterialType, subCategoryID uint) ([]models.CatalogProduct, error) {
	active, err := ActiveMaterials(db)
	if err != nil {
		return nil, err
	}
	if !active[material] {
		return nil, nil
	}
	q, collect, err := scoped(db, material)
	if err != nil {
		return nil, err
	}
	return collect(q.Where(tableName(material)+".sub_category_id = ?", subCategoryID).Order("created_at DESC"))
}

// AvailableProduct fetches one customer-visible product. Anything hidden by
// the scope filter reads as ErrNotFound, never as a distinct state.
func AvailableProduct(db *gorm.DB, material models.MaterialType, id uint) (models.CatalogProduct, error) {
	active, err := ActiveMaterials(db)
	if err != nil {
		return nil, err
	}
	if !active[material] {
		return nil, ErrNotFound
	}
	q, collect, err := scoped(db, material)
	if err != nil {
		return nil, err
	}
	products, err := collect(q.Where(tableName(material)+".id = ?", id).Limit(1))
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	return products[0], nil
}

func tableName(material models.MaterialType) string {
	switch material {
	case models.MaterialGold:
		return "gold_products"
	case models.MaterialSilver:
		return "silver_products"
	default:
		return "imitation_products"
	}
}

// IsAvailable checks the full availability predicate for a single product.
// A dangling category or subcategory link fails closed.
func IsAvailable(db *gorm.DB, p models.CatalogProduct) bool {
	if p == nil || !p.Active() {
		return false
	}
	switch v := p.(type) {
	case *models.GoldProduct:
		var cat models.GoldCategory
		var sub models.GoldSubCategory
		if err := db.First(&cat, v.CategoryID).Error; err != nil {
			return false
		}
		if err := db.First(&sub, v.SubCategoryID).Error; err != nil {
			return false
		}
		return cat.IsActive && sub.IsActive
	case *models.SilverProduct:
		var cat models.SilverCategory
		var sub models.SilverSubCategory
		if err := db.First(&cat, v.CategoryID).Error; err != nil {
			return false
		}
		if err := db.First(&sub, v.SubCategoryID).Error; err != nil {
			return false
		}
		return cat.IsActive && sub.IsActive
	case *models.ImitationProduct:
		var cat models.ImitationCategory
		var sub models.ImitationSubCategory
		if err := db.First(&cat, v.CategoryID).Error; err != nil {
			return false
		}
		if err := db.First(&sub, v.SubCategoryID).Error; err != nil {
			return false
		}
		return cat.IsActive && sub.IsActive
	}
	return false
}

// RelatedProducts returns up to limit other visible products from the same
// category, in random order.
func RelatedProducts(db *gorm.DB, p models.CatalogProduct, limit int) ([]models.CatalogProduct, error) {
	ref := p.Ref()
	q, collect, err := scoped(db, ref.Material)
	if err != nil {
		return nil, err
	}
	table := tableName(ref.Material)
	var categoryID uint
	switch v := p.(type) {
	case *models.GoldProduct:
		categoryID = v.CategoryID
	case *models.SilverProduct:
		categoryID = v.CategoryID
	case *models.ImitationProduct:
		categoryID = v.CategoryID
	}
	return collect(q.
		Where(table+".category_id = ?", categoryID).
		Where(table+".id <> ?", ref.ProductID).
		Order("random()").
		Limit(limit))
}

// AllProducts is the administrative accessor: every product of one material,
// ignoring activation state entirely.
func AllProducts(db *gorm.DB, material models.MaterialType) ([]models.CatalogProduct, error) {
	switch material {
	case models.MaterialGold:
		return collectGold(db.Model(&models.GoldProduct{}).Order("created_at DESC"))
	case models.MaterialSilver:
		return collectSilver(db.Model(&models.SilverProduct{}).Order("created_at DESC"))
	case models.MaterialImitation:
		return collectImitation(db.Model(&models.ImitationProduct{}).Order("created_at DESC"))
	}
	return nil, ErrUnknownMaterial
}
