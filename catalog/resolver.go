package catalog

import (
	"github.com/Henilshingala/JiyashCreation/models"
	"gorm.io/gorm"
)

// ResolveRef fetches the concrete product row a ref points at. Preferred
// over ResolveByID whenever the caller knows the material type.
func ResolveRef(db *gorm.DB, ref models.ProductRef) (models.CatalogProduct, error) {
	switch ref.Material {
	case models.MaterialGold:
		var p models.GoldProduct
		if err := db.First(&p, ref.ProductID).Error; err != nil {
			return nil, refErr(err)
		}
		return &p, nil
	case models.MaterialSilver:
		var p models.SilverProduct
		if err := db.First(&p, ref.ProductID).Error; err != nil {
			return nil, refErr(err)
		}
		return &p, nil
	case models.MaterialImitation:
		var p models.ImitationProduct
		if err := db.First(&p, ref.ProductID).Error; err != nil {
			return nil, refErr(err)
		}
		return &p, nil
	}
	return nil, ErrUnknownMaterial
}

// ResolveByID locates a product from a bare numeric id by probing the gold,
// silver and imitation tables in that fixed order. The three tables share no
// id namespace, so a cross-material collision silently yields the
// earlier-probed row; callers that know the type should use ResolveRef.
func ResolveByID(db *gorm.DB, id uint) (models.CatalogProduct, error) {
	for _, m := range models.Materials() {
		p, err := ResolveRef(db, models.ProductRef{Material: m, ProductID: id})
		if err == nil {
			return p, nil
		}
		if err != ErrNotFound {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

// Dereference is the renderers' lookup: a dangling ref comes back as nil and
// the caller skips the row silently.
func Dereference(db *gorm.DB, ref models.ProductRef) models.CatalogProduct {
	p, err := ResolveRef(db, ref)
	if err != nil {
		return nil
	}
	return p
}

func refErr(err error) error {
	if err == gorm.ErrRecordNotFound {
		return ErrNotFound
	}
	return err
}
