package catalog

import (
	"github.com/Henilshingala/JiyashCreation/models"
	"gorm.io/gorm"
)

// CategoryNode and SubCategoryNode are the material-neutral shapes handed to
// the rendering layer for navigation and collection pages.
type CategoryNode struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Image         string            `json:"image"`
	SubCategories []SubCategoryNode `json:"subcategories,omitempty"`
}

type SubCategoryNode struct {
	ID         uint   `json:"id"`
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Image      string `json:"image"`
}

// ActiveCategories lists the active categories of one material with their
// active subcategories nested, ordered by name. An inactive master switch
// yields an empty list.
func ActiveCategories(db *gorm.DB, material models.MaterialType) ([]CategoryNode, error) {
	active, err := ActiveMaterials(db)
	if err != nil {
		return nil, err
	}
	if !active[material] {
		return nil, nil
	}
	nodes, err := categoryNodes(db, material)
	if err != nil {
		return nil, err
	}
	for i := range nodes {
		subs, err := ActiveSubCategories(db, material, nodes[i].ID)
		if err != nil {
			return nil, err
		}
		nodes[i].SubCategories = subs
	}
	return nodes, nil
}

func categoryNodes(db *gorm.DB, material models.MaterialType) ([]CategoryNode, error) {
	var nodes []CategoryNode
	switch material {
	case models.MaterialGold:
		var rows []models.GoldCategory
		if err := db.Where("is_active = ?", true).Order("name").Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			nodes = append(nodes, CategoryNode{ID: r.ID, Name: r.Name, Image: r.Image})
		}
	case models.MaterialSilver:
		var rows []models.SilverCategory
		if err := db.Where("is_active = ?", true).Order("name").Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			nodes = append(nodes, CategoryNode{ID: r.ID, Name: r.Name, Image: r.Image})
		}
	case models.MaterialImitation:
		var rows []models.ImitationCategory
		if err := db.Where("is_active = ?", true).Order("name").Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			nodes = append(nodes, CategoryNode{ID: r.ID, Name: r.Name, Image: r.Image})
		}
	default:
		return nil, ErrUnknownMaterial
	}
	return nodes, nil
}

// ActiveSubCategories lists the active subcategories under one category.
func ActiveSubCategories(db *gorm.DB, material models.MaterialType, categoryID uint) ([]SubCategoryNode, error) {
	var nodes []SubCategoryNode
	switch material {
	case models.MaterialGold:
		var rows []models.GoldSubCategory
		if err := db.Where("category_id = ? AND is_active = ?", categoryID, true).Order("name").Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			nodes = append(nodes, SubCategoryNode{ID: r.ID, CategoryID: r.CategoryID, Name: r.Name, Image: r.Image})
		}
	case models.MaterialSilver:
		var rows []models.SilverSubCategory
		if err := db.Where("category_id = ? AND is_active = ?", categoryID, true).Order("name").Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			nodes = append(nodes, SubCategoryNode{ID: r.ID, CategoryID: r.CategoryID, Name: r.Name, Image: r.Image})
		}
	case models.MaterialImitation:
		var rows []models.ImitationSubCategory
		if err := db.Where("category_id = ? AND is_active = ?", categoryID, true).Order("name").Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			nodes = append(nodes, SubCategoryNode{ID: r.ID, CategoryID: r.CategoryID, Name: r.Name, Image: r.Image})
		}
	default:
		return nil, ErrUnknownMaterial
	}
	return nodes, nil
}
