package catalog

import (
	"sort"
	"strings"

	"github.com/Henilshingala/JiyashCreation/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Sort string

const (
	SortNewest    Sort = "newest"
	SortOldest    Sort = "oldest"
	SortPriceLow  Sort = "price_low"
	SortPriceHigh Sort = "price_high"
	SortName      Sort = "name"
)

// Filters narrows a cross-material search. Price bounds apply to the stored
// selling price; the caller re-sorts after display pricing so ordering
// matches what the user sees.
type Filters struct {
	Query    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// SearchAvailable gathers customer-visible products across every material
// whose master switch is on. Results come back unsorted; apply display
// pricing, then SortProducts.
func SearchAvailable(db *gorm.DB, f Filters) ([]models.CatalogProduct, error) {
	active, err := ActiveMaterials(db)
	if err != nil {
		return nil, err
	}
	var all []models.CatalogProduct
	for _, m := range models.Materials() {
		if !active[m] {
			continue
		}
		q, collect, err := scoped(db, m)
		if err != nil {
			return nil, err
		}
		table := tableName(m)
		if needle := strings.TrimSpace(f.Query); needle != "" {
			pattern := "%" + strings.ToLower(needle) + "%"
			q = q.Where("LOWER("+table+".name) LIKE ? OR LOWER("+table+".description) LIKE ?", pattern, pattern)
		}
		if f.MinPrice != nil {
			q = q.Where(table+".selling_price >= ?", f.MinPrice)
		}
		if f.MaxPrice != nil {
			q = q.Where(table+".selling_price <= ?", f.MaxPrice)
		}
		products, err := collect(q)
		if err != nil {
			return nil, err
		}
		all = append(all, products...)
	}
	return all, nil
}

// SortProducts orders a mixed product list in place. Price sorts use the
// display selling price when set, falling back to the stored price, so they
// must run after ApplyPricing.
func SortProducts(products []models.CatalogProduct, by Sort) {
	price := func(p models.CatalogProduct) decimal.Decimal {
		if d := p.Display(); !d.DisplaySellingPrice.IsZero() {
			return d.DisplaySellingPrice
		}
		_, selling := p.Prices()
		return selling
	}
	created := func(p models.CatalogProduct) int64 {
		switch v := p.(type) {
		case *models.GoldProduct:
			return v.CreatedAt.UnixNano()
		case *models.SilverProduct:
			return v.CreatedAt.UnixNano()
		case *models.ImitationProduct:
			return v.CreatedAt.UnixNano()
		}
		return 0
	}
	switch by {
	case SortOldest:
		sort.SliceStable(products, func(i, j int) bool { return created(products[i]) < created(products[j]) })
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return price(products[i]).LessThan(price(products[j])) })
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return price(products[i]).GreaterThan(price(products[j])) })
	case SortName:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].ProductName()) < strings.ToLower(products[j].ProductName())
		})
	default: // newest
		sort.SliceStable(products, func(i, j int) bool { return created(products[i]) > created(products[j]) })
	}
}
