package repositories

import (
	"strings"

	"gorm.io/gorm"

	"storefront/internal/models"
)

// FilterScopes composes the optional catalog filter criteria into an
// ordered list of query scopes. An absent criterion contributes no
// scope at all, so an empty filter reduces to an unconstrained query.
// All present scopes combine with AND.
func FilterScopes(f models.ProductFilter) []func(*gorm.DB) *gorm.DB {
	var scopes []func(*gorm.DB) *gorm.DB

	if strings.TrimSpace(f.Name) != "" {
		scopes = append(scopes, hasNameOrDescription(f.Name))
	}
	if strings.TrimSpace(f.Category) != "" {
		scopes = append(scopes, hasCategory(f.Category))
	}
	if strings.TrimSpace(f.SubCategory) != "" {
		scopes = append(scopes, hasSubCategory(f.SubCategory))
	}
	if strings.TrimSpace(f.Manufacturer) != "" {
		scopes = append(scopes, hasManufacturer(f.Manufacturer))
	}
	// Price range is asymmetric on purpose: a lone max bound implies a
	// minimum of zero, but a lone min bound applies no price filter.
	if f.MinPrice != nil && *f.MinPrice >= 0 && f.MaxPrice != nil && *f.MaxPrice >= 0 {
		scopes = append(scopes, priceBetween(*f.MinPrice, *f.MaxPrice))
	} else if f.MinPrice == nil && f.MaxPrice != nil && *f.MaxPrice >= 0 {
		scopes = append(scopes, priceBetween(0, *f.MaxPrice))
	}
	if f.Rating != nil && *f.Rating >= 0 {
		scopes = append(scopes, hasMinimumRating(*f.Rating))
	}

	return scopes
}

// Paginate applies the page/size window with the catalog defaults:
// page 0 and size 10 when unset or non-positive.
func Paginate(page, size int) func(*gorm.DB) *gorm.DB {
	if page <= 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(page * size).Limit(size)
	}
}

func hasNameOrDescription(term string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + strings.ToLower(term) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?", pattern, pattern)
	}
}

func hasCategory(name string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN sub_categories AS parent_sub ON parent_sub.id = products.sub_category_id").
			Joins("JOIN categories ON categories.id = parent_sub.category_id").
			Where("categories.name = ?", name)
	}
}

func hasSubCategory(name string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN sub_categories ON sub_categories.id = products.sub_category_id").
			Where("sub_categories.name = ?", name)
	}
}

func hasManufacturer(name string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN manufacturers ON manufacturers.id = products.manufacturer_id").
			Where("manufacturers.name = ?", name)
	}
}

func priceBetween(min, max float64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("products.price BETWEEN ? AND ?", min, max)
	}
}

func hasMinimumRating(threshold float64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("products.average_rating >= ?", threshold)
	}
}
