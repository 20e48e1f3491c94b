// Package seed loads the initial reference data: the discount table,
// categories, suppliers and a starter product set. Each seeder is
// skipped when its table already has rows, so startup is idempotent.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"gorm.io/gorm"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"
)

//go:embed data/categories.json data/suppliers.json data/products.json
var seedFS embed.FS

// Run executes all seeders in dependency order. Products go through the
// real registration flow so they get the same validation and price
// computation as API requests.
func Run(db *gorm.DB, supplierRepo repositories.SupplierRepository, productService *services.ProductService) error {
	if err := seedDiscounts(db); err != nil {
		return fmt.Errorf("discount seeding failed: %w", err)
	}
	if err := seedCategories(db); err != nil {
		return fmt.Errorf("category seeding failed: %w", err)
	}
	if err := seedSuppliers(db, supplierRepo); err != nil {
		return fmt.Errorf("supplier seeding failed: %w", err)
	}
	if err := seedProducts(db, productService); err != nil {
		return fmt.Errorf("product seeding failed: %w", err)
	}
	return nil
}

// seedDiscounts creates one row per valid percentage, 0 through 99.
// The "0" row is the no-discount sentinel every product without an
// active discount points at; it must always exist.
func seedDiscounts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Discount{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Discounts already seeded")
		return nil
	}

	discounts := make([]models.Discount, 0, 100)
	for i := 0; i < 100; i++ {
		discounts = append(discounts, models.Discount{Value: strconv.Itoa(i)})
	}
	if err := db.Create(&discounts).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d discount rows", len(discounts))
	return nil
}

type categorySeed struct {
	Name          string   `json:"name"`
	SubCategories []string `json:"sub_categories"`
}

func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Categories already seeded")
		return nil
	}

	var categories []categorySeed
	if err := loadJSON("data/categories.json", &categories); err != nil {
		return err
	}

	for _, c := range categories {
		category := models.Category{Name: c.Name}
		if err := db.Create(&category).Error; err != nil {
			return err
		}
		for _, sub := range c.SubCategories {
			if err := db.Create(&models.SubCategory{Name: sub, CategoryID: category.ID}).Error; err != nil {
				return err
			}
		}
	}
	log.Printf("Seeded %d categories", len(categories))
	return nil
}

func seedSuppliers(db *gorm.DB, repo repositories.SupplierRepository) error {
	var count int64
	if err := db.Model(&models.Supplier{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Suppliers already seeded")
		return nil
	}

	var suppliers []models.Supplier
	if err := loadJSON("data/suppliers.json", &suppliers); err != nil {
		return err
	}

	for i := range suppliers {
		if err := repo.Create(&suppliers[i]); err != nil {
			log.Printf("Failed to seed supplier %s: %v", suppliers[i].Name, err)
		}
	}
	log.Printf("Seeded %d suppliers", len(suppliers))
	return nil
}

func seedProducts(db *gorm.DB, productService *services.ProductService) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Products already seeded")
		return nil
	}

	var requests []models.ProductRequest
	if err := loadJSON("data/products.json", &requests); err != nil {
		return err
	}

	seeded := 0
	for i := range requests {
		if _, err := productService.RegisterProduct(&requests[i]); err != nil {
			log.Printf("Failed to seed product %s: %v", requests[i].Name, err)
			continue
		}
		seeded++
	}
	log.Printf("Seeded %d products", seeded)
	return nil
}

func loadJSON(path string, v interface{}) error {
	data, err := seedFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
