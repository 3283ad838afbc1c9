// internal/database/seed.go
package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/models"
)

var seedOwners = []models.Owner{
	{Name: "Sarah Chen", Email: "sarah.chen@company.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Sarah"},
	{Name: "Marcus Johnson", Email: "marcus.johnson@company.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Marcus"},
	{Name: "Elena Rodriguez", Email: "elena.rodriguez@company.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=Elena"},
	{Name: "James Wilson", Email: "james.wilson@company.com", Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=James"},
}

var seedProducts = []models.Product{
	{Name: "Wireless Bluetooth Headphones", SKU: "WBH-001", Price: 79.99, Inventory: 150, Status: models.ProductStatusActive},
	{Name: "USB-C Charging Cable", SKU: "UCC-002", Price: 12.99, Inventory: 500, Status: models.ProductStatusActive},
	{Name: "Laptop Stand Aluminum", SKU: "LSA-003", Price: 45.99, Inventory: 75, Status: models.ProductStatusActive},
	{Name: "Mechanical Keyboard RGB", SKU: "MKR-004", Price: 129.99, Inventory: 30, Status: models.ProductStatusActive},
	{Name: "Wireless Mouse Ergonomic", SKU: "WME-005", Price: 34.99, Inventory: 200, Status: models.ProductStatusActive},
	{Name: "Monitor Light Bar", SKU: "MLB-006", Price: 59.99, Inventory: 8, Status: models.ProductStatusActive},
	{Name: "Webcam HD 1080p", SKU: "WHD-007", Price: 69.99, Inventory: 45, Status: models.ProductStatusDraft},
	{Name: "Desk Mat XL", SKU: "DMX-008", Price: 29.99, Inventory: 120, Status: models.ProductStatusActive},
	{Name: "Phone Stand Adjustable", SKU: "PSA-009", Price: 19.99, Inventory: 300, Status: models.ProductStatusActive},
	{Name: "Cable Management Kit", SKU: "CMK-010", Price: 24.99, Inventory: 5, Status: models.ProductStatusArchived},
	{Name: "USB Hub 7-Port", SKU: "UH7-011", Price: 39.99, Inventory: 60, Status: models.ProductStatusActive},
	{Name: "Portable SSD 1TB", SKU: "PS1-012", Price: 109.99, Inventory: 25, Status: models.ProductStatusActive},
}

// SeedDemoData loads the demo owners and products when both tables are
// empty. It never touches existing data.
func SeedDemoData(db *gorm.DB) error {
	var ownerCount int64
	if err := db.Model(&models.Owner{}).Count(&ownerCount).Error; err != nil {
		return fmt.Errorf("failed to count owners: %w", err)
	}
	if ownerCount > 0 {
		return nil
	}

	logrus.Info("Seeding demo data...")

	owners := make([]models.Owner, len(seedOwners))
	copy(owners, seedOwners)
	if err := db.Create(&owners).Error; err != nil {
		return fmt.Errorf("failed to seed owners: %w", err)
	}

	products := make([]models.Product, len(seedProducts))
	copy(products, seedProducts)
	for i := range products {
		products[i].OwnerID = owners[i%len(owners)].ID
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	logrus.Infof("Seeded %d owners and %d products", len(owners), len(products))
	return nil
}
