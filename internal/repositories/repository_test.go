// internal/repositories/repository_test.go
package repositories_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/models"
)

// newTestDB opens an isolated in-memory sqlite database per test. A
// single connection is enforced so the concurrent list+count queries
// see the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Owner{}, &models.Product{}))
	return db
}

func createOwner(t *testing.T, db *gorm.DB, name string) *models.Owner {
	t.Helper()
	owner := &models.Owner{Name: name, Email: name + "@company.com"}
	require.NoError(t, db.Create(owner).Error)
	return owner
}

func createProduct(t *testing.T, db *gorm.DB, sku string, ownerID uuid.UUID, mutate func(*models.Product)) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:      "Product " + sku,
		SKU:       sku,
		Price:     10,
		Inventory: 100,
		Status:    models.ProductStatusActive,
		OwnerID:   ownerID,
	}
	if mutate != nil {
		mutate(product)
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
