// internal/services/stats_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/murtazakhan2595/Ops-Products-Management-System/internal/models"
)

// Products with inventory below this count as low stock on the dashboard.
const lowInventoryThreshold = 10

type StatsService struct {
	db *gorm.DB
}

type DashboardStats struct {
	TotalProducts     int64               `json:"totalProducts"`
	ActiveProducts    int64               `json:"activeProducts"`
	DraftProducts     int64               `json:"draftProducts"`
	ArchivedProducts  int64               `json:"archivedProducts"`
	LowInventoryCount int64               `json:"lowInventoryCount"`
	OwnerCount        int64               `json:"ownerCount"`
	ProductsByOwner   []OwnerProductCount `json:"productsByOwner"`
	RecentProducts    []models.Product    `json:"recentProducts"`
}

type OwnerProductCount struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ProductCount int64     `json:"productCount"`
}

type statusCount struct {
	Status models.ProductStatus
	Count  int64
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// GetDashboardStats issues the six independent aggregate reads
// concurrently and merges the results.
func (s *StatsService) GetDashboardStats() (*DashboardStats, error) {
	var (
		stats        DashboardStats
		statusCounts []statusCount
		g            errgroup.Group
	)

	g.Go(func() error {
		return s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error
	})

	g.Go(func() error {
		return s.db.Model(&models.Product{}).
			Select("status, COUNT(*) AS count").
			Group("status").
			Scan(&statusCounts).Error
	})

	g.Go(func() error {
		return s.db.Model(&models.Product{}).
			Where("inventory < ?", lowInventoryThreshold).
			Count(&stats.LowInventoryCount).Error
	})

	g.Go(func() error {
		return s.db.Model(&models.Owner{}).Count(&stats.OwnerCount).Error
	})

	g.Go(func() error {
		return s.db.Model(&models.Owner{}).
			Select("owners.id, owners.name, COUNT(products.id) AS product_count").
			Joins("LEFT JOIN products ON products.owner_id = owners.id").
			Group("owners.id").
			Order("owners.name ASC").
			Scan(&stats.ProductsByOwner).Error
	})

	g.Go(func() error {
		return s.db.Model(&models.Product{}).
			Preload("Owner").
			Order("created_at DESC").
			Limit(5).
			Find(&stats.RecentProducts).Error
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard stats: %w", err)
	}

	// Missing status buckets default to 0.
	for _, sc := range statusCounts {
		switch sc.Status {
		case models.ProductStatusActive:
			stats.ActiveProducts = sc.Count
		case models.ProductStatusDraft:
			stats.DraftProducts = sc.Count
		case models.ProductStatusArchived:
			stats.ArchivedProducts = sc.Count
		}
	}

	if stats.ProductsByOwner == nil {
		stats.ProductsByOwner = []OwnerProductCount{}
	}
	if stats.RecentProducts == nil {
		stats.RecentProducts = []models.Product{}
	}

	return &stats, nil
}
