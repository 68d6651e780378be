package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domainRepo "github.com/kipkoechd/fabworks-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountOrdersByStatus(ctx context.Context) ([]domainRepo.OrderStatusCount, error) {
	var results []domainRepo.OrderStatusCount

	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM orders
		WHERE deleted_at IS NULL
		GROUP BY status
		ORDER BY status
	`).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetRevenueByCategory(ctx context.Context) ([]domainRepo.CategoryRevenueResult, error) {
	var results []domainRepo.CategoryRevenueResult

	var totalRevenue int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = 2 AND deleted_at IS NULL
	`).Scan(&totalRevenue).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Raw(`
		SELECT
			category,
			COALESCE(SUM(total), 0) as revenue,
			COUNT(*) as order_count
		FROM orders
		WHERE status = 2 AND deleted_at IS NULL
		GROUP BY category
		ORDER BY revenue DESC
	`).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	for i := range results {
		if totalRevenue > 0 {
			results[i].Percentage = float64(results[i].Revenue) / float64(totalRevenue) * 100
		}
	}

	return results, nil
}

func (r *analyticsRepository) GetTopCustomers(ctx context.Context, limit int) ([]domainRepo.TopCustomerResult, error) {
	var results []domainRepo.TopCustomerResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id as customer_id,
			c.name as customer_name,
			COALESCE(SUM(o.total), 0) as total_spent,
			COUNT(o.id) as order_count
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.status = 2 AND o.customer_id IS NOT NULL AND o.deleted_at IS NULL
		GROUP BY c.id, c.name
		ORDER BY total_spent DESC
		LIMIT ?
	`, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetDailyRevenue(ctx context.Context, days int) ([]domainRepo.DailyRevenueResult, error) {
	results := make([]domainRepo.DailyRevenueResult, 0, days)
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var revenue int64
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(total), 0)
			FROM orders
			WHERE status = 2 AND deleted_at IS NULL
			AND created_at >= ? AND created_at < ?
		`, startOfDay, endOfDay).Scan(&revenue).Error
		if err != nil {
			return nil, err
		}

		results = append(results, domainRepo.DailyRevenueResult{
			Date:    startOfDay,
			Revenue: revenue,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (int64, error) {
	var revenue int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = 2 AND deleted_at IS NULL
	`).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context) (int64, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var revenue int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = 2 AND deleted_at IS NULL AND created_at >= ?
	`, startOfMonth).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) CountLeadsByStatus(ctx context.Context) ([]domainRepo.LeadStatusCount, error) {
	var results []domainRepo.LeadStatusCount

	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM leads
		WHERE deleted_at IS NULL
		GROUP BY status
		ORDER BY status
	`).Scan(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}
