package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderStatusCount represents how many orders hold a given status
type OrderStatusCount struct {
	Status int
	Count  int64
}

// CategoryRevenueResult represents revenue aggregated by order category
type CategoryRevenueResult struct {
	Category   string
	Revenue    int64 // cents
	OrderCount int
	Percentage float64
}

// TopCustomerResult represents a customer's spending data
type TopCustomerResult struct {
	CustomerID   uuid.UUID
	CustomerName string
	TotalSpent   int64 // cents
	OrderCount   int
}

// DailyRevenueResult represents order revenue for a single day
type DailyRevenueResult struct {
	Date    time.Time
	Revenue int64 // cents
}

// LeadStatusCount represents how many leads hold a given status
type LeadStatusCount struct {
	Status int
	Count  int64
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// CountOrdersByStatus returns order counts grouped by status
	CountOrdersByStatus(ctx context.Context) ([]OrderStatusCount, error)

	// GetRevenueByCategory returns completed-order revenue aggregated by
	// order category with percentages
	GetRevenueByCategory(ctx context.Context) ([]CategoryRevenueResult, error)

	// GetTopCustomers returns top customers by total spending on completed orders
	GetTopCustomers(ctx context.Context, limit int) ([]TopCustomerResult, error)

	// GetDailyRevenue returns completed-order revenue for the last N days
	GetDailyRevenue(ctx context.Context, days int) ([]DailyRevenueResult, error)

	// GetTotalRevenue returns total revenue from completed orders, in cents
	GetTotalRevenue(ctx context.Context) (int64, error)

	// GetMonthlyRevenue returns completed-order revenue for the current
	// month, in cents
	GetMonthlyRevenue(ctx context.Context) (int64, error)

	// CountLeadsByStatus returns lead counts grouped by status
	CountLeadsByStatus(ctx context.Context) ([]LeadStatusCount, error)
}
