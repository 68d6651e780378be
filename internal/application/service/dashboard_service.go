package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/kipkoechd/fabworks-api/internal/domain/enum"
	"github.com/kipkoechd/fabworks-api/internal/domain/repository"
	"github.com/kipkoechd/fabworks-api/pkg/pagination"
)

// DashboardService aggregates statistics for the operations console
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	customerRepo  repository.CustomerRepository
	productRepo   repository.ProductRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalCustomers      int64                  `json:"total_customers"`
	TotalProducts       int64                  `json:"total_products"`
	TotalOrders         int64                  `json:"total_orders"`
	OpenOrders          int64                  `json:"open_orders"`
	CompletedOrders     int64                  `json:"completed_orders"`
	NewLeads            int64                  `json:"new_leads"`
	TotalRevenue        float64                `json:"total_revenue"`
	MonthlyRevenue      float64                `json:"monthly_revenue"`
	DailyRevenueData    []DailyRevenuePoint    `json:"daily_revenue_data"`
	CategoryRevenueData []CategoryRevenuePoint `json:"category_revenue_data"`
	TopCustomers        []TopCustomerPoint     `json:"top_customers"`
}

// DailyRevenuePoint represents a daily revenue data point
type DailyRevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// CategoryRevenuePoint represents revenue by order category
type CategoryRevenuePoint struct {
	Category   string  `json:"category"`
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"order_count"`
	Percentage float64 `json:"percentage"`
}

// TopCustomerPoint represents a customer's spending summary
type TopCustomerPoint struct {
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	TotalSpent   float64   `json:"total_spent"`
	OrderCount   int       `json:"order_count"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	stats := &DashboardStats{}

	countParams := pagination.DefaultPagination()
	countParams.PerPage = 1 // We only need the count

	_, customerCount, err := s.customerRepo.List(ctx, userID, countParams, "", true)
	if err != nil {
		return nil, err
	}
	stats.TotalCustomers = customerCount

	_, productCount, err := s.productRepo.List(ctx, &repository.ProductFilterParams{Pagination: countParams})
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = productCount

	statusCounts, err := s.analyticsRepo.CountOrdersByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, sc := range statusCounts {
		stats.TotalOrders += sc.Count
		switch enum.OrderStatus(sc.Status) {
		case enum.OrderStatusNew, enum.OrderStatusProcessing:
			stats.OpenOrders += sc.Count
		case enum.OrderStatusCompleted:
			stats.CompletedOrders = sc.Count
		}
	}

	leadCounts, err := s.analyticsRepo.CountLeadsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, lc := range leadCounts {
		if enum.LeadStatus(lc.Status) == enum.LeadStatusNew {
			stats.NewLeads = lc.Count
		}
	}

	totalRevenue, err := s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = float64(totalRevenue) / 100

	monthlyRevenue, err := s.analyticsRepo.GetMonthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenue = float64(monthlyRevenue) / 100

	daily, err := s.analyticsRepo.GetDailyRevenue(ctx, 7)
	if err != nil {
		return nil, err
	}
	stats.DailyRevenueData = make([]DailyRevenuePoint, 0, len(daily))
	for _, d := range daily {
		stats.DailyRevenueData = append(stats.DailyRevenueData, DailyRevenuePoint{
			Date:    d.Date.Format("Jan 02"),
			Revenue: float64(d.Revenue) / 100,
		})
	}

	byCategory, err := s.analyticsRepo.GetRevenueByCategory(ctx)
	if err != nil {
		return nil, err
	}
	stats.CategoryRevenueData = make([]CategoryRevenuePoint, 0, len(byCategory))
	for _, c := range byCategory {
		stats.CategoryRevenueData = append(stats.CategoryRevenueData, CategoryRevenuePoint{
			Category:   c.Category,
			Revenue:    float64(c.Revenue) / 100,
			OrderCount: c.OrderCount,
			Percentage: c.Percentage,
		})
	}

	topCustomers, err := s.analyticsRepo.GetTopCustomers(ctx, 5)
	if err != nil {
		return nil, err
	}
	stats.TopCustomers = make([]TopCustomerPoint, 0, len(topCustomers))
	for _, tc := range topCustomers {
		stats.TopCustomers = append(stats.TopCustomers, TopCustomerPoint{
			CustomerID:   tc.CustomerID,
			CustomerName: tc.CustomerName,
			TotalSpent:   float64(tc.TotalSpent) / 100,
			OrderCount:   tc.OrderCount,
		})
	}

	return stats, nil
}
