package repository

import (
	"context"

	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/entity"
)

// AnalyticsRepository defines the interface for the customer analytics REST API.
// Quando SortBy é omitido a ordem dos clientes é definida pelo servidor e não é garantida estável.
type AnalyticsRepository interface {
	GetCustomers(ctx context.Context, query entity.CustomerQuery) ([]entity.Customer, error)
	GetCustomerPurchases(ctx context.Context, customerID int64) ([]entity.Purchase, error)
	GetPurchaseFrequency(ctx context.Context, query entity.FrequencyQuery) ([]entity.FrequencyBucket, error)
}
