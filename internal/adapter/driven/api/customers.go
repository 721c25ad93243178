package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/entity"
)

// GetCustomers retorna a lista de clientes. sortBy e name só entram na query quando definidos.
func (c *Client) GetCustomers(ctx context.Context, query entity.CustomerQuery) ([]entity.Customer, error) {
	params := url.Values{}
	if query.SortBy != entity.SortNone {
		params.Add("sortBy", string(query.SortBy))
	}
	if query.Name != "" {
		params.Add("name", query.Name)
	}
	return Get[[]entity.Customer](ctx, c, withQuery("/api/customers", params), nil)
}

// GetCustomerPurchases retorna as compras de um cliente específico.
func (c *Client) GetCustomerPurchases(ctx context.Context, customerID int64) ([]entity.Purchase, error) {
	return Get[[]entity.Purchase](ctx, c, fmt.Sprintf("/api/customers/%d/purchases", customerID), nil)
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}
