package api

import (
	"context"
	"net/url"
	"time"

	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/entity"
)

// ISOLayout reproduz o formato de Date.toISOString: UTC com milissegundos.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// FormatISO formata t em UTC no layout esperado pela API.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// GetPurchaseFrequency retorna a frequência de compras por faixa de preço.
func (c *Client) GetPurchaseFrequency(ctx context.Context, query entity.FrequencyQuery) ([]entity.FrequencyBucket, error) {
	params := url.Values{}
	if query.From != nil {
		params.Add("from", FormatISO(*query.From))
	}
	if query.To != nil {
		params.Add("to", FormatISO(*query.To))
	}
	return Get[[]entity.FrequencyBucket](ctx, c, withQuery("/api/purchase-frequency", params), nil)
}
