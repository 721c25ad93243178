package usecase

import (
	"context"
	"sync"

	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
)

const MsgPurchasesFailed = "상세 구매 내역을 불러오는 데 실패했습니다."

// PurchaseDetails carrega as compras do cliente expandido na lista.
type PurchaseDetails struct {
	repo   repository.AnalyticsRepository
	loader *loader[[]entity.Purchase]

	mu         sync.Mutex
	customerID *int64
}

func NewPurchaseDetails(repo repository.AnalyticsRepository, logger types.ErrorLogger) *PurchaseDetails {
	return &PurchaseDetails{
		repo:   repo,
		loader: newLoader[[]entity.Purchase](logger),
	}
}

// SetCustomer troca o cliente exibido. nil limpa o painel sem chamada de rede e
// o mesmo id não dispara nova busca.
func (d *PurchaseDetails) SetCustomer(ctx context.Context, customerID *int64) {
	d.mu.Lock()
	if sameID(d.customerID, customerID) {
		d.mu.Unlock()
		return
	}
	if customerID == nil {
		d.customerID = nil
		d.mu.Unlock()
		d.loader.reset()
		return
	}
	id := *customerID
	d.customerID = &id
	d.mu.Unlock()

	d.fetch(ctx, id)
}

// Refresh busca novamente as compras do cliente atual.
func (d *PurchaseDetails) Refresh(ctx context.Context) {
	id := d.CustomerID()
	if id == nil {
		return
	}
	d.fetch(ctx, *id)
}

func (d *PurchaseDetails) fetch(ctx context.Context, id int64) {
	d.loader.run(ctx, MsgPurchasesFailed, func(ctx context.Context) ([]entity.Purchase, error) {
		return d.repo.GetCustomerPurchases(ctx, id)
	})
}

func (d *PurchaseDetails) CustomerID() *int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.customerID == nil {
		return nil
	}
	id := *d.customerID
	return &id
}

func (d *PurchaseDetails) State() FetchState[[]entity.Purchase] {
	state, _ := d.loader.snapshot()
	return state
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
