package usecase

import (
	"context"
	"sync"

	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
)

const MsgCustomersFailed = "고객 정보를 불러오는 데 실패했습니다."

// CustomerList mantém busca, ordenação e seleção da tabela de clientes.
// A lista é buscada novamente sempre que a busca confirmada ou a ordenação mudam.
type CustomerList struct {
	repo    repository.AnalyticsRepository
	loader  *loader[[]entity.Customer]
	details *PurchaseDetails

	mu          sync.Mutex
	mounted     bool
	searchTerm  string
	searchQuery string
	sortBy      entity.SortDirection
	selectedID  *int64
}

func NewCustomerList(repo repository.AnalyticsRepository, logger types.ErrorLogger) *CustomerList {
	return &CustomerList{
		repo:    repo,
		loader:  newLoader[[]entity.Customer](logger),
		details: NewPurchaseDetails(repo, logger),
	}
}

// Mount faz a primeira busca com os filtros atuais. Alterações feitas antes
// da montagem apenas ajustam o estado.
func (l *CustomerList) Mount(ctx context.Context) {
	l.mu.Lock()
	l.mounted = true
	l.mu.Unlock()
	l.refresh(ctx)
}

// Refresh busca a lista novamente com os filtros confirmados.
func (l *CustomerList) Refresh(ctx context.Context) {
	l.refresh(ctx)
}

func (l *CustomerList) refresh(ctx context.Context) {
	query := l.Query()
	l.loader.run(ctx, MsgCustomersFailed, func(ctx context.Context) ([]entity.Customer, error) {
		return l.repo.GetCustomers(ctx, query)
	})
}

// SetSearchTerm altera apenas o texto digitado; nada é buscado.
func (l *CustomerList) SetSearchTerm(term string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.searchTerm = term
}

func (l *CustomerList) SearchTerm() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.searchTerm
}

// CommitSearch confirma o texto digitado como busca (Enter ou botão de busca).
func (l *CustomerList) CommitSearch(ctx context.Context) {
	l.update(ctx, func() {
		l.searchQuery = l.searchTerm
	})
}

func (l *CustomerList) SortDescending(ctx context.Context) {
	l.update(ctx, func() {
		l.sortBy = entity.SortDesc
	})
}

func (l *CustomerList) SortAscending(ctx context.Context) {
	l.update(ctx, func() {
		l.sortBy = entity.SortAsc
	})
}

// Reset limpa ordenação, texto e busca confirmada, voltando aos parâmetros da montagem.
func (l *CustomerList) Reset(ctx context.Context) {
	l.update(ctx, func() {
		l.sortBy = entity.SortNone
		l.searchTerm = ""
		l.searchQuery = ""
	})
}

// update aplica mutate e busca a lista somente se a busca ou a ordenação mudaram.
func (l *CustomerList) update(ctx context.Context, mutate func()) {
	l.mu.Lock()
	before := l.queryLocked()
	mutate()
	changed := before != l.queryLocked()
	mounted := l.mounted
	l.mu.Unlock()

	if changed && mounted {
		l.refresh(ctx)
	}
}

// Query retorna os parâmetros usados na busca da lista.
func (l *CustomerList) Query() entity.CustomerQuery {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queryLocked()
}

func (l *CustomerList) queryLocked() entity.CustomerQuery {
	return entity.CustomerQuery{SortBy: l.sortBy, Name: l.searchQuery}
}

// Select alterna a seleção: o mesmo id fecha o detalhe, outro id substitui a seleção anterior.
func (l *CustomerList) Select(ctx context.Context, customerID int64) {
	l.mu.Lock()
	var next *int64
	if l.selectedID == nil || *l.selectedID != customerID {
		id := customerID
		next = &id
	}
	l.selectedID = next
	l.mu.Unlock()

	l.details.SetCustomer(ctx, next)
}

func (l *CustomerList) SelectedID() *int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.selectedID == nil {
		return nil
	}
	id := *l.selectedID
	return &id
}

func (l *CustomerList) Details() *PurchaseDetails {
	return l.details
}

func (l *CustomerList) State() FetchState[[]entity.Customer] {
	state, _ := l.loader.snapshot()
	return state
}

// Customers devolve a última lista carregada com sucesso.
func (l *CustomerList) Customers() []entity.Customer {
	_, last := l.loader.snapshot()
	return last
}
