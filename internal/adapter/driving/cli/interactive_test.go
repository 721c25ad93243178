package cli

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/customer-analytics-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/customer-analytics-dashboard-go/internal/application/usecase"
	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
	"github.com/diillson/customer-analytics-dashboard-go/pkg/console"
)

// scriptedPrompter devolve respostas pré-definidas, na ordem.
type scriptedPrompter struct {
	answers []string
}

func (p *scriptedPrompter) next() (string, error) {
	if len(p.answers) == 0 {
		return "", errors.New("no more answers")
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (p *scriptedPrompter) Select(title string, options []string) (string, error) {
	return p.next()
}

func (p *scriptedPrompter) Text(title, defaultValue string) (string, error) {
	return p.next()
}

type stubRepo struct {
	mu        sync.Mutex
	customers []entity.CustomerQuery
	purchases []int64
	frequency []entity.FrequencyQuery
}

func (r *stubRepo) GetCustomers(ctx context.Context, q entity.CustomerQuery) ([]entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = append(r.customers, q)
	return []entity.Customer{{ID: 1, Name: "Kim"}, {ID: 2, Name: "Lee"}}, nil
}

func (r *stubRepo) GetCustomerPurchases(ctx context.Context, id int64) ([]entity.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases = append(r.purchases, id)
	return []entity.Purchase{}, nil
}

func (r *stubRepo) GetPurchaseFrequency(ctx context.Context, q entity.FrequencyQuery) ([]entity.FrequencyBucket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frequency = append(r.frequency, q)
	return []entity.FrequencyBucket{}, nil
}

func newTestSession(repo *stubRepo, answers ...string) *interactiveSession {
	dashboard := usecase.NewDashboardUseCase(repo, export.NewExportRepository(), nil, console.NewConsole())
	session := newInteractiveSession(dashboard, &types.Config{BaseURL: types.DefaultBaseURL})
	session.prompt = &scriptedPrompter{answers: answers}
	return session
}

func TestInteractiveSessionDrivesViews(t *testing.T) {
	repo := &stubRepo{}
	session := newTestSession(repo,
		actionStartDate, "2024-01-01",
		actionEndDate, "2024-01-31",
		actionSearch,
		actionName, "Kim",
		actionSortDesc,
		actionSelect, "#2 Lee",
		actionSelect, "#2 Lee",
		actionReset,
		actionQuit,
	)

	require.NoError(t, session.Run(context.Background()))

	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.Len(t, repo.frequency, 2)
	assert.Nil(t, repo.frequency[0].From)
	require.NotNil(t, repo.frequency[1].To)
	assert.Equal(t, 23, repo.frequency[1].To.Hour())

	assert.Equal(t, []entity.CustomerQuery{
		{},
		{Name: "Kim"},
		{Name: "Kim", SortBy: entity.SortDesc},
		{},
	}, repo.customers)
	assert.Equal(t, []int64{2}, repo.purchases)
	assert.Nil(t, session.session.Customers.SelectedID())
}

func TestInteractiveSessionIgnoresInvalidDate(t *testing.T) {
	repo := &stubRepo{}
	session := newTestSession(repo, actionStartDate, "yesterday", actionQuit)

	require.NoError(t, session.Run(context.Background()))

	start, _ := session.session.Chart.Dates()
	assert.Nil(t, start)
}

func TestInteractiveSessionEndsWhenInputCloses(t *testing.T) {
	session := newTestSession(&stubRepo{})
	assert.NoError(t, session.Run(context.Background()))
}

func TestInteractiveSessionExportUsesDefaultName(t *testing.T) {
	session := newTestSession(&stubRepo{})
	session.cfg.Dir = t.TempDir()
	cfg := session.exportConfig()
	assert.Equal(t, "customer_dashboard", cfg.ReportName)
	assert.Empty(t, session.cfg.ReportName)
}
