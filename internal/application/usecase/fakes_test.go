package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
)

// fakeRepo registra as chamadas e delega para funções configuráveis.
type fakeRepo struct {
	mu sync.Mutex

	customerQueries []entity.CustomerQuery
	purchaseIDs     []int64
	frequencyCalls  []entity.FrequencyQuery

	customersFn func(ctx context.Context, q entity.CustomerQuery) ([]entity.Customer, error)
	purchasesFn func(ctx context.Context, id int64) ([]entity.Purchase, error)
	frequencyFn func(ctx context.Context, q entity.FrequencyQuery) ([]entity.FrequencyBucket, error)
}

func (r *fakeRepo) GetCustomers(ctx context.Context, q entity.CustomerQuery) ([]entity.Customer, error) {
	r.mu.Lock()
	r.customerQueries = append(r.customerQueries, q)
	fn := r.customersFn
	r.mu.Unlock()
	if fn == nil {
		return []entity.Customer{}, nil
	}
	return fn(ctx, q)
}

func (r *fakeRepo) GetCustomerPurchases(ctx context.Context, id int64) ([]entity.Purchase, error) {
	r.mu.Lock()
	r.purchaseIDs = append(r.purchaseIDs, id)
	fn := r.purchasesFn
	r.mu.Unlock()
	if fn == nil {
		return []entity.Purchase{}, nil
	}
	return fn(ctx, id)
}

func (r *fakeRepo) GetPurchaseFrequency(ctx context.Context, q entity.FrequencyQuery) ([]entity.FrequencyBucket, error) {
	r.mu.Lock()
	r.frequencyCalls = append(r.frequencyCalls, q)
	fn := r.frequencyFn
	r.mu.Unlock()
	if fn == nil {
		return []entity.FrequencyBucket{}, nil
	}
	return fn(ctx, q)
}

func (r *fakeRepo) customerCalls() []entity.CustomerQuery {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.CustomerQuery(nil), r.customerQueries...)
}

func (r *fakeRepo) purchaseCalls() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.purchaseIDs...)
}

func (r *fakeRepo) frequencyQueries() []entity.FrequencyQuery {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.FrequencyQuery(nil), r.frequencyCalls...)
}

// fakeConsole guarda tudo o que seria impresso.
type fakeConsole struct {
	mu       sync.Mutex
	lines    []string
	errors   []string
	warnings []string
	success  []string
	tables   []*fakeTable
	charts   []types.BarChart
	panels   []string
}

func (c *fakeConsole) Print(a ...interface{}) { c.add(fmt.Sprint(a...)) }
func (c *fakeConsole) Printf(format string, a ...interface{}) {
	c.add(fmt.Sprintf(format, a...))
}
func (c *fakeConsole) Println(a ...interface{}) { c.add(fmt.Sprint(a...)) }

func (c *fakeConsole) LogInfo(format string, a ...interface{}) { c.add(fmt.Sprintf(format, a...)) }
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(message string) types.StatusHandle { return fakeStatus{} }

func (c *fakeConsole) CreateTable() types.TableInterface {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTable{}
	c.tables = append(c.tables, t)
	return t
}

func (c *fakeConsole) DisplayBarChart(chart types.BarChart) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.charts = append(c.charts, chart)
}

func (c *fakeConsole) Panel(title string, content string) string {
	c.mu.Lock()
	c.panels = append(c.panels, title)
	c.mu.Unlock()
	return title + "\n" + content
}

func (c *fakeConsole) add(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, s)
}

func (c *fakeConsole) output() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(c.lines, "\n")
}

func (c *fakeConsole) errorCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors)
}

type fakeStatus struct{}

func (fakeStatus) Update(string) {}
func (fakeStatus) Stop()         {}

type fakeTable struct {
	columns []string
	rows    [][]string
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

func (t *fakeTable) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, row)
}

func (t *fakeTable) Render() string {
	lines := []string{strings.Join(t.columns, " / ")}
	for _, row := range t.rows {
		lines = append(lines, strings.Join(row, " / "))
	}
	return strings.Join(lines, "\n")
}

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }
