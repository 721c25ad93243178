package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
)

// Mensagens exibidas pelo gráfico de frequência.
const (
	MsgChartInitialLoadFailed = "초기 데이터를 불러오는 데 실패했습니다."
	MsgChartSearchFailed      = "데이터를 불러오는 데 실패했습니다."
	MsgChartDatesRequired     = "시작 날짜와 종료 날짜를 모두 선택해주세요."
	MsgChartDateOrder         = "시작 날짜는 종료 날짜보다 이전이거나 같아야 합니다."
)

// FrequencyChart mantém o estado do gráfico de frequência de compras por faixa de preço.
type FrequencyChart struct {
	repo   repository.AnalyticsRepository
	loader *loader[[]entity.FrequencyBucket]

	mu        sync.Mutex
	startDate *time.Time
	endDate   *time.Time
	from      *time.Time
	to        *time.Time
}

func NewFrequencyChart(repo repository.AnalyticsRepository, logger types.ErrorLogger) *FrequencyChart {
	return &FrequencyChart{
		repo:   repo,
		loader: newLoader[[]entity.FrequencyBucket](logger),
	}
}

// Mount busca a frequência sem filtro de datas.
func (c *FrequencyChart) Mount(ctx context.Context) {
	c.mu.Lock()
	c.from, c.to = nil, nil
	c.mu.Unlock()

	c.loader.run(ctx, MsgChartInitialLoadFailed, func(ctx context.Context) ([]entity.FrequencyBucket, error) {
		return c.repo.GetPurchaseFrequency(ctx, entity.FrequencyQuery{})
	})
}

func (c *FrequencyChart) SetStartDate(date *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startDate = copyTime(date)
}

func (c *FrequencyChart) SetEndDate(date *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.endDate = copyTime(date)
}

// Dates returns the currently selected start and end dates.
func (c *FrequencyChart) Dates() (*time.Time, *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyTime(c.startDate), copyTime(c.endDate)
}

// Search valida o intervalo selecionado e busca a frequência filtrada.
// Erros de validação não geram chamada de rede; ficam no estado como qualquer outra falha.
func (c *FrequencyChart) Search(ctx context.Context) {
	start, end := c.Dates()
	if start == nil || end == nil {
		c.loader.reject(MsgChartDatesRequired)
		return
	}
	if start.After(*end) {
		c.loader.reject(MsgChartDateOrder)
		return
	}

	from := *start
	to := EndOfDay(*end)

	c.mu.Lock()
	c.from, c.to = &from, &to
	c.mu.Unlock()

	c.loader.run(ctx, MsgChartSearchFailed, func(ctx context.Context) ([]entity.FrequencyBucket, error) {
		return c.repo.GetPurchaseFrequency(ctx, entity.FrequencyQuery{From: &from, To: &to})
	})
}

func (c *FrequencyChart) State() FetchState[[]entity.FrequencyBucket] {
	state, _ := c.loader.snapshot()
	return state
}

// Buckets devolve os últimos dados carregados com sucesso, mesmo sob um erro posterior.
func (c *FrequencyChart) Buckets() []entity.FrequencyBucket {
	_, last := c.loader.snapshot()
	return last
}

// AppliedRange retorna o intervalo enviado na última busca (nil para a carga inicial).
func (c *FrequencyChart) AppliedRange() (*time.Time, *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyTime(c.from), copyTime(c.to)
}

// Rows converte as faixas em linhas do gráfico com rótulos em 만원.
func (c *FrequencyChart) Rows() []entity.ChartRow {
	buckets := c.Buckets()
	rows := make([]entity.ChartRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, entity.ChartRow{
			Range: b.Range,
			Label: FormatRangeLabel(b.Range),
			Count: b.Count,
		})
	}
	return rows
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
