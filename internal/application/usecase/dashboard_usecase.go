package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"

	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
)

// Textos fixos da interface.
const (
	ChartTitle        = "가격대별 구매 빈도 차트"
	ChartXAxisLabel   = "단위: 만원"
	ChartYAxisLabel   = "구매 수"
	CustomersTitle    = "고객 목록"
	LoadingText       = "로딩 중..."
	DetailLoadingText = "상세 내역 로딩 중..."
)

var (
	customerColumns = []string{"ID", "이름", "총 구매 횟수", "총 구매 금액"}
	purchaseColumns = []string{"구매날짜", "상품이미지", "상품명", "수량", "총 가격"}
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	exportRepo    repository.ExportRepository
	publisher     repository.ReportPublisher
	console       types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case. publisher may be nil.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	exportRepo repository.ExportRepository,
	publisher repository.ReportPublisher,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		exportRepo:    exportRepo,
		publisher:     publisher,
		console:       console,
	}
}

// Session agrupa as duas views montadas lado a lado no dashboard.
type Session struct {
	Chart     *FrequencyChart
	Customers *CustomerList
}

// NewSession cria as views ligadas ao repositório de analytics, ainda sem dados.
func (uc *DashboardUseCase) NewSession() *Session {
	return &Session{
		Chart:     NewFrequencyChart(uc.analyticsRepo, uc.console),
		Customers: NewCustomerList(uc.analyticsRepo, uc.console),
	}
}

// MountSession monta as duas views em paralelo; cada uma busca seus próprios dados.
func (uc *DashboardUseCase) MountSession(ctx context.Context, session *Session) error {
	var g errgroup.Group
	g.Go(func() error {
		session.Chart.Mount(ctx)
		return nil
	})
	g.Go(func() error {
		session.Customers.Mount(ctx)
		return nil
	})
	return g.Wait()
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs, cfg *types.Config) error {
	session := uc.NewSession()

	// Filtros da lista aplicados antes da montagem não disparam buscas extras
	switch entity.SortDirection(args.SortBy) {
	case entity.SortDesc:
		session.Customers.SortDescending(ctx)
	case entity.SortAsc:
		session.Customers.SortAscending(ctx)
	}
	if args.Name != "" {
		session.Customers.SetSearchTerm(args.Name)
		session.Customers.CommitSearch(ctx)
	}

	status := uc.console.Status(LoadingText)

	if err := uc.MountSession(ctx, session); err != nil {
		status.Stop()
		return err
	}

	if args.From != nil || args.To != nil {
		status.Update(fmt.Sprintf("%s (%s)", LoadingText, ChartTitle))
		session.Chart.SetStartDate(args.From)
		session.Chart.SetEndDate(args.To)
		session.Chart.Search(ctx)
	}

	if args.Select != nil {
		status.Update(DetailLoadingText)
		session.Customers.Select(ctx, *args.Select)
	}

	status.Stop()

	uc.RenderChart(session.Chart)
	uc.console.Println(pterm.FgGray.Sprint(strings.Repeat("─", 60)))
	uc.RenderCustomers(session.Customers)

	if cfg != nil {
		uc.ExportReport(ctx, uc.BuildReport(session, cfg.BaseURL), cfg)
	}

	return nil
}

// RenderChart exibe o gráfico de frequência conforme o estado atual.
func (uc *DashboardUseCase) RenderChart(chart *FrequencyChart) {
	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprint(ChartTitle))

	start, end := chart.Dates()
	uc.console.Println(fmt.Sprintf("Start Date: %s | End Date: %s", formatDateInput(start), formatDateInput(end)))

	state := chart.State()
	if msg, ok := state.Message(); ok {
		uc.console.Println(pterm.FgRed.Sprint(msg))
	}

	if state.Phase() == PhaseLoading {
		uc.console.Println(LoadingText)
		return
	}

	rows := chart.Rows()
	bars := make([]types.Bar, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, types.Bar{Label: row.Label, Value: row.Count})
	}

	uc.console.DisplayBarChart(types.BarChart{
		Title:      ChartTitle,
		XAxisLabel: ChartXAxisLabel,
		YAxisLabel: ChartYAxisLabel,
		Bars:       bars,
	})
}

// RenderCustomers exibe a tabela de clientes e, se houver, o detalhe do cliente selecionado.
func (uc *DashboardUseCase) RenderCustomers(list *CustomerList) {
	uc.console.Printf("\n%s\n", pterm.FgYellow.Sprint(CustomersTitle))

	query := list.Query()
	uc.console.Println(fmt.Sprintf("검색: %s | 정렬: %s", FormatText(query.Name), SortLabel(query.SortBy)))

	state := list.State()
	switch state.Phase() {
	case PhaseLoading:
		uc.console.Println(LoadingText)
		return
	case PhaseError:
		msg, _ := state.Message()
		uc.console.Println(pterm.FgRed.Sprint(msg))
		return
	}

	customers, _ := state.Data()
	selected := list.SelectedID()

	table := uc.console.CreateTable()
	for _, col := range customerColumns {
		table.AddColumn(col)
	}
	var selectedCustomer *entity.Customer
	for i := range customers {
		c := customers[i]
		table.AddRow(CustomerRow(c)...)
		if selected != nil && *selected == c.ID {
			selectedCustomer = &customers[i]
		}
	}
	uc.console.Print(table.Render())

	if selectedCustomer != nil {
		uc.RenderPurchaseDetails(*selectedCustomer, list.Details())
	}
}

// RenderPurchaseDetails exibe as compras do cliente expandido.
func (uc *DashboardUseCase) RenderPurchaseDetails(customer entity.Customer, details *PurchaseDetails) {
	title := fmt.Sprintf("#%d %s", customer.ID, FormatText(customer.Name))

	state := details.State()
	switch state.Phase() {
	case PhaseLoading:
		uc.console.Println(uc.console.Panel(title, DetailLoadingText))
		return
	case PhaseError:
		msg, _ := state.Message()
		uc.console.Println(uc.console.Panel(title, pterm.FgRed.Sprint(msg)))
		return
	}

	purchases, _ := state.Data()
	table := uc.console.CreateTable()
	for _, col := range purchaseColumns {
		table.AddColumn(col)
	}
	for _, p := range purchases {
		table.AddRow(PurchaseRow(p)...)
	}
	uc.console.Println(uc.console.Panel(title, table.Render()))
}

// CustomerRow formata um cliente nas colunas ID / 이름 / 총 구매 횟수 / 총 구매 금액.
func CustomerRow(c entity.Customer) []interface{} {
	return []interface{}{
		FormatID(c.ID),
		FormatText(c.Name),
		FormatCount(c.Count),
		FormatAmount(c.TotalAmount),
	}
}

// PurchaseRow formata uma compra nas colunas da tabela de detalhes.
func PurchaseRow(p entity.Purchase) []interface{} {
	return []interface{}{
		FormatPurchaseDate(p.Date),
		FormatImage(p.ImgSrc),
		FormatText(p.Product),
		FormatQuantity(p.Quantity),
		FormatAmount(p.Price),
	}
}

// SortLabel descreve a ordenação ativa como nos botões da lista.
func SortLabel(sortBy entity.SortDirection) string {
	switch sortBy {
	case entity.SortDesc:
		return "구매액 높은 순"
	case entity.SortAsc:
		return "구매액 낮은 순"
	default:
		return "기본"
	}
}

func formatDateInput(t *time.Time) string {
	if t == nil {
		return Placeholder
	}
	return t.Format("2006-01-02")
}

// BuildReport captura o que está exibido nas views para exportação.
func (uc *DashboardUseCase) BuildReport(session *Session, baseURL string) entity.DashboardReport {
	query := session.Customers.Query()
	report := entity.DashboardReport{
		GeneratedAt: time.Now(),
		BaseURL:     baseURL,
		SortBy:      query.SortBy,
		NameQuery:   query.Name,
		Frequency:   session.Chart.Rows(),
		Customers:   session.Customers.Customers(),
	}

	if from, to := session.Chart.AppliedRange(); from != nil && to != nil {
		report.From = from.Format(time.RFC3339)
		report.To = to.Format(time.RFC3339)
	}
	if msg, ok := session.Chart.State().Message(); ok {
		report.ChartError = msg
	}
	if msg, ok := session.Customers.State().Message(); ok {
		report.CustomersError = msg
	}

	if selected := session.Customers.SelectedID(); selected != nil {
		report.SelectedCustomerID = selected
		details := session.Customers.Details().State()
		if purchases, ok := details.Data(); ok {
			report.Purchases = purchases
		}
		if msg, ok := details.Message(); ok {
			report.PurchasesError = msg
		}
	}

	return report
}

// ExportReport grava o relatório nos formatos configurados e publica cada arquivo, se houver publisher.
func (uc *DashboardUseCase) ExportReport(ctx context.Context, report entity.DashboardReport, cfg *types.Config) {
	if cfg.ReportName == "" || len(cfg.ReportType) == 0 {
		return
	}

	for _, reportType := range cfg.ReportType {
		var (
			path string
			err  error
		)
		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(report, cfg.ReportName, cfg.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(report, cfg.ReportName, cfg.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(report, cfg.ReportName, cfg.Dir)
		default:
			uc.console.LogWarning("Unsupported report type: %s", reportType)
			continue
		}

		format := strings.ToUpper(reportType)
		if err != nil {
			uc.console.LogError("Failed to export dashboard to %s: %s", format, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported dashboard to %s: %s", format, path)

		if uc.publisher == nil {
			continue
		}
		location, err := uc.publisher.Publish(ctx, path)
		if err != nil {
			uc.console.LogError("Failed to publish %s report: %s", format, err)
			continue
		}
		uc.console.LogSuccess("Published %s report to %s", format, location)
	}
}
