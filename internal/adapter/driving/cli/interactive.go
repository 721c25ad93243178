package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/diillson/customer-analytics-dashboard-go/internal/application/usecase"
	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
)

// Ações do menu interativo.
const (
	actionStartDate = "시작 날짜 선택"
	actionEndDate   = "종료 날짜 선택"
	actionSearch    = "조회"
	actionName      = "이름 검색"
	actionSortDesc  = "구매액 높은 순"
	actionSortAsc   = "구매액 낮은 순"
	actionReset     = "초기화"
	actionSelect    = "고객 선택"
	actionRefresh   = "새로고침"
	actionExport    = "보고서 내보내기"
	actionQuit      = "종료"
)

var menuOptions = []string{
	actionStartDate,
	actionEndDate,
	actionSearch,
	actionName,
	actionSortDesc,
	actionSortAsc,
	actionReset,
	actionSelect,
	actionRefresh,
	actionExport,
	actionQuit,
}

// errQuit encerra a sessão sem erro.
var errQuit = errors.New("quit")

// prompter abstrai os prompts do pterm.
type prompter interface {
	Select(title string, options []string) (string, error)
	Text(title, defaultValue string) (string, error)
}

type ptermPrompter struct{}

func (ptermPrompter) Select(title string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithDefaultText(title).
		WithOptions(options).
		WithMaxHeight(len(options)).
		Show()
}

func (ptermPrompter) Text(title, defaultValue string) (string, error) {
	return pterm.DefaultInteractiveTextInput.
		WithDefaultText(title).
		WithDefaultValue(defaultValue).
		Show()
}

// interactiveSession reproduz no terminal os botões e campos do dashboard.
type interactiveSession struct {
	dashboard *usecase.DashboardUseCase
	cfg       *types.Config
	prompt    prompter
	session   *usecase.Session
}

func newInteractiveSession(dashboard *usecase.DashboardUseCase, cfg *types.Config) *interactiveSession {
	return &interactiveSession{
		dashboard: dashboard,
		cfg:       cfg,
		prompt:    ptermPrompter{},
	}
}

// Run monta as views e repete menu -> ação -> renderização até o usuário sair.
func (s *interactiveSession) Run(ctx context.Context) error {
	s.session = s.dashboard.NewSession()
	if err := s.dashboard.MountSession(ctx, s.session); err != nil {
		return err
	}
	s.render()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := s.prompt.Select("대시보드", menuOptions)
		if err != nil {
			// Ctrl+C ou entrada fechada
			return nil
		}

		if err := s.apply(ctx, choice); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
		s.render()
	}
}

func (s *interactiveSession) apply(ctx context.Context, choice string) error {
	chart := s.session.Chart
	list := s.session.Customers

	switch choice {
	case actionStartDate, actionEndDate:
		start, end := chart.Dates()
		current := start
		if choice == actionEndDate {
			current = end
		}
		value, err := s.prompt.Text(choice+" (YYYY-MM-DD, 비우면 해제)", formatDate(current))
		if err != nil {
			return nil
		}
		date, err := parseDate(value)
		if err != nil {
			pterm.Warning.Printfln("%v", err)
			return nil
		}
		if choice == actionStartDate {
			chart.SetStartDate(date)
		} else {
			chart.SetEndDate(date)
		}
	case actionSearch:
		chart.Search(ctx)
	case actionName:
		value, err := s.prompt.Text(actionName, list.SearchTerm())
		if err != nil {
			return nil
		}
		list.SetSearchTerm(value)
		list.CommitSearch(ctx)
	case actionSortDesc:
		list.SortDescending(ctx)
	case actionSortAsc:
		list.SortAscending(ctx)
	case actionReset:
		list.Reset(ctx)
	case actionSelect:
		id, ok := s.chooseCustomer()
		if ok {
			list.Select(ctx, id)
		}
	case actionRefresh:
		list.Refresh(ctx)
		list.Details().Refresh(ctx)
	case actionExport:
		s.dashboard.ExportReport(ctx, s.dashboard.BuildReport(s.session, s.cfg.BaseURL), s.exportConfig())
	case actionQuit:
		return errQuit
	default:
		return fmt.Errorf("unknown action %q", choice)
	}
	return nil
}

// chooseCustomer lista os clientes carregados; escolher o já selecionado fecha o detalhe.
func (s *interactiveSession) chooseCustomer() (int64, bool) {
	customers := s.session.Customers.Customers()
	if len(customers) == 0 {
		pterm.Warning.Println("No customers loaded")
		return 0, false
	}

	options := make([]string, 0, len(customers))
	for _, c := range customers {
		options = append(options, fmt.Sprintf("#%d %s", c.ID, usecase.FormatText(c.Name)))
	}

	choice, err := s.prompt.Select(actionSelect, options)
	if err != nil {
		return 0, false
	}
	idText, _, _ := strings.Cut(strings.TrimPrefix(choice, "#"), " ")
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// exportConfig garante um nome de relatório quando a sessão não recebeu --report-name.
func (s *interactiveSession) exportConfig() *types.Config {
	cfg := *s.cfg
	if cfg.ReportName == "" {
		cfg.ReportName = "customer_dashboard"
	}
	return &cfg
}

func (s *interactiveSession) render() {
	s.dashboard.RenderChart(s.session.Chart)
	s.dashboard.RenderCustomers(s.session.Customers)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
