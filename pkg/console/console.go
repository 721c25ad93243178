package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// barWidth é o comprimento máximo, em caracteres, da maior barra do gráfico.
const barWidth = 40

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightRed     = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// Panel envolve o conteúdo em uma caixa com título.
func (c *Console) Panel(title string, content string) string {
	return pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(content)
}

// DisplayBarChart exibe um gráfico de barras horizontal dentro de um painel.
func (c *Console) DisplayBarChart(chart types.BarChart) {
	fmt.Println("\n" + c.Panel(chart.Title, RenderBars(chart)))
}

// RenderBars desenha as barras como linhas de uma tabela: rótulo, valor e barra
// proporcional ao maior valor. Os rótulos dos eixos ficam no cabeçalho.
func RenderBars(chart types.BarChart) string {
	var maxValue int64
	for _, bar := range chart.Bars {
		if bar.Value > maxValue {
			maxValue = bar.Value
		}
	}

	tableData := pterm.TableData{
		{chart.XAxisLabel, chart.YAxisLabel, ""},
	}

	for _, bar := range chart.Bars {
		length := 0
		if maxValue > 0 {
			length = int(float64(bar.Value) / float64(maxValue) * barWidth)
		}
		if bar.Value > 0 && length == 0 {
			length = 1
		}
		tableData = append(tableData, []string{
			bar.Label,
			fmt.Sprintf("%d", bar.Value),
			pterm.FgLightBlue.Sprint(strings.Repeat("█", length)),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	rendered, _ := table.Srender()
	return rendered
}
