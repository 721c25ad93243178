package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/entity"
	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV grava o relatório em seções (frequência, clientes e compras) separadas por uma linha vazia.
func (r *ExportRepositoryImpl) ExportToCSV(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	records := [][]string{
		{"Generated At", report.GeneratedAt.Format(time.RFC3339)},
		{"API", report.BaseURL},
		{"Period", periodText(report)},
		{},
		{"Price Range", "Label (10k KRW)", "Purchases"},
	}
	for _, row := range report.Frequency {
		records = append(records, []string{row.Range, row.Label, strconv.FormatInt(row.Count, 10)})
	}
	if report.ChartError != "" {
		records = append(records, []string{"Error", report.ChartError})
	}

	records = append(records, []string{}, []string{"Customer ID", "Name", "Purchases", "Total Amount"})
	for _, c := range report.Customers {
		records = append(records, []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			optionalInt(c.Count),
			optionalFloat(c.TotalAmount),
		})
	}
	if report.CustomersError != "" {
		records = append(records, []string{"Error", report.CustomersError})
	}

	if report.SelectedCustomerID != nil {
		records = append(records,
			[]string{},
			[]string{"Purchases of customer", strconv.FormatInt(*report.SelectedCustomerID, 10)},
			[]string{"Date", "Image", "Product", "Quantity", "Price"},
		)
		for _, p := range report.Purchases {
			records = append(records, []string{
				p.Date,
				p.ImgSrc,
				p.Product,
				strconv.FormatInt(p.Quantity, 10),
				optionalFloat(p.Price),
			})
		}
		if report.PurchasesError != "" {
			records = append(records, []string{"Error", report.PurchasesError})
		}
	}

	for _, record := range records {
		for i := range record {
			record[i] = cleanRichTags(record[i])
		}
	}
	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(report entity.DashboardReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawTable := func(widths []float64, header []string, rows [][]string) {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for i, h := range header {
			pdf.CellFormat(widths[i], 7, tr(h), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
		for _, row := range rows {
			for i, cell := range row {
				pdf.CellFormat(widths[i], 6, tr(truncate(cleanRichTags(cell), 48)), "", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	drawError := func(message string) {
		if message == "" {
			return
		}
		pdf.SetFont("Arial", "I", 9)
		pdf.SetTextColor(192, 0, 0)
		pdf.MultiCell(190, 5, tr(message), "", "L", false)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.Ln(4)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by Customer Analytics Dashboard (Go) | %s", report.GeneratedAt.Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Customer Analytics Dashboard"), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  API: %s | Period: %s", report.BaseURL, periodText(report))), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	drawTitle("Purchase Frequency by Price Range")
	frequencyRows := make([][]string, 0, len(report.Frequency))
	for _, row := range report.Frequency {
		frequencyRows = append(frequencyRows, []string{row.Range, row.Label, strconv.FormatInt(row.Count, 10)})
	}
	drawTable([]float64{70, 60, 60}, []string{"Price Range", "Label (10k KRW)", "Purchases"}, frequencyRows)
	drawError(report.ChartError)

	drawTitle(fmt.Sprintf("Customers (search: %s, sort: %s)", orDash(report.NameQuery), orDash(string(report.SortBy))))
	customerRows := make([][]string, 0, len(report.Customers))
	for _, c := range report.Customers {
		customerRows = append(customerRows, []string{
			strconv.FormatInt(c.ID, 10), c.Name, optionalInt(c.Count), optionalFloat(c.TotalAmount),
		})
	}
	drawTable([]float64{25, 75, 40, 50}, []string{"ID", "Name", "Purchases", "Total Amount"}, customerRows)
	drawError(report.CustomersError)

	if report.SelectedCustomerID != nil {
		drawTitle(fmt.Sprintf("Purchases of customer #%d", *report.SelectedCustomerID))
		purchaseRows := make([][]string, 0, len(report.Purchases))
		for _, p := range report.Purchases {
			purchaseRows = append(purchaseRows, []string{
				p.Date, p.Product, strconv.FormatInt(p.Quantity, 10), optionalFloat(p.Price),
			})
		}
		drawTable([]float64{55, 75, 25, 35}, []string{"Date", "Product", "Quantity", "Price"}, purchaseRows)
		drawError(report.PurchasesError)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}

func periodText(report entity.DashboardReport) string {
	if report.From == "" || report.To == "" {
		return "all time"
	}
	return report.From + " ~ " + report.To
}

func optionalInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func optionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
