package usecase

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// Placeholder exibido no lugar de valores ausentes.
	Placeholder = "-"
	// CurrencySuffix é a unidade monetária anexada aos valores.
	CurrencySuffix = "원"
	// rangeUnit converte valores em won para a escala de 만원 usada no eixo X.
	rangeUnit = 10000
)

var displayLocale = language.Korean

// FormatRangeLabel converte "<min> - <max>" em "min/10000~max/10000".
// Se algum dos limites não puder ser lido como inteiro o valor original é devolvido.
func FormatRangeLabel(value string) string {
	parts := strings.Split(value, " - ")
	if len(parts) < 2 {
		return value
	}
	lower, okLower := parseLeadingInt(parts[0])
	upper, okUpper := parseLeadingInt(parts[1])
	if !okLower || !okUpper {
		return value
	}

	lowerLabel := "0"
	if lower != 0 {
		lowerLabel = formatPlainNumber(math.Floor(lower / rangeUnit))
	}
	return lowerLabel + "~" + formatPlainNumber(upper/rangeUnit)
}

// parseLeadingInt lê o inteiro no início de s, ignorando espaços iniciais e
// qualquer sufixo não numérico ("10000원" vira 10000).
func parseLeadingInt(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign := 1.0
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return sign * v, true
}

func formatPlainNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// groupDigits formata v com separador de milhar e no máximo três casas decimais.
func groupDigits(v float64) string {
	p := message.NewPrinter(displayLocale)
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return p.Sprintf("%v", int64(v))
	}
	return p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatCount formata uma contagem com separador de milhar.
func FormatCount(count *int64) string {
	if count == nil {
		return Placeholder
	}
	return groupDigits(float64(*count))
}

// FormatAmount formata um valor monetário com separador de milhar e a unidade "원".
func FormatAmount(amount *float64) string {
	if amount == nil {
		return Placeholder
	}
	return groupDigits(*amount) + CurrencySuffix
}

func FormatID(id int64) string {
	if id == 0 {
		return Placeholder
	}
	return strconv.FormatInt(id, 10)
}

func FormatText(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func FormatQuantity(q int64) string {
	if q == 0 {
		return Placeholder
	}
	return strconv.FormatInt(q, 10)
}

// FormatImage devolve a URL da miniatura ou o placeholder.
func FormatImage(src string) string {
	if strings.TrimSpace(src) == "" {
		return Placeholder
	}
	return src
}

var localDateLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// FormatPurchaseDate trunca um timestamp ISO para o dia (YYYY-MM-DD) em UTC.
// Timestamps sem fuso são interpretados no horário local antes da conversão.
func FormatPurchaseDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return Placeholder
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC().Format("2006-01-02")
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.Format("2006-01-02")
	}
	for _, layout := range localDateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t.UTC().Format("2006-01-02")
		}
	}
	return Placeholder
}

// EndOfDay devolve o último instante (23:59:59.999) do dia de t no fuso de t.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999_000_000, t.Location())
}
