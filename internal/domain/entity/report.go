package entity

import "time"

// ChartRow é uma barra do gráfico já com o rótulo formatado (unidade: 만원).
type ChartRow struct {
	Range string `json:"range"`
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// DashboardReport agrega tudo o que foi exibido no dashboard para exportação.
type DashboardReport struct {
	GeneratedAt time.Time `json:"generated_at"`
	BaseURL     string    `json:"base_url"`

	// Filtros ativos no momento da exportação
	From      string        `json:"from,omitempty"`
	To        string        `json:"to,omitempty"`
	SortBy    SortDirection `json:"sort_by,omitempty"`
	NameQuery string        `json:"name_query,omitempty"`

	Frequency []ChartRow `json:"frequency"`
	Customers []Customer `json:"customers"`

	SelectedCustomerID *int64     `json:"selected_customer_id,omitempty"`
	Purchases          []Purchase `json:"purchases,omitempty"`

	// Mensagens de erro exibidas inline em cada painel
	ChartError     string `json:"chart_error,omitempty"`
	CustomersError string `json:"customers_error,omitempty"`
	PurchasesError string `json:"purchases_error,omitempty"`
}
