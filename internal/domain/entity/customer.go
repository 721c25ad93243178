package entity

// SortDirection é a ordenação por valor total de compras aceita pela API.
// O valor vazio significa "sem ordenação": a ordem fica a critério do servidor.
type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Customer represents a customer row returned by GET /api/customers.
// Count and TotalAmount are pointers so that a null in the payload can be told apart from zero.
type Customer struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Count       *int64   `json:"count"`
	TotalAmount *float64 `json:"totalAmount"`
}

// CustomerQuery carrega os filtros opcionais da listagem de clientes.
type CustomerQuery struct {
	SortBy SortDirection
	Name   string
}
