package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/repository"
	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
)

// HTTPError é retornado quando a API responde com status fora da faixa 2xx.
// Apenas o código é preservado; o corpo da resposta de erro não é interpretado.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// RequestOptions customiza uma chamada feita por Client.Do.
// Headers informados aqui prevalecem sobre o Content-Type padrão.
type RequestOptions struct {
	Method string
	Header http.Header
	Body   io.Reader
}

// Client implementa o AnalyticsRepository sobre a API REST.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configura o Client.
type Option func(*Client)

// WithHTTPClient substitui o http.Client usado nas chamadas.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient cria um cliente para a API servida em baseURL.
// Nenhum timeout é aplicado: o cancelamento vem do contexto de cada chamada.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = types.DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewAnalyticsRepository cria o repositório de analytics apontando para baseURL.
func NewAnalyticsRepository(baseURL string, opts ...Option) repository.AnalyticsRepository {
	return NewClient(baseURL, opts...)
}

// BaseURL returns the API root every endpoint is resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executa a requisição para endpoint e decodifica o corpo JSON em out.
// out pode ser nil quando o corpo não interessa.
func (c *Client) Do(ctx context.Context, endpoint string, opts *RequestOptions, out interface{}) error {
	method := http.MethodGet
	var body io.Reader
	if opts != nil {
		if opts.Method != "" {
			method = opts.Method
		}
		body = opts.Body
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("error building request for %s: %w", endpoint, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if opts != nil {
		for key, values := range opts.Header {
			req.Header.Del(key)
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response from %s: %w", endpoint, err)
	}
	return nil
}

// Get é o atalho genérico para um GET que devolve o corpo já tipado.
func Get[T any](ctx context.Context, c *Client, endpoint string, opts *RequestOptions) (T, error) {
	var out T
	if err := c.Do(ctx, endpoint, opts, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
