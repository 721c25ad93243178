package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/customer-analytics-dashboard-go/internal/domain/entity"
)

type requestLog struct {
	mu   sync.Mutex
	reqs []*http.Request
}

func (l *requestLog) add(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reqs = append(l.reqs, r.Clone(context.Background()))
}

func (l *requestLog) all() []*http.Request {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]*http.Request(nil), l.reqs...)
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *requestLog) {
	t.Helper()
	log := &requestLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL), log
}

func TestGetCustomersOmitsUnsetParams(t *testing.T) {
	client, seen := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"Kim","count":5,"totalAmount":120000}]`))
	})

	customers, err := client.GetCustomers(context.Background(), entity.CustomerQuery{})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, int64(1), customers[0].ID)
	assert.Equal(t, "Kim", customers[0].Name)
	require.NotNil(t, customers[0].Count)
	assert.Equal(t, int64(5), *customers[0].Count)
	require.NotNil(t, customers[0].TotalAmount)
	assert.Equal(t, 120000.0, *customers[0].TotalAmount)

	require.Len(t, seen.all(), 1)
	req := seen.all()[0]
	assert.Equal(t, "/api/customers", req.URL.Path)
	assert.Empty(t, req.URL.RawQuery)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestGetCustomersSerializesSortAndName(t *testing.T) {
	client, seen := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.GetCustomers(context.Background(), entity.CustomerQuery{SortBy: entity.SortDesc, Name: "김 철수"})
	require.NoError(t, err)

	q := seen.all()[0].URL.Query()
	assert.Equal(t, "desc", q.Get("sortBy"))
	assert.Equal(t, "김 철수", q.Get("name"))
}

func TestGetCustomersNullFields(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":2,"name":"Lee","count":null,"totalAmount":null}]`))
	})

	customers, err := client.GetCustomers(context.Background(), entity.CustomerQuery{})
	require.NoError(t, err)
	assert.Nil(t, customers[0].Count)
	assert.Nil(t, customers[0].TotalAmount)
}

func TestGetCustomerPurchasesPath(t *testing.T) {
	client, seen := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"date":"2024-03-05T10:00:00.000Z","quantity":2,"product":"Mug","price":15000,"imgSrc":"http://img/1.png"}]`))
	})

	purchases, err := client.GetCustomerPurchases(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, "Mug", purchases[0].Product)
	assert.Equal(t, int64(2), purchases[0].Quantity)
	assert.Equal(t, "/api/customers/42/purchases", seen.all()[0].URL.Path)
}

func TestGetPurchaseFrequencyRange(t *testing.T) {
	client, seen := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"range":"0 - 10000","count":3}]`))
	})

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 999_000_000, time.UTC)
	buckets, err := client.GetPurchaseFrequency(context.Background(), entity.FrequencyQuery{From: &from, To: &to})
	require.NoError(t, err)
	assert.Equal(t, []entity.FrequencyBucket{{Range: "0 - 10000", Count: 3}}, buckets)

	q := seen.all()[0].URL.Query()
	assert.Equal(t, "2024-01-01T00:00:00.000Z", q.Get("from"))
	assert.Equal(t, "2024-01-31T23:59:59.999Z", q.Get("to"))
}

func TestGetPurchaseFrequencyWithoutRange(t *testing.T) {
	client, seen := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.GetPurchaseFrequency(context.Background(), entity.FrequencyQuery{})
	require.NoError(t, err)
	assert.Equal(t, "/api/purchase-frequency", seen.all()[0].URL.Path)
	assert.Empty(t, seen.all()[0].URL.RawQuery)
}

func TestNon2xxReturnsHTTPError(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"down"}`))
	})

	_, err := client.GetCustomers(context.Background(), entity.CustomerQuery{})
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, "http error: status 503", httpErr.Error())
}

func TestDoMergesCallerHeaders(t *testing.T) {
	client, seen := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	opts := &RequestOptions{
		Method: http.MethodPost,
		Header: http.Header{"Content-Type": {"text/plain"}, "X-Trace": {"abc"}},
	}
	require.NoError(t, client.Do(context.Background(), "/api/ping", opts, nil))

	req := seen.all()[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "text/plain", req.Header.Get("Content-Type"))
	assert.Equal(t, "abc", req.Header.Get("X-Trace"))
}

func TestDoHonoursContextCancellation(t *testing.T) {
	release := make(chan struct{})
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.GetCustomers(ctx, entity.CustomerQuery{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewClientDefaults(t *testing.T) {
	assert.Equal(t, "http://localhost:4000", NewClient("").BaseURL())
	assert.Equal(t, "http://api.local", NewClient("http://api.local/").BaseURL())
}
