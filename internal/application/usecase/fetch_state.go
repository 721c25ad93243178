package usecase

import (
	"context"
	"sync"

	"github.com/diillson/customer-analytics-dashboard-go/internal/shared/types"
)

// Phase identifica a variante ativa de um FetchState.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// FetchState is the tagged state of a view's data: Idle, Loading, Success(data) or Error(message).
// Only the payload of the active variant is meaningful.
type FetchState[T any] struct {
	phase   Phase
	data    T
	message string
}

func Idle[T any]() FetchState[T] {
	return FetchState[T]{phase: PhaseIdle}
}

func Loading[T any]() FetchState[T] {
	return FetchState[T]{phase: PhaseLoading}
}

func Succeeded[T any](data T) FetchState[T] {
	return FetchState[T]{phase: PhaseSuccess, data: data}
}

func Failed[T any](message string) FetchState[T] {
	return FetchState[T]{phase: PhaseError, message: message}
}

func (s FetchState[T]) Phase() Phase {
	return s.phase
}

// Data retorna os dados quando o estado é Success.
func (s FetchState[T]) Data() (T, bool) {
	if s.phase != PhaseSuccess {
		var zero T
		return zero, false
	}
	return s.data, true
}

// Message retorna a mensagem quando o estado é Error.
func (s FetchState[T]) Message() (string, bool) {
	if s.phase != PhaseError {
		return "", false
	}
	return s.message, true
}

// loader serializa as buscas de uma view. Cada busca recebe uma geração; iniciar
// outra cancela a anterior e o resultado só é aplicado se a geração ainda for a atual.
type loader[T any] struct {
	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	state      FetchState[T]
	last       T
	logger     types.ErrorLogger
}

func newLoader[T any](logger types.ErrorLogger) *loader[T] {
	return &loader[T]{state: Idle[T](), logger: logger}
}

// run executa fetch e retorna false quando o resultado foi descartado por uma busca mais nova.
func (l *loader[T]) run(ctx context.Context, failMessage string, fetch func(context.Context) (T, error)) bool {
	l.mu.Lock()
	gen := l.supersedeLocked()
	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.state = Loading[T]()
	l.mu.Unlock()

	data, err := fetch(fetchCtx)
	cancel()

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.generation {
		return false
	}
	l.cancel = nil
	if err != nil {
		if l.logger != nil {
			l.logger.LogError("%s: %v", failMessage, err)
		}
		l.state = Failed[T](failMessage)
		return true
	}
	l.state = Succeeded(data)
	l.last = data
	return true
}

// reject marca a view com erro sem chamada de rede, descartando buscas em andamento.
func (l *loader[T]) reject(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.supersedeLocked()
	l.state = Failed[T](message)
}

// reset volta ao estado Idle e esquece os últimos dados.
func (l *loader[T]) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.supersedeLocked()
	var zero T
	l.last = zero
	l.state = Idle[T]()
}

func (l *loader[T]) supersedeLocked() uint64 {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.generation++
	return l.generation
}

func (l *loader[T]) snapshot() (FetchState[T], T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state, l.last
}
