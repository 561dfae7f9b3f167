package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"arogya360-portal/internal/analysis"
	"arogya360-portal/internal/events"
	"arogya360-portal/internal/models"
	"arogya360-portal/internal/repository"
	"arogya360-portal/internal/storage"
	"arogya360-portal/internal/store"

	"github.com/rs/zerolog"
)

// --- MockAuditRecorder ---
var _ repository.AuditRecorder = (*MockAuditRecorder)(nil)

type auditEntry struct {
	Role    models.Role
	Action  string
	Details string
}

type MockAuditRecorder struct {
	mu      sync.Mutex
	Entries []auditEntry
	Err     error
}

func (m *MockAuditRecorder) CreateAuditLog(role models.Role, action string, details string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, auditEntry{Role: role, Action: action, Details: details})
	return m.Err
}

func (m *MockAuditRecorder) Actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	actions := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		actions = append(actions, e.Action)
	}
	return actions
}

// --- MockAnalyzer ---
var _ analysis.Analyzer = (*MockAnalyzer)(nil)

type MockAnalyzer struct {
	AnalyzeFunc func(ctx context.Context, symptoms, history, vitals string) string
}

func (m *MockAnalyzer) Analyze(ctx context.Context, symptoms, history, vitals string) string {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, symptoms, history, vitals)
	}
	return analysis.FallbackMessage
}

// --- MockPublisher ---
var _ events.Publisher = (*MockPublisher)(nil)

type publishedEvent struct {
	RoutingKey string
	Payload    any
}

type MockPublisher struct {
	mu        sync.Mutex
	Published []publishedEvent
	Err       error
}

func (m *MockPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Published = append(m.Published, publishedEvent{RoutingKey: routingKey, Payload: payload})
	return nil
}

func (m *MockPublisher) Close() error { return nil }

func newTestStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	adapter := storage.NewAdapter(storage.NewMemoryMedium(), "arogya360", zerolog.Nop())
	base := []store.Option{
		store.WithClock(func() time.Time { return time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC) }),
		store.WithPricer(store.PricerFunc(func([]string) float64 { return 250 })),
	}
	return store.New(context.Background(), adapter, append(base, opts...)...)
}
