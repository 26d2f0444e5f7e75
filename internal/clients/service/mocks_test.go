package service

import (
	"context"

	"github.com/aussiebroadwan/clientbook/internal/clients/domain"
	"github.com/aussiebroadwan/clientbook/internal/clients/store"
	"github.com/stretchr/testify/mock"
)

type mockClients struct {
	mock.Mock
}

func (m *mockClients) FindByID(ctx context.Context, id int64) (domain.Client, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *mockClients) GetReference(ctx context.Context, id int64) store.Reference {
	args := m.Called(ctx, id)
	return args.Get(0).(store.Reference)
}

func (m *mockClients) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// Save accepts either a domain.Client or a func(domain.Client) domain.Client
// as its first return value.
func (m *mockClients) Save(ctx context.Context, c domain.Client) (domain.Client, error) {
	args := m.Called(ctx, c)
	if fn, ok := args.Get(0).(func(domain.Client) domain.Client); ok {
		return fn(c), args.Error(1)
	}
	return args.Get(0).(domain.Client), args.Error(1)
}

func (m *mockClients) FindAll(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Client], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Page[domain.Client]), args.Error(1)
}

func (m *mockClients) FindByIncomeGreaterThan(
	ctx context.Context,
	threshold float64,
	req domain.PageRequest,
) (domain.Page[domain.Client], error) {
	args := m.Called(ctx, threshold, req)
	return args.Get(0).(domain.Page[domain.Client]), args.Error(1)
}

type mockReference struct {
	mock.Mock
	id int64
}

func (r *mockReference) ID() int64 { return r.id }

func (r *mockReference) Resolve(ctx context.Context) (domain.Client, error) {
	args := r.Called(ctx)
	return args.Get(0).(domain.Client), args.Error(1)
}

// mockStore hands out the same mockClients inside and outside transactions
// and records how each transaction ended.
type mockStore struct {
	clients   *mockClients
	commits   int
	rollbacks int
}

func newMockStore() *mockStore {
	return &mockStore{clients: &mockClients{}}
}

func (s *mockStore) Clients() store.Clients         { return s.clients }
func (s *mockStore) ApplyMigrations() error         { return nil }
func (s *mockStore) Close() error                   { return nil }
func (s *mockStore) Ping(ctx context.Context) error { return nil }

func (s *mockStore) Tx(ctx context.Context) (store.Tx, error) {
	return &mockTx{mockStore: s}, nil
}

func (s *mockStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx := &mockTx{mockStore: s}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type mockTx struct {
	*mockStore
}

func (t *mockTx) Commit() error {
	t.commits++
	return nil
}

func (t *mockTx) Rollback() error {
	t.rollbacks++
	return nil
}
