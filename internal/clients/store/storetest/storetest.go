// Package storetest holds the behaviour every store driver must share. Driver
// packages call Run from their own tests with a constructor for a fresh,
// migrated store.
package storetest

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/aussiebroadwan/clientbook/internal/clients/domain"
	"github.com/aussiebroadwan/clientbook/internal/clients/store"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty store with migrations applied.
type Factory func(t *testing.T) store.Store

// Fixtures is the demo data used across the suite, in insertion order.
func Fixtures() []domain.Client {
	return []domain.Client{
		{Name: "Cayke", Cpf: "4354353565", Income: 20303.0, BirthDate: date(1990, 4, 12), Children: 3},
		{Name: "Ryann", Cpf: "23454365465", Income: 10144.0, BirthDate: date(1985, 9, 30), Children: 1},
		{Name: "Gerson", Cpf: "5465445665", Income: 20530.0, BirthDate: date(1979, 1, 2), Children: 0},
		{Name: "Marcos", Cpf: "007", Income: 7530.0, BirthDate: date(2001, 7, 19), Children: 0},
		{Name: "Ana Paula", Cpf: "41412414142124", Income: 1354.0, BirthDate: date(1994, 11, 5), Children: 4},
		{Name: "Felipe Guimarães", Cpf: "123123123123", Income: 242.0, BirthDate: date(1940, 2, 23), Children: 1},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 7, 0, 0, 0, time.UTC)
}

// Seed saves every fixture and returns them with their assigned ids.
func Seed(t *testing.T, st store.Store) []domain.Client {
	t.Helper()
	ctx := context.Background()

	fixtures := Fixtures()
	for i, c := range fixtures {
		saved, err := st.Clients().Save(ctx, c)
		require.NoError(t, err)
		require.NotZero(t, saved.ID)
		fixtures[i] = saved
	}
	return fixtures
}

// Run exercises the store.Clients contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("save assigns ids and find returns exact fields", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()

		in := domain.Client{
			Name:      "Carlos da Silva",
			Cpf:       "42344",
			Income:    2000.25,
			BirthDate: time.Date(1996, 12, 23, 7, 0, 0, 123456789, time.UTC),
			Children:  1,
		}
		saved, err := st.Clients().Save(ctx, in)
		require.NoError(t, err)
		require.NotZero(t, saved.ID)

		in.ID = saved.ID
		require.Equal(t, in, saved)

		found, err := st.Clients().FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, in, found)
	})

	t.Run("zero value client round trips", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()

		saved, err := st.Clients().Save(ctx, domain.Client{})
		require.NoError(t, err)

		found, err := st.Clients().FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Equal(t, domain.Client{ID: saved.ID}, found)
	})

	t.Run("find missing id", func(t *testing.T) {
		st := newStore(t)
		_, err := st.Clients().FindByID(context.Background(), 67890)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("save replaces existing row", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		seeded := Seed(t, st)

		changed := seeded[0]
		changed.Name = "Cayke Nakazone"
		changed.Income = 5670.0
		changed.Children = 0

		saved, err := st.Clients().Save(ctx, changed)
		require.NoError(t, err)
		require.Equal(t, changed, saved)

		found, err := st.Clients().FindByID(ctx, changed.ID)
		require.NoError(t, err)
		require.Equal(t, changed, found)
	})

	t.Run("save with unknown id", func(t *testing.T) {
		st := newStore(t)
		_, err := st.Clients().Save(context.Background(), domain.Client{ID: 1398, Name: "ghost"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("reference resolves lazily", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		seeded := Seed(t, st)

		ref := st.Clients().GetReference(ctx, seeded[1].ID)
		require.Equal(t, seeded[1].ID, ref.ID())
		got, err := ref.Resolve(ctx)
		require.NoError(t, err)
		require.Equal(t, seeded[1], got)

		missing := st.Clients().GetReference(ctx, 1244)
		require.Equal(t, int64(1244), missing.ID())
		_, err = missing.Resolve(ctx)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		seeded := Seed(t, st)

		require.NoError(t, st.Clients().DeleteByID(ctx, seeded[0].ID))
		_, err := st.Clients().FindByID(ctx, seeded[0].ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		err = st.Clients().DeleteByID(ctx, seeded[0].ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("find all pages in sort order", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		Seed(t, st)

		req := domain.NewPageRequest(0, 4, domain.Order{Property: "name", Direction: domain.Asc})
		page, err := st.Clients().FindAll(ctx, req)
		require.NoError(t, err)
		require.EqualValues(t, 6, page.TotalElements)
		require.Equal(t, req, page.Request)
		require.Equal(t, []string{"Ana Paula", "Cayke", "Felipe Guimarães", "Gerson"}, names(page.Content))

		req.Page = 1
		page, err = st.Clients().FindAll(ctx, req)
		require.NoError(t, err)
		require.Equal(t, []string{"Marcos", "Ryann"}, names(page.Content))
		require.True(t, page.IsLast())
	})

	t.Run("find all descending by income", func(t *testing.T) {
		st := newStore(t)
		Seed(t, st)

		page, err := st.Clients().FindAll(context.Background(),
			domain.NewPageRequest(0, 2, domain.Order{Property: "income", Direction: domain.Desc}))
		require.NoError(t, err)
		require.Equal(t, []string{"Gerson", "Cayke"}, names(page.Content))
	})

	t.Run("out of range page is empty", func(t *testing.T) {
		st := newStore(t)
		Seed(t, st)

		page, err := st.Clients().FindAll(context.Background(), domain.NewPageRequest(10, 12))
		require.NoError(t, err)
		require.Empty(t, page.Content)
		require.EqualValues(t, 6, page.TotalElements)
	})

	t.Run("page beyond addressable offset is empty", func(t *testing.T) {
		st := newStore(t)
		Seed(t, st)
		ctx := context.Background()

		for _, req := range []domain.PageRequest{
			domain.NewPageRequest(100000000000000000, 100),
			domain.NewPageRequest(math.MaxInt, 2),
			domain.NewPageRequest(math.MaxInt, 1),
		} {
			page, err := st.Clients().FindAll(ctx, req)
			require.NoError(t, err, "page %d size %d", req.Page, req.Size)
			require.Empty(t, page.Content, "page %d size %d", req.Page, req.Size)
			require.EqualValues(t, 6, page.TotalElements)
			require.True(t, page.IsLast())

			page, err = st.Clients().FindByIncomeGreaterThan(ctx, 0, req)
			require.NoError(t, err)
			require.Empty(t, page.Content)
		}
	})

	t.Run("income filter is strict", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		Seed(t, st)

		page, err := st.Clients().FindByIncomeGreaterThan(ctx, 7530.0,
			domain.NewPageRequest(0, 12, domain.Order{Property: "income", Direction: domain.Asc}))
		require.NoError(t, err)
		require.EqualValues(t, 3, page.TotalElements)
		require.Equal(t, []string{"Ryann", "Cayke", "Gerson"}, names(page.Content))
		for _, c := range page.Content {
			require.Greater(t, c.Income, 7530.0)
		}

		page, err = st.Clients().FindByIncomeGreaterThan(ctx, 1500.0, domain.NewPageRequest(0, 2))
		require.NoError(t, err)
		require.Len(t, page.Content, 2)
		require.EqualValues(t, 4, page.TotalElements)
		for _, c := range page.Content {
			require.Greater(t, c.Income, 1500.0)
		}
	})

	t.Run("rejects bad page requests", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()

		_, err := st.Clients().FindAll(ctx, domain.NewPageRequest(0, 10, domain.Order{Property: "password"}))
		require.ErrorIs(t, err, store.ErrInvalidSort)

		_, err = st.Clients().FindByIncomeGreaterThan(ctx, 0, domain.NewPageRequest(0, 0))
		require.ErrorIs(t, err, store.ErrInvalidPage)
	})

	t.Run("transaction rollback discards writes", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		seeded := Seed(t, st)

		boom := errors.New("boom")
		err := st.WithTx(ctx, func(tx store.Tx) error {
			c := seeded[0]
			c.Name = "rolled back"
			if _, err := tx.Clients().Save(ctx, c); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		found, err := st.Clients().FindByID(ctx, seeded[0].ID)
		require.NoError(t, err)
		require.Equal(t, seeded[0].Name, found.Name)
	})

	t.Run("transaction commit keeps writes", func(t *testing.T) {
		st := newStore(t)
		ctx := context.Background()
		seeded := Seed(t, st)

		err := st.WithTx(ctx, func(tx store.Tx) error {
			ref := tx.Clients().GetReference(ctx, seeded[2].ID)
			c, err := ref.Resolve(ctx)
			if err != nil {
				return err
			}
			c.Children = 9
			_, err = tx.Clients().Save(ctx, c)
			return err
		})
		require.NoError(t, err)

		found, err := st.Clients().FindByID(ctx, seeded[2].ID)
		require.NoError(t, err)
		require.Equal(t, 9, found.Children)
	})

	t.Run("ping", func(t *testing.T) {
		st := newStore(t)
		require.NoError(t, st.Ping(context.Background()))
	})
}

func names(clients []domain.Client) []string {
	out := make([]string, len(clients))
	for i, c := range clients {
		out[i] = c.Name
	}
	return out
}
