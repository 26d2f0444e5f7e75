package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	clientshttp "github.com/aussiebroadwan/clientbook/internal/clients/http"
	"github.com/aussiebroadwan/clientbook/internal/clients/service"
	"github.com/aussiebroadwan/clientbook/internal/clients/store/drivers/sqlite"
	"github.com/aussiebroadwan/clientbook/internal/clients/store/storetest"
	"github.com/aussiebroadwan/clientbook/pkg/clientsdk"
	"github.com/aussiebroadwan/clientbook/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	srv    *httptest.Server
	sdk    *clientsdk.SDKClient
	store  *sqlite.Store
	seeded []clientsdk.Client
}

func newFixture(t *testing.T, configure ...func(*clientshttp.Router)) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	var seeded []clientsdk.Client
	for _, c := range storetest.Seed(t, st) {
		seeded = append(seeded, clientsdk.Client(c.ToDTO()))
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := clientshttp.NewRouter("test", st, logger)
	router.ClientService = &service.ClientService{Store: st}
	for _, fn := range configure {
		fn(router)
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &fixture{srv: srv, sdk: clientsdk.NewSDKClient(srv.URL), store: st, seeded: seeded}
}

func (f *fixture) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := http.Get(f.srv.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	var apiErr *clientsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

func names(clients []clientsdk.Client) []string {
	out := make([]string, len(clients))
	for i, c := range clients {
		out[i] = c.Name
	}
	return out
}

func TestListClients(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		page, err := f.sdk.ListClients(ctx, clientsdk.PageParams{})
		require.NoError(t, err)
		require.Equal(t, []string{"Ana Paula", "Cayke", "Felipe Guimarães", "Gerson", "Marcos", "Ryann"}, names(page.Content))
		require.Equal(t, 0, page.Number)
		require.Equal(t, 12, page.Size)
		require.EqualValues(t, 6, page.TotalElements)
		require.Equal(t, 1, page.TotalPages)
		require.Equal(t, 6, page.NumberOfElements)
		require.True(t, page.First)
		require.True(t, page.Last)
		require.False(t, page.Empty)
		require.Equal(t, []clientsdk.SortOrder{{Property: "name", Direction: "ASC"}}, page.Sort)
	})

	t.Run("custom paging and order", func(t *testing.T) {
		page, err := f.sdk.ListClients(ctx, clientsdk.PageParams{
			Page:         1,
			LinesPerPage: 4,
			Direction:    "DESC",
			OrderBy:      "income",
		})
		require.NoError(t, err)
		require.Equal(t, []string{"Ana Paula", "Felipe Guimarães"}, names(page.Content))
		require.Equal(t, 2, page.TotalPages)
		require.False(t, page.First)
		require.True(t, page.Last)
	})

	t.Run("trailing slash", func(t *testing.T) {
		resp := f.get(t, "/clients/")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		page, err := f.sdk.ListClients(ctx, clientsdk.PageParams{Page: 7})
		require.NoError(t, err)
		require.True(t, page.Empty)
		require.Empty(t, page.Content)
		require.EqualValues(t, 6, page.TotalElements)

		page, err = f.sdk.ListClients(ctx, clientsdk.PageParams{Page: 100000000000000000, LinesPerPage: 100})
		require.NoError(t, err)
		require.Empty(t, page.Content)
		require.True(t, page.Last)
		require.EqualValues(t, 6, page.TotalElements)
	})

	t.Run("rejects bad parameters", func(t *testing.T) {
		for _, query := range []string{
			"?page=-1",
			"?page=one",
			"?linesPerPage=0",
			"?linesPerPage=101",
			"?direction=UP",
			"?orderBy=password",
		} {
			resp := f.get(t, "/clients"+query)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, "query %s", query)
		}
	})
}

func TestListClientsByIncome(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	page, err := f.sdk.ListClientsByIncome(ctx, 7530, clientsdk.PageParams{OrderBy: "income"})
	require.NoError(t, err)
	require.Equal(t, []string{"Ryann", "Cayke", "Gerson"}, names(page.Content))
	for _, c := range page.Content {
		require.Greater(t, c.Income, 7530.0)
	}

	for _, query := range []string{"", "?income=", "?income=lots", "?income=NaN"} {
		resp := f.get(t, "/clients/incomeGreaterThan"+query)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "query %q", query)
	}
}

func TestGetClient(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.sdk.GetClient(ctx, f.seeded[0].ID)
	require.NoError(t, err)
	require.Equal(t, f.seeded[0], *got)

	_, err = f.sdk.GetClient(ctx, 1121212)
	requireAPIError(t, err, http.StatusNotFound, clientsdk.ErrorCodeClientNotFound)
	require.True(t, clientsdk.IsNotFound(err))

	resp := f.get(t, "/clients/abc")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateClient(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	in := clientsdk.Client{
		ID:        f.seeded[0].ID,
		Name:      "Carlos da Silva",
		Cpf:       "42344",
		Income:    2000.0,
		BirthDate: time.Date(1996, 12, 23, 7, 0, 0, 0, time.UTC),
		Children:  1,
	}
	out, err := f.sdk.CreateClient(ctx, in)
	require.NoError(t, err)
	require.NotEqual(t, in.ID, out.ID)

	in.ID = out.ID
	require.Equal(t, in, *out)

	stored, err := f.sdk.GetClient(ctx, out.ID)
	require.NoError(t, err)
	require.Equal(t, in, *stored)

	t.Run("location header", func(t *testing.T) {
		resp, err := http.Post(f.srv.URL+"/clients", "application/json",
			strings.NewReader(`{"name":"Maria","birthDate":"1980-01-01T00:00:00Z"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.Regexp(t, `^/clients/\d+$`, resp.Header.Get("Location"))
	})

	t.Run("malformed body", func(t *testing.T) {
		for _, body := range []string{`{`, `[]`, `{"nome":"x"}`, `{"income":"high"}`} {
			resp, err := http.Post(f.srv.URL+"/clients", "application/json", strings.NewReader(body))
			require.NoError(t, err)
			_ = resp.Body.Close()
			require.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %s", body)
		}
	})
}

func TestUpdateClient(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	target := f.seeded[1]
	changes := clientsdk.Client{
		ID:        999,
		Name:      "Ryann Souza",
		Cpf:       target.Cpf,
		Income:    12000.5,
		BirthDate: target.BirthDate,
		Children:  2,
	}

	out, err := f.sdk.UpdateClient(ctx, target.ID, changes)
	require.NoError(t, err)

	changes.ID = target.ID
	require.Equal(t, changes, *out)

	stored, err := f.sdk.GetClient(ctx, target.ID)
	require.NoError(t, err)
	require.Equal(t, changes, *stored)

	_, err = f.sdk.GetClient(ctx, 999)
	require.True(t, clientsdk.IsNotFound(err))

	_, err = f.sdk.UpdateClient(ctx, 1121212, changes)
	requireAPIError(t, err, http.StatusNotFound, clientsdk.ErrorCodeClientNotFound)
}

func TestDeleteClient(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.sdk.DeleteClient(ctx, f.seeded[2].ID))

	err := f.sdk.DeleteClient(ctx, f.seeded[2].ID)
	requireAPIError(t, err, http.StatusNotFound, clientsdk.ErrorCodeClientNotFound)

	page, err := f.sdk.ListClients(ctx, clientsdk.PageParams{})
	require.NoError(t, err)
	require.EqualValues(t, 5, page.TotalElements)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	live, err := f.sdk.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := f.sdk.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)

	require.NoError(t, f.store.Close())
	_, err = f.sdk.GetReadiness(ctx)
	var apiErr *clientsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestMetricsAndDocs(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.sdk.GetClient(context.Background(), f.seeded[0].ID)
	require.NoError(t, err)

	resp := f.get(t, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `clients_http_requests_total{method="GET",route="/clients/{id}",status="200"} 1`)

	resp = f.get(t, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "Clientbook API")
	require.Contains(t, string(body), "/clients/incomeGreaterThan")
}

func TestWriteRateLimit(t *testing.T) {
	t.Parallel()
	f := newFixture(t, func(r *clientshttp.Router) {
		r.WriteLimit = httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	})
	ctx := context.Background()

	_, err := f.sdk.CreateClient(ctx, clientsdk.Client{Name: "first"})
	require.NoError(t, err)

	_, err = f.sdk.CreateClient(ctx, clientsdk.Client{Name: "second"})
	requireAPIError(t, err, http.StatusTooManyRequests, clientsdk.ErrorCodeRateLimitExceeded)

	// Reads have their own budget.
	_, err = f.sdk.ListClients(ctx, clientsdk.PageParams{})
	require.NoError(t, err)
}

func TestSwaggerRateLimit(t *testing.T) {
	t.Parallel()
	f := newFixture(t, func(r *clientshttp.Router) {
		r.ReadLimit = httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	})

	require.Equal(t, http.StatusOK, f.get(t, "/swagger/doc.json").StatusCode)
	require.Equal(t, http.StatusTooManyRequests, f.get(t, "/swagger/doc.json").StatusCode)

	// The clients resource keeps its own read bucket.
	_, err := f.sdk.ListClients(context.Background(), clientsdk.PageParams{})
	require.NoError(t, err)
}
