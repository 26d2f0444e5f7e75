package clientsdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/clientbook/pkg/clientsdk"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h http.HandlerFunc) *clientsdk.SDKClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return clientsdk.NewSDKClient(srv.URL + "/")
}

func TestListClientsEncodesParams(t *testing.T) {
	t.Parallel()

	var gotPath, gotQuery string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(clientsdk.Page{Content: []clientsdk.Client{}, Size: 5, Empty: true})
	})

	page, err := c.ListClientsByIncome(context.Background(), 1500.5, clientsdk.PageParams{
		Page:         2,
		LinesPerPage: 5,
		Direction:    "DESC",
		OrderBy:      "income",
	})
	require.NoError(t, err)
	require.True(t, page.Empty)
	require.Equal(t, "/clients/incomeGreaterThan", gotPath)
	require.Equal(t, "direction=DESC&income=1500.5&linesPerPage=5&orderBy=income&page=2", gotQuery)
}

func TestListClientsWithoutParams(t *testing.T) {
	t.Parallel()

	var gotURL string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.RequestURI()
		_ = json.NewEncoder(w).Encode(clientsdk.Page{})
	})

	_, err := c.ListClients(context.Background(), clientsdk.PageParams{})
	require.NoError(t, err)
	require.Equal(t, "/clients", gotURL)
}

func TestCreateClientSendsJSON(t *testing.T) {
	t.Parallel()

	born := time.Date(1994, 11, 5, 7, 0, 0, 0, time.UTC)
	var method, contentType string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		method, contentType = r.Method, r.Header.Get("Content-Type")

		var in clientsdk.Client
		_ = json.NewDecoder(r.Body).Decode(&in)
		in.ID = 7

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(in)
	})

	out, err := c.CreateClient(context.Background(), clientsdk.Client{Name: "Ana Paula", BirthDate: born})
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, method)
	require.Equal(t, "application/json", contentType)
	require.Equal(t, int64(7), out.ID)
	require.True(t, born.Equal(out.BirthDate))
}

func TestErrorResponses(t *testing.T) {
	t.Parallel()

	t.Run("api error body", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			clientsdk.NewAPIError(http.StatusNotFound, clientsdk.ErrorCodeClientNotFound, "client 9 not found").WriteError(w)
		})

		_, err := c.GetClient(context.Background(), 9)
		require.True(t, clientsdk.IsNotFound(err))

		var apiErr *clientsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, clientsdk.ErrorCodeClientNotFound, apiErr.Code)
		require.Equal(t, "client 9 not found", apiErr.Description)
	})

	t.Run("non json body", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream gone", http.StatusBadGateway)
		})

		err := c.DeleteClient(context.Background(), 1)
		var apiErr *clientsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		require.Equal(t, clientsdk.ErrorCodeServerError, apiErr.Code)
		require.False(t, clientsdk.IsNotFound(err))
	})

	t.Run("delete expects no content", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		require.NoError(t, c.DeleteClient(context.Background(), 1))
	})
}
