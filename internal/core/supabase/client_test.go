package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL, "test-key")
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient("", "key")
	assert.Error(t, err)

	_, err = NewClient("https://project.supabase.co", "")
	assert.Error(t, err)
}

func TestInsertSendsHeadersAndDecodesRow(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/contas", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Imobiliária Teste", payload["nome"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode([]row{{ID: "abc", Name: "Imobiliária Teste"}})
	})

	got, err := Insert[row](context.Background(), c, "contas", map[string]string{"nome": "Imobiliária Teste"})
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, "Imobiliária Teste", got.Name)
}

func TestSelectBuildsEqualityFiltersAndOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.c1", r.URL.Query().Get("conta_id"))
		assert.Equal(t, "timestamp.asc", r.URL.Query().Get("order"))
		json.NewEncoder(w).Encode([]row{{ID: "1"}, {ID: "2"}})
	})

	rows, err := Select[row](context.Background(), c, "mensagens", Filter{"conta_id": "c1"}, "timestamp.asc")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0].ID)
}

func TestSelectOneNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})

	_, err := SelectOne[row](context.Background(), c, "contas", Filter{"id": "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateForwardsPatchAndReportsNotFound(t *testing.T) {
	var gotPatch map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPatch))
		w.Write([]byte("[]"))
	})

	_, err := Update[row](context.Background(), c, "contas", Filter{"id": "x"}, map[string]string{"nome": "Novo"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, map[string]any{"nome": "Novo"}, gotPatch)
}

func TestDeleteDistinguishesNotFoundFromFailure(t *testing.T) {
	empty := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	})
	err := Delete(context.Background(), empty, "contas", Filter{"id": "missing"})
	assert.ErrorIs(t, err, ErrNotFound)

	broken := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	})
	err = Delete(context.Background(), broken, "contas", Filter{"id": "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusServiceUnavailable, reqErr.StatusCode)
}

func TestNon2xxCarriesBackendMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"duplicate key"}`, http.StatusConflict)
	})

	_, err := Insert[row](context.Background(), c, "contas", map[string]string{})
	require.Error(t, err)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusConflict, reqErr.StatusCode)
	assert.Contains(t, reqErr.Body, "duplicate key")
}
