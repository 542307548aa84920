package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientErrorMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/ideas/missing":
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(msgResponse{Msg: "Idea not found"})
		case "/api/auth":
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(msgResponse{Msg: "No token, authorization denied"})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	t.Run("404 matches ErrNotFound", func(t *testing.T) {
		_, err := c.Idea(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Idea not found", apiErr.Msg)
	})

	t.Run("401 matches ErrUnauthorized", func(t *testing.T) {
		_, err := c.CurrentUser(context.Background())
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("empty body falls back to the status text", func(t *testing.T) {
		_, err := c.Ideas(context.Background())

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Msg)
	})
}

func TestClientUnreachableServer(t *testing.T) {
	c := New("http://127.0.0.1:1")

	_, err := c.Ideas(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClientTokenHeader(t *testing.T) {
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get(TokenHeader)
		json.NewEncoder(w).Encode([]struct{}{})
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.Ideas(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotHeader, "no token means no header")

	c.SetToken("my-token")
	_, err = c.Ideas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "my-token", gotHeader)
}
