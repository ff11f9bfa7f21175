package payments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nfrund/tinyhouse/internal/domain"
	"github.com/nfrund/tinyhouse/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConnector(t *testing.T, handler http.HandlerFunc) *StripeConnector {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewStripeConnector(&testutils.StubConfig{StripeConnectURL: srv.URL + "/", StripeClientID: "ca_test"})
}

func TestStripeConnector_Connect(t *testing.T) {
	t.Run("returns the connected account", func(t *testing.T) {
		c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/oauth/token", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			assert.Equal(t, "ac_123", r.PostForm.Get("code"))
			assert.Equal(t, "sk_test", r.PostForm.Get("client_secret"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"stripe_user_id":"acct_42"}`))
		})

		wallet, err := c.Connect(context.Background(), "ac_123")
		require.NoError(t, err)
		assert.Equal(t, "acct_42", wallet)
	})

	t.Run("maps oauth errors", func(t *testing.T) {
		c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"code expired"}`))
		})

		_, err := c.Connect(context.Background(), "ac_old")
		assert.ErrorIs(t, err, domain.ErrWalletExchange)
		assert.Contains(t, err.Error(), "code expired")
	})

	t.Run("rejects missing code without calling stripe", func(t *testing.T) {
		c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("stripe must not be called")
		})

		_, err := c.Connect(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrWalletExchange)
	})

	t.Run("rejects empty account id", func(t *testing.T) {
		c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		_, err := c.Connect(context.Background(), "ac_123")
		assert.ErrorIs(t, err, domain.ErrWalletExchange)
	})
}

func TestStripeConnector_AuthorizeURL(t *testing.T) {
	c := NewStripeConnector(&testutils.StubConfig{StripeConnectURL: "https://connect.stripe.com", StripeClientID: "ca_test"})
	assert.Equal(t, "https://connect.stripe.com/oauth/authorize?client_id=ca_test&response_type=code&scope=read_write", c.AuthorizeURL())
}
