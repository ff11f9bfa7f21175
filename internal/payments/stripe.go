// Package payments connects host accounts to Stripe Connect so they can
// receive payouts.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nfrund/tinyhouse/internal/config"
	"github.com/nfrund/tinyhouse/internal/domain"
)

// Connector exchanges an OAuth authorization code for a payout account id.
type Connector interface {
	Connect(ctx context.Context, code string) (string, error)
}

// StripeConnector talks to the Stripe Connect OAuth endpoints.
type StripeConnector struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	secretKey  string
}

// NewStripeConnector creates a connector from the application configuration.
func NewStripeConnector(cfg config.Provider) *StripeConnector {
	return &StripeConnector{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(cfg.GetStripeConnectURL(), "/"),
		clientID:   cfg.GetStripeClientID(),
		secretKey:  cfg.GetStripeSecretKey(),
	}
}

type tokenResponse struct {
	StripeUserID     string `json:"stripe_user_id"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// Connect completes the OAuth flow and returns the connected account id.
// Every failure wraps domain.ErrWalletExchange.
func (s *StripeConnector) Connect(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("%w: missing authorization code", domain.ErrWalletExchange)
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_secret", s.secretKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domain.ErrWalletExchange, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrWalletExchange, err)
	}
	defer resp.Body.Close()

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrWalletExchange, err)
	}
	if resp.StatusCode != http.StatusOK || body.Error != "" {
		return "", fmt.Errorf("%w: %s: %s", domain.ErrWalletExchange, body.Error, body.ErrorDescription)
	}
	if body.StripeUserID == "" {
		return "", fmt.Errorf("%w: response has no account id", domain.ErrWalletExchange)
	}
	return body.StripeUserID, nil
}

// AuthorizeURL is where the "Connect with Stripe" button sends the host.
func (s *StripeConnector) AuthorizeURL() string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", s.clientID)
	q.Set("scope", "read_write")
	return s.baseURL + "/oauth/authorize?" + q.Encode()
}
