package testutils

import (
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/tinyhouse/internal/config"
)

// UniqueKey returns a record key that will not collide between test runs.
func UniqueKey(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// StubConfig is a config.Provider for unit tests that never reads the environment.
type StubConfig struct {
	config.Provider
	BaseURL          string
	StripeClientID   string
	StripeConnectURL string
	QueryTimeout     time.Duration
	ExecuteTimeout   time.Duration
}

func (s *StubConfig) GetAppBaseURL() string       { return s.BaseURL }
func (s *StubConfig) GetStripeClientID() string   { return s.StripeClientID }
func (s *StubConfig) GetStripeSecretKey() string  { return "sk_test" }
func (s *StubConfig) GetStripeConnectURL() string { return s.StripeConnectURL }
func (s *StubConfig) GetSessionSecret() string    { return "a-very-secret-key-for-testing-!" }

func (s *StubConfig) GetDBQueryTimeout() time.Duration {
	if s.QueryTimeout == 0 {
		return time.Second
	}
	return s.QueryTimeout
}

func (s *StubConfig) GetDBExecuteTimeout() time.Duration {
	if s.ExecuteTimeout == 0 {
		return time.Second
	}
	return s.ExecuteTimeout
}
