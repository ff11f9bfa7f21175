package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/tinyhouse/internal/config"
	"github.com/nfrund/tinyhouse/internal/logging"
)

// ConfigForTests loads the .env.test file and returns a valid config.Provider.
// This is the definitive way to get configuration for integration tests.
func ConfigForTests(t *testing.T) config.Provider {
	t.Helper()

	// Find project root by looking for go.mod to reliably locate .env.test.
	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			break
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}

	env, err := godotenv.Read(filepath.Join(path, ".env.test"))
	if err != nil {
		t.Skipf("no .env.test file, skipping integration test: %v", err)
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	logging.New()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}
	return cfg
}
