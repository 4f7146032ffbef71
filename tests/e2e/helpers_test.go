//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/feddict/feddict-backend/internal/adapter/postgres/term"
	"github.com/feddict/feddict-backend/internal/adapter/postgres/testhelper"
	"github.com/feddict/feddict-backend/internal/config"
	"github.com/feddict/feddict-backend/internal/service/glossary"
	"github.com/feddict/feddict-backend/internal/transport/rest"
)

const (
	adminUser = "admin"
	adminPass = "e2e-test-password"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// setupTestServer boots the whole stack against the shared test database:
// real repository, real service, real router. The terms table is emptied
// first, so scenarios start from a known state.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	testhelper.TruncateTerms(t, pool)

	cfg := &config.Config{
		Server: config.ServerConfig{
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			// no rate limiting in tests
			RateLimitPerMinute: 0,
		},
		Auth: config.AuthConfig{
			AdminUsername: adminUser,
			AdminPassword: adminPass,
		},
		Glossary: config.GlossaryConfig{
			DefaultPerPage:   20,
			MaxPerPage:       100,
			CategoryCacheTTL: time.Millisecond,
			MaxIngestRecords: 5000,
			SuggestLimit:     20,
			CapacityBytes:    536870912,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := glossary.New(logger, term.New(pool), cfg.Glossary)

	router, stopLimiter := rest.NewRouter(rest.RouterDeps{
		Log:     logger,
		Cfg:     cfg,
		Service: svc,
		DB:      pool,
		Version: "e2e",
	})
	t.Cleanup(stopLimiter)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// doJSON sends a JSON request and decodes the JSON response body.
// body may be nil; withAuth attaches the admin credentials.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, withAuth bool) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth {
		req.SetBasicAuth(adminUser, adminPass)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}

	return resp.StatusCode, result
}

// doRaw sends a request with an arbitrary body and content type.
func (ts *testServer) doRaw(t *testing.T, method, path, contentType string, body []byte, withAuth bool) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	if withAuth {
		req.SetBasicAuth(adminUser, adminPass)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	result := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}

	return resp.StatusCode, result
}
