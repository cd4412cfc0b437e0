package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlite/ledgerlite/internal/domain"
	"github.com/ledgerlite/ledgerlite/pkg/configpkg"
	"github.com/ledgerlite/ledgerlite/pkg/randompkg"
	"github.com/ledgerlite/ledgerlite/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	zerolog.SetGlobalLevel(zerolog.FatalLevel)
	os.Exit(m.Run())
}

func testConfig(t *testing.T, driver string) configpkg.Config {
	t.Helper()

	dir := t.TempDir()

	return configpkg.Config{
		ServerAddress:       "localhost:0",
		StorageDriver:       driver,
		SQLitePath:          filepath.Join(dir, "ledger.db"),
		FileStorePath:       filepath.Join(dir, "ledger.json"),
		TokenSymmetricKey:   randompkg.String(32),
		AccessTokenDuration: time.Minute,
		Environement:        "production",
	}
}

func doJSON(t *testing.T, server *Server, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	return recorder
}

func TestEndToEndFlow(t *testing.T) {
	for _, driver := range []string{"sqlite", "file"} {
		driver := driver

		t.Run(driver, func(t *testing.T) {
			logger := zerolog.Nop()

			server, err := New(logger, testConfig(t, driver))
			require.NoError(t, err)

			// Create a category.
			recorder := doJSON(t, server, http.MethodPost, "/categories", map[string]any{
				"name": "food",
				"type": "expense",
			}, nil)
			require.Equal(t, http.StatusOK, recorder.Code)

			var categoryRes struct {
				Data struct {
					Category domain.Category `json:"category"`
				} `json:"data"`
			}
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&categoryRes))
			categoryID := categoryRes.Data.Category.ID
			require.NotEmpty(t, categoryID)

			// Record an expense against it.
			recorder = doJSON(t, server, http.MethodPost, "/transactions", map[string]any{
				"type":        "expense",
				"amount":      "108",
				"currency":    "USD",
				"category_id": categoryID,
				"date":        "2024-05-01",
			}, nil)
			require.Equal(t, http.StatusOK, recorder.Code)

			// Set the rate table.
			recorder = doJSON(t, server, http.MethodPut, "/rates", map[string]any{
				"rates": map[string]float64{"USD": 1.08},
			}, nil)
			require.Equal(t, http.StatusOK, recorder.Code)

			// Aggregate in EUR.
			recorder = doJSON(t, server, http.MethodGet, "/report?currency=EUR", nil, nil)
			require.Equal(t, http.StatusOK, recorder.Code)

			var reportRes struct {
				Data struct {
					Report domain.ReportSummary `json:"report"`
				} `json:"data"`
			}
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&reportRes))
			require.Equal(t, "EUR", reportRes.Data.Report.Currency)
			require.InDelta(t, 100, reportRes.Data.Report.Expense, 0.01)
			require.InDelta(t, -100, reportRes.Data.Report.Balance, 0.01)

			// Round-trip the whole dataset.
			recorder = doJSON(t, server, http.MethodGet, "/export", nil, nil)
			require.Equal(t, http.StatusOK, recorder.Code)

			var ds domain.Dataset
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&ds))
			require.Len(t, ds.Transactions, 1)

			recorder = doJSON(t, server, http.MethodPost, "/import", ds, nil)
			require.Equal(t, http.StatusNoContent, recorder.Code)
		})
	}
}

func TestAccessPasswordProtectsDataRoutes(t *testing.T) {
	logger := zerolog.Nop()

	config := testConfig(t, "file")
	config.AccessPassword = randompkg.String(12)

	server, err := New(logger, config)
	require.NoError(t, err)

	// Without a token the data routes are rejected.
	recorder := doJSON(t, server, http.MethodGet, "/settings", nil, nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	// A wrong password does not produce a token.
	recorder = doJSON(t, server, http.MethodPost, "/sessions", map[string]any{
		"password": "wrong",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	// The configured password does.
	recorder = doJSON(t, server, http.MethodPost, "/sessions", map[string]any{
		"password": config.AccessPassword,
	}, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var res web.Response
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
	require.NotEmpty(t, res.AccessToken)

	recorder = doJSON(t, server, http.MethodGet, "/settings", nil, map[string]string{
		"authorization": "bearer " + res.AccessToken,
	})
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestUnknownStorageDriver(t *testing.T) {
	_, err := New(zerolog.Nop(), testConfig(t, "redis"))
	require.Error(t, err)
}
