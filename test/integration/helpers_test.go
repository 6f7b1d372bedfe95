package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/CodeWithNeha/Data-Pusher/internal/database"
	"github.com/CodeWithNeha/Data-Pusher/internal/domain"
	"github.com/CodeWithNeha/Data-Pusher/internal/http/handler"
	"github.com/CodeWithNeha/Data-Pusher/internal/http/router"
	"github.com/CodeWithNeha/Data-Pusher/internal/relay"
	"github.com/CodeWithNeha/Data-Pusher/internal/repository"
	"github.com/CodeWithNeha/Data-Pusher/internal/service"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// newTestServer assembles the full stack over an in-memory sqlite database
// and a miniredis-backed token cache.
func newTestServer(t *testing.T) (string, *http.Client) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	accountRepo := repository.NewAccountRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	tokenCache := service.NewRedisTokenCache(redisClient, "")
	auth := service.NewAuthService(accountRepo, tokenCache, time.Minute, log)
	relayClient := relay.NewHTTPClient(2*time.Second, log)
	dispatch := service.NewDispatchService(destinationRepo, relayClient, log)

	h := router.New(router.Dependencies{
		Accounts:     handler.NewAccountHandler(accountRepo, auth),
		Destinations: handler.NewDestinationHandler(destinationRepo, accountRepo),
		Ingest:       handler.NewIngestHandler(auth, dispatch),
		DB:           db,
		Logger:       log,
	})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL, srv.Client()
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any, headers map[string]string) (*http.Response, apiEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope for %s %s: %v", method, url, err)
	}
	return resp, env
}

func createAccount(t *testing.T, client *http.Client, baseURL, email, externalID, token string) domain.Account {
	t.Helper()
	resp, env := doJSON(t, client, http.MethodPost, baseURL+"/accounts/", map[string]any{
		"email":            email,
		"account_name":     "Integration Account",
		"account_id":       externalID,
		"app_secret_token": token,
		"website":          "https://example.com",
	}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create account: expected 201, got %d (%+v)", resp.StatusCode, env.Error)
	}
	var account domain.Account
	if err := json.Unmarshal(env.Data, &account); err != nil {
		t.Fatalf("decode created account: %v", err)
	}
	return account
}

func createDestination(t *testing.T, client *http.Client, baseURL string, accountID uint, url, method string, headers map[string]string) domain.Destination {
	t.Helper()
	resp, env := doJSON(t, client, http.MethodPost, fmt.Sprintf("%s/accounts/%d/destinations/", baseURL, accountID), map[string]any{
		"url":         url,
		"http_method": method,
		"headers":     headers,
	}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create destination: expected 201, got %d (%+v)", resp.StatusCode, env.Error)
	}
	var destination domain.Destination
	if err := json.Unmarshal(env.Data, &destination); err != nil {
		t.Fatalf("decode created destination: %v", err)
	}
	return destination
}
