package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/CodeWithNeha/Data-Pusher/internal/domain"
)

func TestDestinationLifecycle(t *testing.T) {
	baseURL, client := newTestServer(t)
	account := createAccount(t, client, baseURL, "dest@example.com", "acct-dest", "secret-dest")

	created := createDestination(t, client, baseURL, account.ID, "https://hooks.example.com/in", "POST", map[string]string{
		"Content-Type": "application/json",
		"X-Api-Key":    "k-123",
	})
	if created.AccountID != account.ID {
		t.Fatalf("destination bound to account %d, want %d", created.AccountID, account.ID)
	}

	resp, env := doJSON(t, client, http.MethodGet, fmt.Sprintf("%s/accounts/%d/destinations/%d", baseURL, account.ID, created.ID), nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get destination: expected 200, got %d", resp.StatusCode)
	}
	var fetched domain.Destination
	if err := json.Unmarshal(env.Data, &fetched); err != nil {
		t.Fatalf("decode destination: %v", err)
	}
	if fetched.Headers["X-Api-Key"] != "k-123" {
		t.Fatalf("headers did not round-trip: %+v", fetched.Headers)
	}

	resp, env = doJSON(t, client, http.MethodPut, fmt.Sprintf("%s/accounts/%d/destinations/%d", baseURL, account.ID, created.ID), map[string]any{
		"url":         "https://hooks.example.com/v2",
		"http_method": "GET",
		"headers":     map[string]string{"Accept": "application/json"},
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update destination: expected 200, got %d (%+v)", resp.StatusCode, env.Error)
	}
	var updated domain.Destination
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode updated destination: %v", err)
	}
	if updated.URL != "https://hooks.example.com/v2" || updated.HTTPMethod != "GET" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if _, ok := updated.Headers["X-Api-Key"]; ok {
		t.Fatal("expected headers replaced, old key still present")
	}

	resp, _ = doJSON(t, client, http.MethodDelete, fmt.Sprintf("%s/accounts/%d/destinations/%d", baseURL, account.ID, created.ID), nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete destination: expected 200, got %d", resp.StatusCode)
	}

	resp, env = doJSON(t, client, http.MethodGet, fmt.Sprintf("%s/accounts/%d/destinations", baseURL, account.ID), nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("list with no destinations: expected 404, got %d", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Message != "No destinations found for this account" {
		t.Fatalf("unexpected list error: %+v", env.Error)
	}
}

func TestDestinationCreateUnknownAccount(t *testing.T) {
	baseURL, client := newTestServer(t)

	resp, env := doJSON(t, client, http.MethodPost, baseURL+"/accounts/4242/destinations/", map[string]any{
		"url":         "https://hooks.example.com/in",
		"http_method": "POST",
	}, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Message != "Account not found" {
		t.Fatalf("unexpected error: %+v", env.Error)
	}
}

func TestDestinationScopedToOwningAccount(t *testing.T) {
	baseURL, client := newTestServer(t)
	owner := createAccount(t, client, baseURL, "owner@example.com", "acct-owner", "secret-owner")
	other := createAccount(t, client, baseURL, "other@example.com", "acct-other", "secret-other")

	destination := createDestination(t, client, baseURL, owner.ID, "https://hooks.example.com/owned", "POST", nil)

	resp, _ := doJSON(t, client, http.MethodGet, fmt.Sprintf("%s/accounts/%d/destinations/%d", baseURL, other.ID, destination.ID), nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("cross-account get: expected 404, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, client, http.MethodDelete, fmt.Sprintf("%s/accounts/%d/destinations/%d", baseURL, other.ID, destination.ID), nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("cross-account delete: expected 404, got %d", resp.StatusCode)
	}

	// Still visible to its owner.
	resp, _ = doJSON(t, client, http.MethodGet, fmt.Sprintf("%s/accounts/%d/destinations/%d", baseURL, owner.ID, destination.ID), nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("owner get after cross-account delete attempt: expected 200, got %d", resp.StatusCode)
	}
}

func TestDestinationListOrderedByCreation(t *testing.T) {
	baseURL, client := newTestServer(t)
	account := createAccount(t, client, baseURL, "order@example.com", "acct-order", "secret-order")

	first := createDestination(t, client, baseURL, account.ID, "https://hooks.example.com/1", "POST", nil)
	second := createDestination(t, client, baseURL, account.ID, "https://hooks.example.com/2", "GET", nil)

	resp, env := doJSON(t, client, http.MethodGet, fmt.Sprintf("%s/accounts/%d/destinations", baseURL, account.ID), nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list destinations: expected 200, got %d", resp.StatusCode)
	}
	var listed []domain.Destination
	if err := json.Unmarshal(env.Data, &listed); err != nil {
		t.Fatalf("decode destination list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 destinations, got %d", len(listed))
	}
	if listed[0].ID != first.ID || listed[1].ID != second.ID {
		t.Fatalf("expected creation order [%d %d], got [%d %d]", first.ID, second.ID, listed[0].ID, listed[1].ID)
	}
}
