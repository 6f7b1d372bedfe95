package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/CodeWithNeha/Data-Pusher/internal/domain"
	"github.com/CodeWithNeha/Data-Pusher/internal/http/response"
	"github.com/CodeWithNeha/Data-Pusher/internal/repository"
)

type destinationBody struct {
	URL        string            `json:"url"`
	HTTPMethod string            `json:"http_method"`
	Headers    map[string]string `json:"headers"`
}

func (b *destinationBody) validate() string {
	switch {
	case strings.TrimSpace(b.URL) == "":
		return "url is required"
	case strings.TrimSpace(b.HTTPMethod) == "":
		return "http_method is required"
	}
	return ""
}

type DestinationHandler struct {
	destinations repository.DestinationRepository
	accounts     repository.AccountRepository
}

func NewDestinationHandler(destinations repository.DestinationRepository, accounts repository.AccountRepository) *DestinationHandler {
	return &DestinationHandler{destinations: destinations, accounts: accounts}
}

func (h *DestinationHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid account id", nil)
		return
	}
	var body destinationBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if msg := body.validate(); msg != "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", msg, nil)
		return
	}

	if _, err := h.accounts.FindByID(accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Account not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load account", nil)
		return
	}

	destination := &domain.Destination{
		AccountID:  accountID,
		URL:        body.URL,
		HTTPMethod: body.HTTPMethod,
		Headers:    body.Headers,
	}
	if err := h.destinations.Create(destination); err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create destination", nil)
		return
	}
	response.JSON(w, r, http.StatusCreated, destination)
}

// List returns 404 when the account has no destinations; an empty list is
// indistinguishable from an unknown account at this boundary.
func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid account id", nil)
		return
	}
	destinations, err := h.destinations.ListByAccount(accountID)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list destinations", nil)
		return
	}
	if len(destinations) == 0 {
		response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "No destinations found for this account", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, destinations)
}

func (h *DestinationHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountID, destinationID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}
	destination, err := h.destinations.FindByID(accountID, destinationID)
	if err != nil {
		if errors.Is(err, repository.ErrDestinationNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Destination not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load destination", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, destination)
}

func (h *DestinationHandler) Update(w http.ResponseWriter, r *http.Request) {
	accountID, destinationID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}
	var body destinationBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if msg := body.validate(); msg != "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", msg, nil)
		return
	}

	destination := &domain.Destination{
		ID:         destinationID,
		AccountID:  accountID,
		URL:        body.URL,
		HTTPMethod: body.HTTPMethod,
		Headers:    body.Headers,
	}
	if err := h.destinations.Update(destination); err != nil {
		if errors.Is(err, repository.ErrDestinationNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Destination not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update destination", nil)
		return
	}

	updated, err := h.destinations.FindByID(accountID, destinationID)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to reload destination", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, updated)
}

func (h *DestinationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, destinationID, ok := h.pathIDs(w, r)
	if !ok {
		return
	}
	if err := h.destinations.Delete(accountID, destinationID); err != nil {
		if errors.Is(err, repository.ErrDestinationNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Destination not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to delete destination", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, map[string]any{"message": "Destination deleted successfully"})
}

func (h *DestinationHandler) pathIDs(w http.ResponseWriter, r *http.Request) (uint, uint, bool) {
	accountID, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid account id", nil)
		return 0, 0, false
	}
	destinationID, err := parsePathID(chi.URLParam(r, "did"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid destination id", nil)
		return 0, 0, false
	}
	return accountID, destinationID, true
}
