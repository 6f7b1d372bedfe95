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
	"github.com/CodeWithNeha/Data-Pusher/internal/service"
)

type accountBody struct {
	Email          string `json:"email"`
	AccountName    string `json:"account_name"`
	AccountID      string `json:"account_id"`
	AppSecretToken string `json:"app_secret_token"`
	Website        string `json:"website"`
}

func (b *accountBody) validate() string {
	switch {
	case strings.TrimSpace(b.Email) == "":
		return "email is required"
	case strings.TrimSpace(b.AccountID) == "":
		return "account_id is required"
	case strings.TrimSpace(b.AccountName) == "":
		return "account_name is required"
	case strings.TrimSpace(b.AppSecretToken) == "":
		return "app_secret_token is required"
	}
	return ""
}

type AccountHandler struct {
	accounts repository.AccountRepository
	auth     *service.AuthService
}

func NewAccountHandler(accounts repository.AccountRepository, auth *service.AuthService) *AccountHandler {
	return &AccountHandler{accounts: accounts, auth: auth}
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body accountBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if msg := body.validate(); msg != "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", msg, nil)
		return
	}

	account := &domain.Account{
		Email:          body.Email,
		AccountID:      body.AccountID,
		AccountName:    body.AccountName,
		AppSecretToken: body.AppSecretToken,
		Website:        body.Website,
	}
	if err := h.accounts.Create(account); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			response.Error(w, r, http.StatusConflict, "CONFLICT", "email or account_id already exists", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create account", nil)
		return
	}
	response.JSON(w, r, http.StatusCreated, account)
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid account id", nil)
		return
	}
	account, err := h.accounts.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Account not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load account", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, account)
}

// Update replaces all mutable fields; there is no partial patch.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid account id", nil)
		return
	}
	var body accountBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid payload", nil)
		return
	}
	if msg := body.validate(); msg != "" {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", msg, nil)
		return
	}

	existing, err := h.accounts.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Account not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load account", nil)
		return
	}

	account := &domain.Account{
		ID:             id,
		Email:          body.Email,
		AccountID:      body.AccountID,
		AccountName:    body.AccountName,
		AppSecretToken: body.AppSecretToken,
		Website:        body.Website,
	}
	if err := h.accounts.Update(account); err != nil {
		switch {
		case errors.Is(err, repository.ErrAccountNotFound):
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Account not found", nil)
		case errors.Is(err, repository.ErrDuplicateAccount):
			response.Error(w, r, http.StatusConflict, "CONFLICT", "email or account_id already exists", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to update account", nil)
		}
		return
	}

	// The prior token may still be cached; drop it so a rotated secret
	// stops authenticating immediately.
	h.auth.InvalidateToken(r.Context(), existing.AppSecretToken)

	updated, err := h.accounts.FindByID(id)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to reload account", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, updated)
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid account id", nil)
		return
	}

	existing, err := h.accounts.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Account not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to load account", nil)
		return
	}

	if err := h.accounts.Delete(id); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "Account not found", nil)
			return
		}
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to delete account", nil)
		return
	}
	h.auth.InvalidateToken(r.Context(), existing.AppSecretToken)

	response.JSON(w, r, http.StatusOK, map[string]any{"message": "Account deleted successfully"})
}
