package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/CodeWithNeha/Data-Pusher/internal/http/response"
	"github.com/CodeWithNeha/Data-Pusher/internal/service"
)

// TokenHeader carries the account secret on the ingest endpoint.
const TokenHeader = "token"

type IngestHandler struct {
	auth     *service.AuthService
	dispatch *service.DispatchService
}

func NewIngestHandler(auth *service.AuthService, dispatch *service.DispatchService) *IngestHandler {
	return &IngestHandler{auth: auth, dispatch: dispatch}
}

// ReceiveData authenticates the inbound payload and fans it out to every
// destination of the resolved account. Per-destination relay outcomes never
// change the response: once the fan-out loop completes this reports success.
func (h *IngestHandler) ReceiveData(w http.ResponseWriter, r *http.Request) {
	account, err := h.auth.Authenticate(r.Context(), r.Header.Get(TokenHeader))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			response.Error(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthenticated", nil)
		case errors.Is(err, service.ErrInvalidToken):
			response.Error(w, r, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to authenticate", nil)
		}
		return
	}

	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid Data", nil)
		return
	}

	if _, err := h.dispatch.Dispatch(r.Context(), account, body.Data); err != nil {
		switch {
		case errors.Is(err, service.ErrNoDestinations):
			response.Error(w, r, http.StatusNotFound, "NOT_FOUND", "No destinations found for this account", nil)
		case errors.Is(err, service.ErrInvalidPayload):
			response.Error(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid Data", nil)
		default:
			response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to dispatch data", nil)
		}
		return
	}

	response.JSON(w, r, http.StatusOK, map[string]any{"message": "Data received and sent to destinations successfully"})
}
