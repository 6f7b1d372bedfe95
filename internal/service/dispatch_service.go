package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/CodeWithNeha/Data-Pusher/internal/domain"
	"github.com/CodeWithNeha/Data-Pusher/internal/observability"
	"github.com/CodeWithNeha/Data-Pusher/internal/relay"
	"github.com/CodeWithNeha/Data-Pusher/internal/repository"
)

var (
	// ErrNoDestinations means the authenticated account has nothing to relay to.
	ErrNoDestinations = errors.New("no destinations found for this account")
	// ErrInvalidPayload means the inbound data mapping was absent.
	ErrInvalidPayload = errors.New("invalid data")
)

// DispatchReport collects per-destination outcomes of one fan-out. It is an
// internal record: the dispatch contract reports success once iteration
// completes, whatever the individual relays did.
type DispatchReport struct {
	DispatchID string
	AccountID  uint
	Results    []relay.Result
}

// Delivered counts the relays that completed with a 2xx response.
func (r *DispatchReport) Delivered() int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == relay.OutcomeSuccess {
			n++
		}
	}
	return n
}

// DispatchService fans an inbound payload out to every destination of an
// account. Relays run sequentially in store order; each one is failure
// isolated, so a dead endpoint never blocks or fails the rest.
type DispatchService struct {
	destinations repository.DestinationRepository
	relay        relay.Client
	logger       *slog.Logger
}

func NewDispatchService(destinations repository.DestinationRepository, relayClient relay.Client, logger *slog.Logger) *DispatchService {
	return &DispatchService{destinations: destinations, relay: relayClient, logger: logger}
}

func (s *DispatchService) Dispatch(ctx context.Context, account *domain.Account, data map[string]any) (*DispatchReport, error) {
	destinations, err := s.destinations.ListByAccount(account.ID)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	if len(destinations) == 0 {
		return nil, ErrNoDestinations
	}
	if data == nil {
		return nil, ErrInvalidPayload
	}

	report := &DispatchReport{
		DispatchID: uuid.NewString(),
		AccountID:  account.ID,
		Results:    make([]relay.Result, 0, len(destinations)),
	}

	ctx, span := observability.StartSpan(ctx, "dispatch",
		trace.WithAttributes(
			attribute.String("dispatch.id", report.DispatchID),
			attribute.Int64("account.id", int64(account.ID)),
			attribute.Int("dispatch.destinations", len(destinations)),
		),
	)
	defer span.End()

	for _, destination := range destinations {
		result := s.relay.Relay(ctx, destination, data)
		report.Results = append(report.Results, result)

		switch result.Outcome {
		case relay.OutcomeFailure:
			s.logger.Warn("relay failed",
				"dispatch_id", report.DispatchID,
				"destination_id", destination.ID,
				"status_code", result.StatusCode,
				"error", result.Err)
		case relay.OutcomeSuccess:
			s.logger.Debug("relay delivered",
				"dispatch_id", report.DispatchID,
				"destination_id", destination.ID,
				"status_code", result.StatusCode)
		}
	}

	s.logger.Info("dispatch completed",
		"dispatch_id", report.DispatchID,
		"account_id", account.ID,
		"destinations", len(destinations),
		"delivered", report.Delivered())
	return report, nil
}
