package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/recyclechain/ewaste-backend/internal/model"
	"go.uber.org/zap"
)

// StatusResult maps an item's ledger state to a display outcome. Pending is
// true for an item that exists but has not been verified yet; that is an
// informational state, not an error.
type StatusResult struct {
	Status  model.ItemStatus
	Pending bool
	Message string
}

// StatusService resolves a display id to a status report.
type StatusService struct {
	gateway LedgerGateway
	logger  *zap.Logger
}

// NewStatusService builds a StatusService.
func NewStatusService(gateway LedgerGateway, logger *zap.Logger) (*StatusService, error) {
	if gateway == nil {
		return nil, errors.New("ledger gateway is required")
	}
	return &StatusService{
		gateway: gateway,
		logger:  logger.Named("status"),
	}, nil
}

// Check reports the status of the item at displayID. Ids outside the range
// the counter admits are rejected without querying the item itself.
func (s *StatusService) Check(ctx context.Context, displayID model.DisplayID) (*StatusResult, error) {
	if displayID == 0 {
		return nil, fmt.Errorf("%w: invalid item id", model.ErrValidation)
	}

	counter, err := s.gateway.ItemCounter(ctx)
	if err != nil {
		return nil, fmt.Errorf("read item counter: %w", err)
	}
	if uint64(displayID) > counter+1 {
		return nil, fmt.Errorf("%w: item doesn't exist", model.ErrValidation)
	}

	item, err := s.gateway.GetItem(ctx, displayID.Internal())
	if err != nil {
		return nil, fmt.Errorf("read item %d: %w", displayID, err)
	}
	if item.Absent() {
		return nil, fmt.Errorf("%w: item not found", model.ErrNotFound)
	}

	if item.Status == model.StatusSubmitted {
		return &StatusResult{
			Status:  item.Status,
			Pending: true,
			Message: "Item is submitted but hasn't been verified yet",
		}, nil
	}
	return &StatusResult{
		Status:  item.Status,
		Message: fmt.Sprintf("Status: %s", item.Status),
	}, nil
}
