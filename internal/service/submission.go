package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/recyclechain/ewaste-backend/internal/model"
	"go.uber.org/zap"
)

// SubmitRequest carries a new item's user-supplied fields.
type SubmitRequest struct {
	ItemType string
	Location string
	Image    []byte
}

// SubmissionResult reports a submission's outcome. IDResolved is false when
// the receipt carried no recognizable event; the write still succeeded and
// Message says so.
type SubmissionResult struct {
	DisplayID  model.DisplayID
	IDResolved bool
	Visible    bool
	Message    string
}

// SubmissionService coordinates a new item submission: validate, write,
// resolve the assigned id, confirm visibility, cache the image, broadcast.
type SubmissionService struct {
	gateway   LedgerGateway
	resolver  EventResolver
	waiter    VisibilityWaiter
	cache     EvidenceCache
	publisher Publisher
	logger    *zap.Logger
}

// NewSubmissionService builds a SubmissionService with its collaborators.
func NewSubmissionService(
	gateway LedgerGateway,
	resolver EventResolver,
	waiter VisibilityWaiter,
	cache EvidenceCache,
	publisher Publisher,
	logger *zap.Logger,
) (*SubmissionService, error) {
	if gateway == nil {
		return nil, errors.New("ledger gateway is required")
	}
	if resolver == nil {
		return nil, errors.New("event resolver is required")
	}
	if waiter == nil {
		return nil, errors.New("visibility waiter is required")
	}
	if cache == nil {
		return nil, errors.New("evidence cache is required")
	}
	if publisher == nil {
		return nil, errors.New("publisher is required")
	}
	return &SubmissionService{
		gateway:   gateway,
		resolver:  resolver,
		waiter:    waiter,
		cache:     cache,
		publisher: publisher,
		logger:    logger.Named("submission"),
	}, nil
}

// Submit runs the submission pipeline. The ledger is the sole source of
// truth: once the write is mined there is no rollback, and every later step
// is best-effort decoration of the result.
func (s *SubmissionService) Submit(ctx context.Context, req SubmitRequest) (*SubmissionResult, error) {
	if strings.TrimSpace(req.ItemType) == "" || strings.TrimSpace(req.Location) == "" {
		return nil, fmt.Errorf("%w: please fill in all fields", model.ErrValidation)
	}
	if len(req.Image) == 0 {
		return nil, fmt.Errorf("%w: please upload an image", model.ErrValidation)
	}
	owner, ok := s.gateway.Signer()
	if !ok {
		return nil, model.ErrNoSigner
	}

	receipt, err := s.gateway.SubmitItem(ctx, req.ItemType, req.Location)
	if err != nil {
		return nil, err
	}

	result := &SubmissionResult{}
	internalID, resolved := s.resolver.SubmittedID(receipt)
	if !resolved {
		s.logger.Warn("submission mined but no item event found in receipt")
		result.Message = "Item added successfully! (Could not fetch Item ID)"
		s.publisher.PublishSubmitted(owner)
		return result, nil
	}

	result.IDResolved = true
	result.DisplayID = model.InternalToDisplay(internalID)

	// Advisory: a failed visibility check never rolls back the submission.
	result.Visible = s.waiter.WaitVisible(ctx, internalID)
	if result.Visible {
		result.Message = fmt.Sprintf("Item added successfully! Your Item ID is %d", result.DisplayID)
	} else {
		result.Message = fmt.Sprintf("Item added! Your Item ID is %d. (It may take a moment to appear in the system.)", result.DisplayID)
	}

	if err := s.cache.Put(result.DisplayID, req.Image); err != nil {
		// Best-effort: verification will fail later with a missing-evidence
		// error if the image never made it into the cache.
		s.logger.Warn("failed to cache submission image",
			zap.Uint64("displayID", uint64(result.DisplayID)),
			zap.Error(err),
		)
	}

	s.logger.Info("item submitted",
		zap.Uint64("displayID", uint64(result.DisplayID)),
		zap.Bool("visible", result.Visible),
		zap.String("owner", owner.Hex()),
	)
	s.publisher.PublishSubmitted(owner)
	return result, nil
}
