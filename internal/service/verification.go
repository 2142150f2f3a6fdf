package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/recyclechain/ewaste-backend/internal/model"
	"go.uber.org/zap"
)

// VerificationResult reports a completed verification. IDResolved mirrors
// the submission side: false means the verify transaction mined but its
// receipt carried no recognizable event.
type VerificationResult struct {
	DisplayID  model.DisplayID
	IDResolved bool
	// Verifications is this process's running count of successful
	// verifications, used to drive reward refreshes.
	Verifications uint64
}

// VerificationService coordinates item verification. The classification gate
// runs before the ledger write: any failure up to and including the gate
// leaves ledger state untouched.
type VerificationService struct {
	gateway       LedgerGateway
	resolver      EventResolver
	cache         EvidenceCache
	gate          ClassificationGate
	publisher     Publisher
	logger        *zap.Logger
	verifications atomic.Uint64
}

// NewVerificationService builds a VerificationService with its collaborators.
func NewVerificationService(
	gateway LedgerGateway,
	resolver EventResolver,
	cache EvidenceCache,
	gate ClassificationGate,
	publisher Publisher,
	logger *zap.Logger,
) (*VerificationService, error) {
	if gateway == nil {
		return nil, errors.New("ledger gateway is required")
	}
	if resolver == nil {
		return nil, errors.New("event resolver is required")
	}
	if cache == nil {
		return nil, errors.New("evidence cache is required")
	}
	if gate == nil {
		return nil, errors.New("classification gate is required")
	}
	if publisher == nil {
		return nil, errors.New("publisher is required")
	}
	return &VerificationService{
		gateway:   gateway,
		resolver:  resolver,
		cache:     cache,
		gate:      gate,
		publisher: publisher,
		logger:    logger.Named("verification"),
	}, nil
}

// Verify runs the verification pipeline for a display id.
func (s *VerificationService) Verify(ctx context.Context, displayID model.DisplayID) (*VerificationResult, error) {
	if displayID == 0 {
		return nil, fmt.Errorf("%w: invalid item id", model.ErrValidation)
	}
	if _, ok := s.gateway.Signer(); !ok {
		return nil, model.ErrNoSigner
	}

	internalID := displayID.Internal()
	item, err := s.gateway.GetItem(ctx, internalID)
	if err != nil {
		return nil, fmt.Errorf("read item %d: %w", displayID, err)
	}
	if item.Absent() {
		return nil, fmt.Errorf("%w: item not available for verification yet, try again in a moment", model.ErrNotFound)
	}
	if item.Status == model.StatusVerified {
		return nil, model.ErrAlreadyVerified
	}

	image, err := s.cache.Get(displayID)
	if err != nil {
		return nil, err
	}

	if err := s.gate.Accepts(ctx, image, item.ItemType); err != nil {
		return nil, err
	}

	receipt, err := s.gateway.VerifyItem(ctx, internalID)
	if err != nil {
		return nil, err
	}

	result := &VerificationResult{
		Verifications: s.verifications.Add(1),
	}
	if verifiedID, ok := s.resolver.VerifiedID(receipt); ok {
		result.IDResolved = true
		result.DisplayID = model.InternalToDisplay(verifiedID)
	} else {
		s.logger.Warn("verification mined but no verified event found in receipt",
			zap.Uint64("displayID", uint64(displayID)),
		)
	}

	s.logger.Info("item verified",
		zap.Uint64("displayID", uint64(displayID)),
		zap.String("owner", item.Owner.Hex()),
	)
	s.publisher.PublishVerified(item.Owner)
	return result, nil
}
