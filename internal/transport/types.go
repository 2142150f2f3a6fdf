// Package transport exposes the HTTP API.
package transport

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/recyclechain/ewaste-backend/internal/model"
	"github.com/recyclechain/ewaste-backend/internal/service"
	"github.com/recyclechain/ewaste-backend/internal/stats"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Submitter runs the submission pipeline.
	Submitter interface {
		Submit(ctx context.Context, req service.SubmitRequest) (*service.SubmissionResult, error)
	}

	// Verifier runs the verification pipeline.
	Verifier interface {
		Verify(ctx context.Context, displayID model.DisplayID) (*service.VerificationResult, error)
	}

	// StatusChecker resolves an item's status.
	StatusChecker interface {
		Check(ctx context.Context, displayID model.DisplayID) (*service.StatusResult, error)
	}

	// BoardProvider computes the leaderboard for a requesting address.
	BoardProvider interface {
		Compute(address string) *stats.Leaderboard
	}

	// RewardsProvider computes the rewards view for an address.
	RewardsProvider interface {
		Compute(ctx context.Context, address common.Address) (*stats.Rewards, error)
	}
)
