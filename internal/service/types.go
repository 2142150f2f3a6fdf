// Package service holds the pipeline coordinators: submission, verification
// and status resolution.
package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/recyclechain/ewaste-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerGateway reads item records and submits signed write transactions
	// to the external ledger.
	LedgerGateway interface {
		SubmitItem(ctx context.Context, itemType, location string) (*ethtypes.Receipt, error)
		VerifyItem(ctx context.Context, internalID uint64) (*ethtypes.Receipt, error)
		GetItem(ctx context.Context, internalID uint64) (model.Item, error)
		ItemCounter(ctx context.Context) (uint64, error)
		Signer() (common.Address, bool)
	}

	// EventResolver recovers assigned ids from transaction receipts.
	EventResolver interface {
		SubmittedID(receipt *ethtypes.Receipt) (uint64, bool)
		VerifiedID(receipt *ethtypes.Receipt) (uint64, bool)
	}

	// VisibilityWaiter polls for a just-written item to become readable.
	VisibilityWaiter interface {
		WaitVisible(ctx context.Context, internalID uint64) bool
	}

	// EvidenceCache stores captured images between submission and verification.
	EvidenceCache interface {
		Put(id model.DisplayID, image []byte) error
		Get(id model.DisplayID) ([]byte, error)
	}

	// ClassificationGate accepts or rejects a claimed item type for an image.
	ClassificationGate interface {
		Accepts(ctx context.Context, image []byte, claimedType string) error
	}

	// Publisher broadcasts the data-changed signal with its typed delta.
	Publisher interface {
		PublishSubmitted(owner common.Address)
		PublishVerified(owner common.Address)
	}
)
