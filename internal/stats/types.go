// Package stats rebuilds per-address aggregates from full ledger scans and
// keeps them fresh through an incremental in-memory index.
package stats

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/recyclechain/ewaste-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ItemLedger reads item records and the item counter from the ledger.
	ItemLedger interface {
		GetItem(ctx context.Context, internalID uint64) (model.Item, error)
		ItemCounter(ctx context.Context) (uint64, error)
	}

	// BalanceReader reads an address's reward token balance.
	BalanceReader interface {
		BalanceOf(ctx context.Context, addr common.Address) (float64, error)
	}

	// LedgerScanner produces a full aggregate snapshot: per-address stats
	// keyed by lowercased hex address, plus the total item count scanned.
	LedgerScanner interface {
		Scan(ctx context.Context) (map[string]model.UserStats, uint64, error)
	}

	// AddressScanner produces a single address's stats from a fresh scan.
	AddressScanner interface {
		ScanAddress(ctx context.Context, address string) (model.UserStats, uint64, error)
	}

	// StatsSource serves aggregate reads from the most recent snapshot.
	StatsSource interface {
		Snapshot() (map[string]model.UserStats, uint64)
		Lookup(address string) (model.UserStats, bool)
	}

	// ScanMetrics observes scan outcomes.
	ScanMetrics interface {
		ObserveScan(err error, items uint64, started time.Time)
		ObserveSkippedRead()
	}
)
