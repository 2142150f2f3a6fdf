package stats

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/recyclechain/ewaste-backend/internal/model"
	"go.uber.org/zap"
)

const (
	// RewardPerItem is the expected token payout per verified item.
	RewardPerItem = 10
	// RatePerToken converts tokens to the secondary display currency.
	RatePerToken = 2
)

// Rewards reports two independent figures: the wallet's actual token balance
// and the pipeline-computed earnings expectation. They are never reconciled;
// transfers and airdrops make the balance drift from earnings legitimately.
type Rewards struct {
	Balance      float64
	BalanceValue float64
	Earned       int
	EarnedValue  int
	Submitted    int
	Verified     int
	TotalItems   uint64
	Badges       []model.Badge
}

// RewardService combines a token-balance read with a fresh per-address scan.
type RewardService struct {
	balances BalanceReader
	scanner  AddressScanner
	logger   *zap.Logger
}

// NewRewardService builds a RewardService.
func NewRewardService(balances BalanceReader, scanner AddressScanner, logger *zap.Logger) (*RewardService, error) {
	if balances == nil {
		return nil, errors.New("balance reader is required")
	}
	if scanner == nil {
		return nil, errors.New("address scanner is required")
	}
	return &RewardService{
		balances: balances,
		scanner:  scanner,
		logger:   logger.Named("rewards"),
	}, nil
}

// Compute reports the rewards view for address. A failed balance read fails
// the whole call; a failed scan degrades to zero counts, since the balance
// alone is still worth showing.
func (s *RewardService) Compute(ctx context.Context, address common.Address) (*Rewards, error) {
	balance, err := s.balances.BalanceOf(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("read token balance: %w", err)
	}

	var stats model.UserStats
	var total uint64
	stats, total, err = s.scanner.ScanAddress(ctx, strings.ToLower(address.Hex()))
	if err != nil {
		s.logger.Warn("stats scan failed, reporting balance only",
			zap.String("address", address.Hex()), zap.Error(err))
		stats, total = model.UserStats{}, 0
	}

	earned := stats.Verified * RewardPerItem
	return &Rewards{
		Balance:      balance,
		BalanceValue: balance * RatePerToken,
		Earned:       earned,
		EarnedValue:  earned * RatePerToken,
		Submitted:    stats.Submitted,
		Verified:     stats.Verified,
		TotalItems:   total,
		Badges:       BadgesFor(stats.Submitted),
	}, nil
}
