package stats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/recyclechain/ewaste-backend/internal/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Scanner walks every item on the ledger and folds it into per-address
// aggregates. Individual item reads that fail are skipped so one flaky read
// cannot sink a whole scan; the skip is counted and logged instead.
type Scanner struct {
	ledger  ItemLedger
	limiter ratelimit.Limiter
	metrics ScanMetrics
	logger  *zap.Logger
}

// NewScanner builds a Scanner. rps caps ledger reads per second; zero or
// negative disables the cap.
func NewScanner(ledger ItemLedger, rps int, metrics ScanMetrics, logger *zap.Logger) (*Scanner, error) {
	if ledger == nil {
		return nil, errors.New("item ledger is required")
	}
	if metrics == nil {
		return nil, errors.New("scan metrics is required")
	}

	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &Scanner{
		ledger:  ledger,
		limiter: limiter,
		metrics: metrics,
		logger:  logger.Named("scanner"),
	}, nil
}

// Scan reads items at internal ids [0, counter) and aggregates them by
// lowercased owner address. It returns the aggregates and the counter value
// the scan covered.
func (s *Scanner) Scan(ctx context.Context) (map[string]model.UserStats, uint64, error) {
	started := time.Now()

	counter, err := s.ledger.ItemCounter(ctx)
	if err != nil {
		s.metrics.ObserveScan(err, 0, started)
		return nil, 0, fmt.Errorf("read item counter: %w", err)
	}

	byAddr := make(map[string]model.UserStats)
	for id := uint64(0); id < counter; id++ {
		if err := ctx.Err(); err != nil {
			s.metrics.ObserveScan(err, counter, started)
			return nil, 0, err
		}
		s.limiter.Take()

		item, err := s.ledger.GetItem(ctx, id)
		if err != nil {
			s.metrics.ObserveSkippedRead()
			s.logger.Warn("skipping unreadable item", zap.Uint64("internalID", id), zap.Error(err))
			continue
		}
		if item.Absent() {
			continue
		}

		key := strings.ToLower(item.Owner.Hex())
		entry := byAddr[key]
		entry.Address = key
		entry.Submitted++
		if item.Status == model.StatusVerified {
			entry.Verified++
		}
		byAddr[key] = entry
	}

	s.metrics.ObserveScan(nil, counter, started)
	s.logger.Debug("ledger scan complete",
		zap.Uint64("items", counter),
		zap.Int("addresses", len(byAddr)),
		zap.Duration("took", time.Since(started)),
	)
	return byAddr, counter, nil
}

// ScanAddress runs a full scan and projects out a single address's stats
// along with the total item count. Addresses with no items get zero counts.
func (s *Scanner) ScanAddress(ctx context.Context, address string) (model.UserStats, uint64, error) {
	byAddr, total, err := s.Scan(ctx)
	if err != nil {
		return model.UserStats{}, 0, err
	}

	key := strings.ToLower(address)
	entry, ok := byAddr[key]
	if !ok {
		entry = model.UserStats{Address: key}
	}
	return entry, total, nil
}
