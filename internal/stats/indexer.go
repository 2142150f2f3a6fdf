package stats

import (
	"context"
	"errors"
	"time"

	"github.com/recyclechain/ewaste-backend/internal/clock"
	"go.uber.org/zap"
)

const (
	defaultReconcileInterval = 5 * time.Minute
	defaultRetryInterval     = 15 * time.Second
)

// Indexer keeps an Index reconciled against the ledger. Incremental deltas
// from the pipeline land on the index directly; the indexer's job is the
// periodic full rescan that replaces the snapshot, plus the on-demand rescan
// triggered by the data-changed signal.
type Indexer struct {
	scanner           LedgerScanner
	index             *Index
	logger            *zap.Logger
	wait              func(context.Context, time.Duration, <-chan struct{}) error
	reconcileInterval time.Duration
	retryInterval     time.Duration
	signal            <-chan struct{}
}

// NewIndexer builds an Indexer. signal may be nil; reconciliation then runs
// on the interval alone.
func NewIndexer(
	scanner LedgerScanner,
	index *Index,
	reconcileInterval time.Duration,
	logger *zap.Logger,
	signal <-chan struct{},
) (*Indexer, error) {
	if scanner == nil {
		return nil, errors.New("ledger scanner is required")
	}
	if index == nil {
		return nil, errors.New("index is required")
	}
	if reconcileInterval <= 0 {
		reconcileInterval = defaultReconcileInterval
	}

	return &Indexer{
		scanner:           scanner,
		index:             index,
		logger:            logger.Named("indexer"),
		wait:              clock.WaitSignal,
		reconcileInterval: reconcileInterval,
		retryInterval:     defaultRetryInterval,
		signal:            signal,
	}, nil
}

// Run reconciles until the context is canceled.
func (s *Indexer) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			s.logger.Warn("reconcile iteration failed, backing off",
				zap.Error(err), zap.Duration("sleep", s.retryInterval))
			if sleepErr := s.wait(ctx, s.retryInterval, nil); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Indexer) run(ctx context.Context) error {
	byAddr, total, err := s.scanner.Scan(ctx)
	if err != nil {
		return err
	}
	s.index.Replace(byAddr, total)
	s.logger.Debug("index reconciled", zap.Uint64("items", total), zap.Int("addresses", len(byAddr)))

	return s.wait(ctx, s.reconcileInterval, s.signal)
}
