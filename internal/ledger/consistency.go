// Package ledger defines the read-side helpers shared by consumers of the
// item ledger.
package ledger

import (
	"context"
	"time"

	"github.com/recyclechain/ewaste-backend/internal/clock"
	"github.com/recyclechain/ewaste-backend/internal/model"
	"go.uber.org/zap"
)

const (
	defaultVisibilityAttempts = 3
	defaultVisibilityDelay    = time.Second
)

type (
	// ItemReader reads a single item record by internal id.
	ItemReader interface {
		GetItem(ctx context.Context, internalID uint64) (model.Item, error)
	}
)

// ConsistencyReader masks the ledger's read lag after a confirmed write: a
// just-mined item may not be visible to an immediate read. It polls a bounded
// number of times with a fixed delay. The outcome is advisory only; callers
// must never treat "not yet visible" as a failure of the write itself.
type ConsistencyReader struct {
	reader   ItemReader
	attempts int
	delay    time.Duration
	sleep    func(context.Context, time.Duration) error
	logger   *zap.Logger
}

// NewConsistencyReader builds a ConsistencyReader with the default policy of
// 3 attempts spaced 1 second apart.
func NewConsistencyReader(reader ItemReader, logger *zap.Logger) *ConsistencyReader {
	return &ConsistencyReader{
		reader:   reader,
		attempts: defaultVisibilityAttempts,
		delay:    defaultVisibilityDelay,
		sleep:    clock.SleepWithContext,
		logger:   logger.Named("consistencyReader"),
	}
}

// WaitVisible reports whether the item became visible within the retry
// window. Read errors count as "not visible" for that attempt.
func (r *ConsistencyReader) WaitVisible(ctx context.Context, internalID uint64) bool {
	for attempt := 0; attempt < r.attempts; attempt++ {
		item, err := r.reader.GetItem(ctx, internalID)
		if err == nil && !item.Absent() {
			return true
		}
		if err != nil {
			r.logger.Debug("visibility read failed",
				zap.Uint64("internalID", internalID),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
		}
		if sleepErr := r.sleep(ctx, r.delay); sleepErr != nil {
			return false
		}
	}
	return false
}
