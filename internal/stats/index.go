package stats

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/recyclechain/ewaste-backend/internal/model"
)

// Index is the in-memory aggregate snapshot. Writes from the pipeline apply
// incrementally between scans; a periodic full rescan replaces the snapshot
// wholesale so drift from missed deltas never accumulates.
type Index struct {
	mu     sync.RWMutex
	byAddr map[string]model.UserStats
	total  uint64
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{byAddr: make(map[string]model.UserStats)}
}

// ApplySubmitted records a new submission for owner.
func (i *Index) ApplySubmitted(owner common.Address) {
	key := strings.ToLower(owner.Hex())

	i.mu.Lock()
	defer i.mu.Unlock()
	entry := i.byAddr[key]
	entry.Address = key
	entry.Submitted++
	i.byAddr[key] = entry
	i.total++
}

// ApplyVerified records a verification for owner. The item itself was
// already counted at submission time, so the total is untouched.
func (i *Index) ApplyVerified(owner common.Address) {
	key := strings.ToLower(owner.Hex())

	i.mu.Lock()
	defer i.mu.Unlock()
	entry := i.byAddr[key]
	entry.Address = key
	entry.Verified++
	i.byAddr[key] = entry
}

// Replace swaps in a freshly scanned snapshot, discarding all incremental
// state.
func (i *Index) Replace(byAddr map[string]model.UserStats, total uint64) {
	if byAddr == nil {
		byAddr = make(map[string]model.UserStats)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.byAddr = byAddr
	i.total = total
}

// Snapshot returns a copy of the aggregates and the total item count.
func (i *Index) Snapshot() (map[string]model.UserStats, uint64) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	out := make(map[string]model.UserStats, len(i.byAddr))
	for k, v := range i.byAddr {
		out[k] = v
	}
	return out, i.total
}

// Lookup returns the stats for a (case-insensitive) address.
func (i *Index) Lookup(address string) (model.UserStats, bool) {
	key := strings.ToLower(address)

	i.mu.RLock()
	defer i.mu.RUnlock()
	entry, ok := i.byAddr[key]
	return entry, ok
}
