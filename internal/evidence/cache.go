// Package evidence stores locally captured item images between submission and
// verification so the classifier can see them without re-uploading to the
// ledger. Entries live for the whole process; there is no eviction.
package evidence

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/recyclechain/ewaste-backend/internal/model"
)

// Cache is a process-lifetime image store keyed by display item id.
type Cache struct {
	store *bigcache.BigCache
}

// New creates an empty Cache.
func New() (*Cache, error) {
	cfg := bigcache.Config{
		Shards: 64,
		// Effectively no expiry: evidence must survive an arbitrary gap
		// between submission and verification.
		LifeWindow:         87600 * time.Hour,
		CleanWindow:        0,
		MaxEntriesInWindow: 1024,
		MaxEntrySize:       1 << 20,
	}
	store, err := bigcache.New(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("init evidence cache: %w", err)
	}
	return &Cache{store: store}, nil
}

// Put stores an image under the display id, replacing any previous entry.
func (c *Cache) Put(id model.DisplayID, image []byte) error {
	if len(image) == 0 {
		return fmt.Errorf("%w: empty image", model.ErrValidation)
	}
	return c.store.Set(key(id), image)
}

// Get returns the image cached for the display id. A missing entry is
// model.ErrMissingEvidence.
func (c *Cache) Get(id model.DisplayID) ([]byte, error) {
	image, err := c.store.Get(key(id))
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil, fmt.Errorf("%w (item %d)", model.ErrMissingEvidence, id)
	}
	if err != nil {
		return nil, err
	}
	return image, nil
}

func key(id model.DisplayID) string {
	return strconv.FormatUint(uint64(id), 10)
}
