// Package model defines domain models for the e-waste pipeline.
package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ItemStatus describes the lifecycle state of an item on the ledger.
// Transitions only move forward: Submitted -> Collected -> Verified.
type ItemStatus uint8

const (
	StatusSubmitted ItemStatus = iota
	StatusCollected
	StatusVerified
)

// String returns the display name of the status.
func (s ItemStatus) String() string {
	switch s {
	case StatusSubmitted:
		return "Submitted"
	case StatusCollected:
		return "Collected"
	case StatusVerified:
		return "Verified"
	default:
		return "Unknown"
	}
}

// Item is a single e-waste record as stored on the ledger. The ledger assigns
// ids sequentially starting at zero; a zero owner address means no such item
// exists, not an item owned by the zero address.
type Item struct {
	ID        uint64
	Owner     common.Address
	ItemType  string
	Location  string
	Timestamp time.Time
	Status    ItemStatus
}

// Absent reports whether the record is the ledger's "no such item" sentinel.
func (i Item) Absent() bool {
	return i.Owner == (common.Address{})
}

// DisplayID is the human-facing item identifier, equal to the ledger's
// internal id plus one. All ids crossing the API boundary are display ids.
type DisplayID uint64

// ParseDisplayID parses a user-supplied id string. Zero, negative and
// non-numeric values are validation errors.
func ParseDisplayID(s string) (DisplayID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid item id %q", ErrValidation, s)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: invalid item id %q", ErrValidation, s)
	}
	return DisplayID(n), nil
}

// Internal converts the display id to the ledger's zero-based id.
func (d DisplayID) Internal() uint64 {
	return uint64(d) - 1
}

// InternalToDisplay converts a ledger id to its display form.
func InternalToDisplay(id uint64) DisplayID {
	return DisplayID(id + 1)
}
