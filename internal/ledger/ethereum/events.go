package ethereum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/recyclechain/ewaste-backend/pkg/safe"
)

const (
	eventItemSubmitted = "ItemSubmitted"
	eventItemVerified  = "ItemVerified"
)

// EventResolver recovers the assigned item id from a transaction receipt's
// logs. Decoding is typed against the tracker ABI's closed event set; logs
// that match no known event are skipped rather than probed.
type EventResolver struct {
	abi abi.ABI
}

// NewEventResolver parses the tracker ABI the resolver decodes against.
func NewEventResolver() (*EventResolver, error) {
	parsed, err := abi.JSON(strings.NewReader(trackerABI))
	if err != nil {
		return nil, fmt.Errorf("parse tracker ABI: %w", err)
	}
	return &EventResolver{abi: parsed}, nil
}

// SubmittedID returns the internal id from the receipt's ItemSubmitted event.
// The second return is false when no such event is present; the submission
// itself may still have succeeded.
func (r *EventResolver) SubmittedID(receipt *ethtypes.Receipt) (uint64, bool) {
	return r.eventID(receipt, eventItemSubmitted)
}

// VerifiedID returns the internal id from the receipt's ItemVerified event.
func (r *EventResolver) VerifiedID(receipt *ethtypes.Receipt) (uint64, bool) {
	return r.eventID(receipt, eventItemVerified)
}

func (r *EventResolver) eventID(receipt *ethtypes.Receipt, name string) (uint64, bool) {
	if receipt == nil {
		return 0, false
	}
	event, ok := r.abi.Events[name]
	if !ok {
		return 0, false
	}

	for _, lg := range receipt.Logs {
		if lg == nil || len(lg.Topics) == 0 || lg.Topics[0] != event.ID {
			continue
		}
		vals, err := r.abi.Unpack(name, lg.Data)
		if err != nil || len(vals) == 0 {
			continue
		}
		raw, ok := vals[0].(*big.Int)
		if !ok {
			continue
		}
		id, err := safe.BigUint64(raw)
		if err != nil {
			continue
		}
		return id, true
	}
	return 0, false
}
