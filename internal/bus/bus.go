// Package bus carries the process-wide data-changed broadcast. Delivery is
// fire-and-forget: listeners that are not subscribed at publish time simply
// miss the signal and catch up on their next refresh.
package bus

import (
	evbus "github.com/asaskevich/EventBus"
	"github.com/ethereum/go-ethereum/common"
)

const (
	topicDataChanged = "ewaste:data-changed"
	topicStatsDelta  = "ewaste:stats-delta"
)

// DeltaKind distinguishes the two ledger writes the pipeline performs.
type DeltaKind uint8

const (
	DeltaSubmitted DeltaKind = iota
	DeltaVerified
)

// Delta is the typed payload published alongside the data-changed signal so
// the stats index can update incrementally without a rescan.
type Delta struct {
	Owner common.Address
	Kind  DeltaKind
}

// Bus wraps the underlying event bus with the pipeline's two topics.
type Bus struct {
	bus evbus.Bus
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{bus: evbus.New()}
}

// PublishSubmitted broadcasts a successful item submission.
func (b *Bus) PublishSubmitted(owner common.Address) {
	b.publish(Delta{Owner: owner, Kind: DeltaSubmitted})
}

// PublishVerified broadcasts a successful item verification.
func (b *Bus) PublishVerified(owner common.Address) {
	b.publish(Delta{Owner: owner, Kind: DeltaVerified})
}

func (b *Bus) publish(d Delta) {
	b.bus.Publish(topicStatsDelta, d)
	b.bus.Publish(topicDataChanged)
}

// SubscribeDataChanged registers fn for the argument-less data-changed signal.
// Handlers run asynchronously; publish never waits for them.
func (b *Bus) SubscribeDataChanged(fn func()) error {
	return b.bus.SubscribeAsync(topicDataChanged, fn, false)
}

// UnsubscribeDataChanged removes a previously registered handler.
func (b *Bus) UnsubscribeDataChanged(fn func()) error {
	return b.bus.Unsubscribe(topicDataChanged, fn)
}

// SubscribeDelta registers fn for typed stat deltas.
func (b *Bus) SubscribeDelta(fn func(Delta)) error {
	return b.bus.SubscribeAsync(topicStatsDelta, fn, false)
}

// WaitAsync blocks until all in-flight asynchronous handlers have finished.
// Intended for shutdown and tests.
func (b *Bus) WaitAsync() {
	b.bus.WaitAsync()
}
