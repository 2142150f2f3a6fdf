package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/recyclechain/ewaste-backend/internal/model"
	"github.com/recyclechain/ewaste-backend/pkg/safe"
	"go.uber.org/zap"
)

type (
	// ClientMetrics records metrics for contract calls.
	ClientMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Gateway is the write/read boundary to the item tracker contract. Reads go
// through eth_call; writes are signed with the configured key and waited to
// mining. The ledger itself stays the sole arbiter of write ordering.
type Gateway struct {
	client     *ethclient.Client
	contract   *bind.BoundContract
	signer     *bind.TransactOpts
	signerAddr common.Address
	metrics    ClientMetrics
	logger     *zap.Logger
}

// NewGateway binds the tracker contract at contractAddr. privateKeyHex may be
// empty, which leaves the gateway read-only: writes then fail with
// model.ErrNoSigner.
func NewGateway(
	client *ethclient.Client,
	contractAddr common.Address,
	privateKeyHex string,
	chainID *big.Int,
	metrics ClientMetrics,
	logger *zap.Logger,
) (*Gateway, error) {
	if metrics == nil {
		return nil, errors.New("ledger client metrics is required")
	}
	parsed, err := abi.JSON(strings.NewReader(trackerABI))
	if err != nil {
		return nil, fmt.Errorf("parse tracker ABI: %w", err)
	}

	g := &Gateway{
		client:   client,
		contract: bind.NewBoundContract(contractAddr, parsed, client, client, client),
		metrics:  metrics,
		logger:   logger.Named("ledgerGateway").With(zap.String("contract", contractAddr.Hex())),
	}

	if privateKeyHex != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
		if err != nil {
			return nil, fmt.Errorf("parse signing key: %w", err)
		}
		signer, err := bind.NewKeyedTransactorWithChainID(key, chainID)
		if err != nil {
			return nil, fmt.Errorf("build transactor: %w", err)
		}
		g.signer = signer
		g.signerAddr = crypto.PubkeyToAddress(key.PublicKey)
	}

	return g, nil
}

// Signer returns the configured signing address, if any.
func (g *Gateway) Signer() (common.Address, bool) {
	return g.signerAddr, g.signer != nil
}

// SubmitItem writes a new item and waits for the transaction to be mined.
// Rejections, network faults and reverts come back as *model.SubmissionError
// with a readable cause.
func (g *Gateway) SubmitItem(ctx context.Context, itemType, location string) (receipt *ethtypes.Receipt, err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("submit_item", err, started)
	}()
	return g.transact(ctx, "submitItem", itemType, location)
}

// VerifyItem marks the item at internalID verified and waits for mining.
func (g *Gateway) VerifyItem(ctx context.Context, internalID uint64) (receipt *ethtypes.Receipt, err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("verify_item", err, started)
	}()
	return g.transact(ctx, "verifyItem", new(big.Int).SetUint64(internalID))
}

func (g *Gateway) transact(ctx context.Context, method string, args ...interface{}) (*ethtypes.Receipt, error) {
	if g.signer == nil {
		return nil, model.ErrNoSigner
	}

	opts := *g.signer
	opts.Context = ctx
	tx, err := g.contract.Transact(&opts, method, args...)
	if err != nil {
		return nil, model.NewSubmissionError(ReadableCause(err), err)
	}

	g.logger.Debug("transaction sent", zap.String("method", method), zap.String("tx", tx.Hash().Hex()))
	receipt, err := bind.WaitMined(ctx, g.client, tx)
	if err != nil {
		return nil, model.NewSubmissionError(ReadableCause(err), err)
	}
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		revert := errors.New("transaction reverted")
		return nil, model.NewSubmissionError(revert.Error(), revert)
	}
	return receipt, nil
}

// GetItem reads the record at the given internal id. The zero-address owner
// sentinel passes through unchanged; interpreting it is the caller's job.
func (g *Gateway) GetItem(ctx context.Context, internalID uint64) (item model.Item, err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("get_item", err, started)
	}()

	var out []interface{}
	if err = g.contract.Call(&bind.CallOpts{Context: ctx}, &out, "getItem", new(big.Int).SetUint64(internalID)); err != nil {
		return model.Item{}, fmt.Errorf("get item %d: %w", internalID, err)
	}
	return parseItem(out)
}

// ItemCounter reads the ledger's item counter, the exclusive upper bound for
// valid internal ids.
func (g *Gateway) ItemCounter(ctx context.Context) (counter uint64, err error) {
	started := time.Now()
	defer func() {
		g.metrics.Observe("item_counter", err, started)
	}()

	var out []interface{}
	if err = g.contract.Call(&bind.CallOpts{Context: ctx}, &out, "itemCounter"); err != nil {
		return 0, fmt.Errorf("read item counter: %w", err)
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("read item counter: unexpected output arity %d", len(out))
	}
	raw, ok := out[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("read item counter: unexpected output type %T", out[0])
	}
	return safe.BigUint64(raw)
}

// parseItem maps getItem outputs to the domain model.
func parseItem(out []interface{}) (model.Item, error) {
	if len(out) != 6 {
		return model.Item{}, fmt.Errorf("parse item: unexpected output arity %d", len(out))
	}

	rawID, ok := out[0].(*big.Int)
	if !ok {
		return model.Item{}, fmt.Errorf("parse item: id has type %T", out[0])
	}
	owner, ok := out[1].(common.Address)
	if !ok {
		return model.Item{}, fmt.Errorf("parse item: owner has type %T", out[1])
	}
	itemType, ok := out[2].(string)
	if !ok {
		return model.Item{}, fmt.Errorf("parse item: itemType has type %T", out[2])
	}
	location, ok := out[3].(string)
	if !ok {
		return model.Item{}, fmt.Errorf("parse item: location has type %T", out[3])
	}
	rawTS, ok := out[4].(*big.Int)
	if !ok {
		return model.Item{}, fmt.Errorf("parse item: timestamp has type %T", out[4])
	}
	rawStatus, ok := out[5].(uint8)
	if !ok {
		return model.Item{}, fmt.Errorf("parse item: status has type %T", out[5])
	}

	id, err := safe.BigUint64(rawID)
	if err != nil {
		return model.Item{}, fmt.Errorf("parse item id: %w", err)
	}
	ts, err := safe.BigUint64(rawTS)
	if err != nil {
		return model.Item{}, fmt.Errorf("parse item timestamp: %w", err)
	}

	return model.Item{
		ID:        id,
		Owner:     owner,
		ItemType:  itemType,
		Location:  location,
		Timestamp: time.Unix(int64(ts), 0).UTC(),
		Status:    model.ItemStatus(rawStatus),
	}, nil
}
