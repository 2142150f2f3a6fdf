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
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// weiPerToken converts 18-decimal token units to whole tokens.
var weiPerToken = big.NewFloat(1e18)

// TokenReader reads balances from the reward token contract. The token is a
// separate deployment from the item tracker; its balance reflects actual
// holdings including transfers, never the pipeline's computed earnings.
type TokenReader struct {
	contract *bind.BoundContract
	metrics  ClientMetrics
	logger   *zap.Logger
}

// NewTokenReader binds the reward token contract at tokenAddr.
func NewTokenReader(client *ethclient.Client, tokenAddr common.Address, metrics ClientMetrics, logger *zap.Logger) (*TokenReader, error) {
	if metrics == nil {
		return nil, errors.New("ledger client metrics is required")
	}
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("parse token ABI: %w", err)
	}
	return &TokenReader{
		contract: bind.NewBoundContract(tokenAddr, parsed, client, client, client),
		metrics:  metrics,
		logger:   logger.Named("tokenReader").With(zap.String("token", tokenAddr.Hex())),
	}, nil
}

// BalanceOf returns the address's balance in whole tokens.
func (t *TokenReader) BalanceOf(ctx context.Context, addr common.Address) (balance float64, err error) {
	started := time.Now()
	defer func() {
		t.metrics.Observe("balance_of", err, started)
	}()

	var out []interface{}
	if err = t.contract.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", addr); err != nil {
		return 0, fmt.Errorf("read token balance: %w", err)
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("read token balance: unexpected output arity %d", len(out))
	}
	raw, ok := out[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("read token balance: unexpected output type %T", out[0])
	}
	return tokensFromWei(raw), nil
}

func tokensFromWei(v *big.Int) float64 {
	tokens, _ := new(big.Float).Quo(new(big.Float).SetInt(v), weiPerToken).Float64()
	return tokens
}
