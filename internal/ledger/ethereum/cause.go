package ethereum

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
)

// userRejectedCode is the EIP-1193 code a wallet provider returns when the
// user declines to sign.
const userRejectedCode = 4001

// ReadableCause extracts a human-readable message from a ledger write
// failure. It tries a closed set of known shapes in order: explicit user
// rejection, RPC error data (revert reason), the error's own message, and
// finally a stringified fallback.
func ReadableCause(err error) string {
	if err == nil {
		return "unknown error"
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == userRejectedCode {
		return "transaction rejected by user"
	}

	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		switch data := dataErr.ErrorData().(type) {
		case string:
			if data != "" {
				return data
			}
		case map[string]interface{}:
			if msg, ok := data["message"].(string); ok && msg != "" {
				return msg
			}
		}
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return fmt.Sprintf("%v", err)
}
