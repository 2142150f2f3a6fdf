// Package safe provides helpers for safe numeric conversions with range checks.
package safe

import (
	"fmt"
	"math/big"
)

// BigUint64 converts a big integer returned by a contract call to uint64,
// rejecting nil and out-of-range values.
func BigUint64(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("nil big integer")
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("value %s out of uint64 range", v.String())
	}
	return v.Uint64(), nil
}
