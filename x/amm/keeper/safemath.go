package keeper

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())

	maxInt := new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)
	if result.Cmp(maxInt) >= 0 {
		return math.Int{}, fmt.Errorf("overflow: addition result exceeds maximum value")
	}

	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts two math.Int values with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, fmt.Errorf("underflow: cannot subtract %s from %s", b.String(), a.String())
	}

	result := new(big.Int).Sub(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}

	result := new(big.Int).Mul(a.BigInt(), b.BigInt())

	maxInt := new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)
	if result.Cmp(maxInt) >= 0 {
		return math.Int{}, fmt.Errorf("overflow: multiplication result exceeds maximum value")
	}

	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv computes a*b/c with overflow checking on the intermediate product
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, fmt.Errorf("division by zero")
	}

	product, err := SafeMul(a, b)
	if err != nil {
		return math.Int{}, err
	}

	return product.Quo(c), nil
}

// IntSqrt returns the integer square root of a non-negative value
func IntSqrt(v math.Int) (math.Int, error) {
	if v.IsNegative() {
		return math.Int{}, fmt.Errorf("square root of negative value")
	}

	result := new(big.Int).Sqrt(v.BigInt())
	return math.NewIntFromBigInt(result), nil
}
