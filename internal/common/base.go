// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"io"

	"github.com/go-errors/errors"

	"github.com/wgimson/fermat/big"
)

// Often we need to refer to the same small constant big numbers, no point in
// creating them again and again.
var (
	bigONE = big.NewInt(1)
)

// ErrInvalidModulus is returned when a Fermat base is requested for a
// modulus n <= 1, for which no base in [1, n) exists and the rejection
// loop would never terminate.
var ErrInvalidModulus = errors.New("modulus must be greater than 1")

var ErrNoModInverse = errors.New("modular inverse does not exist")

// RandomBigInt returns a random big integer value in the range
// [0,(2^numBits)-1], inclusive, read from the given source.
func RandomBigInt(rand io.Reader, numBits uint) (*big.Int, error) {
	bts := make([]byte, (numBits+7)/8)
	if _, err := io.ReadFull(rand, bts); err != nil {
		return nil, err
	}

	// Clear excess bits in the first byte so the result has at most numBits bits.
	if rem := numBits % 8; rem != 0 {
		bts[0] &= uint8(int(1<<rem) - 1)
	}
	return new(big.Int).SetBytes(bts), nil
}

// RandomFermatBase returns a base a with 1 <= a < n for use in a Fermat
// congruence check against n, drawn from the given source.
//
// It uses rejection sampling: candidates of the same bit length as n are
// drawn until one falls inside [1, n). Since a bit-length-matched candidate
// lands in [0, 2n) roughly uniformly, each draw is accepted with
// probability of about one half, so the loop finishes after two draws on
// average; there is no retry cap.
func RandomFermatBase(rand io.Reader, n *big.Int) (*big.Int, error) {
	if n.Cmp(bigONE) <= 0 {
		return nil, ErrInvalidModulus
	}

	for {
		a, err := RandomBigInt(rand, uint(n.BitLen()))
		if err != nil {
			return nil, err
		}
		if bigONE.Cmp(a) <= 0 && a.Cmp(n) < 0 {
			return a, nil
		}
	}
}

// ModPow computes x^y mod m. The exponent (y) can be negative, in which case it
// uses the modular inverse to compute the result (in contrast to Go's Exp
// function).
func ModPow(x, y, m *big.Int) (*big.Int, error) {
	if y.Sign() == -1 {
		t := new(big.Int).ModInverse(x, m)
		if t == nil {
			return nil, ErrNoModInverse
		}
		return t.Exp(t, new(big.Int).Neg(y), m), nil
	}
	return new(big.Int).Exp(x, y, m), nil
}
