// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fermat

import (
	"io"

	"github.com/go-errors/errors"

	"github.com/wgimson/fermat/big"
	"github.com/wgimson/fermat/internal/common"
)

// DefaultIterations is the number of bases tried when a Tester does not set
// its own count. Each extra trial roughly halves the chance of a composite
// slipping through, so 20 trials put the error rate around 2^-20 — except
// for Carmichael numbers, which pass for every base coprime to them no
// matter how many trials are run.
const DefaultIterations = 20

var (
	bigONE = big.NewInt(1)

	// ErrInvalidIterations is returned when a negative iteration count is
	// configured; at least one trial is needed for a meaningful verdict.
	ErrInvalidIterations = errors.New("iteration count must be at least 1")
)

// A Tester runs Fermat primality trials. The zero value is ready for use
// and draws bases from the process-wide random source with
// DefaultIterations trials per test.
type Tester struct {
	// Rand is the entropy source bases are drawn from. Tests inject a
	// seeded CPRNG here to make base selection reproducible. Nil means the
	// shared source seeded at process start.
	Rand io.Reader

	// Iterations is the number of bases tried per test. Zero means
	// DefaultIterations; negative counts are rejected.
	Iterations int
}

func (t *Tester) rand() io.Reader {
	if t.Rand != nil {
		return t.Rand
	}
	return common.DefaultSource
}

func (t *Tester) iterations() (int, error) {
	if t.Iterations < 0 {
		return 0, ErrInvalidIterations
	}
	if t.Iterations == 0 {
		return DefaultIterations, nil
	}
	return t.Iterations, nil
}

// FindWitness draws up to t.Iterations random bases and returns the first
// Fermat witness among them: a base a with a^(n-1) != 1 (mod n), proving n
// composite. It returns nil if no witness turned up, which is the
// probable-prime outcome.
//
// n must be greater than 1; for n <= 1 no base in [1, n) exists and
// common.ErrInvalidModulus is returned.
func (t *Tester) FindWitness(n *big.Int) (*big.Int, error) {
	if n.Cmp(bigONE) <= 0 {
		return nil, common.ErrInvalidModulus
	}
	k, err := t.iterations()
	if err != nil {
		return nil, err
	}

	exp := new(big.Int).Sub(n, bigONE)
	for i := 0; i < k; i++ {
		a, err := common.RandomFermatBase(t.rand(), n)
		if err != nil {
			return nil, err
		}
		r, err := common.ModPow(a, exp, n)
		if err != nil {
			return nil, err
		}
		if r.Cmp(bigONE) != 0 {
			return a, nil
		}
	}
	return nil, nil
}

// Test reports whether n is probably prime. A false verdict is a proof of
// compositeness (a witness was found); a true verdict is probabilistic,
// with an error rate of roughly 2^-Iterations for composites that are not
// Carmichael numbers.
//
// n = 1 is composite by definition and handled before any base is drawn.
// For n < 1 the test is undefined and an error is returned.
func (t *Tester) Test(n *big.Int) (bool, error) {
	if n.Cmp(bigONE) == 0 {
		return false, nil
	}
	witness, err := t.FindWitness(n)
	if err != nil {
		return false, err
	}
	return witness == nil, nil
}

// Test reports whether n is probably prime after the given number of
// trials on the process-wide random source.
func Test(n *big.Int, iterations int) (bool, error) {
	if iterations < 1 {
		return false, ErrInvalidIterations
	}
	t := Tester{Iterations: iterations}
	return t.Test(n)
}
