package fermat

import (
	"bytes"

	"github.com/go-errors/errors"
	"github.com/multiformats/go-multihash"

	"github.com/wgimson/fermat/big"
	"github.com/wgimson/fermat/cbor"
	"github.com/wgimson/fermat/internal/common"
)

type (
	// Trial is the record of a single Fermat trial: the base that was
	// drawn, the residue base^(n-1) mod n, and whether that residue proved
	// n composite. Trials are chained: ParentHash is the hash of the
	// preceding trial record, so a transcript cannot be reordered or
	// truncated in the middle without detection.
	Trial struct {
		Base       *big.Int
		Residue    *big.Int
		Witness    bool
		ParentHash multihash.Multihash
	}

	// Transcript is the full record of one primality test: the number
	// under test, the trials performed in order, and the verdict they
	// support. It serializes to deterministic CBOR and to JSON (big
	// integers as base64).
	Transcript struct {
		N             *big.Int
		Iterations    int // requested trial count; len(Trials) is smaller when a witness cut the run short
		ProbablyPrime bool
		Trials        []Trial
	}
)

// initialHash is the parent of the first trial in a transcript: a SHA-256
// multihash with an all-zero digest.
func initialHash() multihash.Multihash {
	mh, err := multihash.Encode(make([]byte, 32), multihash.SHA2_256)
	if err != nil {
		panic(err) // Encode of a well-formed digest should never error
	}
	return mh
}

func (trial *Trial) hash() (multihash.Multihash, error) {
	bts, err := cbor.Marshal(trial)
	if err != nil {
		return nil, err
	}
	return multihash.Sum(bts, multihash.SHA2_256, -1)
}

// Digest returns the SHA-256 multihash of the transcript's deterministic
// CBOR encoding.
func (t *Transcript) Digest() (multihash.Multihash, error) {
	bts, err := cbor.Marshal(t)
	if err != nil {
		return nil, err
	}
	return multihash.Sum(bts, multihash.SHA2_256, -1)
}

// VerifyChain checks that the trial records form an unbroken hash chain
// starting at the all-zero parent, and that the recorded verdict matches
// the recorded trials.
func (t *Transcript) VerifyChain() error {
	parent := initialHash()
	for i := range t.Trials {
		trial := &t.Trials[i]
		if !bytes.Equal(trial.ParentHash, parent) {
			return errors.Errorf("trial %d has broken parent hash", i)
		}
		if trial.Witness != (i == len(t.Trials)-1 && !t.ProbablyPrime) {
			return errors.Errorf("trial %d witness flag contradicts verdict", i)
		}
		var err error
		if parent, err = trial.hash(); err != nil {
			return err
		}
	}
	return nil
}

// TestRecorded runs the same trial loop as Test but records every base
// drawn and residue computed, returning the full transcript along with the
// verdict it supports.
func (t *Tester) TestRecorded(n *big.Int) (*Transcript, error) {
	transcript := &Transcript{N: new(big.Int).Set(n)}

	if n.Cmp(bigONE) == 0 {
		// 1 is composite by definition; no bases exist to record.
		return transcript, nil
	}
	if n.Cmp(bigONE) < 0 {
		return nil, common.ErrInvalidModulus
	}

	k, err := t.iterations()
	if err != nil {
		return nil, err
	}
	transcript.Iterations = k

	exp := new(big.Int).Sub(n, bigONE)
	parent := initialHash()
	for i := 0; i < k; i++ {
		a, err := common.RandomFermatBase(t.rand(), n)
		if err != nil {
			return nil, err
		}
		r, err := common.ModPow(a, exp, n)
		if err != nil {
			return nil, err
		}

		trial := Trial{
			Base:       a,
			Residue:    r,
			Witness:    r.Cmp(bigONE) != 0,
			ParentHash: parent,
		}
		transcript.Trials = append(transcript.Trials, trial)

		if trial.Witness {
			return transcript, nil
		}
		if parent, err = trial.hash(); err != nil {
			return nil, err
		}
	}

	transcript.ProbablyPrime = true
	return transcript, nil
}
