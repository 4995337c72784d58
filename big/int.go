// Package big contains a mostly API-compatible "math/big".Int that JSON-marshals to and from Base64.
package big

import (
	cryptorand "crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"math/rand"

	"github.com/go-errors/errors"
)

// Int is an API-compatible "math/big".Int that JSON-marshals to and from Base64.
// Only supports positive integers.
type Int big.Int

// MarshalText implements encoding.TextMarshaler, returning the base64-encoding
// of i.Bytes().
func (i *Int) MarshalText() ([]byte, error) {
	if i.Sign() == -1 {
		return nil, errors.New("Marshaling negative integers is not supported")
	}
	bts := i.Bytes()
	enc := make([]byte, base64.StdEncoding.EncodedLen(len(bts)))
	base64.StdEncoding.Encode(enc, bts)
	return enc, nil
}

// MarshalBinary implements encoding.BinaryMarshaler, returning i.Bytes().
// CBOR encoders pick this up and encode the value as a byte string.
func (i *Int) MarshalBinary() ([]byte, error) {
	if i.Sign() == -1 {
		return nil, errors.New("Marshaling negative integers is not supported")
	}
	return i.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, the inverse of MarshalBinary.
func (i *Int) UnmarshalBinary(data []byte) error {
	i.SetBytes(data)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. If the input is quoted it attempts a
// base64 -> []byte -> Int conversion using i.SetBytes(). Otherwise it attempts to
// unmarshal the input as a JSON base 10 big integer.
func (i *Int) UnmarshalJSON(b []byte) error {
	if b[0] != '"' { // Not a JSON string, try to decode an ordinarily base-10 encoded "math.big".Int
		tmp := i.Go()
		return json.Unmarshal(b, tmp)
	}

	bts := make([]byte, base64.StdEncoding.DecodedLen(len(b)-2))
	n, err := base64.StdEncoding.Decode(bts, b[1:len(b)-1]) // Skip quote characters
	i.SetBytes(bts[0:n])
	return err
}

// RandInt wraps "crypto/rand".Int:
// returns a uniform random value in [0, max). It panics if max <= 0.
func RandInt(rnd io.Reader, max *Int) (*Int, error) {
	i, err := cryptorand.Int(rnd, max.Go())
	return Convert(i), err
}

// Convert from a "math/big".Int
func Convert(x *big.Int) *Int {
	return (*Int)(x)
}

// Convert to a "math/big".Int
func (i *Int) Go() *big.Int {
	return (*big.Int)(i)
}

// "math/big".Int API
// We are liberal with using the conversion functions above; these are inlined by the compiler.

func NewInt(x int64) *Int { return Convert(big.NewInt(x)) }

func (i *Int) Format(s fmt.State, ch rune) { i.Go().Format(s, ch) }
func (i *Int) Bit(j int) uint              { return i.Go().Bit(j) }
func (i *Int) Bytes() []byte               { return i.Go().Bytes() }
func (i *Int) BitLen() int                 { return i.Go().BitLen() }
func (i *Int) Int64() int64                { return i.Go().Int64() }
func (i *Int) Uint64() uint64              { return i.Go().Uint64() }
func (i *Int) IsInt64() bool               { return i.Go().IsInt64() }
func (i *Int) Sign() int                   { return i.Go().Sign() }
func (i *Int) Cmp(y *Int) int              { return i.Go().Cmp(y.Go()) }
func (i *Int) ProbablyPrime(n int) bool    { return i.Go().ProbablyPrime(n) }
func (i *Int) String() string              { return i.Go().String() }
func (i *Int) SetInt64(x int64) *Int       { return Convert(i.Go().SetInt64(x)) }
func (i *Int) SetUint64(x uint64) *Int     { return Convert(i.Go().SetUint64(x)) }
func (i *Int) Set(x *Int) *Int             { return Convert(i.Go().Set(x.Go())) }
func (i *Int) Neg(x *Int) *Int             { return Convert(i.Go().Neg(x.Go())) }
func (i *Int) Add(x, y *Int) *Int          { return Convert(i.Go().Add(x.Go(), y.Go())) }
func (i *Int) Sub(x, y *Int) *Int          { return Convert(i.Go().Sub(x.Go(), y.Go())) }
func (i *Int) Mul(x, y *Int) *Int          { return Convert(i.Go().Mul(x.Go(), y.Go())) }
func (i *Int) Div(x, y *Int) *Int          { return Convert(i.Go().Div(x.Go(), y.Go())) }
func (i *Int) Mod(x, y *Int) *Int          { return Convert(i.Go().Mod(x.Go(), y.Go())) }
func (i *Int) SetBytes(buf []byte) *Int    { return Convert(i.Go().SetBytes(buf)) }
func (i *Int) Lsh(x *Int, n uint) *Int     { return Convert(i.Go().Lsh(x.Go(), n)) }
func (i *Int) Rsh(x *Int, n uint) *Int     { return Convert(i.Go().Rsh(x.Go(), n)) }
func (i *Int) Exp(x, y, m *Int) *Int {
	return Convert(i.Go().Exp(x.Go(), y.Go(), m.Go()))
}
func (i *Int) GCD(x, y, a, b *Int) *Int {
	return Convert(i.Go().GCD(x.Go(), y.Go(), a.Go(), b.Go()))
}
func (i *Int) Rand(rnd *rand.Rand, n *Int) *Int {
	return Convert(i.Go().Rand(rnd, n.Go()))
}
func (i *Int) ModInverse(g, n *Int) *Int {
	return Convert(i.Go().ModInverse(g.Go(), n.Go()))
}
func (i *Int) SetString(s string, base int) (*Int, bool) {
	z, b := i.Go().SetString(s, base)
	return Convert(z), b
}
