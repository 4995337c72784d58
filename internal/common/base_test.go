package common

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wgimson/fermat/big"
)

func testSource(t *testing.T) *CPRNG {
	var seed [32]byte
	seed[0] = 0x17
	rng, err := NewCPRNG(&seed)
	require.NoError(t, err)
	return rng
}

func TestRandomBigIntBitLength(t *testing.T) {
	rng := testSource(t)
	for _, numBits := range []uint{1, 7, 8, 9, 64, 257} {
		for i := 0; i < 50; i++ {
			v, err := RandomBigInt(rng, numBits)
			require.NoError(t, err)
			require.LessOrEqual(t, v.BitLen(), int(numBits))
		}
	}
}

func TestRandomFermatBaseRange(t *testing.T) {
	rng := testSource(t)
	one := big.NewInt(1)
	for _, s := range []string{"2", "3", "15", "561", "7919", "164849270410462350104130325681247905590883554049096338805080434441472785625514686982133223499269392762578795730418568510961568211704176723141852210985181059718962898851826265731600544499072072429389241617421101776748772563983535569756524904424870652659455911012103327708213798899264261222168033763550010103177"} {
		n, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)
		for i := 0; i < 100; i++ {
			a, err := RandomFermatBase(rng, n)
			require.NoError(t, err)
			require.True(t, one.Cmp(a) <= 0, "base %v below 1 for n=%s", a, s)
			require.True(t, a.Cmp(n) < 0, "base %v not below n=%s", a, s)
		}
	}
}

func TestRandomFermatBaseSmallestModulus(t *testing.T) {
	// [1, 2) contains only 1, so the generator has no choice.
	rng := testSource(t)
	two := big.NewInt(2)
	for i := 0; i < 20; i++ {
		a, err := RandomFermatBase(rng, two)
		require.NoError(t, err)
		require.Zero(t, a.Cmp(big.NewInt(1)))
	}
}

func TestRandomFermatBaseInvalidModulus(t *testing.T) {
	rng := testSource(t)
	for _, n := range []*big.Int{big.NewInt(1), big.NewInt(0), new(big.Int).Neg(big.NewInt(5))} {
		_, err := RandomFermatBase(rng, n)
		require.ErrorIs(t, err, ErrInvalidModulus)
	}
}

func TestModPow(t *testing.T) {
	r, err := ModPow(big.NewInt(2), big.NewInt(10), big.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, int64(24), r.Int64())
}

func TestModPowNegativeExponent(t *testing.T) {
	// 3^-1 mod 7 = 5, so 3^-2 mod 7 = 25 mod 7 = 4
	r, err := ModPow(big.NewInt(3), big.NewInt(-2), big.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, int64(4), r.Int64())

	_, err = ModPow(big.NewInt(2), big.NewInt(-1), big.NewInt(4))
	require.ErrorIs(t, err, ErrNoModInverse)
}
