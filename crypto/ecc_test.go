package crypto

import (
	"encoding/hex"
	"math/big"
	"testing"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groupOrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"

func scalarFromHex(t *testing.T, s string) Scalar {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, ScalarBytes)
	var out Scalar
	copy(out[:], b)
	return out
}

func TestScalarIsValid(t *testing.T) {
	order := scalarFromHex(t, groupOrderHex)
	assert.False(t, order.IsValid(), "group order must be rejected")

	belowOrder := order
	belowOrder[ScalarBytes-1]--
	assert.True(t, belowOrder.IsValid(), "n-1 must be accepted")

	var all Scalar
	for i := range all {
		all[i] = 0xff
	}
	assert.False(t, all.IsValid())

	assert.True(t, Scalar{}.IsValid(), "zero is in range")
	assert.True(t, ScalarFromUint64(7).IsValid())
}

func TestScalarFromUint64_BigEndian(t *testing.T) {
	s := ScalarFromUint64(0x0102)
	assert.Equal(t, byte(0x01), s[ScalarBytes-2])
	assert.Equal(t, byte(0x02), s[ScalarBytes-1])
	assert.False(t, s.IsZero())
	assert.True(t, ScalarFromUint64(0).IsZero())
}

func TestPointFromRealKey(t *testing.T) {
	for i := 0; i < 8; i++ {
		priv, err := ec.NewPrivateKey()
		require.NoError(t, err)

		compressed := priv.PubKey().Compressed()
		p, err := PointFromCompressed(compressed)
		require.NoError(t, err)
		assert.True(t, p.IsValid())
		assert.Equal(t, compressed, p.Compressed())
	}
}

func TestPointIsValid_RejectsOffCurve(t *testing.T) {
	// X above the field prime cannot be a coordinate.
	var p Point
	for i := range p.X {
		p.X[i] = 0xff
	}
	assert.False(t, p.IsValid())
	p.Y = true
	assert.False(t, p.IsValid())
}

func TestPointIsValid_RejectsNonCanonicalX(t *testing.T) {
	// X = P + 1 reduces to 1, and x=1 is on secp256k1 (1 + 7 = 8 is a square mod P).
	xp := new(big.Int).Add(ec.S256().Params().P, big.NewInt(1))
	var alias Point
	xp.FillBytes(alias.X[:])

	var reduced Point
	reduced.X[PointXBytes-1] = 1
	for _, y := range []bool{false, true} {
		alias.Y, reduced.Y = y, y
		assert.True(t, reduced.IsValid(), "x=1 y=%v", y)
		assert.False(t, alias.IsValid(), "x=P+1 y=%v", y)
	}

	var atP Point
	ec.S256().Params().P.FillBytes(atP.X[:])
	assert.False(t, atP.IsValid())
}

func TestPointFromCompressed_BadInput(t *testing.T) {
	_, err := PointFromCompressed(make([]byte, 32))
	require.Error(t, err)

	b := make([]byte, 33)
	b[0] = 0x04
	_, err = PointFromCompressed(b)
	require.Error(t, err)
}

func TestFourCC(t *testing.T) {
	f := FourCCFromString("Kern")
	assert.Equal(t, FourCC(0x4b65726e), f)
	assert.Equal(t, "Kern", f.String())
	assert.Equal(t, "00000001", FourCC(1).String())
}

func TestHashHelpers(t *testing.T) {
	var h Hash
	assert.True(t, h.IsZero())
	h[0] = 0xab
	assert.False(t, h.IsZero())
	assert.Equal(t, "ab"+hex.EncodeToString(make([]byte, 31)), h.String())
}
