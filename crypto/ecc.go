package crypto

import (
	"encoding/hex"
	"errors"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fp"
	"github.com/consensys/gnark-crypto/ecc/secp256k1/fr"
)

const (
	HashBytes   = 32
	ScalarBytes = fr.Bytes
	PointXBytes = 32
)

// Hash is a 256-bit digest or identifier.
type Hash [HashBytes]byte

func (h Hash) IsZero() bool { return h == Hash{} }

func (h Hash) String() string { return hex.EncodeToString(h[:]) }

// Point is a secp256k1 point in compressed form: the X coordinate plus the
// parity of Y.
type Point struct {
	X [PointXBytes]byte
	Y bool
}

// Compressed returns the SEC1 compressed encoding (0x02/0x03 || X).
func (p Point) Compressed() []byte {
	out := make([]byte, 1+PointXBytes)
	out[0] = 0x02
	if p.Y {
		out[0] = 0x03
	}
	copy(out[1:], p.X[:])
	return out
}

// IsValid reports whether X is a canonical field element that lies on the
// curve for the requested Y parity.
func (p Point) IsValid() bool {
	var x fp.Element
	if x.SetBytesCanonical(p.X[:]) != nil {
		return false
	}
	_, err := ec.PublicKeyFromBytes(p.Compressed())
	return err == nil
}

// PointFromCompressed splits a 33-byte SEC1 compressed point.
func PointFromCompressed(b []byte) (Point, error) {
	var p Point
	if len(b) != 1+PointXBytes {
		return p, errors.New("point: expected 33 bytes")
	}
	switch b[0] {
	case 0x02:
	case 0x03:
		p.Y = true
	default:
		return p, errors.New("point: bad compressed prefix")
	}
	copy(p.X[:], b[1:])
	return p, nil
}

// Scalar is a big-endian integer modulo the secp256k1 group order.
type Scalar [ScalarBytes]byte

func (s Scalar) IsZero() bool { return s == Scalar{} }

// IsValid reports whether s is strictly below the group order.
func (s Scalar) IsValid() bool {
	var e fr.Element
	return e.SetBytesCanonical(s[:]) == nil
}

// ScalarFromUint64 is a convenience for small constants.
func ScalarFromUint64(v uint64) Scalar {
	var e fr.Element
	e.SetUint64(v)
	return Scalar(e.Bytes())
}

// Signature is a Schnorr signature: the public nonce and the response scalar.
type Signature struct {
	NoncePub Point
	K        Scalar
}
