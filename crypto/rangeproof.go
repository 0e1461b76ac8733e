package crypto

import "fmt"

// InnerProductCycles is the number of folding rounds of the inner-product
// argument for a 64-bit range.
const InnerProductCycles = 6

// InnerProduct is the logarithmic-size argument nested in a confidential
// range proof.
type InnerProduct struct {
	LR        [InnerProductCycles][2]Point
	Condensed [2]Scalar
}

type Part1 struct {
	A Point
	S Point
}

type Part2 struct {
	T1 Point
	T2 Point
}

type Part3 struct {
	TauX Scalar
}

// Confidential is a bulletproof-style range proof.
type Confidential struct {
	Part1 Part1
	Part2 Part2
	Part3 Part3
	Mu    Scalar // blinding
	TDot  Scalar // evaluation
	PTag  InnerProduct
}

// MultiSig carries the outer commitments exchanged while a confidential proof
// is built by several signers.
type MultiSig struct {
	Part1 Part1
	Part2 Part2
}

// FourCC is a four-character key type tag.
type FourCC uint32

func FourCCFromString(s string) FourCC {
	var v FourCC
	for i := 0; i < 4; i++ {
		v <<= 8
		if i < len(s) {
			v |= FourCC(s[i])
		}
	}
	return v
}

func (f FourCC) String() string {
	b := []byte{byte(f >> 24), byte(f >> 16), byte(f >> 8), byte(f)}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return fmt.Sprintf("%08x", uint32(f))
		}
	}
	return string(b)
}

type KeyID struct {
	Idx    uint64
	Type   FourCC
	SubIdx uint32
}

// KeyIDV is a key identifier together with the value it commits to.
type KeyIDV struct {
	KeyID
	Value uint64
}

// Recovery lets the key owner recognise a public proof.
type Recovery struct {
	Kid      KeyID
	Checksum Hash
}

// Public is a range proof that discloses the value and signs it.
type Public struct {
	Value     uint64
	Signature Signature
	Recovery  Recovery
}
