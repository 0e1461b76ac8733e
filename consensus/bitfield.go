package consensus

import "github.com/freenetcoder/EOX/crypto"

// Bitfield packs single-bit flags, bit i living in byte i>>3 under mask
// 1<<(i&7). A fresh Bitfield is all zeros.
type Bitfield []byte

func NewBitfield(bits int) Bitfield {
	if bits < 0 {
		bits = 0
	}
	return make(Bitfield, (bits+7)/8)
}

// Len returns the bit capacity, always a multiple of 8.
func (b Bitfield) Len() int { return len(b) * 8 }

func (b Bitfield) Get(i int) bool {
	return b[i>>3]&(1<<(i&7)) != 0
}

func (b Bitfield) Set(i int, v bool) {
	m := byte(1) << (i & 7)
	if v {
		b[i>>3] |= m
	} else {
		b[i>>3] &^= m
	}
}

// anyFrom reports whether a bit at index >= i is set.
func (b Bitfield) anyFrom(i int) bool {
	for ; i < b.Len(); i++ {
		if b.Get(i) {
			return true
		}
	}
	return false
}

const (
	innerProductBits       = crypto.InnerProductCycles * 2
	innerProductFlagBytes  = (innerProductBits + 7) / 8
	confidentialExtraBits  = 4
	confidentialFlagBytes  = (innerProductBits + confidentialExtraBits + 7) / 8
	innerProductPaddedBits = innerProductFlagBytes * 8
)

// The four outer-commitment sign bits must fit exactly in the padding of the
// inner-product bitfield.
var _ [0]struct{} = [innerProductPaddedBits - innerProductBits - confidentialExtraBits]struct{}{}
