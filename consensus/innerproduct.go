package consensus

import "github.com/freenetcoder/EOX/crypto"

const innerProductNoBitsBytes = crypto.InnerProductCycles*2*crypto.PointXBytes + 2*crypto.ScalarBytes

// appendInnerProductNoBits writes the coordinate pass: L/R X coordinates in
// round order, then the condensed scalars. Sign bits are written separately.
func appendInnerProductNoBits(dst []byte, v *crypto.InnerProduct) []byte {
	for i := range v.LR {
		for j := range v.LR[i] {
			dst = appendPointX(dst, v.LR[i][j])
		}
	}
	for j := range v.Condensed {
		dst = appendScalar(dst, v.Condensed[j])
	}
	return dst
}

func readInnerProductNoBits(c *cursor, v *crypto.InnerProduct) error {
	for i := range v.LR {
		for j := range v.LR[i] {
			if err := readPointX(c, &v.LR[i][j]); err != nil {
				return err
			}
		}
	}
	for j := range v.Condensed {
		if err := readScalar(c, &v.Condensed[j]); err != nil {
			return err
		}
	}
	return nil
}

func packInnerProductBits(bf Bitfield, v *crypto.InnerProduct) {
	bit := 0
	for i := range v.LR {
		for j := range v.LR[i] {
			bf.Set(bit, v.LR[i][j].Y)
			bit++
		}
	}
}

func unpackInnerProductBits(bf Bitfield, v *crypto.InnerProduct) {
	bit := 0
	for i := range v.LR {
		for j := range v.LR[i] {
			v.LR[i][j].Y = bf.Get(bit)
			bit++
		}
	}
}

func appendInnerProduct(dst []byte, v *crypto.InnerProduct) []byte {
	dst = appendInnerProductNoBits(dst, v)
	bf := NewBitfield(innerProductBits)
	packInnerProductBits(bf, v)
	return append(dst, bf...)
}

func readInnerProduct(c *cursor, v *crypto.InnerProduct) error {
	if err := readInnerProductNoBits(c, v); err != nil {
		return err
	}
	raw, err := c.readExact(innerProductFlagBytes, "inner product bits")
	if err != nil {
		return err
	}
	bf := Bitfield(raw)
	if bf.anyFrom(innerProductBits) {
		return codecerr(ERR_MALFORMED, "inner product padding bits set")
	}
	unpackInnerProductBits(bf, v)
	return nil
}
