package consensus

import "github.com/freenetcoder/EOX/crypto"

func appendHash(dst []byte, h crypto.Hash) []byte {
	return append(dst, h[:]...)
}

func appendPointX(dst []byte, p crypto.Point) []byte {
	return append(dst, p.X[:]...)
}

// appendPoint writes X followed by the Y parity as a bool byte.
func appendPoint(dst []byte, p crypto.Point) []byte {
	dst = appendPointX(dst, p)
	return appendBool(dst, p.Y)
}

func readPointX(c *cursor, p *crypto.Point) error {
	return c.readInto(p.X[:], "point x")
}

func readPoint(c *cursor, p *crypto.Point) error {
	if err := readPointX(c, p); err != nil {
		return err
	}
	y, err := c.readBool()
	if err != nil {
		return err
	}
	p.Y = y
	return nil
}

// appendScalar assumes s is already reduced; callers validate before encoding.
func appendScalar(dst []byte, s crypto.Scalar) []byte {
	return append(dst, s[:]...)
}

func readScalar(c *cursor, s *crypto.Scalar) error {
	if err := c.readInto(s[:], "scalar"); err != nil {
		return err
	}
	if !s.IsValid() {
		return codecerr(ERR_INVALID_SCALAR, "scalar not below group order")
	}
	return nil
}

func appendSignature(dst []byte, s *crypto.Signature) []byte {
	dst = appendPoint(dst, s.NoncePub)
	return appendScalar(dst, s.K)
}

func readSignature(c *cursor, s *crypto.Signature) error {
	if err := readPoint(c, &s.NoncePub); err != nil {
		return err
	}
	return readScalar(c, &s.K)
}

func appendFourCC(dst []byte, f crypto.FourCC) []byte {
	return appendU32(dst, uint32(f))
}

func readFourCC(c *cursor, f *crypto.FourCC) error {
	v, err := c.readU32()
	if err != nil {
		return err
	}
	*f = crypto.FourCC(v)
	return nil
}

func appendKeyID(dst []byte, k *crypto.KeyID) []byte {
	dst = appendU64(dst, k.Idx)
	dst = appendFourCC(dst, k.Type)
	return appendU32(dst, k.SubIdx)
}

func readKeyID(c *cursor, k *crypto.KeyID) error {
	var err error
	if k.Idx, err = c.readU64(); err != nil {
		return err
	}
	if err = readFourCC(c, &k.Type); err != nil {
		return err
	}
	k.SubIdx, err = c.readU32()
	return err
}

func appendKeyIDV(dst []byte, k *crypto.KeyIDV) []byte {
	dst = appendKeyID(dst, &k.KeyID)
	return appendU64(dst, k.Value)
}

func readKeyIDV(c *cursor, k *crypto.KeyIDV) error {
	if err := readKeyID(c, &k.KeyID); err != nil {
		return err
	}
	var err error
	k.Value, err = c.readU64()
	return err
}
