package consensus

import "github.com/freenetcoder/EOX/crypto"

// ProofMode selects how a range proof is laid out. The stream does not carry
// it: the enclosing output's recovery-only flag decides.
type ProofMode uint8

const (
	ProofFull ProofMode = iota
	ProofRecoveryOnly
)

func (m ProofMode) String() string {
	switch m {
	case ProofFull:
		return "full"
	case ProofRecoveryOnly:
		return "recovery-only"
	default:
		return "unknown"
	}
}

func proofModeFor(recoveryOnly bool) ProofMode {
	if recoveryOnly {
		return ProofRecoveryOnly
	}
	return ProofFull
}

const (
	recoverySignA  = 0x01
	recoverySignS  = 0x02
	recoverySignT1 = 0x04
	recoverySignT2 = 0x08
)

func appendConfidential(dst []byte, v *crypto.Confidential, mode ProofMode) []byte {
	dst = appendPointX(dst, v.Part1.A)
	dst = appendPointX(dst, v.Part1.S)
	dst = appendPointX(dst, v.Part2.T1)
	dst = appendPointX(dst, v.Part2.T2)

	if mode == ProofRecoveryOnly {
		var signs byte
		if v.Part1.A.Y {
			signs |= recoverySignA
		}
		if v.Part1.S.Y {
			signs |= recoverySignS
		}
		if v.Part2.T1.Y {
			signs |= recoverySignT1
		}
		if v.Part2.T2.Y {
			signs |= recoverySignT2
		}
		dst = appendScalar(dst, v.Mu)
		return append(dst, signs)
	}

	dst = appendScalar(dst, v.Part3.TauX)
	dst = appendScalar(dst, v.Mu)
	dst = appendScalar(dst, v.TDot)
	dst = appendInnerProductNoBits(dst, &v.PTag)

	bf := NewBitfield(innerProductBits + confidentialExtraBits)
	packInnerProductBits(bf, &v.PTag)
	bf.Set(innerProductBits+0, v.Part1.A.Y)
	bf.Set(innerProductBits+1, v.Part1.S.Y)
	bf.Set(innerProductBits+2, v.Part2.T1.Y)
	bf.Set(innerProductBits+3, v.Part2.T2.Y)
	return append(dst, bf...)
}

func readConfidential(c *cursor, v *crypto.Confidential, mode ProofMode) error {
	for _, p := range []*crypto.Point{&v.Part1.A, &v.Part1.S, &v.Part2.T1, &v.Part2.T2} {
		if err := readPointX(c, p); err != nil {
			return err
		}
	}

	if mode == ProofRecoveryOnly {
		if err := readScalar(c, &v.Mu); err != nil {
			return err
		}
		signs, err := c.readU8()
		if err != nil {
			return err
		}
		if signs&^(recoverySignA|recoverySignS|recoverySignT1|recoverySignT2) != 0 {
			return codecerr(ERR_MALFORMED, "recovery sign byte has unknown bits")
		}
		v.Part1.A.Y = signs&recoverySignA != 0
		v.Part1.S.Y = signs&recoverySignS != 0
		v.Part2.T1.Y = signs&recoverySignT1 != 0
		v.Part2.T2.Y = signs&recoverySignT2 != 0
		v.Part3 = crypto.Part3{}
		v.TDot = crypto.Scalar{}
		v.PTag = crypto.InnerProduct{}
		return nil
	}

	if err := readScalar(c, &v.Part3.TauX); err != nil {
		return err
	}
	if err := readScalar(c, &v.Mu); err != nil {
		return err
	}
	if err := readScalar(c, &v.TDot); err != nil {
		return err
	}
	if err := readInnerProductNoBits(c, &v.PTag); err != nil {
		return err
	}
	raw, err := c.readExact(confidentialFlagBytes, "confidential proof bits")
	if err != nil {
		return err
	}
	bf := Bitfield(raw)
	if bf.anyFrom(innerProductBits + confidentialExtraBits) {
		return codecerr(ERR_MALFORMED, "confidential proof padding bits set")
	}
	unpackInnerProductBits(bf, &v.PTag)
	v.Part1.A.Y = bf.Get(innerProductBits + 0)
	v.Part1.S.Y = bf.Get(innerProductBits + 1)
	v.Part2.T1.Y = bf.Get(innerProductBits + 2)
	v.Part2.T2.Y = bf.Get(innerProductBits + 3)
	return nil
}

func appendPart2(dst []byte, v *crypto.Part2) []byte {
	dst = appendPoint(dst, v.T1)
	return appendPoint(dst, v.T2)
}

func readPart2(c *cursor, v *crypto.Part2) error {
	if err := readPoint(c, &v.T1); err != nil {
		return err
	}
	return readPoint(c, &v.T2)
}

func appendPart3(dst []byte, v *crypto.Part3) []byte {
	return appendScalar(dst, v.TauX)
}

func readPart3(c *cursor, v *crypto.Part3) error {
	return readScalar(c, &v.TauX)
}

func appendMultiSig(dst []byte, v *crypto.MultiSig) []byte {
	dst = appendPoint(dst, v.Part1.A)
	dst = appendPoint(dst, v.Part1.S)
	return appendPart2(dst, &v.Part2)
}

func readMultiSig(c *cursor, v *crypto.MultiSig) error {
	if err := readPoint(c, &v.Part1.A); err != nil {
		return err
	}
	if err := readPoint(c, &v.Part1.S); err != nil {
		return err
	}
	return readPart2(c, &v.Part2)
}

func appendPublic(dst []byte, v *crypto.Public, mode ProofMode) []byte {
	dst = appendU64(dst, v.Value)
	if mode != ProofRecoveryOnly {
		dst = appendSignature(dst, &v.Signature)
	}
	dst = appendKeyID(dst, &v.Recovery.Kid)
	return appendHash(dst, v.Recovery.Checksum)
}

func readPublic(c *cursor, v *crypto.Public, mode ProofMode) error {
	var err error
	if v.Value, err = c.readU64(); err != nil {
		return err
	}
	if mode == ProofRecoveryOnly {
		v.Signature = crypto.Signature{}
	} else if err := readSignature(c, &v.Signature); err != nil {
		return err
	}
	if err := readKeyID(c, &v.Recovery.Kid); err != nil {
		return err
	}
	return c.readHash(&v.Recovery.Checksum)
}
