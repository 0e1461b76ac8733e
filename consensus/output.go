package consensus

import "github.com/freenetcoder/EOX/crypto"

type Input struct {
	Commitment crypto.Point
}

// Output is a transaction output. Normally exactly one of Confidential and
// Public is set. A zero AssetID denotes the native coin.
type Output struct {
	Commitment   crypto.Point
	Coinbase     bool
	RecoveryOnly bool
	Confidential *crypto.Confidential
	Public       *crypto.Public
	Incubation   uint64
	AssetID      crypto.Hash
}

const (
	inputFlagCommitmentY = 0x01

	outputFlagCommitmentY  = 0x01
	outputFlagCoinbase     = 0x02
	outputFlagConfidential = 0x04
	outputFlagPublic       = 0x08
	outputFlagIncubation   = 0x10
	outputFlagAssetID      = 0x20
	outputFlagRecoveryOnly = 0x40
	outputFlagsKnown       = 0x7f

	// flag byte + commitment X
	minInputBytes  = 1 + crypto.PointXBytes
	minOutputBytes = 1 + crypto.PointXBytes
)

func appendInput(dst []byte, in *Input) []byte {
	var flags byte
	if in.Commitment.Y {
		flags |= inputFlagCommitmentY
	}
	dst = append(dst, flags)
	return appendPointX(dst, in.Commitment)
}

func readInput(c *cursor, in *Input) error {
	flags, err := c.readU8()
	if err != nil {
		return err
	}
	if flags&^inputFlagCommitmentY != 0 {
		return codecerr(ERR_MALFORMED, "input flags have unknown bits")
	}
	if err := readPointX(c, &in.Commitment); err != nil {
		return err
	}
	in.Commitment.Y = flags&inputFlagCommitmentY != 0
	return nil
}

// outputFlags is the presence mask shared by both directions.
func outputFlags(o *Output) byte {
	var flags byte
	if o.Commitment.Y {
		flags |= outputFlagCommitmentY
	}
	if o.Coinbase {
		flags |= outputFlagCoinbase
	}
	if o.Confidential != nil {
		flags |= outputFlagConfidential
	}
	if o.Public != nil {
		flags |= outputFlagPublic
	}
	if o.Incubation != 0 {
		flags |= outputFlagIncubation
	}
	if !o.AssetID.IsZero() {
		flags |= outputFlagAssetID
	}
	if o.RecoveryOnly {
		flags |= outputFlagRecoveryOnly
	}
	return flags
}

func appendOutput(dst []byte, o *Output) []byte {
	flags := outputFlags(o)
	mode := proofModeFor(o.RecoveryOnly)

	dst = append(dst, flags)
	dst = appendPointX(dst, o.Commitment)
	if o.Confidential != nil {
		dst = appendConfidential(dst, o.Confidential, mode)
	}
	if o.Public != nil {
		dst = appendPublic(dst, o.Public, mode)
	}
	if flags&outputFlagIncubation != 0 {
		dst = appendU64(dst, o.Incubation)
	}
	if flags&outputFlagAssetID != 0 {
		dst = appendHash(dst, o.AssetID)
	}
	return dst
}

func readOutput(c *cursor, o *Output) error {
	flags, err := c.readU8()
	if err != nil {
		return err
	}
	if flags&^outputFlagsKnown != 0 {
		return codecerr(ERR_MALFORMED, "output flags have unknown bits")
	}
	if err := readPointX(c, &o.Commitment); err != nil {
		return err
	}
	o.Commitment.Y = flags&outputFlagCommitmentY != 0
	o.Coinbase = flags&outputFlagCoinbase != 0
	o.RecoveryOnly = flags&outputFlagRecoveryOnly != 0
	mode := proofModeFor(o.RecoveryOnly)

	o.Confidential, err = readOwned(c, flags&outputFlagConfidential != 0, func(c *cursor, v *crypto.Confidential) error {
		return readConfidential(c, v, mode)
	})
	if err != nil {
		return err
	}
	o.Public, err = readOwned(c, flags&outputFlagPublic != 0, func(c *cursor, v *crypto.Public) error {
		return readPublic(c, v, mode)
	})
	if err != nil {
		return err
	}

	o.Incubation = 0
	if flags&outputFlagIncubation != 0 {
		if o.Incubation, err = c.readU64(); err != nil {
			return err
		}
		if o.Incubation == 0 {
			return codecerr(ERR_MALFORMED, "incubation flag with zero height")
		}
	}

	o.AssetID = crypto.Hash{}
	if flags&outputFlagAssetID != 0 {
		if err := c.readHash(&o.AssetID); err != nil {
			return err
		}
		if o.AssetID.IsZero() {
			return codecerr(ERR_MALFORMED, "asset flag with zero asset id")
		}
	}
	return nil
}
