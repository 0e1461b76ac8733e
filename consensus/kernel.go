package consensus

import (
	"math"

	"github.com/freenetcoder/EOX/crypto"
)

// HeightOpen is the upper bound of a kernel height range with no maximum.
const HeightOpen = uint64(math.MaxUint64)

// MaxKernelNesting bounds how many levels of nested kernel lists a decoder
// accepts below the outermost kernel.
const MaxKernelNesting = 2

type HeightRange struct {
	Min uint64
	Max uint64
}

// IsOpen reports whether the range has no upper bound.
func (r HeightRange) IsOpen() bool { return r.Max == HeightOpen }

type HashLock struct {
	Preimage crypto.Hash
}

// RelativeLock makes a kernel valid only LockHeight blocks after the kernel
// identified by ID.
type RelativeLock struct {
	ID         crypto.Hash
	LockHeight uint64
}

type Kernel struct {
	Commitment    crypto.Point
	Signature     crypto.Signature
	Fee           uint64
	Height        HeightRange
	HashLock      *HashLock
	RelativeLock  *RelativeLock
	Nested        []*Kernel
	AssetEmission int64
	CanEmbed      bool
}

// NewKernel returns a kernel with an open height range.
func NewKernel() *Kernel {
	return &Kernel{Height: HeightRange{Max: HeightOpen}}
}

const (
	kernelFlagCommitmentY = 0x01
	kernelFlagFee         = 0x02
	kernelFlagHeightMin   = 0x04
	kernelFlagHeightMax   = 0x08
	kernelFlagNonceY      = 0x10
	kernelFlagHashLock    = 0x20
	kernelFlagNested      = 0x40
	kernelFlagExtended    = 0x80

	kernelFlag2AssetEmission = 0x01
	kernelFlag2RelativeLock  = 0x02
	kernelFlag2CanEmbed      = 0x04
	kernelFlags2Known        = 0x07

	// flags + commitment X + nonce X + k
	minKernelBytes = 1 + 2*crypto.PointXBytes + crypto.ScalarBytes
)

func kernelFlags2(k *Kernel) byte {
	var flags byte
	if k.AssetEmission != 0 {
		flags |= kernelFlag2AssetEmission
	}
	if k.RelativeLock != nil {
		flags |= kernelFlag2RelativeLock
	}
	if k.CanEmbed {
		flags |= kernelFlag2CanEmbed
	}
	return flags
}

func kernelFlags(k *Kernel, flags2 byte) byte {
	var flags byte
	if k.Commitment.Y {
		flags |= kernelFlagCommitmentY
	}
	if k.Fee != 0 {
		flags |= kernelFlagFee
	}
	if k.Height.Min != 0 {
		flags |= kernelFlagHeightMin
	}
	if !k.Height.IsOpen() {
		flags |= kernelFlagHeightMax
	}
	if k.Signature.NoncePub.Y {
		flags |= kernelFlagNonceY
	}
	if k.HashLock != nil {
		flags |= kernelFlagHashLock
	}
	if len(k.Nested) != 0 {
		flags |= kernelFlagNested
	}
	if flags2 != 0 {
		flags |= kernelFlagExtended
	}
	return flags
}

func appendHashLock(dst []byte, v *HashLock) []byte {
	return appendHash(dst, v.Preimage)
}

func readHashLock(c *cursor, v *HashLock) error {
	return c.readHash(&v.Preimage)
}

func appendRelativeLock(dst []byte, v *RelativeLock) []byte {
	dst = appendHash(dst, v.ID)
	return appendU64(dst, v.LockHeight)
}

func readRelativeLock(c *cursor, v *RelativeLock) error {
	if err := c.readHash(&v.ID); err != nil {
		return err
	}
	var err error
	v.LockHeight, err = c.readU64()
	return err
}

func appendKernel(dst []byte, k *Kernel) []byte {
	flags2 := kernelFlags2(k)
	flags := kernelFlags(k, flags2)

	dst = append(dst, flags)
	dst = appendPointX(dst, k.Commitment)
	dst = appendPointX(dst, k.Signature.NoncePub)
	dst = appendScalar(dst, k.Signature.K)

	if flags&kernelFlagFee != 0 {
		dst = appendU64(dst, k.Fee)
	}
	if flags&kernelFlagHeightMin != 0 {
		dst = appendU64(dst, k.Height.Min)
	}
	if flags&kernelFlagHeightMax != 0 {
		dst = appendU64(dst, k.Height.Max-k.Height.Min)
	}
	if k.HashLock != nil {
		dst = appendHashLock(dst, k.HashLock)
	}
	if flags&kernelFlagNested != 0 {
		dst = appendVector(dst, k.Nested, appendKernel)
	}

	if flags2 != 0 {
		dst = append(dst, flags2)
		if flags2&kernelFlag2AssetEmission != 0 {
			dst = appendU64(dst, uint64(k.AssetEmission)) // #nosec G115 -- two's complement on the wire.
		}
		if k.RelativeLock != nil {
			dst = appendRelativeLock(dst, k.RelativeLock)
		}
	}
	return dst
}

// readKernel decodes one kernel. depth is the number of nested lists already
// entered above it; every nested list is checked against MaxKernelNesting
// before its count is read.
func readKernel(c *cursor, k *Kernel, depth int) error {
	flags, err := c.readU8()
	if err != nil {
		return err
	}
	if err := readPointX(c, &k.Commitment); err != nil {
		return err
	}
	if err := readPointX(c, &k.Signature.NoncePub); err != nil {
		return err
	}
	if err := readScalar(c, &k.Signature.K); err != nil {
		return err
	}
	k.Commitment.Y = flags&kernelFlagCommitmentY != 0
	k.Signature.NoncePub.Y = flags&kernelFlagNonceY != 0

	k.Fee = 0
	if flags&kernelFlagFee != 0 {
		if k.Fee, err = c.readU64(); err != nil {
			return err
		}
		if k.Fee == 0 {
			return codecerr(ERR_MALFORMED, "fee flag with zero fee")
		}
	}

	k.Height.Min = 0
	if flags&kernelFlagHeightMin != 0 {
		if k.Height.Min, err = c.readU64(); err != nil {
			return err
		}
		if k.Height.Min == 0 {
			return codecerr(ERR_MALFORMED, "height min flag with zero height")
		}
	}

	k.Height.Max = HeightOpen
	if flags&kernelFlagHeightMax != 0 {
		dh, err := c.readU64()
		if err != nil {
			return err
		}
		k.Height.Max = k.Height.Min + dh
		if k.Height.IsOpen() {
			return codecerr(ERR_MALFORMED, "bounded height range decodes to open")
		}
	}

	k.HashLock, err = readOwned(c, flags&kernelFlagHashLock != 0, readHashLock)
	if err != nil {
		return err
	}

	k.Nested = nil
	if flags&kernelFlagNested != 0 {
		depth++
		if depth > MaxKernelNesting {
			return codecerr(ERR_RECURSION_LIMIT, "nested kernels too deep")
		}
		k.Nested, err = readVector(c, minKernelBytes, func(c *cursor, v *Kernel) error {
			return readKernel(c, v, depth)
		})
		if err != nil {
			return err
		}
		if len(k.Nested) == 0 {
			return codecerr(ERR_MALFORMED, "nested flag with empty kernel list")
		}
	}

	k.AssetEmission = 0
	k.RelativeLock = nil
	k.CanEmbed = false
	if flags&kernelFlagExtended != 0 {
		flags2, err := c.readU8()
		if err != nil {
			return err
		}
		if flags2 == 0 || flags2&^kernelFlags2Known != 0 {
			return codecerr(ERR_MALFORMED, "bad extended kernel flags")
		}
		if flags2&kernelFlag2AssetEmission != 0 {
			v, err := c.readU64()
			if err != nil {
				return err
			}
			k.AssetEmission = int64(v) // #nosec G115 -- two's complement on the wire.
			if k.AssetEmission == 0 {
				return codecerr(ERR_MALFORMED, "emission flag with zero amount")
			}
		}
		k.RelativeLock, err = readOwned(c, flags2&kernelFlag2RelativeLock != 0, readRelativeLock)
		if err != nil {
			return err
		}
		k.CanEmbed = flags2&kernelFlag2CanEmbed != 0
	}
	return nil
}
