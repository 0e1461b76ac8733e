package consensus

import (
	"bytes"
	"math/big"
)

// Packed difficulty: the top byte is a binary order, the low 24 bits a
// mantissa with an implicit leading one.
const (
	difficultyMantissaBits = 24
	difficultyMaxOrder     = 256 - difficultyMantissaBits - 1
	DifficultyInf          = uint32(difficultyMaxOrder+1) << difficultyMantissaBits
)

// DifficultyWork unpacks a PoW difficulty into the work it represents.
// Values at or above DifficultyInf saturate to 2^256-1.
//
// This is a non-validation helper but MUST be deterministic and MUST NOT use floats.
func DifficultyWork(packed uint32) *big.Int {
	if packed >= DifficultyInf {
		return new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	}
	order := uint(packed >> difficultyMantissaBits)
	mantissa := int64(packed&(1<<difficultyMantissaBits-1)) | 1<<difficultyMantissaBits
	return new(big.Int).Lsh(big.NewInt(mantissa), order)
}

// ChainWorkAfter adds the work of one header to prev. The result saturates
// at 2^256-1.
func ChainWorkAfter(prev ChainWork, packed uint32) ChainWork {
	total := prev.Big()
	total.Add(total, DifficultyWork(packed))
	if total.BitLen() > 256 {
		total.Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	}
	return ChainWorkFromBig(total)
}

// Cmp compares two big-endian work values.
func (w ChainWork) Cmp(o ChainWork) int { return bytes.Compare(w[:], o[:]) }

// BetterTip reports whether the candidate header should replace the current
// best one. More work wins; equal work prefers the lower height, then the
// lexicographically smaller hash.
func BetterTip(candWork ChainWork, cand HeaderID, curWork ChainWork, cur HeaderID) bool {
	if c := candWork.Cmp(curWork); c != 0 {
		return c > 0
	}
	if cand.Height != cur.Height {
		return cand.Height < cur.Height
	}
	return bytes.Compare(cand.Hash[:], cur.Hash[:]) < 0
}
