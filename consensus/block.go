package consensus

import (
	"math/big"

	"github.com/freenetcoder/EOX/crypto"
)

const (
	PoWIndexBytes = 104
	PoWNonceBytes = 8
)

// PoW is an Equihash-style solution with its packed difficulty.
type PoW struct {
	Indices    [PoWIndexBytes]byte
	Difficulty uint32
	Nonce      [PoWNonceBytes]byte
}

// ChainWork is a 256-bit big-endian cumulative difficulty.
type ChainWork [32]byte

func (w ChainWork) Big() *big.Int { return new(big.Int).SetBytes(w[:]) }

func ChainWorkFromBig(v *big.Int) ChainWork {
	var w ChainWork
	if v != nil && v.Sign() > 0 {
		v.FillBytes(w[:])
	}
	return w
}

type HeaderID struct {
	Height uint64
	Hash   crypto.Hash
}

type SequencePrefix struct {
	Height    uint64
	Prev      crypto.Hash
	ChainWork ChainWork
}

type SequenceElement struct {
	Kernels    crypto.Hash
	Definition crypto.Hash
	TimeStamp  uint64
	PoW        PoW
}

// FullHeader is encoded as its prefix immediately followed by its element.
type FullHeader struct {
	SequencePrefix
	SequenceElement
}

func (h *FullHeader) ID(p crypto.CryptoProvider) HeaderID {
	return HeaderID{Height: h.Height, Hash: HeaderHash(p, h)}
}

// BodyBase carries the block-wide offset.
type BodyBase struct {
	TxBase
}

// Body is encoded base first, then perishable, then eternal.
type Body struct {
	BodyBase
	Perishable
	Eternal
}

func appendPoW(dst []byte, v *PoW) []byte {
	dst = append(dst, v.Indices[:]...)
	dst = appendU32(dst, v.Difficulty)
	return append(dst, v.Nonce[:]...)
}

func readPoW(c *cursor, v *PoW) error {
	if err := c.readInto(v.Indices[:], "pow indices"); err != nil {
		return err
	}
	var err error
	if v.Difficulty, err = c.readU32(); err != nil {
		return err
	}
	return c.readInto(v.Nonce[:], "pow nonce")
}

func appendHeaderID(dst []byte, v *HeaderID) []byte {
	dst = appendU64(dst, v.Height)
	return appendHash(dst, v.Hash)
}

func readHeaderID(c *cursor, v *HeaderID) error {
	var err error
	if v.Height, err = c.readU64(); err != nil {
		return err
	}
	return c.readHash(&v.Hash)
}

func appendSequencePrefix(dst []byte, v *SequencePrefix) []byte {
	dst = appendU64(dst, v.Height)
	dst = appendHash(dst, v.Prev)
	return append(dst, v.ChainWork[:]...)
}

func readSequencePrefix(c *cursor, v *SequencePrefix) error {
	var err error
	if v.Height, err = c.readU64(); err != nil {
		return err
	}
	if err := c.readHash(&v.Prev); err != nil {
		return err
	}
	return c.readInto(v.ChainWork[:], "chain work")
}

func appendSequenceElement(dst []byte, v *SequenceElement) []byte {
	dst = appendHash(dst, v.Kernels)
	dst = appendHash(dst, v.Definition)
	dst = appendU64(dst, v.TimeStamp)
	return appendPoW(dst, &v.PoW)
}

func readSequenceElement(c *cursor, v *SequenceElement) error {
	if err := c.readHash(&v.Kernels); err != nil {
		return err
	}
	if err := c.readHash(&v.Definition); err != nil {
		return err
	}
	var err error
	if v.TimeStamp, err = c.readU64(); err != nil {
		return err
	}
	return readPoW(c, &v.PoW)
}

func appendFullHeader(dst []byte, v *FullHeader) []byte {
	dst = appendSequencePrefix(dst, &v.SequencePrefix)
	return appendSequenceElement(dst, &v.SequenceElement)
}

func readFullHeader(c *cursor, v *FullHeader) error {
	if err := readSequencePrefix(c, &v.SequencePrefix); err != nil {
		return err
	}
	return readSequenceElement(c, &v.SequenceElement)
}

func appendBodyBase(dst []byte, v *BodyBase) []byte {
	return appendTxBase(dst, &v.TxBase)
}

func readBodyBase(c *cursor, v *BodyBase) error {
	return readTxBase(c, &v.TxBase)
}

func appendBody(dst []byte, v *Body) []byte {
	dst = appendBodyBase(dst, &v.BodyBase)
	dst = appendPerishable(dst, &v.Perishable)
	return appendEternal(dst, &v.Eternal)
}

func readBody(c *cursor, v *Body) error {
	if err := readBodyBase(c, &v.BodyBase); err != nil {
		return err
	}
	if err := readPerishable(c, &v.Perishable); err != nil {
		return err
	}
	return readEternal(c, &v.Eternal)
}
