package consensus

import (
	"encoding/binary"

	"github.com/freenetcoder/EOX/crypto"
)

// wireOrder is the byte order of every fixed-width integer on the wire.
var wireOrder = binary.BigEndian

type cursor struct {
	b   []byte
	pos int
}

// newCursor creates a cursor for reading from b with the initial read position set to 0.
func newCursor(b []byte) *cursor {
	return &cursor{b: b, pos: 0}
}

func (c *cursor) remaining() int {
	if c.pos >= len(c.b) {
		return 0
	}
	return len(c.b) - c.pos
}

func (c *cursor) readExact(n int, what string) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, codecerr(ERR_TRUNCATED, "unexpected EOF ("+what+")")
	}
	start := c.pos
	c.pos += n
	return c.b[start:c.pos], nil
}

func (c *cursor) readU8() (byte, error) {
	b, err := c.readExact(1, "u8")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) readBool() (bool, error) {
	v, err := c.readU8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, codecerr(ERR_MALFORMED, "bool out of range")
	}
}

func (c *cursor) readU32() (uint32, error) {
	b, err := c.readExact(4, "u32")
	if err != nil {
		return 0, err
	}
	return wireOrder.Uint32(b), nil
}

func (c *cursor) readU64() (uint64, error) {
	b, err := c.readExact(8, "u64")
	if err != nil {
		return 0, err
	}
	return wireOrder.Uint64(b), nil
}

func (c *cursor) readInto(dst []byte, what string) error {
	b, err := c.readExact(len(dst), what)
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

func (c *cursor) readHash(h *crypto.Hash) error {
	return c.readInto(h[:], "hash")
}
