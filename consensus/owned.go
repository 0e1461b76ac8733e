package consensus

// Helpers for exclusively owned sub-objects. Presence is either signalled
// out of band (a flag bit already read by the caller) or by a leading bool.

// readOwned allocates a fresh T and decodes into it when present is set.
func readOwned[T any](c *cursor, present bool, read func(*cursor, *T) error) (*T, error) {
	if !present {
		return nil, nil
	}
	v := new(T)
	if err := read(c, v); err != nil {
		return nil, err
	}
	return v, nil
}

// appendOptional writes a presence bool followed by the payload if non-nil.
func appendOptional[T any](dst []byte, v *T, write func([]byte, *T) []byte) []byte {
	if v == nil {
		return appendBool(dst, false)
	}
	dst = appendBool(dst, true)
	return write(dst, v)
}

func readOptional[T any](c *cursor, read func(*cursor, *T) error) (*T, error) {
	present, err := c.readBool()
	if err != nil {
		return nil, err
	}
	return readOwned(c, present, read)
}

// appendVector writes a fixed 4-byte count followed by every element.
func appendVector[T any](dst []byte, v []*T, write func([]byte, *T) []byte) []byte {
	dst = appendU32(dst, uint32(len(v))) // #nosec G115 -- element counts are bounded by the in-memory slice.
	for _, e := range v {
		dst = write(dst, e)
	}
	return dst
}

// readVector decodes a counted sequence. minSize is the smallest possible
// encoding of one element and bounds the allocation by the bytes left.
func readVector[T any](c *cursor, minSize int, read func(*cursor, *T) error) ([]*T, error) {
	n, err := c.readU32()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if uint64(n)*uint64(minSize) > uint64(c.remaining()) {
		return nil, codecerr(ERR_TRUNCATED, "element count exceeds remaining bytes")
	}
	out := make([]*T, n)
	for i := range out {
		v := new(T)
		if err := read(c, v); err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
