package consensus

import "github.com/freenetcoder/EOX/crypto"

// Parse functions decode one entity from the front of b and report how many
// bytes were consumed, so a caller can continue with b[n:]. Decode functions
// additionally reject trailing bytes.

func parseWith[T any](b []byte, read func(*cursor, *T) error) (*T, int, error) {
	c := newCursor(b)
	v := new(T)
	if err := read(c, v); err != nil {
		return nil, 0, err
	}
	return v, c.pos, nil
}

func decodeWith[T any](b []byte, read func(*cursor, *T) error) (*T, error) {
	v, n, err := parseWith(b, read)
	if err != nil {
		return nil, err
	}
	if n != len(b) {
		return nil, codecerr(ERR_MALFORMED, "trailing bytes")
	}
	return v, nil
}

func withMode[T any](mode ProofMode, read func(*cursor, *T, ProofMode) error) func(*cursor, *T) error {
	return func(c *cursor, v *T) error { return read(c, v, mode) }
}

func ParseSignature(b []byte) (*crypto.Signature, int, error) {
	return parseWith(b, readSignature)
}

func ParseKeyIDV(b []byte) (*crypto.KeyIDV, int, error) { return parseWith(b, readKeyIDV) }

func ParseInnerProduct(b []byte) (*crypto.InnerProduct, int, error) {
	return parseWith(b, readInnerProduct)
}

func ParseConfidential(b []byte, mode ProofMode) (*crypto.Confidential, int, error) {
	return parseWith(b, withMode(mode, readConfidential))
}

func ParseMultiSig(b []byte) (*crypto.MultiSig, int, error) { return parseWith(b, readMultiSig) }

func ParsePart2(b []byte) (*crypto.Part2, int, error) { return parseWith(b, readPart2) }

func ParsePart3(b []byte) (*crypto.Part3, int, error) { return parseWith(b, readPart3) }

func ParsePublic(b []byte, mode ProofMode) (*crypto.Public, int, error) {
	return parseWith(b, withMode(mode, readPublic))
}

func ParseInput(b []byte) (*Input, int, error) { return parseWith(b, readInput) }

func ParseOutput(b []byte) (*Output, int, error) { return parseWith(b, readOutput) }

func ParseKernel(b []byte) (*Kernel, int, error) { return parseWith(b, readTopKernel) }

func ParseTransaction(b []byte) (*Transaction, int, error) {
	return parseWith(b, readTransaction)
}

func ParseBody(b []byte) (*Body, int, error) { return parseWith(b, readBody) }

func ParsePoW(b []byte) (*PoW, int, error) { return parseWith(b, readPoW) }

func ParseHeaderID(b []byte) (*HeaderID, int, error) { return parseWith(b, readHeaderID) }

func ParseSequencePrefix(b []byte) (*SequencePrefix, int, error) {
	return parseWith(b, readSequencePrefix)
}

func ParseSequenceElement(b []byte) (*SequenceElement, int, error) {
	return parseWith(b, readSequenceElement)
}

func ParseFullHeader(b []byte) (*FullHeader, int, error) { return parseWith(b, readFullHeader) }

// ParseOptionalBody reads a presence bool and, when set, a body.
func ParseOptionalBody(b []byte) (*Body, int, error) {
	c := newCursor(b)
	v, err := readOptional(c, readBody)
	if err != nil {
		return nil, 0, err
	}
	return v, c.pos, nil
}

func DecodeInput(b []byte) (*Input, error) { return decodeWith(b, readInput) }

func DecodeOutput(b []byte) (*Output, error) { return decodeWith(b, readOutput) }

func DecodeKernel(b []byte) (*Kernel, error) { return decodeWith(b, readTopKernel) }

func DecodeTransaction(b []byte) (*Transaction, error) { return decodeWith(b, readTransaction) }

func DecodeBody(b []byte) (*Body, error) { return decodeWith(b, readBody) }

func DecodeFullHeader(b []byte) (*FullHeader, error) { return decodeWith(b, readFullHeader) }
