package consensus

import "github.com/freenetcoder/EOX/crypto"

// Every entity has an Append form writing onto dst and a Marshal form
// returning a fresh slice. Encoding never fails; callers are responsible for
// passing structurally valid objects (reduced scalars, no nil elements).

func AppendSignature(dst []byte, v *crypto.Signature) []byte { return appendSignature(dst, v) }

func AppendKeyIDV(dst []byte, v *crypto.KeyIDV) []byte { return appendKeyIDV(dst, v) }

func AppendInnerProduct(dst []byte, v *crypto.InnerProduct) []byte {
	return appendInnerProduct(dst, v)
}

func AppendConfidential(dst []byte, v *crypto.Confidential, mode ProofMode) []byte {
	return appendConfidential(dst, v, mode)
}

func AppendMultiSig(dst []byte, v *crypto.MultiSig) []byte { return appendMultiSig(dst, v) }

func AppendPart2(dst []byte, v *crypto.Part2) []byte { return appendPart2(dst, v) }

func AppendPart3(dst []byte, v *crypto.Part3) []byte { return appendPart3(dst, v) }

func AppendPublic(dst []byte, v *crypto.Public, mode ProofMode) []byte {
	return appendPublic(dst, v, mode)
}

func AppendInput(dst []byte, v *Input) []byte { return appendInput(dst, v) }

func AppendOutput(dst []byte, v *Output) []byte { return appendOutput(dst, v) }

func AppendKernel(dst []byte, v *Kernel) []byte { return appendKernel(dst, v) }

func AppendTransaction(dst []byte, v *Transaction) []byte { return appendTransaction(dst, v) }

func AppendBody(dst []byte, v *Body) []byte { return appendBody(dst, v) }

func AppendPoW(dst []byte, v *PoW) []byte { return appendPoW(dst, v) }

func AppendHeaderID(dst []byte, v *HeaderID) []byte { return appendHeaderID(dst, v) }

func AppendSequencePrefix(dst []byte, v *SequencePrefix) []byte {
	return appendSequencePrefix(dst, v)
}

func AppendSequenceElement(dst []byte, v *SequenceElement) []byte {
	return appendSequenceElement(dst, v)
}

func AppendFullHeader(dst []byte, v *FullHeader) []byte { return appendFullHeader(dst, v) }

// AppendOptionalBody writes a presence bool followed by the body if v is non-nil.
func AppendOptionalBody(dst []byte, v *Body) []byte {
	return appendOptional(dst, v, appendBody)
}

func MarshalInput(v *Input) []byte { return appendInput(nil, v) }

func MarshalOutput(v *Output) []byte { return appendOutput(nil, v) }

func MarshalKernel(v *Kernel) []byte { return appendKernel(nil, v) }

func MarshalTransaction(v *Transaction) []byte { return appendTransaction(nil, v) }

func MarshalBody(v *Body) []byte { return appendBody(nil, v) }

func MarshalFullHeader(v *FullHeader) []byte { return appendFullHeader(nil, v) }
