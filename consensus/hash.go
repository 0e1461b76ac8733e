package consensus

import "github.com/freenetcoder/EOX/crypto"

// HeaderHash is SHA3-256 over the full header encoding.
func HeaderHash(p crypto.CryptoProvider, h *FullHeader) crypto.Hash {
	return crypto.Hash(p.SHA3_256(MarshalFullHeader(h)))
}

// TxID is SHA3-256 over the canonical transaction encoding.
func TxID(p crypto.CryptoProvider, tx *Transaction) crypto.Hash {
	return crypto.Hash(p.SHA3_256(MarshalTransaction(tx)))
}

// KernelID is SHA3-256 over the canonical kernel encoding, nested kernels
// included.
func KernelID(p crypto.CryptoProvider, k *Kernel) crypto.Hash {
	return crypto.Hash(p.SHA3_256(MarshalKernel(k)))
}
