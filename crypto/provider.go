package crypto

// CryptoProvider is the narrow hashing interface used by consensus code to
// derive identifiers from canonical encodings.
type CryptoProvider interface {
	SHA3_256(input []byte) [32]byte
}
