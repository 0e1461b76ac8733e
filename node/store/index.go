package store

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/freenetcoder/EOX/consensus"
	"github.com/freenetcoder/EOX/crypto"
)

// Index and tip records use Core Deterministic CBOR so equal records are
// byte-identical on disk.
var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("store: CBOR encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("store: CBOR decoder initialization failed: " + err.Error())
	}
}

// IndexEntry is the per-header chain index record.
type IndexEntry struct {
	Height    uint64              `cbor:"height"`
	Prev      crypto.Hash         `cbor:"prev"`
	ChainWork consensus.ChainWork `cbor:"work"`
	HasBody   bool                `cbor:"body"`
}

// Tip is the best known header by chain work.
type Tip struct {
	ID        consensus.HeaderID  `cbor:"id"`
	ChainWork consensus.ChainWork `cbor:"work"`
}

func encodeRecord(v any) ([]byte, error) {
	b, err := cborEnc.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("store: cbor: %w", err)
	}
	return b, nil
}

func decodeRecord(b []byte, v any) error {
	if err := cborDec.Unmarshal(b, v); err != nil {
		return fmt.Errorf("store: cbor: %w", err)
	}
	return nil
}
