package consensus

import (
	"github.com/freenetcoder/EOX/crypto"
)

func testPoint(seed byte, y bool) crypto.Point {
	var p crypto.Point
	for i := range p.X {
		p.X[i] = seed + byte(i)
	}
	p.Y = y
	return p
}

func testScalar(v uint64) crypto.Scalar {
	return crypto.ScalarFromUint64(v)
}

func testHash(seed byte) crypto.Hash {
	var h crypto.Hash
	for i := range h {
		h[i] = seed ^ byte(i*7)
	}
	return h
}

// invalidScalarBytes is the secp256k1 group order itself.
func invalidScalarBytes() []byte {
	return []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfe,
		0xba, 0xae, 0xdc, 0xe6, 0xaf, 0x48, 0xa0, 0x3b,
		0xbf, 0xd2, 0x5e, 0x8c, 0xd0, 0x36, 0x41, 0x41,
	}
}

func testInnerProduct(seed byte) crypto.InnerProduct {
	var v crypto.InnerProduct
	for i := range v.LR {
		for j := range v.LR[i] {
			v.LR[i][j] = testPoint(seed+byte(i*2+j), (i*2+j)%3 == 0)
		}
	}
	v.Condensed[0] = testScalar(uint64(seed) + 1000)
	v.Condensed[1] = testScalar(uint64(seed) + 2000)
	return v
}

func testConfidential(seed byte) *crypto.Confidential {
	return &crypto.Confidential{
		Part1: crypto.Part1{A: testPoint(seed, true), S: testPoint(seed+1, false)},
		Part2: crypto.Part2{T1: testPoint(seed+2, true), T2: testPoint(seed+3, true)},
		Part3: crypto.Part3{TauX: testScalar(uint64(seed) + 11)},
		Mu:    testScalar(uint64(seed) + 12),
		TDot:  testScalar(uint64(seed) + 13),
		PTag:  testInnerProduct(seed + 40),
	}
}

func testPublic(seed byte) *crypto.Public {
	return &crypto.Public{
		Value: 5_000_000 + uint64(seed),
		Signature: crypto.Signature{
			NoncePub: testPoint(seed+9, true),
			K:        testScalar(uint64(seed) + 77),
		},
		Recovery: crypto.Recovery{
			Kid: crypto.KeyID{
				Idx:    uint64(seed) << 20,
				Type:   crypto.FourCCFromString("Regu"),
				SubIdx: 3,
			},
			Checksum: testHash(seed),
		},
	}
}

func testKernel(seed byte) *Kernel {
	k := NewKernel()
	k.Commitment = testPoint(seed, seed%2 == 0)
	k.Signature = crypto.Signature{
		NoncePub: testPoint(seed+100, seed%3 == 0),
		K:        testScalar(uint64(seed) + 500),
	}
	return k
}

func testOutput(seed byte) *Output {
	return &Output{
		Commitment:   testPoint(seed, true),
		Confidential: testConfidential(seed),
	}
}

func testTransaction() *Transaction {
	k := testKernel(1)
	k.Fee = 100
	k.Height = HeightRange{Min: 10, Max: 20}
	return &Transaction{
		Perishable: Perishable{
			Inputs:  []*Input{{Commitment: testPoint(1, true)}, {Commitment: testPoint(2, false)}},
			Outputs: []*Output{testOutput(3), {Commitment: testPoint(4, false), Public: testPublic(4)}},
		},
		Eternal: Eternal{Kernels: []*Kernel{k, testKernel(2)}},
		TxBase:  TxBase{Offset: testScalar(0xdeadbeef)},
	}
}

func testFullHeader() *FullHeader {
	h := &FullHeader{
		SequencePrefix: SequencePrefix{
			Height: 123456,
			Prev:   testHash(0x10),
		},
		SequenceElement: SequenceElement{
			Kernels:    testHash(0x20),
			Definition: testHash(0x30),
			TimeStamp:  1_700_000_000,
		},
	}
	h.ChainWork[31] = 0x42
	h.ChainWork[0] = 0x01
	for i := range h.PoW.Indices {
		h.PoW.Indices[i] = byte(i)
	}
	h.PoW.Difficulty = 0x1d00ffff
	h.PoW.Nonce = [PoWNonceBytes]byte{1, 2, 3, 4, 5, 6, 7, 8}
	return h
}
