package consensus

import "github.com/freenetcoder/EOX/crypto"

// KernelsRoot commits to an ordered kernel list: leaves are 0x00||KernelID,
// inner nodes 0x01||left||right, and an odd trailing node is carried up
// unchanged. An empty list commits to the zero hash.
func KernelsRoot(p crypto.CryptoProvider, kernels []*Kernel) crypto.Hash {
	if len(kernels) == 0 {
		return crypto.Hash{}
	}

	level := make([]crypto.Hash, 0, len(kernels))
	var leafPreimage [1 + crypto.HashBytes]byte
	leafPreimage[0] = 0x00
	for _, k := range kernels {
		id := KernelID(p, k)
		copy(leafPreimage[1:], id[:])
		level = append(level, p.SHA3_256(leafPreimage[:]))
	}

	var nodePreimage [1 + 2*crypto.HashBytes]byte
	nodePreimage[0] = 0x01
	for len(level) > 1 {
		next := make([]crypto.Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); {
			if i == len(level)-1 {
				next = append(next, level[i])
				i++
				continue
			}
			copy(nodePreimage[1:1+crypto.HashBytes], level[i][:])
			copy(nodePreimage[1+crypto.HashBytes:], level[i+1][:])
			next = append(next, p.SHA3_256(nodePreimage[:]))
			i += 2
		}
		level = next
	}
	return level[0]
}
