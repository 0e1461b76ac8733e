package consensus

import "github.com/freenetcoder/EOX/crypto"

// Perishable holds the elements that may be cut through once spent.
type Perishable struct {
	Inputs  []*Input
	Outputs []*Output
}

// Eternal holds the elements kept forever.
type Eternal struct {
	Kernels []*Kernel
}

type TxBase struct {
	Offset crypto.Scalar
}

// Transaction is encoded as perishable, eternal, then the offset.
type Transaction struct {
	Perishable
	Eternal
	TxBase
}

func appendPerishable(dst []byte, v *Perishable) []byte {
	dst = appendVector(dst, v.Inputs, appendInput)
	return appendVector(dst, v.Outputs, appendOutput)
}

func readPerishable(c *cursor, v *Perishable) error {
	var err error
	if v.Inputs, err = readVector(c, minInputBytes, readInput); err != nil {
		return err
	}
	v.Outputs, err = readVector(c, minOutputBytes, readOutput)
	return err
}

func appendEternal(dst []byte, v *Eternal) []byte {
	return appendVector(dst, v.Kernels, appendKernel)
}

func readEternal(c *cursor, v *Eternal) error {
	var err error
	v.Kernels, err = readVector(c, minKernelBytes, readTopKernel)
	return err
}

func readTopKernel(c *cursor, k *Kernel) error {
	return readKernel(c, k, 0)
}

func appendTxBase(dst []byte, v *TxBase) []byte {
	return appendScalar(dst, v.Offset)
}

func readTxBase(c *cursor, v *TxBase) error {
	return readScalar(c, &v.Offset)
}

func appendTransaction(dst []byte, tx *Transaction) []byte {
	dst = appendPerishable(dst, &tx.Perishable)
	dst = appendEternal(dst, &tx.Eternal)
	return appendTxBase(dst, &tx.TxBase)
}

func readTransaction(c *cursor, tx *Transaction) error {
	if err := readPerishable(c, &tx.Perishable); err != nil {
		return err
	}
	if err := readEternal(c, &tx.Eternal); err != nil {
		return err
	}
	return readTxBase(c, &tx.TxBase)
}
