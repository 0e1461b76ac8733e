package consensus

func appendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

func appendU32(dst []byte, v uint32) []byte {
	return wireOrder.AppendUint32(dst, v)
}

func appendU64(dst []byte, v uint64) []byte {
	return wireOrder.AppendUint64(dst, v)
}
