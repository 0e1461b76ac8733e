package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/freenetcoder/EOX/consensus"
	"github.com/freenetcoder/EOX/crypto"
)

type Request struct {
	Op  string `json:"op"`
	Hex string `json:"hex"`
	// Prefix accepts trailing bytes and reports how many were consumed.
	Prefix bool `json:"prefix,omitempty"`
	// Difficulty is the packed PoW difficulty for header_work.
	Difficulty uint32 `json:"difficulty,omitempty"`
}

type Response struct {
	Ok       bool     `json:"ok"`
	Err      string   `json:"err,omitempty"`
	Consumed int      `json:"consumed,omitempty"`
	Hash     string   `json:"hash,omitempty"`
	Hex      string   `json:"hex,omitempty"`
	Summary  *Summary `json:"summary,omitempty"`
	Work     string   `json:"work,omitempty"`
}

type Summary struct {
	Inputs        int      `json:"inputs,omitempty"`
	Outputs       int      `json:"outputs,omitempty"`
	Kernels       int      `json:"kernels,omitempty"`
	NestedKernels int      `json:"nested_kernels,omitempty"`
	Fee           uint64   `json:"fee,omitempty"`
	Height        *uint64  `json:"height,omitempty"`
	Prev          string   `json:"prev,omitempty"`
	TimeStamp     uint64   `json:"timestamp,omitempty"`
	InvalidPoints []string `json:"invalid_points,omitempty"`
}

func errResp(err error) Response {
	if code, ok := consensus.CodeOf(err); ok {
		return Response{Ok: false, Err: string(code)}
	}
	return Response{Ok: false, Err: err.Error()}
}

func decodeHex(s string) ([]byte, bool) {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	return b, err == nil
}

// decodeAs applies Parse semantics with prefix set and Decode semantics
// otherwise.
func decodeAs[T any](b []byte, prefix bool, parse func([]byte) (*T, int, error), decode func([]byte) (*T, error)) (*T, int, error) {
	if prefix {
		return parse(b)
	}
	v, err := decode(b)
	if err != nil {
		return nil, 0, err
	}
	return v, len(b), nil
}

func handle(p crypto.CryptoProvider, req Request) Response {
	b, ok := decodeHex(req.Hex)
	if !ok {
		return Response{Ok: false, Err: "bad hex"}
	}

	switch req.Op {
	case "decode_tx", "reencode_tx", "tx_id", "check_points":
		tx, n, err := decodeAs(b, req.Prefix, consensus.ParseTransaction, consensus.DecodeTransaction)
		if err != nil {
			return errResp(err)
		}
		resp := Response{Ok: true, Consumed: n}
		switch req.Op {
		case "decode_tx":
			resp.Summary = summarizeTx(&tx.Perishable, &tx.Eternal)
		case "reencode_tx":
			resp.Hex = hex.EncodeToString(consensus.MarshalTransaction(tx))
		case "tx_id":
			id := consensus.TxID(p, tx)
			resp.Hash = id.String()
		case "check_points":
			resp.Summary = &Summary{InvalidPoints: invalidPoints(tx)}
		}
		return resp

	case "decode_body":
		body, n, err := decodeAs(b, req.Prefix, consensus.ParseBody, consensus.DecodeBody)
		if err != nil {
			return errResp(err)
		}
		root := consensus.KernelsRoot(p, body.Kernels)
		return Response{Ok: true, Consumed: n, Summary: summarizeTx(&body.Perishable, &body.Eternal), Hash: root.String()}

	case "decode_header", "header_hash":
		h, n, err := decodeAs(b, req.Prefix, consensus.ParseFullHeader, consensus.DecodeFullHeader)
		if err != nil {
			return errResp(err)
		}
		resp := Response{Ok: true, Consumed: n, Hash: consensus.HeaderHash(p, h).String()}
		if req.Op == "decode_header" {
			height := h.Height
			resp.Summary = &Summary{Height: &height, Prev: h.Prev.String(), TimeStamp: h.TimeStamp}
			resp.Work = h.ChainWork.Big().String()
		}
		return resp

	case "header_work":
		h, n, err := decodeAs(b, req.Prefix, consensus.ParseFullHeader, consensus.DecodeFullHeader)
		if err != nil {
			return errResp(err)
		}
		packed := req.Difficulty
		if packed == 0 {
			packed = h.PoW.Difficulty
		}
		return Response{Ok: true, Consumed: n, Work: consensus.ChainWorkAfter(h.ChainWork, packed).Big().String()}

	case "decode_kernel":
		k, n, err := decodeAs(b, req.Prefix, consensus.ParseKernel, consensus.DecodeKernel)
		if err != nil {
			return errResp(err)
		}
		s := &Summary{Kernels: 1, NestedKernels: countNested(k.Nested), Fee: k.Fee}
		if k.Height.Min != 0 {
			height := k.Height.Min
			s.Height = &height
		}
		return Response{Ok: true, Consumed: n, Summary: s, Hash: consensus.KernelID(p, k).String()}

	case "decode_output":
		o, n, err := decodeAs(b, req.Prefix, consensus.ParseOutput, consensus.DecodeOutput)
		if err != nil {
			return errResp(err)
		}
		s := &Summary{Outputs: 1}
		if !o.Commitment.IsValid() {
			s.InvalidPoints = []string{"commitment"}
		}
		return Response{Ok: true, Consumed: n, Summary: s}

	default:
		return Response{Ok: false, Err: "unknown op"}
	}
}

func countNested(ks []*consensus.Kernel) int {
	n := 0
	for _, k := range ks {
		n += 1 + countNested(k.Nested)
	}
	return n
}

func summarizeTx(per *consensus.Perishable, et *consensus.Eternal) *Summary {
	s := &Summary{
		Inputs:  len(per.Inputs),
		Outputs: len(per.Outputs),
		Kernels: len(et.Kernels),
	}
	for _, k := range et.Kernels {
		s.Fee += k.Fee
		s.NestedKernels += countNested(k.Nested)
	}
	return s
}

// invalidPoints lists the commitments and kernel nonces that are not on the
// curve. Decoding never checks this.
func invalidPoints(tx *consensus.Transaction) []string {
	var out []string
	for i, in := range tx.Inputs {
		if !in.Commitment.IsValid() {
			out = append(out, fmt.Sprintf("input[%d]", i))
		}
	}
	for i, o := range tx.Outputs {
		if !o.Commitment.IsValid() {
			out = append(out, fmt.Sprintf("output[%d]", i))
		}
	}
	for i, k := range tx.Kernels {
		if !k.Commitment.IsValid() {
			out = append(out, fmt.Sprintf("kernel[%d]", i))
		}
		if !k.Signature.NoncePub.IsValid() {
			out = append(out, fmt.Sprintf("kernel[%d].nonce", i))
		}
	}
	return out
}
