package consensus

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestTransaction_Roundtrip(t *testing.T) {
	tx := testTransaction()
	b := MarshalTransaction(tx)
	got, err := DecodeTransaction(b)
	if err != nil {
		t.Fatalf("DecodeTransaction: %v", err)
	}
	if !reflect.DeepEqual(got, tx) {
		t.Fatalf("roundtrip mismatch")
	}
	if !bytes.Equal(MarshalTransaction(got), b) {
		t.Fatalf("re-encoding differs")
	}
}

func TestTransaction_Deterministic(t *testing.T) {
	a := MarshalTransaction(testTransaction())
	b := MarshalTransaction(testTransaction())
	if !bytes.Equal(a, b) {
		t.Fatalf("encoding is not deterministic")
	}
}

func TestTransaction_EmptyLayout(t *testing.T) {
	b := MarshalTransaction(&Transaction{})
	// three zero counts then a zero offset
	want := make([]byte, 3*4+32)
	if !bytes.Equal(b, want) {
		t.Fatalf("empty tx %x", b)
	}
	got, err := DecodeTransaction(b)
	if err != nil {
		t.Fatalf("DecodeTransaction: %v", err)
	}
	if got.Inputs != nil || got.Outputs != nil || got.Kernels != nil {
		t.Fatalf("empty lists should decode as nil")
	}
}

func TestTransaction_OffsetLast(t *testing.T) {
	tx := testTransaction()
	b := MarshalTransaction(tx)
	if !bytes.Equal(b[len(b)-32:], tx.Offset[:]) {
		t.Fatalf("offset is not the trailing field")
	}
}

func TestTransaction_CountExceedsRemaining(t *testing.T) {
	b := appendU32(nil, 1_000_000)
	if _, err := DecodeTransaction(b); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ERR_TRUNCATED, got %v", err)
	}
}

func TestTransaction_TrailingBytes(t *testing.T) {
	b := append(MarshalTransaction(testTransaction()), 0x00)
	if _, err := DecodeTransaction(b); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ERR_MALFORMED, got %v", err)
	}
	// Parse reports consumption instead of rejecting.
	_, n, err := ParseTransaction(b)
	if err != nil {
		t.Fatalf("ParseTransaction: %v", err)
	}
	if n != len(b)-1 {
		t.Fatalf("consumed %d, want %d", n, len(b)-1)
	}
}

func TestTransaction_TruncatedEveryPrefix(t *testing.T) {
	b := MarshalTransaction(testTransaction())
	for i := 0; i < len(b); i++ {
		if _, _, err := ParseTransaction(b[:i]); !errors.Is(err, ErrTruncated) {
			t.Fatalf("prefix %d: expected ERR_TRUNCATED, got %v", i, err)
		}
	}
}

func TestBody_OffsetFirst(t *testing.T) {
	tx := testTransaction()
	body := &Body{BodyBase: BodyBase{TxBase: tx.TxBase}, Perishable: tx.Perishable, Eternal: tx.Eternal}
	b := MarshalBody(body)
	if !bytes.Equal(b[:32], tx.Offset[:]) {
		t.Fatalf("offset is not the leading field")
	}
	// same content as the tx, rotated
	txb := MarshalTransaction(tx)
	if !bytes.Equal(b[32:], txb[:len(txb)-32]) {
		t.Fatalf("body lists differ from tx lists")
	}
	got, err := DecodeBody(b)
	if err != nil {
		t.Fatalf("DecodeBody: %v", err)
	}
	if !reflect.DeepEqual(got, body) {
		t.Fatalf("roundtrip mismatch")
	}
}

func TestOptionalBody(t *testing.T) {
	absent := AppendOptionalBody(nil, nil)
	if !bytes.Equal(absent, []byte{0}) {
		t.Fatalf("absent %x", absent)
	}
	v, n, err := ParseOptionalBody(absent)
	if err != nil || v != nil || n != 1 {
		t.Fatalf("absent parse: v=%v n=%d err=%v", v, n, err)
	}

	body := &Body{BodyBase: BodyBase{TxBase{Offset: testScalar(5)}}}
	present := AppendOptionalBody(nil, body)
	v, n, err = ParseOptionalBody(present)
	if err != nil {
		t.Fatalf("ParseOptionalBody: %v", err)
	}
	if n != len(present) || !reflect.DeepEqual(v, body) {
		t.Fatalf("present roundtrip mismatch")
	}

	if _, _, err := ParseOptionalBody([]byte{2}); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ERR_MALFORMED for bad presence byte, got %v", err)
	}
}
