package consensus

import (
	"bytes"
	"errors"
	"testing"

	"github.com/freenetcoder/EOX/crypto"
)

func TestPoint_InlineRoundtrip(t *testing.T) {
	for _, y := range []bool{false, true} {
		p := testPoint(7, y)
		b := appendPoint(nil, p)
		if len(b) != crypto.PointXBytes+1 {
			t.Fatalf("point length %d", len(b))
		}
		var got crypto.Point
		c := newCursor(b)
		if err := readPoint(c, &got); err != nil {
			t.Fatalf("readPoint: %v", err)
		}
		if got != p || c.remaining() != 0 {
			t.Fatalf("roundtrip mismatch: %+v vs %+v", got, p)
		}
	}
}

func TestPoint_BadYByte(t *testing.T) {
	b := appendPointX(nil, testPoint(1, false))
	b = append(b, 2)
	var p crypto.Point
	if err := readPoint(newCursor(b), &p); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ERR_MALFORMED, got %v", err)
	}
}

func TestScalar_RejectsGroupOrder(t *testing.T) {
	var s crypto.Scalar
	err := readScalar(newCursor(invalidScalarBytes()), &s)
	if !errors.Is(err, ErrInvalidScalar) {
		t.Fatalf("expected ERR_INVALID_SCALAR, got %v", err)
	}
}

func TestScalar_Roundtrip(t *testing.T) {
	want := testScalar(0x1122334455)
	b := appendScalar(nil, want)
	if len(b) != crypto.ScalarBytes {
		t.Fatalf("scalar length %d", len(b))
	}
	var got crypto.Scalar
	if err := readScalar(newCursor(b), &got); err != nil {
		t.Fatalf("readScalar: %v", err)
	}
	if got != want {
		t.Fatalf("mismatch")
	}
}

func TestSignature_Roundtrip(t *testing.T) {
	want := &crypto.Signature{NoncePub: testPoint(3, true), K: testScalar(99)}
	b := AppendSignature(nil, want)
	got, n, err := ParseSignature(b)
	if err != nil {
		t.Fatalf("ParseSignature: %v", err)
	}
	if n != len(b) || *got != *want {
		t.Fatalf("roundtrip mismatch")
	}
}

func TestKeyIDV_Roundtrip(t *testing.T) {
	want := &crypto.KeyIDV{
		KeyID: crypto.KeyID{Idx: 1 << 40, Type: crypto.FourCCFromString("Kern"), SubIdx: 9},
		Value: 1234,
	}
	b := AppendKeyIDV(nil, want)
	if len(b) != 8+4+4+8 {
		t.Fatalf("keyidv length %d", len(b))
	}
	if !bytes.Equal(b[8:12], []byte("Kern")) {
		t.Fatalf("fourcc bytes: %x", b[8:12])
	}
	got, _, err := ParseKeyIDV(b)
	if err != nil {
		t.Fatalf("ParseKeyIDV: %v", err)
	}
	if *got != *want {
		t.Fatalf("mismatch: %+v", got)
	}
}

func TestFixedWidthIsBigEndian(t *testing.T) {
	b := appendU32(nil, 0x01020304)
	if !bytes.Equal(b, []byte{1, 2, 3, 4}) {
		t.Fatalf("u32: %x", b)
	}
	b = appendU64(nil, 0x0102030405060708)
	if !bytes.Equal(b, []byte{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Fatalf("u64: %x", b)
	}
}

func TestCursor_Truncated(t *testing.T) {
	c := newCursor([]byte{1, 2, 3})
	if _, err := c.readU32(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ERR_TRUNCATED, got %v", err)
	}
	if _, err := c.readU64(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ERR_TRUNCATED, got %v", err)
	}
	if _, err := c.readExact(-1, "neg"); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ERR_TRUNCATED for negative length, got %v", err)
	}
}

func TestOptional_PresenceByte(t *testing.T) {
	b := AppendOptionalBody(nil, nil)
	if !bytes.Equal(b, []byte{0}) {
		t.Fatalf("absent body: %x", b)
	}
	got, n, err := ParseOptionalBody(b)
	if err != nil || got != nil || n != 1 {
		t.Fatalf("absent parse: got=%v n=%d err=%v", got, n, err)
	}

	body := &Body{BodyBase: BodyBase{TxBase{Offset: testScalar(5)}}}
	b = AppendOptionalBody(nil, body)
	if b[0] != 1 {
		t.Fatalf("present flag: %x", b[0])
	}
	got, n, err = ParseOptionalBody(b)
	if err != nil {
		t.Fatalf("ParseOptionalBody: %v", err)
	}
	if n != len(b) || got == nil || got.Offset != body.Offset {
		t.Fatalf("present roundtrip mismatch")
	}

	if _, _, err := ParseOptionalBody([]byte{7}); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ERR_MALFORMED for bad presence byte, got %v", err)
	}
}
