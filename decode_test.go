// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package nbt

import (
	"testing"

	"github.com/SuperLlama88888/NBTify/internal/testutil"
)

func decodeTag(buf []byte, littleEndian, varint bool, kind Kind) Value {
	cur := newCursor(buf, littleEndian, varint)
	dec := newDecoder(cur, 0)
	return dec.readTag(kind)
}

func TestDecodeEmptyCompound(t *testing.T) {
	// Just TAG_End.
	buf := testutil.MustDecodeHex("00")
	v := decodeTag(buf, false, false, KindCompound)
	c, ok := v.Compound()
	if !ok || c.Len() != 0 {
		t.Fatalf("decoded empty compound, got len=%d ok=%v", c.Len(), ok)
	}
}

func TestDecodeCompoundWithByteChild(t *testing.T) {
	// TAG_Byte named "b" with value 7, then TAG_End.
	buf := testutil.MustDecodeHex("01" + "0001" + "62" + "07" + "00")
	v := decodeTag(buf, false, false, KindCompound)
	c, ok := v.Compound()
	if !ok {
		t.Fatal("not a compound")
	}
	child, ok := c.Get("b")
	if !ok {
		t.Fatal(`missing key "b"`)
	}
	if got, _ := child.Int(); got != 7 {
		t.Errorf(`compound["b"].Int() = %d, want 7`, got)
	}
}

func TestDecodeNamedByteList(t *testing.T) {
	// elem kind=TAG_Byte(1), length=3, bytes {1,2,3}.
	buf := testutil.MustDecodeHex("01" + "00000003" + "010203")
	v := decodeTag(buf, false, false, KindList)
	got, ok := v.ByteList()
	if !ok {
		t.Fatal("not a byte list")
	}
	want := []int8{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ByteList() = %v, want %v", got, want)
		}
	}
}

func TestDecodeListOfEndZeroLengthIsEmptySequence(t *testing.T) {
	buf := testutil.MustDecodeHex("00" + "00000000")
	v := decodeTag(buf, false, false, KindList)
	seq, ok := v.List()
	if !ok || len(seq) != 0 {
		t.Fatalf("list-of-TAG_End with length 0: got seq=%v ok=%v", seq, ok)
	}
}

func TestDecodeListOfEndNonZeroLengthIsInvalid(t *testing.T) {
	buf := testutil.MustDecodeHex("00" + "00000001")
	mustPanicKind(t, InvalidTag, func() {
		decodeTag(buf, false, false, KindList)
	})
}

func TestDecodeCompoundDuplicateKeysLastWins(t *testing.T) {
	// "a"=1 (TAG_Byte), then "a"=2 (TAG_Byte), then TAG_End.
	buf := testutil.MustDecodeHex(
		"01" + "0001" + "61" + "01" +
			"01" + "0001" + "61" + "02" +
			"00")
	v := decodeTag(buf, false, false, KindCompound)
	c, ok := v.Compound()
	if !ok {
		t.Fatal("not a compound")
	}
	if got, want := c.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	child, _ := c.Get("a")
	if got, _ := child.Int(); got != 2 {
		t.Errorf(`compound["a"].Int() = %d, want 2 (last write must win)`, got)
	}
}

func TestDecodeDepthCapExceeded(t *testing.T) {
	// A chain of nested single-element compounds: TAG_Compound("" -> ...).
	// Build from the inside out so the outermost read triggers the cap.
	inner := testutil.MustDecodeHex("00") // innermost empty compound
	for i := 0; i < 520; i++ {
		// TAG_Compound named "" holding the prior buffer, then TAG_End.
		buf := append([]byte{byte(KindCompound), 0x00, 0x00}, inner...)
		buf = append(buf, 0x00)
		inner = buf
	}
	cur := newCursor(inner, false, false)
	dec := newDecoder(cur, 0)
	var panicked bool
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
			}
		}()
		dec.readTag(KindCompound)
	}()
	if !panicked {
		t.Fatal("expected a panic from exceeding the nesting depth cap, got none")
	}
}

func TestDecodeLittleEndianVarintInt(t *testing.T) {
	// TAG_Int via ZigZag varint: encode -1 -> zigzag(1) -> leb128(1) -> 0x01.
	buf := testutil.MustDecodeHex("01")
	v := decodeTag(buf, true, true, KindInt)
	if got, _ := v.Int(); got != -1 {
		t.Errorf("varint TAG_Int = %d, want -1", got)
	}
}
