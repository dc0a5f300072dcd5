// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package nbt

import (
	"github.com/dsnet/golib/errs"

	"github.com/SuperLlama88888/NBTify/mutf8"
)

// defaultMaxDepth bounds recursive descent into nested LIST/COMPOUND tags.
// NBT permits arbitrarily deep nesting; without a cap, hostile input could
// exhaust the stack.
const defaultMaxDepth = 512

// decoder performs one recursive-descent pass over a cursor, dispatching by
// tag kind. Each construct has its own decode routine and the whole pass is
// a single recursive function, since an NBT decode runs to completion in
// one call rather than being resumed across separate reads.
type decoder struct {
	cur      *cursor
	maxDepth int
	depth    int
}

func newDecoder(cur *cursor, maxDepth int) *decoder {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	return &decoder{cur: cur, maxDepth: maxDepth}
}

func (d *decoder) enter() {
	d.depth++
	if d.depth > d.maxDepth {
		panicf(InvalidTag, "nesting depth exceeds %d", d.maxDepth)
	}
}

func (d *decoder) leave() { d.depth-- }

// readKind reads a single kind byte, rejecting anything outside 0..12.
func (d *decoder) readKind() Kind {
	k := Kind(d.cur.ReadUint8())
	if !k.Valid() {
		panicf(InvalidTag, "kind byte %d is out of range 0..12", byte(k))
	}
	return k
}

// readString reads a length-prefixed Modified UTF-8 string. The length
// prefix is an unsigned varint when varint is set, otherwise an unsigned
// 16-bit short.
func (d *decoder) readString() string {
	var n int
	if d.cur.varint {
		n = int(d.cur.ReadUvarint())
	} else {
		n = int(d.cur.ReadUint16())
	}
	raw := d.cur.ReadBytes(n)
	s, err := mutf8.Decode(raw)
	if err != nil {
		errs.Panic(err)
	}
	return s
}

// readLength32 reads a LIST/array length prefix: ZigZag-varint when varint
// is set, otherwise a signed 32-bit integer.
func (d *decoder) readLength32() int32 {
	if d.cur.varint {
		return d.cur.ReadZigZag32()
	}
	return d.cur.ReadInt32()
}

// readTag dispatches a single tag payload of the given kind.
func (d *decoder) readTag(kind Kind) Value {
	switch kind {
	case KindByte, KindShort, KindInt, KindLong, KindFloat, KindDouble, KindString:
		return d.readScalar(kind)
	case KindByteArray:
		return d.readByteArray()
	case KindIntArray:
		return d.readIntArray()
	case KindLongArray:
		return d.readLongArray()
	case KindList:
		return d.readList()
	case KindCompound:
		return d.readCompound()
	case KindEnd:
		panicf(InvalidTag, "unexpected end tag")
	}
	panicf(InvalidTag, "unsupported tag kind %d", byte(kind))
	panic("unreachable")
}

func (d *decoder) readScalar(kind Kind) Value {
	switch kind {
	case KindByte:
		return Value{kind: kind, i: int32(d.cur.ReadInt8())}
	case KindShort:
		return Value{kind: kind, i: int32(d.cur.ReadInt16())}
	case KindInt:
		var v int32
		if d.cur.varint {
			v = d.cur.ReadZigZag32()
		} else {
			v = d.cur.ReadInt32()
		}
		return Value{kind: kind, i: v}
	case KindLong:
		var v int64
		if d.cur.varint {
			v = d.cur.ReadZigZag64()
		} else {
			v = d.cur.ReadInt64()
		}
		return Value{kind: kind, l: v}
	case KindFloat:
		return Value{kind: kind, f: float64(d.cur.ReadFloat32())}
	case KindDouble:
		return Value{kind: kind, f: d.cur.ReadFloat64()}
	case KindString:
		return Value{kind: kind, s: d.readString()}
	}
	panic("unreachable")
}

func (d *decoder) readByteArray() Value {
	n := d.readLength32()
	if n < 0 {
		panicf(InvalidTag, "negative byte array length %d", n)
	}
	raw := d.cur.ReadBytes(int(n))
	out := make([]int8, len(raw))
	for i, b := range raw {
		out[i] = int8(b)
	}
	return Value{kind: KindByteArray, i8s: out}
}

func (d *decoder) readIntArray() Value {
	n := d.readLength32()
	if n < 0 {
		panicf(InvalidTag, "negative int array length %d", n)
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = d.cur.ReadInt32()
	}
	return Value{kind: KindIntArray, i32s: out}
}

func (d *decoder) readLongArray() Value {
	n := d.readLength32()
	if n < 0 {
		panicf(InvalidTag, "negative long array length %d", n)
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = d.cur.ReadInt64()
	}
	return Value{kind: KindLongArray, i64s: out}
}

// readList reads element kind + length + payloads. Numeric primitive
// element kinds materialize a packed buffer; all other element kinds
// materialize an ordered sequence.
func (d *decoder) readList() Value {
	d.enter()
	defer d.leave()

	elemKind := d.readKind()
	n := d.readLength32()
	if n < 0 {
		panicf(InvalidTag, "negative list length %d", n)
	}

	if elemKind == KindEnd {
		if n != 0 {
			panicf(InvalidTag, "list of TAG_End with non-zero length %d", n)
		}
		return Value{kind: KindList, elemKind: KindEnd, seq: []Value{}}
	}

	switch elemKind {
	case KindByte:
		out := make([]int8, n)
		for i := range out {
			out[i] = d.cur.ReadInt8()
		}
		return Value{kind: KindList, elemKind: elemKind, i8s: out}
	case KindShort:
		out := make([]int16, n)
		for i := range out {
			out[i] = d.cur.ReadInt16()
		}
		return Value{kind: KindList, elemKind: elemKind, i16s: out}
	case KindInt:
		out := make([]int32, n)
		for i := range out {
			if d.cur.varint {
				out[i] = d.cur.ReadZigZag32()
			} else {
				out[i] = d.cur.ReadInt32()
			}
		}
		return Value{kind: KindList, elemKind: elemKind, i32s: out}
	case KindLong:
		out := make([]int64, n)
		for i := range out {
			if d.cur.varint {
				out[i] = d.cur.ReadZigZag64()
			} else {
				out[i] = d.cur.ReadInt64()
			}
		}
		return Value{kind: KindList, elemKind: elemKind, i64s: out}
	case KindFloat:
		out := make([]float32, n)
		for i := range out {
			out[i] = d.cur.ReadFloat32()
		}
		return Value{kind: KindList, elemKind: elemKind, f32s: out}
	case KindDouble:
		out := make([]float64, n)
		for i := range out {
			out[i] = d.cur.ReadFloat64()
		}
		return Value{kind: KindList, elemKind: elemKind, f64s: out}
	default:
		seq := make([]Value, n)
		for i := range seq {
			seq[i] = d.readTag(elemKind)
		}
		return Value{kind: KindList, elemKind: elemKind, seq: seq}
	}
}

// readCompound implements the EXPECT_KIND -> EXPECT_NAME -> EXPECT_CHILD
// state machine: repeatedly read a kind byte; END terminates, otherwise
// read a name then a child of that kind. Duplicate keys overwrite the
// earlier value.
func (d *decoder) readCompound() Value {
	d.enter()
	defer d.leave()

	c := newCompound()
	for {
		kind := d.readKind()
		if kind == KindEnd {
			break
		}
		name := d.readString()
		child := d.readTag(kind)
		c.set(name, child)
	}
	return Value{kind: KindCompound, comp: c}
}
