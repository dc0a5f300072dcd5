// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package nbt

import "fmt"

// Value is the closed tagged-union produced by the decoder. Exactly one
// payload field is meaningful for any given Kind; the typed accessors below
// report which.
//
// Scalar numeric width is not kept in the payload: BYTE, SHORT, and INT
// all surface through Int; FLOAT and DOUBLE both surface through Float.
// Kind still reports which wire kind the value was decoded from. Packed
// LIST buffers, by contrast, retain their native element width, since the
// point of the list collapse rule is memory density, not uniformity.
type Value struct {
	kind     Kind
	elemKind Kind // meaningful only when kind == KindList

	i int32
	l int64
	f float64
	b bool
	s string

	i8s  []int8
	i16s []int16
	i32s []int32
	i64s []int64
	f32s []float32
	f64s []float64

	seq  []Value
	comp *Compound
}

// Kind reports the wire tag kind this value was decoded from.
func (v Value) Kind() Kind { return v.kind }

// ElemKind reports the declared element kind of a LIST value. It is the
// zero Kind for any other value.
func (v Value) ElemKind() Kind { return v.elemKind }

// Int returns the value of a BYTE, SHORT, or INT tag.
func (v Value) Int() (int32, bool) {
	switch v.kind {
	case KindByte, KindShort, KindInt:
		return v.i, true
	}
	return 0, false
}

// Long returns the value of a LONG tag.
func (v Value) Long() (int64, bool) {
	if v.kind == KindLong {
		return v.l, true
	}
	return 0, false
}

// Float returns the value of a FLOAT or DOUBLE tag, widened to float64.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat, KindDouble:
		return v.f, true
	}
	return 0, false
}

// Bool returns the reserved boolean variant. NBT has no boolean tag kind;
// the decoder never populates this, so Bool always reports false. The
// variant exists for consumer convenience.
func (v Value) Bool() (bool, bool) { return v.b, false }

// Str returns the value of a STRING tag.
func (v Value) Str() (string, bool) {
	if v.kind == KindString {
		return v.s, true
	}
	return "", false
}

// ByteArray returns the payload of a BYTE_ARRAY tag.
func (v Value) ByteArray() ([]int8, bool) {
	if v.kind == KindByteArray {
		return v.i8s, true
	}
	return nil, false
}

// IntArray returns the payload of an INT_ARRAY tag.
func (v Value) IntArray() ([]int32, bool) {
	if v.kind == KindIntArray {
		return v.i32s, true
	}
	return nil, false
}

// LongArray returns the payload of a LONG_ARRAY tag.
func (v Value) LongArray() ([]int64, bool) {
	if v.kind == KindLongArray {
		return v.i64s, true
	}
	return nil, false
}

// List returns the ordered child sequence of a LIST tag whose element kind
// is not a numeric primitive (STRING, LIST, COMPOUND, or any array kind).
func (v Value) List() ([]Value, bool) {
	if v.kind == KindList && !v.elemKind.isNumericPrimitive() {
		return v.seq, true
	}
	return nil, false
}

// ByteList returns the packed buffer of a LIST tag whose element kind is BYTE.
func (v Value) ByteList() ([]int8, bool) {
	if v.kind == KindList && v.elemKind == KindByte {
		return v.i8s, true
	}
	return nil, false
}

// ShortList returns the packed buffer of a LIST tag whose element kind is SHORT.
func (v Value) ShortList() ([]int16, bool) {
	if v.kind == KindList && v.elemKind == KindShort {
		return v.i16s, true
	}
	return nil, false
}

// IntList returns the packed buffer of a LIST tag whose element kind is INT.
func (v Value) IntList() ([]int32, bool) {
	if v.kind == KindList && v.elemKind == KindInt {
		return v.i32s, true
	}
	return nil, false
}

// LongList returns the packed buffer of a LIST tag whose element kind is LONG.
func (v Value) LongList() ([]int64, bool) {
	if v.kind == KindList && v.elemKind == KindLong {
		return v.i64s, true
	}
	return nil, false
}

// FloatList returns the packed buffer of a LIST tag whose element kind is FLOAT.
func (v Value) FloatList() ([]float32, bool) {
	if v.kind == KindList && v.elemKind == KindFloat {
		return v.f32s, true
	}
	return nil, false
}

// DoubleList returns the packed buffer of a LIST tag whose element kind is DOUBLE.
func (v Value) DoubleList() ([]float64, bool) {
	if v.kind == KindList && v.elemKind == KindDouble {
		return v.f64s, true
	}
	return nil, false
}

// Compound returns the keyed mapping of a COMPOUND tag.
func (v Value) Compound() (*Compound, bool) {
	if v.kind == KindCompound {
		return v.comp, true
	}
	return nil, false
}

// GoString renders a debug form of the value, e.g. "TAG_Byte(127)".
func (v Value) GoString() string {
	switch v.kind {
	case KindByte, KindShort, KindInt:
		return fmt.Sprintf("%s(%d)", v.kind, v.i)
	case KindLong:
		return fmt.Sprintf("%s(%d)", v.kind, v.l)
	case KindFloat, KindDouble:
		return fmt.Sprintf("%s(%v)", v.kind, v.f)
	case KindString:
		return fmt.Sprintf("%s(%q)", v.kind, v.s)
	case KindByteArray:
		return fmt.Sprintf("%s(len=%d)", v.kind, len(v.i8s))
	case KindIntArray:
		return fmt.Sprintf("%s(len=%d)", v.kind, len(v.i32s))
	case KindLongArray:
		return fmt.Sprintf("%s(len=%d)", v.kind, len(v.i64s))
	case KindList:
		return fmt.Sprintf("%s(elem=%s, len=%d)", v.kind, v.elemKind, v.listLen())
	case KindCompound:
		n := 0
		if v.comp != nil {
			n = v.comp.Len()
		}
		return fmt.Sprintf("%s(keys=%d)", v.kind, n)
	default:
		return v.kind.String()
	}
}

func (v Value) listLen() int {
	switch {
	case v.i8s != nil:
		return len(v.i8s)
	case v.i16s != nil:
		return len(v.i16s)
	case v.i32s != nil:
		return len(v.i32s)
	case v.i64s != nil:
		return len(v.i64s)
	case v.f32s != nil:
		return len(v.f32s)
	case v.f64s != nil:
		return len(v.f64s)
	default:
		return len(v.seq)
	}
}

// Compound is an ordered, keyed mapping from names to child tags. Keys
// iterate in first-occurrence wire order; inserting a duplicate key
// overwrites the earlier value in place without disturbing its position.
type Compound struct {
	order  []string
	values map[string]Value
}

func newCompound() *Compound {
	return &Compound{values: make(map[string]Value)}
}

func (c *Compound) set(name string, v Value) {
	if _, ok := c.values[name]; !ok {
		c.order = append(c.order, name)
	}
	c.values[name] = v
}

// Get looks up a child tag by name.
func (c *Compound) Get(name string) (Value, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Len reports the number of distinct keys.
func (c *Compound) Len() int { return len(c.order) }

// Keys returns the keys in first-occurrence wire order.
func (c *Compound) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Range calls fn for each entry in first-occurrence wire order, stopping
// early if fn returns false.
func (c *Compound) Range(fn func(name string, v Value) bool) {
	for _, name := range c.order {
		if !fn(name, c.values[name]) {
			return
		}
	}
}
