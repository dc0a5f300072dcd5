// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package nbt

import (
	"encoding/binary"
	"math"
)

// cursor is a bounds-checked reader over a byte slice with selectable
// endianness. It tracks a current offset and exposes primitive reads that
// panic rather than return an error on short input, operating byte-wise
// since NBT has no sub-byte fields.
//
// Every read panics with a *Error of kind UnexpectedBufferEnd on short
// input; callers recover at a decode-attempt boundary (see driver.go).
type cursor struct {
	buf          []byte
	pos          int
	littleEndian bool
	varint       bool
}

func newCursor(buf []byte, littleEndian, varint bool) *cursor {
	return &cursor{buf: buf, littleEndian: littleEndian, varint: varint}
}

func (c *cursor) byteOrder() binary.ByteOrder {
	if c.littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func (c *cursor) need(n int) {
	if len(c.buf)-c.pos < n {
		panicf(UnexpectedBufferEnd, "need %d bytes at offset %d, only %d remain", n, c.pos, len(c.buf)-c.pos)
	}
}

// Skip advances the cursor by n bytes without interpreting them, used for
// the Bedrock level header prefix.
func (c *cursor) Skip(n int) {
	c.need(n)
	c.pos += n
}

// ReadBytes returns a copy of the next n bytes. A copy is returned, not a
// slice of the underlying buffer, since decompression may have allocated a
// buffer the decoder does not own past the call that produced it.
func (c *cursor) ReadBytes(n int) []byte {
	c.need(n)
	out := make([]byte, n)
	copy(out, c.buf[c.pos:c.pos+n])
	c.pos += n
	return out
}

func (c *cursor) ReadUint8() uint8 {
	c.need(1)
	b := c.buf[c.pos]
	c.pos++
	return b
}

func (c *cursor) ReadInt8() int8 { return int8(c.ReadUint8()) }

func (c *cursor) ReadUint16() uint16 {
	c.need(2)
	v := c.byteOrder().Uint16(c.buf[c.pos:])
	c.pos += 2
	return v
}

func (c *cursor) ReadInt16() int16 { return int16(c.ReadUint16()) }

func (c *cursor) ReadUint32() uint32 {
	c.need(4)
	v := c.byteOrder().Uint32(c.buf[c.pos:])
	c.pos += 4
	return v
}

func (c *cursor) ReadInt32() int32 { return int32(c.ReadUint32()) }

func (c *cursor) ReadUint64() uint64 {
	c.need(8)
	v := c.byteOrder().Uint64(c.buf[c.pos:])
	c.pos += 8
	return v
}

func (c *cursor) ReadInt64() int64 { return int64(c.ReadUint64()) }

func (c *cursor) ReadFloat32() float32 { return math.Float32frombits(c.ReadUint32()) }

func (c *cursor) ReadFloat64() float64 { return math.Float64frombits(c.ReadUint64()) }

// ReadUvarint reads a LEB128-style unsigned varint: each byte contributes 7
// payload bits plus a continuation flag, endian-independent.
func (c *cursor) ReadUvarint() uint64 {
	var result uint64
	var shift uint
	for {
		b := c.ReadUint8()
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result
		}
		shift += 7
		if shift > 63 {
			panicf(VarnumTooLarge, "varint exceeds 63 bits of shift")
		}
	}
}

// ReadZigZag64 reads a ZigZag-encoded signed 64-bit varint:
// (n >> 1) XOR -(n AND 1).
func (c *cursor) ReadZigZag64() int64 {
	u := c.ReadUvarint()
	return int64(u>>1) ^ -int64(u&1)
}

// ReadZigZag32 reads a ZigZag-encoded signed 32-bit varint over an unsigned
// 32-bit accumulator, so that values needing bit 31 decode correctly rather
// than being corrupted by sign extension.
func (c *cursor) ReadZigZag32() int32 {
	u := uint32(c.ReadUvarint())
	return int32(u>>1) ^ -int32(u&1)
}

// hasGzipMagic reports whether buf begins with the gzip magic 0x1F 0x8B.
func hasGzipMagic(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0x1F && buf[1] == 0x8B
}

// hasZlibMagic reports whether buf begins with the zlib CMF byte 0x78.
func hasZlibMagic(buf []byte) bool {
	return len(buf) >= 1 && buf[0] == 0x78
}

// hasBedrockLevelHeader reports whether buf begins with an 8-byte Bedrock
// level-file header: a 4-byte version (ignored) followed by a 4-byte
// little-endian payload length equal to len(buf)-8. Only meaningful when
// endian is little.
func hasBedrockLevelHeader(buf []byte, endian Endian) bool {
	if endian != EndianLittle {
		return false
	}
	if len(buf) < 8 {
		return false
	}
	n := binary.LittleEndian.Uint32(buf[4:8])
	return int64(n) == int64(len(buf)-8)
}
