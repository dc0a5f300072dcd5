// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package nbt decodes Minecraft's Named Binary Tag format into an in-memory
// value tree.
//
// NBT is a recursively nested, self-describing binary serialization used by
// both the Java and Bedrock editions of Minecraft. This package supports the
// big-endian fixed-width dialect used by Java edition files, the
// little-endian fixed-width dialect used by Bedrock edition files, and the
// little-endian ZigZag-varint dialect used by Bedrock network streams, and it
// can auto-detect compression, endianness, and root-name framing by
// speculative trial when those parameters aren't supplied as hints.
//
// This package is read-only: there is no encoder, no SNBT/JSON conversion,
// and no mutation of a decoded tree. Lists of a numeric primitive kind are
// materialized into packed Go slices rather than a heterogeneous sequence of
// boxed values, and scalar numbers of different wire widths share one
// accessor (Value.Int for 8/16/32-bit integers, Value.Float for 32/64-bit
// floats), although Value.Kind still reports the wire kind — both are
// documented, intentional departures from a lossless NBT representation.
package nbt
