// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package decompress wraps the three compression schemes NBT payloads are
// commonly wrapped in: gzip, zlib, and raw DEFLATE.
package decompress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Scheme identifies a compression wrapper format.
type Scheme int

const (
	None Scheme = iota
	Gzip
	Zlib
	RawDeflate
)

func (s Scheme) String() string {
	switch s {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	case RawDeflate:
		return "raw-deflate"
	default:
		return "unknown"
	}
}

// Decompress fully inflates buf according to scheme. None returns buf
// unchanged.
func Decompress(buf []byte, scheme Scheme) ([]byte, error) {
	var r io.Reader
	switch scheme {
	case None:
		return buf, nil
	case Gzip:
		gr, err := gzip.NewReader(bytes.NewReader(buf))
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		r = gr
	case Zlib:
		zr, err := zlib.NewReader(bytes.NewReader(buf))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case RawDeflate:
		fr := flate.NewReader(bytes.NewReader(buf))
		defer fr.Close()
		r = fr
	default:
		return nil, errInvalidScheme{scheme}
	}
	return io.ReadAll(r)
}

type errInvalidScheme struct{ s Scheme }

func (e errInvalidScheme) Error() string { return "decompress: invalid scheme value" }
