// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package nbt

import (
	"io"

	"github.com/dsnet/golib/errs"

	"github.com/SuperLlama88888/NBTify/internal/decompress"
)

// Read decodes a complete NBT document from input, resolving any framing
// parameter left unset in hints by speculative trial.
//
// Detection proceeds axis by axis — compression, then endianness, then
// root-name framing — trying candidates in a fixed order and keeping the
// first candidate whose remaining axes also succeed. Each axis's error, if
// every candidate at that axis fails, is the first attempted candidate's
// error, since that is usually the most informative cause to report.
func Read(input []byte, hints Hints) (result *Result, err error) {
	defer errs.Recover(&err)
	return resolveCompression(input, hints), nil
}

// ReadFrom materializes r fully before decoding, since NBT framing
// detection requires random access (magic-byte sniffing, trailing-byte
// checks) that a single forward pass cannot provide.
func ReadFrom(r io.Reader, hints Hints) (*Result, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Read(buf, hints)
}

// attemptInOrder runs each attempt in order, returning nil on the first
// success. If every attempt fails, it returns the first attempt's error,
// since that is usually the most informative candidate for a correctly
// hinted but malformed document.
func attemptInOrder(attempts ...func() error) error {
	var firstErr error
	for _, attempt := range attempts {
		if err := attempt(); err == nil {
			return nil
		} else if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func resolveCompression(raw []byte, h Hints) *Result {
	if c := h.compression(); c != CompressionAuto {
		return resolveEndian(raw, c, h)
	}

	if hasGzipMagic(raw) {
		return resolveEndian(raw, CompressionGzip, h)
	}
	if hasZlibMagic(raw) {
		return resolveEndian(raw, CompressionZlib, h)
	}

	var result *Result
	err := attemptInOrder(
		func() error {
			var err error
			result, err = recoverResult(func() *Result { return resolveEndian(raw, CompressionNone, h) })
			return err
		},
		func() error {
			var err error
			result, err = recoverResult(func() *Result { return resolveEndian(raw, CompressionRawDeflate, h) })
			return err
		},
	)
	if err != nil {
		errs.Panic(err)
	}
	return result
}

func resolveEndian(raw []byte, comp Compression, h Hints) *Result {
	payload := applyDecompression(raw, comp)

	if e := h.endian(); e != EndianAuto {
		switch e {
		case EndianBig, EndianLittle, EndianLittleVarint:
		default:
			panicf(Validation, "invalid endian value %d", int(e))
		}
		return resolveRootName(payload, comp, e, h)
	}

	var result *Result
	err := attemptInOrder(
		func() error {
			var err error
			result, err = recoverResult(func() *Result { return resolveRootName(payload, comp, EndianBig, h) })
			return err
		},
		func() error {
			var err error
			result, err = recoverResult(func() *Result { return resolveRootName(payload, comp, EndianLittle, h) })
			return err
		},
		func() error {
			var err error
			result, err = recoverResult(func() *Result { return resolveRootName(payload, comp, EndianLittleVarint, h) })
			return err
		},
	)
	if err != nil {
		errs.Panic(err)
	}
	return result
}

func resolveRootName(payload []byte, comp Compression, endian Endian, h Hints) *Result {
	bedrockLevel := resolveBedrockLevel(payload, endian, h)

	decodeWith := func(mode RootNameMode, exact string) *Result {
		cur := newCursor(payload, endian != EndianBig, endian == EndianLittleVarint)
		if bedrockLevel {
			cur.Skip(8)
		}

		kind := Kind(cur.ReadUint8())
		if kind != KindCompound && kind != KindList {
			panicf(InvalidOpeningTag, "root tag kind %s is not TAG_Compound or TAG_List", kind)
		}

		dec := newDecoder(cur, h.maxDepth())

		var rootName string
		switch mode {
		case RootNamePresent:
			rootName = dec.readString()
		case RootNameExact:
			rootName = dec.readString()
			if rootName != exact {
				panicf(UnexpectedRootName, "root name %q does not match expected %q", rootName, exact)
			}
		case RootNameAbsent:
			// no name field to read
		}

		root := dec.readTag(kind)

		if h.strict() && cur.pos != len(cur.buf) {
			panicf(UnexpectedEndTag, "%d trailing bytes after root tag", len(cur.buf)-cur.pos)
		}

		return &Result{
			Root:     root,
			RootName: rootName,
			Framing: ResolvedFraming{
				Compression:  comp,
				Endian:       endian,
				BedrockLevel: bedrockLevel,
				RootName:     mode,
				RootNameText: rootName,
			},
			FinalOffset: cur.pos,
		}
	}

	if hint := h.rootNameHint(); hint != nil {
		return decodeWith(hint.Mode, hint.Exact)
	}

	var result *Result
	err := attemptInOrder(
		func() error {
			var err error
			result, err = recoverResult(func() *Result { return decodeWith(RootNamePresent, "") })
			return err
		},
		func() error {
			var err error
			result, err = recoverResult(func() *Result { return decodeWith(RootNameAbsent, "") })
			return err
		},
	)
	if err != nil {
		errs.Panic(err)
	}
	return result
}

func resolveBedrockLevel(buf []byte, endian Endian, h Hints) bool {
	if v, pinned := h.bedrockLevel(); pinned {
		return v
	}
	return hasBedrockLevelHeader(buf, endian)
}

func applyDecompression(raw []byte, comp Compression) []byte {
	switch comp {
	case CompressionNone:
		return raw
	case CompressionGzip:
		return mustDecompress(raw, decompress.Gzip)
	case CompressionZlib:
		return mustDecompress(raw, decompress.Zlib)
	case CompressionRawDeflate:
		return mustDecompress(raw, decompress.RawDeflate)
	default:
		panicf(Validation, "invalid compression value %d", int(comp))
		panic("unreachable")
	}
}

func mustDecompress(raw []byte, scheme decompress.Scheme) []byte {
	out, err := decompress.Decompress(raw, scheme)
	if err != nil {
		errs.Panic(err)
	}
	return out
}

// recoverResult runs fn, converting any panic into an error so the caller's
// attemptInOrder combinator can evaluate it.
func recoverResult(fn func() *Result) (result *Result, err error) {
	defer errs.Recover(&err)
	result = fn()
	return result, nil
}
