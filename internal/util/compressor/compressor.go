// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compressor

import (
	"bufio"
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type CompressType int16

const (
	None CompressType = iota
	Gzip
	Zstd
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

const readBufferSize = 256 * 1024

func (t CompressType) String() string {
	switch t {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return "none"
	}
}

// Detect tells the compression of a stream from its first bytes.
func Detect(head []byte) CompressType {
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return Gzip
	case bytes.HasPrefix(head, zstdMagic):
		return Zstd
	default:
		return None
	}
}

type decompressReader struct {
	io.Reader
	close func()
}

func (r *decompressReader) Close() error {
	r.close()
	return nil
}

// NewReader returns a reader over the decoded content of in, which may be
// gzip, zstd or uncompressed. Closing it does not close in.
func NewReader(in io.Reader) (io.ReadCloser, CompressType, error) {
	br := bufio.NewReaderSize(in, readBufferSize)
	head, err := br.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, None, err
	}

	typ := Detect(head)
	switch typ {
	case Gzip:
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, typ, err
		}
		return &decompressReader{Reader: gr, close: func() { gr.Close() }}, typ, nil
	case Zstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, typ, err
		}
		return &decompressReader{Reader: zr, close: zr.Close}, typ, nil
	default:
		return &decompressReader{Reader: br, close: func() {}}, typ, nil
	}
}

// Compress writes in to out encoded with typ.
func Compress(in io.Reader, out io.Writer, typ CompressType) error {
	var enc io.WriteCloser
	switch typ {
	case Gzip:
		enc = gzip.NewWriter(out)
	case Zstd:
		zw, err := zstd.NewWriter(out)
		if err != nil {
			return err
		}
		enc = zw
	case None:
		_, err := io.Copy(out, in)
		return err
	default:
		return errors.Newf("unknown compress type %d", typ)
	}

	if _, err := io.Copy(enc, in); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
