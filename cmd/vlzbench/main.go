// Command vlzbench compresses one or more files with vlzpress and with a
// handful of reference codecs from the Go ecosystem, and reports
// compressed size and wall-clock compress time for each. It exists to put
// vlzpress's ratio and speed in context; it is not part of the codec and
// does not attempt interoperability between the codecs it compares (see
// the module's Non-goals).
package main

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pierrec/xxHash/xxHash32"

	"github.com/vlzpress/vlzpress"
)

type codec struct {
	name     string
	compress func([]byte) (int, error)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s file [file...]\n", os.Args[0])
		os.Exit(1)
	}

	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("vlzbench: %v", err)
		}
		report(path, data)
	}
}

func report(name string, data []byte) {
	fingerprint := xxHash32.Checksum(data, 0)
	fmt.Printf("%s: %d bytes, fingerprint %08x\n", name, len(data), fingerprint)

	codecs := []codec{
		{"vlzpress", func(b []byte) (int, error) { return len(vlz.Compress(b)), nil }},
		{"flate (klauspost)", compressFlate},
		{"gzip (stdlib)", compressGzip},
		{"snappy", compressSnappy},
		{"lz4", compressLZ4},
		{"zstd (klauspost)", compressZstd},
		{"brotli", compressBrotli},
	}

	for _, c := range codecs {
		start := time.Now()
		size, err := c.compress(data)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Printf("  %-20s error: %v\n", c.name, err)
			continue
		}
		ratio := 0.0
		if len(data) > 0 {
			ratio = float64(size) / float64(len(data))
		}
		fmt.Printf("  %-20s %10d bytes  ratio %.3f  %v\n", c.name, size, ratio, elapsed)
	}
}

func compressFlate(data []byte) (int, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func compressGzip(data []byte) (int, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func compressSnappy(data []byte) (int, error) {
	return len(snappy.Encode(nil, data)), nil
}

func compressLZ4(data []byte) (int, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	var c lz4.Compressor
	n, err := c.CompressBlock(data, dst)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		// Incompressible block; lz4 reports 0 and expects the caller to
		// store it raw.
		return len(data), nil
	}
	return n, nil
}

func compressZstd(data []byte) (int, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return 0, err
	}
	defer enc.Close()
	return len(enc.EncodeAll(data, nil)), nil
}

func compressBrotli(data []byte) (int, error) {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return 0, err
	}
	if err := w.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}
