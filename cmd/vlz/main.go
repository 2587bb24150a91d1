// Command vlz compresses or decompresses stdin to stdout using the
// vlzpress wire format. It is a thin external collaborator around the
// library's pure byte-in/byte-out core: argument parsing, stream
// chunking, and exit codes live here, not in the codec itself.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/vlzpress/vlzpress"
)

const (
	defaultBufSize = 10 * 1024 * 1024
	smallBufSize   = 100 * 1024
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("vlz", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	compressFlag := fs.Bool("c", false, "compress")
	decompressFlag := fs.Bool("d", false, "decompress")
	fastFlag := fs.Bool("1", false, "fast mode (searchlen=1)")
	smallFlag := fs.Bool("2", false, "small mode (blocksize=4096, smaller I/O chunks)")

	if err := fs.Parse(args); err != nil || (*compressFlag == *decompressFlag) {
		fmt.Fprintf(os.Stderr,
			"Usage: %s [-1|-2] {-c|-d}, where -c is compression and -d is decompression.\n"+
				"  Input is stdin and output is stdout.\n"+
				"  Add '-1' when compressing to enable fast and bad compression.\n"+
				"  Add '-2' when compressing to enable a compression mode for small files.\n",
			os.Args[0])
		return 1
	}

	bufSize := defaultBufSize
	if *smallFlag {
		bufSize = smallBufSize
	}

	var opts []vlz.Option
	if *fastFlag {
		opts = append(opts, vlz.WithSearchLen(1))
	}
	if *smallFlag {
		opts = append(opts, vlz.WithBlockSize(4096))
	}

	r := bufio.NewReaderSize(stdin, bufSize)
	w := bufio.NewWriter(stdout)
	defer w.Flush()

	if *compressFlag {
		if err := compressStream(r, w, bufSize, opts); err != nil {
			log.Printf("vlz: %v", err)
			return 1
		}
		return 0
	}

	if err := decompressStream(r, w, bufSize); err != nil {
		log.Printf("vlz: %v", err)
		return 1
	}
	return 0
}

// compressStream reads stdin in bufSize chunks and compresses each chunk
// as an independent message, writing it immediately. This mirrors the
// original reference implementation's streaming behavior, where the
// compressor is a pure function applied once per buffer read rather than
// a stateful object spanning the whole stream.
func compressStream(r io.Reader, w io.Writer, bufSize int, opts []vlz.Option) error {
	buf := make([]byte, bufSize)
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			if _, werr := w.Write(vlz.Compress(buf[:n], opts...)); werr != nil {
				return werr
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// decompressStream reads stdin in bufSize chunks, feeding each to a
// long-lived Decompressor. Whenever a message completes, the result is
// written out and any leftover bytes in the chunk are re-fed (they may
// be the start of the next message) before more input is read.
func decompressStream(r io.Reader, w io.Writer, bufSize int) error {
	d := vlz.NewDecompressor()
	buf := make([]byte, bufSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			for len(chunk) > 0 {
				complete, leftover, ferr := d.Feed(chunk)
				if ferr != nil {
					return ferr
				}
				if !complete {
					break
				}
				if _, werr := w.Write(d.Result()); werr != nil {
					return werr
				}
				d = vlz.NewDecompressor()
				chunk = leftover
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
