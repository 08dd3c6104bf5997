// Package driver reads a line-oriented program against a Sequence —
// a header declaring its size and operation count, followed by one
// `S i v` / `G i` / `R i j` line per operation — and writes one output
// line per `G`. It plays the role the teacher's Session/HandleCommands
// loop plays for RESP: parse one line into tokens, dispatch on the
// first token, reply, repeat until EOF.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/codecrafters-io/splaytree-go/splaytree"
)

// ErrMalformedInput is wrapped by any error caused by input that does
// not match the header/operation grammar (bad integer, wrong token
// count, bad bit literal, G on an out-of-range index).
var ErrMalformedInput = errors.New("malformed input")

// ErrUnknownCommand is wrapped when an operation line's first token is
// not S, G, or R.
var ErrUnknownCommand = errors.New("unknown command")

// Run reads a program from r and writes G's replies to w, one per
// line. It returns nil after processing exactly the declared number
// of operations, or a wrapped ErrMalformedInput / ErrUnknownCommand on
// the first bad line. Input that ends before the declared number of
// operations yields a wrapped io.ErrUnexpectedEOF; lines after the
// declared operations are not read.
func Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n, m, err := readHeader(scanner)
	if err != nil {
		return err
	}

	seq := splaytree.NewSequence(n)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for i := 0; i < m; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading operation %d: %w", i, err)
			}
			return fmt.Errorf("reading operation %d: %w", i, io.ErrUnexpectedEOF)
		}
		if err := applyOp(seq, scanner.Text(), bw); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}

	return bw.Flush()
}

func readHeader(scanner *bufio.Scanner) (n, m int, err error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, 0, fmt.Errorf("reading header: %w", err)
		}
		return 0, 0, fmt.Errorf("reading header: %w", io.ErrUnexpectedEOF)
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("header %q: want \"n m\": %w", scanner.Text(), ErrMalformedInput)
	}
	n, err1 := strconv.Atoi(fields[0])
	m, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("header %q: non-integer field: %w", scanner.Text(), ErrMalformedInput)
	}
	if n < 0 || m < 0 {
		return 0, 0, fmt.Errorf("header %q: negative field: %w", scanner.Text(), ErrMalformedInput)
	}
	return n, m, nil
}

func applyOp(seq *splaytree.Sequence, line string, bw *bufio.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("empty line: %w", ErrMalformedInput)
	}

	switch fields[0] {
	case "S":
		if len(fields) != 3 {
			return fmt.Errorf("%q: S wants 2 arguments: %w", line, ErrMalformedInput)
		}
		i, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("%q: non-integer index: %w", line, ErrMalformedInput)
		}
		bit, err := parseBit(fields[2])
		if err != nil {
			return fmt.Errorf("%q: %w", line, err)
		}
		seq.Set(i, bit)
		return nil

	case "G":
		if len(fields) != 2 {
			return fmt.Errorf("%q: G wants 1 argument: %w", line, ErrMalformedInput)
		}
		i, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("%q: non-integer index: %w", line, ErrMalformedInput)
		}
		val, ok := seq.Get(i)
		if !ok {
			return fmt.Errorf("%q: index %d out of range: %w", line, i, ErrMalformedInput)
		}
		if val {
			fmt.Fprintln(bw, 1)
		} else {
			fmt.Fprintln(bw, 0)
		}
		return nil

	case "R":
		if len(fields) != 3 {
			return fmt.Errorf("%q: R wants 2 arguments: %w", line, ErrMalformedInput)
		}
		i, err1 := strconv.Atoi(fields[1])
		j, err2 := strconv.Atoi(fields[2])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("%q: non-integer index: %w", line, ErrMalformedInput)
		}
		seq.ReverseRange(i, j)
		return nil

	default:
		return fmt.Errorf("%q: %w", line, ErrUnknownCommand)
	}
}

func parseBit(tok string) (bool, error) {
	switch tok {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("%q is not a bit (0 or 1): %w", tok, ErrMalformedInput)
	}
}
