package io

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Tape provides line-oriented console I/O of unsigned decimal words.
// It wraps an io.Reader for input and an io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
}

var _ Channel = (*Tape)(nil)

// Rewind drops any buffered input. A tape cannot seek, so the next Receive
// continues from wherever Input currently is.
func (tc *Tape) Rewind() {
	tc.reader = nil
}

// Receive reads one line from the input stream, and parses it as an
// unsigned decimal. Surrounding whitespace is ignored. A final line without
// a newline is accepted.
func (tc *Tape) Receive() (value uint64, err error) {
	if tc.Input == nil {
		err = ErrTapeEmpty
		return
	}

	if tc.reader == nil {
		tc.reader = bufio.NewReader(tc.Input)
	}

	line, err := tc.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && len(line) > 0 {
		err = nil
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrTapeEmpty
		}
		return
	}

	text := strings.TrimSpace(line)
	value, err = strconv.ParseUint(text, 10, 64)
	if err != nil {
		err = errors.Join(ErrTapeMalformed(text), err)
	}

	return
}

// Send writes the decimal form of value to the output stream, with no
// separator.
func (tc *Tape) Send(value uint64) (err error) {
	if tc.Output == nil {
		err = ErrTapeOutput
		return
	}

	_, err = io.WriteString(tc.Output, strconv.FormatUint(value, 10))
	return
}
