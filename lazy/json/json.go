// Package json provides source cursors that decode JSON values one at a time,
// and a sink that encodes a cursor as newline-delimited JSON.
package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/lguimbarda/min-lazy/lazy/core"
)

// ErrNotArray is reported by DecodeArray when the input does not start with '['.
var ErrNotArray = errors.New("json: input is not an array")

// DecodeStream creates a cursor over a stream of whitespace-separated JSON
// values, such as newline-delimited JSON. Each value is decoded into a T when
// the cursor reaches it. A malformed value ends the cursor; see Err.
func DecodeStream[T any](r io.Reader) *core.ReadCursor[T] {
	dec := json.NewDecoder(r)
	read := func() (T, error) {
		var v T
		err := dec.Decode(&v)
		return v, err
	}
	return core.FromRead(read, closerOf(r))
}

// DecodeArray creates a cursor over the elements of a top-level JSON array.
// Elements are decoded one at a time, so the whole array is never held in memory.
// Input that is empty or does not start with '[' is reported as ErrNotArray,
// and an array cut off before its closing ']' as io.ErrUnexpectedEOF.
func DecodeArray[T any](r io.Reader) *core.ReadCursor[T] {
	dec := json.NewDecoder(r)
	opened := false

	read := func() (T, error) {
		var v T
		if !opened {
			tok, err := dec.Token()
			if errors.Is(err, io.EOF) {
				return v, fmt.Errorf("%w: empty input", ErrNotArray)
			}
			if err != nil {
				return v, err
			}
			if delim, ok := tok.(json.Delim); !ok || delim != '[' {
				return v, fmt.Errorf("%w: got %v", ErrNotArray, tok)
			}
			opened = true
		}
		if !dec.More() {
			if _, err := dec.Token(); err != nil {
				return v, truncated(err)
			}
			return v, io.EOF
		}
		return v, truncated(dec.Decode(&v))
	}
	return core.FromRead(read, closerOf(r))
}

// truncated turns the end of input inside an open array into an error.
func truncated(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}

// EncodeLines drains c, writing every element to w as one line of JSON.
// It stops at the first encoding or write error.
func EncodeLines[T any](c core.Cursor[T], w io.Writer) error {
	enc := json.NewEncoder(w)
	for c.HasMore() {
		if err := enc.Encode(c.Current()); err != nil {
			return fmt.Errorf("json: encoding element: %w", err)
		}
		c.Advance()
	}
	return nil
}

func closerOf(r io.Reader) func() error {
	if c, ok := r.(io.Closer); ok {
		return c.Close
	}
	return nil
}
