package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrInputCancelled is returned when a prompt is abandoned through its context.
	ErrInputCancelled = errors.New("input canceled")
	// ErrInputClosed is returned when input ends before an answer is given.
	ErrInputClosed = errors.New("input closed before an answer was given")
)

type readResult struct {
	err  error
	line string
}

// answerReader reads one prompt answer per line. A read abandoned by a
// cancelled context stays pending and its line goes to the next caller,
// so typed answers are never dropped. Not safe for concurrent use.
type answerReader struct {
	src     *bufio.Reader
	pending chan readResult
}

func newAnswerReader(r io.Reader) *answerReader {
	return &answerReader{src: bufio.NewReader(r)}
}

// next returns the next answer with surrounding space removed and inner
// runs of whitespace collapsed, so "  Weekly   shop\r\n" reads as
// "Weekly shop". A last line without a newline still counts.
func (r *answerReader) next(ctx context.Context) (string, error) {
	if r.pending == nil {
		if ctx.Err() != nil {
			return "", ErrInputCancelled
		}
		ch := make(chan readResult, 1)
		go func() {
			line, err := r.src.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
		r.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-r.pending:
		r.pending = nil
		return res.answer()
	}
}

func (res readResult) answer() (string, error) {
	switch {
	case res.err == nil:
	case errors.Is(res.err, io.EOF):
		if res.line == "" {
			return "", ErrInputClosed
		}
	default:
		return "", fmt.Errorf("failed to read answer: %w", res.err)
	}
	return strings.Join(strings.Fields(res.line), " "), nil
}
