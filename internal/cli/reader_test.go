package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerReader_Next(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{name: "title", input: "Groceries\n", want: []string{"Groceries"}, wantErr: ErrInputClosed},
		{name: "inner spaces collapse", input: "  Weekly   shop \t\n", want: []string{"Weekly shop"}, wantErr: ErrInputClosed},
		{name: "windows line ending", input: "42.50\r\n", want: []string{"42.50"}, wantErr: ErrInputClosed},
		{name: "last line without newline", input: "Food", want: []string{"Food"}, wantErr: ErrInputClosed},
		{name: "blank answer keeps fallback possible", input: "\n", want: []string{""}, wantErr: ErrInputClosed},
		{name: "whole transaction", input: "Coffee\n4.50\n2\n", want: []string{"Coffee", "4.50", "2"}, wantErr: ErrInputClosed},
		{name: "nothing typed", input: "", want: nil, wantErr: ErrInputClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAnswerReader(strings.NewReader(tt.input))
			ctx := context.Background()

			for _, want := range tt.want {
				got, err := r.next(ctx)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}

			_, err := r.next(ctx)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestAnswerReader_ReadError(t *testing.T) {
	disk := errors.New("device gone")
	r := newAnswerReader(failingReader{err: disk})

	_, err := r.next(context.Background())
	assert.ErrorIs(t, err, disk)
	assert.NotErrorIs(t, err, ErrInputClosed)
}

func TestAnswerReader_Cancellation(t *testing.T) {
	t.Run("already cancelled", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer func() { _ = pw.Close() }()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newAnswerReader(pr).next(ctx)
		assert.ErrorIs(t, err, ErrInputCancelled)
	})

	t.Run("answer typed after cancel goes to the next prompt", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer func() { _ = pw.Close() }()
		r := newAnswerReader(pr)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := r.next(ctx)
		require.ErrorIs(t, err, ErrInputCancelled)

		go func() { _, _ = pw.Write([]byte("Rent\n")) }()

		got, err := r.next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Rent", got)
	})
}
