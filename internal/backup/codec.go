package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Veraticus/pocketledger/internal/service"
)

// Codec exports and imports backups against a store.
type Codec struct {
	store service.SnapshotStore
}

// New creates a codec for store.
func New(store service.SnapshotStore) *Codec {
	return &Codec{store: store}
}

// Export snapshots the whole store into a document.
func (c *Codec) Export(ctx context.Context) (*Document, error) {
	ledger, err := c.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot ledger: %w", err)
	}
	return NewDocument(ledger), nil
}

// Write exports the store as indented JSON to w.
func (c *Codec) Write(ctx context.Context, w io.Writer) error {
	doc, err := c.Export(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// ExportFile writes a backup to path. The file is written beside path and
// renamed into place, so path never holds a partial backup.
func (c *Codec) ExportFile(ctx context.Context, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	file, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer func() { _ = os.Remove(tmpPath) }()

	if err := c.Write(ctx, file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to flush backup: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close backup: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move backup into place: %w", err)
	}

	slog.Info("Exported backup", "path", path)
	return nil
}

// Import validates doc and, only if it is well formed, replaces the whole
// store with its contents.
func (c *Codec) Import(ctx context.Context, doc *Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	ledger := doc.Ledger()
	if err := c.store.Restore(ctx, ledger); err != nil {
		return fmt.Errorf("failed to restore ledger: %w", err)
	}

	slog.Info("Imported backup",
		"transactions", len(ledger.Transactions),
		"categories", len(ledger.Categories))
	return nil
}

// Read decodes a document from r and imports it.
func (c *Codec) Read(ctx context.Context, r io.Reader) error {
	doc, err := Decode(r)
	if err != nil {
		return err
	}
	return c.Import(ctx, doc)
}

// ImportFile imports the backup stored at path.
func (c *Codec) ImportFile(ctx context.Context, path string) error {
	file, err := os.Open(path) //nolint:gosec // user-selected backup path
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}
	defer func() { _ = file.Close() }()

	return c.Read(ctx, file)
}

// Decode parses a document without validating it. Malformed JSON, a
// top-level value that is not an object, or a mistyped key is reported as
// ErrInvalidDocument.
func Decode(r io.Reader) (*Document, error) {
	var doc *Document
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrInvalidDocument)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is null", ErrInvalidDocument)
	}
	return doc, nil
}
