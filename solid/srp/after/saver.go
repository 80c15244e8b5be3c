package after

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrNoFilename is returned when Save is given an empty filename.
var ErrNoFilename = errors.New("order saver: empty filename")

// Encoder turns an order into the bytes stored on disk.
type Encoder interface {
	Encode(o Order) ([]byte, error)
}

// TextEncoder renders "Items:<items>, Total:<total>".
type TextEncoder struct{}

// Encode renders "Items:<items>, Total:<total>".
func (TextEncoder) Encode(o Order) ([]byte, error) {
	return []byte(fmt.Sprintf("Items:%v, Total:%v", o.Items, o.Total())), nil
}

// Snapshot is the msgpack document written by MsgpackEncoder.
type Snapshot struct {
	Items []Item  `msgpack:"items"`
	Total float64 `msgpack:"total"`
}

// MsgpackEncoder writes a binary Snapshot of the order.
type MsgpackEncoder struct{}

// Encode packs a Snapshot of o.
func (MsgpackEncoder) Encode(o Order) ([]byte, error) {
	return msgpack.Marshal(Snapshot{Items: o.Items, Total: o.Total()})
}

// OrderSaver persists orders to files. A zero OrderSaver uses TextEncoder.
type OrderSaver struct {
	Encoder Encoder
}

// NewOrderSaver returns a saver using enc; a nil enc means TextEncoder.
func NewOrderSaver(enc Encoder) OrderSaver {
	return OrderSaver{Encoder: enc}
}

// Save encodes o and writes it to filename, replacing any previous content.
func (s OrderSaver) Save(o Order, filename string) error {
	if filename == "" {
		return ErrNoFilename
	}
	enc := s.Encoder
	if enc == nil {
		enc = TextEncoder{}
	}
	data, err := enc.Encode(o)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	if err := writeFileAtomic(filename, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes to a temp file next to targetPath and renames it into
// place. The temp file is closed on every path and removed on failure.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	tmp, err := createTempFile(filepath.Dir(targetPath), filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	return renameFile(tmpPath, targetPath)
}
