// Package objrepo serves packed object data from a directory of legacy
// object files.
package objrepo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"

	"parksave.dev/internal/persistence/sv6"
)

var (
	ErrNotFound = errors.New("object file not found")
	ErrMismatch = errors.New("object file does not match its entry")
)

// entrySize is the length of the object entry that opens every object file.
const entrySize = 16

// Dir looks objects up as <NAME>.DAT under Root. A zstd-compressed
// <NAME>.DAT.zst is used when the plain file is absent.
type Dir struct {
	Root string
}

func New(root string) *Dir {
	return &Dir{Root: root}
}

// Name returns the trimmed object name of e.
func Name(e sv6.ObjectEntry) string {
	return strings.TrimRight(string(e.Name[:]), " \x00")
}

// WritePackedObjects copies the file of every entry in objs to w, in order.
func (d *Dir) WritePackedObjects(w io.Writer, objs []sv6.ObjectEntry) error {
	for _, e := range objs {
		data, err := d.Read(e)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("write object %s: %w", Name(e), err)
		}
	}
	return nil
}

// Read loads the object file for e and checks that it opens with e's name
// and flags.
func (d *Dir) Read(e sv6.ObjectEntry) ([]byte, error) {
	name := Name(e)
	data, err := d.load(name)
	if err != nil {
		return nil, err
	}
	if len(data) < entrySize || !bytes.Equal(data[4:12], e.Name[:]) {
		return nil, fmt.Errorf("%s: %w", name, ErrMismatch)
	}
	return data, nil
}

func (d *Dir) load(name string) ([]byte, error) {
	for _, candidate := range []string{name, strings.ToUpper(name), strings.ToLower(name)} {
		base := filepath.Join(d.Root, candidate)
		data, err := os.ReadFile(base + ".DAT")
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		data, err = readZstd(base + ".DAT.zst")
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
}

func readZstd(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
