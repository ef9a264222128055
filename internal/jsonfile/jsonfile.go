// Package jsonfile reads and writes whole JSON documents on local disk.
package jsonfile

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nikmy/menuseed/pkg/errors"
)

var (
	ErrNotExist  = errors.Error("file does not exist")
	ErrMalformed = errors.Error("malformed json")
)

// Read decodes the file at path into v. A missing file is reported
// as ErrNotExist and undecodable content as ErrMalformed.
func Read(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(errors.Mark(err, ErrNotExist), "read %s", path)
	}
	if err != nil {
		return errors.WrapFailf(err, "read %s", path)
	}

	err = json.Unmarshal(data, v)
	if err != nil {
		return errors.Wrapf(errors.Mark(err, ErrMalformed), "decode %s", path)
	}

	return nil
}

// Write replaces the file at path with the JSON encoding of v. The
// content goes to a temporary file first, so readers never observe
// a partially written document.
func Write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapFail(err, "encode json")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.WrapFail(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(data)
	if err != nil {
		_ = tmp.Close()
		return errors.WrapFailf(err, "write %s", tmp.Name())
	}

	err = tmp.Close()
	if err != nil {
		return errors.WrapFailf(err, "close %s", tmp.Name())
	}

	return errors.WrapFailf(os.Rename(tmp.Name(), path), "replace %s", path)
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
