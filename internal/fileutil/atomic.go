// Package fileutil contains helpers for writing output files.
package fileutil

import (
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomically streams write into a temporary file next to filePath
// and renames it into place. If anything goes wrong the temporary file is
// deleted and any existing file at filePath is left untouched.
func WriteFileAtomically(filePath string, mode os.FileMode, write func(w io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(filePath), filepath.Base(filePath)+".tmp")
	if err != nil {
		return err
	}
	tmpPath := f.Name()

	err = writeFileAndClose(f, mode, write)
	if err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	err = os.Rename(tmpPath, filePath)
	if err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}

func writeFileAndClose(f *os.File, mode os.FileMode, write func(w io.Writer) error) error {
	err := write(f)
	if err != nil {
		_ = f.Close()
		return err
	}

	err = f.Sync()
	if err != nil {
		_ = f.Close()
		return err
	}

	err = f.Chmod(mode)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
