// Package testdata locates Unicode Character Database files which have been
// downloaded with download.go.
//
// download.go fetches the single file UnicodeData.txt, not the complete UCD
// archive, and stores it as
//
//    internal/testdata/ucd/UnicodeData.txt
//
// UCDReader("UnicodeData.txt") then returns its content. The ucd directory
// is not part of the repository.
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// UCDReader returns a reader for the given ucd file.
func UCDReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(UCDPath(file))
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(data), nil
}

// UCDPath returns path for the given ucd file.
func UCDPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}

	return filepath.Join(filepath.Dir(pkgdir), "ucd", file)
}
