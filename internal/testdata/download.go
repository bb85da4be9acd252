//go:build ignore
// +build ignore

// Download fetches UnicodeData.txt from the Unicode Consortium into
// directory "ucd". Call it from within directory internal/testdata:
//
//    go run download.go
//
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const ucdVersion = "15.0.0"

func main() {
	url := "https://www.unicode.org/Public/" + ucdVersion + "/ucd/UnicodeData.txt"
	err := downloadUCDFile(url, filepath.Join("ucd", "UnicodeData.txt"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to download: %v\n", err)
		os.Exit(1)
	}
}

func downloadUCDFile(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return writeFile(path, resp.Body)
}

func writeFile(path string, rc io.Reader) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}

	_, err = io.Copy(f, rc)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}

	return nil
}
