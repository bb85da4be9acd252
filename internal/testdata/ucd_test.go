package testdata

import (
	"path/filepath"
	"testing"
)

func TestUCDPath(t *testing.T) {
	p := UCDPath("UnicodeData.txt")
	if filepath.Base(p) != "UnicodeData.txt" || filepath.Base(filepath.Dir(p)) != "ucd" {
		t.Errorf("expected path to end in ucd/UnicodeData.txt, is %q", p)
	}
	if _, err := UCDReader("no-such-file.txt"); err == nil {
		t.Errorf("expected error for missing UCD file")
	}
}
