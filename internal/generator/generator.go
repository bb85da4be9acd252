/*
Package generator is a generator for the tables of Arabic characters.

Content

Generator for the name and code-point tables of package arabic. Names are
taken from the Unicode Character Database file "UnicodeData.txt", which
may be downloaded with internal/testdata/download.go.

The generator selects the code-points U+0621…U+063A and U+0640…U+0652 and
converts their Unicode names to title case, e.g.

   ARABIC LETTER TEH MARBUTA  =>  ArabicLetterTehMarbuta, "Arabic Letter Teh Marbuta"


Usage

   generator [-v] [-ucd path] [-version x.y.z] [-o file]

This creates a file "arabictables.go" in the current directory. It is designed
to be called by 'go generate' from the root directory of the module.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/arabic/internal/testdata"
	"github.com/npillmayer/arabic/internal/ucdparse"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var logger = log.New(os.Stderr, "Arabic generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// Code-point ranges of the characters to generate.
var coveredRanges = [...][2]rune{
	{0x0621, 0x063A}, // letters and hamza-seated forms
	{0x0640, 0x0652}, // tatweel and diacritics
}

func isCovered(r rune) bool {
	for _, rng := range coveredRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

func coveredCount() int {
	n := 0
	for _, rng := range coveredRanges {
		n += int(rng[1]-rng[0]) + 1
	}
	return n
}

type character struct {
	Ident  string // Go identifier
	Name   string // title-cased Unicode name
	Scalar rune
}

// Load the characters from a UnicodeData.txt file.
// Returns a list of character, in code-point order.
func loadCharacters(r io.Reader) (*arraylist.List, error) {
	defer timeTrack(time.Now(), "loading UnicodeData.txt")
	title := cases.Title(language.Und)
	chars := arraylist.New()
	err := ucdparse.Parse(r, func(token *ucdparse.Token) {
		from, to := token.Range()
		for cp := from; cp <= to; cp++ {
			if !isCovered(cp) {
				continue
			}
			name := title.String(strings.TrimSpace(token.Field(1)))
			chars.Add(character{
				Ident:  strings.ReplaceAll(name, " ", ""),
				Name:   name,
				Scalar: cp,
			})
		}
	})
	if err != nil {
		return nil, fmt.Errorf("parsing UnicodeData.txt: %w", err)
	}
	return chars, nil
}

// Load the characters from UnicodeData.txt at path, or from the downloaded
// copy in internal/testdata if path is empty.
func loadFile(path string) (*arraylist.List, error) {
	if path == "" {
		in, err := testdata.UCDReader("UnicodeData.txt")
		if err != nil {
			return nil, err
		}
		return loadCharacters(in)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return loadCharacters(f)
}

// Check that every covered code-point has been found exactly once.
func checkComplete(chars *arraylist.List) error {
	if chars.Size() != coveredCount() {
		return fmt.Errorf("expected %d characters, found %d", coveredCount(), chars.Size())
	}
	seen := make(map[rune]bool, chars.Size())
	it := chars.Iterator()
	for it.Next() {
		c := it.Value().(character)
		if seen[c.Scalar] {
			return fmt.Errorf("duplicate code-point %#U", c.Scalar)
		}
		seen[c.Scalar] = true
	}
	return nil
}

// --- Templates --------------------------------------------------------

var header = `package arabic

// This file has been generated -- you probably should NOT EDIT IT !
//
// Generated from UnicodeData.txt, Unicode {{.Version}}
//
// BSD License, Copyright (c) 2023, Norbert Pillmayer (norbert@pillmayer.com)
`

var templateConsts = `
// These are all the characters of the Arabic script.
const ({{range $i, $c := .Chars}}
	{{$c.Ident}}{{if eq $i 0}} Character = iota + 1{{end}}{{end}}
)

// Count is the number of characters of the Arabic script.
const Count = {{len .Chars}}

const (
	firstScalar rune = {{printf "%#04x" .First}}
	lastScalar  rune = {{printf "%#04x" .Last}}
)
`

var templateTable = `
// characterTable is indexed by Character.
var characterTable = [...]struct {
	name   string
	scalar rune
}{
	{},
{{range .Chars}}	{ {{- printf "%q" .Name}}, {{printf "%#04x" .Scalar}}},
{{end}}}
`

var templateReverse = `
// characterFromScalar is indexed by code-point - firstScalar.
// Code-points without a Character map to 0.
var characterFromScalar = [...]Character{
{{range .Reverse}}	{{.Ident}}, // {{printf "U+%04X" .Scalar}}
{{end}}}
`

type tableData struct {
	Version     string
	Chars       []interface{}
	First, Last rune
	Reverse     []character
}

func makeTableData(chars *arraylist.List, version string) (*tableData, error) {
	if chars.Empty() {
		return nil, errors.New("no characters to generate")
	}
	data := &tableData{Version: version, Chars: chars.Values()}
	first, _ := chars.Get(0)
	last, _ := chars.Get(chars.Size() - 1)
	data.First, data.Last = first.(character).Scalar, last.(character).Scalar
	idents := make(map[rune]string, chars.Size())
	for _, c := range data.Chars {
		idents[c.(character).Scalar] = c.(character).Ident
	}
	for cp := data.First; cp <= data.Last; cp++ {
		ident, ok := idents[cp]
		if !ok {
			ident = "0"
		}
		data.Reverse = append(data.Reverse, character{Ident: ident, Scalar: cp})
	}
	return data, nil
}

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	t := template.Must(template.New(name).Parse(templString))
	return t
}

// generate writes the Go source code for the tables to w.
func generate(w io.Writer, chars *arraylist.List, version string) error {
	defer timeTrack(time.Now(), "generate tables")
	data, err := makeTableData(chars, version)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	for _, t := range []*template.Template{
		makeTemplate("header", header),
		makeTemplate("character constants", templateConsts),
		makeTemplate("character table", templateTable),
		makeTemplate("reverse table", templateReverse),
	} {
		if err := t.Execute(&buf, data); err != nil {
			return err
		}
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated code: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// --- Main -------------------------------------------------------------

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	ucdFile := flag.String("ucd", "", "path of UnicodeData.txt (default: internal/testdata/ucd)")
	version := flag.String("version", "15.0.0", "Unicode version of UnicodeData.txt")
	outFile := flag.String("o", "arabictables.go", "output file")
	flag.Parse()
	verbose = *doVerbose
	chars, err := loadFile(*ucdFile)
	checkFatal(err)
	checkFatal(checkComplete(chars))
	if verbose {
		logger.Printf("loaded %d Arabic characters\n", chars.Size())
	}
	f, ioerr := os.Create(*outFile)
	checkFatal(ioerr)
	defer f.Close()
	checkFatal(generate(f, chars, *version))
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
