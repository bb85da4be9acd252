package arabic

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/rangetable"
)

// Script is the ISO 15924 identifier of the Arabic script.
var Script = language.MustParseScript("Arab")

// RangeTable contains the code-points of all the characters of this package.
// Clients can check with unicode.Is(arabic.RangeTable, r).
var RangeTable = makeRangeTable()

// nameIndex maps lower-case Unicode names to characters.
var nameIndex = makeNameIndex()

// ErrUnknownName is returned by Lookup for a name which does not denote
// an Arabic character.
var ErrUnknownName = errors.New("unknown Arabic character name")

// Characters returns all the characters in code-point order.
func Characters() []Character {
	chars := make([]Character, Count)
	for i := range chars {
		chars[i] = Character(i + 1)
	}
	return chars
}

// Is returns true if r is the code-point of one of the characters.
func Is(r rune) bool {
	return unicode.Is(RangeTable, r)
}

// Lookup finds a character by its Unicode name. Lookup is tolerant with
// respect to case and leading or trailing white space, i.e.
//
//    Lookup("ARABIC LETTER HAMZA")
//
// will return ArabicLetterHamza.
func Lookup(name string) (Character, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, found := nameIndex.Get(key); found {
		return c.(Character), nil
	}
	T().Debugf("no Arabic character named %q", name)
	return 0, ErrUnknownName
}

// Names returns the Unicode names of all the characters, sorted alphabetically.
func Names() []string {
	names := make([]string, 0, nameIndex.Size())
	it := nameIndex.Iterator()
	for it.Next() {
		names = append(names, it.Value().(Character).Name())
	}
	return names
}

// ScriptError is returned by Parse for input containing a rune which is not
// one of the characters.
type ScriptError struct {
	Rune rune // offending rune, utf8.RuneError for invalid UTF-8
	Pos  int  // byte position of Rune within the input
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%#U at position %d: %s", e.Rune, e.Pos, ErrNotArabicScript)
}

// Unwrap returns ErrNotArabicScript.
func (e *ScriptError) Unwrap() error {
	return ErrNotArabicScript
}

// Parse converts a string to a slice of characters. If s contains a rune
// which is not one of the characters, a *ScriptError is returned, which
// wraps ErrNotArabicScript.
func Parse(s string) ([]Character, error) {
	chars := make([]Character, 0, utf8.RuneCountInString(s))
	for pos, r := range s {
		c, err := FromRune(r)
		if err != nil {
			T().Debugf("Arabic parse: rejecting %#U at position %d", r, pos)
			return nil, &ScriptError{Rune: r, Pos: pos}
		}
		chars = append(chars, c)
	}
	return chars, nil
}

func makeRangeTable() *unicode.RangeTable {
	runes := make([]rune, 0, Count)
	for _, c := range Characters() {
		runes = append(runes, c.ScalarValue())
	}
	return rangetable.New(runes...)
}

func makeNameIndex() *treemap.Map {
	m := treemap.NewWithStringComparator()
	for _, c := range Characters() {
		m.Put(strings.ToLower(c.Name()), c)
	}
	return m
}
