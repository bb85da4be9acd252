package arabic

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

//go:generate go run ./internal/generator -v

// UnicodeCharacter is implemented by every character-like value which is able
// to report its Unicode block, its Unicode name and its scalar value.
type UnicodeCharacter interface {
	Block() string     // owning Unicode block
	Name() string      // Unicode name, title-cased, e.g. "Arabic Letter Hamza"
	ScalarValue() rune // Unicode code-point
}

// Block is the Unicode block of every Character.
const Block = "Arabic"

// ErrNotArabicScript is returned by FromRune for a rune which is not part of
// the set of Arabic characters.
var ErrNotArabicScript = errors.New("not an Arabic script character")

// Character is one of the characters of the Arabic script.
// Valid values are the constants ArabicLetterHamza … ArabicSukun; the zero
// value does not denote a character.
//
// Character implements interface UnicodeCharacter.
type Character uint8

var _ UnicodeCharacter = ArabicLetterHamza

// FromRune returns the Character for a Unicode code-point.
// If r is not one of the covered code-points, ErrNotArabicScript is returned.
// This includes characters from the Arabic Unicode block which are not
// part of the set, e.g. Arabic-Indic digits.
func FromRune(r rune) (Character, error) {
	if r < firstScalar || r > lastScalar {
		return 0, ErrNotArabicScript
	}
	if c := characterFromScalar[r-firstScalar]; c != 0 {
		return c, nil
	}
	return 0, ErrNotArabicScript
}

// Valid returns true if c is one of the named characters.
func (c Character) Valid() bool {
	return c > 0 && int(c) < len(characterTable)
}

// Block returns the Unicode block of c, which is always "Arabic".
func (c Character) Block() string {
	return Block
}

// Name returns the Unicode name of c, e.g. "Arabic Letter Hamza".
// For an invalid c the empty string is returned.
func (c Character) Name() string {
	if !c.Valid() {
		return ""
	}
	return characterTable[c].name
}

// ScalarValue returns the Unicode code-point of c.
// For an invalid c utf8.RuneError is returned.
func (c Character) ScalarValue() rune {
	if !c.Valid() {
		return utf8.RuneError
	}
	return characterTable[c].scalar
}

// String returns c as a string of exactly one character.
func (c Character) String() string {
	if !c.Valid() {
		return "Character(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return string(characterTable[c].scalar)
}

// GoString returns the Unicode name together with the character, i.e.
// "Arabic Letter Hamza { ء }". It is used for the %#v verb.
func (c Character) GoString() string {
	if !c.Valid() {
		return c.String()
	}
	return c.Name() + " { " + c.String() + " }"
}

// Equals compares the Unicode block, the name and the scalar value of two
// characters. Any implementation of UnicodeCharacter may be compared against.
// An invalid Character never equals anything, not even itself.
func (c Character) Equals(other UnicodeCharacter) bool {
	if !c.Valid() || other == nil {
		return false
	}
	return c.Block() == other.Block() &&
		c.Name() == other.Name() &&
		c.ScalarValue() == other.ScalarValue()
}

// EqualsRune returns true if r is the scalar value of c.
func (c Character) EqualsRune(r rune) bool {
	return c.Valid() && c.ScalarValue() == r
}

// EqualsString returns true if s consists of exactly the character c.
// Strings of more than one character never equal a Character.
func (c Character) EqualsString(s string) bool {
	return c.Valid() && s == c.String()
}
