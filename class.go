package arabic

import "strconv"

// Class is a coarse classification of Arabic characters.
type Class uint8

// Classes of Arabic characters. Tanwin marks, short vowel marks, shadda and
// sukun are collectively called diacritics (tashkil).
const (
	NoClass         Class = iota // not a valid character
	LetterClass                  // basic letters and hamza-seated forms
	TatweelClass                 // elongation for justification
	TanwinClass                  // nunation: fathatan, dammatan, kasratan
	ShortVowelClass              // fatha, damma, kasra
	ShaddaClass                  // consonant gemination
	SukunClass                   // absence of a vowel
)

const _Class_name = "NoClassLetterClassTatweelClassTanwinClassShortVowelClassShaddaClassSukunClass"

var _Class_index = [...]uint8{0, 7, 18, 30, 41, 56, 67, 77}

func (c Class) String() string {
	if int(c) >= len(_Class_index)-1 {
		return "Class(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return _Class_name[_Class_index[c]:_Class_index[c+1]]
}

// Class returns the class of c.
func (c Character) Class() Class {
	switch {
	case !c.Valid():
		return NoClass
	case c == ArabicTatweel:
		return TatweelClass
	case c >= ArabicFathatan && c <= ArabicKasratan:
		return TanwinClass
	case c >= ArabicFatha && c <= ArabicKasra:
		return ShortVowelClass
	case c == ArabicShadda:
		return ShaddaClass
	case c == ArabicSukun:
		return SukunClass
	}
	return LetterClass
}

// IsLetter returns true for basic letters and hamza-seated forms.
func (c Character) IsLetter() bool {
	return c.Class() == LetterClass
}

// IsDiacritic returns true for the combining marks, i.e. tanwin marks,
// short vowel marks, shadda and sukun.
func (c Character) IsDiacritic() bool {
	switch c.Class() {
	case TanwinClass, ShortVowelClass, ShaddaClass, SukunClass:
		return true
	}
	return false
}
