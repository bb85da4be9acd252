package arabic

// This file has been generated -- you probably should NOT EDIT IT !
//
// Generated from UnicodeData.txt, Unicode 15.0.0
//
// BSD License, Copyright (c) 2023, Norbert Pillmayer (norbert@pillmayer.com)

// These are all the characters of the Arabic script.
const (
	ArabicLetterHamza Character = iota + 1
	ArabicLetterAlefWithMaddaAbove
	ArabicLetterAlefWithHamzaAbove
	ArabicLetterWawWithHamzaAbove
	ArabicLetterAlefWithHamzaBelow
	ArabicLetterYehWithHamzaAbove
	ArabicLetterAlef
	ArabicLetterBeh
	ArabicLetterTehMarbuta
	ArabicLetterTeh
	ArabicLetterTheh
	ArabicLetterJeem
	ArabicLetterHah
	ArabicLetterKhah
	ArabicLetterDal
	ArabicLetterThal
	ArabicLetterReh
	ArabicLetterZain
	ArabicLetterSeen
	ArabicLetterSheen
	ArabicLetterSad
	ArabicLetterDad
	ArabicLetterTah
	ArabicLetterZah
	ArabicLetterAin
	ArabicLetterGhain
	ArabicTatweel
	ArabicLetterFeh
	ArabicLetterQaf
	ArabicLetterKaf
	ArabicLetterLam
	ArabicLetterMeem
	ArabicLetterNoon
	ArabicLetterHeh
	ArabicLetterWaw
	ArabicLetterAlefMaksura
	ArabicLetterYeh
	ArabicFathatan
	ArabicDammatan
	ArabicKasratan
	ArabicFatha
	ArabicDamma
	ArabicKasra
	ArabicShadda
	ArabicSukun
)

// Count is the number of characters of the Arabic script.
const Count = 45

const (
	firstScalar rune = 0x0621
	lastScalar  rune = 0x0652
)

// characterTable is indexed by Character.
var characterTable = [...]struct {
	name   string
	scalar rune
}{
	{},
	{"Arabic Letter Hamza", 0x0621},
	{"Arabic Letter Alef With Madda Above", 0x0622},
	{"Arabic Letter Alef With Hamza Above", 0x0623},
	{"Arabic Letter Waw With Hamza Above", 0x0624},
	{"Arabic Letter Alef With Hamza Below", 0x0625},
	{"Arabic Letter Yeh With Hamza Above", 0x0626},
	{"Arabic Letter Alef", 0x0627},
	{"Arabic Letter Beh", 0x0628},
	{"Arabic Letter Teh Marbuta", 0x0629},
	{"Arabic Letter Teh", 0x062a},
	{"Arabic Letter Theh", 0x062b},
	{"Arabic Letter Jeem", 0x062c},
	{"Arabic Letter Hah", 0x062d},
	{"Arabic Letter Khah", 0x062e},
	{"Arabic Letter Dal", 0x062f},
	{"Arabic Letter Thal", 0x0630},
	{"Arabic Letter Reh", 0x0631},
	{"Arabic Letter Zain", 0x0632},
	{"Arabic Letter Seen", 0x0633},
	{"Arabic Letter Sheen", 0x0634},
	{"Arabic Letter Sad", 0x0635},
	{"Arabic Letter Dad", 0x0636},
	{"Arabic Letter Tah", 0x0637},
	{"Arabic Letter Zah", 0x0638},
	{"Arabic Letter Ain", 0x0639},
	{"Arabic Letter Ghain", 0x063a},
	{"Arabic Tatweel", 0x0640},
	{"Arabic Letter Feh", 0x0641},
	{"Arabic Letter Qaf", 0x0642},
	{"Arabic Letter Kaf", 0x0643},
	{"Arabic Letter Lam", 0x0644},
	{"Arabic Letter Meem", 0x0645},
	{"Arabic Letter Noon", 0x0646},
	{"Arabic Letter Heh", 0x0647},
	{"Arabic Letter Waw", 0x0648},
	{"Arabic Letter Alef Maksura", 0x0649},
	{"Arabic Letter Yeh", 0x064a},
	{"Arabic Fathatan", 0x064b},
	{"Arabic Dammatan", 0x064c},
	{"Arabic Kasratan", 0x064d},
	{"Arabic Fatha", 0x064e},
	{"Arabic Damma", 0x064f},
	{"Arabic Kasra", 0x0650},
	{"Arabic Shadda", 0x0651},
	{"Arabic Sukun", 0x0652},
}

// characterFromScalar is indexed by code-point - firstScalar.
// Code-points without a Character map to 0.
var characterFromScalar = [...]Character{
	ArabicLetterHamza,              // U+0621
	ArabicLetterAlefWithMaddaAbove, // U+0622
	ArabicLetterAlefWithHamzaAbove, // U+0623
	ArabicLetterWawWithHamzaAbove,  // U+0624
	ArabicLetterAlefWithHamzaBelow, // U+0625
	ArabicLetterYehWithHamzaAbove,  // U+0626
	ArabicLetterAlef,               // U+0627
	ArabicLetterBeh,                // U+0628
	ArabicLetterTehMarbuta,         // U+0629
	ArabicLetterTeh,                // U+062A
	ArabicLetterTheh,               // U+062B
	ArabicLetterJeem,               // U+062C
	ArabicLetterHah,                // U+062D
	ArabicLetterKhah,               // U+062E
	ArabicLetterDal,                // U+062F
	ArabicLetterThal,               // U+0630
	ArabicLetterReh,                // U+0631
	ArabicLetterZain,               // U+0632
	ArabicLetterSeen,               // U+0633
	ArabicLetterSheen,              // U+0634
	ArabicLetterSad,                // U+0635
	ArabicLetterDad,                // U+0636
	ArabicLetterTah,                // U+0637
	ArabicLetterZah,                // U+0638
	ArabicLetterAin,                // U+0639
	ArabicLetterGhain,              // U+063A
	0,                              // U+063B
	0,                              // U+063C
	0,                              // U+063D
	0,                              // U+063E
	0,                              // U+063F
	ArabicTatweel,                  // U+0640
	ArabicLetterFeh,                // U+0641
	ArabicLetterQaf,                // U+0642
	ArabicLetterKaf,                // U+0643
	ArabicLetterLam,                // U+0644
	ArabicLetterMeem,               // U+0645
	ArabicLetterNoon,               // U+0646
	ArabicLetterHeh,                // U+0647
	ArabicLetterWaw,                // U+0648
	ArabicLetterAlefMaksura,        // U+0649
	ArabicLetterYeh,                // U+064A
	ArabicFathatan,                 // U+064B
	ArabicDammatan,                 // U+064C
	ArabicKasratan,                 // U+064D
	ArabicFatha,                    // U+064E
	ArabicDamma,                    // U+064F
	ArabicKasra,                    // U+0650
	ArabicShadda,                   // U+0651
	ArabicSukun,                    // U+0652
}
