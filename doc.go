/*
Package arabic provides the characters of the Arabic script as a closed,
strongly-typed set of values.

Description

Each letter, diacritical mark and the tatweel of the basic Arabic Unicode
block is available as a constant of type Character, named after its
standardized Unicode name. Clients may therefore write

   c := arabic.ArabicLetterDad

instead of juggling code points like 'ض'. Every Character reports
its owning Unicode block, its Unicode name and its scalar value:

   c.Block()        // "Arabic"
   c.Name()         // "Arabic Letter Dad"
   c.ScalarValue()  // 'ض'

Conversion from a rune is fallible, as only a fixed subset of the
Arabic block is covered:

   c, err := arabic.FromRune('ض')     // ArabicLetterDad, nil
   _, err = arabic.FromRune('a')      // ErrNotArabicScript

The covered set consists of the code points U+0621…U+063A (letters and
hamza-seated forms) and U+0640…U+0652 (tatweel, tanwin marks, short vowel
marks, shadda and sukun). Everything else, including Arabic-Indic digits
and the later extensions of the Arabic block, is rejected.

Caveats

This package is a typed lookup table, not a text-processing engine. It does
not perform shaping, selection of presentation forms, bidi reordering or
normalization. See packages github.com/npillmayer/uax/bidi and
github.com/npillmayer/opentype for these.

Tables

The character tables in file arabictables.go are generated from the
Unicode Character Database file UnicodeData.txt by

   go generate

which runs the generator in internal/generator.

BSD License

Copyright (c) 2023, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package arabic

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
