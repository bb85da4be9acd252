/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Data lines consist of fields separated by ';'. The first field is either a
single code-point or a range of code-points "XXXX..YYYY". Everything after a
'#' is a comment. Empty lines and comment-only lines are skipped.
*/
package ucdparse

import "fmt"

// Token is a type for communicating between the line-level scanner and the client.
// The scanner will read lines and wrap the content of a data line into a token.
type Token struct {
	LineNo    int       // line number within the input source, starting at 1
	TokenType TokenType // type of token
	runeFrom  rune      // first/single rune
	runeTo    rune      // final rune of range (may be identical to runeFrom)
	Fields    []string  // fields of the data item, without the code-point field
	Comment   string    // rest-of-line comment of data item lines
	Error     error     // error condition, if any
}

// TokenType classifies line-level tokens.
type TokenType int8

// Types of tokens produced by the scanner.
const (
	Undefined TokenType = iota
	EOF
	SingleDataItem
	RangeDataItem
)

func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "EOF"
	case SingleDataItem:
		return "SingleDataItem"
	case RangeDataItem:
		return "RangeDataItem"
	}
	return "Undefined"
}

// newToken creates a token initialized with a line index.
func newToken(line int) *Token {
	return &Token{
		LineNo: line,
		Fields: []string{},
	}
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at(%d) %#U..%#U type=%s %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.TokenType, token.Fields)
}

// Field gets field #i (1…n) from the current data item. Field #0 is the
// code-point field, which is available through Range.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
// For single code-point items, from and to are identical.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}
