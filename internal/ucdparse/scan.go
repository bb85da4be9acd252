package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// --- Line level scanner ----------------------------------------------------

// Scanner is a type for a line-level scanner of UCD files.
type Scanner struct {
	input     *bufio.Scanner
	lineNo    int
	LastError error  // last error, if any
	Token     *Token // last token produced by scanner
}

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	sc := &Scanner{input: bufio.NewScanner(inputReader)}
	return sc, nil
}

// Parse iterates over each data line of the input and calls callback f on it.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next is called to receive the next data line as a token. It returns false
// at the end of input or on the first malformed line. In the latter case
// LastError and Token.Error will be set.
func (sc *Scanner) Next() bool {
	for sc.input.Scan() {
		sc.lineNo++
		sc.Token = newToken(sc.lineNo)
		text := sc.input.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			sc.Token.Comment = strings.TrimSpace(text[i+1:])
			text = text[:i]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := sc.scanItem(text); err != nil {
			sc.Token.Error = fmt.Errorf("line %d: %w", sc.lineNo, err)
			sc.LastError = sc.Token.Error
			return false
		}
		return true
	}
	sc.Token = newToken(sc.lineNo)
	sc.Token.TokenType = EOF
	if err := sc.input.Err(); err != nil {
		sc.Token.Error = err
		sc.LastError = err
	}
	return false
}

func (sc *Scanner) scanItem(text string) error {
	fields := strings.Split(text, ";")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if err := sc.scanRuneRange(fields[0]); err != nil {
		return err
	}
	sc.Token.Fields = fields[1:]
	return nil
}

func (sc *Scanner) scanRuneRange(field string) error {
	from, to := field, field
	sc.Token.TokenType = SingleDataItem
	if i := strings.Index(field, ".."); i >= 0 {
		from, to = field[:i], field[i+2:]
		sc.Token.TokenType = RangeDataItem
	}
	var err error
	if sc.Token.runeFrom, err = parseHex(from); err != nil {
		return err
	}
	if sc.Token.runeTo, err = parseHex(to); err != nil {
		return err
	}
	if sc.Token.runeTo < sc.Token.runeFrom {
		return fmt.Errorf("invalid code-point range %s", field)
	}
	return nil
}

func parseHex(hex string) (rune, error) {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex decoding error: %w", err)
	}
	return rune(n), nil
}
