package ucdparse

import (
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	input := strings.NewReader("000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>")
	sc, err := New(input)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Next() {
		t.Logf("token = %v", sc.Token)
		t.Fatal(sc.Token.Error)
	}
	t.Logf("token = %v", sc.Token)
	if sc.Token.Field(1) != "CM" {
		t.Errorf("expected field #1 to be 'CM', is %q", sc.Token.Field(1))
	}
	from, to := sc.Token.Range()
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
	if sc.Token.TokenType != RangeDataItem {
		t.Errorf("expected token type to be RangeDataItem, is %s", sc.Token.TokenType)
	}
	if sc.Token.Comment != "Cc    [18] <control-000E>..<control-001F>" {
		t.Errorf("unexpected comment %q", sc.Token.Comment)
	}
	if sc.Next() {
		t.Errorf("expected end of input")
	}
	if sc.Token.TokenType != EOF {
		t.Errorf("expected EOF token, is %s", sc.Token.TokenType)
	}
}

const unicodeDataExcerpt = `# excerpt of UnicodeData.txt

0621;ARABIC LETTER HAMZA;Lo;0;AL;;;;;N;ARABIC LETTER HAMZAH;;;;
0622;ARABIC LETTER ALEF WITH MADDA ABOVE;Lo;0;AL;0627 0653;;;;N;ARABIC LETTER MADDAH ON ALEF;;;;
064B;ARABIC FATHATAN;Mn;27;NSM;;;;;N;;;;;
`

func TestParseUnicodeData(t *testing.T) {
	var tokens []*Token
	err := Parse(strings.NewReader(unicodeDataExcerpt), func(token *Token) {
		tokens = append(tokens, token)
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 data items, have %d", len(tokens))
	}
	if from, to := tokens[1].Range(); from != 0x0622 || to != 0x0622 {
		t.Errorf("expected single code-point 0622, is %04X..%04X", from, to)
	}
	if tokens[1].TokenType != SingleDataItem {
		t.Errorf("expected token type to be SingleDataItem, is %s", tokens[1].TokenType)
	}
	if tokens[1].Field(1) != "ARABIC LETTER ALEF WITH MADDA ABOVE" {
		t.Errorf("unexpected name field %q", tokens[1].Field(1))
	}
	if tokens[2].Field(2) != "Mn" {
		t.Errorf("expected general category of fathatan to be Mn, is %q", tokens[2].Field(2))
	}
	if tokens[2].LineNo != 5 {
		t.Errorf("expected fathatan on line 5, is on line %d", tokens[2].LineNo)
	}
	if tokens[0].Field(99) != "" || tokens[0].Field(0) != "" {
		t.Errorf("expected out-of-range fields to be empty")
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"00ZZ;bad hex",
		"0030..0020;reversed range",
		"0030..;open range",
	} {
		err := Parse(strings.NewReader(input), func(*Token) {})
		if err == nil {
			t.Errorf("expected error for input %q", input)
		}
	}
	if _, err := New(nil); err == nil {
		t.Errorf("expected error for nil input")
	}
}
