package lexer

import (
	"testing"

	"github.com/dhamidi/javafront/name"
	"github.com/dhamidi/javafront/token"
)

type recordingErrors struct {
	reports []string
}

func (r *recordingErrors) Report(pos int, code string, args ...any) {
	r.reports = append(r.reports, code)
}

func newFactory() *ScannerFactory {
	return NewScannerFactory(name.New(), nil, DefaultOptions())
}

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	f := newFactory()
	tz := f.NewTokenizer([]byte(src))
	var out []token.Token
	for {
		tok := tz.ReadToken()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// E1: empty input tokenizes to a single EOF at (0,0).
func TestE1EmptyInput(t *testing.T) {
	toks := tokenize(t, "")
	if len(toks) != 1 || toks[0].Kind != token.EOF || toks[0].Start != 0 || toks[0].End != 0 {
		t.Fatalf("got %+v, want single EOF(0,0)", toks)
	}
}

// E2: keyword vs. identifier.
func TestE2KeywordVsIdentifier(t *testing.T) {
	toks := tokenize(t, "classy class")
	want := []struct {
		kind       token.Kind
		start, end int
	}{
		{token.IDENTIFIER, 0, 6},
		{token.CLASS, 7, 12},
		{token.EOF, 12, 12},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Start != w.start || toks[i].End != w.end {
			t.Errorf("token %d = %+v, want kind=%v start=%d end=%d", i, toks[i], w.kind, w.start, w.end)
		}
	}
}

// E3: operator split.
func TestE3OperatorSplit(t *testing.T) {
	f := newFactory()
	tz := f.NewTokenizer([]byte(">>="))
	lx := NewLexer(tz)

	if got := lx.Token(); got.Kind != token.GTGTEQ || got.Start != 0 || got.End != 3 {
		t.Fatalf("initial token = %+v, want GTGTEQ(0,3)", got)
	}

	gt, ok := lx.Split()
	if !ok || gt.Kind != token.GT || gt.Start != 0 || gt.End != 1 {
		t.Fatalf("Split() = %+v, %v, want GT(0,1), true", gt, ok)
	}
	if cur := lx.Token(); cur.Kind != token.GT || cur != gt {
		t.Fatalf("Token() after Split() = %+v, want %+v", cur, gt)
	}

	next := lx.NextToken()
	if next.Kind != token.GTEQ || next.Start != 1 || next.End != 3 {
		t.Fatalf("NextToken() after Split() = %+v, want GTEQ(1,3)", next)
	}
}

// E3b: division and compound-assignment division are operators, not
// comments or illegal characters. isOperatorStart must admit '/' for
// ReadToken to ever reach scanOperator's SLASH/SLASHEQ cases.
func TestE3bDivisionOperator(t *testing.T) {
	toks := tokenize(t, "x / y")
	want := []token.Kind{token.IDENTIFIER, token.SLASH, token.IDENTIFIER, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d = %+v, want kind=%v", i, toks[i], k)
		}
	}

	toks = tokenize(t, "x /= y")
	want = []token.Kind{token.IDENTIFIER, token.SLASHEQ, token.IDENTIFIER, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d = %+v, want kind=%v", i, toks[i], k)
		}
	}
}

// E4: hex float literal with underscore.
func TestE4HexFloatWithUnderscore(t *testing.T) {
	toks := tokenize(t, "0x1_F.2p3f")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2 (literal + EOF): %+v", len(toks), toks)
	}
	lit := toks[0]
	if lit.Kind != token.FLOATLITERAL {
		t.Fatalf("kind = %v, want FLOATLITERAL", lit.Kind)
	}
	if lit.NumericRadix != token.Hexadecimal {
		t.Fatalf("radix = %v, want Hexadecimal", lit.NumericRadix)
	}
	if lit.NumericValue != "1F.2p3f" {
		t.Fatalf("decoded lexeme = %q, want %q", lit.NumericValue, "1F.2p3f")
	}
}

// Property 1 (partial): every non-EOF token's [Start, End) span lies
// within the source and is well ordered, so src[start:end] is a valid
// slice. The slice is not compared against the token's spelling.
func TestRoundTripPositions(t *testing.T) {
	src := "package com.example;\n\nclass Foo {\n  int x = 42;\n}\n"
	runes := []rune(src)
	for _, tok := range tokenize(t, src) {
		if tok.Kind == token.EOF {
			continue
		}
		if tok.Start < 0 || tok.End > len(runes) || tok.Start > tok.End {
			t.Fatalf("token %+v has an out-of-range span over %d runes", tok, len(runes))
		}
	}
}

// Property 2 (partial): tokenizing runs through the whole source,
// including a trailing comment gap, so the last non-EOF token ends at
// len(src). The concatenated spans are not compared with src.
func TestRoundTripConcatenation(t *testing.T) {
	src := "int x = 1; // comment\nfloat y = .5f;"
	f := newFactory()
	tz := f.NewTokenizer([]byte(src))
	var lastEnd int
	for {
		tok := tz.ReadToken()
		if tok.Kind == token.EOF {
			break
		}
		lastEnd = tok.End
	}
	if lastEnd != len([]rune(src)) {
		t.Fatalf("last non-EOF token ended at %d, want %d (full source consumed)", lastEnd, len([]rune(src)))
	}
}

// Property 3: keyword/identifier closure, including non-ASCII identifiers.
func TestKeywordIdentifierClosure(t *testing.T) {
	keywords := []string{"abstract", "class", "while", "true", "false", "null", "_"}
	for _, kw := range keywords {
		toks := tokenize(t, kw)
		if len(toks) != 2 {
			t.Fatalf("tokenizing keyword %q: got %d tokens, want 2", kw, len(toks))
		}
		if toks[0].Kind == token.IDENTIFIER {
			t.Errorf("keyword %q lexed as IDENTIFIER", kw)
		}
	}

	idents := []string{"classy", "κόσμε", "über", "x1", "_underscored"}
	for _, id := range idents {
		toks := tokenize(t, id)
		if len(toks) != 2 || toks[0].Kind != token.IDENTIFIER {
			t.Errorf("tokenizing identifier %q: got %+v, want single IDENTIFIER", id, toks)
		}
	}
}

// Property 4: literal decoding across radices.
func TestLiteralDecoding(t *testing.T) {
	cases := []struct {
		src   string
		kind  token.Kind
		radix token.Radix
		value string
	}{
		{"0x1F", token.INTLITERAL, token.Hexadecimal, "1F"},
		{"0b1010", token.INTLITERAL, token.Binary, "1010"},
		{"1_000_000", token.INTLITERAL, token.Decimal, "1000000"},
		{"3.14e10", token.DOUBLELITERAL, token.Decimal, "3.14e10"},
		{"100L", token.LONGLITERAL, token.Decimal, "100"},
	}
	for _, c := range cases {
		toks := tokenize(t, c.src)
		if len(toks) != 2 {
			t.Fatalf("tokenizing %q: got %d tokens, want 2", c.src, len(toks))
		}
		got := toks[0]
		if got.Kind != c.kind || got.NumericRadix != c.radix || got.NumericValue != c.value {
			t.Errorf("tokenizing %q: got kind=%v radix=%v value=%q, want kind=%v radix=%v value=%q",
				c.src, got.Kind, got.NumericRadix, got.NumericValue, c.kind, c.radix, c.value)
		}
	}
}

// Property 5: Unicode-escape idempotence — escaping non-escape
// characters as \uXXXX must not change the token stream's kinds/spans
// (modulo the additional characters each escape occupies, which the
// round-trip property already covers per-token).
func TestUnicodeEscapeIdempotence(t *testing.T) {
	plain := tokenize(t, "class Foo")
	escaped := tokenize(t, "\\u0063lass Foo") // "class" with its leading 'c' \u-escaped
	if len(plain) != len(escaped) {
		t.Fatalf("token counts differ: plain=%d escaped=%d", len(plain), len(escaped))
	}
	for i := range plain {
		if plain[i].Kind != escaped[i].Kind {
			t.Errorf("token %d kind differs: plain=%v escaped=%v", i, plain[i].Kind, escaped[i].Kind)
		}
	}
}

func TestCharLiteralEscapes(t *testing.T) {
	cases := map[string]string{
		`'a'`:  "a",
		`'\n'`: "\n",
		`'\\'`: "\\",
		`'\101'`: "A", // octal 101 = 'A'
	}
	for src, want := range cases {
		toks := tokenize(t, src)
		if len(toks) != 2 || toks[0].Kind != token.CHARLITERAL {
			t.Fatalf("tokenizing %q: got %+v", src, toks)
		}
		if toks[0].StringValue != want {
			t.Errorf("tokenizing %q: decoded = %q, want %q", src, toks[0].StringValue, want)
		}
	}
}

func TestStringLiteralUnclosedReportsError(t *testing.T) {
	errs := &recordingErrors{}
	f := NewScannerFactory(name.New(), errs, DefaultOptions())
	tz := f.NewTokenizer([]byte(`"unterminated`))
	tok := tz.ReadToken()
	if tok.Kind != token.STRINGLITERAL {
		t.Fatalf("kind = %v, want STRINGLITERAL (recovered)", tok.Kind)
	}
	if len(errs.reports) == 0 || errs.reports[0] != "unclosed.str.lit" {
		t.Fatalf("reports = %v, want [unclosed.str.lit, ...]", errs.reports)
	}
}

func TestJavadocCommentCaptured(t *testing.T) {
	f := newFactory()
	tz := f.NewTokenizer([]byte("/** Does a thing. */\nclass Foo {}"))
	tok := tz.ReadToken()
	if tok.Kind != token.CLASS {
		t.Fatalf("first token = %v, want CLASS", tok.Kind)
	}
	c, ok := tz.TakePendingDocComment()
	if !ok {
		t.Fatal("expected a pending Javadoc comment")
	}
	if c.Text != " Does a thing. " {
		t.Fatalf("comment text = %q", c.Text)
	}
	if _, ok := tz.TakePendingDocComment(); ok {
		t.Fatal("TakePendingDocComment should clear the pending comment")
	}
}

func TestPlainBlockCommentNotJavadoc(t *testing.T) {
	f := newFactory()
	tz := f.NewTokenizer([]byte("/* not doc */ class Foo {}"))
	tz.ReadToken()
	if _, ok := tz.TakePendingDocComment(); ok {
		t.Fatal("plain block comment must not be captured as Javadoc")
	}
}

func TestEmptyBlockCommentNotJavadoc(t *testing.T) {
	f := newFactory()
	tz := f.NewTokenizer([]byte("/**/ class Foo {}"))
	tz.ReadToken()
	if _, ok := tz.TakePendingDocComment(); ok {
		t.Fatal("\"/**/\" must not be captured as Javadoc (empty body)")
	}
}

func TestLineMapTranslatesOffsets(t *testing.T) {
	lm := newLineMap([]byte("ab\ncd\nef"))
	cases := []struct {
		offset, line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{6, 3, 1},
	}
	for _, c := range cases {
		if got := lm.Line(c.offset); got != c.line {
			t.Errorf("Line(%d) = %d, want %d", c.offset, got, c.line)
		}
		if got := lm.Column(c.offset); got != c.col {
			t.Errorf("Column(%d) = %d, want %d", c.offset, got, c.col)
		}
	}
}

func TestNonSealedContextualKeyword(t *testing.T) {
	toks := tokenize(t, "non-sealed class Foo")
	if toks[0].Kind != token.NONSEALED || toks[0].Start != 0 || toks[0].End != 10 {
		t.Fatalf("toks[0] = %+v, want NONSEALED(0,10)", toks[0])
	}

	// "non" not followed by "-sealed" must lex as three ordinary tokens.
	toks = tokenize(t, "non - sealed")
	if toks[0].Kind != token.IDENTIFIER {
		t.Fatalf("toks[0].Kind = %v, want IDENTIFIER (\"non\" alone)", toks[0].Kind)
	}

	// "nonstandard" must not be mistaken for "non" + suffix.
	toks = tokenize(t, "nonstandard")
	if toks[0].Kind != token.IDENTIFIER {
		t.Fatalf("toks[0].Kind = %v, want IDENTIFIER (\"nonstandard\")", toks[0].Kind)
	}
}

func TestTextBlockLiteral(t *testing.T) {
	toks := tokenize(t, `"""
	hello
	"""`)
	if toks[0].Kind != token.TEXTBLOCK {
		t.Fatalf("kind = %v, want TEXTBLOCK", toks[0].Kind)
	}
}

func TestStringTemplateLiteral(t *testing.T) {
	toks := tokenize(t, `"count: \{n}"`)
	if toks[0].Kind != token.STRINGTEMPLATE {
		t.Fatalf("kind = %v, want STRINGTEMPLATE", toks[0].Kind)
	}
}

func TestTextBlocksDisabledFallsBackToPlainStrings(t *testing.T) {
	f := NewScannerFactory(name.New(), nil, Options{AllowBinaryLiterals: true, AllowUnderscoreLiterals: true})
	tz := f.NewTokenizer([]byte(`""""""`))
	tok := tz.ReadToken()
	if tok.Kind != token.STRINGLITERAL {
		t.Fatalf("kind = %v, want STRINGLITERAL (text blocks disabled)", tok.Kind)
	}
}

func TestLexerLookaheadAndPrevToken(t *testing.T) {
	f := newFactory()
	tz := f.NewTokenizer([]byte("a b c"))
	lx := NewLexer(tz)

	if got := lx.TokenAt(2).Kind; got != token.IDENTIFIER {
		t.Fatalf("TokenAt(2).Kind = %v, want IDENTIFIER (\"c\")", got)
	}
	lx.NextToken()
	if prev := lx.PrevToken(); prev.Kind != token.IDENTIFIER || prev.Start != 0 || prev.End != 1 {
		t.Fatalf("PrevToken() = %+v, want IDENTIFIER(0,1) (\"a\")", prev)
	}
}
