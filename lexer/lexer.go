// Package lexer implements the streaming Java tokenizer (C4): it drives
// a unicodereader.Reader to emit the token.Kind stream defined by
// package token, handling whitespace, comments, literals in four
// radices, identifiers, keywords, and every Java operator.
package lexer

import (
	"strings"
	"unicode"

	"github.com/dhamidi/javafront/name"
	"github.com/dhamidi/javafront/token"
	"github.com/dhamidi/javafront/unicodereader"
)

// ErrorSink is the collaborator that accepts lexical diagnostics. It
// never aborts scanning; the tokenizer decides locally how to recover.
type ErrorSink interface {
	Report(pos int, code string, args ...any)
}

// DiscardErrors is an ErrorSink that ignores every report.
type DiscardErrors struct{}

func (DiscardErrors) Report(pos int, code string, args ...any) {}

// Options toggles lexical features that are disabled by default in
// older source levels.
type Options struct {
	AllowBinaryLiterals     bool
	AllowUnderscoreLiterals bool
	// AllowTextBlocks enables `"""..."""` text blocks and `\{...}`
	// embedded-expression string templates, a supplemented feature (see
	// SPEC_FULL.md) layered on top of the in-scope literal grammar.
	AllowTextBlocks bool
}

// DefaultOptions enables every feature current Java source levels
// support.
func DefaultOptions() Options {
	return Options{AllowBinaryLiterals: true, AllowUnderscoreLiterals: true, AllowTextBlocks: true}
}

// Comment is a concrete value type replacing the teacher's reflective
// Comment interface (see SPEC_FULL.md REDESIGN FLAGS): the raw text of
// one comment and the source offset where that text begins.
type Comment struct {
	Text string
	Pos  int
}

// ScannerFactory builds JavaTokenizers sharing one name table, keyword
// table, error sink, and option set — the "per-job singletons" spec §5
// calls for, minus the type-keyed map (see package services).
type ScannerFactory struct {
	Names    *name.Table
	Keywords *token.Keywords
	Errors   ErrorSink
	Options  Options
}

// NewScannerFactory constructs a factory. If errs is nil, DiscardErrors
// is used.
func NewScannerFactory(names *name.Table, errs ErrorSink, opts Options) *ScannerFactory {
	if errs == nil {
		errs = DiscardErrors{}
	}
	return &ScannerFactory{
		Names:    names,
		Keywords: token.NewKeywords(names),
		Errors:   errs,
		Options:  opts,
	}
}

// NewTokenizer returns a JavaTokenizer over src.
func (f *ScannerFactory) NewTokenizer(src []byte) *JavaTokenizer {
	return &JavaTokenizer{
		reader:   unicodereader.New(src),
		names:    f.Names,
		keywords: f.Keywords,
		errors:   f.Errors,
		opts:     f.Options,
		errPos:   -1,
		lineMap:  newLineMap(src),
	}
}

// JavaTokenizer is the stateful, single-pass-per-call scanner described
// in spec §4.4. Its only persistent state across ReadToken calls is the
// reader position, the last lexical-error position, and the most
// recently captured Javadoc comment.
type JavaTokenizer struct {
	reader   *unicodereader.Reader
	names    *name.Table
	keywords *token.Keywords
	errors   ErrorSink
	opts     Options

	errPos int

	lineMap    *LineMap
	pendingDoc *Comment
}

// LineMap returns the tokenizer's line index. NewTokenizer builds it over
// the whole source when the tokenizer is created; it is not built lazily.
func (t *JavaTokenizer) LineMap() *LineMap { return t.lineMap }

// ErrPos returns the offset of the most recent lexical error, or -1.
func (t *JavaTokenizer) ErrPos() int { return t.errPos }

// SetErrPos overrides the error-position cursor.
func (t *JavaTokenizer) SetErrPos(pos int) { t.errPos = pos }

// TakePendingDocComment returns and clears the Javadoc comment most
// recently skipped by ReadToken, if any. A Java parser built on this
// tokenizer calls this immediately after receiving the token that
// follows the comment, associating the doc comment with that token's
// declaration.
func (t *JavaTokenizer) TakePendingDocComment() (Comment, bool) {
	if t.pendingDoc == nil {
		return Comment{}, false
	}
	c := *t.pendingDoc
	t.pendingDoc = nil
	return c, true
}

func (t *JavaTokenizer) report(pos int, code string, args ...any) {
	t.errPos = pos
	t.errors.Report(pos, code, args...)
}

// ReadToken returns the next token. After EOF, it returns EOF tokens
// forever. It never panics on malformed input: lexical errors surface
// as an ERROR token plus a report to the error sink.
func (t *JavaTokenizer) ReadToken() token.Token {
	for {
		r := t.reader
		start := r.BP()
		ch := r.Ch

		switch {
		case ch == unicodereader.EOI && r.AtEOI():
			return token.NewDefault(token.EOF, start, start)

		case ch == ' ' || ch == '\t' || ch == '\f':
			r.ScanChar()
			continue

		case ch == '\n' || ch == '\r':
			r.ScanChar()
			if ch == '\r' && r.Ch == '\n' {
				r.ScanChar()
			}
			continue

		case ch == '/' && r.PeekChar() == '/':
			t.scanLineComment()
			continue

		case ch == '/' && r.PeekChar() == '*':
			t.scanBlockComment()
			continue

		case isIdentifierStart(ch):
			return t.scanIdent(start)

		case ch == '0':
			return t.scanZero(start)

		case ch >= '1' && ch <= '9':
			return t.scanNumber(start, token.Decimal)

		case ch == '.':
			return t.scanDot(start)

		case ch == '\'':
			return t.scanCharLiteral(start)

		case ch == '"':
			if t.opts.AllowTextBlocks && r.PeekChar() == '"' && r.PeekAt(2) == '"' {
				return t.scanTextBlock(start)
			}
			return t.scanStringLiteral(start)

		case isSinglePunct(ch):
			r.ScanChar()
			return token.NewDefault(singlePunctKind(ch), start, r.BP())

		case isOperatorStart(ch):
			return t.scanOperator(start)

		default:
			r.ScanChar()
			t.report(start, "illegal.char")
			return token.NewDefault(token.ERROR, start, r.BP())
		}
	}
}

func isIdentifierStart(ch rune) bool {
	return ch == '_' || ch == '$' || isLetter(ch)
}

func isIdentifierPart(ch rune) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isSinglePunct(ch rune) bool {
	switch ch {
	case '(', ')', '{', '}', '[', ']', ';', ',', '@':
		return true
	}
	return false
}

func singlePunctKind(ch rune) token.Kind {
	switch ch {
	case '(':
		return token.LPAREN
	case ')':
		return token.RPAREN
	case '{':
		return token.LBRACE
	case '}':
		return token.RBRACE
	case '[':
		return token.LBRACKET
	case ']':
		return token.RBRACKET
	case ';':
		return token.SEMI
	case ',':
		return token.COMMA
	case '@':
		return token.AT
	}
	panic("lexer: not a single-char punctuator")
}

func isOperatorStart(ch rune) bool {
	switch ch {
	case '!', '%', '&', '*', '/', '?', '+', '-', ':', '<', '=', '>', '^', '|', '~':
		return true
	}
	return false
}

// --- identifiers and keywords ---

func (t *JavaTokenizer) scanIdent(start int) token.Token {
	r := t.reader
	r.ResetScratch()
	for isIdentifierPart(r.Ch) {
		r.PutChar(r.Ch)
		r.ScanChar()
	}

	if r.Chars() == "non" {
		if tok, ok := t.tryScanNonSealed(start); ok {
			return tok
		}
	}

	n := r.Name(t.names)
	kind := t.keywords.Lookup(n)
	if kind == token.IDENTIFIER {
		return token.NewNamed(token.IDENTIFIER, start, r.BP(), n)
	}
	return token.NewDefault(kind, start, r.BP())
}

// tryScanNonSealed recognises the "non-sealed" contextual keyword: the
// identifier "non" immediately followed by "-sealed" with no further
// identifier characters. r.Ch is the character right after "non".
func (t *JavaTokenizer) tryScanNonSealed(start int) (token.Token, bool) {
	r := t.reader
	const suffix = "-sealed"
	if r.Ch != '-' {
		return token.Token{}, false
	}
	for i, want := range suffix {
		if r.PeekAt(i) != want {
			return token.Token{}, false
		}
	}
	if isIdentifierPart(r.PeekAt(len(suffix))) {
		return token.Token{}, false
	}
	for range suffix {
		r.ScanChar()
	}
	return token.NewDefault(token.NONSEALED, start, r.BP()), true
}

// --- comments ---

func (t *JavaTokenizer) scanLineComment() {
	r := t.reader
	r.ScanCommentChar() // second '/'
	r.ScanCommentChar()
	for r.Ch != '\n' && r.Ch != '\r' && !(r.Ch == unicodereader.EOI && r.AtEOI()) {
		r.ScanCommentChar()
	}
}

// scanBlockComment consumes a "/* ... */" comment. A comment is a
// Javadoc comment when it opens with "/**" and is not the empty
// "/**/" (JLS: the latter is indistinguishable from a plain comment
// with no body). Its raw body text (Unicode escapes are not expanded
// inside comments) is captured for the parser that
// built on this tokenizer to retrieve via TakePendingDocComment.
func (t *JavaTokenizer) scanBlockComment() {
	r := t.reader
	start := r.BP()
	r.ScanCommentChar() // consume '/'; Ch is now '*'
	r.ScanCommentChar() // consume '*'; Ch is now the comment's 3rd character

	isJavadoc := r.Ch == '*' && r.PeekChar() != '/'
	if isJavadoc {
		r.ScanCommentChar() // consume the second '*' of "/**"
	}
	bodyStart := r.BP()

	var body strings.Builder
	for r.Ch != '*' || r.PeekChar() != '/' {
		if r.Ch == unicodereader.EOI && r.AtEOI() {
			t.report(start, "unclosed.comment")
			if isJavadoc {
				t.pendingDoc = &Comment{Text: body.String(), Pos: bodyStart}
			}
			return
		}
		if isJavadoc {
			body.WriteRune(r.Ch)
		}
		r.ScanCommentChar()
	}
	r.ScanCommentChar() // consume '*'
	r.ScanCommentChar() // consume '/'

	if isJavadoc {
		t.pendingDoc = &Comment{Text: body.String(), Pos: bodyStart}
	}
}

// --- numeric literals ---

func (t *JavaTokenizer) scanZero(start int) token.Token {
	r := t.reader
	switch {
	case r.PeekChar() == 'x' || r.PeekChar() == 'X':
		r.ScanChar()
		r.ScanChar()
		return t.scanNumber(start, token.Hexadecimal)
	case t.opts.AllowBinaryLiterals && (r.PeekChar() == 'b' || r.PeekChar() == 'B'):
		r.ScanChar()
		r.ScanChar()
		return t.scanNumber(start, token.Binary)
	case !t.opts.AllowBinaryLiterals && (r.PeekChar() == 'b' || r.PeekChar() == 'B'):
		t.report(start, "unsupported.binary.lit")
		r.ScanChar()
		r.ScanChar()
		return t.scanNumber(start, token.Binary)
	default:
		return t.scanNumber(start, token.Octal)
	}
}

func (t *JavaTokenizer) scanDot(start int) token.Token {
	r := t.reader
	if r.PeekChar() == '.' {
		r.ScanChar()
		if r.PeekChar() == '.' {
			r.ScanChar()
			r.ScanChar()
			return token.NewDefault(token.ELLIPSIS, start, r.BP())
		}
		// ".." with no third dot: one DOT token, rewind is unnecessary since
		// the spec's grammar never admits ".." outside "...".
		return token.NewDefault(token.DOT, start, r.BP())
	}
	if isDigit(r.PeekChar()) {
		r.ScanChar() // consume '.'
		return t.scanFractionAndSuffix(start, token.Decimal, true)
	}
	r.ScanChar()
	return token.NewDefault(token.DOT, start, r.BP())
}

// scanNumber consumes digits in radix, then dispatches to fraction /
// exponent / suffix handling per spec §4.4's numeric sub-protocol.
func (t *JavaTokenizer) scanNumber(start int, radix token.Radix) token.Token {
	r := t.reader
	r.ResetScratch()

	digitScan := func(isDigitFn func(rune) bool) {
		lastWasUnderscore := false
		leading := true
		for {
			ch := r.Ch
			if ch == '_' {
				if leading {
					t.report(r.BP(), "illegal.underscore")
				}
				if !t.opts.AllowUnderscoreLiterals {
					t.report(r.BP(), "unsupported.underscore.lit")
				}
				lastWasUnderscore = true
				r.ScanChar()
				leading = false
				continue
			}
			if !isDigitFn(ch) {
				break
			}
			r.PutChar(ch)
			r.ScanChar()
			lastWasUnderscore = false
			leading = false
		}
		if lastWasUnderscore {
			t.report(r.BP(), "illegal.underscore")
		}
	}

	switch radix {
	case token.Hexadecimal:
		digitScan(isHexDigit)
		if r.Ch == '.' {
			r.PutChar('.')
			r.ScanChar()
			digitScan(isHexDigit)
			return t.hexFloatExponent(start)
		}
		if r.Ch == 'p' || r.Ch == 'P' {
			return t.hexFloatExponent(start)
		}
		lexeme := r.Chars()
		end := r.BP()
		if r.Ch == 'l' || r.Ch == 'L' {
			r.ScanChar()
			return token.NewNumeric(token.LONGLITERAL, start, r.BP(), lexeme, radix)
		}
		return token.NewNumeric(token.INTLITERAL, start, end, lexeme, radix)

	case token.Binary:
		digitScan(func(ch rune) bool { return ch == '0' || ch == '1' })
		lexeme := r.Chars()
		if invalidBinaryDigits(lexeme) {
			t.report(start, "invalid.binary.number")
		}
		end := r.BP()
		if r.Ch == 'l' || r.Ch == 'L' {
			r.ScanChar()
			return token.NewNumeric(token.LONGLITERAL, start, r.BP(), lexeme, radix)
		}
		return token.NewNumeric(token.INTLITERAL, start, end, lexeme, radix)

	case token.Octal:
		// A leading 0 may extend into a decimal/float literal (spec §4.4
		// item 3): octal scanning accepts decimal digits so a later '.',
		// 'e', or suffix can still be recognised.
		digitScan(isDigit)
		if r.Ch == '.' || r.Ch == 'e' || r.Ch == 'E' || r.Ch == 'f' || r.Ch == 'F' || r.Ch == 'd' || r.Ch == 'D' {
			return t.scanFractionAndSuffix(start, token.Decimal, false)
		}
		lexeme := r.Chars()
		if invalidOctalDigits(lexeme) {
			t.report(start, "invalid.hex.number")
		}
		end := r.BP()
		if r.Ch == 'l' || r.Ch == 'L' {
			r.ScanChar()
			return token.NewNumeric(token.LONGLITERAL, start, r.BP(), lexeme, radix)
		}
		return token.NewNumeric(token.INTLITERAL, start, end, lexeme, radix)

	default: // Decimal
		digitScan(isDigit)
		return t.scanFractionAndSuffix(start, token.Decimal, false)
	}
}

// scanFractionAndSuffix handles the decimal '.', 'e'/'E' exponent, and
// 'f'/'F'/'d'/'D'/'l'/'L' suffix grammar. dotAlreadyConsumed is true when
// the caller already consumed the leading '.' of a ".5"-shaped literal.
func (t *JavaTokenizer) scanFractionAndSuffix(start int, radix token.Radix, dotAlreadyConsumed bool) token.Token {
	r := t.reader
	isFloat := dotAlreadyConsumed

	if dotAlreadyConsumed {
		r.ResetScratch()
		r.PutChar('.')
		for isDigit(r.Ch) || r.Ch == '_' {
			if r.Ch != '_' {
				r.PutChar(r.Ch)
			}
			r.ScanChar()
		}
	} else if r.Ch == '.' {
		isFloat = true
		r.PutChar('.')
		r.ScanChar()
		for isDigit(r.Ch) || r.Ch == '_' {
			if r.Ch != '_' {
				r.PutChar(r.Ch)
			}
			r.ScanChar()
		}
	}

	if r.Ch == 'e' || r.Ch == 'E' {
		isFloat = true
		r.PutChar(r.Ch)
		r.ScanChar()
		if r.Ch == '+' || r.Ch == '-' {
			r.PutChar(r.Ch)
			r.ScanChar()
		}
		digitsSeen := false
		for isDigit(r.Ch) || r.Ch == '_' {
			if r.Ch != '_' {
				r.PutChar(r.Ch)
				digitsSeen = true
			}
			r.ScanChar()
		}
		if !digitsSeen {
			t.report(r.BP(), "malformed.fp.lit")
		}
	}

	kind := token.INTLITERAL
	switch r.Ch {
	case 'f', 'F':
		isFloat = true
		kind = token.FLOATLITERAL
		r.ScanChar()
	case 'd', 'D':
		isFloat = true
		kind = token.DOUBLELITERAL
		r.ScanChar()
	case 'l', 'L':
		if isFloat {
			t.report(r.BP(), "malformed.fp.lit")
		}
		kind = token.LONGLITERAL
		r.ScanChar()
	default:
		if isFloat {
			kind = token.DOUBLELITERAL
		}
	}

	return token.NewNumeric(kind, start, r.BP(), r.Chars(), radix)
}

// hexFloatExponent handles the mandatory 'p'/'P' binary exponent of a
// hex float literal (spec §4.4: "a '.' triggers hex fraction; 'p'/'P'
// introduces the mandatory binary exponent").
func (t *JavaTokenizer) hexFloatExponent(start int) token.Token {
	r := t.reader
	if r.Ch != 'p' && r.Ch != 'P' {
		t.report(r.BP(), "malformed.fp.lit")
	} else {
		r.PutChar(r.Ch)
		r.ScanChar()
		if r.Ch == '+' || r.Ch == '-' {
			r.PutChar(r.Ch)
			r.ScanChar()
		}
		digitsSeen := false
		for isDigit(r.Ch) || r.Ch == '_' {
			if r.Ch != '_' {
				r.PutChar(r.Ch)
				digitsSeen = true
			}
			r.ScanChar()
		}
		if !digitsSeen {
			t.report(r.BP(), "malformed.fp.lit")
		}
	}
	kind := token.DOUBLELITERAL
	if r.Ch == 'f' || r.Ch == 'F' {
		kind = token.FLOATLITERAL
		r.PutChar(r.Ch)
		r.ScanChar()
	} else if r.Ch == 'd' || r.Ch == 'D' {
		r.ScanChar()
	}
	return token.NewNumeric(kind, start, r.BP(), r.Chars(), token.Hexadecimal)
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func invalidBinaryDigits(s string) bool {
	return len(s) == 0
}

func invalidOctalDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '7' {
			return true
		}
	}
	return false
}

// --- char and string literals ---

func (t *JavaTokenizer) scanCharLiteral(start int) token.Token {
	r := t.reader
	r.ResetScratch()
	r.ScanChar() // opening quote

	if r.Ch == '\'' {
		t.report(start, "empty.char.lit")
		r.ScanChar()
		return token.NewString(token.CHARLITERAL, start, r.BP(), "")
	}

	t.scanLiteralChar()

	if r.Ch == '\n' || r.Ch == '\r' {
		t.report(start, "illegal.line.end.in.char.lit")
	} else if r.Ch == '\'' {
		r.ScanChar()
	} else {
		t.report(start, "unclosed.char.lit")
	}

	return token.NewString(token.CHARLITERAL, start, r.BP(), r.Chars())
}

func (t *JavaTokenizer) scanStringLiteral(start int) token.Token {
	r := t.reader
	r.ResetScratch()
	r.ScanChar() // opening quote
	hasTemplate := false

	for r.Ch != '"' {
		if r.Ch == '\n' || r.Ch == '\r' {
			t.report(start, "unclosed.str.lit")
			return t.finishStringLiteral(start, hasTemplate)
		}
		if r.Ch == unicodereader.EOI && r.AtEOI() {
			t.report(start, "unclosed.str.lit")
			return t.finishStringLiteral(start, hasTemplate)
		}
		if t.opts.AllowTextBlocks && r.Ch == '\\' && r.PeekChar() == '{' {
			hasTemplate = true
			r.ScanChar() // backslash
			r.ScanChar() // '{'
			t.skipEmbeddedExpression()
			continue
		}
		t.scanLiteralChar()
	}
	r.ScanChar() // closing quote
	return t.finishStringLiteral(start, hasTemplate)
}

func (t *JavaTokenizer) finishStringLiteral(start int, hasTemplate bool) token.Token {
	kind := token.STRINGLITERAL
	if hasTemplate {
		kind = token.STRINGTEMPLATE
	}
	return token.NewString(kind, start, t.reader.BP(), t.reader.Chars())
}

// scanTextBlock consumes a `"""..."""` text block (a supplemented
// feature, gated by Options.AllowTextBlocks; see SPEC_FULL.md). Its
// decoded value is the raw content between the opening and closing
// triple-quote delimiters; incidental-whitespace stripping (JLS 3.10.6)
// is left to a consumer that needs the block's final rendered value.
func (t *JavaTokenizer) scanTextBlock(start int) token.Token {
	r := t.reader
	r.ResetScratch()
	r.ScanChar() // 1st quote
	r.ScanChar() // 2nd quote
	r.ScanChar() // 3rd quote
	hasTemplate := false

	for {
		if r.Ch == unicodereader.EOI && r.AtEOI() {
			t.report(start, "unclosed.str.lit")
			break
		}
		if r.Ch == '"' && r.PeekChar() == '"' && r.PeekAt(2) == '"' {
			r.ScanChar()
			r.ScanChar()
			r.ScanChar()
			break
		}
		if r.Ch == '\\' && r.PeekChar() == '{' {
			hasTemplate = true
			r.ScanChar()
			r.ScanChar()
			t.skipEmbeddedExpression()
			continue
		}
		if r.Ch == '\\' {
			t.scanLiteralChar()
			continue
		}
		r.PutChar(r.Ch)
		r.ScanChar()
	}

	kind := token.TEXTBLOCK
	if hasTemplate {
		kind = token.TEXTBLOCKTEMPLATE
	}
	return token.NewString(kind, start, r.BP(), r.Chars())
}

// skipEmbeddedExpression consumes a `\{ ... }` expression embedded in a
// string or text-block template, tracking brace depth and skipping over
// any nested string/text-block literal so a quote or brace inside one
// is not mistaken for the template's own delimiters.
func (t *JavaTokenizer) skipEmbeddedExpression() {
	r := t.reader
	depth := 1
	for depth > 0 {
		if r.Ch == unicodereader.EOI && r.AtEOI() {
			t.report(r.BP(), "unclosed.str.lit")
			return
		}
		switch {
		case r.Ch == '{':
			depth++
			r.ScanChar()
		case r.Ch == '}':
			depth--
			r.ScanChar()
		case r.Ch == '"' && r.PeekChar() == '"' && r.PeekAt(2) == '"':
			r.ScanChar()
			r.ScanChar()
			r.ScanChar()
			for !(r.Ch == '"' && r.PeekChar() == '"' && r.PeekAt(2) == '"') {
				if r.Ch == unicodereader.EOI && r.AtEOI() {
					return
				}
				r.ScanChar()
			}
			r.ScanChar()
			r.ScanChar()
			r.ScanChar()
		case r.Ch == '"':
			r.ScanChar()
			for r.Ch != '"' && r.Ch != '\n' && !(r.Ch == unicodereader.EOI && r.AtEOI()) {
				if r.Ch == '\\' {
					r.ScanChar()
				}
				r.ScanChar()
			}
			if r.Ch == '"' {
				r.ScanChar()
			}
		default:
			r.ScanChar()
		}
	}
}

// scanLiteralChar scans one source character (possibly an escape) into
// the scratch buffer, per spec §4.4's character-literal escape
// sub-protocol. The caller has already excluded the literal's closing
// quote and end-of-line/EOI.
func (t *JavaTokenizer) scanLiteralChar() {
	r := t.reader
	if r.Ch != '\\' {
		r.PutChar(r.Ch)
		r.ScanChar()
		return
	}

	start := r.BP()
	r.ScanChar() // consume backslash
	switch r.Ch {
	case 'b':
		r.PutChar('\b')
		r.ScanChar()
	case 't':
		r.PutChar('\t')
		r.ScanChar()
	case 'n':
		r.PutChar('\n')
		r.ScanChar()
	case 'f':
		r.PutChar('\f')
		r.ScanChar()
	case 'r':
		r.PutChar('\r')
		r.ScanChar()
	case '\'':
		r.PutChar('\'')
		r.ScanChar()
	case '"':
		r.PutChar('"')
		r.ScanChar()
	case '\\':
		r.PutChar('\\')
		r.ScanChar()
	case '0', '1', '2', '3', '4', '5', '6', '7':
		r.PutChar(t.scanOctalEscape())
	default:
		t.report(start, "illegal.esc.char")
		r.PutChar(r.Ch)
		r.ScanChar()
	}
}

// scanOctalEscape reads one to three octal digits: a leading 0-3 may
// take three digits, 4-7 at most two (the value must stay within one
// byte, JLS §3.10.6).
func (t *JavaTokenizer) scanOctalEscape() rune {
	r := t.reader
	first := r.Ch
	val := int(first - '0')
	r.ScanChar()

	maxExtra := 2
	if first <= '3' {
		maxExtra = 2
	} else {
		maxExtra = 1
	}
	for i := 0; i < maxExtra && r.Ch >= '0' && r.Ch <= '7'; i++ {
		val = val*8 + int(r.Ch-'0')
		r.ScanChar()
	}
	return rune(val)
}

// --- operators ---

// scanOperator greedily extends the lexeme while the accumulated
// characters still form a valid Java operator, mirroring spec §4.4 item
// 10. The concrete dispatch below is switch-based rather than
// intern-and-lookup driven but yields the same kind for
// every valid operator spelling.
func (t *JavaTokenizer) scanOperator(start int) token.Token {
	r := t.reader

	two := func(second rune, kind token.Kind) (token.Token, bool) {
		if r.PeekChar() == second {
			r.ScanChar()
			r.ScanChar()
			return token.NewDefault(kind, start, r.BP()), true
		}
		return token.Token{}, false
	}

	switch r.Ch {
	case ':':
		if tok, ok := two(':', token.COLONCOLON); ok {
			return tok
		}
		r.ScanChar()
		return token.NewDefault(token.COLON, start, r.BP())

	case '~':
		r.ScanChar()
		return token.NewDefault(token.TILDE, start, r.BP())

	case '?':
		r.ScanChar()
		return token.NewDefault(token.QUES, start, r.BP())

	case '=':
		if tok, ok := two('=', token.EQEQ); ok {
			return tok
		}
		r.ScanChar()
		return token.NewDefault(token.EQ, start, r.BP())

	case '!':
		if tok, ok := two('=', token.BANGEQ); ok {
			return tok
		}
		r.ScanChar()
		return token.NewDefault(token.BANG, start, r.BP())

	case '<':
		if r.PeekChar() == '<' {
			r.ScanChar()
			if r.PeekChar() == '=' {
				r.ScanChar()
				r.ScanChar()
				return token.NewDefault(token.LTLTEQ, start, r.BP())
			}
			r.ScanChar()
			return token.NewDefault(token.LTLT, start, r.BP())
		}
		if tok, ok := two('=', token.LTEQ); ok {
			return tok
		}
		r.ScanChar()
		return token.NewDefault(token.LT, start, r.BP())

	case '>':
		// '>' is scanned as the longest compound operator available
		// (>=, >>, >>=, >>>, >>>=); a parser closing a nested generic
		// type (e.g. "List<List<Integer>>") calls Lexer.Split() to peel
		// one '>' off a GTGT/GTGTGT/... token (spec §4.4).
		r.ScanChar()
		if r.Ch == '>' {
			r.ScanChar()
			if r.Ch == '>' {
				r.ScanChar()
				if r.Ch == '=' {
					r.ScanChar()
					return token.NewDefault(token.GTGTGTEQ, start, r.BP())
				}
				return token.NewDefault(token.GTGTGT, start, r.BP())
			}
			if r.Ch == '=' {
				r.ScanChar()
				return token.NewDefault(token.GTGTEQ, start, r.BP())
			}
			return token.NewDefault(token.GTGT, start, r.BP())
		}
		if r.Ch == '=' {
			r.ScanChar()
			return token.NewDefault(token.GTEQ, start, r.BP())
		}
		return token.NewDefault(token.GT, start, r.BP())

	case '&':
		if tok, ok := two('&', token.AMPAMP); ok {
			return tok
		}
		if tok, ok := two('=', token.AMPEQ); ok {
			return tok
		}
		r.ScanChar()
		return token.NewDefault(token.AMP, start, r.BP())

	case '|':
		if tok, ok := two('|', token.BARBAR); ok {
			return tok
		}
		if tok, ok := two('=', token.BAREQ); ok {
			return tok
		}
		r.ScanChar()
		return token.NewDefault(token.BAR, start, r.BP())

	case '^':
		if tok, ok := two('=', token.CARETEQ); ok {
			return tok
		}
		r.ScanChar()
		return token.NewDefault(token.CARET, start, r.BP())

	case '+':
		if tok, ok := two('+', token.PLUSPLUS); ok {
			return tok
		}
		if tok, ok := two('=', token.PLUSEQ); ok {
			return tok
		}
		r.ScanChar()
		return token.NewDefault(token.PLUS, start, r.BP())

	case '-':
		if tok, ok := two('-', token.SUBSUB); ok {
			return tok
		}
		if tok, ok := two('=', token.SUBEQ); ok {
			return tok
		}
		if tok, ok := two('>', token.ARROW); ok {
			return tok
		}
		r.ScanChar()
		return token.NewDefault(token.SUB, start, r.BP())

	case '*':
		if tok, ok := two('=', token.STAREQ); ok {
			return tok
		}
		r.ScanChar()
		return token.NewDefault(token.STAR, start, r.BP())

	case '/':
		if tok, ok := two('=', token.SLASHEQ); ok {
			return tok
		}
		r.ScanChar()
		return token.NewDefault(token.SLASH, start, r.BP())

	case '%':
		if tok, ok := two('=', token.PERCENTEQ); ok {
			return tok
		}
		r.ScanChar()
		return token.NewDefault(token.PERCENT, start, r.BP())
	}

	r.ScanChar()
	t.report(start, "illegal.char")
	return token.NewDefault(token.ERROR, start, r.BP())
}
