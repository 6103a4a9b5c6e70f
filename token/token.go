// Package token implements the closed token-kind enumeration and the
// immutable Token record (C3).
package token

import "github.com/dhamidi/javafront/name"

// Tag categorises the payload shape a Kind carries.
type Tag int

const (
	// DEFAULT tokens carry no payload beyond their Kind and Span.
	DEFAULT Tag = iota
	// NAMED tokens carry an interned identifier handle.
	NAMED
	// STRING tokens carry decoded literal text.
	STRING
	// NUMERIC tokens carry a decoded lexeme and a radix.
	NUMERIC
)

// Kind enumerates every token kind the lexer (C4) can produce: the
// end-of-input and error sentinels, identifiers, the Java reserved
// words, literal categories, reserved values, punctuators, and every
// operator Java defines.
type Kind int

const (
	EOF Kind = iota
	ERROR

	IDENTIFIER

	// Reserved words (50; the "_" keyword is UNDERSCORE below).
	ABSTRACT
	ASSERT
	BOOLEAN
	BREAK
	BYTE
	CASE
	CATCH
	CHAR
	CLASS
	CONST
	CONTINUE
	DEFAULT_KW
	DO
	DOUBLE
	ELSE
	ENUM
	EXTENDS
	FINAL
	FINALLY
	FLOAT
	FOR
	GOTO
	IF
	IMPLEMENTS
	IMPORT
	INSTANCEOF
	INT
	INTERFACE
	LONG
	NATIVE
	NEW
	PACKAGE
	PRIVATE
	PROTECTED
	PUBLIC
	RETURN
	SHORT
	STATIC
	STRICTFP
	SUPER
	SWITCH
	SYNCHRONIZED
	THIS
	THROW
	THROWS
	TRANSIENT
	TRY
	VOID
	VOLATILE
	WHILE

	// Literals.
	INTLITERAL
	LONGLITERAL
	FLOATLITERAL
	DOUBLELITERAL
	CHARLITERAL
	STRINGLITERAL

	// Reserved values.
	TRUE
	FALSE
	NULL

	UNDERSCORE

	// Punctuators.
	ARROW
	COLONCOLON
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	SEMI
	COMMA
	DOT
	ELLIPSIS
	AT

	// Operators and compound assignment.
	EQ
	GT
	LT
	BANG
	TILDE
	QUES
	COLON
	EQEQ
	LTEQ
	GTEQ
	BANGEQ
	AMPAMP
	BARBAR
	PLUSPLUS
	SUBSUB
	PLUS
	SUB
	STAR
	SLASH
	AMP
	BAR
	CARET
	PERCENT
	LTLT
	GTGT
	GTGTGT
	PLUSEQ
	SUBEQ
	STAREQ
	SLASHEQ
	AMPEQ
	BAREQ
	CARETEQ
	PERCENTEQ
	LTLTEQ
	GTGTEQ
	GTGTGTEQ

	// Supplemented literal kinds (see SPEC_FULL.md): text blocks and
	// string/text-block templates with embedded `\{...}` expressions.
	TEXTBLOCK
	STRINGTEMPLATE
	TEXTBLOCKTEMPLATE

	// NONSEALED is the "non-sealed" contextual keyword (JLS 9.1.1.4):
	// lexically two identifier-like words joined by a hyphen, recognised
	// as a single token only when not followed by more identifier
	// characters.
	NONSEALED
)

type kindInfo struct {
	name    string
	tag     Tag
	keyword bool
}

var kindInfos = map[Kind]kindInfo{
	EOF:        {"<eof>", DEFAULT, false},
	ERROR:      {"<error>", DEFAULT, false},
	IDENTIFIER: {"<identifier>", NAMED, false},

	ABSTRACT:     {"abstract", DEFAULT, true},
	ASSERT:       {"assert", DEFAULT, true},
	BOOLEAN:      {"boolean", DEFAULT, true},
	BREAK:        {"break", DEFAULT, true},
	BYTE:         {"byte", DEFAULT, true},
	CASE:         {"case", DEFAULT, true},
	CATCH:        {"catch", DEFAULT, true},
	CHAR:         {"char", DEFAULT, true},
	CLASS:        {"class", DEFAULT, true},
	CONST:        {"const", DEFAULT, true},
	CONTINUE:     {"continue", DEFAULT, true},
	DEFAULT_KW:   {"default", DEFAULT, true},
	DO:           {"do", DEFAULT, true},
	DOUBLE:       {"double", DEFAULT, true},
	ELSE:         {"else", DEFAULT, true},
	ENUM:         {"enum", DEFAULT, true},
	EXTENDS:      {"extends", DEFAULT, true},
	FINAL:        {"final", DEFAULT, true},
	FINALLY:      {"finally", DEFAULT, true},
	FLOAT:        {"float", DEFAULT, true},
	FOR:          {"for", DEFAULT, true},
	GOTO:         {"goto", DEFAULT, true},
	IF:           {"if", DEFAULT, true},
	IMPLEMENTS:   {"implements", DEFAULT, true},
	IMPORT:       {"import", DEFAULT, true},
	INSTANCEOF:   {"instanceof", DEFAULT, true},
	INT:          {"int", DEFAULT, true},
	INTERFACE:    {"interface", DEFAULT, true},
	LONG:         {"long", DEFAULT, true},
	NATIVE:       {"native", DEFAULT, true},
	NEW:          {"new", DEFAULT, true},
	PACKAGE:      {"package", DEFAULT, true},
	PRIVATE:      {"private", DEFAULT, true},
	PROTECTED:    {"protected", DEFAULT, true},
	PUBLIC:       {"public", DEFAULT, true},
	RETURN:       {"return", DEFAULT, true},
	SHORT:        {"short", DEFAULT, true},
	STATIC:       {"static", DEFAULT, true},
	STRICTFP:     {"strictfp", DEFAULT, true},
	SUPER:        {"super", DEFAULT, true},
	SWITCH:       {"switch", DEFAULT, true},
	SYNCHRONIZED: {"synchronized", DEFAULT, true},
	THIS:         {"this", DEFAULT, true},
	THROW:        {"throw", DEFAULT, true},
	THROWS:       {"throws", DEFAULT, true},
	TRANSIENT:    {"transient", DEFAULT, true},
	TRY:          {"try", DEFAULT, true},
	VOID:         {"void", DEFAULT, true},
	VOLATILE:     {"volatile", DEFAULT, true},
	WHILE:        {"while", DEFAULT, true},

	INTLITERAL:    {"<int literal>", NUMERIC, false},
	LONGLITERAL:   {"<long literal>", NUMERIC, false},
	FLOATLITERAL:  {"<float literal>", NUMERIC, false},
	DOUBLELITERAL: {"<double literal>", NUMERIC, false},
	CHARLITERAL:   {"<char literal>", STRING, false},
	STRINGLITERAL: {"<string literal>", STRING, false},

	TRUE:       {"true", DEFAULT, true},
	FALSE:      {"false", DEFAULT, true},
	NULL:       {"null", DEFAULT, true},
	UNDERSCORE: {"_", DEFAULT, true},

	ARROW:      {"->", DEFAULT, false},
	COLONCOLON: {"::", DEFAULT, false},
	LPAREN:     {"(", DEFAULT, false},
	RPAREN:     {")", DEFAULT, false},
	LBRACE:     {"{", DEFAULT, false},
	RBRACE:     {"}", DEFAULT, false},
	LBRACKET:   {"[", DEFAULT, false},
	RBRACKET:   {"]", DEFAULT, false},
	SEMI:       {";", DEFAULT, false},
	COMMA:      {",", DEFAULT, false},
	DOT:        {".", DEFAULT, false},
	ELLIPSIS:   {"...", DEFAULT, false},
	AT:         {"@", DEFAULT, false},

	EQ:        {"=", DEFAULT, false},
	GT:        {">", DEFAULT, false},
	LT:        {"<", DEFAULT, false},
	BANG:      {"!", DEFAULT, false},
	TILDE:     {"~", DEFAULT, false},
	QUES:      {"?", DEFAULT, false},
	COLON:     {":", DEFAULT, false},
	EQEQ:      {"==", DEFAULT, false},
	LTEQ:      {"<=", DEFAULT, false},
	GTEQ:      {">=", DEFAULT, false},
	BANGEQ:    {"!=", DEFAULT, false},
	AMPAMP:    {"&&", DEFAULT, false},
	BARBAR:    {"||", DEFAULT, false},
	PLUSPLUS:  {"++", DEFAULT, false},
	SUBSUB:    {"--", DEFAULT, false},
	PLUS:      {"+", DEFAULT, false},
	SUB:       {"-", DEFAULT, false},
	STAR:      {"*", DEFAULT, false},
	SLASH:     {"/", DEFAULT, false},
	AMP:       {"&", DEFAULT, false},
	BAR:       {"|", DEFAULT, false},
	CARET:     {"^", DEFAULT, false},
	PERCENT:   {"%", DEFAULT, false},
	LTLT:      {"<<", DEFAULT, false},
	GTGT:      {">>", DEFAULT, false},
	GTGTGT:    {">>>", DEFAULT, false},
	PLUSEQ:    {"+=", DEFAULT, false},
	SUBEQ:     {"-=", DEFAULT, false},
	STAREQ:    {"*=", DEFAULT, false},
	SLASHEQ:   {"/=", DEFAULT, false},
	AMPEQ:     {"&=", DEFAULT, false},
	BAREQ:     {"|=", DEFAULT, false},
	CARETEQ:   {"^=", DEFAULT, false},
	PERCENTEQ: {"%=", DEFAULT, false},
	LTLTEQ:    {"<<=", DEFAULT, false},
	GTGTEQ:    {">>=", DEFAULT, false},
	GTGTGTEQ:  {">>>=", DEFAULT, false},

	TEXTBLOCK:         {"<text block>", STRING, false},
	STRINGTEMPLATE:    {"<string template>", STRING, false},
	TEXTBLOCKTEMPLATE: {"<text block template>", STRING, false},
	NONSEALED:         {"non-sealed", DEFAULT, false},
}

// Tag returns k's payload category.
func (k Kind) Tag() Tag {
	if info, ok := kindInfos[k]; ok {
		return info.tag
	}
	return DEFAULT
}

// String returns k's canonical spelling, or a placeholder for kinds with
// no fixed spelling (identifiers, literals).
func (k Kind) String() string {
	if info, ok := kindInfos[k]; ok {
		return info.name
	}
	return "<unknown>"
}

// Radix is the base of a NUMERIC token's decoded lexeme.
type Radix int

const (
	Binary      Radix = 2
	Octal       Radix = 8
	Decimal     Radix = 10
	Hexadecimal Radix = 16
)

// Token is an immutable lexical token: a Kind, a half-open span of
// character offsets into the source, and an optional payload whose shape
// is determined by Kind.Tag().
type Token struct {
	Kind  Kind
	Start int
	End   int

	// NamedValue holds the interned handle for NAMED tokens.
	NamedValue name.Name
	// StringValue holds the decoded literal content for STRING tokens.
	StringValue string
	// NumericValue holds the decoded lexeme for NUMERIC tokens.
	NumericValue string
	// NumericRadix holds the radix for NUMERIC tokens.
	NumericRadix Radix
}

// Dummy is the error sentinel at (ERROR, 0, 0), for use when no source
// position applies.
var Dummy = Token{Kind: ERROR, Start: 0, End: 0}

// NewDefault builds a DEFAULT-tag token. It panics if kind is not a
// DEFAULT-tag kind — callers should not construct payload-bearing tokens
// this way.
func NewDefault(kind Kind, start, end int) Token {
	checkKind(kind, DEFAULT)
	return Token{Kind: kind, Start: start, End: end}
}

// NewNamed builds a NAMED-tag token (an identifier or keyword spelled as
// IDENTIFIER before keyword lookup substitutes its real kind).
func NewNamed(kind Kind, start, end int, n name.Name) Token {
	checkKind(kind, NAMED)
	return Token{Kind: kind, Start: start, End: end, NamedValue: n}
}

// NewString builds a STRING-tag token.
func NewString(kind Kind, start, end int, value string) Token {
	checkKind(kind, STRING)
	return Token{Kind: kind, Start: start, End: end, StringValue: value}
}

// NewNumeric builds a NUMERIC-tag token.
func NewNumeric(kind Kind, start, end int, lexeme string, radix Radix) Token {
	checkKind(kind, NUMERIC)
	switch radix {
	case Binary, Octal, Decimal, Hexadecimal:
	default:
		panic("token: invalid radix")
	}
	return Token{Kind: kind, Start: start, End: end, NumericValue: lexeme, NumericRadix: radix}
}

// checkKind enforces that kind's declared Tag matches the payload shape
// a constructor is about to populate (C3's "checkKind()").
func checkKind(kind Kind, want Tag) {
	if kind.Tag() != want {
		panic("token: kind " + kind.String() + " does not carry a " + tagName(want) + " payload")
	}
}

func tagName(t Tag) string {
	switch t {
	case NAMED:
		return "NAMED"
	case STRING:
		return "STRING"
	case NUMERIC:
		return "NUMERIC"
	default:
		return "DEFAULT"
	}
}
