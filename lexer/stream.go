package lexer

import (
	"sort"

	"github.com/dhamidi/javafront/token"
)

// LineMap translates character offsets into 1-based line/column pairs.
// It is built once per source file from the positions of its line
// terminators (mirroring javac's Log.LineMap, which is computed
// up-front rather than tracked incrementally during scanning).
type LineMap struct {
	lineStarts []int // lineStarts[i] is the offset of line i+1's first character
}

func newLineMap(src []byte) *LineMap {
	lm := &LineMap{lineStarts: []int{0}}
	runes := []rune(string(src))
	for i, ch := range runes {
		if ch == '\n' {
			lm.lineStarts = append(lm.lineStarts, i+1)
		}
	}
	return lm
}

// Line returns the 1-based line number containing offset.
func (lm *LineMap) Line(offset int) int {
	i := sort.Search(len(lm.lineStarts), func(i int) bool { return lm.lineStarts[i] > offset })
	return i
}

// Column returns the 1-based column of offset within its line.
func (lm *LineMap) Column(offset int) int {
	line := lm.Line(offset)
	return offset - lm.lineStarts[line-1] + 1
}

// Lexer is the lookahead-buffered front the parser consumes (spec
// §4.4): a JavaTokenizer produces the raw token stream, and Lexer adds
// bounded lookahead, a remembered previous token, and Split() for the
// ">>"-family disambiguation generics parsing needs.
type Lexer struct {
	tok  *JavaTokenizer
	buf  []token.Token
	pos  int
	prev token.Token
}

// NewLexer wraps tok in a Lexer positioned at its first token.
func NewLexer(tok *JavaTokenizer) *Lexer {
	l := &Lexer{tok: tok}
	l.buf = append(l.buf, tok.ReadToken())
	return l
}

func (l *Lexer) fill(n int) {
	for n >= len(l.buf)-l.pos {
		l.buf = append(l.buf, l.tok.ReadToken())
	}
}

// Token returns the current token.
func (l *Lexer) Token() token.Token { return l.buf[l.pos] }

// TokenAt returns the token lookahead positions ahead of the current
// one, reading from the underlying tokenizer as needed. TokenAt(0) is
// equivalent to Token().
func (l *Lexer) TokenAt(lookahead int) token.Token {
	l.fill(lookahead)
	return l.buf[l.pos+lookahead]
}

// NextToken advances past the current token and returns the new
// current token.
func (l *Lexer) NextToken() token.Token {
	l.prev = l.buf[l.pos]
	l.pos++
	l.fill(0)
	return l.buf[l.pos]
}

// PrevToken returns the token consumed by the most recent NextToken
// call.
func (l *Lexer) PrevToken() token.Token { return l.prev }

// Split peels the leading '>' off the current GTGT/GTGTGT/GTGTEQ/
// GTGTGTEQ token. The current token becomes that leading GT (also
// returned); the remainder becomes the next token in the stream, so
// that a following NextToken() call yields it directly — matching the
// generics parser's "consume one '>', look again" usage. It returns
// the current token unchanged, with ok false, if the current token is
// not one of those kinds.
func (l *Lexer) Split() (token.Token, bool) {
	cur := l.buf[l.pos]
	restKind, ok := splitRest(cur.Kind)
	if !ok {
		return cur, false
	}
	gt := token.NewDefault(token.GT, cur.Start, cur.Start+1)
	rest := token.NewDefault(restKind, cur.Start+1, cur.End)

	tail := append([]token.Token{rest}, l.buf[l.pos+1:]...)
	l.buf = append(l.buf[:l.pos+1], tail...)
	l.buf[l.pos] = gt
	return gt, true
}

func splitRest(k token.Kind) (token.Kind, bool) {
	switch k {
	case token.GTGT:
		return token.GT, true
	case token.GTGTGT:
		return token.GTGT, true
	case token.GTGTEQ:
		return token.GTEQ, true
	case token.GTGTGTEQ:
		return token.GTGTEQ, true
	}
	return token.EOF, false
}

// ErrPos returns the offset of the most recent lexical error reported
// by the underlying tokenizer, or -1.
func (l *Lexer) ErrPos() int { return l.tok.ErrPos() }

// LineMap returns the source file's line index.
func (l *Lexer) LineMap() *LineMap { return l.tok.LineMap() }

// TakePendingDocComment delegates to the underlying tokenizer (see
// JavaTokenizer.TakePendingDocComment).
func (l *Lexer) TakePendingDocComment() (Comment, bool) {
	return l.tok.TakePendingDocComment()
}
