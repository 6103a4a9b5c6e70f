// Package services replaces the original Context — a type-keyed global
// map of lazily-constructed singletons (spec §5, §9 REDESIGN FLAGS) —
// with an explicit Services struct that owns its collaborators by
// value, built once per parse job.
//
// Grounded on lexer.ScannerFactory, which already demonstrates the
// shape spec §5 asks for at the tokenizer layer (one name table, one
// keyword table, one error sink, one option set shared by every
// tokenizer it builds); Services lifts that pattern to cover the whole
// front end — tokenizer construction, doc-comment parsing, and
// diagnostics — so a caller never reaches for a map keyed by type.
package services

import (
	"github.com/dhamidi/javafront/doctree"
	"github.com/dhamidi/javafront/javadoc"
	"github.com/dhamidi/javafront/lexer"
	"github.com/dhamidi/javafront/name"
)

// Diagnostic is one reported error or warning, carrying the stable code
// spec §6/§7 call for rather than a formatted message.
type Diagnostic struct {
	Pos  int
	Code string
	Args []any
}

// Log collects diagnostics reported by the lexer and the doc-comment
// parser during one job. It implements lexer.ErrorSink (variadic args)
// directly; javadoc.ErrorSink (bare code) has a Report method of a
// different shape, so the doc parser is handed the docErrorSink adapter
// below, which records into the same Log.
type Log struct {
	Diagnostics []Diagnostic
}

// NewLog returns an empty Log.
func NewLog() *Log { return &Log{} }

// Report implements lexer.ErrorSink.
func (l *Log) Report(pos int, code string, args ...any) {
	l.Diagnostics = append(l.Diagnostics, Diagnostic{Pos: pos, Code: code, Args: args})
}

// report records a bare-code diagnostic under a distinct method name;
// javadoc.ErrorSink requires Report(pos int, code string) with no
// variadic tail, which Go cannot overload against lexer.ErrorSink's
// Report on the same type. docErrorSink below adapts it.
func (l *Log) report(pos int, code string) {
	l.Diagnostics = append(l.Diagnostics, Diagnostic{Pos: pos, Code: code})
}

// docErrorSink adapts a *Log to javadoc.ErrorSink.
type docErrorSink struct{ log *Log }

func (d docErrorSink) Report(pos int, code string) { d.log.report(pos, code) }

// Failed reports whether any diagnostic was recorded.
func (l *Log) Failed() bool { return len(l.Diagnostics) > 0 }

// Services owns every sub-component a parse job needs: the shared name
// table, lexical options, a diagnostics log, and the two component
// factories (ScannerFactory for C4, javadoc.Parser for C6) built over
// them. One Services value is constructed per job and passed by
// reference to collaborators; nothing here is looked up dynamically by
// type the way the original Context did.
type Services struct {
	Names   *name.Table
	Options lexer.Options
	Log     *Log

	scanners *lexer.ScannerFactory
	docs     *javadoc.Parser
}

// New constructs a Services value for one parse job with a fresh name
// table and Log. opts is used as given (a zero Options enables no
// optional feature); NewDefault supplies lexer.DefaultOptions().
func New(opts lexer.Options) *Services {
	s := &Services{
		Names:   name.New(),
		Options: opts,
		Log:     NewLog(),
	}
	s.scanners = lexer.NewScannerFactory(s.Names, s.Log, s.Options)
	s.docs = javadoc.NewParser(s.Names, docErrorSink{log: s.Log})
	return s
}

// NewDefault constructs a Services value with lexer.DefaultOptions().
func NewDefault() *Services {
	return New(lexer.DefaultOptions())
}

// NewTokenizer returns a tokenizer over src sharing this job's name
// table, keyword table, options, and log.
func (s *Services) NewTokenizer(src []byte) *lexer.JavaTokenizer {
	return s.scanners.NewTokenizer(src)
}

// ParseDocComment parses one Javadoc comment's text (already captured
// by a tokenizer via TakePendingDocComment) through C6/C7, reporting
// diagnostics to this job's shared Log.
func (s *Services) ParseDocComment(commentText string) *doctree.DocCommentTree {
	return s.docs.Parse(commentText)
}
