package services

import (
	"testing"

	"github.com/dhamidi/javafront/doctree"
)

func TestNewDefaultSharesNameTableAcrossCollaborators(t *testing.T) {
	s := NewDefault()

	tok := s.NewTokenizer([]byte("class Foo {}"))
	if tok == nil {
		t.Fatal("NewTokenizer returned nil")
	}
	tok.ReadToken() // class
	if foo := tok.ReadToken(); foo.NamedValue != s.Names.InternString("Foo") {
		t.Fatalf("tokenizer name %q is not from the shared table", foo.NamedValue.String())
	}

	doc := s.ParseDocComment("Brief.\n@param x y")
	if len(doc.FirstSentence) == 0 {
		t.Fatal("expected a non-empty first sentence")
	}
	if len(doc.BlockTags) != 1 {
		t.Fatalf("expected 1 block tag, got %d", len(doc.BlockTags))
	}
	param, ok := doc.BlockTags[0].(*doctree.ParamTree)
	if !ok || param.Name.Name != s.Names.InternString("x") {
		t.Fatalf("doc parser name %#v is not from the shared table", doc.BlockTags[0])
	}
}

func TestLogCollectsDiagnosticsFromBothCollaborators(t *testing.T) {
	s := NewDefault()

	// An empty {@link } reference forces the doc parser to report through
	// the shared Log via its javadoc.ErrorSink adapter.
	s.ParseDocComment("{@link }")
	if !s.Log.Failed() {
		t.Fatal("expected at least one diagnostic from the doc parser")
	}

	// A '#' outside any literal is an illegal character to the lexer,
	// which reports through the same Log.
	s.NewTokenizer([]byte("#")).ReadToken()

	found, foundLex := false, false
	for _, d := range s.Log.Diagnostics {
		if d.Code == "dc.ref.syntax.error" {
			found = true
		}
		if d.Code == "illegal.char" {
			foundLex = true
		}
	}
	if !found {
		t.Fatalf("expected dc.ref.syntax.error in log, got %#v", s.Log.Diagnostics)
	}
	if !foundLex {
		t.Fatalf("expected illegal.char in log, got %#v", s.Log.Diagnostics)
	}
}
