package lspdoc

import (
	"testing"

	"github.com/dhamidi/javafront/lexer"
)

func TestOffsetAtFindsLineStart(t *testing.T) {
	content := []byte("line0\nline1\nline2")
	if got := offsetAt(content, 1, 2); got != 8 {
		t.Fatalf("offsetAt = %d, want 8", got)
	}
}

func TestDocCommentAtFindsEnclosingJavadoc(t *testing.T) {
	src := []byte("class C {\n/**\n * Does a thing.\n */\nvoid m() {}\n}\n")

	s := New("test", lexer.DefaultOptions())
	// offset of "m" inside "void m()"
	offset := indexOf(src, "m()")
	doc := s.docCommentAt(src, offset)
	if doc == nil {
		t.Fatal("expected a doc comment for the declaration following it")
	}
	if len(doc.FirstSentence) == 0 {
		t.Fatal("expected a non-empty first sentence")
	}
}

func TestDocCommentAtReturnsNilOutsideAnyDeclaration(t *testing.T) {
	src := []byte("class C {}\n")
	s := New("test", lexer.DefaultOptions())
	if doc := s.docCommentAt(src, 0); doc != nil {
		t.Fatalf("expected nil, got %#v", doc)
	}
}

func indexOf(src []byte, needle string) int {
	for i := range src {
		if i+len(needle) <= len(src) && string(src[i:i+len(needle)]) == needle {
			return i
		}
	}
	return -1
}
