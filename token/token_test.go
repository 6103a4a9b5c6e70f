package token

import (
	"testing"

	"github.com/dhamidi/javafront/name"
)

func TestDummySentinel(t *testing.T) {
	if Dummy.Kind != ERROR || Dummy.Start != 0 || Dummy.End != 0 {
		t.Fatalf("Dummy = %+v, want (ERROR, 0, 0)", Dummy)
	}
}

func TestCheckKindPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic constructing a STRING token for a DEFAULT kind")
		}
	}()
	NewString(SEMI, 0, 1, "oops")
}

func TestKeywordLookupClosure(t *testing.T) {
	tbl := name.New()
	kw := NewKeywords(tbl)

	for kind, info := range kindInfos {
		if !info.keyword {
			continue
		}
		n := tbl.InternString(info.name)
		if got := kw.Lookup(n); got != kind {
			t.Errorf("Lookup(%q) = %v, want %v", info.name, got, kind)
		}
	}

	for _, ident := range []string{"classy", "x", "Foo", "κόσμε", "über"} {
		n := tbl.InternString(ident)
		if got := kw.Lookup(n); got != IDENTIFIER {
			t.Errorf("Lookup(%q) = %v, want IDENTIFIER", ident, got)
		}
	}
}

func TestNumericRadixValidation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid radix")
		}
	}()
	NewNumeric(INTLITERAL, 0, 1, "1", Radix(3))
}
