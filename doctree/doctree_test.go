package doctree

import (
	"testing"

	"github.com/dhamidi/javafront/name"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func newFactory() *Factory {
	return NewFactory(name.New())
}

func TestFactoryAssignsExplicitPosition(t *testing.T) {
	f := newFactory()
	tr := f.NewTextTree(42, "hello")
	if tr.Pos() != 42 {
		t.Fatalf("Pos() = %d, want 42", tr.Pos())
	}
	if tr.Kind() != TEXT {
		t.Fatalf("Kind() = %v, want TEXT", tr.Kind())
	}
}

func TestReferenceTreeParamTypesNilVsEmpty(t *testing.T) {
	f := newFactory()

	anyArity := f.NewReferenceTree(0, "Foo#bar", nil, false, "bar", true, nil)
	if anyArity.ParamTypes != nil {
		t.Fatalf("expected nil ParamTypes for any-arity member")
	}

	noArg := f.NewReferenceTree(0, "Foo#bar()", nil, false, "bar", true, []DocTree{})
	if noArg.ParamTypes == nil || len(noArg.ParamTypes) != 0 {
		t.Fatalf("expected non-nil empty ParamTypes for no-arg member, got %#v", noArg.ParamTypes)
	}
}

func TestDocCommentTreeStructuralEquality(t *testing.T) {
	f := newFactory()
	build := func() *DocCommentTree {
		return f.NewDocCommentTree(0,
			[]DocTree{f.NewTextTree(0, "Brief.")},
			[]DocTree{f.NewTextTree(7, " More.")},
			[]DocTree{f.NewParamTree(14, false, f.NewIdentifierTree(21, "x"), []DocTree{f.NewTextTree(23, "the thing")})},
		)
	}

	a, b := build(), build()
	if diff := cmp.Diff(a, b, cmpopts.IgnoreUnexported(name.Name{})); diff != "" {
		t.Fatalf("two builds of the same tree differ structurally:\n%s", diff)
	}
}

func TestIdentifierTreeInternsThroughFactory(t *testing.T) {
	tbl := name.New()
	f := NewFactory(tbl)
	a := f.NewIdentifierTree(0, "value")
	b := f.NewIdentifierTree(5, "value")
	if a.Name != b.Name {
		t.Fatalf("two identifier trees for the same spelling must intern to the same Name")
	}
}
