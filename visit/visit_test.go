package visit

import (
	"strings"
	"testing"

	"github.com/dhamidi/javafront/doctree"
	"github.com/dhamidi/javafront/name"
)

// textCollector records the text of every visited TextTree, overriding
// only VisitText and leaving the embedded Scanner to recurse through
// every other node kind — exactly the "embed Scanner, override one
// method" usage Scanner.Self exists to support.
type textCollector struct {
	Scanner[int, struct{}]
	texts []string
}

func newTextCollector() *textCollector {
	c := &textCollector{}
	c.Scanner = *NewScanner[int, struct{}]()
	c.Scanner.Self = c
	return c
}

func (c *textCollector) VisitText(t *doctree.TextTree, env struct{}) int {
	c.texts = append(c.texts, t.Text)
	return 1
}

func TestScannerRecursesThroughSelfOverride(t *testing.T) {
	f := doctree.NewFactory(name.New())
	doc := f.NewDocCommentTree(0,
		[]doctree.DocTree{f.NewTextTree(0, "Brief.")},
		[]doctree.DocTree{f.NewTextTree(7, " More.")},
		[]doctree.DocTree{f.NewReturnTree(14, []doctree.DocTree{f.NewTextTree(22, "the result")})},
	)

	c := newTextCollector()
	c.Reduce = func(r1, r2 int) int { return r1 + r2 }
	Visit[int, struct{}](c, doc, struct{}{})

	want := []string{"Brief.", " More.", "the result"}
	if len(c.texts) != len(want) {
		t.Fatalf("visited texts = %v, want %v", c.texts, want)
	}
	for i := range want {
		if c.texts[i] != want[i] {
			t.Fatalf("visited texts = %v, want %v", c.texts, want)
		}
	}
}

func TestVisitListReturnsLastResult(t *testing.T) {
	f := doctree.NewFactory(name.New())
	nodes := []doctree.DocTree{f.NewTextTree(0, "a"), f.NewTextTree(1, "b"), f.NewTextTree(2, "c")}

	v := &BaseVisitor[string, struct{}]{Default: func(t doctree.DocTree, env struct{}) string {
		return t.(*doctree.TextTree).Text
	}}
	got := VisitList[string, struct{}](v, nodes, struct{}{})
	if got != "c" {
		t.Fatalf("VisitList = %q, want %q", got, "c")
	}
}

func TestGetFirstSentenceStopsAtSentenceBreakingElement(t *testing.T) {
	f := doctree.NewFactory(name.New())
	nodes := []doctree.DocTree{
		f.NewTextTree(0, "Intro"),
		f.NewStartElementTree(6, "p", nil, false),
		f.NewTextTree(9, "Next paragraph."),
	}

	first := GetFirstSentence(nodes)
	if len(first) != 1 {
		t.Fatalf("first = %#v, want exactly the intro text", first)
	}
	if first[0].(*doctree.TextTree).Text != "Intro" {
		t.Fatalf("first[0] = %#v", first[0])
	}
}

func TestSplitFirstSentenceReconstructsInput(t *testing.T) {
	f := doctree.NewFactory(name.New())
	nodes := []doctree.DocTree{f.NewTextTree(0, "First. Second.")}

	first, rest := SplitFirstSentence(nodes)

	var all strings.Builder
	for _, n := range first {
		all.WriteString(n.(*doctree.TextTree).Text)
	}
	for _, n := range rest {
		all.WriteString(n.(*doctree.TextTree).Text)
	}
	if all.String() != "First. Second." {
		t.Fatalf("first+rest = %q, want %q", all.String(), "First. Second.")
	}
	if len(first) != 1 || first[0].(*doctree.TextTree).Text != "First." {
		t.Fatalf("first = %#v", first)
	}
}
