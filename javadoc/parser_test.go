package javadoc

import (
	"testing"

	"github.com/dhamidi/javafront/doctree"
	"github.com/dhamidi/javafront/name"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type recordingErrors struct {
	codes []string
}

func (r *recordingErrors) Report(pos int, code string) {
	r.codes = append(r.codes, code)
}

func newTestParser() (*Parser, *recordingErrors) {
	errs := &recordingErrors{}
	return NewParser(name.New(), errs), errs
}

func diffTrees(t *testing.T, got, want interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(name.Name{})); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

// E5: a brief sentence, a continuation, and a @param tag.
func TestParseSplitsFirstSentenceAndParsesParam(t *testing.T) {
	p, _ := newTestParser()
	doc := p.Parse("Brief. More.\n@param x the thing")

	diffTrees(t, doc.FirstSentence, []doctree.DocTree{
		&doctree.TextTree{NodePos: 0, Text: "Brief."},
	})
	diffTrees(t, doc.Body, []doctree.DocTree{
		&doctree.TextTree{NodePos: 6, Text: " More."},
	})
	if len(doc.BlockTags) != 1 {
		t.Fatalf("expected 1 block tag, got %d", len(doc.BlockTags))
	}
	param, ok := doc.BlockTags[0].(*doctree.ParamTree)
	if !ok {
		t.Fatalf("expected *doctree.ParamTree, got %T", doc.BlockTags[0])
	}
	if param.IsTypeParameter {
		t.Fatalf("expected IsTypeParameter = false")
	}
	if param.Name.Name.String() != "x" {
		t.Fatalf("param name = %q, want %q", param.Name.Name.String(), "x")
	}
	diffTrees(t, param.Description, []doctree.DocTree{
		&doctree.TextTree{NodePos: 22, Text: "the thing"},
	})
}

// E6: a {@link} with a qualified member reference and parameter types.
func TestParseLinkTagReferenceSignature(t *testing.T) {
	p, _ := newTestParser()
	doc := p.Parse("{@link java.util.List#add(Object) label}")

	// No sentence break: the whole body is the first sentence.
	if len(doc.FirstSentence) != 1 {
		t.Fatalf("expected 1 first-sentence node, got %d: %#v", len(doc.FirstSentence), doc.FirstSentence)
	}
	link, ok := doc.FirstSentence[0].(*doctree.LinkTree)
	if !ok {
		t.Fatalf("expected *doctree.LinkTree, got %T", doc.FirstSentence[0])
	}
	ref := link.Ref
	if !ref.HasQualifier || ref.Qualifier.(*doctree.IdentifierTree).Name.String() != "java.util.List" {
		t.Fatalf("qualifier = %#v, want java.util.List", ref.Qualifier)
	}
	if !ref.HasMemberName || ref.MemberName != "add" {
		t.Fatalf("memberName = %q, want %q", ref.MemberName, "add")
	}
	if len(ref.ParamTypes) != 1 || ref.ParamTypes[0].(*doctree.IdentifierTree).Name.String() != "Object" {
		t.Fatalf("paramTypes = %#v, want [Object]", ref.ParamTypes)
	}
	diffTrees(t, link.Label, []doctree.DocTree{
		&doctree.TextTree{NodePos: 34, Text: "label"},
	})
}

// E7: an empty {@link} reference recovers as an erroneous node and
// scanning resumes past the tag's closing brace.
func TestParseEmptyLinkRecoversAsErroneous(t *testing.T) {
	p, errs := newTestParser()
	doc := p.Parse("Hello {@link }")

	// No sentence break: the whole body is the first sentence.
	if len(doc.FirstSentence) != 2 {
		t.Fatalf("expected 2 first-sentence nodes, got %d: %#v", len(doc.FirstSentence), doc.FirstSentence)
	}
	text, ok := doc.FirstSentence[0].(*doctree.TextTree)
	if !ok || text.Text != "Hello " {
		t.Fatalf("first node = %#v, want TextTree(\"Hello \")", doc.FirstSentence[0])
	}
	erroneous, ok := doc.FirstSentence[1].(*doctree.ErroneousTree)
	if !ok {
		t.Fatalf("second node = %#v, want *doctree.ErroneousTree", doc.FirstSentence[1])
	}
	if erroneous.Diagnostic != "dc.ref.syntax.error" {
		t.Fatalf("diagnostic = %q, want dc.ref.syntax.error", erroneous.Diagnostic)
	}
	found := false
	for _, c := range errs.codes {
		if c == "dc.ref.syntax.error" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected dc.ref.syntax.error to be reported, got %v", errs.codes)
	}
}

// Property 6 (spec §8): parsing the same text twice is deterministic.
func TestParseIsDeterministic(t *testing.T) {
	text := "Computes the frobnicated {@code value} of x.\n" +
		"@param x the input\n" +
		"@return the result\n" +
		"@throws IllegalArgumentException if x is negative\n" +
		"@see java.util.List#add(Object)\n"

	p1, _ := newTestParser()
	p2, _ := newTestParser()
	diffTrees(t, p1.Parse(text), p2.Parse(text))
}

// Property 7 (spec §8): first-sentence + rest accounts for every
// non-whitespace character of a single-paragraph text body.
func TestFirstSentencePlusRestCoversBody(t *testing.T) {
	p, _ := newTestParser()
	doc := p.Parse("First part. Second part. Third.")

	var all string
	for _, n := range doc.FirstSentence {
		all += n.(*doctree.TextTree).Text
	}
	for _, n := range doc.Body {
		all += n.(*doctree.TextTree).Text
	}
	want := "First part. Second part. Third."
	if all != want {
		t.Fatalf("first+rest = %q, want %q", all, want)
	}
}

// Property 8 (spec §8): a balanced {@code ...} tag round-trips its text
// verbatim, including internal braces.
func TestCodeTagPreservesBalancedBraces(t *testing.T) {
	p, _ := newTestParser()
	doc := p.Parse("{@code if (x) { return 1; }}")

	code, ok := doc.FirstSentence[0].(*doctree.CodeTree)
	if !ok {
		t.Fatalf("expected *doctree.CodeTree, got %T", doc.FirstSentence[0])
	}
	want := "if (x) { return 1; }"
	if code.Text.Text != want {
		t.Fatalf("code text = %q, want %q", code.Text.Text, want)
	}
}

func TestStripLinePrefixesRemovesLeadingAsterisks(t *testing.T) {
	got := stripLinePrefixes(" Brief.\n * More detail.\n * @param x y")
	want := " Brief.\nMore detail.\n@param x y"
	if got != want {
		t.Fatalf("stripLinePrefixes = %q, want %q", got, want)
	}
}
