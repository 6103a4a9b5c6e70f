package javadoc

import "testing"

// Grounded on java/javadoc/format.go's own expectations: body, then a
// blank line, then one line per block tag.
func TestFormatRendersBodyThenBlockTags(t *testing.T) {
	p, _ := newTestParser()
	doc := p.Parse("Brief. More.\n@param x the thing")

	got := Format(doc)
	want := "Brief. More.\n\n@param x the thing"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatRendersLinkLabelOrMemberName(t *testing.T) {
	p, _ := newTestParser()
	doc := p.Parse("See {@link java.util.List#add(Object)}.")

	got := Format(doc)
	want := "See add."
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatPlainTextDropsMarkup(t *testing.T) {
	p, _ := newTestParser()
	doc := p.Parse("A {@code x} value.")

	got := FormatPlainText(doc)
	want := "A x value."
	if got != want {
		t.Fatalf("FormatPlainText() = %q, want %q", got, want)
	}
}
