package javadoc

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/dhamidi/javafront/doctree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Property 6 (spec §8): parsing is deterministic across a table of
// generated inputs. Grounded on pom/resolver_test.go's bare-testing
// style for the assertions that don't need a library, and on
// grafana-k6's stretchr/testify convention (A5) for the rest — the
// ecosystem default for table-driven assertions the teacher's own
// java/... packages never had occasion to import.
func TestParseDeterministicOverGeneratedInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	sentences := []string{
		"Computes the result.",
		"Returns the value, handling edge cases.",
		"A short summary. A longer continuation follows.",
	}
	tags := []string{
		"@param x the input",
		"@return the result",
		"@throws IllegalStateException if misused",
		"@see java.util.List#add(Object)",
		"@deprecated use something else",
	}

	for i := 0; i < 20; i++ {
		var sb strings.Builder
		sb.WriteString(sentences[rng.Intn(len(sentences))])
		n := rng.Intn(len(tags) + 1)
		for j := 0; j < n; j++ {
			sb.WriteString("\n")
			sb.WriteString(tags[rng.Intn(len(tags))])
		}
		text := sb.String()

		p1, _ := newTestParser()
		p2, _ := newTestParser()
		doc1 := p1.Parse(text)
		doc2 := p2.Parse(text)

		require.Equal(t, len(doc1.BlockTags), len(doc2.BlockTags), "input %q", text)
		assert.Equal(t, doc1.FirstSentence[0].(*doctree.TextTree).Text, doc2.FirstSentence[0].(*doctree.TextTree).Text)
	}
}

// Property 7 (spec §8), generated variant: first-sentence + body
// reconstructs every character of a random run of short sentences.
func TestFirstSentencePlusBodyCoversGeneratedText(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	words := []string{"Computes", "the", "frobnicated", "value", "of", "a", "thing"}

	for i := 0; i < 20; i++ {
		n := 3 + rng.Intn(5)
		var parts []string
		for j := 0; j < n; j++ {
			parts = append(parts, words[rng.Intn(len(words))])
		}
		text := strings.Join(parts, " ") + "."

		p, _ := newTestParser()
		doc := p.Parse(text)

		var all string
		for _, n := range doc.FirstSentence {
			all += n.(*doctree.TextTree).Text
		}
		for _, n := range doc.Body {
			all += n.(*doctree.TextTree).Text
		}
		assert.Equal(t, text, all, "round-trip of %q", text)
	}
}
