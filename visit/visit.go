// Package visit implements the generic visitor/scanner scaffolding (C8)
// over doctree.DocTree. Per SPEC_FULL.md's REDESIGN FLAGS this replaces
// the teacher's double-dispatch accept() hierarchy with a tagged-sum
// type switch: Visit dispatches a DocTree to the matching Visitor method
// by concrete type, the Go-idiomatic stand-in for accept().
package visit

import "github.com/dhamidi/javafront/doctree"

// Visitor has one visit method per DocTree variant plus a DefaultAction
// fallback for callers who only care about a handful of kinds.
type Visitor[R any, E any] interface {
	VisitText(t *doctree.TextTree, env E) R
	VisitEntity(t *doctree.EntityTree, env E) R
	VisitComment(t *doctree.CommentTree, env E) R
	VisitStartElement(t *doctree.StartElementTree, env E) R
	VisitEndElement(t *doctree.EndElementTree, env E) R
	VisitAttribute(t *doctree.AttributeTree, env E) R
	VisitIdentifier(t *doctree.IdentifierTree, env E) R
	VisitReference(t *doctree.ReferenceTree, env E) R
	VisitDocRoot(t *doctree.DocRootTree, env E) R
	VisitInheritDoc(t *doctree.InheritDocTree, env E) R
	VisitLink(t *doctree.LinkTree, env E) R
	VisitLinkPlain(t *doctree.LinkPlainTree, env E) R
	VisitLiteral(t *doctree.LiteralTree, env E) R
	VisitCode(t *doctree.CodeTree, env E) R
	VisitValue(t *doctree.ValueTree, env E) R
	VisitIndex(t *doctree.IndexTree, env E) R
	VisitParam(t *doctree.ParamTree, env E) R
	VisitReturn(t *doctree.ReturnTree, env E) R
	VisitDeprecated(t *doctree.DeprecatedTree, env E) R
	VisitSince(t *doctree.SinceTree, env E) R
	VisitVersion(t *doctree.VersionTree, env E) R
	VisitAuthor(t *doctree.AuthorTree, env E) R
	VisitHidden(t *doctree.HiddenTree, env E) R
	VisitSerial(t *doctree.SerialTree, env E) R
	VisitSerialData(t *doctree.SerialDataTree, env E) R
	VisitSee(t *doctree.SeeTree, env E) R
	VisitThrows(t *doctree.ThrowsTree, env E) R
	VisitException(t *doctree.ExceptionTree, env E) R
	VisitSerialField(t *doctree.SerialFieldTree, env E) R
	VisitProvides(t *doctree.ProvidesTree, env E) R
	VisitUses(t *doctree.UsesTree, env E) R
	VisitUnknownBlockTag(t *doctree.UnknownBlockTagTree, env E) R
	VisitUnknownInlineTag(t *doctree.UnknownInlineTagTree, env E) R
	VisitErroneous(t *doctree.ErroneousTree, env E) R
	VisitDocComment(t *doctree.DocCommentTree, env E) R
	DefaultAction(t doctree.DocTree, env E) R
}

// Visit dispatches n to the Visitor method matching its concrete type.
// Unrecognised implementations of DocTree (there should be none outside
// this package) fall back to DefaultAction.
func Visit[R any, E any](v Visitor[R, E], n doctree.DocTree, env E) R {
	switch t := n.(type) {
	case *doctree.TextTree:
		return v.VisitText(t, env)
	case *doctree.EntityTree:
		return v.VisitEntity(t, env)
	case *doctree.CommentTree:
		return v.VisitComment(t, env)
	case *doctree.StartElementTree:
		return v.VisitStartElement(t, env)
	case *doctree.EndElementTree:
		return v.VisitEndElement(t, env)
	case *doctree.AttributeTree:
		return v.VisitAttribute(t, env)
	case *doctree.IdentifierTree:
		return v.VisitIdentifier(t, env)
	case *doctree.ReferenceTree:
		return v.VisitReference(t, env)
	case *doctree.DocRootTree:
		return v.VisitDocRoot(t, env)
	case *doctree.InheritDocTree:
		return v.VisitInheritDoc(t, env)
	case *doctree.LinkTree:
		return v.VisitLink(t, env)
	case *doctree.LinkPlainTree:
		return v.VisitLinkPlain(t, env)
	case *doctree.LiteralTree:
		return v.VisitLiteral(t, env)
	case *doctree.CodeTree:
		return v.VisitCode(t, env)
	case *doctree.ValueTree:
		return v.VisitValue(t, env)
	case *doctree.IndexTree:
		return v.VisitIndex(t, env)
	case *doctree.ParamTree:
		return v.VisitParam(t, env)
	case *doctree.ReturnTree:
		return v.VisitReturn(t, env)
	case *doctree.DeprecatedTree:
		return v.VisitDeprecated(t, env)
	case *doctree.SinceTree:
		return v.VisitSince(t, env)
	case *doctree.VersionTree:
		return v.VisitVersion(t, env)
	case *doctree.AuthorTree:
		return v.VisitAuthor(t, env)
	case *doctree.HiddenTree:
		return v.VisitHidden(t, env)
	case *doctree.SerialTree:
		return v.VisitSerial(t, env)
	case *doctree.SerialDataTree:
		return v.VisitSerialData(t, env)
	case *doctree.SeeTree:
		return v.VisitSee(t, env)
	case *doctree.ThrowsTree:
		return v.VisitThrows(t, env)
	case *doctree.ExceptionTree:
		return v.VisitException(t, env)
	case *doctree.SerialFieldTree:
		return v.VisitSerialField(t, env)
	case *doctree.ProvidesTree:
		return v.VisitProvides(t, env)
	case *doctree.UsesTree:
		return v.VisitUses(t, env)
	case *doctree.UnknownBlockTagTree:
		return v.VisitUnknownBlockTag(t, env)
	case *doctree.UnknownInlineTagTree:
		return v.VisitUnknownInlineTag(t, env)
	case *doctree.ErroneousTree:
		return v.VisitErroneous(t, env)
	case *doctree.DocCommentTree:
		return v.VisitDocComment(t, env)
	default:
		return v.DefaultAction(n, env)
	}
}

// VisitList dispatches every element of nodes in order, returning the
// last result (spec §4.7's "visit(iterable, env)" helper). It returns
// the zero value of R for an empty list.
func VisitList[R any, E any](v Visitor[R, E], nodes []doctree.DocTree, env E) R {
	var result R
	for _, n := range nodes {
		result = Visit(v, n, env)
	}
	return result
}

// BaseVisitor implements Visitor by routing every node kind through
// DefaultAction, letting a caller embed it and override only the visit
// methods it cares about. Because Visit above always calls methods on
// the Visitor interface value passed to it (never on BaseVisitor
// itself), overrides in an embedding struct take effect normally.
type BaseVisitor[R any, E any] struct {
	Default func(t doctree.DocTree, env E) R
}

func (b *BaseVisitor[R, E]) DefaultAction(t doctree.DocTree, env E) R {
	if b.Default != nil {
		return b.Default(t, env)
	}
	var zero R
	return zero
}

func (b *BaseVisitor[R, E]) VisitText(t *doctree.TextTree, env E) R { return b.DefaultAction(t, env) }
func (b *BaseVisitor[R, E]) VisitEntity(t *doctree.EntityTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitComment(t *doctree.CommentTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitStartElement(t *doctree.StartElementTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitEndElement(t *doctree.EndElementTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitAttribute(t *doctree.AttributeTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitIdentifier(t *doctree.IdentifierTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitReference(t *doctree.ReferenceTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitDocRoot(t *doctree.DocRootTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitInheritDoc(t *doctree.InheritDocTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitLink(t *doctree.LinkTree, env E) R { return b.DefaultAction(t, env) }
func (b *BaseVisitor[R, E]) VisitLinkPlain(t *doctree.LinkPlainTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitLiteral(t *doctree.LiteralTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitCode(t *doctree.CodeTree, env E) R { return b.DefaultAction(t, env) }
func (b *BaseVisitor[R, E]) VisitValue(t *doctree.ValueTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitIndex(t *doctree.IndexTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitParam(t *doctree.ParamTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitReturn(t *doctree.ReturnTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitDeprecated(t *doctree.DeprecatedTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitSince(t *doctree.SinceTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitVersion(t *doctree.VersionTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitAuthor(t *doctree.AuthorTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitHidden(t *doctree.HiddenTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitSerial(t *doctree.SerialTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitSerialData(t *doctree.SerialDataTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitSee(t *doctree.SeeTree, env E) R { return b.DefaultAction(t, env) }
func (b *BaseVisitor[R, E]) VisitThrows(t *doctree.ThrowsTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitException(t *doctree.ExceptionTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitSerialField(t *doctree.SerialFieldTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitProvides(t *doctree.ProvidesTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitUses(t *doctree.UsesTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitUnknownBlockTag(t *doctree.UnknownBlockTagTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitUnknownInlineTag(t *doctree.UnknownInlineTagTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitErroneous(t *doctree.ErroneousTree, env E) R {
	return b.DefaultAction(t, env)
}
func (b *BaseVisitor[R, E]) VisitDocComment(t *doctree.DocCommentTree, env E) R {
	return b.DefaultAction(t, env)
}

// Scanner recurses into every child list a node carries, combining
// results with Reduce (default: keep the first result, spec §4.7). Self
// must be set to the outermost Visitor value when a caller embeds
// Scanner and overrides individual visit methods — Go's embedding does
// not make promoted methods dispatch back through the override, so
// Scanner calls back through Self instead of through its own (*Scanner)
// receiver.
type Scanner[R any, E any] struct {
	BaseVisitor[R, E]
	Self   Visitor[R, E]
	Reduce func(r1, r2 R) R
}

// NewScanner returns a Scanner whose Self defaults to itself and whose
// Reduce keeps the first result, matching spec §4.7's default.
func NewScanner[R any, E any]() *Scanner[R, E] {
	s := &Scanner[R, E]{Reduce: func(r1, r2 R) R { return r1 }}
	s.Self = s
	return s
}

func (s *Scanner[R, E]) self() Visitor[R, E] {
	if s.Self != nil {
		return s.Self
	}
	return s
}

func (s *Scanner[R, E]) scanAll(nodes []doctree.DocTree, env E) R {
	var result R
	haveResult := false
	for _, n := range nodes {
		r := Visit(s.self(), n, env)
		if !haveResult {
			result, haveResult = r, true
			continue
		}
		result = s.Reduce(result, r)
	}
	return result
}

func (s *Scanner[R, E]) VisitStartElement(t *doctree.StartElementTree, env E) R {
	var result R
	haveResult := false
	for _, a := range t.Attrs {
		r := Visit[R, E](s.self(), a, env)
		if !haveResult {
			result, haveResult = r, true
			continue
		}
		result = s.Reduce(result, r)
	}
	return result
}

func (s *Scanner[R, E]) VisitAttribute(t *doctree.AttributeTree, env E) R { return s.scanAll(t.Value, env) }

func (s *Scanner[R, E]) VisitReference(t *doctree.ReferenceTree, env E) R {
	return s.scanAll(t.ParamTypes, env)
}

func (s *Scanner[R, E]) VisitLink(t *doctree.LinkTree, env E) R      { return s.scanAll(t.Label, env) }
func (s *Scanner[R, E]) VisitLinkPlain(t *doctree.LinkPlainTree, env E) R {
	return s.scanAll(t.Label, env)
}

func (s *Scanner[R, E]) VisitLiteral(t *doctree.LiteralTree, env E) R {
	return Visit[R, E](s.self(), t.Text, env)
}

func (s *Scanner[R, E]) VisitCode(t *doctree.CodeTree, env E) R {
	return Visit[R, E](s.self(), t.Text, env)
}

func (s *Scanner[R, E]) VisitValue(t *doctree.ValueTree, env E) R {
	return Visit[R, E](s.self(), t.Ref, env)
}

func (s *Scanner[R, E]) VisitIndex(t *doctree.IndexTree, env E) R {
	r := Visit[R, E](s.self(), t.Term, env)
	return s.Reduce(r, s.scanAll(t.Description, env))
}

func (s *Scanner[R, E]) VisitParam(t *doctree.ParamTree, env E) R { return s.scanAll(t.Description, env) }
func (s *Scanner[R, E]) VisitReturn(t *doctree.ReturnTree, env E) R {
	return s.scanAll(t.Description, env)
}
func (s *Scanner[R, E]) VisitDeprecated(t *doctree.DeprecatedTree, env E) R {
	return s.scanAll(t.Description, env)
}
func (s *Scanner[R, E]) VisitSince(t *doctree.SinceTree, env E) R {
	return s.scanAll(t.Description, env)
}
func (s *Scanner[R, E]) VisitVersion(t *doctree.VersionTree, env E) R {
	return s.scanAll(t.Description, env)
}
func (s *Scanner[R, E]) VisitAuthor(t *doctree.AuthorTree, env E) R {
	return s.scanAll(t.Description, env)
}
func (s *Scanner[R, E]) VisitHidden(t *doctree.HiddenTree, env E) R {
	return s.scanAll(t.Description, env)
}
func (s *Scanner[R, E]) VisitSerial(t *doctree.SerialTree, env E) R {
	return s.scanAll(t.Description, env)
}
func (s *Scanner[R, E]) VisitSerialData(t *doctree.SerialDataTree, env E) R {
	return s.scanAll(t.Description, env)
}
func (s *Scanner[R, E]) VisitSee(t *doctree.SeeTree, env E) R { return s.scanAll(t.Description, env) }

func (s *Scanner[R, E]) VisitThrows(t *doctree.ThrowsTree, env E) R {
	return s.scanAll(t.Description, env)
}
func (s *Scanner[R, E]) VisitException(t *doctree.ExceptionTree, env E) R {
	return s.scanAll(t.Description, env)
}
func (s *Scanner[R, E]) VisitSerialField(t *doctree.SerialFieldTree, env E) R {
	return s.scanAll(t.Description, env)
}
func (s *Scanner[R, E]) VisitProvides(t *doctree.ProvidesTree, env E) R {
	return s.scanAll(t.Description, env)
}
func (s *Scanner[R, E]) VisitUses(t *doctree.UsesTree, env E) R {
	return s.scanAll(t.Description, env)
}

func (s *Scanner[R, E]) VisitUnknownBlockTag(t *doctree.UnknownBlockTagTree, env E) R {
	return s.scanAll(t.Content, env)
}
func (s *Scanner[R, E]) VisitUnknownInlineTag(t *doctree.UnknownInlineTagTree, env E) R {
	return s.scanAll(t.Content, env)
}

func (s *Scanner[R, E]) VisitDocComment(t *doctree.DocCommentTree, env E) R {
	r := s.scanAll(t.FirstSentence, env)
	r = s.Reduce(r, s.scanAll(t.Body, env))
	return s.Reduce(r, s.scanAll(t.BlockTags, env))
}

var sentenceBreakerTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"pre": true, "p": true,
}

// GetFirstSentence extracts the leading run of nodes up to (but not
// including) the first sentence break (spec §4.6), discarding the rest.
func GetFirstSentence(nodes []doctree.DocTree) []doctree.DocTree {
	first, _ := SplitFirstSentence(nodes)
	return first
}

// SplitFirstSentence splits an already-parsed body into its leading
// sentence and the remainder, per spec §4.6's rule applied to a node
// list rather than raw text: a '.' immediately followed by whitespace
// inside a TextTree, or a sentence-breaking HTML start/end element
// anywhere but at the very first node, ends the first sentence.
// Trailing whitespace on the first sentence's last text node is trimmed.
// Property 7 (spec §8) requires first++rest to reconstruct every
// non-whitespace character of the input; the split point for a TextTree
// is therefore placed so that concatenating the two halves' text
// reproduces the original node's text exactly.
func SplitFirstSentence(nodes []doctree.DocTree) (first, rest []doctree.DocTree) {
	trimLast := func(first []doctree.DocTree) []doctree.DocTree {
		if len(first) > 0 {
			if last, ok := first[len(first)-1].(*doctree.TextTree); ok {
				first[len(first)-1] = &doctree.TextTree{NodePos: last.NodePos, Text: trimTrailingSpace(last.Text)}
			}
		}
		return first
	}
	for i, n := range nodes {
		if i > 0 {
			if se, ok := n.(*doctree.StartElementTree); ok && sentenceBreakerTags[se.Name] {
				return trimLast(first), nodes[i:]
			}
			if ee, ok := n.(*doctree.EndElementTree); ok && sentenceBreakerTags[ee.Name] {
				return trimLast(first), nodes[i:]
			}
		}
		text, ok := n.(*doctree.TextTree)
		if !ok {
			first = append(first, n)
			continue
		}
		if idx := breakIndex(text.Text); idx >= 0 {
			first = append(first, &doctree.TextTree{NodePos: text.NodePos, Text: trimTrailingSpace(text.Text[:idx])})
			remainder := text.Text[idx:]
			rest = nodes[i+1:]
			if remainder != "" {
				rest = append([]doctree.DocTree{&doctree.TextTree{NodePos: text.NodePos + idx, Text: remainder}}, rest...)
			}
			return first, rest
		}
		first = append(first, n)
	}
	return trimLast(first), nil
}

// breakIndex returns the end offset (exclusive of the trailing
// whitespace) of the first ". " (or tab/LF/CR/FF) run in s, or -1.
func breakIndex(s string) int {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '.' && isBreakSpace(s[i+1]) {
			return i + 1
		}
	}
	return -1
}

func isBreakSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func trimTrailingSpace(s string) string {
	end := len(s)
	for end > 0 && isBreakSpace(s[end-1]) {
		end--
	}
	return s[:end]
}
