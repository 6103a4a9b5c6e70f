// Package javadoc implements the doc-comment parser (C6) and its
// reference sub-parser (C7): turning a single Javadoc comment's text into
// a doctree.DocCommentTree.
//
// Grounded on java/javadoc/parser.go's recursive-descent structure (the
// teacher's own Parser/Node pair), generalized to build doctree's
// explicit-position tagged sum instead of the teacher's reflective Node
// tree, and extended with the structural reference parsing (qualifier /
// member name / parameter types) spec §4.6 asks for but the teacher
// never does — the teacher stores references as raw strings.
package javadoc

import (
	"strings"
	"unicode"

	"github.com/dhamidi/javafront/doctree"
	"github.com/dhamidi/javafront/name"
	"github.com/dhamidi/javafront/visit"
)

// ErrorSink receives the stable diagnostic codes (spec §6 item 5) the
// parser reports while recovering from malformed input. Positions are
// offsets into the text passed to Parse, after line-prefix stripping.
type ErrorSink interface {
	Report(pos int, code string)
}

// DiscardErrors is an ErrorSink that drops every diagnostic.
type DiscardErrors struct{}

func (DiscardErrors) Report(pos int, code string) {}

// Parser parses a single Javadoc comment's body text into a
// doctree.DocCommentTree.
//
// Its input is the comment's interior text the way the lexer's
// Comment.Text captures it: already past the opening "/**", already
// short of the closing "*/", but still carrying each continuation
// line's leading "* " decoration. Parse strips that per-line decoration
// itself before applying spec §4.6's grammar; spec's C6 contract phrases
// the stripping as the caller's job; folding it in here is what lets
// C4's lexer and C6's parser compose without a third stage in between.
type Parser struct {
	errors  ErrorSink
	factory *doctree.Factory
}

// NewParser returns a Parser that interns identifiers via names and
// reports diagnostics to errors (nil discards them).
func NewParser(names *name.Table, errors ErrorSink) *Parser {
	if errors == nil {
		errors = DiscardErrors{}
	}
	return &Parser{errors: errors, factory: doctree.NewFactory(names)}
}

func (p *Parser) report(pos int, code string) {
	p.errors.Report(pos, code)
}

// Parse parses commentText, the interior of a single "/** ... */" comment.
func (p *Parser) Parse(commentText string) *doctree.DocCommentTree {
	stripped := stripLinePrefixes(commentText)
	c := &cursor{input: []rune(stripped), parser: p}

	body := c.parseContent(false)
	body = trimTrailingLineBreak(body)
	blockTags := c.parseBlockTags()

	first, rest := visit.SplitFirstSentence(body)
	return p.factory.NewDocCommentTree(0, first, rest, blockTags)
}

// stripLinePrefixes removes, from every line after the first, the
// leading run of horizontal whitespace followed by an optional '*' (and
// the single space after it). Ported from the teacher's
// skipCommentStart/skipLinePrefix (java/javadoc/parser.go), run once
// over the whole text up front instead of interleaved with scanning —
// simpler now that C6 no longer needs to re-check for the decoration on
// every newline it crosses while scanning HTML tags and inline content.
//
// Node positions downstream are therefore offsets into the
// decoration-stripped text, not the original source file; mapping them
// back to source columns is left to a caller that still has the
// original line boundaries (an open question the spec leaves to the
// implementation, see DESIGN.md).
func stripLinePrefixes(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if i == 0 {
			continue
		}
		j := 0
		for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
			j++
		}
		if j < len(line) && line[j] == '*' {
			j++
			if j < len(line) && line[j] == ' ' {
				j++
			}
		}
		lines[i] = line[j:]
	}
	return strings.Join(lines, "\n")
}

// trimTrailingLineBreak drops a single trailing line terminator from a
// parsed body's last text node, so the newline that merely separates the
// description from the block-tag section isn't reported as part of the
// description.
func trimTrailingLineBreak(nodes []doctree.DocTree) []doctree.DocTree {
	if len(nodes) == 0 {
		return nodes
	}
	last, ok := nodes[len(nodes)-1].(*doctree.TextTree)
	if !ok {
		return nodes
	}
	text := last.Text
	switch {
	case strings.HasSuffix(text, "\r\n"):
		text = text[:len(text)-2]
	case strings.HasSuffix(text, "\n"), strings.HasSuffix(text, "\r"):
		text = text[:len(text)-1]
	default:
		return nodes
	}
	out := append([]doctree.DocTree(nil), nodes[:len(nodes)-1]...)
	if text != "" {
		out = append(out, &doctree.TextTree{NodePos: last.NodePos, Text: text})
	}
	return out
}

// cursor scans a single decoration-stripped comment body. It plays the
// role of the teacher's Parser struct (java/javadoc/parser.go): a plain
// []rune plus an integer cursor, advanced by hand.
type cursor struct {
	input  []rune
	pos    int
	parser *Parser
}

func (c *cursor) peek() rune {
	if c.pos >= len(c.input) {
		return 0
	}
	return c.input[c.pos]
}

func (c *cursor) peekAt(offset int) rune {
	pos := c.pos + offset
	if pos < 0 || pos >= len(c.input) {
		return 0
	}
	return c.input[pos]
}

func (c *cursor) advance(n int) {
	c.pos += n
	if c.pos > len(c.input) {
		c.pos = len(c.input)
	}
}

func (c *cursor) match(s string) bool {
	if c.pos+len(s) > len(c.input) {
		return false
	}
	for i, ch := range s {
		if c.input[c.pos+i] != ch {
			return false
		}
	}
	return true
}

func (c *cursor) skipWhitespace() {
	for c.pos < len(c.input) && isWhitespace(c.peek()) {
		c.advance(1)
	}
}

func (c *cursor) skipHorizontalWhitespace() {
	for c.pos < len(c.input) && (c.peek() == ' ' || c.peek() == '\t') {
		c.advance(1)
	}
}

func (c *cursor) erroneous(start int, code string) *doctree.ErroneousTree {
	c.parser.report(start, code)
	return c.parser.factory.NewErroneousTree(start, string(c.input[start:c.pos]), code)
}

// isAtBlockTag reports whether the cursor sits on a line-leading '@',
// the boundary between body/inline content and the block-tag section.
// Simpler than the teacher's version: since stripLinePrefixes already
// removed per-line "* " decoration up front, there is no leftover
// asterisk to walk past here.
func (c *cursor) isAtBlockTag() bool {
	if c.peek() != '@' {
		return false
	}
	i := c.pos - 1
	for i >= 0 {
		ch := c.input[i]
		if ch == '\n' || ch == '\r' {
			return true
		}
		if ch != ' ' && ch != '\t' {
			return false
		}
		i--
	}
	return true
}

// --- body / inline content (spec §4.6 block content grammar) ---

func (c *cursor) parseContent(inInlineTag bool) []doctree.DocTree {
	var nodes []doctree.DocTree
	var textBuf strings.Builder
	textStart := c.pos
	depth := 0

	flush := func() {
		if textBuf.Len() > 0 {
			nodes = append(nodes, c.parser.factory.NewTextTree(textStart, textBuf.String()))
			textBuf.Reset()
		}
	}
	startRun := func() {
		if textBuf.Len() == 0 {
			textStart = c.pos
		}
	}

	for c.pos < len(c.input) {
		ch := c.peek()

		if !inInlineTag && c.isAtBlockTag() {
			break
		}

		switch ch {
		case '{':
			if c.peekAt(1) == '@' {
				flush()
				if n := c.parseInlineTag(); n != nil {
					nodes = append(nodes, n)
				}
				textStart = c.pos
			} else {
				if inInlineTag {
					depth++
				}
				startRun()
				textBuf.WriteRune(ch)
				c.advance(1)
			}
		case '}':
			if inInlineTag {
				if depth == 0 {
					flush()
					return nodes
				}
				depth--
			}
			startRun()
			textBuf.WriteRune(ch)
			c.advance(1)
		case '<':
			flush()
			if n := c.parseHTML(); n != nil {
				nodes = append(nodes, n)
			}
			textStart = c.pos
		case '&':
			flush()
			if n := c.parseEntity(); n != nil {
				nodes = append(nodes, n)
			}
			textStart = c.pos
		case '>':
			c.parser.report(c.pos, "dc.bad.gt")
			startRun()
			textBuf.WriteRune(ch)
			c.advance(1)
		default:
			startRun()
			textBuf.WriteRune(ch)
			c.advance(1)
		}
	}

	flush()
	return nodes
}

// --- inline tags ---

func (c *cursor) parseInlineTag() doctree.DocTree {
	start := c.pos
	if !c.match("{@") {
		return nil
	}
	c.advance(2)
	tagName := c.readTagName()
	if tagName == "" {
		return c.erroneous(start, "dc.no.tag.name")
	}
	c.skipHorizontalWhitespace()

	var node doctree.DocTree
	switch tagName {
	case "code":
		node = c.parseCodeOrLiteral(start, false)
	case "literal":
		node = c.parseCodeOrLiteral(start, true)
	case "docRoot":
		node = c.parseLeafInline(start, true)
	case "inheritDoc":
		node = c.parseLeafInline(start, false)
	case "index":
		node = c.parseIndexTag(start)
	case "link":
		node = c.parseLinkTag(start, false)
	case "linkplain":
		node = c.parseLinkTag(start, true)
	case "value":
		node = c.parseValueTag(start)
	default:
		node = c.parseUnknownInlineTag(start, tagName)
	}

	if c.peek() == '}' {
		c.advance(1)
	} else {
		c.parser.report(start, "dc.unterminated.inline.tag")
	}
	return node
}

func (c *cursor) parseCodeOrLiteral(start int, literal bool) doctree.DocTree {
	textStart := c.pos
	content := c.readBalancedContent()
	text := c.parser.factory.NewTextTree(textStart, content)
	if literal {
		return c.parser.factory.NewLiteralTree(start, text)
	}
	return c.parser.factory.NewCodeTree(start, text)
}

func (c *cursor) parseLeafInline(start int, isDocRoot bool) doctree.DocTree {
	if c.peek() != '}' {
		return c.erroneous(start, "dc.bad.inline.tag")
	}
	if isDocRoot {
		return c.parser.factory.NewDocRootTree(start)
	}
	return c.parser.factory.NewInheritDocTree(start)
}

func (c *cursor) parseIndexTag(start int) doctree.DocTree {
	termStart := c.pos
	var term doctree.DocTree
	if c.peek() == '"' {
		term = c.parser.factory.NewTextTree(termStart, c.readQuotedString('"'))
	} else {
		term = c.parser.factory.NewTextTree(termStart, c.readWord())
	}
	c.skipHorizontalWhitespace()
	var desc []doctree.DocTree
	if c.peek() != '}' {
		desc = c.parseContent(true)
	}
	return c.parser.factory.NewIndexTree(start, term, desc)
}

func (c *cursor) parseLinkTag(start int, plain bool) doctree.DocTree {
	ref, ok := c.readReferenceSignature(true, '}')
	if !ok {
		return c.erroneous(start, "dc.ref.syntax.error")
	}
	c.skipHorizontalWhitespace()
	var label []doctree.DocTree
	if c.peek() != '}' {
		label = c.parseContent(true)
	}
	if plain {
		return c.parser.factory.NewLinkPlainTree(start, ref, label)
	}
	return c.parser.factory.NewLinkTree(start, ref, label)
}

func (c *cursor) parseValueTag(start int) doctree.DocTree {
	ref, ok := c.readReferenceSignature(true, '}')
	if !ok {
		return c.erroneous(start, "dc.ref.syntax.error")
	}
	return c.parser.factory.NewValueTree(start, ref)
}

func (c *cursor) parseUnknownInlineTag(start int, name string) doctree.DocTree {
	contentStart := c.pos
	content := c.readBalancedContent()
	return c.parser.factory.NewUnknownInlineTagTree(start, name, []doctree.DocTree{c.parser.factory.NewTextTree(contentStart, content)})
}

// --- HTML / entities ---

func (c *cursor) parseHTML() doctree.DocTree {
	start := c.pos
	if !c.match("<") {
		return nil
	}
	if c.match("<!--") {
		return c.parseHTMLComment(start)
	}
	c.advance(1)

	if c.peek() == '/' {
		c.advance(1)
		elemName := c.readHTMLTagName()
		c.skipWhitespaceInTag()
		if c.peek() == '>' {
			c.advance(1)
		} else {
			c.parser.report(c.pos, "dc.malformed.html")
		}
		return c.parser.factory.NewEndElementTree(start, elemName)
	}

	elemName := c.readHTMLTagName()
	if elemName == "" {
		c.parser.report(start, "dc.malformed.html")
		return c.parser.factory.NewTextTree(start, "<")
	}

	attrs := c.parseHTMLAttributes()
	selfClose := false
	c.skipWhitespaceInTag()
	if c.peek() == '/' {
		selfClose = true
		c.advance(1)
	}
	if c.peek() == '>' {
		c.advance(1)
	} else {
		c.parser.report(c.pos, "dc.malformed.html")
	}
	return c.parser.factory.NewStartElementTree(start, elemName, attrs, selfClose)
}

func (c *cursor) parseHTMLComment(start int) doctree.DocTree {
	c.advance(4) // "<!--"
	bodyStart := c.pos
	for c.pos < len(c.input) {
		if c.match("-->") {
			text := string(c.input[bodyStart:c.pos])
			c.advance(3)
			return c.parser.factory.NewCommentTree(start, "<!--"+text+"-->")
		}
		c.advance(1)
	}
	return c.parser.factory.NewCommentTree(start, "<!--"+string(c.input[bodyStart:]))
}

func (c *cursor) parseHTMLAttributes() []*doctree.AttributeTree {
	var attrs []*doctree.AttributeTree
	for {
		c.skipWhitespaceInTag()
		if c.peek() == '>' || c.peek() == '/' || c.pos >= len(c.input) {
			break
		}
		start := c.pos
		attrName := c.readHTMLAttrName()
		if attrName == "" {
			break
		}
		c.skipWhitespaceInTag()

		kind := doctree.EMPTY
		var value []doctree.DocTree
		if c.peek() == '=' {
			c.advance(1)
			c.skipWhitespaceInTag()
			valStart := c.pos
			var text string
			switch c.peek() {
			case '"':
				kind = doctree.DOUBLE
				text = c.readQuotedString('"')
			case '\'':
				kind = doctree.SINGLE
				text = c.readQuotedString('\'')
			default:
				kind = doctree.UNQUOTED
				text = c.readUnquotedAttrValue()
			}
			if text != "" {
				value = []doctree.DocTree{c.parser.factory.NewTextTree(valStart, text)}
			}
		}
		attrs = append(attrs, c.parser.factory.NewAttributeTree(start, attrName, kind, value))
	}
	return attrs
}

func (c *cursor) skipWhitespaceInTag() {
	for c.pos < len(c.input) && isWhitespace(c.peek()) {
		c.advance(1)
	}
}

func (c *cursor) parseEntity() doctree.DocTree {
	start := c.pos
	if c.peek() != '&' {
		return nil
	}
	c.advance(1)
	nameStart := c.pos
	if c.peek() == '#' {
		c.advance(1)
		if c.peek() == 'x' || c.peek() == 'X' {
			c.advance(1)
			for isHexDigit(c.peek()) {
				c.advance(1)
			}
		} else {
			for isDigit(c.peek()) {
				c.advance(1)
			}
		}
	} else {
		for isLetter(c.peek()) {
			c.advance(1)
		}
	}
	entityName := string(c.input[nameStart:c.pos])
	if c.peek() == ';' {
		c.advance(1)
		return c.parser.factory.NewEntityTree(start, entityName)
	}
	c.parser.report(start, "dc.missing.semicolon")
	return c.parser.factory.NewTextTree(start, "&"+entityName)
}

// --- block tags (spec §4.6 tag-parser dispatch table) ---

func (c *cursor) parseBlockTags() []doctree.DocTree {
	var tags []doctree.DocTree
	for c.pos < len(c.input) {
		c.skipWhitespace()
		if c.pos >= len(c.input) {
			break
		}
		if c.peek() != '@' {
			c.advance(1)
			continue
		}
		start := c.pos
		c.advance(1)
		tagName := c.readTagName()
		if tagName == "" {
			tags = append(tags, c.erroneous(start, "dc.no.tag.name"))
			continue
		}
		c.skipHorizontalWhitespace()
		tags = append(tags, c.parseBlockTag(start, tagName))
	}
	return tags
}

func (c *cursor) parseBlockContent() []doctree.DocTree {
	return c.parseContent(false)
}

func (c *cursor) parseBlockTag(start int, tagName string) doctree.DocTree {
	f := c.parser.factory
	switch tagName {
	case "author":
		return f.NewAuthorTree(start, c.parseBlockContent())
	case "deprecated":
		return f.NewDeprecatedTree(start, c.parseBlockContent())
	case "hidden":
		return f.NewHiddenTree(start, c.parseBlockContent())
	case "return":
		return f.NewReturnTree(start, c.parseBlockContent())
	case "serial":
		return f.NewSerialTree(start, c.parseBlockContent())
	case "serialData":
		return f.NewSerialDataTree(start, c.parseBlockContent())
	case "since":
		return f.NewSinceTree(start, c.parseBlockContent())
	case "version":
		return f.NewVersionTree(start, c.parseBlockContent())
	case "param":
		return c.parseParamTag(start)
	case "throws", "exception":
		ref, ok := c.readReferenceSignature(false, 0)
		c.skipHorizontalWhitespace()
		desc := c.parseBlockContent()
		if !ok {
			return f.NewUnknownBlockTagTree(start, tagName, desc)
		}
		if tagName == "throws" {
			return f.NewThrowsTree(start, ref, desc)
		}
		return f.NewExceptionTree(start, ref, desc)
	case "provides":
		ref, ok := c.readReferenceSignature(true, 0)
		c.skipHorizontalWhitespace()
		desc := c.parseBlockContent()
		if !ok {
			return f.NewUnknownBlockTagTree(start, tagName, desc)
		}
		return f.NewProvidesTree(start, ref, desc)
	case "uses":
		ref, ok := c.readReferenceSignature(true, 0)
		c.skipHorizontalWhitespace()
		desc := c.parseBlockContent()
		if !ok {
			return f.NewUnknownBlockTagTree(start, tagName, desc)
		}
		return f.NewUsesTree(start, ref, desc)
	case "see":
		return c.parseSeeTag(start)
	case "serialField":
		return c.parseSerialFieldTag(start)
	default:
		return f.NewUnknownBlockTagTree(start, tagName, c.parseBlockContent())
	}
}

func (c *cursor) parseParamTag(start int) doctree.DocTree {
	isTypeParam := false
	if c.peek() == '<' {
		isTypeParam = true
		c.advance(1)
	}
	identStart := c.pos
	identText := c.readIdentifier()
	if identText == "" {
		return c.erroneous(start, "dc.identifier.expected")
	}
	ident := c.parser.factory.NewIdentifierTree(identStart, identText)
	if isTypeParam {
		if c.peek() == '>' {
			c.advance(1)
		} else {
			c.parser.report(c.pos, "dc.gt.expected")
		}
	}
	c.skipHorizontalWhitespace()
	desc := c.parseBlockContent()
	return c.parser.factory.NewParamTree(start, isTypeParam, ident, desc)
}

func (c *cursor) parseSerialFieldTag(start int) doctree.DocTree {
	identStart := c.pos
	identText := c.readIdentifier()
	if identText == "" {
		return c.erroneous(start, "dc.identifier.expected")
	}
	ident := c.parser.factory.NewIdentifierTree(identStart, identText)
	c.skipHorizontalWhitespace()
	typ, ok := c.readReferenceSignature(false, 0)
	c.skipHorizontalWhitespace()
	desc := c.parseBlockContent()
	if !ok {
		return c.parser.factory.NewUnknownBlockTagTree(start, "serialField", desc)
	}
	return c.parser.factory.NewSerialFieldTree(start, ident, typ, desc)
}

func (c *cursor) parseSeeTag(start int) doctree.DocTree {
	f := c.parser.factory
	switch c.peek() {
	case '"':
		qStart := c.pos
		s := c.readQuotedString('"')
		return f.NewSeeTree(start, []doctree.DocTree{f.NewTextTree(qStart, "\""+s+"\"")})
	case '<':
		return f.NewSeeTree(start, c.parseBlockContent())
	default:
		ref, ok := c.readReferenceSignature(true, 0)
		c.skipHorizontalWhitespace()
		if !ok {
			return f.NewSeeTree(start, c.parseBlockContent())
		}
		var desc []doctree.DocTree
		if c.pos < len(c.input) && !c.isAtBlockTag() {
			desc = c.parseBlockContent()
		}
		return f.NewSeeTree(start, append([]doctree.DocTree{ref}, desc...))
	}
}

// --- C7: reference signature sub-parser ---

// readReferenceSignature captures the raw reference span - stopping at
// the first top-level (paren/angle-balanced) whitespace, or at stopChar
// if one is given (inline tags stop at the unmatched '}' too) - then
// hands it to parseReferenceSignature. Grounded on the teacher's
// readReference (java/javadoc/parser.go), which performs only the raw
// span capture; the structural split that follows has no teacher
// analogue; see DESIGN.md.
func (c *cursor) readReferenceSignature(allowMember bool, stopChar rune) (*doctree.ReferenceTree, bool) {
	start := c.pos
	text, balanced := c.readReferenceSpan(stopChar)
	if !balanced {
		c.parser.report(start, "dc.unterminated.signature")
	}
	return c.parser.parseReferenceSignature(start, text, allowMember)
}

func (c *cursor) readReferenceSpan(stopChar rune) (string, bool) {
	start := c.pos
	depth := 0
	for c.pos < len(c.input) {
		ch := c.peek()
		if depth == 0 {
			if stopChar != 0 && ch == stopChar {
				break
			}
			if isWhitespace(ch) {
				break
			}
		}
		switch ch {
		case '(', '<':
			depth++
		case ')', '>':
			if depth > 0 {
				depth--
			}
		}
		c.advance(1)
	}
	return string(c.input[start:c.pos]), depth == 0
}

// parseReferenceSignature implements spec §4.6's three-step algorithm:
// split on a top-level '#' into qualifier/member, then split a trailing
// "(...)" into a parameter-type list. When no '#' is present, a
// lowercase dotless prefix followed by '(' or standing alone is taken as
// a same-class member name rather than a qualifier - javac resolves
// "@see equals" against the enclosing class's members, not as a type
// named "equals" - an Open Question resolution recorded in DESIGN.md.
func (p *Parser) parseReferenceSignature(pos int, sig string, allowMember bool) (*doctree.ReferenceTree, bool) {
	if strings.TrimSpace(sig) == "" {
		p.report(pos, "dc.ref.syntax.error")
		return nil, false
	}

	runes := []rune(sig)
	hashIdx := topLevelIndex(runes, '#')
	parenIdx := topLevelIndex(runes, '(')

	var qualifierText, memberText string
	hasQualifier, hasMember := false, false

	if hashIdx >= 0 {
		qualifierText = string(runes[:hashIdx])
		hasQualifier = qualifierText != ""
		memberEnd := len(runes)
		if parenIdx >= 0 && parenIdx > hashIdx {
			memberEnd = parenIdx
		}
		memberText = string(runes[hashIdx+1 : memberEnd])
		hasMember = true
	} else {
		prefixEnd := len(runes)
		if parenIdx >= 0 {
			prefixEnd = parenIdx
		}
		prefix := string(runes[:prefixEnd])
		if looksLikeMemberName(prefix) {
			memberText = prefix
			hasMember = true
		} else {
			qualifierText = prefix
			hasQualifier = qualifierText != ""
		}
	}

	if hasMember && !allowMember {
		p.report(pos, "dc.ref.unexpected.input")
	}

	var paramTypes []doctree.DocTree
	if parenIdx >= 0 {
		if len(runes) == 0 || runes[len(runes)-1] != ')' {
			p.report(pos, "dc.ref.bad.parens")
		} else {
			inner := runes[parenIdx+1 : len(runes)-1]
			paramTypes = p.parseParamList(pos+parenIdx+1, string(inner))
		}
	}

	var qualifier doctree.DocTree
	if hasQualifier {
		qualifier = p.parseTypeExpr(pos, qualifierText)
	}

	return p.factory.NewReferenceTree(pos, sig, qualifier, hasQualifier, memberText, hasMember, paramTypes), true
}

func looksLikeMemberName(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return unicode.IsLower(r) && !strings.ContainsRune(s, '.')
}

func topLevelIndex(runes []rune, target rune) int {
	depth := 0
	for i, r := range runes {
		if depth == 0 && r == target {
			return i
		}
		switch r {
		case '(', '<', '[':
			depth++
		case ')', '>', ']':
			if depth > 0 {
				depth--
			}
		}
	}
	return -1
}

func (p *Parser) parseParamList(basePos int, inner string) []doctree.DocTree {
	if strings.TrimSpace(inner) == "" {
		return []doctree.DocTree{}
	}
	parts := splitTopLevelCommas(inner)
	out := make([]doctree.DocTree, 0, len(parts))
	offset := 0
	for i, part := range parts {
		start := basePos + offset
		offset += len([]rune(part)) + 1
		spelling := strings.TrimSpace(part)
		if i == len(parts)-1 && strings.HasSuffix(spelling, "...") {
			spelling = strings.TrimSuffix(spelling, "...") + "[]"
		}
		out = append(out, p.parseTypeExpr(start, spelling))
	}
	return out
}

func splitTopLevelCommas(s string) []string {
	runes := []rune(s)
	var parts []string
	depth := 0
	last := 0
	for i, r := range runes {
		switch r {
		case '(', '<', '[':
			depth++
		case ')', '>', ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, string(runes[last:i]))
				last = i + 1
			}
		}
	}
	parts = append(parts, string(runes[last:]))
	return parts
}

// parseTypeExpr represents a parsed Java type expression (qualifier or
// parameter type) as an IdentifierTree whose interned text is the type's
// canonical spelling - doctree's closed node set (spec §3) has no
// dedicated type-expression kind, and IdentifierTree is the closest
// existing carrier for a named handle to source text; see DESIGN.md.
func (p *Parser) parseTypeExpr(pos int, spelling string) doctree.DocTree {
	spelling = strings.TrimSpace(spelling)
	if spelling == "" {
		p.report(pos, "dc.ref.syntax.error")
		return p.factory.NewErroneousTree(pos, spelling, "dc.ref.syntax.error")
	}
	return p.factory.NewIdentifierTree(pos, spelling)
}

// --- low-level token readers, ported from java/javadoc/parser.go ---

func (c *cursor) readTagName() string {
	start := c.pos
	for c.pos < len(c.input) && isJavaIdentifierPart(c.peek()) {
		c.advance(1)
	}
	return string(c.input[start:c.pos])
}

func (c *cursor) readIdentifier() string {
	start := c.pos
	if c.pos < len(c.input) && isJavaIdentifierStart(c.peek()) {
		c.advance(1)
		for c.pos < len(c.input) && isJavaIdentifierPart(c.peek()) {
			c.advance(1)
		}
	}
	return string(c.input[start:c.pos])
}

func (c *cursor) readWord() string {
	start := c.pos
	for c.pos < len(c.input) && !isWhitespace(c.peek()) && c.peek() != '}' {
		c.advance(1)
	}
	return string(c.input[start:c.pos])
}

func (c *cursor) readQuotedString(quote rune) string {
	start := c.pos
	c.advance(1)
	contentStart := c.pos
	for c.pos < len(c.input) && c.peek() != quote {
		if c.peek() == '\\' && c.peekAt(1) == quote {
			c.advance(2)
		} else {
			c.advance(1)
		}
	}
	result := string(c.input[contentStart:c.pos])
	if c.peek() == quote {
		c.advance(1)
	} else {
		c.parser.report(start, "dc.unterminated.string")
	}
	return result
}

func (c *cursor) readUnquotedAttrValue() string {
	start := c.pos
	for c.pos < len(c.input) {
		ch := c.peek()
		if isWhitespace(ch) || ch == '>' || ch == '}' {
			break
		}
		c.advance(1)
	}
	return string(c.input[start:c.pos])
}

func (c *cursor) readHTMLTagName() string {
	start := c.pos
	for c.pos < len(c.input) {
		ch := c.peek()
		if isLetter(ch) || isDigit(ch) || ch == '-' || ch == '_' || ch == ':' {
			c.advance(1)
		} else {
			break
		}
	}
	return string(c.input[start:c.pos])
}

func (c *cursor) readHTMLAttrName() string {
	return c.readHTMLTagName()
}

// readBalancedContent reads {@code}/{@literal}/unknown-inline-tag body
// text up to an unmatched '}', tracking nested '{'/'}' depth, and trims
// a single leading space (the convention "{@code  x}" means "x", not
// " x").
func (c *cursor) readBalancedContent() string {
	start := c.pos
	depth := 0
	for c.pos < len(c.input) {
		ch := c.peek()
		if ch == '{' {
			depth++
			c.advance(1)
		} else if ch == '}' {
			if depth == 0 {
				break
			}
			depth--
			c.advance(1)
		} else {
			c.advance(1)
		}
	}
	result := string(c.input[start:c.pos])
	if len(result) > 0 && result[0] == ' ' {
		result = result[1:]
	}
	return result
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isJavaIdentifierStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_' || ch == '$'
}

func isJavaIdentifierPart(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '$'
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
