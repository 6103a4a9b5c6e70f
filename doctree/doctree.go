// Package doctree implements the doc-comment tree data model (C5): a
// closed tagged sum over the ~30 node kinds a parsed Javadoc comment can
// produce, plus the factory that constructs them.
//
// Per SPEC_FULL.md's REDESIGN FLAGS this drops the teacher's reflective
// "Trees" bridge and its mutable "current position" factory state: every
// NewXxxTree call below takes its node's position as an explicit
// argument, and DocTree is a plain Go interface satisfied by one struct
// per variant rather than a double-dispatch accept() hierarchy.
package doctree

import "github.com/dhamidi/javafront/name"

// Kind identifies a DocTree node's variant.
type Kind int

const (
	TEXT Kind = iota
	ENTITY
	COMMENT
	START_ELEMENT
	END_ELEMENT
	ATTRIBUTE
	IDENTIFIER
	REFERENCE
	DOC_ROOT
	INHERIT_DOC
	LINK
	LINK_PLAIN
	LITERAL
	CODE
	VALUE
	INDEX
	PARAM
	RETURN
	DEPRECATED
	SINCE
	VERSION
	AUTHOR
	HIDDEN
	SERIAL
	SERIAL_DATA
	SEE
	THROWS
	EXCEPTION
	SERIAL_FIELD
	PROVIDES
	USES
	UNKNOWN_BLOCK_TAG
	UNKNOWN_INLINE_TAG
	ERRONEOUS
	DOC_COMMENT
)

// DocTree is the tagged-sum interface every node variant implements.
type DocTree interface {
	Kind() Kind
	Pos() int
}

// AttributeValueKind classifies how an HTML attribute's value was quoted.
type AttributeValueKind int

const (
	EMPTY AttributeValueKind = iota
	UNQUOTED
	SINGLE
	DOUBLE
)

// --- leaf and text-bearing nodes ---

type TextTree struct {
	NodePos int
	Text    string
}

func (t *TextTree) Kind() Kind { return TEXT }
func (t *TextTree) Pos() int   { return t.NodePos }

type EntityTree struct {
	NodePos int
	Name    string
}

func (t *EntityTree) Kind() Kind { return ENTITY }
func (t *EntityTree) Pos() int   { return t.NodePos }

type CommentTree struct {
	NodePos int
	Text    string
}

func (t *CommentTree) Kind() Kind { return COMMENT }
func (t *CommentTree) Pos() int   { return t.NodePos }

type AttributeTree struct {
	NodePos   int
	Name      string
	ValueKind AttributeValueKind
	Value     []DocTree
}

func (t *AttributeTree) Kind() Kind { return ATTRIBUTE }
func (t *AttributeTree) Pos() int   { return t.NodePos }

type StartElementTree struct {
	NodePos      int
	Name         string
	Attrs        []*AttributeTree
	SelfClosing  bool
}

func (t *StartElementTree) Kind() Kind { return START_ELEMENT }
func (t *StartElementTree) Pos() int   { return t.NodePos }

type EndElementTree struct {
	NodePos int
	Name    string
}

func (t *EndElementTree) Kind() Kind { return END_ELEMENT }
func (t *EndElementTree) Pos() int   { return t.NodePos }

type IdentifierTree struct {
	NodePos int
	Name    name.Name
}

func (t *IdentifierTree) Kind() Kind { return IDENTIFIER }
func (t *IdentifierTree) Pos() int   { return t.NodePos }

// ReferenceTree is a parsed "pkg.Cls#member(T1,T2)" signature (C7).
//
// Qualifier == "" and HasQualifier == false together mean the signature
// begins with '#' or carries no qualifier at all (spec §3 invariant).
// ParamTypes == nil means "field or any-arity method"; a non-nil empty
// slice means "no-arg method".
type ReferenceTree struct {
	NodePos       int
	Signature     string
	Qualifier     DocTree // a type-expression tree, or nil
	HasQualifier  bool
	MemberName    string
	HasMemberName bool
	ParamTypes    []DocTree
}

func (t *ReferenceTree) Kind() Kind { return REFERENCE }
func (t *ReferenceTree) Pos() int   { return t.NodePos }

type DocRootTree struct{ NodePos int }

func (t *DocRootTree) Kind() Kind { return DOC_ROOT }
func (t *DocRootTree) Pos() int   { return t.NodePos }

type InheritDocTree struct{ NodePos int }

func (t *InheritDocTree) Kind() Kind { return INHERIT_DOC }
func (t *InheritDocTree) Pos() int   { return t.NodePos }

type LinkTree struct {
	NodePos int
	Ref     *ReferenceTree
	Label   []DocTree
}

func (t *LinkTree) Kind() Kind { return LINK }
func (t *LinkTree) Pos() int   { return t.NodePos }

type LinkPlainTree struct {
	NodePos int
	Ref     *ReferenceTree
	Label   []DocTree
}

func (t *LinkPlainTree) Kind() Kind { return LINK_PLAIN }
func (t *LinkPlainTree) Pos() int   { return t.NodePos }

type LiteralTree struct {
	NodePos int
	Text    *TextTree
}

func (t *LiteralTree) Kind() Kind { return LITERAL }
func (t *LiteralTree) Pos() int   { return t.NodePos }

type CodeTree struct {
	NodePos int
	Text    *TextTree
}

func (t *CodeTree) Kind() Kind { return CODE }
func (t *CodeTree) Pos() int   { return t.NodePos }

type ValueTree struct {
	NodePos int
	Ref     *ReferenceTree
}

func (t *ValueTree) Kind() Kind { return VALUE }
func (t *ValueTree) Pos() int   { return t.NodePos }

type IndexTree struct {
	NodePos     int
	Term        DocTree
	Description []DocTree
}

func (t *IndexTree) Kind() Kind { return INDEX }
func (t *IndexTree) Pos() int   { return t.NodePos }

type ParamTree struct {
	NodePos        int
	IsTypeParameter bool
	Name           *IdentifierTree
	Description    []DocTree
}

func (t *ParamTree) Kind() Kind { return PARAM }
func (t *ParamTree) Pos() int   { return t.NodePos }

// descriptionTree is embedded by the many block tags that are nothing
// more than "description : [DocTree]" (spec §3).
type descriptionTree struct {
	NodePos     int
	Description []DocTree
}

type ReturnTree struct{ descriptionTree }

func (t *ReturnTree) Kind() Kind { return RETURN }
func (t *ReturnTree) Pos() int   { return t.NodePos }

type DeprecatedTree struct{ descriptionTree }

func (t *DeprecatedTree) Kind() Kind { return DEPRECATED }
func (t *DeprecatedTree) Pos() int   { return t.NodePos }

type SinceTree struct{ descriptionTree }

func (t *SinceTree) Kind() Kind { return SINCE }
func (t *SinceTree) Pos() int   { return t.NodePos }

type VersionTree struct{ descriptionTree }

func (t *VersionTree) Kind() Kind { return VERSION }
func (t *VersionTree) Pos() int   { return t.NodePos }

type AuthorTree struct{ descriptionTree }

func (t *AuthorTree) Kind() Kind { return AUTHOR }
func (t *AuthorTree) Pos() int   { return t.NodePos }

type HiddenTree struct{ descriptionTree }

func (t *HiddenTree) Kind() Kind { return HIDDEN }
func (t *HiddenTree) Pos() int   { return t.NodePos }

type SerialTree struct{ descriptionTree }

func (t *SerialTree) Kind() Kind { return SERIAL }
func (t *SerialTree) Pos() int   { return t.NodePos }

type SerialDataTree struct{ descriptionTree }

func (t *SerialDataTree) Kind() Kind { return SERIAL_DATA }
func (t *SerialDataTree) Pos() int   { return t.NodePos }

type SeeTree struct{ descriptionTree }

func (t *SeeTree) Kind() Kind { return SEE }
func (t *SeeTree) Pos() int   { return t.NodePos }

type ThrowsTree struct {
	NodePos     int
	Ref         *ReferenceTree
	Description []DocTree
}

func (t *ThrowsTree) Kind() Kind { return THROWS }
func (t *ThrowsTree) Pos() int   { return t.NodePos }

type ExceptionTree struct {
	NodePos     int
	Ref         *ReferenceTree
	Description []DocTree
}

func (t *ExceptionTree) Kind() Kind { return EXCEPTION }
func (t *ExceptionTree) Pos() int   { return t.NodePos }

type SerialFieldTree struct {
	NodePos     int
	Name        *IdentifierTree
	Type        *ReferenceTree
	Description []DocTree
}

func (t *SerialFieldTree) Kind() Kind { return SERIAL_FIELD }
func (t *SerialFieldTree) Pos() int   { return t.NodePos }

type ProvidesTree struct {
	NodePos     int
	Ref         *ReferenceTree
	Description []DocTree
}

func (t *ProvidesTree) Kind() Kind { return PROVIDES }
func (t *ProvidesTree) Pos() int   { return t.NodePos }

type UsesTree struct {
	NodePos     int
	Ref         *ReferenceTree
	Description []DocTree
}

func (t *UsesTree) Kind() Kind { return USES }
func (t *UsesTree) Pos() int   { return t.NodePos }

type UnknownBlockTagTree struct {
	NodePos int
	Name    string
	Content []DocTree
}

func (t *UnknownBlockTagTree) Kind() Kind { return UNKNOWN_BLOCK_TAG }
func (t *UnknownBlockTagTree) Pos() int   { return t.NodePos }

type UnknownInlineTagTree struct {
	NodePos int
	Name    string
	Content []DocTree
}

func (t *UnknownInlineTagTree) Kind() Kind { return UNKNOWN_INLINE_TAG }
func (t *UnknownInlineTagTree) Pos() int   { return t.NodePos }

// ErroneousTree covers a span the parser could not make sense of. Text is
// the offending source slice; Diagnostic is a stable code (spec §6 item
// 5), never a formatted message.
type ErroneousTree struct {
	NodePos    int
	Text       string
	Diagnostic string
}

func (t *ErroneousTree) Kind() Kind { return ERRONEOUS }
func (t *ErroneousTree) Pos() int   { return t.NodePos }

// DocCommentTree is the root of every parsed doc comment.
type DocCommentTree struct {
	NodePos       int
	FirstSentence []DocTree
	Body          []DocTree
	BlockTags     []DocTree
}

func (t *DocCommentTree) Kind() Kind { return DOC_COMMENT }
func (t *DocCommentTree) Pos() int   { return t.NodePos }

// Factory constructs DocTree nodes. It holds only the name table (C1,
// needed by NewIdentifierTree); it carries no "current position" state
// (see package doc comment, REDESIGN FLAGS) — every constructor takes
// its node's position explicitly.
type Factory struct {
	Names *name.Table
}

// NewFactory returns a Factory interning identifiers through names.
func NewFactory(names *name.Table) *Factory {
	return &Factory{Names: names}
}

func (f *Factory) NewTextTree(pos int, text string) *TextTree {
	return &TextTree{NodePos: pos, Text: text}
}

func (f *Factory) NewEntityTree(pos int, name string) *EntityTree {
	return &EntityTree{NodePos: pos, Name: name}
}

func (f *Factory) NewCommentTree(pos int, text string) *CommentTree {
	return &CommentTree{NodePos: pos, Text: text}
}

func (f *Factory) NewAttributeTree(pos int, attrName string, kind AttributeValueKind, value []DocTree) *AttributeTree {
	return &AttributeTree{NodePos: pos, Name: attrName, ValueKind: kind, Value: value}
}

func (f *Factory) NewStartElementTree(pos int, elemName string, attrs []*AttributeTree, selfClosing bool) *StartElementTree {
	return &StartElementTree{NodePos: pos, Name: elemName, Attrs: attrs, SelfClosing: selfClosing}
}

func (f *Factory) NewEndElementTree(pos int, elemName string) *EndElementTree {
	return &EndElementTree{NodePos: pos, Name: elemName}
}

// NewIdentifierTree interns text through the factory's name table.
func (f *Factory) NewIdentifierTree(pos int, text string) *IdentifierTree {
	n := f.Names.Intern([]byte(text), 0, len(text))
	return &IdentifierTree{NodePos: pos, Name: n}
}

func (f *Factory) NewReferenceTree(pos int, signature string, qualifier DocTree, hasQualifier bool, memberName string, hasMemberName bool, paramTypes []DocTree) *ReferenceTree {
	return &ReferenceTree{
		NodePos:       pos,
		Signature:     signature,
		Qualifier:     qualifier,
		HasQualifier:  hasQualifier,
		MemberName:    memberName,
		HasMemberName: hasMemberName,
		ParamTypes:    paramTypes,
	}
}

func (f *Factory) NewDocRootTree(pos int) *DocRootTree { return &DocRootTree{NodePos: pos} }

func (f *Factory) NewInheritDocTree(pos int) *InheritDocTree { return &InheritDocTree{NodePos: pos} }

func (f *Factory) NewLinkTree(pos int, ref *ReferenceTree, label []DocTree) *LinkTree {
	return &LinkTree{NodePos: pos, Ref: ref, Label: label}
}

func (f *Factory) NewLinkPlainTree(pos int, ref *ReferenceTree, label []DocTree) *LinkPlainTree {
	return &LinkPlainTree{NodePos: pos, Ref: ref, Label: label}
}

func (f *Factory) NewLiteralTree(pos int, text *TextTree) *LiteralTree {
	return &LiteralTree{NodePos: pos, Text: text}
}

func (f *Factory) NewCodeTree(pos int, text *TextTree) *CodeTree {
	return &CodeTree{NodePos: pos, Text: text}
}

func (f *Factory) NewValueTree(pos int, ref *ReferenceTree) *ValueTree {
	return &ValueTree{NodePos: pos, Ref: ref}
}

func (f *Factory) NewIndexTree(pos int, term DocTree, description []DocTree) *IndexTree {
	return &IndexTree{NodePos: pos, Term: term, Description: description}
}

func (f *Factory) NewParamTree(pos int, isTypeParameter bool, name *IdentifierTree, description []DocTree) *ParamTree {
	return &ParamTree{NodePos: pos, IsTypeParameter: isTypeParameter, Name: name, Description: description}
}

func (f *Factory) NewReturnTree(pos int, description []DocTree) *ReturnTree {
	return &ReturnTree{descriptionTree{NodePos: pos, Description: description}}
}

func (f *Factory) NewDeprecatedTree(pos int, description []DocTree) *DeprecatedTree {
	return &DeprecatedTree{descriptionTree{NodePos: pos, Description: description}}
}

func (f *Factory) NewSinceTree(pos int, description []DocTree) *SinceTree {
	return &SinceTree{descriptionTree{NodePos: pos, Description: description}}
}

func (f *Factory) NewVersionTree(pos int, description []DocTree) *VersionTree {
	return &VersionTree{descriptionTree{NodePos: pos, Description: description}}
}

func (f *Factory) NewAuthorTree(pos int, description []DocTree) *AuthorTree {
	return &AuthorTree{descriptionTree{NodePos: pos, Description: description}}
}

func (f *Factory) NewHiddenTree(pos int, description []DocTree) *HiddenTree {
	return &HiddenTree{descriptionTree{NodePos: pos, Description: description}}
}

func (f *Factory) NewSerialTree(pos int, description []DocTree) *SerialTree {
	return &SerialTree{descriptionTree{NodePos: pos, Description: description}}
}

func (f *Factory) NewSerialDataTree(pos int, description []DocTree) *SerialDataTree {
	return &SerialDataTree{descriptionTree{NodePos: pos, Description: description}}
}

func (f *Factory) NewSeeTree(pos int, description []DocTree) *SeeTree {
	return &SeeTree{descriptionTree{NodePos: pos, Description: description}}
}

func (f *Factory) NewThrowsTree(pos int, ref *ReferenceTree, description []DocTree) *ThrowsTree {
	return &ThrowsTree{NodePos: pos, Ref: ref, Description: description}
}

func (f *Factory) NewExceptionTree(pos int, ref *ReferenceTree, description []DocTree) *ExceptionTree {
	return &ExceptionTree{NodePos: pos, Ref: ref, Description: description}
}

func (f *Factory) NewSerialFieldTree(pos int, name *IdentifierTree, typ *ReferenceTree, description []DocTree) *SerialFieldTree {
	return &SerialFieldTree{NodePos: pos, Name: name, Type: typ, Description: description}
}

func (f *Factory) NewProvidesTree(pos int, ref *ReferenceTree, description []DocTree) *ProvidesTree {
	return &ProvidesTree{NodePos: pos, Ref: ref, Description: description}
}

func (f *Factory) NewUsesTree(pos int, ref *ReferenceTree, description []DocTree) *UsesTree {
	return &UsesTree{NodePos: pos, Ref: ref, Description: description}
}

func (f *Factory) NewUnknownBlockTagTree(pos int, name string, content []DocTree) *UnknownBlockTagTree {
	return &UnknownBlockTagTree{NodePos: pos, Name: name, Content: content}
}

func (f *Factory) NewUnknownInlineTagTree(pos int, name string, content []DocTree) *UnknownInlineTagTree {
	return &UnknownInlineTagTree{NodePos: pos, Name: name, Content: content}
}

func (f *Factory) NewErroneousTree(pos int, text, diagnostic string) *ErroneousTree {
	return &ErroneousTree{NodePos: pos, Text: text, Diagnostic: diagnostic}
}

func (f *Factory) NewDocCommentTree(pos int, firstSentence, body, blockTags []DocTree) *DocCommentTree {
	return &DocCommentTree{NodePos: pos, FirstSentence: firstSentence, Body: body, BlockTags: blockTags}
}
