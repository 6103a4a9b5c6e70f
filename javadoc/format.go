package javadoc

import (
	"strings"

	"github.com/dhamidi/javafront/doctree"
)

// Format renders a parsed DocCommentTree as Markdown-ish text, the way
// java/javadoc/format.go's Format renders a DocComment: body first, a
// blank line, then one line per block tag. Grounded on that function;
// generalized from the teacher's reflective Node switch to a type
// switch over doctree's tagged sum, and from string references to
// *doctree.ReferenceTree.
func Format(doc *doctree.DocCommentTree) string {
	if doc == nil {
		return ""
	}

	var sb strings.Builder

	body := formatNodes(append(append([]doctree.DocTree{}, doc.FirstSentence...), doc.Body...))
	body = normalizeWhitespace(body)
	sb.WriteString(body)

	if len(doc.BlockTags) > 0 && sb.Len() > 0 {
		sb.WriteString("\n")
	}

	for _, tag := range doc.BlockTags {
		s := formatBlockTag(tag)
		if s != "" {
			sb.WriteString("\n")
			sb.WriteString(s)
		}
	}

	return strings.TrimSpace(sb.String())
}

// FormatPlainText renders only the body, with no Markdown decoration —
// the hover-preview variant java/javadoc/format.go calls FormatPlainText.
func FormatPlainText(doc *doctree.DocCommentTree) string {
	if doc == nil {
		return ""
	}
	body := formatNodesPlain(append(append([]doctree.DocTree{}, doc.FirstSentence...), doc.Body...))
	return strings.TrimSpace(normalizeWhitespace(body))
}

func formatNodes(nodes []doctree.DocTree) string {
	var sb strings.Builder
	for i, node := range nodes {
		if start, ok := node.(*doctree.StartElementTree); ok && strings.ToLower(start.Name) == "pre" {
			if hasMultilineCodeNext(nodes, i) {
				continue
			}
		}
		if end, ok := node.(*doctree.EndElementTree); ok && strings.ToLower(end.Name) == "pre" {
			if hasMultilineCodeBefore(nodes, i) {
				continue
			}
		}
		sb.WriteString(formatNode(node))
	}
	return sb.String()
}

func hasMultilineCodeNext(nodes []doctree.DocTree, idx int) bool {
	for i := idx + 1; i < len(nodes); i++ {
		switch n := nodes[i].(type) {
		case *doctree.TextTree:
			if strings.TrimSpace(n.Text) == "" {
				continue
			}
			return false
		case *doctree.CodeTree:
			return strings.Contains(n.Text.Text, "\n")
		default:
			return false
		}
	}
	return false
}

func hasMultilineCodeBefore(nodes []doctree.DocTree, idx int) bool {
	for i := idx - 1; i >= 0; i-- {
		switch n := nodes[i].(type) {
		case *doctree.TextTree:
			if strings.TrimSpace(n.Text) == "" {
				continue
			}
			return false
		case *doctree.CodeTree:
			return strings.Contains(n.Text.Text, "\n")
		default:
			return false
		}
	}
	return false
}

func formatNodesPlain(nodes []doctree.DocTree) string {
	var sb strings.Builder
	for _, node := range nodes {
		sb.WriteString(formatNodePlain(node))
	}
	return sb.String()
}

func formatNode(node doctree.DocTree) string {
	switch n := node.(type) {
	case *doctree.TextTree:
		return n.Text
	case *doctree.CodeTree:
		content := strings.TrimSpace(n.Text.Text)
		if strings.Contains(content, "\n") {
			return "\n```\n" + content + "\n```\n"
		}
		return "`" + content + "`"
	case *doctree.LiteralTree:
		return n.Text.Text
	case *doctree.LinkTree:
		if len(n.Label) > 0 {
			return formatNodes(n.Label)
		}
		return formatReference(n.Ref)
	case *doctree.LinkPlainTree:
		if len(n.Label) > 0 {
			return formatNodes(n.Label)
		}
		return formatReference(n.Ref)
	case *doctree.ValueTree:
		return formatReference(n.Ref)
	case *doctree.DocRootTree:
		return ""
	case *doctree.InheritDocTree:
		return "[inherited documentation]"
	case *doctree.IndexTree:
		return formatNode(n.Term)
	case *doctree.UnknownInlineTagTree:
		return formatNodes(n.Content)
	case *doctree.StartElementTree:
		return formatStartElement(n)
	case *doctree.EndElementTree:
		return formatEndElement(n)
	case *doctree.EntityTree:
		return decodeEntity(n.Name)
	case *doctree.ErroneousTree:
		return n.Text
	case *doctree.IdentifierTree:
		return n.Name.String()
	default:
		return ""
	}
}

func formatNodePlain(node doctree.DocTree) string {
	switch n := node.(type) {
	case *doctree.TextTree:
		return n.Text
	case *doctree.CodeTree:
		return n.Text.Text
	case *doctree.LiteralTree:
		return n.Text.Text
	case *doctree.LinkTree:
		if len(n.Label) > 0 {
			return formatNodesPlain(n.Label)
		}
		return formatReference(n.Ref)
	case *doctree.LinkPlainTree:
		if len(n.Label) > 0 {
			return formatNodesPlain(n.Label)
		}
		return formatReference(n.Ref)
	case *doctree.ValueTree:
		return formatReference(n.Ref)
	case *doctree.IndexTree:
		return formatNodePlain(n.Term)
	case *doctree.UnknownInlineTagTree:
		return formatNodesPlain(n.Content)
	case *doctree.EntityTree:
		return decodeEntity(n.Name)
	case *doctree.IdentifierTree:
		return n.Name.String()
	default:
		return ""
	}
}

// formatReference renders a parsed reference as its bare member or
// simple type name, the display form java/javadoc/format.go derives by
// string-splitting on "#"/".". Here the split already happened in C7,
// so this just reads the struct.
func formatReference(ref *doctree.ReferenceTree) string {
	if ref == nil {
		return ""
	}
	if ref.HasMemberName {
		return ref.MemberName
	}
	if ref.HasQualifier {
		if id, ok := ref.Qualifier.(*doctree.IdentifierTree); ok {
			name := id.Name.String()
			if idx := strings.LastIndex(name, "."); idx >= 0 {
				return name[idx+1:]
			}
			return name
		}
	}
	return ref.Signature
}

func formatStartElement(e *doctree.StartElementTree) string {
	switch strings.ToLower(e.Name) {
	case "p":
		return "\n\n"
	case "br":
		return "\n"
	case "pre":
		return "\n```\n"
	case "code":
		return "`"
	case "ul", "ol":
		return "\n"
	case "li":
		return "\n- "
	case "blockquote":
		return "\n> "
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return "\n\n"
	case "table", "thead", "tbody", "tr":
		return "\n"
	case "td", "th":
		return " "
	case "dl":
		return "\n"
	case "dt":
		return "\n"
	case "dd":
		return "\n  "
	default:
		return ""
	}
}

func formatEndElement(e *doctree.EndElementTree) string {
	switch strings.ToLower(e.Name) {
	case "pre":
		return "\n```\n"
	case "code":
		return "`"
	case "ul", "ol":
		return "\n"
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return "\n"
	default:
		return ""
	}
}

func formatBlockTag(node doctree.DocTree) string {
	switch n := node.(type) {
	case *doctree.ParamTree:
		desc := strings.TrimSpace(formatNodes(n.Description))
		if n.IsTypeParameter {
			return "@param <" + n.Name.Name.String() + "> " + desc
		}
		return "@param " + n.Name.Name.String() + " " + desc
	case *doctree.ReturnTree:
		return "@return " + strings.TrimSpace(formatNodes(n.Description))
	case *doctree.ThrowsTree:
		return "@throws " + formatReference(n.Ref) + " " + strings.TrimSpace(formatNodes(n.Description))
	case *doctree.ExceptionTree:
		return "@throws " + formatReference(n.Ref) + " " + strings.TrimSpace(formatNodes(n.Description))
	case *doctree.SeeTree:
		return "@see " + strings.TrimSpace(formatNodes(n.Description))
	case *doctree.SinceTree:
		return "@since " + strings.TrimSpace(formatNodes(n.Description))
	case *doctree.DeprecatedTree:
		return "@deprecated " + strings.TrimSpace(formatNodes(n.Description))
	case *doctree.AuthorTree:
		return "@author " + strings.TrimSpace(formatNodes(n.Description))
	case *doctree.VersionTree:
		return "@version " + strings.TrimSpace(formatNodes(n.Description))
	case *doctree.SerialTree:
		return "@serial " + strings.TrimSpace(formatNodes(n.Description))
	case *doctree.SerialDataTree:
		return "@serialData " + strings.TrimSpace(formatNodes(n.Description))
	case *doctree.SerialFieldTree:
		return "@serialField " + n.Name.Name.String() + " " + formatReference(n.Type) + " " + strings.TrimSpace(formatNodes(n.Description))
	case *doctree.HiddenTree:
		return "@hidden"
	case *doctree.ProvidesTree:
		return "@provides " + formatReference(n.Ref) + " " + strings.TrimSpace(formatNodes(n.Description))
	case *doctree.UsesTree:
		return "@uses " + formatReference(n.Ref) + " " + strings.TrimSpace(formatNodes(n.Description))
	case *doctree.UnknownBlockTagTree:
		return "@" + n.Name + " " + strings.TrimSpace(formatNodes(n.Content))
	default:
		return ""
	}
}

func decodeEntity(name string) string {
	switch name {
	case "lt", "#60":
		return "<"
	case "gt", "#62":
		return ">"
	case "amp", "#38":
		return "&"
	case "quot", "#34":
		return "\""
	case "apos", "#39":
		return "'"
	case "nbsp", "#160":
		return " "
	case "mdash", "#8212":
		return "—"
	case "ndash", "#8211":
		return "–"
	case "copy", "#169":
		return "©"
	case "reg", "#174":
		return "®"
	case "trade", "#8482":
		return "™"
	default:
		return "&" + name + ";"
	}
}

func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	var result []string
	prevEmpty := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if !prevEmpty {
				result = append(result, "")
				prevEmpty = true
			}
		} else {
			result = append(result, line)
			prevEmpty = false
		}
	}

	return strings.Join(result, "\n")
}
