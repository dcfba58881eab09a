// Package content converts between the rich-text editor's document JSON and
// HTML. The editor serializes a ProseMirror-style document: a tree of typed
// nodes ("doc", "paragraph", "text", ...) where text nodes carry marks
// ("bold", "italic", ...).
//
// Article content is accepted from two sources: the editor (document JSON)
// and legacy records that already hold HTML or plain text. Decode classifies
// a raw string once; rendering and the emptiness check operate on the result.
package content

import (
	"encoding/json"
	"html"
	"strings"
)

// Kind discriminates the two content encodings.
type Kind int

const (
	// KindDoc is a structured editor document.
	KindDoc Kind = iota
	// KindRaw is anything that failed to parse as a document: HTML or
	// plain text stored as-is.
	KindRaw
)

// Node is a single node of the editor document tree.
type Node struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Marks   []Mark `json:"marks,omitempty"`
	Content []Node `json:"content,omitempty"`
}

// Mark is an inline formatting annotation on a text node.
type Mark struct {
	Type string `json:"type"`
}

// Content is the result of decoding a raw content string. Exactly one of
// Doc or Raw is meaningful, selected by Kind.
type Content struct {
	Kind Kind
	Doc  *Node
	Raw  string
}

// Decode classifies a raw content string. A string is a document when it is
// valid JSON whose root node has type "doc"; everything else, including
// malformed JSON, is raw. Decode never fails.
func Decode(raw string) Content {
	var root Node
	if err := json.Unmarshal([]byte(raw), &root); err != nil || root.Type != "doc" {
		return Content{Kind: KindRaw, Raw: raw}
	}
	return Content{Kind: KindDoc, Doc: &root}
}

// HTML renders the content for display. Raw content is returned unchanged;
// it is assumed to already be HTML or plain text.
func (c Content) HTML() string {
	if c.Kind == KindRaw {
		return c.Raw
	}
	var b strings.Builder
	renderNodes(&b, c.Doc.Content)
	return b.String()
}

// Empty reports whether the content is semantically empty. A document is
// empty when it consists of exactly one paragraph with no children, the
// state a pristine editor serializes. Raw content is empty only when it is
// blank.
func (c Content) Empty() bool {
	if c.Kind == KindRaw {
		return strings.TrimSpace(c.Raw) == ""
	}
	if len(c.Doc.Content) != 1 {
		return false
	}
	first := c.Doc.Content[0]
	return first.Type == "paragraph" && len(first.Content) == 0
}

// ToHTML decodes and renders in one step.
func ToHTML(raw string) string {
	return Decode(raw).HTML()
}

// IsEmpty decodes and checks emptiness in one step.
func IsEmpty(raw string) bool {
	return Decode(raw).Empty()
}

// tags for the supported node types. Unknown node types contribute their
// children without a wrapping element so unexpected input degrades instead
// of disappearing.
var nodeTags = map[string]string{
	"paragraph":   "p",
	"bulletList":  "ul",
	"orderedList": "ol",
	"listItem":    "li",
}

// tags for the supported mark types, applied innermost-last.
var markTags = map[string]string{
	"bold":      "strong",
	"italic":    "em",
	"underline": "u",
	"strike":    "s",
}

func renderNodes(b *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		renderNode(b, n)
	}
}

func renderNode(b *strings.Builder, n Node) {
	switch n.Type {
	case "text":
		renderText(b, n)
	case "hardBreak":
		b.WriteString("<br>")
	default:
		tag, ok := nodeTags[n.Type]
		if ok {
			b.WriteString("<")
			b.WriteString(tag)
			b.WriteString(">")
		}
		renderNodes(b, n.Content)
		if ok {
			b.WriteString("</")
			b.WriteString(tag)
			b.WriteString(">")
		}
	}
}

func renderText(b *strings.Builder, n Node) {
	open := make([]string, 0, len(n.Marks))
	for _, m := range n.Marks {
		if tag, ok := markTags[m.Type]; ok {
			b.WriteString("<")
			b.WriteString(tag)
			b.WriteString(">")
			open = append(open, tag)
		}
	}
	b.WriteString(html.EscapeString(n.Text))
	for i := len(open) - 1; i >= 0; i-- {
		b.WriteString("</")
		b.WriteString(open[i])
		b.WriteString(">")
	}
}
