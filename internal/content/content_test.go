package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const emptyDoc = `{"type":"doc","content":[{"type":"paragraph"}]}`

func TestDecode(t *testing.T) {
	t.Run("classifies editor documents", func(t *testing.T) {
		c := Decode(emptyDoc)
		assert.Equal(t, KindDoc, c.Kind)
		assert.NotNil(t, c.Doc)
	})

	t.Run("classifies HTML as raw", func(t *testing.T) {
		c := Decode("<p>hello</p>")
		assert.Equal(t, KindRaw, c.Kind)
		assert.Equal(t, "<p>hello</p>", c.Raw)
	})

	t.Run("valid JSON without doc root is raw", func(t *testing.T) {
		c := Decode(`{"type":"paragraph"}`)
		assert.Equal(t, KindRaw, c.Kind)
	})

	t.Run("scalar JSON is raw", func(t *testing.T) {
		assert.Equal(t, KindRaw, Decode("5").Kind)
		assert.Equal(t, KindRaw, Decode(`"text"`).Kind)
	})
}

func TestToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single paragraph",
			in:   `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"hola"}]}]}`,
			want: "<p>hola</p>",
		},
		{
			name: "bold and italic marks",
			in:   `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","marks":[{"type":"bold"},{"type":"italic"}],"text":"x"}]}]}`,
			want: "<p><strong><em>x</em></strong></p>",
		},
		{
			name: "underline and strike marks",
			in:   `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","marks":[{"type":"underline"}],"text":"a"},{"type":"text","marks":[{"type":"strike"}],"text":"b"}]}]}`,
			want: "<p><u>a</u><s>b</s></p>",
		},
		{
			name: "bullet list",
			in:   `{"type":"doc","content":[{"type":"bulletList","content":[{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"one"}]}]},{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"two"}]}]}]}]}`,
			want: "<ul><li><p>one</p></li><li><p>two</p></li></ul>",
		},
		{
			name: "ordered list",
			in:   `{"type":"doc","content":[{"type":"orderedList","content":[{"type":"listItem","content":[{"type":"paragraph","content":[{"type":"text","text":"uno"}]}]}]}]}`,
			want: "<ol><li><p>uno</p></li></ol>",
		},
		{
			name: "hard break",
			in:   `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"a"},{"type":"hardBreak"},{"type":"text","text":"b"}]}]}`,
			want: "<p>a<br>b</p>",
		},
		{
			name: "text is escaped",
			in:   `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"<script>"}]}]}`,
			want: "<p>&lt;script&gt;</p>",
		},
		{
			name: "unknown node renders its children",
			in:   `{"type":"doc","content":[{"type":"blockquote","content":[{"type":"paragraph","content":[{"type":"text","text":"q"}]}]}]}`,
			want: "<p>q</p>",
		},
		{
			name: "unknown mark is dropped",
			in:   `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","marks":[{"type":"highlight"}],"text":"x"}]}]}`,
			want: "<p>x</p>",
		},
		{
			name: "unparsable input passes through",
			in:   "<p>already html</p>",
			want: "<p>already html</p>",
		},
		{
			name: "plain text passes through",
			in:   "just some text",
			want: "just some text",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToHTML(tt.in))
		})
	}
}

func TestToHTML_NeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"{",
		"null",
		"[]",
		`{"type":"doc"}`,
		`{"type":"doc","content":null}`,
		`{"type":"doc","content":[{"type":"text"}]}`,
		"\x00\xff",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { ToHTML(in) }, "input %q", in)
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"pristine editor document", emptyDoc, true},
		{"paragraph with text", `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"hi"}]}]}`, false},
		{"two empty paragraphs", `{"type":"doc","content":[{"type":"paragraph"},{"type":"paragraph"}]}`, false},
		{"doc without content", `{"type":"doc"}`, false},
		{"empty string", "", true},
		{"whitespace only", "   \n\t", true},
		{"non-blank unparsable string", "hello", false},
		{"html content", "<p>hola</p>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmpty(tt.in))
		})
	}
}
