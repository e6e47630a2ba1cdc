package tagtmpl

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// Value is the result of evaluating a template, or a value bound to a
// variable. It is either plain text, which is escaped wherever it is
// embedded, or raw HTML, which is embedded as-is. The zero Value is empty
// text.
type Value struct {
	s   string
	raw bool
}

// Text creates a plain text value.
func Text(s string) Value {
	return Value{s: s}
}

// RawHTML creates a value containing markup that is already safe to embed.
func RawHTML(h string) Value {
	return Value{s: h, raw: true}
}

// IsRawHTML reports whether v is raw HTML rather than text.
func (v Value) IsRawHTML() bool {
	return v.raw
}

// Unwrap returns the text or markup held by v.
func (v Value) Unwrap() string {
	return v.s
}

// HTML returns v as markup: escaped if v is text, unchanged if it is raw
// HTML.
func (v Value) HTML() string {
	if v.raw {
		return v.s
	}
	return escapeText(v.s)
}

func (v Value) String() string {
	if v.raw {
		return "rawHTML(" + strconv.Quote(v.s) + ")"
	}
	return "text(" + strconv.Quote(v.s) + ")"
}

// UnmarshalYAML implements yaml.Unmarshaler. A scalar decodes as text. A
// mapping with the single key "html" decodes as raw HTML.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = Text(node.Value)
		return nil
	case yaml.MappingNode:
		var m struct {
			HTML *string `yaml:"html"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		if m.HTML == nil || len(node.Content) != 2 {
			return fmt.Errorf("line %d: template value mapping must have exactly the key \"html\"", node.Line)
		}
		*v = RawHTML(*m.HTML)
		return nil
	default:
		return fmt.Errorf("line %d: template value must be a string or {html: string}", node.Line)
	}
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Markdown renders CommonMark source with GitHub extensions to a raw HTML
// value. Raw HTML in src is replaced by a comment in the output.
func Markdown(src string) (Value, error) {
	var b bytes.Buffer
	if err := markdown.Convert([]byte(src), &b); err != nil {
		return Value{}, fmt.Errorf("rendering markdown: %w", err)
	}
	return RawHTML(b.String()), nil
}
