package tagtmpl

import "strings"

// Bodies escape exactly &, <, and >. Attributes escape exactly ". Neither
// matches html.EscapeString, which also rewrites quotes and apostrophes.
var (
	// TODO(zeph): attribute values keep &, <, and > as they are. Decide
	// whether to escape them like bodies; that changes rendered output.
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(`"`, "&quot;")
)

// escapeText escapes plain text for embedding in a tag body.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr escapes plain text for embedding in a double-quoted attribute
// value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
