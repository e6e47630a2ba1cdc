// Package tagtmpl implements a small templating language for markup.
//
// A template is either an interpolation or a tag. "{name}" is replaced by the
// value bound to name when the template is evaluated. "<p class={c}>{x}</p>"
// is a tag whose attribute values and body elements are themselves
// templates. There are no literal text runs, loops, or conditionals; the
// language only substitutes variables and nests tags.
//
// Parse a template once and evaluate it with as many contexts as you like.
// Plain text values are escaped when they are embedded in a tag body, and
// rendered tags are raw HTML that is never escaped again.
//
package tagtmpl
