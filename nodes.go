package tagtmpl

import (
	"sort"
	"strconv"
	"strings"
)

// ExprKind is the variant of an expression.
type ExprKind int8

const (
	exprNone ExprKind = iota

	ExprVariable // lookup(Name)
	ExprTag      // <Name Attrs...>Body...</Name>
)

func (k ExprKind) String() string {
	switch k {
	case ExprVariable:
		return "Variable"
	case ExprTag:
		return "Tag"
	default:
		return "ExprKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Expr is one node of a template, generic over the representation of its
// subexpressions. Attrs and Body are only used by tags.
type Expr[R any] struct {
	Kind ExprKind
	// Name is the variable name or the tag name.
	Name string
	// Attrs maps attribute names to their value expressions.
	Attrs map[string]R
	// Body is the ordered list of child expressions.
	Body []R
}

// Map converts an expression to one with a different subexpression
// representation by applying f to every attribute value and body element.
func Map[R, S any](e Expr[R], f func(R) S) Expr[S] {
	r := Expr[S]{Kind: e.Kind, Name: e.Name}
	if e.Attrs != nil {
		r.Attrs = make(map[string]S, len(e.Attrs))
		for k, v := range e.Attrs {
			r.Attrs[k] = f(v)
		}
	}
	if e.Body != nil {
		r.Body = make([]S, len(e.Body))
		for i, v := range e.Body {
			r.Body[i] = f(v)
		}
	}
	return r
}

// attrNames returns the attribute names of e in sorted order.
func (e *Expr[R]) attrNames() []string {
	names := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Range is a half-open span of byte offsets into template source.
type Range struct {
	Start, End int
}

// Len returns the number of bytes in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// In returns the text of src covered by r.
func (r Range) In(src string) string {
	return src[r.Start:r.End]
}

func (r Range) String() string {
	return strconv.Itoa(r.Start) + ".." + strconv.Itoa(r.End)
}

// AnnotatedExpr is a parsed expression. Every node records the span of
// source it was parsed from, which is used only for error reporting.
type AnnotatedExpr struct {
	Expr[*AnnotatedExpr]
	// Range is the source span of the node. For a variable, this is the
	// identifier alone. For a tag, it runs from the opening < through the >
	// of the closing tag.
	Range Range
}

// Simple discards the source ranges of a.
func (a *AnnotatedExpr) Simple() *SimpleExpr {
	return &SimpleExpr{Map(a.Expr, (*AnnotatedExpr).Simple)}
}

// Vars returns the sorted names of the variables used anywhere in a.
func (a *AnnotatedExpr) Vars() []string {
	seen := make(map[string]bool)
	a.vars(seen)
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (a *AnnotatedExpr) vars(seen map[string]bool) {
	switch a.Kind {
	case ExprVariable:
		seen[a.Name] = true
	case ExprTag:
		for _, v := range a.Attrs {
			v.vars(seen)
		}
		for _, v := range a.Body {
			v.vars(seen)
		}
	}
}

// String formats a as template source.
func (a *AnnotatedExpr) String() string {
	return a.Simple().String()
}

// SimpleExpr is an expression without source ranges. Two parsed expressions
// are the same template exactly when their simple forms are Equal.
type SimpleExpr struct {
	Expr[*SimpleExpr]
}

// Variable creates a variable reference.
func Variable(name string) *SimpleExpr {
	return &SimpleExpr{Expr[*SimpleExpr]{Kind: ExprVariable, Name: name}}
}

// Tag creates a tag. attrs may be nil.
func Tag(name string, attrs map[string]*SimpleExpr, body ...*SimpleExpr) *SimpleExpr {
	if attrs == nil {
		attrs = map[string]*SimpleExpr{}
	}
	if body == nil {
		body = []*SimpleExpr{}
	}
	return &SimpleExpr{Expr[*SimpleExpr]{Kind: ExprTag, Name: name, Attrs: attrs, Body: body}}
}

// Equal reports whether e and f have the same structure. A nil attribute map
// or body is the same as an empty one.
func (e *SimpleExpr) Equal(f *SimpleExpr) bool {
	if e == nil || f == nil {
		return e == f
	}
	if e.Kind != f.Kind || e.Name != f.Name {
		return false
	}
	if len(e.Attrs) != len(f.Attrs) || len(e.Body) != len(f.Body) {
		return false
	}
	for k, v := range e.Attrs {
		w, ok := f.Attrs[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	for i, v := range e.Body {
		if !v.Equal(f.Body[i]) {
			return false
		}
	}
	return true
}

// String formats e as template source. Attributes are written in sorted
// order.
func (e *SimpleExpr) String() string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (e *SimpleExpr) fmt(b *strings.Builder) {
	switch e.Kind {
	case ExprVariable:
		b.WriteByte('{')
		b.WriteString(e.Name)
		b.WriteByte('}')
	case ExprTag:
		b.WriteByte('<')
		b.WriteString(e.Name)
		for _, k := range e.attrNames() {
			b.WriteByte(' ')
			b.WriteString(k)
			b.WriteByte('=')
			e.Attrs[k].fmt(b)
		}
		b.WriteByte('>')
		for _, c := range e.Body {
			c.fmt(b)
		}
		b.WriteString("</")
		b.WriteString(e.Name)
		b.WriteByte('>')
	default:
		// Invalid nodes use invalid characters.
		b.WriteString("$" + e.Kind.String() + "$")
	}
}
