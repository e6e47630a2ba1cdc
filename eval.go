package tagtmpl

import (
	"strconv"
	"strings"
)

// Context is a set of variable bindings for evaluating templates. A Context
// does not change once it is created, so it is safe to use concurrently.
type Context struct {
	names map[string]Value
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		val  Value
	}
	varsopt map[string]Value
)

func (varopt) ctxOption()  {}
func (varsopt) ctxOption() {}

// SetVar sets the value of a variable in the context.
func SetVar(name string, val Value) ContextOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]Value) ContextOption {
	return varsopt(vars)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context with options applied to it. Options are
// applied in order, so later bindings of a name replace earlier ones.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{names: make(map[string]Value, len(ctx.names))}
	for k, v := range ctx.names {
		n.names[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		default:
			panic("tagtmpl: unknown option type")
		}
	}
	return &n
}

// Lookup returns the value of a variable and whether it is bound.
func (ctx *Context) Lookup(name string) (Value, bool) {
	v, ok := ctx.names[name]
	return v, ok
}

// Eval evaluates a template. The first missing variable or misplaced tag, in
// order of body elements left to right and then attributes by name, stops
// evaluation and is returned as an *EvalError.
func (ctx *Context) Eval(a *AnnotatedExpr) (Value, error) {
	switch a.Kind {
	case ExprVariable:
		v, ok := ctx.names[a.Name]
		if !ok {
			return Value{}, &EvalError{Kind: VariableMissing, Name: a.Name, Range: a.Range}
		}
		return v, nil
	case ExprTag:
		var body strings.Builder
		for _, e := range a.Body {
			v, err := ctx.Eval(e)
			if err != nil {
				return Value{}, err
			}
			body.WriteString(v.HTML())
		}
		var attrs strings.Builder
		for _, k := range a.attrNames() {
			e := a.Attrs[k]
			v, err := ctx.Eval(e)
			if err != nil {
				return Value{}, err
			}
			if v.IsRawHTML() {
				return Value{}, &EvalError{Kind: ExpectedString, Range: e.Range}
			}
			attrs.WriteByte(' ')
			attrs.WriteString(k)
			attrs.WriteString(`="`)
			attrs.WriteString(escapeAttr(v.Unwrap()))
			attrs.WriteByte('"')
		}
		return RawHTML("<" + a.Name + attrs.String() + ">" + body.String() + "</" + a.Name + ">"), nil
	default:
		panic("tagtmpl: invalid expression kind " + a.Kind.String())
	}
}

// Eval is a shortcut to parse a template and evaluate it with a new context.
func Eval(src string, opts ...ContextOption) (Value, error) {
	a, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	return NewContext(opts...).Eval(a)
}

// EvalErrorKind is the reason a template failed to evaluate.
type EvalErrorKind int8

const (
	evalErrNone EvalErrorKind = iota

	// VariableMissing means a variable named by the error's Name is not
	// bound in the context.
	VariableMissing
	// ExpectedString means an attribute value evaluated to raw HTML.
	ExpectedString
)

func (k EvalErrorKind) String() string {
	switch k {
	case VariableMissing:
		return "VariableMissing"
	case ExpectedString:
		return "ExpectedString"
	default:
		return "EvalErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// EvalError is an error from evaluating a template. It implements
// InputError.
type EvalError struct {
	// Kind is the reason for the error.
	Kind EvalErrorKind
	// Name is the missing variable for VariableMissing.
	Name string
	// Range is the source span of the expression that failed.
	Range Range
}

func (err *EvalError) Error() string {
	switch err.Kind {
	case VariableMissing:
		return errpos(err.Range.Start, "undefined variable: "+strconv.Quote(err.Name))
	case ExpectedString:
		return errpos(err.Range.Start, "attribute value must be text, not html")
	default:
		return errpos(err.Range.Start, "evaluation error "+err.Kind.String())
	}
}

func (err *EvalError) Pos() int {
	return err.Range.Start
}
