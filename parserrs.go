package tagtmpl

import (
	"strconv"
)

// ParseErrorKind is the reason a template failed to parse.
type ParseErrorKind int8

const (
	parseErrNone ParseErrorKind = iota

	// ExpectedToken means a required literal was missing. The literal is
	// the error's Token.
	ExpectedToken
	// ExpectedClosingTag means the input ended, or reached the closing tag
	// of some other element, before the closing tag for the element named
	// by the error's Token.
	ExpectedClosingTag
	ExpectedIdentifier
	ExpectedTagName
	ExpectedAttributeName
	// UnexpectedRemainder means the input had a character that cannot
	// start a node, or had input left over after the template.
	UnexpectedRemainder
)

func (k ParseErrorKind) String() string {
	switch k {
	case ExpectedToken:
		return "ExpectedToken"
	case ExpectedClosingTag:
		return "ExpectedClosingTag"
	case ExpectedIdentifier:
		return "ExpectedIdentifier"
	case ExpectedTagName:
		return "ExpectedTagName"
	case ExpectedAttributeName:
		return "ExpectedAttributeName"
	case UnexpectedRemainder:
		return "UnexpectedRemainder"
	default:
		return "ParseErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseError is an error indicating source text that does not match the
// template grammar. It implements InputError.
type ParseError struct {
	// Kind is the reason for the error.
	Kind ParseErrorKind
	// Token is the expected literal for ExpectedToken or the unclosed tag
	// name for ExpectedClosingTag. It is empty for other kinds.
	Token string
	// Offset is the byte offset in the source where scanning stopped.
	Offset int
}

func (err *ParseError) Error() string {
	var msg string
	switch err.Kind {
	case ExpectedToken:
		msg = "expected " + strconv.Quote(err.Token)
	case ExpectedClosingTag:
		msg = "expected closing tag </" + err.Token + ">"
	case ExpectedIdentifier:
		msg = "expected identifier"
	case ExpectedTagName:
		msg = "expected tag name"
	case ExpectedAttributeName:
		msg = "expected attribute name"
	case UnexpectedRemainder:
		msg = "unexpected input"
	default:
		msg = "parse error " + err.Kind.String()
	}
	return errpos(err.Offset, msg)
}

func (err *ParseError) Pos() int {
	return err.Offset
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid templates or missing variables implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset into the template source at which the
	// error occurred.
	Pos() int
}

var (
	_ InputError = (*ParseError)(nil)
	_ InputError = (*EvalError)(nil)
)
