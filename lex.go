package tagtmpl

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// cursor scans template source forward one rune at a time. It never backs
// up; every production decides what to do from the next rune or literal.
type cursor struct {
	src string
	pos int
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.src)
}

// peek returns the next rune without consuming it. At EOF, the result is
// utf8.RuneError with size 0.
func (c *cursor) peek() (rune, int) {
	return utf8.DecodeRuneInString(c.src[c.pos:])
}

// has reports whether the remaining input starts with s.
func (c *cursor) has(s string) bool {
	return strings.HasPrefix(c.src[c.pos:], s)
}

// remove consumes s if the remaining input starts with it.
func (c *cursor) remove(s string) bool {
	if !c.has(s) {
		return false
	}
	c.pos += len(s)
	return true
}

// expect consumes s or returns an error saying s was expected.
func (c *cursor) expect(s string) error {
	if !c.remove(s) {
		return c.error(ExpectedToken, s)
	}
	return nil
}

// scan consumes the longest run of runes satisfying ok and returns it.
func (c *cursor) scan(ok func(rune) bool) string {
	start := c.pos
	for !c.eof() {
		r, sz := c.peek()
		if !ok(r) {
			break
		}
		c.pos += sz
	}
	return c.src[start:c.pos]
}

func (c *cursor) skipSpace() {
	c.scan(unicode.IsSpace)
}

// atLetter reports whether the next rune can start a name.
func (c *cursor) atLetter() bool {
	if c.eof() {
		return false
	}
	r, _ := c.peek()
	return isNameRune(r)
}

// isNameRune is the character class shared by identifiers, tag names, and
// attribute names.
func isNameRune(r rune) bool {
	return unicode.IsLetter(r)
}

func (c *cursor) error(kind ParseErrorKind, token string) error {
	return &ParseError{
		Kind:   kind,
		Token:  token,
		Offset: c.pos,
	}
}
