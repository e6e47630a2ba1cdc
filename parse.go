package tagtmpl

// Node = '{' ws Ident ws '}' | '<' Name { ws Attr } ws '>' { Node } '</' Name '>'
// Attr = Name '=' '{' ws Ident ws '}'
// Ident = Name = letter { letter }
//
// Whitespace is skipped only inside braces and between attributes. Anywhere
// else, including tag bodies, text that does not start with { or < is an
// error.

// Parse parses a template. The given options are applied in order. The
// entire source must be one template.
func Parse(src string, opts ...ParseOption) (*AnnotatedExpr, error) {
	a, n, err := ParsePrefix(src, opts...)
	if err != nil {
		return nil, err
	}
	if n < len(src) {
		return nil, &ParseError{Kind: UnexpectedRemainder, Offset: n}
	}
	return a, nil
}

// ParsePrefix parses one template from the start of src and returns it along
// with the number of bytes it consumed. Input following the template is left
// for the caller.
func ParsePrefix(src string, opts ...ParseOption) (*AnnotatedExpr, int, error) {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	c := cursor{src: src}
	if p.trim {
		c.skipSpace()
	}
	a, err := parsenode(&c)
	if err != nil {
		return nil, 0, err
	}
	if p.trim {
		c.skipSpace()
	}
	return a, c.pos, nil
}

// parsenode parses a single interpolation or tag starting at the cursor.
func parsenode(c *cursor) (*AnnotatedExpr, error) {
	start := c.pos
	switch {
	case c.remove("{"):
		return parseinterp(c)
	case c.remove("<"):
		return parsetag(c, start)
	default:
		return nil, c.error(UnexpectedRemainder, "")
	}
}

// parseinterp parses the inside of braces after the { has been consumed,
// through the closing }.
func parseinterp(c *cursor) (*AnnotatedExpr, error) {
	c.skipSpace()
	a, err := parseident(c)
	if err != nil {
		return nil, err
	}
	c.skipSpace()
	if err := c.expect("}"); err != nil {
		return nil, err
	}
	return a, nil
}

// parseident parses a variable reference.
func parseident(c *cursor) (*AnnotatedExpr, error) {
	start := c.pos
	name := c.scan(isNameRune)
	if name == "" {
		return nil, c.error(ExpectedIdentifier, "")
	}
	a := AnnotatedExpr{
		Expr:  Expr[*AnnotatedExpr]{Kind: ExprVariable, Name: name},
		Range: Range{Start: start, End: c.pos},
	}
	return &a, nil
}

// parsetag parses a tag after its < has been consumed. start is the offset
// of the <.
func parsetag(c *cursor, start int) (*AnnotatedExpr, error) {
	name := c.scan(isNameRune)
	if name == "" {
		return nil, c.error(ExpectedTagName, "")
	}
	attrs := make(map[string]*AnnotatedExpr)
	for !c.eof() {
		c.skipSpace()
		if c.remove(">") {
			break
		}
		if !c.atLetter() {
			return nil, c.error(ExpectedToken, "Attribute or >")
		}
		k, v, err := parseattr(c)
		if err != nil {
			return nil, err
		}
		// Repeated attributes replace earlier ones.
		attrs[k] = v
	}
	closing := "</" + name + ">"
	body := []*AnnotatedExpr{}
	for !c.remove(closing) {
		// Tags are matched by name only. Reaching any other closing tag
		// means this one can never be closed.
		if c.eof() || c.has("</") {
			return nil, c.error(ExpectedClosingTag, name)
		}
		n, err := parsenode(c)
		if err != nil {
			return nil, err
		}
		body = append(body, n)
	}
	a := AnnotatedExpr{
		Expr:  Expr[*AnnotatedExpr]{Kind: ExprTag, Name: name, Attrs: attrs, Body: body},
		Range: Range{Start: start, End: c.pos},
	}
	return &a, nil
}

// parseattr parses name={ident}.
func parseattr(c *cursor) (string, *AnnotatedExpr, error) {
	name := c.scan(isNameRune)
	if name == "" {
		return "", nil, c.error(ExpectedAttributeName, "")
	}
	if err := c.expect("="); err != nil {
		return "", nil, err
	}
	if err := c.expect("{"); err != nil {
		return "", nil, err
	}
	v, err := parseinterp(c)
	if err != nil {
		return "", nil, err
	}
	return name, v, nil
}
