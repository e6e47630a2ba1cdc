package tagtmpl

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type trimopt bool

// parsectx holds general data for parsing. It is also a ParseOption.
type parsectx struct {
	// trim indicates that whitespace around the root node is ignored.
	trim bool
}

// TrimSpace tells the parser to ignore whitespace before and after the
// template, such as the final newline of a file. Whitespace inside tag bodies
// is still an error. Ranges are offsets into the untrimmed source.
func TrimSpace() ParseOption {
	return trimopt(true)
}

func (o trimopt) parseOption(p parsectx) parsectx {
	p.trim = bool(o)
	return p
}

// ParsingPreset creates a parsing preset from a list of options so that the
// same configuration can be passed to many calls to Parse. A preset replaces
// any options given before it; options given after it apply on top.
func ParsingPreset(opts ...ParseOption) ParseOption {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return &p
}

func (o *parsectx) parseOption(p parsectx) parsectx {
	return *o
}
