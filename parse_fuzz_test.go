package tagtmpl_test

import (
	"testing"

	"github.com/zephyrtronium/tagtmpl"
)

// inBounds checks that every range in a lies within src and that children
// lie within their tag.
func inBounds(t *testing.T, src string, a *tagtmpl.AnnotatedExpr, lo, hi int) {
	t.Helper()
	if a.Range.Start < lo || a.Range.End > hi || a.Range.Start > a.Range.End {
		t.Fatalf("%q: range %v of %v outside %d..%d", src, a.Range, a, lo, hi)
	}
	for _, v := range a.Attrs {
		inBounds(t, src, v, a.Range.Start, a.Range.End)
	}
	for _, v := range a.Body {
		inBounds(t, src, v, a.Range.Start, a.Range.End)
	}
}

func FuzzParse(f *testing.F) {
	f.Add("{x}")
	f.Add("<p>{x}</p>")
	f.Add("<a href={u} title={ t }>{x}<b></b></a>")
	f.Add("<a><b></a>")
	f.Add("<é ñ={ß}></é>")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := tagtmpl.Parse(s)
		if err != nil {
			return
		}
		inBounds(t, s, a, 0, len(s))
		b, err := tagtmpl.Parse(a.String())
		if err != nil {
			t.Fatalf("%q formats as %q, which fails to parse: %v", s, a.String(), err)
		}
		if !a.Simple().Equal(b.Simple()) {
			t.Fatalf("%q formats as %q, which parses differently", s, a.String())
		}
	})
}
