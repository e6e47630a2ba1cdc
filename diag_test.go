package tagtmpl_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zephyrtronium/tagtmpl"
)

func TestPosition(t *testing.T) {
	cases := []struct {
		src       string
		offset    int
		line, col int
	}{
		{"", 0, 1, 1},
		{"", 5, 1, 1},
		{"abc", -1, 1, 1},
		{"abc", 2, 1, 3},
		{"ab\ncd", 3, 2, 1},
		{"ab\ncd", 4, 2, 2},
		{"ab\ncd", 99, 2, 3},
		{"é{x}", 3, 1, 3},
		{"\n\n\n", 3, 4, 1},
	}
	for _, c := range cases {
		line, col := tagtmpl.Position(c.src, c.offset)
		if line != c.line || col != c.col {
			t.Errorf("%q at %d: want %d:%d, got %d:%d", c.src, c.offset, c.line, c.col, line, col)
		}
	}
}

func TestSnippet(t *testing.T) {
	cases := []struct {
		name string
		src  string
		vars []tagtmpl.ContextOption
		want string
	}{
		{
			name: "missing",
			src:  "<p>{x}{missing}</p>",
			vars: []tagtmpl.ContextOption{tagtmpl.SetVar("x", tagtmpl.Text(""))},
			want: "1:8: undefined variable: \"missing\"\n" +
				"   1 | <p>{x}{missing}</p>\n" +
				"     |        ^~~~~~~\n",
		},
		{
			name: "parse",
			src:  "<p\n  a={}></p>",
			want: "2:6: expected identifier\n" +
				"   2 |   a={}></p>\n" +
				"     |      ^\n",
		},
		{
			name: "eof",
			src:  "<p>",
			want: "1:4: expected closing tag </p>\n" +
				"   1 | <p>\n" +
				"     |    ^\n",
		},
		{
			name: "html-attr",
			src:  "<p><a href={ link }></a></p>",
			vars: []tagtmpl.ContextOption{tagtmpl.SetVar("link", tagtmpl.RawHTML("<a></a>"))},
			want: "1:14: attribute value must be text, not html\n" +
				"   1 | <p><a href={ link }></a></p>\n" +
				"     |              ^~~~\n",
		},
		{
			name: "body-newline",
			src:  "<p>\n{x}</p>",
			want: "1:4: unexpected input\n" +
				"   1 | <p>\n" +
				"     |    ^\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := tagtmpl.Eval(c.src, c.vars...)
			if err == nil {
				t.Fatal("no error")
			}
			if diff := cmp.Diff(c.want, tagtmpl.Snippet(c.src, err)); diff != "" {
				t.Errorf("wrong snippet (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSnippetWrapped(t *testing.T) {
	src := "<a title={t}></a>"
	_, err := tagtmpl.Eval(src, tagtmpl.SetVar("t", tagtmpl.RawHTML("")))
	if err == nil {
		t.Fatal("no error")
	}
	err = fmt.Errorf("rendering page: %w", err)
	want := "1:11: attribute value must be text, not html\n" +
		"   1 | <a title={t}></a>\n" +
		"     |           ^\n"
	if diff := cmp.Diff(want, tagtmpl.Snippet(src, err)); diff != "" {
		t.Errorf("wrong snippet (-want +got):\n%s", diff)
	}
	if got := tagtmpl.Snippet(src, errors.New("boom")); got != "boom" {
		t.Errorf("foreign error formatted as %q", got)
	}
}
