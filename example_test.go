package tagtmpl_test

import (
	"fmt"

	"github.com/zephyrtronium/tagtmpl"
)

func Example() {
	a, err := tagtmpl.Parse(`<a href={url}>{name}</a>`)
	if err != nil {
		panic(err)
	}
	ctx := tagtmpl.NewContext(
		tagtmpl.SetVar("url", tagtmpl.Text(`/search?q="tom"&page=2`)),
		tagtmpl.SetVar("name", tagtmpl.Text("Tom & Jerry")),
	)
	r, err := ctx.Eval(a)
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Unwrap())
	fmt.Println(a.Vars())

	// Output:
	// <a href="/search?q=&quot;tom&quot;&page=2">Tom &amp; Jerry</a>
	// [name url]
}

func ExampleSnippet() {
	src := "<ul><li>{first}</li><li>{second}</li></ul>"
	_, err := tagtmpl.Eval(src, tagtmpl.SetVar("first", tagtmpl.Text("one")))
	fmt.Print(tagtmpl.Snippet(src, err))

	// Output:
	// 1:26: undefined variable: "second"
	//    1 | <ul><li>{first}</li><li>{second}</li></ul>
	//      |                          ^~~~~~
}

func ExampleTag() {
	want := tagtmpl.Tag("p", map[string]*tagtmpl.SimpleExpr{"class": tagtmpl.Variable("c")},
		tagtmpl.Variable("x"),
		tagtmpl.Tag("br", nil),
	)
	a, err := tagtmpl.Parse("<p class={ c }>{x}<br></br></p>")
	if err != nil {
		panic(err)
	}
	fmt.Println(want)
	fmt.Println(a.Simple().Equal(want))

	// Output:
	// <p class={c}>{x}<br></br></p>
	// true
}
