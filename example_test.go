package readmedocs_test

import (
	"context"
	"fmt"

	"github.com/alnah/go-readmedocs"
)

// Example demonstrates rendering a README into an anchored fragment.
func Example() {
	r, err := readmedocs.NewRenderer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := r.Render(context.Background(), readmedocs.Input{
		Markdown: "# Title\nSome *text* with `code`.\n",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(result.HTML)
	// Output:
	// <h1 id="title">Title</h1>
	// <p>Some <em>text</em> with <code>code</code>.</p>
}

// Example_outline demonstrates walking the navigation tree.
func Example_outline() {
	r, _ := readmedocs.NewRenderer()

	result, err := r.Render(context.Background(), readmedocs.Input{
		Markdown: "# Project\n## Install\n#### From source\n## Usage\n",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var walk func(nodes []*readmedocs.OutlineNode, indent string)
	walk = func(nodes []*readmedocs.OutlineNode, indent string) {
		for _, n := range nodes {
			fmt.Printf("%s%s #%s\n", indent, n.Text, n.Slug)
			walk(n.Children, indent+"  ")
		}
	}
	walk(result.Outline, "")
	// Output:
	// Project #project
	//   Install #install
	//     From source #from-source
	//   Usage #usage
}

// Example_resolveLinks demonstrates making relative links absolute.
func Example_resolveLinks() {
	r, _ := readmedocs.NewRenderer()

	result, err := r.Render(context.Background(), readmedocs.Input{
		Markdown: "[guide](docs/guide.md) and [top](#top)",
		Base:     readmedocs.Base{Namespace: "org", Collection: "repo", Revision: "dev"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.HTML)
	// Output:
	// <a href="https://raw.githubusercontent.com/org/repo/dev/docs/guide.md" target="_blank" rel="noopener">guide</a> and <a href="#top" target="_blank" rel="noopener">top</a>
}

// Example_goldmark demonstrates the goldmark engine.
func Example_goldmark() {
	r, err := readmedocs.NewRenderer(readmedocs.WithEngine(readmedocs.EngineGoldmark))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := r.Render(context.Background(), readmedocs.Input{
		Markdown: "## What's new?\n",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Headings[0].Slug)
	// Output: whats-new
}

// ExampleSlugify shows the anchor format other documents can link to.
func ExampleSlugify() {
	fmt.Println(readmedocs.Slugify("Getting Started (v2)"))
	// Output: getting-started-v2
}
