package pipeline

// Notes:
// - Exact-output cases pin the rule order; structural cases (tables) are
//   checked through goquery so they don't depend on whitespace
// - Known limitations (inline code content is not protected from emphasis)
//   are not asserted either way

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// ---------------------------------------------------------------------------
// TestConvert - Exact Output
// ---------------------------------------------------------------------------

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "heading and paragraph",
			raw:  "# Title\nSome *text* with `code`.\n",
			want: "<h1>Title</h1>\n<p>Some <em>text</em> with <code>code</code>.</p>\n",
		},
		{
			name: "heading levels do not collide",
			raw:  "### Three\n## Two",
			want: "<h3>Three</h3>\n<h2>Two</h2>",
		},
		{
			name: "emphasis variants",
			raw:  "***both*** **bold** *it* ~~gone~~",
			want: "<strong><em>both</em></strong> <strong>bold</strong> <em>it</em> <del>gone</del>",
		},
		{
			name: "unmatched delimiters stay literal",
			raw:  "**unclosed and ~one",
			want: "<p>**unclosed and ~one</p>",
		},
		{
			name: "link opens in new context",
			raw:  "[docs](https://example.com)",
			want: `<a href="https://example.com" target="_blank" rel="noopener">docs</a>`,
		},
		{
			name: "image is lazy",
			raw:  "![logo](img/logo.png)",
			want: `<img src="img/logo.png" alt="logo" loading="lazy" />`,
		},
		{
			name: "linked badge",
			raw:  "[![ci](ci.svg)](https://ci.example.com)",
			want: `<a href="https://ci.example.com" target="_blank" rel="noopener"><img src="ci.svg" alt="ci" loading="lazy" /></a>`,
		},
		{
			name: "line led by inline markup is not wrapped",
			raw:  "**Note:** read this\n",
			want: "<strong>Note:</strong> read this\n",
		},
		{
			name: "line led by inline code is not wrapped",
			raw:  "`make` builds it\nthen *run* it",
			want: "<code>make</code> builds it\n<p>then <em>run</em> it</p>",
		},
		{
			name: "comment passes through",
			raw:  "<!-- badges -->\nText",
			want: "<!-- badges -->\n<p>Text</p>",
		},
		{
			name: "thematic breaks",
			raw:  "---\n***\n___",
			want: "<hr />\n<hr />\n<hr />",
		},
		{
			name: "adjacent quotes merge",
			raw:  "> one\n> two\n",
			want: "<blockquote>one<br />two</blockquote>\n",
		},
		{
			name: "unordered list",
			raw:  "- a\n* b\n+ c\n",
			want: "<ul><li>a</li>\n<li>b</li>\n<li>c</li></ul>\n",
		},
		{
			name: "ordered list",
			raw:  "1. one\n2. two\n",
			want: "<ol><li>one</li>\n<li>two</li></ol>\n",
		},
		{
			name: "list followed by paragraph",
			raw:  "- a\nAfter",
			want: "<ul><li>a</li></ul>\n<p>After</p>",
		},
		{
			name: "blank lines preserved",
			raw:  "one\n\ntwo",
			want: "<p>one</p>\n\n<p>two</p>",
		},
		{
			name: "block html passes through",
			raw:  "<div align=\"center\">\n<details>\n",
			want: "<div align=\"center\">\n<details>\n",
		},
		{
			name: "malformed table becomes paragraphs",
			raw:  "| a | b |\nnot a separator\n",
			want: "<p>| a | b |</p>\n<p>not a separator</p>\n",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Convert(tt.raw); got != tt.want {
				t.Errorf("Convert(%q)\n got: %q\nwant: %q", tt.raw, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvert - Fenced Code
// ---------------------------------------------------------------------------

func TestConvert_FenceContentIsOnlyEscaped(t *testing.T) {
	t.Parallel()

	raw := "```go\n**bold** & <x> [l](u) # h\n- item\n```\n"
	want := `<pre><code class="language-go">**bold** &amp; &lt;x&gt; [l](u) # h` + "\n" + `- item</code></pre>` + "\n"

	if got := Convert(raw); got != want {
		t.Errorf("Convert()\n got: %q\nwant: %q", got, want)
	}
}

func TestConvert_FenceDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "no language",
			raw:  "```\ncode\n```",
			want: `<pre><code class="language-text">code</code></pre>`,
		},
		{
			name: "trailing whitespace trimmed",
			raw:  "```sh\nmake   \n\n\n```",
			want: `<pre><code class="language-sh">make</code></pre>`,
		},
		{
			name: "info string after language ignored",
			raw:  "```js title=\"a.js\"\nx\n```",
			want: `<pre><code class="language-js">x</code></pre>`,
		},
		{
			name: "language with symbols",
			raw:  "```c++\nint x;\n```",
			want: `<pre><code class="language-c++">int x;</code></pre>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Convert(tt.raw); got != tt.want {
				t.Errorf("Convert()\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestConvert_ManyFencesRestoreInOrder(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString("```\nblock" + string(rune('a'+i)) + "\n```\n\n")
	}
	got := Convert(b.String())

	last := -1
	for i := 0; i < 12; i++ {
		marker := "block" + string(rune('a'+i)) + "</code>"
		idx := strings.Index(got, marker)
		if idx < 0 {
			t.Fatalf("missing %q in output", marker)
		}
		if idx < last {
			t.Errorf("%q out of order", marker)
		}
		last = idx
	}
	if strings.ContainsAny(got, codeBlockStart+codeBlockEnd) {
		t.Error("placeholder left in output")
	}
}

// ---------------------------------------------------------------------------
// TestConvert - Tables
// ---------------------------------------------------------------------------

func TestConvert_Table(t *testing.T) {
	t.Parallel()

	raw := "| a | b | c |\n|---|:-:|---|\n| 1 | 2 | 3 |\n| 4 | 5 | 6 |\nafter\n"
	html := Convert(raw)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}

	if n := doc.Find("table").Length(); n != 1 {
		t.Fatalf("tables = %d, want 1", n)
	}
	if n := doc.Find("thead tr").Length(); n != 1 {
		t.Errorf("header rows = %d, want 1", n)
	}
	if n := doc.Find("thead th").Length(); n != 3 {
		t.Errorf("header cells = %d, want 3", n)
	}
	rows := doc.Find("tbody tr")
	if rows.Length() != 2 {
		t.Fatalf("body rows = %d, want 2", rows.Length())
	}
	rows.Each(func(i int, row *goquery.Selection) {
		if n := row.Find("td").Length(); n != 3 {
			t.Errorf("row %d cells = %d, want 3", i, n)
		}
	})
	if got := doc.Find("tbody tr").Last().Find("td").Last().Text(); got != "6" {
		t.Errorf("last cell = %q, want %q", got, "6")
	}
	if got := doc.Find("p").Text(); got != "after" {
		t.Errorf("paragraph after table = %q, want %q", got, "after")
	}
}

func TestConvert_TableKeepsEmptyInnerCells(t *testing.T) {
	t.Parallel()

	html := Convert("| a | b | c |\n|---|---|---|\n| 1 |  | 3 |\n")
	if !strings.Contains(html, "<tr><td>1</td><td></td><td>3</td></tr>") {
		t.Errorf("empty middle cell lost: %q", html)
	}
}

func TestConvert_TableWithoutBody(t *testing.T) {
	t.Parallel()

	html := Convert("| a | b |\n| --- | --- |\n")
	want := "<table><thead><tr><th>a</th><th>b</th></tr></thead><tbody></tbody></table>"
	if !strings.Contains(html, want) {
		t.Errorf("Convert() = %q, want it to contain %q", html, want)
	}
}

// ---------------------------------------------------------------------------
// TestConvert - Heading Count Agreement
// ---------------------------------------------------------------------------

func TestConvert_HeadingCountMatchesOutline(t *testing.T) {
	t.Parallel()

	raw := strings.Join([]string{
		"# Project",
		"Intro with **bold**.",
		"```bash",
		"# not a heading",
		"```",
		"## Install",
		"- step",
		"## Usage `cli`",
		"### Flags [ref](#flags)",
		"| h |",
		"|---|",
		"| v |",
		"#### Deep *one*",
	}, "\n")

	headings := ExtractHeadings(raw)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(Convert(raw)))
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if n := doc.Find("h1,h2,h3,h4,h5,h6").Length(); n != len(headings) {
		t.Errorf("rendered headings = %d, extracted = %d", n, len(headings))
	}
}
