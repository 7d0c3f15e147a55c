// Package page wraps a rendered README fragment and its outline into a
// standalone HTML document: a sidebar with the navigation tree and an
// article column, styled by an embedded or user-supplied stylesheet.
//
// The page needs no JavaScript. Collapsible sections use <details> and the
// light or dark palette follows prefers-color-scheme.
package page
