// Package pipeline implements the README-to-HTML transformation stages.
//
// Two independent branches share only the raw source:
//   - Outline: ExtractHeadings scans the source for ATX headings and
//     BuildTree folds them into a navigation forest.
//   - Markup: Convert rewrites the source into an HTML fragment through an
//     ordered chain of regex rules, AssignIDs stamps outline slugs onto the
//     rendered heading tags, and ResolveURLs makes relative links absolute.
//
// AssignIDs is the join point. It matches headings to tags by normalized
// text since the two branches never exchange positions.
//
// GoldmarkEngine is the alternative to that chain: it parses once with
// goldmark and sets heading ids on the AST, so no matching is needed.
// Both engines satisfy Engine and produce the same slugs.
//
// Everything here is synchronous and free of shared state. Engines are
// safe for concurrent use.
package pipeline
