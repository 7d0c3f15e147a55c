package pipeline

// OutlineNode is one entry of the navigation tree. Nesting follows heading
// level, so a level-4 heading under a level-2 parent nests directly.
type OutlineNode struct {
	Level    int            `json:"level"`
	Text     string         `json:"text"`
	Slug     string         `json:"id"`
	Children []*OutlineNode `json:"children"`
}

// BuildTree folds a flat heading sequence into a forest.
// A heading nests under the nearest preceding heading of strictly lower
// level; equal levels are always siblings. Empty input yields an empty forest.
func BuildTree(headings []Heading) []*OutlineNode {
	root := &OutlineNode{Level: 0, Children: []*OutlineNode{}}
	stack := []*OutlineNode{root}

	for _, h := range headings {
		node := &OutlineNode{
			Level:    h.Level,
			Text:     h.Text,
			Slug:     h.Slug,
			Children: []*OutlineNode{},
		}

		// The virtual root (level 0) is never popped
		for len(stack) > 1 && stack[len(stack)-1].Level >= h.Level {
			stack = stack[:len(stack)-1]
		}

		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, node)
		stack = append(stack, node)
	}

	return root.Children
}

// Walk visits every node depth-first in document order.
// depth is 0 for roots. Returning false from fn skips the node's children.
func Walk(forest []*OutlineNode, fn func(node *OutlineNode, depth int) bool) {
	walk(forest, 0, fn)
}

func walk(nodes []*OutlineNode, depth int, fn func(*OutlineNode, int) bool) {
	for _, n := range nodes {
		if fn(n, depth) {
			walk(n.Children, depth+1, fn)
		}
	}
}
