package testing

import (
	"fmt"
	"strings"

	"github.com/go-widgets/dropdown/pkg/html"
)

// Finder locates nodes in a rendered tree.
type Finder[M any] interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root html.Node[M]) []html.Node[M]
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult[M any] struct {
	nodes  []html.Node[M]
	finder Finder[M]
}

// First returns the first match. Panics if no matches.
func (r FinderResult[M]) First() html.Node[M] {
	if len(r.nodes) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no nodes: %s", desc))
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult[M]) At(index int) html.Node[M] {
	if index < 0 || index >= len(r.nodes) {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), desc))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult[M]) All() []html.Node[M] {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult[M]) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult[M]) Exists() bool {
	return len(r.nodes) > 0
}

// --- Concrete finders ---

// tagFinder matches element nodes by tag name.
type tagFinder[M any] struct {
	tag string
}

func (f *tagFinder[M]) Evaluate(root html.Node[M]) []html.Node[M] {
	return collectMatches(root, func(n html.Node[M]) bool {
		return n.Tag == f.tag
	})
}

func (f *tagFinder[M]) Description() string {
	return fmt.Sprintf("ByTag(%q)", f.tag)
}

// ByTag returns a finder that matches element nodes with the given tag.
func ByTag[M any](tag string) Finder[M] {
	return &tagFinder[M]{tag: tag}
}

// classFinder matches element nodes carrying a class token.
type classFinder[M any] struct {
	name string
}

func (f *classFinder[M]) Evaluate(root html.Node[M]) []html.Node[M] {
	return collectMatches(root, func(n html.Node[M]) bool {
		return HasClass(n, f.name)
	})
}

func (f *classFinder[M]) Description() string {
	return fmt.Sprintf("ByClass(%q)", f.name)
}

// ByClass returns a finder that matches element nodes whose class
// attribute contains name as a whitespace-separated token.
func ByClass[M any](name string) Finder[M] {
	return &classFinder[M]{name: name}
}

// textFinder matches element nodes by exact subtree text.
type textFinder[M any] struct {
	text string
}

func (f *textFinder[M]) Evaluate(root html.Node[M]) []html.Node[M] {
	return collectMatches(root, func(n html.Node[M]) bool {
		return !n.IsText() && n.PlainText() == f.text
	})
}

func (f *textFinder[M]) Description() string {
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches element nodes whose concatenated
// text content equals text exactly.
func ByText[M any](text string) Finder[M] {
	return &textFinder[M]{text: text}
}

// predicateFinder matches nodes satisfying a predicate.
type predicateFinder[M any] struct {
	fn   func(html.Node[M]) bool
	desc string
}

func (f *predicateFinder[M]) Evaluate(root html.Node[M]) []html.Node[M] {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder[M]) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate[M any](fn func(html.Node[M]) bool) Finder[M] {
	return &predicateFinder[M]{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds nodes matching 'matching' inside subtrees of
// nodes matching 'of'.
type descendantFinder[M any] struct {
	of       Finder[M]
	matching Finder[M]
}

func (f *descendantFinder[M]) Evaluate(root html.Node[M]) []html.Node[M] {
	ancestors := f.of.Evaluate(root)
	var results []html.Node[M]
	for _, ancestor := range ancestors {
		for _, child := range ancestor.Children {
			results = append(results, f.matching.Evaluate(child)...)
		}
	}
	return results
}

func (f *descendantFinder[M]) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying 'matching'
// that are proper descendants of nodes matching 'of'.
func Descendant[M any](of, matching Finder[M]) Finder[M] {
	return &descendantFinder[M]{of: of, matching: matching}
}

// HasClass reports whether n's class attribute contains name as a
// whitespace-separated token.
func HasClass[M any](n html.Node[M], name string) bool {
	value, ok := n.Attr("class")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(value) {
		if token == name {
			return true
		}
	}
	return false
}

// collectMatches performs depth-first pre-order traversal, collecting
// nodes that satisfy the predicate.
func collectMatches[M any](root html.Node[M], predicate func(html.Node[M]) bool) []html.Node[M] {
	var results []html.Node[M]
	html.Walk(root, func(n html.Node[M]) bool {
		if predicate(n) {
			results = append(results, n)
		}
		return true
	})
	return results
}
