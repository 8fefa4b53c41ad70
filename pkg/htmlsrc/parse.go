// Package htmlsrc turns raw HTML bytes into a plain (tag, attrs, text,
// children) tree, delegating tokenizing and tree construction to
// golang.org/x/net/html per spec.md section 6 ("the HTML tokenizer...
// delegated to an external library"). It knows nothing about styling or
// layout; pkg/dom.BuildTree converts its RawNode tree into the owned
// *dom.Element tree.
package htmlsrc

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RawNodeType distinguishes an element from a text leaf.
type RawNodeType int

const (
	RawElement RawNodeType = iota
	RawText
)

// RawNode is one node of the parsed tree, before any element/style
// machinery has touched it.
type RawNode struct {
	Type     RawNodeType
	Tag      string
	Attrs    map[string]string
	AttrKeys []string // insertion order, mirroring the source attribute order
	Text     string
	Children []*RawNode
}

// ParseHTML parses r as an HTML document (or fragment) and returns its root
// RawNode, equivalent to x/net/html's document root but flattened into the
// shape spec.md section 6 names.
func ParseHTML(r io.Reader) (*RawNode, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return convert(root), nil
}

// ParseFragment parses r as an HTML fragment (no implicit html/head/body
// wrapper) in the context of a contextTag, e.g. "div" or "body".
func ParseFragment(r io.Reader, contextTag string) ([]*RawNode, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: contextTag, DataAtom: atom.Lookup([]byte(contextTag))}
	nodes, err := html.ParseFragment(r, ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*RawNode, len(nodes))
	for i, n := range nodes {
		out[i] = convert(n)
	}
	return out, nil
}

func convert(n *html.Node) *RawNode {
	switch n.Type {
	case html.TextNode:
		return &RawNode{Type: RawText, Text: n.Data}
	case html.DocumentNode:
		return convertChildren(n)
	default:
		raw := &RawNode{Type: RawElement, Tag: strings.ToLower(n.Data)}
		if len(n.Attr) > 0 {
			raw.Attrs = make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				key := strings.ToLower(a.Key)
				raw.AttrKeys = append(raw.AttrKeys, key)
				raw.Attrs[key] = a.Val
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.CommentNode || c.Type == html.DoctypeNode {
				continue
			}
			raw.Children = append(raw.Children, convert(c))
		}
		return raw
	}
}

// convertChildren collapses a DocumentNode into its single root element
// (normally <html>), since RawNode has no document wrapper of its own.
func convertChildren(n *html.Node) *RawNode {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return convert(c)
		}
	}
	return &RawNode{Type: RawElement, Tag: "html"}
}
