package resolve

import (
	"github.com/grom-dev/bot-api-spec/internal/model"
)

// Node is a resolved type reference.
//
// A named node points at its declaration through Decl, or through
// BackRef when the declaration was still being resolved when the
// reference was reached. Both forms refer to the same shared *Decl once
// resolution has finished.
type Node struct {
	Kind         model.Kind
	Items        *Node
	Decl         *Decl
	BackRef      *BackRef
	Alternatives []*Node
	Literal      any
}

// Target returns the declaration of a named node.
func (n *Node) Target() *Decl {
	if n.BackRef != nil {
		return n.BackRef.Target()
	}

	return n.Decl
}

// Name returns the declaration name of a named node.
func (n *Node) Name() string {
	if n.BackRef != nil {
		return n.BackRef.Name
	}

	if n.Decl != nil {
		return n.Decl.Name
	}

	return ""
}

// BackRef is a lazy handle to a declaration that was in progress when the
// reference to it was resolved. There is one BackRef per cyclic edge.
type BackRef struct {
	Name   string
	target *Decl
}

func (b *BackRef) Target() *Decl {
	return b.target
}

type Decl struct {
	Name        string
	Description string
	Union       bool
	Fields      []*Field
	Variants    []*Node
}

type Field struct {
	Name         string
	Description  string
	Required     bool
	PreSerialize bool
	Type         *Node
}

// Graph is the immutable result of resolving every declaration of a
// registry. It is safe for concurrent reads.
type Graph struct {
	decls    []*Decl
	byName   map[string]*Decl
	backRefs []*BackRef
}

// Decls returns the resolved declarations in catalogue order.
func (g *Graph) Decls() []*Decl {
	out := make([]*Decl, len(g.decls))
	copy(out, g.decls)
	return out
}

func (g *Graph) Lookup(name string) (*Decl, bool) {
	d, ok := g.byName[name]
	return d, ok
}

func (g *Graph) BackRefs() []*BackRef {
	out := make([]*BackRef, len(g.backRefs))
	copy(out, g.backRefs)
	return out
}
