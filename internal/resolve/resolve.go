// Package resolve turns registry declarations into a graph of resolved
// nodes. Repeated references share one *Decl and references that close a
// cycle become BackRef markers instead of being expanded again.
package resolve

import (
	"fmt"

	"github.com/grom-dev/bot-api-spec/internal/model"
	"github.com/grom-dev/bot-api-spec/internal/registry"
)

// Error aborts resolution. It can only happen when the graph is built from
// declarations that did not pass registry validation.
type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf(`failed to resolve "%s": %s`, e.Name, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type resolver struct {
	reg        *registry.Registry
	resolved   map[string]*Decl
	inProgress map[string]bool
	pending    map[string][]*BackRef
	backRefs   []*BackRef
}

// Resolve walks every declaration of reg depth first, in catalogue order.
// Either the whole graph is returned or an error, never a partial graph.
func Resolve(reg *registry.Registry) (*Graph, error) {
	r := &resolver{
		reg:      reg,
		resolved: make(map[string]*Decl, reg.Len()),
		pending:  make(map[string][]*BackRef),
	}

	g := &Graph{
		decls:  make([]*Decl, 0, reg.Len()),
		byName: make(map[string]*Decl, reg.Len()),
	}

	for decl := range reg.All() {
		r.inProgress = make(map[string]bool)

		d, err := r.resolveDecl(decl.Name)
		if err != nil {
			return nil, err
		}

		g.decls = append(g.decls, d)
		g.byName[d.Name] = d
	}

	for name, refs := range r.pending {
		if len(refs) > 0 {
			return nil, &Error{Name: name, Err: fmt.Errorf("%d back-references never completed", len(refs))}
		}
	}

	g.backRefs = r.backRefs
	return g, nil
}

func (r *resolver) resolveDecl(name string) (*Decl, error) {
	if d, ok := r.resolved[name]; ok {
		return d, nil
	}

	decl, err := r.reg.Lookup(name)
	if err != nil {
		return nil, &Error{Name: name, Err: err}
	}

	d := &Decl{
		Name:        decl.Name,
		Description: decl.Description,
		Union:       decl.IsUnion(),
	}

	r.inProgress[name] = true

	if d.Union {
		d.Variants = make([]*Node, len(decl.Variants))

		for i, v := range decl.Variants {
			n, err := r.resolveRef(v)
			if err != nil {
				return nil, err
			}

			d.Variants[i] = n
		}
	} else {
		d.Fields = make([]*Field, len(decl.Fields))

		for i, f := range decl.Fields {
			n, err := r.resolveRef(f.Type)
			if err != nil {
				return nil, err
			}

			d.Fields[i] = &Field{
				Name:         f.Name,
				Description:  f.Description,
				Required:     f.Required,
				PreSerialize: f.PreSerialize,
				Type:         n,
			}
		}
	}

	delete(r.inProgress, name)
	r.resolved[name] = d

	for _, b := range r.pending[name] {
		b.target = d
	}
	delete(r.pending, name)

	return d, nil
}

func (r *resolver) resolveRef(t model.TypeRef) (*Node, error) {
	switch t.Kind {
	case model.KindNamed:
		if r.inProgress[t.Name] {
			b := &BackRef{Name: t.Name}
			r.pending[t.Name] = append(r.pending[t.Name], b)
			r.backRefs = append(r.backRefs, b)

			return &Node{Kind: model.KindNamed, BackRef: b}, nil
		}

		d, err := r.resolveDecl(t.Name)
		if err != nil {
			return nil, err
		}

		return &Node{Kind: model.KindNamed, Decl: d}, nil
	case model.KindArray:
		if t.Items == nil {
			return nil, &Error{Name: t.String(), Err: fmt.Errorf("array without item type")}
		}

		items, err := r.resolveRef(*t.Items)
		if err != nil {
			return nil, err
		}

		return &Node{Kind: model.KindArray, Items: items}, nil
	case model.KindUnion:
		n := &Node{
			Kind:         model.KindUnion,
			Alternatives: make([]*Node, len(t.Alternatives)),
		}

		for i, a := range t.Alternatives {
			an, err := r.resolveRef(a)
			if err != nil {
				return nil, err
			}

			n.Alternatives[i] = an
		}

		return n, nil
	case model.KindLiteral:
		return &Node{Kind: model.KindLiteral, Literal: t.Literal}, nil
	}

	return &Node{Kind: t.Kind}, nil
}
