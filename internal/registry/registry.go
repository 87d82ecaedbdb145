// Package registry owns the mapping from declaration names to catalogue
// declarations. Load validates the whole catalogue up front, so a
// Registry value always describes a closed, well-formed set of types.
package registry

import (
	"iter"
	"slices"
	"strings"

	"github.com/grom-dev/bot-api-spec/internal/model"
)

type Registry struct {
	decls  []model.TypeDeclaration
	byName map[string]int
}

// Load builds a registry from declarations in catalogue order. The
// declarations must not be modified afterwards.
func Load(decls []model.TypeDeclaration) (*Registry, error) {
	r := &Registry{
		decls:  slices.Clone(decls),
		byName: make(map[string]int, len(decls)),
	}

	for i, d := range r.decls {
		if _, ok := r.byName[d.Name]; ok {
			return nil, &DuplicateNameError{Name: d.Name, Index: i}
		}

		r.byName[d.Name] = i
	}

	for _, d := range r.decls {
		if err := checkShape(d); err != nil {
			return nil, err
		}
	}

	for _, d := range r.decls {
		if err := r.checkReferences(d); err != nil {
			return nil, err
		}
	}

	if err := r.checkComposition(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Registry) Lookup(name string) (model.TypeDeclaration, error) {
	i, ok := r.byName[name]
	if !ok {
		return model.TypeDeclaration{}, &NotFoundError{Name: name}
	}

	return r.decls[i], nil
}

// All yields the declarations in catalogue order. Every call starts a
// new traversal.
func (r *Registry) All() iter.Seq[model.TypeDeclaration] {
	return func(yield func(model.TypeDeclaration) bool) {
		for _, d := range r.decls {
			if !yield(d) {
				return
			}
		}
	}
}

func (r *Registry) Len() int {
	return len(r.decls)
}

func checkShape(d model.TypeDeclaration) error {
	if d.Name == "" {
		return invalidf(d.Name, "name is required")
	}

	if d.HasFields == d.HasVariants {
		return invalidf(d.Name, "exactly one of fields or variants must be declared")
	}

	if d.IsUnion() {
		if len(d.Variants) == 0 {
			return invalidf(d.Name, "union must have at least one variant")
		}

		seen := make(map[string]bool, len(d.Variants))
		for i, v := range d.Variants {
			if v.Kind != model.KindNamed {
				return invalidf(d.Name, `variant %d must be a named type, got "%s"`, i, v.String())
			}

			if seen[v.Name] {
				return invalidf(d.Name, `duplicate variant "%s"`, v.Name)
			}
			seen[v.Name] = true
		}

		return nil
	}

	seen := make(map[string]bool, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == "" {
			return invalidf(d.Name, "field name is required")
		}

		if seen[f.Name] {
			return invalidf(d.Name, `duplicate field "%s"`, f.Name)
		}
		seen[f.Name] = true

		if err := checkFieldType(d.Name, f.Name, f.Type, true); err != nil {
			return err
		}
	}

	return nil
}

func checkFieldType(decl string, field string, t model.TypeRef, top bool) error {
	switch t.Kind {
	case model.KindString, model.KindBool, model.KindInt32, model.KindInt64, model.KindFloat64:
		return nil
	case model.KindLiteral:
		if !top {
			return invalidf(decl, `field "%s": literal types are only allowed as field types`, field)
		}

		switch t.Literal.(type) {
		case string, int64, bool:
			return nil
		}
		return invalidf(decl, `field "%s": literal value %v must be a string, an int64 or a bool`, field, t.Literal)
	case model.KindNamed:
		if t.Name == "" {
			return invalidf(decl, `field "%s": empty type name`, field)
		}
		return nil
	case model.KindArray:
		if t.Items == nil {
			return invalidf(decl, `field "%s": array without item type`, field)
		}
		return checkFieldType(decl, field, *t.Items, false)
	case model.KindUnion:
		return checkInlineUnion(decl, field, t)
	}

	return invalidf(decl, `field "%s": unknown type kind "%s"`, field, t.Kind)
}

func checkInlineUnion(decl string, field string, t model.TypeRef) error {
	if len(t.Alternatives) == 0 {
		return invalidf(decl, `field "%s": union must have at least one alternative`, field)
	}

	seen := make(map[string]bool, len(t.Alternatives))
	for _, a := range t.Alternatives {
		if a.Kind == model.KindLiteral || !(a.Kind.IsScalar() || a.Kind == model.KindNamed) {
			return invalidf(decl, `field "%s": union alternative "%s" must be a scalar or a named type`, field, a.String())
		}

		key := a.String()
		if seen[key] {
			return invalidf(decl, `field "%s": duplicate union alternative "%s"`, field, key)
		}
		seen[key] = true
	}

	return nil
}

func (r *Registry) checkReferences(d model.TypeDeclaration) error {
	if d.IsUnion() {
		for _, v := range d.Variants {
			i, ok := r.byName[v.Name]
			if !ok {
				return &UnresolvedReferenceError{Decl: d.Name, Name: v.Name}
			}

			if r.decls[i].IsUnion() {
				return invalidf(d.Name, `variant "%s" must be a record, not a union`, v.Name)
			}
		}

		return nil
	}

	for _, f := range d.Fields {
		var err error

		f.Type.Walk(func(t model.TypeRef) {
			if err != nil || t.Kind != model.KindNamed {
				return
			}

			if _, ok := r.byName[t.Name]; !ok {
				err = &UnresolvedReferenceError{Decl: d.Name, Field: f.Name, Name: t.Name}
			}
		})

		if err != nil {
			return err
		}

		f.Type.Walk(func(t model.TypeRef) {
			if err != nil || t.Kind != model.KindUnion {
				return
			}

			for _, a := range t.Alternatives {
				if a.Kind == model.KindNamed && r.decls[r.byName[a.Name]].IsUnion() {
					err = invalidf(d.Name, `field "%s": union alternative "%s" must be a record, not a union`, f.Name, a.Name)
					return
				}
			}
		})

		if err != nil {
			return err
		}
	}

	return nil
}

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

// checkComposition looks for cycles made only of required fields that
// embed a record directly. Arrays, inline unions, unions and optional
// fields all admit a finite value and break such cycles.
func (r *Registry) checkComposition() error {
	state := make([]visitState, len(r.decls))
	path := make([]string, 0)

	var visit func(i int) error
	visit = func(i int) error {
		state[i] = visiting
		d := r.decls[i]

		for _, f := range d.Fields {
			if !f.Required || f.Type.Kind != model.KindNamed {
				continue
			}

			j := r.byName[f.Type.Name]
			if r.decls[j].IsUnion() {
				continue
			}

			path = append(path, d.Name+"."+f.Name)

			switch state[j] {
			case visiting:
				return &CyclicCompositionError{Path: cyclePath(path, r.decls[j].Name)}
			case unvisited:
				if err := visit(j); err != nil {
					return err
				}
			}

			path = path[:len(path)-1]
		}

		state[i] = visited
		return nil
	}

	for i := range r.decls {
		if state[i] != unvisited {
			continue
		}

		if err := visit(i); err != nil {
			return err
		}
	}

	return nil
}

// cyclePath trims the walk path to the part that starts at target.
func cyclePath(path []string, target string) []string {
	start := 0
	for i, p := range path {
		if decl, _, _ := strings.Cut(p, "."); decl == target {
			start = i
			break
		}
	}

	out := slices.Clone(path[start:])
	return append(out, target)
}
