package model

import (
	"fmt"
	"strings"
)

type Kind string

const (
	KindString  Kind = "string"
	KindBool    Kind = "bool"
	KindInt32   Kind = "int32"
	KindInt64   Kind = "int64"
	KindFloat64 Kind = "float64"
	KindLiteral Kind = "literal"
	KindArray   Kind = "array"
	KindNamed   Kind = "named"
	KindUnion   Kind = "union"
)

// IsScalar reports whether values of the kind are a single JSON primitive.
// Literals count as scalars: they are primitives fixed to one value.
func (k Kind) IsScalar() bool {
	switch k {
	case KindString, KindBool, KindInt32, KindInt64, KindFloat64, KindLiteral:
		return true
	}

	return false
}

// TypeRef is the type of a field, a union variant or an array item.
//
// Only the members relevant to Kind are set: Items for arrays, Name for
// named references, Alternatives for inline unions and Literal for
// literals. A literal value is a string, an int64 or a bool.
type TypeRef struct {
	Kind         Kind
	Items        *TypeRef
	Name         string
	Alternatives []TypeRef
	Literal      any
}

func Scalar(k Kind) TypeRef {
	return TypeRef{Kind: k}
}

func Named(name string) TypeRef {
	return TypeRef{Kind: KindNamed, Name: name}
}

func ArrayOf(items TypeRef) TypeRef {
	return TypeRef{Kind: KindArray, Items: &items}
}

func UnionOf(alternatives ...TypeRef) TypeRef {
	return TypeRef{Kind: KindUnion, Alternatives: alternatives}
}

func Literal(value any) TypeRef {
	return TypeRef{Kind: KindLiteral, Literal: value}
}

// Walk calls fn for r and every reference nested in it, depth first.
func (r TypeRef) Walk(fn func(TypeRef)) {
	fn(r)

	switch r.Kind {
	case KindArray:
		if r.Items != nil {
			r.Items.Walk(fn)
		}
	case KindUnion:
		for _, a := range r.Alternatives {
			a.Walk(fn)
		}
	}
}

func (r TypeRef) String() string {
	switch r.Kind {
	case KindNamed:
		return r.Name
	case KindLiteral:
		if s, ok := r.Literal.(string); ok {
			return `"` + s + `"`
		}
		return fmt.Sprint(r.Literal)
	case KindArray:
		if r.Items == nil {
			return "array<?>"
		}
		return "array<" + r.Items.String() + ">"
	case KindUnion:
		parts := make([]string, len(r.Alternatives))
		for i, a := range r.Alternatives {
			parts[i] = a.String()
		}
		return strings.Join(parts, "|")
	}

	return string(r.Kind)
}

type FieldSpec struct {
	Name        string
	Description string
	Type        TypeRef
	Required    bool

	// PreSerialize marks fields whose value is encoded to a JSON string
	// before it is embedded in the enclosing object.
	PreSerialize bool
}

// TypeDeclaration is one named entry of the catalogue: a record with
// Fields or a union with Variants.
type TypeDeclaration struct {
	Name        string
	Description string
	Fields      []FieldSpec
	Variants    []TypeRef

	// HasFields and HasVariants record which of the two keys the source
	// declared, so that an empty record can be told apart from a
	// declaration that has neither.
	HasFields   bool
	HasVariants bool
}

func Record(name string, fields ...FieldSpec) TypeDeclaration {
	return TypeDeclaration{
		Name:      name,
		Fields:    fields,
		HasFields: true,
	}
}

func Union(name string, variants ...string) TypeDeclaration {
	d := TypeDeclaration{
		Name:        name,
		Variants:    make([]TypeRef, len(variants)),
		HasVariants: true,
	}

	for i, v := range variants {
		d.Variants[i] = Named(v)
	}

	return d
}

func (d TypeDeclaration) IsUnion() bool {
	return d.HasVariants
}
