package gen

import (
	"github.com/dave/jennifer/jen"
	"github.com/grom-dev/bot-api-spec/internal/model"
	"github.com/grom-dev/bot-api-spec/internal/naming"
	"github.com/grom-dev/bot-api-spec/internal/resolve"
)

func typeName(declName string) string {
	return naming.Exported(declName)
}

func unmarshalFuncName(declName string) string {
	return idUnmarshalPrefix + typeName(declName)
}

func markerName(declName string) string {
	return idMarkerPrefix + typeName(declName)
}

func containsInlineUnion(n *resolve.Node) bool {
	switch n.Kind {
	case model.KindUnion:
		return true
	case model.KindArray:
		return containsInlineUnion(n.Items)
	}

	return false
}

// isPointerField reports whether an optional field of type n is held by
// a pointer. Slices and union interfaces use nil for absence instead.
func isPointerField(n *resolve.Node) bool {
	switch n.Kind {
	case model.KindArray:
		return false
	case model.KindNamed:
		return !n.Target().Union
	}

	return true
}

// elemType renders the Go type of n as it appears inside a container or
// as a required field. inline names the holder type of an inline union.
func elemType(n *resolve.Node, inline string) *jen.Statement {
	switch n.Kind {
	case model.KindString:
		return jen.String()
	case model.KindLiteral:
		return literalType(n.Literal)
	case model.KindBool:
		return jen.Bool()
	case model.KindInt32:
		return jen.Int32()
	case model.KindInt64:
		return jen.Int64()
	case model.KindFloat64:
		return jen.Float64()
	case model.KindArray:
		return jen.Index().Add(elemType(n.Items, inline))
	case model.KindNamed:
		return jen.Id(typeName(n.Name()))
	case model.KindUnion:
		return jen.Id(inline)
	}

	panic("unreachable")
}

// literalType renders the Go type of a literal value.
func literalType(v any) *jen.Statement {
	switch v.(type) {
	case int64:
		return jen.Int64()
	case bool:
		return jen.Bool()
	}

	return jen.String()
}

func fieldType(f *resolve.Field, inline string) *jen.Statement {
	t := elemType(f.Type, inline)

	if f.Required || !isPointerField(f.Type) {
		return t
	}

	return jen.Op("*").Add(t)
}

// decoder renders an expression of type func([]byte) (T, error) that
// decodes values of n.
func (gen *generator) decoder(n *resolve.Node, inline string) *jen.Statement {
	switch n.Kind {
	case model.KindLiteral:
		return gen.rt("Literal").Call(jen.Lit(n.Literal))
	case model.KindArray:
		return gen.rt("Slice").Call(gen.decoder(n.Items, inline))
	case model.KindNamed:
		if n.Target().Union {
			return jen.Id(unmarshalFuncName(n.Name()))
		}
	}

	return gen.rt("Decode").Types(elemType(n, inline))
}

// alternativeName names the holder field of an inline union alternative.
func alternativeName(n *resolve.Node) string {
	switch n.Kind {
	case model.KindString:
		return "String"
	case model.KindBool:
		return "Bool"
	case model.KindInt32:
		return "Int32"
	case model.KindInt64:
		return "Int64"
	case model.KindFloat64:
		return "Float64"
	}

	return typeName(n.Name())
}

func findInlineUnion(n *resolve.Node) *resolve.Node {
	switch n.Kind {
	case model.KindUnion:
		return n
	case model.KindArray:
		return findInlineUnion(n.Items)
	}

	return nil
}
