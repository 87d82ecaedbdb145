package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/grom-dev/bot-api-spec/internal/model"
	"github.com/grom-dev/bot-api-spec/internal/naming"
	"github.com/grom-dev/bot-api-spec/internal/resolve"
)

func (gen *generator) genRecord(f *jen.File, d *resolve.Decl) {
	genRecordStruct(f, d, gen.inline)
	gen.genRecordMarshal(f, d)
	gen.genRecordUnmarshal(f, d)

	for _, field := range d.Fields {
		if inline, ok := gen.inline[field]; ok {
			gen.genInlineUnion(f, d, field, inline)
		}
	}
}

func genRecordStruct(f *jen.File, d *resolve.Decl, inline map[*resolve.Field]string) {
	genDocComment(f.Group, d.Description)

	f.Type().Id(typeName(d.Name)).StructFunc(func(g *jen.Group) {
		for _, field := range d.Fields {
			// Literals are constants of the type, not data.
			if field.Type.Kind == model.KindLiteral {
				continue
			}

			genDocComment(g, field.Description)

			tag := field.Name
			if !field.Required {
				tag += ",omitempty"
			}

			g.Id(naming.Exported(field.Name)).
				Add(fieldType(field, inline[field])).
				Tag(map[string]string{"json": tag})
		}
	})
	f.Empty()
}

func (gen *generator) genRecordMarshal(f *jen.File, d *resolve.Decl) {
	f.Func().Params(
		jen.Id(idRecv).Id(typeName(d.Name)),
	).Id(idMarshalJSON).Params().Params(
		jen.Index().Byte(),
		jen.Error(),
	).BlockFunc(func(g *jen.Group) {
		g.Var().Id(idW).Add(gen.rt("ObjectWriter"))

		for _, field := range d.Fields {
			gen.genWriteField(g, d, field)
		}

		g.Return(jen.Id(idW).Dot("Bytes").Call())
	})
	f.Empty()
}

func (gen *generator) genWriteField(g *jen.Group, d *resolve.Decl, field *resolve.Field) {
	method := "Field"
	if field.PreSerialize {
		method = "PreSerialized"
	}

	write := func(value jen.Code) *jen.Statement {
		return jen.Id(idW).Dot(method).Call(jen.Lit(field.Name), value)
	}

	if field.Type.Kind == model.KindLiteral {
		g.Add(write(jen.Lit(field.Type.Literal)))
		return
	}

	value := func() *jen.Statement {
		return jen.Id(idRecv).Dot(naming.Exported(field.Name))
	}

	if !field.Required {
		g.If(value().Op("!=").Nil()).Block(write(value()))
		return
	}

	switch {
	case field.Type.Kind == model.KindArray:
		// A nil slice is written as an empty array, never as null.
		g.If(value().Op("==").Nil()).Block(
			write(elemType(field.Type, gen.inline[field]).Values()),
		).Else().Block(
			write(value()),
		)
	case field.Type.Kind == model.KindNamed && field.Type.Target().Union:
		g.If(value().Op("==").Nil()).Block(
			jen.Return(jen.Nil(), gen.rt("MissingValue").Call(jen.Lit(d.Name), jen.Lit(field.Name))),
		)
		g.Add(write(value()))
	default:
		g.Add(write(value()))
	}
}

func (gen *generator) genRecordUnmarshal(f *jen.File, d *resolve.Decl) {
	name := typeName(d.Name)

	f.Func().Params(
		jen.Id(idRecv).Op("*").Id(name),
	).Id(idUnmarshalJSON).Params(
		jen.Id(idData).Index().Byte(),
	).Error().BlockFunc(func(g *jen.Group) {
		if len(d.Fields) == 0 {
			g.List(jen.Id("_"), jen.Err()).Op(":=").Add(gen.rt("ParseObject")).Call(jen.Lit(d.Name), jen.Id(idData))
			g.Return(jen.Err())
			return
		}

		g.List(jen.Id(idObj), jen.Err()).Op(":=").Add(gen.rt("ParseObject")).Call(jen.Lit(d.Name), jen.Id(idData))
		genHandleError(g)
		g.Empty()

		g.Var().Id(idOut).Id(name)

		for _, field := range d.Fields {
			g.If(
				jen.Err().Op(":=").Add(gen.readField(field, gen.inline[field])),
				jen.Err().Op("!=").Nil(),
			).Block(
				jen.Return(jen.Err()),
			)
		}

		g.Empty()
		g.Op("*").Id(idRecv).Op("=").Id(idOut)
		g.Return(jen.Nil())
	})
	f.Empty()
}

// readField renders the wire call that decodes one field into out.
func (gen *generator) readField(field *resolve.Field, inline string) *jen.Statement {
	dec := gen.decoder(field.Type, inline)
	if field.PreSerialize {
		dec = gen.rt("PreSerialized").Call(dec)
	}

	var fn string
	switch {
	case field.Required:
		fn = "Required"
	case isPointerField(field.Type) && field.Type.Kind != model.KindLiteral:
		fn = "OptionalPtr"
	default:
		fn = "Optional"
	}

	var dst jen.Code
	if field.Type.Kind == model.KindLiteral {
		dst = jen.New(literalType(field.Type.Literal))
	} else {
		dst = jen.Op("&").Id(idOut).Dot(naming.Exported(field.Name))
	}

	return gen.rt(fn).Call(jen.Id(idObj), jen.Lit(field.Name), dec, dst)
}

// genInlineUnion emits the holder type of an inline union: one pointer
// field per alternative, at most one of which is set.
func (gen *generator) genInlineUnion(f *jen.File, d *resolve.Decl, field *resolve.Field, name string) {
	u := findInlineUnion(field.Type)

	f.Comment(fmt.Sprintf(`%s holds one alternative of field "%s" of %s.`, name, field.Name, typeName(d.Name)))
	f.Type().Id(name).StructFunc(func(g *jen.Group) {
		for _, a := range u.Alternatives {
			g.Id(alternativeName(a)).Op("*").Add(elemType(a, name))
		}
	})
	f.Empty()

	f.Func().Params(
		jen.Id(idRecv).Id(name),
	).Id(idMarshalJSON).Params().Params(
		jen.Index().Byte(),
		jen.Error(),
	).Block(
		jen.Switch().BlockFunc(func(g *jen.Group) {
			for _, a := range u.Alternatives {
				alt := alternativeName(a)
				g.Case(jen.Id(idRecv).Dot(alt).Op("!=").Nil()).Block(
					jen.Return(jen.Qual(pkgJSON, "Marshal").Call(jen.Id(idRecv).Dot(alt))),
				)
			}
		}),
		jen.Return(jen.Nil(), gen.rt("EmptyUnion").Call(jen.Lit(name))),
	)
	f.Empty()

	f.Func().Params(
		jen.Id(idRecv).Op("*").Id(name),
	).Id(idUnmarshalJSON).Params(
		jen.Id(idData).Index().Byte(),
	).Error().BlockFunc(func(g *jen.Group) {
		g.Var().Id(idOut).Id(name)

		g.If(
			jen.Err().Op(":=").Add(gen.rt("FirstAlternative")).CallFunc(func(g *jen.Group) {
				g.Lit(name)
				g.Id(idData)

				for _, a := range u.Alternatives {
					g.Add(gen.rt("Alternative")).Call(
						gen.decoder(a, name),
						jen.Op("&").Id(idOut).Dot(alternativeName(a)),
					)
				}
			}),
			jen.Err().Op("!=").Nil(),
		).Block(
			jen.Return(jen.Err()),
		)

		g.Empty()
		g.Op("*").Id(idRecv).Op("=").Id(idOut)
		g.Return(jen.Nil())
	})
}
