package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/grom-dev/bot-api-spec/internal/resolve"
)

// genUnion emits a union as a sealed interface. Every variant record
// implements it through a marker method, and UnmarshalX picks the first
// variant, in declaration order, that decodes the payload.
func (gen *generator) genUnion(f *jen.File, d *resolve.Decl) {
	name := typeName(d.Name)
	marker := markerName(d.Name)

	genDocComment(f.Group, d.Description)
	f.Type().Id(name).Interface(
		jen.Qual(pkgJSON, "Marshaler"),
		jen.Id(marker).Params(),
	)
	f.Empty()

	for _, v := range d.Variants {
		f.Func().Params(jen.Id(typeName(v.Name()))).Id(marker).Params().Block()
	}
	f.Empty()

	f.Comment(fmt.Sprintf("%s decodes data as the first variant of %s it matches.", unmarshalFuncName(d.Name), name))
	f.Func().Id(unmarshalFuncName(d.Name)).Params(
		jen.Id(idData).Index().Byte(),
	).Params(
		jen.Id(name),
		jen.Error(),
	).Block(
		jen.Return(gen.rt("FirstMatch").CallFunc(func(g *jen.Group) {
			g.Lit(d.Name)
			g.Id(idData)

			for _, v := range d.Variants {
				g.Add(gen.rt("Variant")).Types(jen.Id(name)).Call(gen.decoder(v, ""))
			}
		})),
	)
}
