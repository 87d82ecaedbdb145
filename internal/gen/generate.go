package gen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/grom-dev/bot-api-spec/internal/naming"
	"github.com/grom-dev/bot-api-spec/internal/resolve"
	"golang.org/x/sync/errgroup"
)

const DefaultRuntime = "github.com/grom-dev/bot-api-spec/wire"

const GeneratedHeader = "Code generated by botapigen. DO NOT EDIT."

const (
	idRecv = "v"
	idData = "data"
	idObj  = "obj"
	idOut  = "out"
	idW    = "w"

	idMarshalJSON     = "MarshalJSON"
	idUnmarshalJSON   = "UnmarshalJSON"
	idUnmarshalPrefix = "Unmarshal"
	idMarkerPrefix    = "is"

	pkgJSON = "encoding/json"
)

type Options struct {
	// Package is the package name of the generated files.
	Package string

	// Runtime is the import path of the wire package.
	Runtime string

	// Workers bounds the number of declarations emitted concurrently.
	Workers int

	// Header holds extra comment lines written below the generated
	// code notice of every file.
	Header []string
}

type File struct {
	Name   string
	Source []byte
}

// Output holds one file per declaration, in catalogue order.
type Output struct {
	Files []File
}

type generator struct {
	opts  Options
	graph *resolve.Graph

	// inline maps record fields with an inline union to the name of the
	// generated holder type.
	inline map[*resolve.Field]string
}

// Generate emits the bindings of every declaration of g. Either every
// file is returned or an error, never part of the output.
func Generate(g *resolve.Graph, opts Options) (*Output, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("package name is required")
	}

	if opts.Runtime == "" {
		opts.Runtime = DefaultRuntime
	}

	if opts.Workers < 1 {
		opts.Workers = 1
	}

	gen := &generator{
		opts:   opts,
		graph:  g,
		inline: make(map[*resolve.Field]string),
	}

	if err := gen.planNames(); err != nil {
		return nil, err
	}

	decls := g.Decls()
	files := make([]File, len(decls))

	var eg errgroup.Group
	eg.SetLimit(opts.Workers)

	for i, d := range decls {
		eg.Go(func() error {
			src, err := gen.genDecl(d)
			if err != nil {
				return fmt.Errorf(`failed to generate "%s": %w`, d.Name, err)
			}

			files[i] = File{
				Name:   naming.SourceFile(d.Name),
				Source: src,
			}

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Output{Files: files}, nil
}

// planNames assigns the holder types of inline unions and checks that
// no two declarations end up with the same Go identifier or file.
func (gen *generator) planNames() error {
	taken := make(map[string]string)
	files := make(map[string]string)

	claim := func(id string, owner string) error {
		if prev, ok := taken[id]; ok {
			return fmt.Errorf(`Go identifier "%s" of %s conflicts with %s`, id, owner, prev)
		}

		taken[id] = owner
		return nil
	}

	for _, d := range gen.graph.Decls() {
		owner := fmt.Sprintf(`declaration "%s"`, d.Name)

		if err := claim(typeName(d.Name), owner); err != nil {
			return err
		}

		file := naming.SourceFile(d.Name)
		if prev, ok := files[file]; ok {
			return fmt.Errorf(`file "%s" of %s conflicts with declaration "%s"`, file, owner, prev)
		}
		files[file] = d.Name

		if d.Union {
			if err := claim(unmarshalFuncName(d.Name), owner); err != nil {
				return err
			}
			continue
		}

		fieldNames := make(map[string]string, len(d.Fields))
		for _, f := range d.Fields {
			goName := naming.Exported(f.Name)
			if goName == idMarshalJSON || goName == idUnmarshalJSON {
				return fmt.Errorf(`field "%s" of %s conflicts with method "%s"`, f.Name, owner, goName)
			}

			if prev, ok := fieldNames[goName]; ok {
				return fmt.Errorf(`fields "%s" and "%s" of %s both map to "%s"`, prev, f.Name, owner, goName)
			}
			fieldNames[goName] = f.Name

			if !containsInlineUnion(f.Type) {
				continue
			}

			name := typeName(d.Name) + naming.Exported(f.Name)
			if err := claim(name, fmt.Sprintf(`field "%s" of %s`, f.Name, owner)); err != nil {
				return err
			}

			gen.inline[f] = name
		}
	}

	return nil
}

func (gen *generator) genDecl(d *resolve.Decl) ([]byte, error) {
	f := jen.NewFile(gen.opts.Package)
	f.HeaderComment(GeneratedHeader)

	for _, h := range gen.opts.Header {
		f.HeaderComment(h)
	}

	f.ImportName(gen.opts.Runtime, "wire")

	if d.Union {
		gen.genUnion(f, d)
	} else {
		gen.genRecord(f, d)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (gen *generator) rt(name string) *jen.Statement {
	return jen.Qual(gen.opts.Runtime, name)
}

func genDocComment(g *jen.Group, text string) {
	if text == "" {
		return
	}

	for _, line := range strings.Split(text, "\n") {
		g.Comment(strings.TrimRight(line, " \t"))
	}
}

func genHandleError(g *jen.Group) {
	g.If(jen.Err().Op("!=").Nil()).Block(
		jen.Return(jen.Err()),
	)
}
