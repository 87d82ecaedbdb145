package catalogue

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/grom-dev/bot-api-spec/internal/model"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

type File struct {
	Declarations []Declaration `yaml:"declarations" json:"declarations"`
}

type Declaration struct {
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description" json:"description"`
	Fields      *[]Field   `yaml:"fields" json:"fields"`
	Variants    *[]TypeRef `yaml:"variants" json:"variants"`
}

type Field struct {
	Name         string  `yaml:"name" json:"name"`
	Description  string  `yaml:"description" json:"description"`
	Type         TypeRef `yaml:"type" json:"type"`
	Required     bool    `yaml:"required" json:"required"`
	PreSerialize bool    `yaml:"preSerialize" json:"preSerialize"`
}

// TypeRef decodes the type reference syntax of catalogue files: a scalar
// keyword or a declaration name, or a single-key mapping with one of the
// keys array, union, literal or named.
type TypeRef struct {
	model.TypeRef
}

var scalarKinds = map[string]model.Kind{
	"string":  model.KindString,
	"bool":    model.KindBool,
	"boolean": model.KindBool,
	"int32":   model.KindInt32,
	"int53":   model.KindInt64,
	"int64":   model.KindInt64,
	"integer": model.KindInt64,
	"float":   model.KindFloat64,
	"float64": model.KindFloat64,
}

func (r *TypeRef) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}

	ref, err := parseTypeRef(v)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	r.TypeRef = ref
	return nil
}

func (r *TypeRef) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	ref, err := parseTypeRef(v)
	if err != nil {
		return err
	}

	r.TypeRef = ref
	return nil
}

// ReadFiles reads the declarations of every catalogue file in order.
func ReadFiles(filePaths []string) ([]model.TypeDeclaration, error) {
	decls := make([]model.TypeDeclaration, 0)

	for _, p := range filePaths {
		file, err := readFile(p)
		if err != nil {
			return nil, err
		}

		for _, d := range file.Declarations {
			decls = append(decls, toModel(d))
		}
	}

	return decls, nil
}

// Parse decodes catalogue data. JSON and JSONC data is recognized by
// the file extension in name; everything else is read as YAML.
func Parse(name string, data []byte) (*File, error) {
	var file File

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	}

	return &file, nil
}

func readFile(filePath string) (*File, error) {
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read catalogue file "%s": %w`, filePath, err)
	}

	file, err := Parse(filePath, fileData)
	if err != nil {
		return nil, fmt.Errorf(`failed to unmarshal catalogue file "%s": %w`, filePath, err)
	}

	return file, nil
}

func toModel(d Declaration) model.TypeDeclaration {
	decl := model.TypeDeclaration{
		Name:        d.Name,
		Description: strings.TrimSpace(d.Description),
	}

	if d.Fields != nil {
		decl.HasFields = true
		decl.Fields = make([]model.FieldSpec, len(*d.Fields))

		for i, f := range *d.Fields {
			decl.Fields[i] = model.FieldSpec{
				Name:         f.Name,
				Description:  strings.TrimSpace(f.Description),
				Type:         f.Type.TypeRef,
				Required:     f.Required,
				PreSerialize: f.PreSerialize,
			}
		}
	}

	if d.Variants != nil {
		decl.HasVariants = true
		decl.Variants = make([]model.TypeRef, len(*d.Variants))

		for i, v := range *d.Variants {
			decl.Variants[i] = v.TypeRef
		}
	}

	return decl
}

func parseTypeRef(v any) (model.TypeRef, error) {
	switch v := v.(type) {
	case string:
		if v == "" {
			return model.TypeRef{}, errors.New("empty type reference")
		}

		if k, ok := scalarKinds[v]; ok {
			return model.Scalar(k), nil
		}

		return model.Named(v), nil
	case map[string]any:
		if len(v) != 1 {
			return model.TypeRef{}, fmt.Errorf("type reference must have exactly one key, got %d", len(v))
		}

		for key, value := range v {
			return parseTypeRefKey(key, value)
		}
	}

	return model.TypeRef{}, fmt.Errorf(`unsupported type reference "%v"`, v)
}

func parseTypeRefKey(key string, value any) (model.TypeRef, error) {
	switch key {
	case "array":
		items, err := parseTypeRef(value)
		if err != nil {
			return model.TypeRef{}, fmt.Errorf("array items: %w", err)
		}

		return model.ArrayOf(items), nil
	case "union":
		list, ok := value.([]any)
		if !ok {
			return model.TypeRef{}, errors.New("union must be a list of type references")
		}

		alternatives := make([]model.TypeRef, len(list))
		for i, a := range list {
			alt, err := parseTypeRef(a)
			if err != nil {
				return model.TypeRef{}, fmt.Errorf("union alternative %d: %w", i, err)
			}

			alternatives[i] = alt
		}

		return model.UnionOf(alternatives...), nil
	case "literal":
		lit, err := parseLiteral(value)
		if err != nil {
			return model.TypeRef{}, err
		}

		return model.Literal(lit), nil
	case "named":
		s, ok := value.(string)
		if !ok || s == "" {
			return model.TypeRef{}, fmt.Errorf(`named reference must be a non-empty string, got "%v"`, value)
		}

		return model.Named(s), nil
	}

	return model.TypeRef{}, fmt.Errorf(`unknown type reference key "%s"`, key)
}

// parseLiteral normalises a literal value to a string, an int64 or a
// bool. JSON catalogues decode numbers as float64.
func parseLiteral(value any) (any, error) {
	switch v := value.(type) {
	case string, bool:
		return v, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v == math.Trunc(v) && math.Abs(v) <= 1<<53 {
			return int64(v), nil
		}
	}

	return nil, fmt.Errorf(`literal must be a string, an integer or a boolean, got "%v"`, value)
}
