// Package model loads record schemas from YAML model files.
//
// A model file names a namespace and a list of shapes:
//
//	namespace: com.amazonaws.alexaforbusiness
//	shapes:
//	  - name: CreateGatewayGroupRequest
//	    type: structure
//	    target: AlexaForBusiness.CreateGatewayGroup
//	    members:
//	      - {name: Name, target: String, required: true}
//	      - {name: ClientRequestToken, target: String, idempotencyToken: true}
//	      - {name: Tags, target: TagList}
//	  - {name: TagList, type: list, member: Tag}
//
// Member targets name another shape of the file or one of the built-in
// scalars String, Integer, Float, Boolean and Timestamp.
package model

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/prelude"
	"github.com/awslabs/record-go/traits"
)

// File is the YAML form of a model file.
type File struct {
	Namespace string  `yaml:"namespace"`
	Shapes    []Shape `yaml:"shapes"`
}

// Shape is one shape declaration.
type Shape struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// Operation the structure is sent to, as Service.Operation.
	Target string `yaml:"target,omitempty"`

	// Structure members, in order.
	Members []Member `yaml:"members,omitempty"`

	// List element or map value shape.
	Member string `yaml:"member,omitempty"`
}

// Member is one structure member declaration.
type Member struct {
	Name             string `yaml:"name"`
	Target           string `yaml:"target"`
	Required         bool   `yaml:"required,omitempty"`
	Header           string `yaml:"header,omitempty"`
	PrefixHeaders    string `yaml:"prefixHeaders,omitempty"`
	Query            string `yaml:"query,omitempty"`
	Label            bool   `yaml:"label,omitempty"`
	JSONName         string `yaml:"jsonName,omitempty"`
	TimestampFormat  string `yaml:"timestampFormat,omitempty"`
	IdempotencyToken bool   `yaml:"idempotencyToken,omitempty"`
	ResponseCode     bool   `yaml:"responseCode,omitempty"`
	Sensitive        bool   `yaml:"sensitive,omitempty"`
}

// Model is a loaded set of schemas.
type Model struct {
	Namespace string

	shapes map[string]*record.Schema
	names  []string
}

// Shape returns the schema of the named shape. Names are looked up in the
// model first and then among the built-in scalars.
func (m *Model) Shape(name string) (*record.Schema, bool) {
	if s, ok := m.shapes[name]; ok {
		return s, true
	}
	return prelude.ByName(name)
}

// Shapes returns the names of the declared shapes in sorted order.
func (m *Model) Shapes() []string {
	return append([]string(nil), m.names...)
}

// LoadFile reads and builds the model file at path.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model, %w", err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load model %s, %w", path, err)
	}
	return m, nil
}

// Load reads and builds a model. Unknown keys in the file are errors.
func Load(r io.Reader) (*Model, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty model")
		}
		return nil, fmt.Errorf("failed to parse model, %w", err)
	}
	return Build(&f)
}

// Parse builds a model from YAML bytes.
func Parse(p []byte) (*Model, error) {
	return Load(bytes.NewReader(p))
}

// Build validates f and builds its schemas. Every problem found is reported,
// combined with go.uber.org/multierr.
func Build(f *File) (*Model, error) {
	if f.Namespace == "" {
		return nil, fmt.Errorf("model has no namespace")
	}

	b := &builder{
		ns:     f.Namespace,
		decls:  map[string]*Shape{},
		built:  map[string]*record.Schema{},
		active: map[string]bool{},
	}

	var err error
	for i := range f.Shapes {
		s := &f.Shapes[i]
		if _, dup := b.decls[s.Name]; dup {
			err = multierr.Append(err, fmt.Errorf("shape %s declared more than once", s.Name))
			continue
		}
		if _, builtin := prelude.ByName(s.Name); builtin {
			err = multierr.Append(err, fmt.Errorf("shape %s shadows a built-in shape", s.Name))
			continue
		}
		b.decls[s.Name] = s
		err = multierr.Append(err, validateShape(s))
	}
	if err != nil {
		return nil, err
	}

	m := &Model{Namespace: f.Namespace, shapes: map[string]*record.Schema{}}
	for name := range b.decls {
		s, buildErr := b.build(name)
		if buildErr != nil {
			return nil, buildErr
		}
		m.shapes[name] = s
		m.names = append(m.names, name)
	}
	sort.Strings(m.names)
	return m, nil
}

var shapeTypes = map[string]record.ShapeType{
	"string":    record.ShapeTypeString,
	"integer":   record.ShapeTypeInteger,
	"long":      record.ShapeTypeInteger,
	"float":     record.ShapeTypeFloat,
	"double":    record.ShapeTypeFloat,
	"boolean":   record.ShapeTypeBoolean,
	"timestamp": record.ShapeTypeTimestamp,
	"list":      record.ShapeTypeList,
	"map":       record.ShapeTypeMap,
	"structure": record.ShapeTypeStructure,
}

func validateShape(s *Shape) error {
	if s.Name == "" {
		return fmt.Errorf("shape with no name")
	}

	typ, ok := shapeTypes[strings.ToLower(s.Type)]
	if !ok {
		return fmt.Errorf("shape %s has unknown type %q", s.Name, s.Type)
	}

	var err error
	switch typ {
	case record.ShapeTypeStructure:
		if s.Member != "" {
			err = multierr.Append(err, fmt.Errorf("structure %s must declare members, not member", s.Name))
		}
		if s.Target != "" {
			if svc, op, ok := strings.Cut(s.Target, "."); !ok || svc == "" || op == "" {
				err = multierr.Append(err, fmt.Errorf("structure %s target %q is not Service.Operation", s.Name, s.Target))
			}
		}
		seen := map[string]bool{}
		for _, m := range s.Members {
			if m.Name == "" || m.Target == "" {
				err = multierr.Append(err, fmt.Errorf("member of %s needs a name and a target", s.Name))
				continue
			}
			if seen[m.Name] {
				err = multierr.Append(err, fmt.Errorf("member %s of %s declared more than once", m.Name, s.Name))
			}
			seen[m.Name] = true
			err = multierr.Append(err, validateMember(s.Name, m))
		}
	case record.ShapeTypeList, record.ShapeTypeMap:
		if s.Member == "" {
			err = multierr.Append(err, fmt.Errorf("%s %s must declare member", s.Type, s.Name))
		}
		if len(s.Members) > 0 || s.Target != "" {
			err = multierr.Append(err, fmt.Errorf("%s %s cannot declare members or target", s.Type, s.Name))
		}
	default:
		if s.Member != "" || len(s.Members) > 0 || s.Target != "" {
			err = multierr.Append(err, fmt.Errorf("%s %s cannot declare members or target", s.Type, s.Name))
		}
	}
	return err
}

func validateMember(shape string, m Member) error {
	var err error
	switch m.TimestampFormat {
	case "", traits.TimestampFormatDateTime, traits.TimestampFormatHTTPDate, traits.TimestampFormatEpochSeconds:
	default:
		err = multierr.Append(err, fmt.Errorf("member %s of %s has unknown timestampFormat %q", m.Name, shape, m.TimestampFormat))
	}

	bindings := 0
	for _, set := range []bool{m.Header != "", m.PrefixHeaders != "", m.Query != "", m.Label, m.ResponseCode} {
		if set {
			bindings++
		}
	}
	if bindings > 1 {
		err = multierr.Append(err, fmt.Errorf("member %s of %s is bound to more than one HTTP location", m.Name, shape))
	}
	return err
}

type builder struct {
	ns     string
	decls  map[string]*Shape
	built  map[string]*record.Schema
	active map[string]bool
}

func (b *builder) build(name string) (*record.Schema, error) {
	if s, ok := b.built[name]; ok {
		return s, nil
	}
	if s, ok := prelude.ByName(name); ok {
		return s, nil
	}

	decl, ok := b.decls[name]
	if !ok {
		return nil, fmt.Errorf("unknown shape %s", name)
	}
	if b.active[name] {
		return nil, fmt.Errorf("shape %s refers to itself", name)
	}
	b.active[name] = true
	defer delete(b.active, name)

	id := b.ns + "#" + name
	typ := shapeTypes[strings.ToLower(decl.Type)]

	var opts []func(*record.SchemaOptions)
	switch typ {
	case record.ShapeTypeStructure:
		if decl.Target != "" {
			svc, op, _ := strings.Cut(decl.Target, ".")
			opts = append(opts, record.WithTraits(&traits.OperationTarget{Service: svc, Operation: op}))
		}
		for _, m := range decl.Members {
			target, err := b.build(m.Target)
			if err != nil {
				return nil, fmt.Errorf("member %s of %s, %w", m.Name, name, err)
			}
			memberTraits, err := m.traits(target)
			if err != nil {
				return nil, fmt.Errorf("member %s of %s, %w", m.Name, name, err)
			}
			opts = append(opts, record.WithMember(m.Name, target, memberTraits...))
		}
	case record.ShapeTypeList, record.ShapeTypeMap:
		elem, err := b.build(decl.Member)
		if err != nil {
			return nil, fmt.Errorf("member of %s, %w", name, err)
		}
		opts = append(opts, record.WithElement(elem))
	}

	s := record.NewSchema(id, typ, opts...)
	b.built[name] = s
	return s, nil
}

func (m Member) traits(target *record.Schema) ([]record.Trait, error) {
	var ts []record.Trait
	if m.Required {
		ts = append(ts, &traits.Required{})
	}
	if m.Sensitive {
		ts = append(ts, &traits.Sensitive{})
	}
	if m.JSONName != "" {
		ts = append(ts, &traits.JSONName{Name: m.JSONName})
	}
	if m.TimestampFormat != "" {
		if target.Type() != record.ShapeTypeTimestamp &&
			!(target.Type() == record.ShapeTypeList && target.Element().Type() == record.ShapeTypeTimestamp) {
			return nil, fmt.Errorf("timestampFormat on %v target", target.Type())
		}
		ts = append(ts, &traits.TimestampFormat{Format: m.TimestampFormat})
	}
	if m.IdempotencyToken {
		if target.Type() != record.ShapeTypeString {
			return nil, fmt.Errorf("idempotencyToken on %v target", target.Type())
		}
		ts = append(ts, &traits.IdempotencyToken{})
	}

	switch {
	case m.Header != "":
		switch target.Type() {
		case record.ShapeTypeStructure, record.ShapeTypeMap:
			return nil, fmt.Errorf("header binding on %v target", target.Type())
		}
		ts = append(ts, &traits.HTTPHeader{Name: m.Header})
	case m.PrefixHeaders != "":
		if target.Type() != record.ShapeTypeMap {
			return nil, fmt.Errorf("prefixHeaders binding on %v target", target.Type())
		}
		ts = append(ts, &traits.HTTPPrefixHeaders{Prefix: m.PrefixHeaders})
	case m.Query != "":
		switch target.Type() {
		case record.ShapeTypeStructure, record.ShapeTypeMap:
			return nil, fmt.Errorf("query binding on %v target", target.Type())
		}
		ts = append(ts, &traits.HTTPQuery{Name: m.Query})
	case m.Label:
		switch target.Type() {
		case record.ShapeTypeStructure, record.ShapeTypeMap, record.ShapeTypeList:
			return nil, fmt.Errorf("label binding on %v target", target.Type())
		}
		ts = append(ts, &traits.HTTPLabel{})
	case m.ResponseCode:
		if target.Type() != record.ShapeTypeInteger {
			return nil, fmt.Errorf("responseCode binding on %v target", target.Type())
		}
		ts = append(ts, &traits.HTTPResponseCode{})
	}
	return ts, nil
}
