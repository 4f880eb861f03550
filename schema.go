package record

import (
	"fmt"
	"maps"
	"strings"
)

// ShapeType is the kind of value a Schema describes.
type ShapeType int

// Enumerates the ShapeType values a record member may take.
const (
	ShapeTypeString ShapeType = iota
	ShapeTypeInteger
	ShapeTypeFloat
	ShapeTypeBoolean
	ShapeTypeTimestamp
	ShapeTypeList
	ShapeTypeMap
	ShapeTypeStructure
)

var shapeTypeNames = [...]string{
	ShapeTypeString:    "string",
	ShapeTypeInteger:   "integer",
	ShapeTypeFloat:     "float",
	ShapeTypeBoolean:   "boolean",
	ShapeTypeTimestamp: "timestamp",
	ShapeTypeList:      "list",
	ShapeTypeMap:       "map",
	ShapeTypeStructure: "structure",
}

func (t ShapeType) String() string {
	if t < 0 || int(t) >= len(shapeTypeNames) {
		return fmt.Sprintf("ShapeType(%d)", int(t))
	}
	return shapeTypeNames[t]
}

// ShapeID fields of a shape ID, "namespace#Name$member".
type ShapeID struct {
	Namespace, Name, Member string
}

func stoid(s string) ShapeID {
	ns, n, _ := strings.Cut(s, "#")
	n, m, _ := strings.Cut(n, "$")
	return ShapeID{ns, n, m}
}

// String returns the absolute shape ID.
func (id ShapeID) String() string {
	var sb strings.Builder
	if id.Namespace != "" {
		sb.WriteString(id.Namespace)
		sb.WriteByte('#')
	}
	sb.WriteString(id.Name)
	if id.Member != "" {
		sb.WriteByte('$')
		sb.WriteString(id.Member)
	}
	return sb.String()
}

// Schema describes one record type (or one member of a record type).
//
// Structure schemas keep their members in declaration order, which is the
// order fields are serialized and headers are emitted in. List schemas carry
// an element schema, map schemas carry a value schema. Schemas are immutable
// once built and may be shared between goroutines.
type Schema struct {
	id  ShapeID
	typ ShapeType

	members []*Schema      // declared order
	index   map[string]int // member name -> position in members
	elem    *Schema        // list member / map value

	traits map[string]Trait // trait ID -> trait

	// the shape a member schema was created from, nil for non-members
	target *Schema
}

// SchemaOptions configures a new Schema.
type SchemaOptions struct {
	members []*Schema
	elem    *Schema
	traits  []Trait
}

// WithMember adds a member targeting the given Schema.
//
// Traits provided for the member here override any traits on the target if
// there is collision.
func WithMember(name string, target *Schema, traits ...Trait) func(*SchemaOptions) {
	return func(o *SchemaOptions) {
		o.members = append(o.members, newMember(name, target, traits))
	}
}

// WithElement sets the element schema of a list, or the value schema of a
// map.
func WithElement(target *Schema, traits ...Trait) func(*SchemaOptions) {
	return func(o *SchemaOptions) {
		o.elem = newMember("member", target, traits)
	}
}

// WithTraits adds traits to the Schema.
func WithTraits(traits ...Trait) func(*SchemaOptions) {
	return func(o *SchemaOptions) {
		o.traits = append(o.traits, traits...)
	}
}

func newMember(name string, target *Schema, traits []Trait) *Schema {
	if target.target != nil {
		target = target.target
	}

	m := &Schema{
		id:      ShapeID{Member: name},
		typ:     target.typ,
		members: target.members,
		index:   target.index,
		elem:    target.elem,
		traits:  maps.Clone(target.traits),
		target:  target,
	}
	if m.traits == nil {
		m.traits = map[string]Trait{}
	}
	for _, t := range traits {
		m.traits[t.TraitID()] = t
	}
	return m
}

// NewSchema returns a schema with the provided members and traits.
//
// Member names must be unique within a structure, NewSchema panics on a
// duplicate since that can only be a bug in the model that built it.
func NewSchema(id string, typ ShapeType, opts ...func(*SchemaOptions)) *Schema {
	var o SchemaOptions
	for _, opt := range opts {
		opt(&o)
	}

	sid := stoid(id)
	index := make(map[string]int, len(o.members))
	for i, m := range o.members {
		if _, dup := index[m.id.Member]; dup {
			panic(fmt.Sprintf("record: duplicate member %q in %s", m.id.Member, sid))
		}
		m.id.Namespace = sid.Namespace
		m.id.Name = sid.Name
		index[m.id.Member] = i
	}
	if o.elem != nil {
		o.elem.id.Namespace = sid.Namespace
		o.elem.id.Name = sid.Name
	}

	traits := make(map[string]Trait, len(o.traits))
	for _, t := range o.traits {
		traits[t.TraitID()] = t
	}

	return &Schema{
		id:      sid,
		typ:     typ,
		members: o.members,
		index:   index,
		elem:    o.elem,
		traits:  traits,
	}
}

// ID returns the shape ID for this schema.
func (s *Schema) ID() ShapeID {
	return s.id
}

// Type returns the schema's type.
func (s *Schema) Type() ShapeType {
	return s.typ
}

// Target returns the shape a member schema refers to. For schemas that are
// not members it returns s.
func (s *Schema) Target() *Schema {
	if s.target != nil {
		return s.target
	}
	return s
}

// Member returns the named member from the schema, or nil.
func (s *Schema) Member(name string) *Schema {
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return s.members[i]
}

// Members returns the structure members in declaration order.
func (s *Schema) Members() []*Schema {
	return s.members
}

// Element returns the element schema of a list or the value schema of a map.
func (s *Schema) Element() *Schema {
	return s.elem
}

// MemberName returns the member name of a member schema.
func (s *Schema) MemberName() string {
	return s.id.Member
}

func (s *Schema) memberIndex(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// SchemaTrait returns the target trait on the schema if it exists.
func SchemaTrait[T Trait](s *Schema) (T, bool) {
	var trait T

	opaque, ok := s.traits[trait.TraitID()]
	if !ok {
		return trait, false
	}

	tt, ok := opaque.(T)
	return tt, ok
}

// HasTrait reports whether the schema carries a trait with the given ID.
func (s *Schema) HasTrait(id string) bool {
	_, ok := s.traits[id]
	return ok
}
