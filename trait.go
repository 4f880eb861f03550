package record

// Trait represents an annotation applied to a schema or a schema member.
// Traits drive (de)serialization choices such as header bindings, JSON key
// names and timestamp formats. Implementations live in the traits package.
type Trait interface {
	TraitID() string
}
