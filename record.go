package record

import (
	"errors"
	"fmt"
	"time"
)

// Record holds the members of one structure schema, each with its own
// presence flag.
//
// Every member starts unset. Reading an unset member yields the zero value of
// its kind; absence is only observable through IsSet. Setting a member never
// changes the presence of any other member.
//
// Member values are held as:
//
//	string     string
//	integer    int64
//	float      float64
//	boolean    bool
//	timestamp  time.Time
//	list       []any
//	map        map[string]any
//	structure  *Record
//
// A Record is owned by the call path that built it and must not be mutated
// from multiple goroutines without external synchronization.
type Record struct {
	schema *Schema
	values []any
	set    bitset
}

// New returns an empty record for the structure schema s. New panics if s is
// not a structure.
func New(s *Schema) *Record {
	s = s.Target()
	if s.typ != ShapeTypeStructure {
		panic(fmt.Sprintf("record: %s is a %v, not a structure", s.id, s.typ))
	}
	return &Record{
		schema: s,
		values: make([]any, len(s.members)),
		set:    newBitset(len(s.members)),
	}
}

// Schema returns the structure schema of the record.
func (r *Record) Schema() *Schema {
	return r.schema
}

// IsSet reports whether the named member was explicitly set. Unknown names
// report false.
func (r *Record) IsSet(name string) bool {
	i, ok := r.schema.memberIndex(name)
	return ok && r.set.has(i)
}

// Get returns the value of the named member, or the zero value of its kind
// when unset. Unknown names return nil.
func (r *Record) Get(name string) any {
	i, ok := r.schema.memberIndex(name)
	if !ok {
		return nil
	}
	if !r.set.has(i) {
		return zeroValue(r.schema.members[i])
	}
	return r.values[i]
}

// GetString returns a string member, "" when unset.
func (r *Record) GetString(name string) string {
	v, _ := r.Get(name).(string)
	return v
}

// GetInt64 returns an integer member, 0 when unset.
func (r *Record) GetInt64(name string) int64 {
	v, _ := r.Get(name).(int64)
	return v
}

// GetFloat64 returns a float member, 0 when unset.
func (r *Record) GetFloat64(name string) float64 {
	v, _ := r.Get(name).(float64)
	return v
}

// GetBool returns a boolean member, false when unset.
func (r *Record) GetBool(name string) bool {
	v, _ := r.Get(name).(bool)
	return v
}

// GetTime returns a timestamp member, the zero time when unset.
func (r *Record) GetTime(name string) time.Time {
	v, _ := r.Get(name).(time.Time)
	return v
}

// GetList returns a list member, nil when unset. The slice is shared with the
// record.
func (r *Record) GetList(name string) []any {
	v, _ := r.Get(name).([]any)
	return v
}

// GetMap returns a map member, nil when unset. The map is shared with the
// record.
func (r *Record) GetMap(name string) map[string]any {
	v, _ := r.Get(name).(map[string]any)
	return v
}

// GetRecord returns a nested structure member. When unset it returns a new
// empty record of the member's shape, which is not attached to r.
func (r *Record) GetRecord(name string) *Record {
	v, _ := r.Get(name).(*Record)
	return v
}

// Set stores v in the named member and marks it set.
//
// Values are converted to the member's representation: any Go integer type
// for integers, float32 or float64 (or an integer) for floats, any slice for
// lists, any map keyed by string for maps. Timestamps are truncated to the
// precision of their format, whole seconds for http-date and milliseconds
// otherwise, so a record reads back from its document unchanged. Containers
// and nested records are copied, so the record never aliases caller owned
// values.
func (r *Record) Set(name string, v any) error {
	i, m, err := r.member(name)
	if err != nil {
		return err
	}

	nv, err := normalize(m, v)
	if err != nil {
		return r.invalid(name, err)
	}

	r.values[i] = nv
	r.set.add(i)
	return nil
}

// MustSet is like Set but panics on error. It returns r so setters can be
// chained the way generated With methods are.
func (r *Record) MustSet(name string, v any) *Record {
	if err := r.Set(name, v); err != nil {
		panic(err)
	}
	return r
}

// Append adds item to the end of the named list member. Appending to an unset
// list creates it and marks it set.
func (r *Record) Append(name string, item any) error {
	i, m, err := r.member(name)
	if err != nil {
		return err
	}
	if m.typ != ShapeTypeList {
		return r.invalid(name, fmt.Errorf("append on %v member", m.typ))
	}

	nv, err := normalize(m.elem, item)
	if err != nil {
		return r.invalid(name, err)
	}

	list, _ := r.values[i].([]any)
	if !r.set.has(i) || list == nil {
		list = []any{}
	}
	r.values[i] = append(list, nv)
	r.set.add(i)
	return nil
}

// Put stores item under key in the named map member. Putting into an unset
// map creates it and marks it set.
func (r *Record) Put(name, key string, item any) error {
	i, m, err := r.member(name)
	if err != nil {
		return err
	}
	if m.typ != ShapeTypeMap {
		return r.invalid(name, fmt.Errorf("put on %v member", m.typ))
	}

	nv, err := normalize(m.elem, item)
	if err != nil {
		return r.invalid(name, err)
	}

	mp, _ := r.values[i].(map[string]any)
	if !r.set.has(i) || mp == nil {
		mp = map[string]any{}
	}
	mp[key] = nv
	r.values[i] = mp
	r.set.add(i)
	return nil
}

// SetMembers returns the names of the set members in declaration order.
func (r *Record) SetMembers() []string {
	var names []string
	for i, m := range r.schema.members {
		if r.set.has(i) {
			names = append(names, m.id.Member)
		}
	}
	return names
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := &Record{
		schema: r.schema,
		values: make([]any, len(r.values)),
		set:    r.set.clone(),
	}
	for i, v := range r.values {
		c.values[i] = cloneValue(v)
	}
	return c
}

// Equal reports whether r and o have the same schema, the same set members
// and equal values for them.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.schema != o.schema || !r.set.equal(o.set) {
		return false
	}
	for i := range r.values {
		if r.set.has(i) && !valueEqual(r.values[i], o.values[i]) {
			return false
		}
	}
	return true
}

func (r *Record) member(name string) (int, *Schema, error) {
	i, ok := r.schema.memberIndex(name)
	if !ok {
		return 0, nil, r.invalid(name, errors.New("no such member"))
	}
	return i, r.schema.members[i], nil
}

func (r *Record) invalid(name string, err error) error {
	return &InvalidFieldError{Shape: r.schema.id, Member: name, Err: err}
}

// setIndex stores an already normalized value.
func (r *Record) setIndex(i int, v any) {
	r.values[i] = v
	r.set.add(i)
}

type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) add(i int) {
	b[i/64] |= 1 << (uint(i) % 64)
}

func (b bitset) has(i int) bool {
	return b[i/64]&(1<<(uint(i)%64)) != 0
}

func (b bitset) clone() bitset {
	c := make(bitset, len(b))
	copy(c, b)
	return c
}

func (b bitset) equal(o bitset) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}
	return true
}
