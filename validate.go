package record

import (
	"sort"
	"strconv"

	"go.uber.org/multierr"

	"github.com/awslabs/record-go/traits"
)

// ValidateRequired reports every required member that is unset, in r and in
// every set nested record, list element and map value. Each finding is a
// *MissingRequiredFieldError; multiple findings are combined with
// go.uber.org/multierr and can be split with multierr.Errors.
//
// Required-ness is only checked here, at the point a record is about to be
// transmitted. Set and Get never enforce it.
func ValidateRequired(r *Record) error {
	return validateRecord("", r)
}

func validateRecord(path string, r *Record) error {
	var err error
	for i, m := range r.schema.members {
		if !r.set.has(i) {
			if _, ok := SchemaTrait[*traits.Required](m); ok {
				err = multierr.Append(err, &MissingRequiredFieldError{Path: path, Member: m.id.Member})
			}
			continue
		}
		err = multierr.Append(err, validateValue(pointer(path, m.id.Member), m, r.values[i]))
	}
	return err
}

func validateValue(path string, s *Schema, v any) error {
	switch s.typ {
	case ShapeTypeStructure:
		return validateRecord(path, v.(*Record))
	case ShapeTypeList:
		if s.elem.typ != ShapeTypeStructure && s.elem.typ != ShapeTypeList && s.elem.typ != ShapeTypeMap {
			return nil
		}
		var err error
		for i, e := range v.([]any) {
			err = multierr.Append(err, validateValue(pointer(path, strconv.Itoa(i)), s.elem, e))
		}
		return err
	case ShapeTypeMap:
		if s.elem.typ != ShapeTypeStructure && s.elem.typ != ShapeTypeList && s.elem.typ != ShapeTypeMap {
			return nil
		}
		mp := v.(map[string]any)
		keys := make([]string, 0, len(mp))
		for k := range mp {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var err error
		for _, k := range keys {
			err = multierr.Append(err, validateValue(pointer(path, k), s.elem, mp[k]))
		}
		return err
	}
	return nil
}
