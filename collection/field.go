package collection

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// tagName is the struct tag consulted before the Go field name.
const tagName = "mapstructure"

// Field reads a named field from record. Structs are addressed by field name
// or mapstructure tag, maps by string key; dots separate nested names. Struct
// fields come back with their own type, so a time.Time field yields a
// time.Time.
//
// Example:
//
//	city, err := collection.Field(employee, "Address.City")
func Field(record any, path string) (any, error) {
	current := record
	for _, name := range strings.Split(path, ".") {
		value, err := fieldOf(current, name)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", path)
		}
		current = value
	}
	return current, nil
}

func fieldOf(record any, name string) (any, error) {
	if fields, ok := record.(map[string]any); ok {
		return lookup(fields, name)
	}
	rv := reflect.ValueOf(record)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil, errors.Wrapf(ErrNotFound, "nil %s", rv.Type())
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, errors.Wrap(ErrTypeMismatch, "nil record has no named fields")
	}
	switch rv.Kind() {
	case reflect.Struct:
		return structField(rv, name)
	case reflect.Map:
		var fields map[string]any
		if err := mapstructure.Decode(rv.Interface(), &fields); err != nil {
			return nil, errors.Wrapf(ErrTypeMismatch, "%s has no named fields", rv.Type())
		}
		return lookup(fields, name)
	default:
		return nil, errors.Wrapf(ErrTypeMismatch, "%s has no named fields", rv.Type())
	}
}

func lookup(fields map[string]any, name string) (any, error) {
	value, ok := fields[name]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

// structField matches name against each visible exported field's tag first
// and its Go name second, then reads the value as is.
func structField(rv reflect.Value, name string) (any, error) {
	var byName []int
	for _, f := range reflect.VisibleFields(rv.Type()) {
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get(tagName), ",")
		if tag == name {
			return readField(rv, f.Index)
		}
		if byName == nil && tag == "" && f.Name == name {
			byName = f.Index
		}
	}
	if byName == nil {
		return nil, ErrNotFound
	}
	return readField(rv, byName)
}

func readField(rv reflect.Value, index []int) (any, error) {
	field, err := rv.FieldByIndexErr(index)
	if err != nil {
		return nil, errors.Wrap(ErrNotFound, err.Error())
	}
	return field.Interface(), nil
}
