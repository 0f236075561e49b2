package client

import (
	"fmt"
	"reflect"
	"strings"
)

// ScanRows maps a collected result into a slice of structs. Columns are
// matched to fields by `db` tag first, then by name, case-insensitively.
// Columns with no matching field are skipped.
func ScanRows[T any](result *Result) ([]T, error) {
	var results []T
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("scan target must be a struct, got %s", typ.Kind())
	}

	fields := make([]reflect.StructField, len(result.Columns))
	for i, col := range result.Columns {
		fields[i] = findFieldByName(typ, col.Name)
	}

	for _, row := range result.Rows {
		var out T
		val := reflect.ValueOf(&out).Elem()

		for i, cell := range row {
			field := fields[i]
			if field.Name == "" || cell == nil {
				continue
			}
			if err := setField(val.FieldByIndex(field.Index), cell); err != nil {
				return nil, fmt.Errorf("column %s: %w", result.Columns[i].Name, err)
			}
		}
		results = append(results, out)
	}

	return results, nil
}

// setField assigns a normalized cell value to a struct field, converting
// between compatible kinds.
func setField(dst reflect.Value, cell interface{}) error {
	if !dst.CanSet() {
		return fmt.Errorf("field is not settable")
	}
	v := reflect.ValueOf(cell)

	// A pointer cell into a value field dereferences first.
	if v.Kind() == reflect.Ptr && dst.Kind() != reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch {
	case v.Type().AssignableTo(dst.Type()):
		dst.Set(v)
	case v.Type().ConvertibleTo(dst.Type()):
		dst.Set(v.Convert(dst.Type()))
	default:
		return fmt.Errorf("cannot assign %s to %s", v.Type(), dst.Type())
	}
	return nil
}

// findFieldByName finds a struct field by database column name, trying
// the db tag, then the exact field name, then a case-insensitive match.
func findFieldByName(typ reflect.Type, colName string) reflect.StructField {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		dbTag := field.Tag.Get("db")
		if dbTag != "" {
			tagParts := strings.Split(dbTag, ",")
			if tagParts[0] == colName {
				return field
			}
		}
		if field.Name == colName {
			return field
		}
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if strings.EqualFold(field.Name, colName) {
			return field
		}
	}
	return reflect.StructField{}
}
