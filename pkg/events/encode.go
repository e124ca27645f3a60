package events

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"
)

// MarshalCycleSafe serializes v to JSON, omitting any value whose object
// reference was already visited. Duplicate references (including cycles)
// serialize as null so the SSE writer never fails on self-referential
// orchestrator state.
func MarshalCycleSafe(v any) ([]byte, error) {
	seen := make(map[uintptr]struct{})
	return json.Marshal(sanitize(reflect.ValueOf(v), seen))
}

func sanitize(v reflect.Value, seen map[uintptr]struct{}) any {
	if !v.IsValid() {
		return nil
	}

	// Types with their own JSON representation are passed through untouched;
	// they cannot participate in reference cycles.
	if v.CanInterface() {
		switch iv := v.Interface().(type) {
		case time.Time:
			return iv
		case json.RawMessage:
			return iv
		case json.Marshaler:
			return iv
		case error:
			return iv.Error()
		}
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return sanitize(v.Elem(), seen)

	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		ptr := v.Pointer()
		if _, dup := seen[ptr]; dup {
			return nil
		}
		seen[ptr] = struct{}{}
		return sanitize(v.Elem(), seen)

	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		ptr := v.Pointer()
		if _, dup := seen[ptr]; dup {
			return nil
		}
		seen[ptr] = struct{}{}
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			key := mapKey(iter.Key())
			out[key] = sanitize(iter.Value(), seen)
		}
		return out

	case reflect.Slice:
		if v.IsNil() {
			return nil
		}
		fallthrough
	case reflect.Array:
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			out[i] = sanitize(v.Index(i), seen)
		}
		return out

	case reflect.Struct:
		return sanitizeStruct(v, seen)

	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil

	default:
		if !v.CanInterface() {
			return nil
		}
		return v.Interface()
	}
}

// sanitizeStruct renders a struct as a map honoring json field tags.
func sanitizeStruct(v reflect.Value, seen map[uintptr]struct{}) any {
	t := v.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		omitempty := false
		if tag, ok := field.Tag.Lookup("json"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					omitempty = true
				}
			}
		}
		fv := v.Field(i)
		if omitempty && fv.IsZero() {
			continue
		}
		out[name] = sanitize(fv, seen)
	}
	return out
}

func mapKey(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}
	b, err := json.Marshal(key.Interface())
	if err != nil {
		return key.Type().String()
	}
	return strings.Trim(string(b), `"`)
}
