package describe

import (
	"path"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/introspec-io/introspec/resource"
	"github.com/introspec-io/introspec/spec"
	"github.com/introspec-io/introspec/specerrors"
)

// Reflector is a Provider backed by reflection over registered Go types.
// Each registered struct is indexed under its full kind identifier, its
// package-qualified name, and its bare name. Safe for concurrent use.
type Reflector struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
	docs  map[string]string
}

// NewReflector returns a Reflector pre-loaded with the standard utility
// document types every service exposes.
func NewReflector() *Reflector {
	r := &Reflector{
		types: make(map[string]reflect.Type),
		docs:  make(map[string]string),
	}
	r.Register(
		resource.ServiceDocument{},
		resource.DocumentPage{},
		resource.ServiceStat{},
		resource.ServiceStats{},
		resource.ServiceConfiguration{},
		resource.ConfigUpdateRequest{},
		resource.Subscriber{},
		resource.SubscriptionState{},
		resource.ErrorResponse{},
	)
	return r
}

// Register indexes the types of the given values so their kind tokens
// resolve. Pointers are dereferenced; non-struct and unnamed types are
// ignored. When two registered types share a shortened token the later
// registration wins for that token.
func (r *Reflector) Register(values ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range values {
		t := reflect.TypeOf(v)
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil || t.Kind() != reflect.Struct || t.Name() == "" {
			continue
		}
		r.indexLocked(t)
	}
}

// RegisterWithDoc indexes one type and records documentation text that will
// surface as the schema description.
func (r *Reflector) RegisterWithDoc(v any, doc string) {
	r.Register(v)
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return
	}
	r.mu.Lock()
	r.docs[resource.KindOf(t)] = doc
	r.mu.Unlock()
}

func (r *Reflector) indexLocked(t reflect.Type) {
	full := resource.KindOf(t)
	r.types[full] = t
	if pkg := t.PkgPath(); pkg != "" {
		r.types[path.Base(pkg)+"."+t.Name()] = t
	}
	r.types[t.Name()] = t
}

// Describe resolves a type token to a Description. The token may be a full
// kind identifier or a shortened form registered alongside it.
func (r *Reflector) Describe(token string) (*Description, error) {
	r.mu.RLock()
	t, ok := r.types[token]
	r.mu.RUnlock()
	if !ok {
		return nil, &specerrors.ResolveError{
			Token:   token,
			Message: "no type registered for token",
		}
	}
	r.mu.RLock()
	doc := r.docs[resource.KindOf(t)]
	r.mu.RUnlock()
	schema := schemaForType(t, map[reflect.Type]bool{})
	schema.Description = doc
	return &Description{
		Kind:        resource.KindOf(t),
		Name:        t.Name(),
		Description: doc,
		Schema:      schema,
	}, nil
}

// schemaForType converts a reflect.Type to a self-contained schema. Nested
// struct types are inlined rather than referenced; seen guards against
// recursive types, which degrade to a bare object schema.
func schemaForType(t reflect.Type, seen map[reflect.Type]bool) *spec.Schema {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if s := specialTypeSchema(t); s != nil {
		return s
	}

	switch t.Kind() {
	case reflect.Struct:
		if seen[t] {
			return &spec.Schema{Type: spec.TypeObject}
		}
		seen[t] = true
		defer delete(seen, t)
		return structSchema(t, seen)

	case reflect.Slice, reflect.Array:
		return &spec.Schema{
			Type:  spec.TypeArray,
			Items: schemaForType(t.Elem(), seen),
		}

	case reflect.Map:
		return &spec.Schema{
			Type:                 spec.TypeObject,
			AdditionalProperties: schemaForType(t.Elem(), seen),
		}

	default:
		return primitiveSchema(t)
	}
}

// specialTypeSchema handles well-known types with dedicated string formats.
func specialTypeSchema(t reflect.Type) *spec.Schema {
	if t == reflect.TypeOf(time.Time{}) {
		return &spec.Schema{Type: spec.TypeString, Format: "date-time"}
	}
	// Matched by name so the uuid package stays optional for callers.
	if t.String() == "uuid.UUID" {
		return &spec.Schema{Type: spec.TypeString, Format: "uuid"}
	}
	return nil
}

func structSchema(t reflect.Type, seen map[reflect.Type]bool) *spec.Schema {
	properties := make(map[string]*spec.Schema)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// Embedded structs inline their properties.
		if field.Anonymous {
			embedded := schemaForType(field.Type, seen)
			if embedded == nil || embedded.Properties == nil {
				continue
			}
			for name, prop := range embedded.Properties {
				if _, exists := properties[name]; !exists {
					properties[name] = prop
				}
			}
			for _, req := range embedded.Required {
				if !slices.Contains(required, req) {
					required = append(required, req)
				}
			}
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name, opts := parseJSONTag(jsonTag)
		if name == "" {
			name = field.Name
		}

		properties[name] = schemaForType(field.Type, seen)

		if fieldRequired(field, opts) {
			required = append(required, name)
		}
	}

	slices.Sort(required)
	return &spec.Schema{
		Type:       spec.TypeObject,
		Properties: properties,
		Required:   required,
	}
}

func primitiveSchema(t reflect.Type) *spec.Schema {
	switch t.Kind() {
	case reflect.String:
		return &spec.Schema{Type: spec.TypeString}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return &spec.Schema{Type: spec.TypeInteger, Format: "int32"}
	case reflect.Int64, reflect.Uint64:
		return &spec.Schema{Type: spec.TypeInteger, Format: "int64"}
	case reflect.Float32:
		return &spec.Schema{Type: spec.TypeNumber, Format: "float"}
	case reflect.Float64:
		return &spec.Schema{Type: spec.TypeNumber, Format: "double"}
	case reflect.Bool:
		return &spec.Schema{Type: spec.TypeBoolean}
	case reflect.Interface:
		// any accepts anything
		return &spec.Schema{Type: spec.TypeObject}
	default:
		return &spec.Schema{Type: spec.TypeObject}
	}
}

// parseJSONTag splits a json struct tag into its name and option parts.
func parseJSONTag(tag string) (string, []string) {
	if tag == "" {
		return "", nil
	}
	parts := strings.Split(tag, ",")
	return parts[0], parts[1:]
}

// fieldRequired reports whether a field should be listed as required:
// value types without omitempty cannot be absent from a serialized document.
func fieldRequired(field reflect.StructField, opts []string) bool {
	if slices.Contains(opts, "omitempty") {
		return false
	}
	switch field.Type.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return false
	}
	return true
}
