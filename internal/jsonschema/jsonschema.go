package jsonschema

import (
	"reflect"
	"strconv"
	"strings"
)

// Schema represents the structure of JSON Schema used for defining arguments and responses.
// It follows the JSON Schema standard, supporting various types, properties, and validation
// rules. It is used to advertise the expected argument format of tools to the model and
// to describe structured outputs.
type Schema struct {
	// Type specifies the data type (e.g., "object", "array", "string", "number")
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of the arguments, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array
	Items *Schema `json:"items,omitempty"`
	// Enum contains the list of allowed values for the parameter
	Enum []any `json:"enum,omitempty"`
	// Minimum and Maximum constrain numeric parameters when non-nil
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`
}

// GenerateJSONSchema derives a JSON schema from the struct type T via
// reflection. Field schemas honour `json` tags for naming/omitempty and
// `jsonschema` tags for descriptions, enums, numeric bounds, and explicit
// required markers.
//
// Supported jsonschema tag directives, comma separated:
//
//	description=<text>   field description (commas inside are not supported)
//	enum=<value>         may repeat; collected into the enum list
//	minimum=<number>     numeric lower bound
//	maximum=<number>     numeric upper bound
//	required             force the field into the required list
func GenerateJSONSchema[T any]() *Schema {
	return generate(reflect.TypeFor[T]())
}

func generate(t reflect.Type) *Schema {
	switch t.Kind() {
	case reflect.Ptr:
		return generate(t.Elem())
	case reflect.Struct:
		return generateStruct(t)
	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: generate(t.Elem())}
	case reflect.Map:
		return &Schema{Type: "object"}
	case reflect.String:
		return &Schema{Type: "string"}
	case reflect.Bool:
		return &Schema{Type: "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}
	default:
		// interface{} and anything else: leave the type open.
		return &Schema{}
	}
}

func generateStruct(t reflect.Type) *Schema {
	schema := &Schema{Type: "object", Properties: map[string]*Schema{}}
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		fieldName := field.Name
		isOmitEmpty := false
		if jsonTag != "" {
			if commaIdx := strings.Index(jsonTag, ","); commaIdx != -1 {
				if commaIdx > 0 {
					fieldName = jsonTag[:commaIdx]
				}
				isOmitEmpty = strings.Contains(jsonTag[commaIdx:], "omitempty")
			} else {
				fieldName = jsonTag
			}
		}

		fieldSchema := generate(field.Type)
		requiredByTag := applyTag(field.Tag.Get("jsonschema"), fieldSchema)
		schema.Properties[fieldName] = fieldSchema

		if (field.Type.Kind() != reflect.Ptr && !isOmitEmpty) || requiredByTag {
			required = append(required, fieldName)
		}
	}

	if len(required) > 0 {
		schema.Required = required
	}
	return schema
}

// applyTag mutates schema according to the jsonschema struct tag and reports
// whether the field was explicitly marked required.
func applyTag(tag string, schema *Schema) bool {
	if tag == "" {
		return false
	}

	required := false
	for _, directive := range strings.Split(tag, ",") {
		directive = strings.TrimSpace(directive)
		switch {
		case directive == "required":
			required = true
		case strings.HasPrefix(directive, "description="):
			schema.Description = strings.TrimPrefix(directive, "description=")
		case strings.HasPrefix(directive, "enum="):
			schema.Enum = append(schema.Enum, strings.TrimPrefix(directive, "enum="))
		case strings.HasPrefix(directive, "minimum="):
			if v, err := strconv.ParseFloat(strings.TrimPrefix(directive, "minimum="), 64); err == nil {
				schema.Minimum = &v
			}
		case strings.HasPrefix(directive, "maximum="):
			if v, err := strconv.ParseFloat(strings.TrimPrefix(directive, "maximum="), 64); err == nil {
				schema.Maximum = &v
			}
		}
	}
	return required
}
