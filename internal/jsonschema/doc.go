// Package jsonschema derives JSON Schema documents from Go struct types via
// reflection, driven by `json` and `jsonschema` struct tags. The schemas are
// used to advertise tool parameter formats to language models.
package jsonschema
