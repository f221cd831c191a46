package llm

import "encoding/json"

type Type string

const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

// Schema is a provider-neutral subset of JSON schema. PropertyOrder fixes the
// order fields are declared in; providers that support ordering use it.
type Schema struct {
	Type          Type
	Description   string
	Properties    map[string]*Schema
	PropertyOrder []string
	Items         *Schema
	Required      []string
}

// JSON renders the schema as a JSON-schema document for providers that only
// accept it in the prompt.
func (s *Schema) JSON() string {
	b, err := json.MarshalIndent(s.jsonValue(), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func (s *Schema) jsonValue() map[string]interface{} {
	if s == nil {
		return nil
	}
	v := map[string]interface{}{"type": string(s.Type)}
	if s.Description != "" {
		v["description"] = s.Description
	}
	if len(s.Properties) > 0 {
		props := make(map[string]interface{}, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.jsonValue()
		}
		v["properties"] = props
	}
	if s.Items != nil {
		v["items"] = s.Items.jsonValue()
	}
	if len(s.Required) > 0 {
		v["required"] = s.Required
	}
	return v
}
