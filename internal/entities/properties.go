package entities

import (
	"encoding/json"
	"fmt"
)

// PropertyKind tags the value held by a PropertyValue
type PropertyKind string

const (
	PropertyString PropertyKind = "string"
	PropertyNumber PropertyKind = "number"
	PropertyBool   PropertyKind = "bool"
)

// PropertyValue holds exactly one of a string, a number or a bool
type PropertyValue struct {
	Kind PropertyKind
	Str  string
	Num  int64
	Bool bool
}

func StringValue(s string) PropertyValue { return PropertyValue{Kind: PropertyString, Str: s} }
func NumberValue(n int64) PropertyValue  { return PropertyValue{Kind: PropertyNumber, Num: n} }
func BoolValue(b bool) PropertyValue     { return PropertyValue{Kind: PropertyBool, Bool: b} }

// MarshalJSON writes the bare value so the bag reads as a plain JSON object
func (v PropertyValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case PropertyString:
		return json.Marshal(v.Str)
	case PropertyNumber:
		return json.Marshal(v.Num)
	case PropertyBool:
		return json.Marshal(v.Bool)
	default:
		return nil, fmt.Errorf("property kind %q is not supported", v.Kind)
	}
}

// UnmarshalJSON accepts a JSON string, integer or bool
func (v *PropertyValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch t := raw.(type) {
	case string:
		*v = StringValue(t)
	case bool:
		*v = BoolValue(t)
	case float64:
		var n int64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("property number %s is not an integer: %w", data, err)
		}
		*v = NumberValue(n)
	default:
		return fmt.Errorf("property value %s is not a string, integer or bool", data)
	}
	return nil
}

// Properties is a small typed bag for ad hoc annotations, such as where a
// snapshot was read from
type Properties map[string]PropertyValue

// Set stores a value in the bag. A nil bag cannot be written to, so Set
// reports false and drops the value.
func (p Properties) Set(key string, value PropertyValue) bool {
	if p == nil {
		return false
	}
	p[key] = value
	return true
}

// Has checks if a key exists
func (p Properties) Has(key string) bool {
	if p == nil {
		return false
	}
	_, exists := p[key]
	return exists
}

func (p Properties) lookup(key string, kind PropertyKind) (PropertyValue, error) {
	if p == nil {
		return PropertyValue{}, fmt.Errorf("properties is nil")
	}

	value, exists := p[key]
	if !exists {
		return PropertyValue{}, fmt.Errorf("key %q not found", key)
	}
	if value.Kind != kind {
		return PropertyValue{}, fmt.Errorf("key %q is not a %s (got %s)", key, kind, value.Kind)
	}
	return value, nil
}

// GetString retrieves a string value
func (p Properties) GetString(key string) (string, error) {
	v, err := p.lookup(key, PropertyString)
	if err != nil {
		return "", err
	}
	return v.Str, nil
}

// GetNumber retrieves a number value
func (p Properties) GetNumber(key string) (int64, error) {
	v, err := p.lookup(key, PropertyNumber)
	if err != nil {
		return 0, err
	}
	return v.Num, nil
}

// GetBool retrieves a bool value
func (p Properties) GetBool(key string) (bool, error) {
	v, err := p.lookup(key, PropertyBool)
	if err != nil {
		return false, err
	}
	return v.Bool, nil
}

// GetStringOrDefault retrieves a string value or returns the default
func (p Properties) GetStringOrDefault(key, defaultValue string) string {
	s, err := p.GetString(key)
	if err != nil {
		return defaultValue
	}
	return s
}

// GetNumberOrDefault retrieves a number value or returns the default
func (p Properties) GetNumberOrDefault(key string, defaultValue int64) int64 {
	n, err := p.GetNumber(key)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetBoolOrDefault retrieves a bool value or returns the default
func (p Properties) GetBoolOrDefault(key string, defaultValue bool) bool {
	b, err := p.GetBool(key)
	if err != nil {
		return defaultValue
	}
	return b
}

// Clone returns an independent copy of the bag
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
