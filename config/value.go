package config

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/viennacmp/dga/bz"
)

// PathOrFloats is a manifest value that holds either a file path or a
// literal list of numbers, depending on the selected lattice or interaction
// type.
type PathOrFloats struct {
	Path   string
	Values []float64
}

// IsPath reports whether the value holds a file path.
func (p PathOrFloats) IsPath() bool { return p.Path != "" }

// IsList reports whether the value holds a numeric list.
func (p PathOrFloats) IsList() bool { return p.Values != nil }

// IsZero reports whether the value is unset.
func (p PathOrFloats) IsZero() bool { return p.Path == "" && p.Values == nil }

func (p *PathOrFloats) set(v any) error {
	switch value := v.(type) {
	case nil:
		*p = PathOrFloats{}
		return nil
	case string:
		*p = PathOrFloats{Path: value}
		return nil
	case []any:
		floats := make([]float64, len(value))
		for i, item := range value {
			f, err := toFloat(item)
			if err != nil {
				return fmt.Errorf("list element %d: %w", i, err)
			}
			floats[i] = f
		}
		*p = PathOrFloats{Values: floats}
		return nil
	default:
		return fmt.Errorf("expected a file path or a list of numbers, got %T", v)
	}
}

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (p *PathOrFloats) UnmarshalYAML(b []byte) error {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return err
	}
	return p.set(v)
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (p PathOrFloats) MarshalYAML() (any, error) {
	if p.IsList() {
		return p.Values, nil
	}
	return p.Path, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PathOrFloats) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return p.set(v)
}

// MarshalJSON implements json.Marshaler.
func (p PathOrFloats) MarshalJSON() ([]byte, error) {
	if p.IsList() {
		return json.Marshal(p.Values)
	}
	return json.Marshal(p.Path)
}

// SymmetrySpec is a manifest value that selects lattice symmetries either
// by the name of a known set (e.g. "two_dimensional_square") or as a list
// of individual symmetry names.
type SymmetrySpec struct {
	Name string
	List []string
}

// Resolve converts the value into the symmetry set it denotes.
func (s SymmetrySpec) Resolve() ([]bz.Symmetry, error) {
	if s.List != nil {
		return bz.ParseSymmetryList(s.List)
	}
	return bz.ParseSymmetries(s.Name)
}

func (s *SymmetrySpec) set(v any) error {
	switch value := v.(type) {
	case nil:
		*s = SymmetrySpec{}
		return nil
	case string:
		*s = SymmetrySpec{Name: value}
		return nil
	case []any:
		names := make([]string, len(value))
		for i, item := range value {
			name, ok := item.(string)
			if !ok {
				return fmt.Errorf("list element %d: expected a symmetry name, got %T", i, item)
			}
			names[i] = name
		}
		*s = SymmetrySpec{List: names}
		return nil
	default:
		return fmt.Errorf("expected a symmetry set name or a list of symmetry names, got %T", v)
	}
}

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (s *SymmetrySpec) UnmarshalYAML(b []byte) error {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return err
	}
	return s.set(v)
}

// MarshalYAML implements yaml.InterfaceMarshaler.
func (s SymmetrySpec) MarshalYAML() (any, error) {
	if s.List != nil {
		return s.List, nil
	}
	if s.Name == "" {
		return "none", nil
	}
	return s.Name, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *SymmetrySpec) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return s.set(v)
}

// MarshalJSON implements json.Marshaler.
func (s SymmetrySpec) MarshalJSON() ([]byte, error) {
	if s.List != nil {
		return json.Marshal(s.List)
	}
	if s.Name == "" {
		return json.Marshal("none")
	}
	return json.Marshal(s.Name)
}

func toFloat(v any) (float64, error) {
	switch value := v.(type) {
	case float64:
		return value, nil
	case float32:
		return float64(value), nil
	case int:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case uint64:
		return float64(value), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}
