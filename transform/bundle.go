package transform

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ConstraintBundle names a set of parameters and the transformation each one
// is constrained by. Loaded from YAML via LoadConstraintBundle(path).
type ConstraintBundle struct {
	Parameters []ParameterSpec `yaml:"parameters"`
}

// ParameterSpec configures one constrained parameter.
// Nil pointer fields mean "not set in YAML".
type ParameterSpec struct {
	Name      string   `yaml:"name"`
	Transform string   `yaml:"transform"`
	Lower     *float64 `yaml:"lower,omitempty"`
	Upper     *float64 `yaml:"upper,omitempty"`
	Value     *float64 `yaml:"value,omitempty"` // constrained starting value
}

// Constrained is a parameter resolved against a Registry.
type Constrained struct {
	Name      string
	Transform Transformation
	Value     float64 // constrained value, inside the transform's domain
	Raw       float64 // unconstrained value, Finv(Value)
}

// LoadConstraintBundle reads and parses a YAML constraint bundle.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadConstraintBundle(path string) (*ConstraintBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading constraint bundle: %w", err)
	}
	return ParseConstraintBundle(data)
}

// ParseConstraintBundle parses YAML bytes into a ConstraintBundle.
func ParseConstraintBundle(data []byte) (*ConstraintBundle, error) {
	var bundle ConstraintBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing constraint bundle: %w", err)
	}
	return &bundle, nil
}

// Validate checks names, transformation names and bounds in the bundle.
func (b *ConstraintBundle) Validate() error {
	if len(b.Parameters) == 0 {
		return fmt.Errorf("constraint bundle has no parameters")
	}
	seen := make(map[string]bool, len(b.Parameters))
	for i := range b.Parameters {
		p := &b.Parameters[i]
		prefix := fmt.Sprintf("parameters[%d]", i)
		if p.Name == "" {
			return fmt.Errorf("%s: name is required", prefix)
		}
		if seen[p.Name] {
			return fmt.Errorf("%s: duplicate parameter name %q", prefix, p.Name)
		}
		seen[p.Name] = true
		if err := p.validate(prefix); err != nil {
			return err
		}
	}
	return nil
}

func (p *ParameterSpec) validate(prefix string) error {
	kind, err := ParseKind(p.Transform)
	if err != nil {
		return fmt.Errorf("%s (%s): %w", prefix, p.Name, err)
	}
	if kind.Parameterized() {
		if p.Lower == nil || p.Upper == nil {
			return fmt.Errorf("%s (%s): %s requires lower and upper", prefix, p.Name, kind)
		}
		if _, err := newLogistic(*p.Lower, *p.Upper); err != nil {
			return fmt.Errorf("%s (%s): %w", prefix, p.Name, err)
		}
	} else if p.Lower != nil || p.Upper != nil {
		return fmt.Errorf("%s (%s): %s does not take bounds", prefix, p.Name, kind)
	}
	if p.Value != nil && (math.IsNaN(*p.Value) || math.IsInf(*p.Value, 0)) {
		return fmt.Errorf("%s (%s): value must be finite, got %v", prefix, p.Name, *p.Value)
	}
	return nil
}

// Build validates the bundle and resolves every parameter against r.
// Starting values are moved into the domain with Initialize; parameters
// without a value start at F(0).
func (b *ConstraintBundle) Build(r *Registry) ([]Constrained, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	out := make([]Constrained, 0, len(b.Parameters))
	for _, p := range b.Parameters {
		var lower, upper float64
		if p.Lower != nil {
			lower = *p.Lower
		}
		if p.Upper != nil {
			upper = *p.Upper
		}
		t, err := r.ByName(p.Transform, lower, upper)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		value := t.F(0)
		if p.Value != nil {
			value = t.Initialize(*p.Value)
		}
		raw, err := t.Finv(value)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		out = append(out, Constrained{Name: p.Name, Transform: t, Value: value, Raw: raw})
	}
	return out, nil
}
