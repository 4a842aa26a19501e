// Package identifier synthesizes IRI-safe local names from individual labels.
//
// A label is first rewritten by the capitalization Scheme, then every
// remaining forbidden character is substituted according to Rules. A
// character with neither a substitute nor a removal policy stops synthesis
// with a MetacharacterError.
package identifier

import "fmt"

// Synthesizer derives local names for one configuration.
type Synthesizer struct {
	scheme Scheme
	rules  *Rules
}

// NewSynthesizer returns a synthesizer applying scheme then rules.
func NewSynthesizer(scheme Scheme, rules *Rules) *Synthesizer {
	return &Synthesizer{scheme: scheme, rules: rules}
}

// LocalName derives the local name for label.
func (s *Synthesizer) LocalName(label string) (string, error) {
	name, err := s.rules.Apply(s.scheme.Apply(label), label)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", fmt.Errorf("label %q: %w", label, ErrEmptyName)
	}
	return name, nil
}

// Registry assigns local names to labels and detects collisions. It is
// scoped to one output document.
type Registry struct {
	synth   *Synthesizer
	byLabel map[string]string
	owner   map[string]string
}

// NewRegistry returns an empty registry backed by synth.
func NewRegistry(synth *Synthesizer) *Registry {
	return &Registry{
		synth:   synth,
		byLabel: make(map[string]string),
		owner:   make(map[string]string),
	}
}

// Name returns the local name for label. The same label always yields the
// same name; a different label yielding a name already taken is a
// CollisionError.
func (r *Registry) Name(label string) (string, error) {
	if name, ok := r.byLabel[label]; ok {
		return name, nil
	}
	name, err := r.synth.LocalName(label)
	if err != nil {
		return "", err
	}
	if first, taken := r.owner[name]; taken {
		return "", &CollisionError{Name: name, First: first, Second: label}
	}
	r.byLabel[label] = name
	r.owner[name] = label
	return name, nil
}

// Len returns the number of names assigned.
func (r *Registry) Len() int {
	return len(r.owner)
}
