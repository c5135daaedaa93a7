package validators

import (
	"fmt"

	"github.com/muurk/formulary/internal/registry"
)

// Factory builds a validator from descriptor arguments.
type Factory func(Args) (Validator, error)

// Registry resolves validator descriptors by name.
type Registry struct {
	factories *registry.Registry[Factory]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: registry.New[Factory]("validator")}
}

// Builtins returns a registry holding every built-in validator.
func Builtins() *Registry {
	r := NewRegistry()
	r.factories.MustRegister("required", NewRequired)
	r.factories.MustRegister("regex", NewRegex)
	r.factories.MustRegister("email", NewEmail)
	r.factories.MustRegister("url", NewURL)
	r.factories.MustRegister("min-length", NewMinLength)
	r.factories.MustRegister("max-length", NewMaxLength)
	r.factories.MustRegister("number", NewNumber)
	r.factories.MustRegister("integer", NewInteger)
	r.factories.MustRegister("ipv4", NewIPv4)
	r.factories.MustRegister("range", NewRange)
	r.factories.MustRegister("min", NewMin)
	r.factories.MustRegister("max", NewMax)
	r.factories.MustRegister("datetime", NewDateTime)
	r.factories.MustRegister("datetimerange", NewDateTimeRange)
	return r
}

// Register adds a custom validator factory. Names already in use are rejected.
func (r *Registry) Register(name string, f Factory) error {
	return r.factories.Register(name, f)
}

// Names lists the registered validator names.
func (r *Registry) Names() []string {
	return r.factories.Names()
}

// Resolve builds the validator described by d.
func (r *Registry) Resolve(d Descriptor) (Validator, error) {
	f, err := r.factories.Lookup(d.Name)
	if err != nil {
		return nil, err
	}
	args := d.Args
	if args == nil {
		args = Args{}
	}
	v, err := f(args)
	if err != nil {
		return nil, fmt.Errorf("validator %q: %w", d.Name, err)
	}
	return v, nil
}
