package graph

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-engine/dsp/core"
	"github.com/cwbudde/algo-engine/dsp/param"
)

var (
	// ErrUnknownNode is returned by Registry.New for an unregistered kind.
	ErrUnknownNode = errors.New("graph: unknown node kind")

	errDuplicateNode = errors.New("duplicate node kind")
)

// Context carries what a factory needs to build a node.
type Context struct {
	core.Config

	// Params holds initial parameter values by name, in natural units.
	Params map[string]float64
}

// NewContext returns a context built from the engine options.
func NewContext(opts ...core.Option) Context {
	return Context{Config: core.ApplyOptions(opts...)}
}

// GetNum returns the named parameter, or def if it is missing or not
// finite.
func (c Context) GetNum(key string, def float64) float64 {
	v, ok := c.Params[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}

// Factory builds one node and returns the control handles it exposes.
type Factory func(ctx Context) (Node, param.Bundle, error)

// Registry maps node kinds to their factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given node kind.
func (r *Registry) Register(kind string, factory Factory) error {
	if kind == "" {
		return errors.New("empty node kind")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("%w: %s", errDuplicateNode, kind)
	}

	r.factories[kind] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(kind string, factory Factory) {
	err := r.Register(kind, factory)
	if err != nil {
		panic("graph registry: " + err.Error())
	}
}

// Lookup returns the factory for the given node kind, or nil.
func (r *Registry) Lookup(kind string) Factory {
	return r.factories[kind]
}

// Kinds returns the registered node kinds in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}

	sort.Strings(kinds)

	return kinds
}

// New builds a node of the given kind.
func (r *Registry) New(kind string, ctx Context) (Node, param.Bundle, error) {
	f := r.factories[kind]
	if f == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownNode, kind)
	}

	if err := ctx.Validate(); err != nil {
		return nil, nil, fmt.Errorf("graph: %s: %w", kind, err)
	}

	n, params, err := f(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("graph: %s: %w", kind, err)
	}

	return n, params, nil
}
