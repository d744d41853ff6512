// Package params provides an ordered, named parameter container for
// configuring calculators and synthetic data sources.
//
// Each parameter carries a free-form comment and an optional physical unit
// next to its value, so a parameter set is self-describing when printed or
// persisted.
package params

import (
	"fmt"
	"sort"
)

// Parameter is one named configuration value.
type Parameter struct {
	Name    string
	Comment string
	Unit    string

	value any
}

// SetValue stores the parameter value.
func (p *Parameter) SetValue(v any) {
	p.value = v
}

// Value returns the raw stored value, or nil if unset.
func (p *Parameter) Value() any {
	return p.value
}

// Float returns the value as float64. Integer values are widened.
func (p *Parameter) Float() (float64, error) {
	switch v := p.value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("parameter %q holds %T, not a number", p.Name, p.value)
	}
}

// Int returns the value as int.
func (p *Parameter) Int() (int, error) {
	switch v := p.value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("parameter %q holds %T, not an integer", p.Name, p.value)
	}
}

// Pair returns the value as a [start, end] pair, used for range parameters
// such as spatial mesh extents.
func (p *Parameter) Pair() ([2]float64, error) {
	switch v := p.value.(type) {
	case [2]float64:
		return v, nil
	case []float64:
		if len(v) == 2 {
			return [2]float64{v[0], v[1]}, nil
		}
	}
	return [2]float64{}, fmt.Errorf("parameter %q holds %T, not a two-element pair", p.Name, p.value)
}

func (p *Parameter) String() string {
	if p.Unit != "" {
		return fmt.Sprintf("%s = %v %s", p.Name, p.value, p.Unit)
	}
	return fmt.Sprintf("%s = %v", p.Name, p.value)
}

// Collection is an ordered set of parameters, unique by name.
type Collection struct {
	order  []*Parameter
	byName map[string]*Parameter
}

// NewCollection creates an empty parameter collection.
func NewCollection() *Collection {
	return &Collection{byName: make(map[string]*Parameter)}
}

// New registers a parameter and returns it for value assignment. Registering
// the same name twice is a programming error and panics.
func (c *Collection) New(name, comment, unit string) *Parameter {
	if _, ok := c.byName[name]; ok {
		panic(fmt.Sprintf("params: duplicate parameter %q", name))
	}
	p := &Parameter{Name: name, Comment: comment, Unit: unit}
	c.order = append(c.order, p)
	c.byName[name] = p
	return p
}

// Get looks up a parameter by name.
func (c *Collection) Get(name string) (*Parameter, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// MustGet looks up a parameter and panics if it is not registered.
func (c *Collection) MustGet(name string) *Parameter {
	p, ok := c.byName[name]
	if !ok {
		panic(fmt.Sprintf("params: unknown parameter %q", name))
	}
	return p
}

// Names returns the parameter names in registration order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.order))
	for i, p := range c.order {
		names[i] = p.Name
	}
	return names
}

// Len returns the number of registered parameters.
func (c *Collection) Len() int {
	return len(c.order)
}

// SortedNames returns the parameter names in lexical order.
func (c *Collection) SortedNames() []string {
	names := c.Names()
	sort.Strings(names)
	return names
}
