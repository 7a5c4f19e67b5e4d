package values

import "strconv"

// NamedValue pairs a name with an integer. It has no mutators, so a value
// built with New keeps its name and value for its whole lifetime.
type NamedValue struct {
	name  string
	value int
}

// New creates a NamedValue.
func New(name string, value int) NamedValue {
	return NamedValue{
		name:  name,
		value: value,
	}
}

// Name returns the name given to New.
func (n NamedValue) Name() string { return n.name }

// Value returns the value given to New.
func (n NamedValue) Value() int { return n.value }

// Describe renders the pair as "name: value" with the value in base 10.
func (n NamedValue) Describe() string {
	return n.name + ": " + strconv.Itoa(n.value)
}

// String is Describe, so a NamedValue prints the same way with %s and %v.
func (n NamedValue) String() string {
	return n.Describe()
}
