package transformations

// Prefix prepends Value. An empty Value leaves the input unchanged.
type Prefix struct {
	Value string
}

func (t *Prefix) Transform(input string) string {
	return t.Value + input
}

// Suffix appends Value
type Suffix struct {
	Value string
}

func (t *Suffix) Transform(input string) string {
	return input + t.Value
}
