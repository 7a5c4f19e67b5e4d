package transformations

import "valuefmt/values"

// Format describes the input with values.Format
type Format struct{}

func (t *Format) Transform(input string) string {
	return values.Format(input)
}
