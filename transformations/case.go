package transformations

import "strings"

type Upper struct{}

func (t *Upper) Transform(input string) string {
	return strings.ToUpper(input)
}

type Lower struct{}

func (t *Lower) Transform(input string) string {
	return strings.ToLower(input)
}

// Trim strips leading and trailing whitespace
type Trim struct{}

func (t *Trim) Transform(input string) string {
	return strings.TrimSpace(input)
}
