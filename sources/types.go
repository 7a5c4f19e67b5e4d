package sources

import (
	"valuefmt/transformations"
	"valuefmt/values"
)

// Entry is a named value together with where it was read from
type Entry struct {
	Value      values.NamedValue
	SourceType string
	Origin     string
}

// SourceContexts defines context-based filtering for a source
type SourceContexts struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// Var is an inline name/value pair declared in the project file
type Var struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

// Source represents a source configuration from .valuefmt.yaml
type Source struct {
	Name            string                   `yaml:"name"`
	Type            string                   `yaml:"type"`
	Path            string                   `yaml:"path"`
	Vars            []Var                    `yaml:"vars"`
	Contexts        SourceContexts           `yaml:"contexts"`
	Exclude         []string                 `yaml:"exclude"`
	Transformations []transformations.Config `yaml:"transformations"`
}

// ShouldInclude returns true if the source should be included for the given contexts
func (s *Source) ShouldInclude(contexts []string) bool {
	if len(contexts) == 0 {
		return true
	}

	// at least one selected context must be listed
	if len(s.Contexts.Include) > 0 && !containsAny(s.Contexts.Include, contexts) {
		return false
	}

	return !containsAny(s.Contexts.Exclude, contexts)
}

// ShouldExcludeVariable reports whether name is listed in the source's exclude list
func (s *Source) ShouldExcludeVariable(name string) bool {
	for _, e := range s.Exclude {
		if e == name {
			return true
		}
	}
	return false
}

// Label is the name used for the source in messages and output comments
func (s *Source) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Path
}

func containsAny(list, candidates []string) bool {
	for _, c := range candidates {
		for _, l := range list {
			if l == c {
				return true
			}
		}
	}
	return false
}

// Loader is the interface that all source types must implement
type Loader interface {
	Load(source Source) ([]Entry, error)
}
