package sources

import "fmt"

const (
	TypeVars    = "Vars"
	TypeEnvFile = "EnvFile"
)

// Group holds the entries loaded from one source
type Group struct {
	Source  Source
	Entries []Entry
}

// Loaders maps source types to their loaders
func Loaders() map[string]Loader {
	return map[string]Loader{
		TypeVars:    &VarsLoader{},
		TypeEnvFile: &EnvFileLoader{},
	}
}

// Collect loads every source included for contexts, in declaration order
func Collect(srcs []Source, contexts []string) ([]Group, error) {
	loaders := Loaders()

	var groups []Group
	for _, source := range srcs {
		if !source.ShouldInclude(contexts) {
			continue
		}

		if source.Type == "" {
			return nil, fmt.Errorf("type is required for source %q", source.Label())
		}

		loader, ok := loaders[source.Type]
		if !ok {
			return nil, fmt.Errorf("unknown source type %q for %s", source.Type, source.Label())
		}

		entries, err := loader.Load(source)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", source.Label(), err)
		}

		groups = append(groups, Group{Source: source, Entries: entries})
	}

	return groups, nil
}
