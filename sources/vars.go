package sources

import "valuefmt/values"

type VarsLoader struct{}

func (l *VarsLoader) Load(source Source) ([]Entry, error) {
	var entries []Entry
	for _, v := range source.Vars {
		if v.Name == "" {
			continue
		}

		if source.ShouldExcludeVariable(v.Name) {
			continue
		}

		entries = append(entries, Entry{
			Value:      values.New(v.Name, v.Value),
			SourceType: TypeVars,
			Origin:     source.Name,
		})
	}

	return entries, nil
}
