package sources

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"valuefmt/values"
)

type EnvFileLoader struct{}

func (l *EnvFileLoader) Load(source Source) ([]Entry, error) {
	if source.Path == "" {
		return nil, fmt.Errorf("path is required for EnvFile source %q", source.Name)
	}

	file, err := os.Open(source.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open env file %s: %w", source.Path, err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, raw, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		name = strings.TrimSpace(name)
		if name == "" || source.ShouldExcludeVariable(name) {
			continue
		}

		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: value of %s is not an integer: %w", source.Path, lineNo, name, err)
		}

		entries = append(entries, Entry{
			Value:      values.New(name, value),
			SourceType: TypeEnvFile,
			Origin:     source.Path,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", source.Path, err)
	}

	return entries, nil
}
