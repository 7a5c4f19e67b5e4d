package gitutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// IsIgnored checks if a file path is covered by .gitignore
func IsIgnored(path string) bool {
	return git(filepath.Dir(path), "check-ignore", "-q", filepath.Base(path)) == nil
}

// IsGitRepo checks if dir is inside a git repository
func IsGitRepo(dir string) bool {
	return git(dir, "rev-parse", "--git-dir") == nil
}

// EnsureGitignored asks the user whether a written file should be added to
// .gitignore when it sits in a git work tree and is not ignored yet. It
// returns the entry that was added, or "" when nothing changed.
func EnsureGitignored(filePath string) (string, error) {
	dir := filepath.Dir(filePath)
	if !IsGitRepo(dir) || IsIgnored(filePath) {
		return "", nil
	}

	root, err := gitRoot(dir)
	if err != nil {
		return "", fmt.Errorf("failed to find git root: %w", err)
	}

	fileEntry, err := IgnoreEntry(root, filePath, false)
	if err != nil {
		return "", err
	}
	addFile := fmt.Sprintf("Add file (%s)", fileEntry)
	options := []string{addFile}

	// the directory option is only offered below the repository root
	dirEntry, err := IgnoreEntry(root, filePath, true)
	addDir := ""
	if err == nil {
		addDir = fmt.Sprintf("Add directory (%s)", dirEntry)
		options = append(options, addDir)
	}
	options = append(options, "Skip")

	var choice string
	prompt := &survey.Select{
		Message: fmt.Sprintf("File %q is not in .gitignore. Add to .gitignore?", filePath),
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", fmt.Errorf("gitignore prompt failed: %w", err)
	}

	var entry string
	switch choice {
	case addFile:
		entry = fileEntry
	case addDir:
		entry = dirEntry
	default:
		return "", nil
	}

	if err := AppendEntry(filepath.Join(root, ".gitignore"), entry); err != nil {
		return "", err
	}
	return entry, nil
}

// IgnoreEntry returns the root-anchored .gitignore pattern matching filePath,
// or the directory holding it when directory is set ("/generated/values.txt"
// and "/generated/"). Relative paths are resolved against the working directory.
func IgnoreEntry(root, filePath string, directory bool) (string, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", filePath, err)
	}

	// git reports the root with symlinks resolved
	dir := resolve(filepath.Dir(abs))
	target := filepath.Join(dir, filepath.Base(abs))
	if directory {
		target = dir
	}

	rel, err := filepath.Rel(resolve(root), target)
	if err != nil {
		return "", fmt.Errorf("failed to relate %s to %s: %w", filePath, root, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside the repository at %s", filePath, root)
	}
	if rel == "." {
		return "", fmt.Errorf("%s is the repository root", target)
	}

	entry := "/" + filepath.ToSlash(rel)
	if directory {
		entry += "/"
	}
	return entry, nil
}

func resolve(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}

// AppendEntry appends entry on its own line, creating the file if needed
func AppendEntry(gitignorePath, entry string) error {
	existing, err := os.ReadFile(gitignorePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read .gitignore: %w", err)
	}

	prefix := ""
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		prefix = "\n"
	}

	f, err := os.OpenFile(gitignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open .gitignore: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(prefix + entry + "\n"); err != nil {
		return fmt.Errorf("failed to write to .gitignore: %w", err)
	}
	return nil
}

func gitRoot(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(output), "\n"), nil
}

func git(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	return cmd.Run()
}
