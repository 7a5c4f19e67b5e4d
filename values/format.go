package values

// Format returns a human readable description of input.
// The empty string is described as "empty".
func Format(input string) string {
	if input == "" {
		return "empty"
	}
	return "value: " + input
}
