package transformations

// Transformation is the interface that all transformations must implement
type Transformation interface {
	// Transform takes an input string and returns the transformed string
	Transform(input string) string
}

// Target specifies what the transformation applies to
type Target string

const (
	// TargetName rewrites the name of a value before it is described
	TargetName Target = "name"
	// TargetOutput rewrites the rendered line
	TargetOutput Target = "output"
)
