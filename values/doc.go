// Package values holds the two leaf pieces valuefmt is built on: Format, which
// describes a piece of text, and NamedValue, a fixed name/integer pair that can
// render itself. Both are pure and safe to call from any goroutine.
package values
