// Package tabgen generates synthetic tabular data from a declarative
// column schema.
//
// A Builder accumulates typed column specifications (integer, float,
// categorical, datetime), each carrying its generation constraints and
// an optional null-injection probability. Generate materializes any
// number of rows into a frame.Frame, a column-typed table whose missing
// cells are tracked per cell rather than encoded as sentinel values.
//
//	b := tabgen.New()
//	_ = b.AddIntCol("age", 0, 99)
//	_ = b.AddCatCol("city", []string{"NY", "LA"}, tabgen.Nullable(10))
//	f, err := b.Generate(1000)
//
// Declaration errors surface immediately as *ValidationError; an
// invalid column is never added. Generate fails only when no columns
// have been declared.
//
// Frames can be rendered as markdown or CSV, converted to an Apache
// Arrow record via the arrowconv package, or inserted into a database
// through the sink packages.
package tabgen
