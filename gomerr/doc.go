// Package gomerr provides an error framework that captures errors, error
// attributes, stack traces, and more. It includes a "pretty-print" mechanism,
// and can be used by renderers to turn an error into something suitable for a
// user (e.g. the flash message shown after a failed form submission).
//
// The package defines an interface, `Gomerr`, that extends the error
// interface, includes the `Is(err error)` and `Unwrap()` functions, and
// provides other generally useful functions. The gomerr package also includes
// a base implementation, `*gomerr`, and a builder function that is used to
// build specific Gomerr implementation types. Taking NotFoundError as an
// example:
//
//	type NotFoundError struct {
//	  Gomerr
//	  Type string
//	  Id   string
//	}
//
//	func NotFound(type_ string, id string) *NotFoundError {
//	  return Build(new(NotFoundError), type_, id).(*NotFoundError)
//	}
//
// Build assigns the provided values, in order, to the exported fields that
// follow the embedded Gomerr.
package gomerr
