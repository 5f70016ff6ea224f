// Package result models the outcome of an operation as a single value that
// carries either data or an error.
//
// Result[T] is a plain struct rather than a sum type: exactly one of Data and
// Err is meaningful, and Ok tells which. TryCatch runs a function and turns
// both returned errors and panics into a failed Result.
//
// Import
//
//	"github.com/sghaida/genlab/result"
package result
