// Package generics holds the small generic helpers the rest of the module is
// built from.
//
// It covers four ideas:
//
//   - functions parameterized by a type: Identity, WrapInArray
//   - generic types: Box and Pair
//   - constraints: Lengther, PrintLength, SliceLength
//   - utility types: Optional, Nullable, Readonly and Record
//
// Go has no mapped types, so utility types are expressed as wrappers around a
// single value rather than as transformations of a whole struct. A "partial"
// struct is a struct whose fields are Optional; a "nullable" struct is one
// whose fields are Nullable.
//
// Import
//
//	"github.com/sghaida/genlab/generics"
package generics
