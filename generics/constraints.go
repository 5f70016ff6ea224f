package generics

import (
	"io"
	"strconv"
)

// Lengther is satisfied by any type that reports its own length.
//
// Go cannot constrain a type parameter on a field, so the "has a length"
// requirement is expressed as a method.
type Lengther interface {
	Len() int
}

// Length is a plain value that only carries a length.
type Length int

// Len implements Lengther.
func (l Length) Len() int { return int(l) }

// Text is a string that implements Lengther (length in bytes).
type Text string

// Len implements Lengther.
func (t Text) Len() int { return len(t) }

// List is a slice that implements Lengther.
type List[E any] []E

// Len implements Lengther.
func (l List[E]) Len() int { return len(l) }

// PrintLength writes "Length: N" followed by a newline for item.
func PrintLength[T Lengther](w io.Writer, item T) error {
	return writeLength(w, item.Len())
}

// StringLength writes "Length: N" for any string type.
func StringLength[S ~string](w io.Writer, s S) error {
	return writeLength(w, len(s))
}

// SliceLength writes "Length: N" for any slice type.
func SliceLength[S ~[]E, E any](w io.Writer, s S) error {
	return writeLength(w, len(s))
}

func writeLength(w io.Writer, n int) error {
	_, err := io.WriteString(w, "Length: "+strconv.Itoa(n)+"\n")
	return err
}
