package flagvalue

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"
)

// List is a flag.Getter that accepts a flag any number of times,
// collecting each value in order.
type List[T any, PT Getter[T]] []T

// ListOf adapts a slice to receive repeated flags.
// Each value is parsed with the element type's Set method.
//
//	flag.Var(flagvalue.ListOf(&spans), "span", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the values recorded so far
// as a slice of the underlying type.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String returns a semicolon separated list of the values in this list.
func (lv *List[T, PT]) String() string {
	if lv == nil {
		return ""
	}

	var sb strings.Builder
	for i := range *lv {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprint(&sb, PT(&(*lv)[i]))
	}
	return sb.String()
}

// Set parses a single flag argument and appends it to this list.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}
