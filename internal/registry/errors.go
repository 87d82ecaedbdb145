package registry

import (
	"fmt"
	"strings"
)

// DuplicateNameError reports the first declaration, in catalogue order,
// whose name was already taken.
type DuplicateNameError struct {
	Name  string
	Index int
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf(`duplicate declaration "%s" at index %d`, e.Name, e.Index)
}

// UnresolvedReferenceError reports a named reference without a matching
// declaration. Field is empty for union variants.
type UnresolvedReferenceError struct {
	Decl  string
	Field string
	Name  string
}

func (e *UnresolvedReferenceError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf(`declaration "%s" references unknown type "%s"`, e.Decl, e.Name)
	}

	return fmt.Sprintf(`field "%s" of declaration "%s" references unknown type "%s"`, e.Field, e.Decl, e.Name)
}

// InvalidDeclarationError reports a declaration with a malformed shape.
type InvalidDeclarationError struct {
	Decl    string
	Message string
}

func (e *InvalidDeclarationError) Error() string {
	return fmt.Sprintf(`invalid declaration "%s": %s`, e.Decl, e.Message)
}

// CyclicCompositionError reports a cycle of required record fields. No
// finite value can satisfy such a cycle.
type CyclicCompositionError struct {
	// Path lists the declarations and fields of the cycle, starting and
	// ending at the same declaration.
	Path []string
}

func (e *CyclicCompositionError) Error() string {
	return fmt.Sprintf("cyclic composition through required fields: %s", strings.Join(e.Path, " -> "))
}

type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(`declaration "%s" not found`, e.Name)
}

func invalidf(decl string, format string, args ...any) *InvalidDeclarationError {
	return &InvalidDeclarationError{
		Decl:    decl,
		Message: fmt.Sprintf(format, args...),
	}
}
