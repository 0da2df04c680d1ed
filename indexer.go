// Package structindex lets generic code read and write the fields of a struct
// by position without knowing the concrete field types.
//
// Types get their Indexer implementation from the structindex generator, which
// reads struct declarations from schema files and emits the methods. Field
// order is always declaration order and never changes for a given type, so
// positions are stable identifiers.
package structindex

import "reflect"

// Indexer is implemented by generated code.
type Indexer interface {
	// TypeName returns the declared name of the type.
	TypeName() string
	// FieldNames returns the field names in declaration order. Positional
	// structs report "0", "1", ...
	FieldNames() []string
	// Field returns a copy of the value of the field at position i; use
	// FieldPtr to alias the field itself. It panics if i is out of range.
	Field(i int) any
	// FieldPtr returns a pointer to the field at position i, for writing. It
	// panics if i is out of range.
	FieldPtr(i int) any
}

// Describe returns the type name and field names of x.
func Describe(x Indexer) (string, []string) {
	return x.TypeName(), x.FieldNames()
}

// Lookup returns the value of the field called name.
func Lookup(x Indexer, name string) (any, bool) {
	for i, fn := range x.FieldNames() {
		if fn == name {
			return x.Field(i), true
		}
	}
	return nil, false
}

// LikeCopy copies n fields from src, starting at srcIndex, into dst, starting
// at dstIndex. A field is only copied when its declared type in src is
// exactly the declared type of the receiving field in dst; other positions are
// left alone. Interface fields copy as-is, nil included. It returns the number
// of fields copied.
//
// Like Field and FieldPtr, it panics if any position is out of range.
func LikeCopy(dst Indexer, dstIndex int, src Indexer, srcIndex int, n int) int {
	var copied int
	for i := 0; i < n; i++ {
		to := reflect.ValueOf(dst.FieldPtr(dstIndex + i))
		from := reflect.ValueOf(src.FieldPtr(srcIndex + i))
		if to.Kind() != reflect.Pointer || to.IsNil() || from.Kind() != reflect.Pointer || from.IsNil() {
			continue
		}
		if to.Elem().Type() != from.Elem().Type() {
			continue
		}
		to.Elem().Set(from.Elem())
		copied++
	}
	return copied
}
