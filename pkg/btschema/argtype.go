package btschema

import "strings"

// Kind is the base kind of an argument type.
type Kind string

const (
	KindFloat  Kind = "float"
	KindInt    Kind = "int"
	KindString Kind = "string"
	KindEnum   Kind = "enum"
	KindExpr   Kind = "expr"
	KindJSON   Kind = "json"
	KindBool   Kind = "bool"
)

// Known reports whether the kind is one of the supported base kinds.
// Unknown kinds are kept verbatim so validation can report them by name.
func (k Kind) Known() bool {
	switch k {
	case KindFloat, KindInt, KindString, KindEnum, KindExpr, KindJSON, KindBool:
		return true
	}
	return false
}

// ArgType is the parsed form of an argument type descriptor.
//
// Descriptors are a base kind followed by an optional array marker "[]" and
// an optional "?" marker, e.g. "int?", "string[]", "float[]?".
type ArgType struct {
	Kind     Kind
	Array    bool
	Optional bool
}

// ParseArgType parses a type descriptor string.
//
// An unrecognized base kind does not fail the parse; it is preserved in Kind
// and surfaces later as an "unknown arg type" validation error, never as a
// silent pass.
func ParseArgType(desc string) ArgType {
	var t ArgType
	s := desc
	for {
		switch {
		case strings.HasSuffix(s, "?"):
			s = strings.TrimSuffix(s, "?")
			t.Optional = true
		case strings.HasSuffix(s, "[]"):
			s = strings.TrimSuffix(s, "[]")
			t.Array = true
		default:
			t.Kind = Kind(s)
			return t
		}
	}
}

// String reconstructs the descriptor form.
func (t ArgType) String() string {
	s := string(t.Kind)
	if t.Array {
		s += "[]"
	}
	if t.Optional {
		s += "?"
	}
	return s
}
