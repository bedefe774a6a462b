// Package btvalue provides the tagged value type used for node arguments.
//
// Argument values arrive as untyped JSON in tree files. Instead of carrying
// them around as `any` and guessing their shape at validation time, they are
// decoded once into cty values (number, string, bool, sequence, object) and
// inspected through this wrapper.
package btvalue

import (
	"encoding/json"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Value is a single argument value. The zero Value is "absent".
//
// It embeds ctyjson.SimpleJSONValue so that JSON (un)marshalling infers the
// cty type from the document itself: numbers stay numbers, strings stay
// strings, arrays become tuples and objects become object values.
type Value struct {
	ctyjson.SimpleJSONValue
}

// New wraps a cty value.
func New(v cty.Value) Value {
	return Value{ctyjson.SimpleJSONValue{Value: v}}
}

// String returns a string value.
func String(s string) Value { return New(cty.StringVal(s)) }

// Number returns a numeric value.
func Number(f float64) Value { return New(cty.NumberFloatVal(f)) }

// Int returns an integral numeric value.
func Int(i int64) Value { return New(cty.NumberIntVal(i)) }

// Bool returns a boolean value.
func Bool(b bool) Value { return New(cty.BoolVal(b)) }

// FromAny decodes an arbitrary Go value (as produced by json or yaml
// decoding) into a Value, going through the same JSON type inference as
// values read from tree files.
func FromAny(x any) (Value, error) {
	raw, err := json.Marshal(x)
	if err != nil {
		return Value{}, fmt.Errorf("value is not representable: %w", err)
	}
	var v Value
	if err := json.Unmarshal(raw, &v); err != nil {
		return Value{}, err
	}
	return v, nil
}

// Defined reports whether the value is present and non-null.
func (v Value) Defined() bool {
	return v.Value != cty.NilVal && !v.Value.IsNull()
}

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool {
	return v.Defined() && v.Type() == cty.Number
}

// IsIntegral reports whether the value is a whole number.
func (v Value) IsIntegral() bool {
	if !v.IsNumber() {
		return false
	}
	bf := v.AsBigFloat()
	return bf.IsInt()
}

// IsText reports whether the value is a string.
func (v Value) IsText() bool {
	return v.Defined() && v.Type() == cty.String
}

// IsEmptyText reports whether the value is the empty string.
func (v Value) IsEmptyText() bool {
	return v.IsText() && v.AsString() == ""
}

// IsBool reports whether the value is a boolean.
func (v Value) IsBool() bool {
	return v.Defined() && v.Type() == cty.Bool
}

// IsSequence reports whether the value is an ordered collection.
// JSON arrays decode as tuples, but lists and sets are accepted too.
func (v Value) IsSequence() bool {
	if !v.Defined() {
		return false
	}
	t := v.Type()
	return t.IsTupleType() || t.IsListType() || t.IsSetType()
}

// Elements returns the element values of a sequence, in order.
// It returns nil for non-sequence values.
func (v Value) Elements() []Value {
	if !v.IsSequence() {
		return nil
	}
	out := make([]Value, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		out = append(out, New(ev))
	}
	return out
}

// Equal reports deep equality between two values.
func (v Value) Equal(o Value) bool {
	if !v.Defined() || !o.Defined() {
		return v.Defined() == o.Defined()
	}
	return v.Value.RawEquals(o.Value)
}

// GoString helps debugging output in tests.
func (v Value) GoString() string {
	if v.Value == cty.NilVal {
		return "btvalue.Value(nil)"
	}
	return fmt.Sprintf("btvalue.Value(%#v)", v.Value)
}
