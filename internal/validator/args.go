package validator

import (
	"fmt"

	"github.com/arborlab/arbor/pkg/btschema"
	"github.com/arborlab/arbor/pkg/btvalue"
)

// CheckArg validates a single argument value against its definition.
// present distinguishes an absent key from a present-but-odd value.
func CheckArg(a *btschema.ArgDef, v btvalue.Value, present bool) error {
	if !a.Type.Kind.Known() {
		// A bad schema never passes silently.
		return fmt.Errorf("unknown arg type %q", a.Type.Kind)
	}

	if !present {
		// Booleans have no optional distinction: absence means false.
		if a.Type.Optional || a.Type.Kind == btschema.KindBool {
			return nil
		}
		return fmt.Errorf("missing required value of type %s", a.Type)
	}

	if a.Type.Array {
		if !v.IsSequence() {
			return fmt.Errorf("expected array of %s", a.Type.Kind)
		}
		elems := v.Elements()
		if len(elems) == 0 && !a.Type.Optional {
			return fmt.Errorf("array of %s must not be empty", a.Type.Kind)
		}
		for i, e := range elems {
			if err := checkScalar(a, e); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		return nil
	}

	return checkScalar(a, v)
}

func checkScalar(a *btschema.ArgDef, v btvalue.Value) error {
	switch a.Type.Kind {
	case btschema.KindFloat:
		if !v.IsNumber() {
			return fmt.Errorf("expected number, got %s", typeName(v))
		}

	case btschema.KindInt:
		if !v.IsNumber() {
			return fmt.Errorf("expected integer, got %s", typeName(v))
		}
		if !v.IsIntegral() {
			return fmt.Errorf("expected integer, got fractional number")
		}

	case btschema.KindString, btschema.KindExpr:
		// Expressions are validated as text here, never parsed.
		if !v.IsText() {
			return fmt.Errorf("expected string, got %s", typeName(v))
		}
		if v.IsEmptyText() && !a.Type.Optional {
			return fmt.Errorf("string must not be empty")
		}

	case btschema.KindEnum:
		for _, opt := range a.Options {
			if v.Equal(opt.Value) {
				return nil
			}
		}
		return fmt.Errorf("value is not one of the %d declared options", len(a.Options))

	case btschema.KindBool:
		if !v.IsBool() {
			return fmt.Errorf("expected bool, got %s", typeName(v))
		}

	case btschema.KindJSON:
		// Accepted as-is once present; no structural validation at this layer.

	default:
		return fmt.Errorf("unknown arg type %q", a.Type.Kind)
	}
	return nil
}

func typeName(v btvalue.Value) string {
	if !v.Defined() {
		return "null"
	}
	return v.Type().FriendlyName()
}
