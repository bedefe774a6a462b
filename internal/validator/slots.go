package validator

import "github.com/arborlab/arbor/pkg/btschema"

// CheckSlot reports whether slot i is acceptably filled.
//
// A slot passes when its descriptor is optional, when its value is
// non-empty, or when it is the trailing variadic slot (variadic slots are
// never individually required). Inputs and outputs use identical rules.
func CheckSlot(defs []btschema.SlotDef, data []string, i int) bool {
	if i < 0 {
		return false
	}
	if i >= len(defs) {
		// Positions past the declared list exist only under a trailing
		// variadic slot.
		return len(defs) > 0 && defs[len(defs)-1].Variadic
	}
	d := defs[i]
	if d.Optional || d.Variadic {
		return true
	}
	return i < len(data) && data[i] != ""
}

// NormalizeSlots returns a copy of data shaped to the declared slot list:
// missing values become empty strings, and values past the declared count
// are dropped unless the trailing slot is variadic.
func NormalizeSlots(data []string, defs []btschema.SlotDef) []string {
	if len(defs) == 0 && len(data) == 0 {
		return nil
	}
	out := append([]string(nil), data...)
	variadic := len(defs) > 0 && defs[len(defs)-1].Variadic
	if !variadic && len(out) > len(defs) {
		out = out[:len(defs)]
	}
	for len(out) < len(defs) {
		out = append(out, "")
	}
	return out
}
