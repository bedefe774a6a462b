package btschema

import "strings"

// SlotDef is the parsed form of an input/output slot descriptor.
//
// Slot descriptors are names possibly suffixed with "?" (optional) or "..."
// (variadic). The variadic marker is only meaningful on the last slot of a
// list.
type SlotDef struct {
	Name     string
	Optional bool
	Variadic bool
}

// ParseSlot parses a single slot descriptor.
func ParseSlot(desc string) SlotDef {
	var s SlotDef
	switch {
	case strings.HasSuffix(desc, "..."):
		s.Variadic = true
		s.Name = strings.TrimSuffix(desc, "...")
	case strings.HasSuffix(desc, "?"):
		s.Optional = true
		s.Name = strings.TrimSuffix(desc, "?")
	default:
		s.Name = desc
	}
	return s
}

// ParseSlots parses an ordered slot descriptor list.
// A "..." marker on any position other than the last is ignored: the slot is
// treated as a plain required slot under its literal name.
func ParseSlots(descs []string) []SlotDef {
	if len(descs) == 0 {
		return nil
	}
	out := make([]SlotDef, len(descs))
	for i, d := range descs {
		s := ParseSlot(d)
		if s.Variadic && i != len(descs)-1 {
			s = SlotDef{Name: d}
		}
		out[i] = s
	}
	return out
}

// String reconstructs the descriptor form.
func (s SlotDef) String() string {
	switch {
	case s.Variadic:
		return s.Name + "..."
	case s.Optional:
		return s.Name + "?"
	}
	return s.Name
}
