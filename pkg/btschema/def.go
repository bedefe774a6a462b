package btschema

import (
	"fmt"

	"github.com/arborlab/arbor/pkg/btvalue"
)

// ChildrenUnbounded is the sentinel child count for definitions that accept
// any number of children (composites like Sequence or Selector).
const ChildrenUnbounded = -1

// EnumOption is one allowed value of an enum argument.
type EnumOption struct {
	Name  string
	Value btvalue.Value
}

// ArgDef describes a single argument of a node definition.
type ArgDef struct {
	Name string
	Desc string
	Type ArgType

	// Options lists the allowed values for enum arguments, in declared order.
	Options []EnumOption

	// Oneof links this argument to the input slot whose name starts with the
	// tag: exactly one of the two must be supplied.
	Oneof string
}

// NodeDef is the schema a tree node is bound to.
type NodeDef struct {
	Name string
	Type string
	Desc string
	Doc  string

	Args   []ArgDef
	Input  []SlotDef
	Output []SlotDef

	// Children is the required child count, or ChildrenUnbounded.
	Children int

	// Status lists the composition directives, in declared order.
	Status []StatusRule

	unknown bool
}

// IsUnknown reports whether this is the sentinel returned for names that
// resolve to no real definition.
func (d *NodeDef) IsUnknown() bool { return d.unknown }

// Arg returns the argument definition with the given name, or nil.
func (d *NodeDef) Arg(name string) *ArgDef {
	for i := range d.Args {
		if d.Args[i].Name == name {
			return &d.Args[i]
		}
	}
	return nil
}

// Unknown returns the sentinel definition for an unresolved node name.
// The sentinel is distinguishable from every real definition and accepts any
// children, so a tree with undefined nodes still builds and reports the
// problem through validation instead of failing the load.
func Unknown(name string) *NodeDef {
	return &NodeDef{
		Name:     name,
		Type:     "unknown",
		Desc:     "Undefined node",
		Children: ChildrenUnbounded,
		unknown:  true,
	}
}

// DefSpec is the wire shape of a node definition as it appears in definition
// files, before descriptor parsing.
type DefSpec struct {
	Name     string    `json:"name" yaml:"name" mapstructure:"name"`
	Type     string    `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`
	Desc     string    `json:"desc,omitempty" yaml:"desc,omitempty" mapstructure:"desc"`
	Doc      string    `json:"doc,omitempty" yaml:"doc,omitempty" mapstructure:"doc"`
	Args     []ArgSpec `json:"args,omitempty" yaml:"args,omitempty" mapstructure:"args"`
	Input    []string  `json:"input,omitempty" yaml:"input,omitempty" mapstructure:"input"`
	Output   []string  `json:"output,omitempty" yaml:"output,omitempty" mapstructure:"output"`
	Children *int      `json:"children,omitempty" yaml:"children,omitempty" mapstructure:"children"`
	Status   []string  `json:"status,omitempty" yaml:"status,omitempty" mapstructure:"status"`
}

// ArgSpec is the wire shape of a single argument definition.
type ArgSpec struct {
	Name    string       `json:"name" yaml:"name" mapstructure:"name"`
	Type    string       `json:"type" yaml:"type" mapstructure:"type"`
	Desc    string       `json:"desc,omitempty" yaml:"desc,omitempty" mapstructure:"desc"`
	Options []OptionSpec `json:"options,omitempty" yaml:"options,omitempty" mapstructure:"options"`
	Oneof   string       `json:"oneof,omitempty" yaml:"oneof,omitempty" mapstructure:"oneof"`
}

// OptionSpec is the wire shape of one enum option.
type OptionSpec struct {
	Name  string `json:"name" yaml:"name" mapstructure:"name"`
	Value any    `json:"value" yaml:"value" mapstructure:"value"`
}

// Parse converts the wire shape into a NodeDef, parsing every descriptor.
// A spec without a name is rejected; everything else degrades to validation
// errors later rather than failing the load.
func (s DefSpec) Parse() (*NodeDef, error) {
	if s.Name == "" {
		return nil, fmt.Errorf("definition missing name")
	}

	def := &NodeDef{
		Name:     s.Name,
		Type:     s.Type,
		Desc:     s.Desc,
		Doc:      s.Doc,
		Input:    ParseSlots(s.Input),
		Output:   ParseSlots(s.Output),
		Children: ChildrenUnbounded,
	}
	if s.Children != nil && *s.Children >= 0 {
		def.Children = *s.Children
	}

	for _, a := range s.Args {
		arg := ArgDef{
			Name:  a.Name,
			Desc:  a.Desc,
			Type:  ParseArgType(a.Type),
			Oneof: a.Oneof,
		}
		for _, o := range a.Options {
			v, err := btvalue.FromAny(o.Value)
			if err != nil {
				return nil, fmt.Errorf("def %q arg %q option %q: %w", s.Name, a.Name, o.Name, err)
			}
			arg.Options = append(arg.Options, EnumOption{Name: o.Name, Value: v})
		}
		def.Args = append(def.Args, arg)
	}

	for _, raw := range s.Status {
		r, err := ParseStatusRule(raw)
		if err != nil {
			return nil, fmt.Errorf("def %q: %w", s.Name, err)
		}
		def.Status = append(def.Status, r)
	}

	return def, nil
}
