package btschema

import (
	"testing"

	"github.com/arborlab/arbor/pkg/btvalue"
)

func intPtr(i int) *int { return &i }

func TestDefSpecParse(t *testing.T) {
	spec := DefSpec{
		Name: "Selector",
		Type: "Composite",
		Desc: "Runs children until one succeeds",
		Args: []ArgSpec{
			{Name: "priority", Type: "int?"},
			{Name: "mode", Type: "enum", Options: []OptionSpec{
				{Name: "Strict", Value: "strict"},
				{Name: "Loose", Value: 1},
			}},
		},
		Input:  []string{"target", "extras..."},
		Output: []string{"result?"},
		Status: []string{"|success", "&failure", "|running"},
	}

	def, err := spec.Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if def.Children != ChildrenUnbounded {
		t.Errorf("default children = %d, want unbounded", def.Children)
	}
	if def.IsUnknown() {
		t.Error("parsed definition must not be the unknown sentinel")
	}

	a := def.Arg("priority")
	if a == nil || a.Type != (ArgType{Kind: KindInt, Optional: true}) {
		t.Errorf("priority arg = %+v", a)
	}
	if def.Arg("missing") != nil {
		t.Error("Arg(missing) should be nil")
	}

	mode := def.Arg("mode")
	if len(mode.Options) != 2 {
		t.Fatalf("mode options = %d", len(mode.Options))
	}
	if !mode.Options[0].Value.Equal(btvalue.String("strict")) {
		t.Errorf("option 0 value = %#v", mode.Options[0].Value)
	}
	if !mode.Options[1].Value.Equal(btvalue.Int(1)) {
		t.Errorf("option 1 value = %#v", mode.Options[1].Value)
	}

	if len(def.Input) != 2 || !def.Input[1].Variadic {
		t.Errorf("input slots = %+v", def.Input)
	}
	if len(def.Output) != 1 || !def.Output[0].Optional {
		t.Errorf("output slots = %+v", def.Output)
	}

	want := []StatusRule{RuleAnySuccess, RuleAllFailure, RuleAnyRunning}
	if len(def.Status) != len(want) {
		t.Fatalf("status rules = %v", def.Status)
	}
	for i, r := range want {
		if def.Status[i] != r {
			t.Errorf("status[%d] = %v, want %v", i, def.Status[i], r)
		}
	}
}

func TestDefSpecParseChildren(t *testing.T) {
	spec := DefSpec{Name: "Inverter", Children: intPtr(1)}
	def, err := spec.Parse()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if def.Children != 1 {
		t.Errorf("children = %d, want 1", def.Children)
	}

	spec = DefSpec{Name: "Seq", Children: intPtr(-1)}
	def, _ = spec.Parse()
	if def.Children != ChildrenUnbounded {
		t.Errorf("negative children should mean unbounded, got %d", def.Children)
	}
}

func TestDefSpecParseErrors(t *testing.T) {
	if _, err := (DefSpec{}).Parse(); err == nil {
		t.Error("nameless definition should be rejected")
	}
	if _, err := (DefSpec{Name: "X", Status: []string{"&running"}}).Parse(); err == nil {
		t.Error("unknown status directive should be rejected")
	}
}

func TestUnknownSentinel(t *testing.T) {
	def := Unknown("Teleport")
	if !def.IsUnknown() {
		t.Error("sentinel must report IsUnknown")
	}
	if def.Name != "Teleport" {
		t.Errorf("sentinel name = %q", def.Name)
	}
	if def.Children != ChildrenUnbounded {
		t.Error("sentinel must accept any children so the tree still builds")
	}
}
